package clickhouse

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
)

func TestRepository_InsertEventsEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	metrics := NewMockMetrics(ctrl)
	metrics.EXPECT().Observe("insert_events", gomock.Nil(), gomock.AssignableToTypeOf(time.Time{}))

	repo := &Repository{metrics: metrics}
	if err := repo.InsertEvents(context.Background(), nil); err != nil {
		t.Fatalf("InsertEvents() error = %v", err)
	}
}

func TestNewRepository_RequiresDSN(t *testing.T) {
	if _, err := NewRepository("", nil); err == nil {
		t.Fatalf("expected error for empty dsn")
	}
}
