package events

import (
	"context"
	"time"

	"github.com/goodnatureofminers/namesight7000-backend/internal/naming/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Repository interface {
		InsertEvents(ctx context.Context, events []model.Event) error
	}
	Metrics interface {
		ObserveEnqueue(kind model.EventKind, err error)
		ObserveFlush(size int, err error, started time.Time)
	}
)
