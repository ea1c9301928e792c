package clickhouse

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/clickhouse"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
	tcClickhouse "github.com/testcontainers/testcontainers-go/modules/clickhouse"

	"github.com/goodnatureofminers/namesight7000-backend/internal/naming/model"
	"github.com/goodnatureofminers/namesight7000-backend/internal/naming/namehash"
)

const (
	clickhouseImage = "clickhouse/clickhouse-server:25.11"
)

type RepositorySuite struct {
	suite.Suite
	ctx        context.Context
	cancel     context.CancelFunc
	container  *tcClickhouse.ClickHouseContainer
	dsn        string
	repo       *Repository
	metrics    *MockMetrics
	metricsCtl *gomock.Controller
	testCtx    context.Context
	testCancel context.CancelFunc
}

func TestRepositorySuite(t *testing.T) {
	if testing.Short() {
		t.Skip("clickhouse container tests are skipped in short mode")
	}
	suite.Run(t, new(RepositorySuite))
}

func (s *RepositorySuite) SetupSuite() {
	s.ctx, s.cancel = context.WithTimeout(context.Background(), 5*time.Minute)

	container, err := tcClickhouse.Run(s.ctx,
		clickhouseImage,
		tcClickhouse.WithUsername("default"),
		tcClickhouse.WithDatabase("default"),
	)
	s.Require().NoError(err)

	s.container = container

	dsn, err := container.ConnectionString(s.ctx)
	s.Require().NoError(err)
	s.dsn = dsn
}

func (s *RepositorySuite) TearDownSuite() {
	if s.container != nil {
		_ = s.container.Terminate(context.Background())
	}
	if s.cancel != nil {
		s.cancel()
	}
}

func (s *RepositorySuite) SetupTest() {
	s.testCtx, s.testCancel = context.WithTimeout(context.Background(), time.Minute)
	s.metricsCtl = gomock.NewController(s.T())
	s.metrics = NewMockMetrics(s.metricsCtl)

	s.Require().NoError(applyMigrationsUp(s.dsn))

	repo, err := NewRepository(s.dsn, s.metrics)
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RepositorySuite) TearDownTest() {
	if s.testCancel != nil {
		s.testCancel()
	}
	if s.repo != nil {
		_ = s.repo.Close()
	}
	s.Require().NoError(applyMigrationsDown(s.dsn))
	if s.metricsCtl != nil {
		s.metricsCtl.Finish()
	}
}

func (s *RepositorySuite) TestInsertAndReadEvents() {
	alice, err := namehash.Name("alice.stellar")
	s.Require().NoError(err)
	bob, err := namehash.Name("bob.stellar")
	s.Require().NoError(err)

	events := []model.Event{
		{Sequence: 1, Contract: "contract:registry", Kind: model.EventTransfer, Timestamp: 1060, Namehash: alice, From: "contract:registrar", To: "contract:registrar"},
		{Sequence: 2, Contract: "contract:registry", Kind: model.EventRenew, Timestamp: 1060, Namehash: alice, ExpiresAt: 1060 + 31_536_000},
		{Sequence: 3, Contract: "contract:registry", Kind: model.EventTransfer, Timestamp: 2000, Namehash: bob, From: "bob", To: "bob"},
		{Sequence: 4, Contract: "contract:resolver", Kind: model.EventTextChanged, Timestamp: 3000, Namehash: alice, Key: "email"},
	}

	s.metrics.EXPECT().Observe("insert_events", gomock.Nil(), gomock.Any())
	s.metrics.EXPECT().Observe("events_by_namehash", gomock.Nil(), gomock.Any())

	s.Require().NoError(s.repo.InsertEvents(s.testCtx, events))

	got, err := s.repo.EventsByNamehash(s.testCtx, alice, 10)
	s.Require().NoError(err)
	s.Require().Len(got, 3)
	s.Equal(events[0], got[0])
	s.Equal(events[1], got[1])
	s.Equal(events[3], got[2])
}

func (s *RepositorySuite) TestInsertIsIdempotentPerSequence() {
	node, err := namehash.Name("carol.stellar")
	s.Require().NoError(err)
	ev := model.Event{Sequence: 9, Contract: "contract:registrar", Kind: model.EventNameRegistered, Namehash: node, Owner: "carol"}

	s.metrics.EXPECT().Observe("insert_events", gomock.Nil(), gomock.Any()).Times(2)
	s.metrics.EXPECT().Observe("events_by_namehash", gomock.Nil(), gomock.Any())

	s.Require().NoError(s.repo.InsertEvents(s.testCtx, []model.Event{ev}))
	s.Require().NoError(s.repo.InsertEvents(s.testCtx, []model.Event{ev}))

	got, err := s.repo.EventsByNamehash(s.testCtx, node, 10)
	s.Require().NoError(err)
	s.Len(got, 1)
}

func moduleRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working dir: %w", err)
	}

	for {
		if _, statErr := os.Stat(filepath.Join(dir, "go.mod")); statErr == nil {
			return dir, nil
		}
		next := filepath.Dir(dir)
		if next == dir {
			return "", fmt.Errorf("go.mod not found from %s", dir)
		}
		dir = next
	}
}

func applyMigrationsUp(dsn string) error {
	m, err := newMigrator(dsn)
	if err != nil {
		return err
	}
	defer func() { _, _ = m.Close() }()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate up: %w", err)
	}
	return nil
}

func applyMigrationsDown(dsn string) error {
	m, err := newMigrator(dsn)
	if err != nil {
		return err
	}
	defer func() { _, _ = m.Close() }()

	if err := m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate down: %w", err)
	}
	return nil
}

func newMigrator(dsn string) (*migrate.Migrate, error) {
	root, err := moduleRoot()
	if err != nil {
		return nil, err
	}

	sourceURL := fmt.Sprintf("file://%s", filepath.Join(root, "migrations", "clickhouse"))
	m, err := migrate.New(sourceURL, withMultiStatement(dsn))
	if err != nil {
		return nil, fmt.Errorf("init migrate: %w", err)
	}
	return m, nil
}

func withMultiStatement(dsn string) string {
	if strings.Contains(dsn, "x-multi-statement=") {
		return dsn
	}
	separator := "?"
	if strings.Contains(dsn, "?") {
		separator = "&"
	}
	return dsn + separator + "x-multi-statement=true"
}
