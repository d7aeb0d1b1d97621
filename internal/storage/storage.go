package storage

import (
	"context"
	"database/sql"

	_ "github.com/lib/pq"
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/ledger-server/internal/config"
)

type Storage struct {
	DB bob.DB
	db *sql.DB
}

func NewStorage(env *config.Config) (*Storage, error) {
	db, err := sql.Open("postgres", env.PostgresURL())
	if err != nil {
		return nil, err
	}

	return NewFromDB(db), nil
}

// NewFromDB wraps an already opened postgres handle.
func NewFromDB(db *sql.DB) *Storage {
	return &Storage{
		DB: bob.NewDB(db),
		db: db,
	}
}

// Read returns a Reader over the shared connection pool.
func (s *Storage) Read() *Reader {
	return NewReader(s.DB)
}

// Write begins a database transaction. The caller must Commit or Rollback.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return NewWriter(tx), nil
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Storage) Close() error {
	return s.db.Close()
}
