package storage

import (
	"context"
	"database/sql"

	_ "github.com/lib/pq"
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/budgetwise/internal/config"
)

type Storage struct {
	DB   *sql.DB
	exec bob.DB
}

func NewStorage(env *config.Config) (*Storage, error) {
	db, err := sql.Open("postgres", env.PostgresDSN())
	if err != nil {
		return nil, err
	}

	return NewStorageFromDB(db), nil
}

// NewStorageFromDB wraps an already opened database.
func NewStorageFromDB(db *sql.DB) *Storage {
	return &Storage{
		DB:   db,
		exec: bob.NewDB(db),
	}
}

// Read returns a Reader that runs outside any transaction.
func (s *Storage) Read() *Reader {
	return NewReader(s.exec)
}

// Write opens a transaction. The caller must Commit or Rollback the returned Writer.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.exec.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}

	writer := NewWriter(tx)
	return &writer, nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}
