package seeder

import (
	"context"
	"errors"
	"log"

	"careerease/internal/database"
)

var errNilDB = errors.New("nil db")

// Seeder writes bootstrap rows and reports how many it inserted. Seeders
// must be idempotent; Prepare runs them on every start.
type Seeder interface {
	Name() string
	Run(ctx context.Context, db database.DB) (int64, error)
}

type Runner struct {
	Seeders []Seeder
	Logger  *log.Logger
}

func (r Runner) Run(ctx context.Context, db database.DB) error {
	if db == nil {
		return errNilDB
	}
	for _, s := range r.Seeders {
		if s == nil {
			continue
		}
		n, err := s.Run(ctx, db)
		if err != nil {
			return &Error{Seeder: s.Name(), Err: err}
		}
		if n > 0 && r.Logger != nil {
			r.Logger.Printf("[Seed] %s inserted=%d", s.Name(), n)
		}
	}
	return nil
}

type Error struct {
	Seeder string
	Err    error
}

func (e *Error) Error() string { return "seed " + e.Seeder + ": " + e.Err.Error() }

func (e *Error) Unwrap() error { return e.Err }
