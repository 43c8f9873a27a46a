package store

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/stash/internal/stash/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite, postgres)
// implement this and expose sub-repositories. Transactions are only reachable
// through WithTx so they cannot nest.
type Store interface {
	Accounts() Accounts
	Clips() Clips

	ApplyMigrations() error

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases the underlying connection pool.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx exposes the repositories bound to one transaction.
type Tx interface {
	Accounts() Accounts
	Clips() Clips
}

type Accounts interface {
	// CreateAccount inserts a new account. A taken name yields ErrAlreadyExists.
	CreateAccount(ctx context.Context, a domain.Account) error

	// GetAccountByID returns an account by id.
	GetAccountByID(ctx context.Context, id string) (domain.Account, error)

	// GetAccountByName is used during login.
	GetAccountByName(ctx context.Context, name string) (domain.Account, error)
}

type Clips interface {
	// UpsertClip writes c under its code, replacing whatever was there.
	// The returned clip carries the stored timestamps.
	UpsertClip(ctx context.Context, c domain.Clip) (domain.Clip, error)

	// GetClip returns the clip stored under code.
	GetClip(ctx context.Context, code int) (domain.Clip, error)
}
