package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/aussiebroadwan/stash/internal/stash/store"
	"github.com/aussiebroadwan/stash/internal/stash/store/drivers/postgres"
	"github.com/aussiebroadwan/stash/internal/stash/store/drivers/sqlite"
)

// Driver names reported in logs.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// DriverFor picks the store driver from the DATABASE_URL scheme.
func DriverFor(databaseURL string) string {
	lower := strings.ToLower(databaseURL)
	if strings.HasPrefix(lower, "postgres://") || strings.HasPrefix(lower, "postgresql://") {
		return DriverPostgres
	}
	return DriverSQLite
}

// OpenStore connects to the database and applies pending migrations.
func OpenStore(ctx context.Context, databaseURL string) (store.Store, error) {
	var (
		st  store.Store
		err error
	)

	switch DriverFor(databaseURL) {
	case DriverPostgres:
		st, err = postgres.NewStore(ctx, postgres.DefaultConfig(databaseURL))
	default:
		st, err = sqlite.NewStore(databaseURL)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	if err := st.ApplyMigrations(); err != nil {
		_ = st.Close()
		return nil, fmt.Errorf("failed to apply database migrations: %w", err)
	}
	return st, nil
}
