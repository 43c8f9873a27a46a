package postgres

import (
	"context"
	"fmt"

	"github.com/aussiebroadwan/stash/internal/stash/domain"
	"github.com/aussiebroadwan/stash/pkg/cryptox"
)

const (
	createAccount = `INSERT INTO accounts (id, name, credential, created_at) VALUES ($1, $2, $3, $4)`

	getAccountByID   = `SELECT id, name, credential, created_at FROM accounts WHERE id = $1`
	getAccountByName = `SELECT id, name, credential, created_at FROM accounts WHERE name = $1`
)

type accountsRepo struct {
	db dbtx
}

func (r *accountsRepo) CreateAccount(ctx context.Context, a domain.Account) error {
	_, err := r.db.ExecContext(ctx, createAccount,
		a.ID,
		a.Name,
		a.Credential.Bytes(),
		a.CreatedAt.UTC(),
	)
	return mapConstraint(err)
}

func (r *accountsRepo) GetAccountByID(ctx context.Context, id string) (domain.Account, error) {
	return r.get(ctx, getAccountByID, id)
}

func (r *accountsRepo) GetAccountByName(ctx context.Context, name string) (domain.Account, error) {
	return r.get(ctx, getAccountByName, name)
}

func (r *accountsRepo) get(ctx context.Context, query string, arg any) (domain.Account, error) {
	var (
		a   domain.Account
		raw []byte
	)
	err := r.db.QueryRowContext(ctx, query, arg).Scan(&a.ID, &a.Name, &raw, &a.CreatedAt)
	if err != nil {
		return domain.Account{}, mapNotFound(err)
	}

	a.Credential, err = cryptox.CredentialFromBytes(raw)
	if err != nil {
		return domain.Account{}, fmt.Errorf("account %s: %w", a.ID, err)
	}
	return a, nil
}
