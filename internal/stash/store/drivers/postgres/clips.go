package postgres

import (
	"context"

	"github.com/aussiebroadwan/stash/internal/stash/domain"
)

const (
	upsertClip = `
INSERT INTO clips (code, content, protected, created_at, updated_at)
VALUES ($1, $2, $3, $4, $4)
ON CONFLICT (code) DO UPDATE SET
    content    = EXCLUDED.content,
    protected  = EXCLUDED.protected,
    updated_at = EXCLUDED.updated_at
RETURNING created_at, updated_at`

	getClip = `SELECT code, content, protected, created_at, updated_at FROM clips WHERE code = $1`
)

type clipsRepo struct {
	db dbtx
}

func (r *clipsRepo) UpsertClip(ctx context.Context, c domain.Clip) (domain.Clip, error) {
	err := r.db.QueryRowContext(ctx, upsertClip,
		c.Code,
		c.Content,
		c.Protected,
		c.UpdatedAt.UTC(),
	).Scan(&c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return domain.Clip{}, err
	}
	return c, nil
}

func (r *clipsRepo) GetClip(ctx context.Context, code int) (domain.Clip, error) {
	var c domain.Clip
	err := r.db.QueryRowContext(ctx, getClip, code).
		Scan(&c.Code, &c.Content, &c.Protected, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return domain.Clip{}, mapNotFound(err)
	}
	return c, nil
}
