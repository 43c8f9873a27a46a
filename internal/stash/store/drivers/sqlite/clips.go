package sqlite

import (
	"context"

	"github.com/aussiebroadwan/stash/internal/stash/domain"
)

const (
	upsertClip = `
INSERT INTO clips (code, content, protected, created_at, updated_at)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT (code) DO UPDATE SET
    content    = excluded.content,
    protected  = excluded.protected,
    updated_at = excluded.updated_at`

	getClip = `SELECT code, content, protected, created_at, updated_at FROM clips WHERE code = ?`
)

type clipsRepo struct {
	db dbtx
}

func (r *clipsRepo) UpsertClip(ctx context.Context, c domain.Clip) (domain.Clip, error) {
	now := c.UpdatedAt.UTC()
	if _, err := r.db.ExecContext(ctx, upsertClip, c.Code, c.Content, c.Protected, now, now); err != nil {
		return domain.Clip{}, err
	}
	return r.GetClip(ctx, c.Code)
}

func (r *clipsRepo) GetClip(ctx context.Context, code int) (domain.Clip, error) {
	var c domain.Clip
	err := r.db.QueryRowContext(ctx, getClip, code).
		Scan(&c.Code, &c.Content, &c.Protected, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return domain.Clip{}, mapNotFound(err)
	}
	c.CreatedAt, c.UpdatedAt = c.CreatedAt.UTC(), c.UpdatedAt.UTC()
	return c, nil
}
