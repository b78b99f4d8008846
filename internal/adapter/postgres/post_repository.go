package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"adpilot/internal/core/domain"
)

// PostRepository reads published posts written by the content pipeline.
type PostRepository struct {
	pool *pgxpool.Pool
}

func NewPostRepository(pool *pgxpool.Pool) *PostRepository {
	return &PostRepository{pool: pool}
}

// LatestPublished returns the tenant's most recently published post, or nil.
func (r *PostRepository) LatestPublished(ctx context.Context, tenantID string) (*domain.ScheduledPost, error) {
	var p domain.ScheduledPost
	err := r.pool.QueryRow(ctx, `SELECT id, tenant_id, status, content, link_url, facebook_post_id, instagram_media_id, published_at
        FROM scheduled_posts
        WHERE tenant_id = $1 AND status = 'published'
        ORDER BY published_at DESC NULLS LAST
        LIMIT 1`, tenantID).
		Scan(&p.ID, &p.TenantID, &p.Status, &p.Content, &p.LinkURL, &p.FacebookPostID, &p.InstagramMediaID, &p.PublishedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}
