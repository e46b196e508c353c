package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/neexbeast/sharepath/internal/catalog"
	"github.com/neexbeast/sharepath/internal/draft"
)

// Querier abstracts the subset of pgxpool.Pool used by Repository.
// This allows injection of a mock in tests.
type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Repository provides database access for catalog places and drafts.
type Repository struct {
	q Querier
}

// NewRepository constructs a Repository backed by the given pool.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{q: pool}
}

// NewRepositoryWithQuerier constructs a Repository with a custom Querier (for tests).
func NewRepositoryWithQuerier(q Querier) *Repository {
	return &Repository{q: q}
}

// ListPlaceRecords returns every stored place in catalog order.
func (r *Repository) ListPlaceRecords(ctx context.Context) ([]catalog.Record, error) {
	const q = `
		SELECT id, region, name, category, lat, lng, rating, reviews, description, tags, price_tier
		FROM places
		ORDER BY position, id
	`

	rows, err := r.q.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("querying places: %w", err)
	}
	defer rows.Close()

	var records []catalog.Record
	for rows.Next() {
		var rec catalog.Record
		if err := rows.Scan(
			&rec.ID,
			&rec.Region,
			&rec.Name,
			&rec.Category,
			&rec.Lat,
			&rec.Lng,
			&rec.Rating,
			&rec.Reviews,
			&rec.Description,
			&rec.Tags,
			&rec.PriceTier,
		); err != nil {
			return nil, fmt.Errorf("scanning place row: %w", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating place rows: %w", err)
	}

	return records, nil
}

// SeedPlaces inserts records that are not stored yet, keeping their order
// as the catalog position. Existing rows are left untouched.
// It returns the number of rows inserted.
func (r *Repository) SeedPlaces(ctx context.Context, records []catalog.Record) (int, error) {
	const q = `
		INSERT INTO places (id, position, region, name, category, lat, lng, rating, reviews, description, tags, price_tier)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (id) DO NOTHING
	`

	inserted := 0
	for i, rec := range records {
		tags := rec.Tags
		if tags == nil {
			tags = []string{}
		}

		tag, err := r.q.Exec(ctx, q,
			rec.ID, i, rec.Region, rec.Name, rec.Category,
			rec.Lat, rec.Lng, rec.Rating, rec.Reviews,
			rec.Description, tags, rec.PriceTier,
		)
		if err != nil {
			return inserted, fmt.Errorf("seeding place %s: %w", rec.ID, err)
		}
		inserted += int(tag.RowsAffected())
	}

	return inserted, nil
}

// GetDraft retrieves a draft by id.
// Returns nil, nil when the draft is not found.
func (r *Repository) GetDraft(ctx context.Context, id string) (*draft.Draft, error) {
	const q = `
		SELECT id, title, data, created_at, updated_at
		FROM drafts
		WHERE id = $1
	`

	var d draft.Draft
	var data []byte

	err := r.q.QueryRow(ctx, q, id).Scan(
		&d.ID,
		&d.Title,
		&data,
		&d.CreatedAt,
		&d.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("querying draft %s: %w", id, err)
	}

	d.Data = data
	return &d, nil
}

// UpsertDraft inserts or replaces a draft and returns it with its stored
// timestamps. On conflict (id), title and data are replaced.
func (r *Repository) UpsertDraft(ctx context.Context, d draft.Draft) (*draft.Draft, error) {
	const q = `
		INSERT INTO drafts (id, title, data, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (id) DO UPDATE
		SET title      = EXCLUDED.title,
		    data       = EXCLUDED.data,
		    updated_at = EXCLUDED.updated_at
		RETURNING created_at, updated_at
	`

	out := d
	if err := r.q.QueryRow(ctx, q, d.ID, d.Title, []byte(d.Data)).Scan(&out.CreatedAt, &out.UpdatedAt); err != nil {
		return nil, fmt.Errorf("upserting draft %s: %w", d.ID, err)
	}

	return &out, nil
}
