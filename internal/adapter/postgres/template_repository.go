package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"gads-manager/internal/core/domain"
)

// TemplateRepository implements port.TemplateRepository using pgxpool. The
// template content is stored as a JSONB document in the data column.
type TemplateRepository struct {
	pool *pgxpool.Pool
}

// NewTemplateRepository returns a new repository instance.
func NewTemplateRepository(pool *pgxpool.Pool) *TemplateRepository {
	return &TemplateRepository{pool: pool}
}

const templateColumns = `id, name, description, category, data, created_at, updated_at`

func scanTemplate(row pgx.Row) (domain.Template, error) {
	var (
		tpl  domain.Template
		data []byte
	)
	if err := row.Scan(&tpl.ID, &tpl.Name, &tpl.Description, &tpl.Category, &data, &tpl.CreatedAt, &tpl.UpdatedAt); err != nil {
		return tpl, err
	}
	if err := json.Unmarshal(data, &tpl.Data); err != nil {
		return tpl, fmt.Errorf("decode template %s data: %w", tpl.ID, err)
	}
	return tpl, nil
}

// FindByID returns a template by id, or nil when it does not exist.
func (r *TemplateRepository) FindByID(ctx context.Context, id string) (*domain.Template, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+templateColumns+` FROM campaign_templates WHERE id = $1`, id)
	tpl, err := scanTemplate(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &tpl, nil
}

// List returns templates sorted by category, newest first within a category.
func (r *TemplateRepository) List(ctx context.Context, category string) ([]domain.Template, error) {
	query := `SELECT ` + templateColumns + ` FROM campaign_templates`
	var args []any
	if category != "" {
		query += ` WHERE category = $1`
		args = append(args, category)
	}
	query += ` ORDER BY category, created_at DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Template, error) {
		return scanTemplate(row)
	})
}

// Save upserts the template. On conflict the stored created_at is kept and
// written back into tpl.
func (r *TemplateRepository) Save(ctx context.Context, tpl *domain.Template) error {
	data, err := json.Marshal(tpl.Data)
	if err != nil {
		return err
	}
	var createdAt *time.Time
	if !tpl.CreatedAt.IsZero() {
		createdAt = &tpl.CreatedAt
	}
	return r.pool.QueryRow(ctx, `INSERT INTO campaign_templates (`+templateColumns+`)
VALUES ($1, $2, $3, $4, $5, COALESCE($6, now()), $7)
ON CONFLICT (id) DO UPDATE SET
    name = EXCLUDED.name,
    description = EXCLUDED.description,
    category = EXCLUDED.category,
    data = EXCLUDED.data,
    updated_at = EXCLUDED.updated_at
RETURNING created_at`,
		tpl.ID, tpl.Name, tpl.Description, tpl.Category, data, createdAt, tpl.UpdatedAt,
	).Scan(&tpl.CreatedAt)
}

// Delete removes a template and reports whether a row was deleted.
func (r *TemplateRepository) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM campaign_templates WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
