package port

import (
	"context"

	"gads-manager/internal/core/domain"
)

// TemplateRepository is the outbound port to campaign template storage.
// Implementations must be safe for concurrent use.
type TemplateRepository interface {
	// FindByID returns the template with the given id, or nil when there is
	// none.
	FindByID(ctx context.Context, id string) (*domain.Template, error)
	// List returns templates ordered by category and newest first. An empty
	// category returns every template.
	List(ctx context.Context, category string) ([]domain.Template, error)
	// Save inserts the template or replaces the one with the same id. The
	// original creation time is preserved on replace.
	Save(ctx context.Context, tpl *domain.Template) error
	// Delete removes a template and reports whether it existed.
	Delete(ctx context.Context, id string) (bool, error)
}
