package port

import (
	"context"

	"gads-manager/internal/core/domain"
)

// DeployUseCase is the primary port for bulk campaign deployment.
type DeployUseCase interface {
	// Deploy creates one campaign per request item from the referenced
	// template. Precondition failures (ErrInvalidRequest, ErrTemplateNotFound,
	// ErrTemplateInvalid) are returned before any remote call. Per-item
	// failures are reported in the result list, which is in completion order.
	Deploy(ctx context.Context, refreshToken string, req domain.DeployRequest) ([]domain.DeployResult, error)
}

// TemplateUseCase manages stored campaign templates.
type TemplateUseCase interface {
	ListTemplates(ctx context.Context, category string) ([]domain.Template, error)
	GetTemplate(ctx context.Context, id string) (*domain.Template, error)
	// SaveTemplate validates and stores the template, assigning an id when it
	// has none.
	SaveTemplate(ctx context.Context, tpl *domain.Template) error
	DeleteTemplate(ctx context.Context, id string) error
}
