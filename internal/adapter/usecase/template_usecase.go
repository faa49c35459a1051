package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"gads-manager/internal/core/domain"
	"gads-manager/internal/core/port"
)

// Minimum content a template needs to produce a valid responsive search ad.
const (
	MinHeadlines    = 3
	MinDescriptions = 2
	MinKeywords     = 1
)

// TemplateUseCase implements port.TemplateUseCase on top of a repository.
type TemplateUseCase struct {
	repo port.TemplateRepository
	now  func() time.Time
}

// NewTemplateUseCase creates a template service backed by repo.
func NewTemplateUseCase(repo port.TemplateRepository) *TemplateUseCase {
	return &TemplateUseCase{repo: repo, now: time.Now}
}

// ListTemplates returns stored templates, optionally limited to a category.
func (u *TemplateUseCase) ListTemplates(ctx context.Context, category string) ([]domain.Template, error) {
	if category != "" && !validCategory(category) {
		return nil, fmt.Errorf("%w: category must be %q or %q", port.ErrInvalidRequest, domain.CategoryNL, domain.CategoryUS)
	}
	return u.repo.List(ctx, category)
}

// GetTemplate returns port.ErrTemplateNotFound for unknown ids.
func (u *TemplateUseCase) GetTemplate(ctx context.Context, id string) (*domain.Template, error) {
	tpl, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if tpl == nil {
		return nil, port.ErrTemplateNotFound
	}
	return tpl, nil
}

// SaveTemplate validates tpl and stores it. New templates get a random id.
// Device targeting defaults to ALL.
func (u *TemplateUseCase) SaveTemplate(ctx context.Context, tpl *domain.Template) error {
	if tpl.Name == "" {
		return fmt.Errorf("%w: name is required", port.ErrInvalidRequest)
	}
	if !validCategory(tpl.Category) {
		return fmt.Errorf("%w: category must be %q or %q", port.ErrInvalidRequest, domain.CategoryNL, domain.CategoryUS)
	}
	if tpl.Data.FinalURL == "" {
		return fmt.Errorf("%w: finalUrl is required", port.ErrTemplateInvalid)
	}
	if tpl.Data.DeviceTargeting == "" {
		tpl.Data.DeviceTargeting = domain.DeviceAll
	}
	if !tpl.Data.DeviceTargeting.Valid() {
		return fmt.Errorf("%w: unknown device targeting %q", port.ErrTemplateInvalid, tpl.Data.DeviceTargeting)
	}
	if err := validateContent(tpl.Data); err != nil {
		return err
	}

	now := u.now().UTC()
	if tpl.ID == "" {
		tpl.ID = uuid.NewString()
		tpl.CreatedAt = now
	}
	tpl.UpdatedAt = now
	return u.repo.Save(ctx, tpl)
}

// DeleteTemplate returns port.ErrTemplateNotFound when nothing was deleted.
func (u *TemplateUseCase) DeleteTemplate(ctx context.Context, id string) error {
	found, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return port.ErrTemplateNotFound
	}
	return nil
}

// validateContent checks the ad content minimums shared by template writes
// and deployments.
func validateContent(data domain.TemplateData) error {
	switch {
	case len(data.Headlines) < MinHeadlines:
		return fmt.Errorf("%w: requires at least %d headlines", port.ErrTemplateInvalid, MinHeadlines)
	case len(data.Descriptions) < MinDescriptions:
		return fmt.Errorf("%w: requires at least %d descriptions", port.ErrTemplateInvalid, MinDescriptions)
	case len(data.Keywords) < MinKeywords:
		return fmt.Errorf("%w: requires at least %d keyword", port.ErrTemplateInvalid, MinKeywords)
	}
	return nil
}

func validCategory(c string) bool {
	return c == domain.CategoryNL || c == domain.CategoryUS
}
