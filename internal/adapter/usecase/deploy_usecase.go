package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"gads-manager/internal/config/configs"
	"gads-manager/internal/core/domain"
	"gads-manager/internal/core/port"
	"gads-manager/internal/metrics"
)

// Limits the deployer falls back to when the configuration leaves a value
// unset.
const (
	DefaultMaxBatch     = 20
	DefaultConcurrency  = 3
	DefaultMaxAttempts  = 2
	DefaultRetryBackoff = time.Second
)

// DeployUseCase fans one campaign template out to many customer accounts.
// It implements port.DeployUseCase.
type DeployUseCase struct {
	repo    port.TemplateRepository
	creator port.CampaignCreator
	logger  *slog.Logger
	limits  configs.Deploy

	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration) error
}

// NewDeployUseCase creates a deployer. Zero limits are replaced with the
// package defaults.
func NewDeployUseCase(repo port.TemplateRepository, creator port.CampaignCreator, logger *slog.Logger, limits configs.Deploy) *DeployUseCase {
	if limits.MaxBatch <= 0 {
		limits.MaxBatch = DefaultMaxBatch
	}
	if limits.Concurrency <= 0 {
		limits.Concurrency = DefaultConcurrency
	}
	if limits.MaxAttempts <= 0 {
		limits.MaxAttempts = DefaultMaxAttempts
	}
	if limits.RetryBackoff <= 0 {
		limits.RetryBackoff = DefaultRetryBackoff
	}
	return &DeployUseCase{
		repo:    repo,
		creator: creator,
		logger:  logger,
		limits:  limits,
		now:     time.Now,
		sleep:   sleepContext,
	}
}

// Deploy validates the request and the referenced template, then creates one
// campaign per item with at most limits.Concurrency creations in flight.
// Items beyond limits.MaxBatch are dropped. Every accepted item yields exactly
// one result; results are appended in completion order.
func (u *DeployUseCase) Deploy(ctx context.Context, refreshToken string, req domain.DeployRequest) ([]domain.DeployResult, error) {
	if req.TemplateID == "" || len(req.Items) == 0 {
		return nil, fmt.Errorf("%w: templateId and non-empty items are required", port.ErrInvalidRequest)
	}
	if o := req.Overrides; o != nil && o.DeviceTargeting != nil && !o.DeviceTargeting.Valid() {
		return nil, fmt.Errorf("%w: unknown device targeting %q", port.ErrInvalidRequest, *o.DeviceTargeting)
	}

	tpl, err := u.repo.FindByID(ctx, req.TemplateID)
	if err != nil {
		return nil, fmt.Errorf("find template %s: %w", req.TemplateID, err)
	}
	if tpl == nil {
		return nil, port.ErrTemplateNotFound
	}
	if err = validateContent(tpl.Data); err != nil {
		return nil, err
	}

	items := req.Items
	if len(items) > u.limits.MaxBatch {
		u.logger.Info("bulk deploy batch truncated",
			slog.String("template_id", tpl.ID),
			slog.Int("requested", len(items)),
			slog.Int("accepted", u.limits.MaxBatch))
		items = items[:u.limits.MaxBatch]
	}

	base := baseDefinition(tpl, req.Overrides)
	namePrefix := tpl.Name
	if namePrefix == "" {
		namePrefix = domain.DefaultCampaignName
	}
	today := u.now().UTC().Format(time.DateOnly)

	var (
		next    atomic.Int64
		mu      sync.Mutex
		results = make([]domain.DeployResult, 0, len(items))
		wg      sync.WaitGroup
	)
	workers := min(u.limits.Concurrency, len(items))
	wg.Add(workers)
	for range workers {
		go func() {
			defer wg.Done()
			for {
				i := int(next.Add(1) - 1)
				if i >= len(items) {
					return
				}
				def := base
				def.Name = fmt.Sprintf("%s - %s - %d", namePrefix, today, i+1)
				def.FinalURL = items[i].FinalURL

				res := u.deployItem(ctx, refreshToken, items[i].CustomerID, def)

				mu.Lock()
				results = append(results, res)
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	u.logger.Info("bulk deploy finished",
		slog.String("template_id", tpl.ID),
		slog.Int("items", len(results)),
		slog.Int("failed", countFailed(results)))
	return results, nil
}

// deployItem runs the attempts for one item and returns its terminal result.
func (u *DeployUseCase) deployItem(ctx context.Context, refreshToken, customerID string, def domain.CampaignDefinition) domain.DeployResult {
	start := time.Now()
	metrics.InFlight.Inc()
	defer func() {
		metrics.InFlight.Dec()
		metrics.DeployItemDuration.Observe(time.Since(start).Seconds())
	}()

	var msg string
	for attempt := 1; ; attempt++ {
		res, err := u.creator.Create(ctx, customerID, refreshToken, def)
		if err == nil && res.Success {
			metrics.DeployItems.WithLabelValues("success").Inc()
			return domain.DeployResult{CustomerID: customerID, Success: true, CampaignID: res.CampaignID}
		}
		msg = failureMessage(res, err)
		if attempt >= u.limits.MaxAttempts || !IsTransient(err, msg) {
			break
		}

		delay := u.limits.RetryBackoff * time.Duration(attempt)
		u.logger.Warn("transient campaign creation error, retrying",
			slog.String("customer_id", customerID),
			slog.Int("attempt", attempt),
			slog.Duration("delay", delay),
			slog.String("error", msg))
		metrics.DeployRetries.Inc()
		if err = u.sleep(ctx, delay); err != nil {
			msg = err.Error()
			break
		}
	}

	u.logger.Warn("campaign creation failed",
		slog.String("customer_id", customerID),
		slog.String("campaign", def.Name),
		slog.String("error", msg))
	metrics.DeployItems.WithLabelValues("failure").Inc()
	return domain.DeployResult{CustomerID: customerID, Success: false, Error: msg}
}

// baseDefinition merges template data with request overrides. Name and final
// URL are filled per item.
func baseDefinition(tpl *domain.Template, o *domain.Overrides) domain.CampaignDefinition {
	data := tpl.Data

	budget := data.Budget
	if budget == 0 {
		budget = domain.DefaultBudget
	}
	language := data.LanguageCode
	if language == "" {
		language = domain.DefaultLanguageCode
	}
	device := data.DeviceTargeting
	if device == "" {
		device = domain.DeviceAll
	}
	schedule := data.AdScheduleTemplateID
	if o != nil {
		if o.DeviceTargeting != nil {
			device = *o.DeviceTargeting
		}
		if o.AdScheduleTemplateID != nil {
			schedule = *o.AdScheduleTemplateID
		}
	}

	return domain.CampaignDefinition{
		BudgetAmountMicros:   int64(math.Round(budget * 1_000_000)),
		CampaignType:         domain.CampaignTypeSearch,
		AdGroupName:          domain.DefaultAdGroupName,
		DefaultBidMicros:     domain.DefaultBidMicros,
		Path1:                data.Path1,
		Path2:                data.Path2,
		Headlines:            data.Headlines,
		Descriptions:         data.Descriptions,
		Keywords:             data.Keywords,
		Locations:            data.Locations,
		LanguageCode:         language,
		DeviceTargeting:      device,
		AdScheduleTemplateID: schedule,
		Network:              domain.NetworkSettings{TargetGoogleSearch: true},
	}
}

func countFailed(results []domain.DeployResult) int {
	n := 0
	for _, r := range results {
		if !r.Success {
			n++
		}
	}
	return n
}
