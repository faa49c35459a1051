package port

import (
	"context"

	"gads-manager/internal/core/domain"
)

// CreateResult is the outcome of one remote campaign creation. A rejection by
// the Ads API is reported with Success false and a message in Error rather
// than as a Go error.
type CreateResult struct {
	Success    bool
	CampaignID string
	Error      string
}

// CampaignCreator creates a campaign with its budget, ad group, ad and
// keywords under a customer account.
type CampaignCreator interface {
	Create(ctx context.Context, customerID, refreshToken string, def domain.CampaignDefinition) (CreateResult, error)
}
