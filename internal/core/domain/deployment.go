package domain

// DeployItem is one target of a bulk deployment.
type DeployItem struct {
	CustomerID string `json:"customerId"`
	FinalURL   string `json:"finalUrl"`
}

// Overrides replace template fields for every item of a deployment. Nil
// fields keep the template value.
type Overrides struct {
	DeviceTargeting      *DeviceTargeting `json:"deviceTargeting,omitempty"`
	AdScheduleTemplateID *string          `json:"adScheduleTemplateId,omitempty"`
}

// DeployRequest asks for one campaign per item, all built from the same
// template.
type DeployRequest struct {
	TemplateID string       `json:"templateId"`
	Items      []DeployItem `json:"items"`
	Overrides  *Overrides   `json:"overrides,omitempty"`
}

// DeployResult is the terminal outcome of a single item. Exactly one of
// CampaignID and Error is set.
type DeployResult struct {
	CustomerID string `json:"customerId"`
	Success    bool   `json:"success"`
	CampaignID string `json:"campaignId,omitempty"`
	Error      string `json:"error,omitempty"`
}
