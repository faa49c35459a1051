package domain

// Campaign defaults applied to every definition built from a template.
const (
	CampaignTypeSearch  = "SEARCH"
	DefaultAdGroupName  = "Ad Group 1"
	DefaultBidMicros    = int64(1_000_000)
	DefaultBudget       = 10.0
	DefaultLanguageCode = "en"
	DefaultCampaignName = "Campaign"
)

// NetworkSettings selects the networks a search campaign serves on.
type NetworkSettings struct {
	TargetGoogleSearch   bool `json:"targetGoogleSearch"`
	TargetSearchNetwork  bool `json:"targetSearchNetwork"`
	TargetContentNetwork bool `json:"targetContentNetwork"`
}

// CampaignDefinition is everything the Ads API needs to create a campaign
// together with its budget, ad group, ad and keywords.
type CampaignDefinition struct {
	Name                 string
	BudgetAmountMicros   int64
	CampaignType         string
	AdGroupName          string
	DefaultBidMicros     int64
	FinalURL             string
	Path1                string
	Path2                string
	Headlines            []string
	Descriptions         []string
	Keywords             []string
	Locations            []string
	LanguageCode         string
	DeviceTargeting      DeviceTargeting
	AdScheduleTemplateID string
	Network              NetworkSettings
}
