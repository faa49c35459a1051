package domain

import "time"

// DeviceTargeting restricts which devices a campaign serves on.
type DeviceTargeting string

const (
	DeviceAll        DeviceTargeting = "ALL"
	DeviceMobileOnly DeviceTargeting = "MOBILE_ONLY"
)

// Valid reports whether d is one of the known targeting modes.
func (d DeviceTargeting) Valid() bool {
	return d == DeviceAll || d == DeviceMobileOnly
}

// Template categories used by the dashboard to group templates by market.
const (
	CategoryNL = "NL"
	CategoryUS = "US"
)

// Template is a reusable campaign blueprint. The Data document is stored as
// JSON next to a few indexed columns.
type Template struct {
	ID          string       `json:"_id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Category    string       `json:"category"`
	Data        TemplateData `json:"data"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

// TemplateData holds the campaign content of a template. Budget is a daily
// amount in account currency units.
type TemplateData struct {
	Budget               float64         `json:"budget"`
	FinalURL             string          `json:"finalUrl"`
	Path1                string          `json:"path1,omitempty"`
	Path2                string          `json:"path2,omitempty"`
	Headlines            []string        `json:"headlines"`
	Descriptions         []string        `json:"descriptions"`
	Keywords             []string        `json:"keywords"`
	Locations            []string        `json:"locations"`
	LanguageCode         string          `json:"languageCode"`
	AdScheduleTemplateID string          `json:"adScheduleTemplateId,omitempty"`
	DeviceTargeting      DeviceTargeting `json:"deviceTargeting"`
}
