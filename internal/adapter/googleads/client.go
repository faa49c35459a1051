// Package googleads creates search campaigns through the Google Ads REST API.
//
// Every call is authorised with an access token minted from the dashboard
// user's refresh token, plus the shared developer token. A campaign is built
// in dependent steps (budget, campaign, targeting criteria, ad group, ad,
// keywords); the API does not roll back earlier steps when a later one fails.
package googleads

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"gads-manager/internal/config/configs"
	"gads-manager/internal/core/domain"
	"gads-manager/internal/core/port"
)

// Scope is the OAuth scope required by the Ads API.
const Scope = "https://www.googleapis.com/auth/adwords"

// languageConstants maps ISO 639-1 codes to Ads API language criterion ids.
var languageConstants = map[string]string{
	"en": "1000",
	"de": "1001",
	"fr": "1002",
	"es": "1003",
	"it": "1004",
	"nl": "1010",
	"pt": "1014",
}

// Client implements port.CampaignCreator.
type Client struct {
	httpClient      *http.Client
	oauth           *oauth2.Config
	baseURL         string
	developerToken  string
	loginCustomerID string
}

// OAuthConfig returns the OAuth client configuration for the Ads scope. It
// is shared by the login handler and the API client.
func OAuthConfig(cfg configs.GoogleAds, redirectURL string) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		RedirectURL:  redirectURL,
		Scopes:       []string{Scope},
		Endpoint:     google.Endpoint,
	}
}

// NewClient returns an Ads API client. httpClient is used both for token
// refreshes and as the base transport of API calls; nil selects a client
// with cfg.Timeout.
func NewClient(cfg configs.GoogleAds, oauth *oauth2.Config, httpClient *http.Client) *Client {
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 30 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	return &Client{
		httpClient:      httpClient,
		oauth:           oauth,
		baseURL:         strings.TrimRight(cfg.Endpoint, "/") + "/" + cfg.APIVersion,
		developerToken:  cfg.DeveloperToken,
		loginCustomerID: normalizeCustomerID(cfg.LoginCustomerID),
	}
}

// Create builds a paused search campaign under customerID. API rejections
// that will not go away on retry are reported in the result; throttling,
// server and transport errors are returned as errors.
func (c *Client) Create(ctx context.Context, customerID, refreshToken string, def domain.CampaignDefinition) (port.CreateResult, error) {
	cid := normalizeCustomerID(customerID)
	if cid == "" {
		return port.CreateResult{Error: "invalid customer id " + strconv.Quote(customerID)}, nil
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)
	hc := oauth2.NewClient(ctx, c.oauth.TokenSource(ctx, &oauth2.Token{RefreshToken: refreshToken}))
	hc.Timeout = c.httpClient.Timeout

	budgetRN, err := c.mutateOne(ctx, hc, cid, "campaignBudgets", campaignBudget{
		Name:           def.Name + " Budget",
		AmountMicros:   def.BudgetAmountMicros,
		DeliveryMethod: "STANDARD",
	})
	if err != nil {
		return failure("create campaign budget", err)
	}

	campaignRN, err := c.mutateOne(ctx, hc, cid, "campaigns", campaign{
		Name:                   def.Name,
		AdvertisingChannelType: def.CampaignType,
		Status:                 "PAUSED",
		CampaignBudget:         budgetRN,
		NetworkSettings: networkSettings{
			TargetGoogleSearch:   def.Network.TargetGoogleSearch,
			TargetSearchNetwork:  def.Network.TargetSearchNetwork,
			TargetContentNetwork: def.Network.TargetContentNetwork,
		},
	})
	if err != nil {
		return failure("create campaign", err)
	}
	campaignID := campaignRN[strings.LastIndex(campaignRN, "/")+1:]

	if criteria := campaignCriteria(campaignRN, def); len(criteria) > 0 {
		if _, err = c.mutate(ctx, hc, cid, "campaignCriteria", criteria); err != nil {
			return failure("set campaign targeting", err)
		}
	}

	adGroupRN, err := c.mutateOne(ctx, hc, cid, "adGroups", adGroup{
		Name:         def.AdGroupName,
		Campaign:     campaignRN,
		Status:       "ENABLED",
		Type:         "SEARCH_STANDARD",
		CpcBidMicros: def.DefaultBidMicros,
	})
	if err != nil {
		return failure("create ad group", err)
	}

	_, err = c.mutateOne(ctx, hc, cid, "adGroupAds", adGroupAd{
		AdGroup: adGroupRN,
		Status:  "ENABLED",
		Ad: ad{
			FinalURLs: []string{def.FinalURL},
			ResponsiveSearchAd: responsiveSearchAd{
				Headlines:    textAssets(def.Headlines),
				Descriptions: textAssets(def.Descriptions),
				Path1:        def.Path1,
				Path2:        def.Path2,
			},
		},
	})
	if err != nil {
		return failure("create responsive search ad", err)
	}

	keywords := make([]any, 0, len(def.Keywords))
	for _, kw := range def.Keywords {
		keywords = append(keywords, adGroupCriterion{
			AdGroup: adGroupRN,
			Status:  "ENABLED",
			Keyword: keywordInfo{Text: kw, MatchType: "BROAD"},
		})
	}
	if len(keywords) > 0 {
		if _, err = c.mutate(ctx, hc, cid, "adGroupCriteria", keywords); err != nil {
			return failure("add keywords", err)
		}
	}

	return port.CreateResult{Success: true, CampaignID: campaignID}, nil
}

// campaignCriteria returns location, language and device criteria for the
// campaign. Mobile-only targeting excludes desktop and tablet with a -100%
// bid modifier.
func campaignCriteria(campaignRN string, def domain.CampaignDefinition) []any {
	var out []any
	for _, loc := range def.Locations {
		if loc == "" {
			continue
		}
		if !strings.HasPrefix(loc, "geoTargetConstants/") {
			loc = "geoTargetConstants/" + loc
		}
		out = append(out, campaignCriterion{Campaign: campaignRN, Location: &locationInfo{GeoTargetConstant: loc}})
	}
	if id, ok := languageConstants[strings.ToLower(def.LanguageCode)]; ok {
		out = append(out, campaignCriterion{Campaign: campaignRN, Language: &languageInfo{LanguageConstant: "languageConstants/" + id}})
	}
	if def.DeviceTargeting == domain.DeviceMobileOnly {
		for _, device := range []string{"DESKTOP", "TABLET"} {
			zero := 0.0
			out = append(out, campaignCriterion{Campaign: campaignRN, Device: &deviceInfo{Type: device}, BidModifier: &zero})
		}
	}
	return out
}

func textAssets(texts []string) []adTextAsset {
	out := make([]adTextAsset, len(texts))
	for i, t := range texts {
		out[i] = adTextAsset{Text: t}
	}
	return out
}

// failure converts a step error into the creator contract: permanent API
// rejections become a failed result, anything else is returned as an error.
func failure(step string, err error) (port.CreateResult, error) {
	var apiErr *APIError
	if errors.As(err, &apiErr) && !apiErr.Temporary() {
		return port.CreateResult{Error: step + ": " + apiErr.Message}, nil
	}
	return port.CreateResult{}, fmt.Errorf("%s: %w", step, err)
}

func (c *Client) mutateOne(ctx context.Context, hc *http.Client, customerID, resource string, create any) (string, error) {
	names, err := c.mutate(ctx, hc, customerID, resource, []any{create})
	if err != nil {
		return "", err
	}
	if len(names) == 0 {
		return "", fmt.Errorf("%s mutate returned no results", resource)
	}
	return names[0], nil
}

// mutate posts create operations to customers/{id}/{resource}:mutate and
// returns the created resource names.
func (c *Client) mutate(ctx context.Context, hc *http.Client, customerID, resource string, creates []any) ([]string, error) {
	req := mutateRequest{Operations: make([]operation, len(creates))}
	for i, cr := range creates {
		req.Operations[i] = operation{Create: cr}
	}
	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/customers/%s/%s:mutate", c.baseURL, customerID, resource)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("developer-token", c.developerToken)
	if c.loginCustomerID != "" {
		httpReq.Header.Set("login-customer-id", c.loginCustomerID)
	}

	resp, err := hc.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s response: %w", resource, err)
	}
	if resp.StatusCode/100 != 2 {
		return nil, newAPIError(resp.StatusCode, raw)
	}

	var out mutateResponse
	if err = json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode %s response: %w", resource, err)
	}
	names := make([]string, 0, len(out.Results))
	for _, r := range out.Results {
		names = append(names, r.ResourceName)
	}
	return names, nil
}

// normalizeCustomerID strips the dashes of the 123-456-7890 display form.
// It returns "" when the id contains anything but digits.
func normalizeCustomerID(id string) string {
	id = strings.ReplaceAll(strings.TrimSpace(id), "-", "")
	for _, r := range id {
		if r < '0' || r > '9' {
			return ""
		}
	}
	return id
}
