package googleads

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"

	"gads-manager/internal/config/configs"
	"gads-manager/internal/core/domain"
)

type recordedCall struct {
	path   string
	header http.Header
	body   map[string]any
}

// fakeAds serves the token endpoint and the mutate endpoints. failOn maps a
// resource to the status and body it should answer with.
type fakeAds struct {
	mu     sync.Mutex
	calls  []recordedCall
	failOn map[string]func(w http.ResponseWriter)
}

func (f *fakeAds) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path == "/token" {
		_ = r.ParseForm()
		if r.PostForm.Get("refresh_token") != "1//refresh" {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = io.WriteString(w, `{"error":"invalid_grant"}`)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"access_token":"at-123","token_type":"Bearer","expires_in":3600}`)
		return
	}

	var body map[string]any
	_ = json.NewDecoder(r.Body).Decode(&body)
	f.mu.Lock()
	f.calls = append(f.calls, recordedCall{path: r.URL.Path, header: r.Header.Clone(), body: body})
	f.mu.Unlock()

	resource := r.URL.Path[strings.LastIndex(r.URL.Path, "/")+1 : strings.LastIndex(r.URL.Path, ":")]
	if fail, ok := f.failOn[resource]; ok {
		fail(w)
		return
	}

	ops, _ := body["operations"].([]any)
	results := make([]map[string]string, len(ops))
	for i := range ops {
		results[i] = map[string]string{"resourceName": "customers/1234567890/" + resource + "/" + map[string]string{
			"campaignBudgets":  "11",
			"campaigns":        "555",
			"campaignCriteria": "555~2528",
			"adGroups":         "77",
			"adGroupAds":       "77~9",
			"adGroupCriteria":  "77~3",
		}[resource]}
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{"results": results})
}

func newTestClient(t *testing.T, fake *fakeAds) *Client {
	t.Helper()
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	cfg := configs.GoogleAds{
		ClientID:        "cid",
		ClientSecret:    "secret",
		DeveloperToken:  "dev-token",
		LoginCustomerID: "111-222-3333",
		Endpoint:        srv.URL,
		APIVersion:      "v17",
	}
	oauth := OAuthConfig(cfg, "http://localhost/callback")
	oauth.Endpoint = oauth2.Endpoint{TokenURL: srv.URL + "/token", AuthStyle: oauth2.AuthStyleInParams}
	return NewClient(cfg, oauth, srv.Client())
}

func testDefinition() domain.CampaignDefinition {
	return domain.CampaignDefinition{
		Name:               "Spring - 2026-10-15 - 1",
		BudgetAmountMicros: 25_500_000,
		CampaignType:       domain.CampaignTypeSearch,
		AdGroupName:        domain.DefaultAdGroupName,
		DefaultBidMicros:   domain.DefaultBidMicros,
		FinalURL:           "https://example.com/1",
		Path1:              "deals",
		Headlines:          []string{"h1", "h2", "h3"},
		Descriptions:       []string{"d1", "d2"},
		Keywords:           []string{"shoes", "boots"},
		Locations:          []string{"2528"},
		LanguageCode:       "nl",
		DeviceTargeting:    domain.DeviceMobileOnly,
		Network:            domain.NetworkSettings{TargetGoogleSearch: true},
	}
}

func TestCreateCampaign(t *testing.T) {
	fake := &fakeAds{}
	client := newTestClient(t, fake)

	res, err := client.Create(context.Background(), "123-456-7890", "1//refresh", testDefinition())
	require.NoError(t, err)
	require.True(t, res.Success, res.Error)
	assert.Equal(t, "555", res.CampaignID)

	var paths []string
	for _, c := range fake.calls {
		paths = append(paths, c.path)
		assert.Equal(t, "Bearer at-123", c.header.Get("Authorization"))
		assert.Equal(t, "dev-token", c.header.Get("developer-token"))
		assert.Equal(t, "1112223333", c.header.Get("login-customer-id"))
	}
	assert.Equal(t, []string{
		"/v17/customers/1234567890/campaignBudgets:mutate",
		"/v17/customers/1234567890/campaigns:mutate",
		"/v17/customers/1234567890/campaignCriteria:mutate",
		"/v17/customers/1234567890/adGroups:mutate",
		"/v17/customers/1234567890/adGroupAds:mutate",
		"/v17/customers/1234567890/adGroupCriteria:mutate",
	}, paths)

	budget := fake.calls[0].body["operations"].([]any)[0].(map[string]any)["create"].(map[string]any)
	assert.Equal(t, "25500000", budget["amountMicros"])

	camp := fake.calls[1].body["operations"].([]any)[0].(map[string]any)["create"].(map[string]any)
	assert.Equal(t, "PAUSED", camp["status"])
	assert.Equal(t, "customers/1234567890/campaignBudgets/11", camp["campaignBudget"])

	// location + language + two device exclusions
	assert.Len(t, fake.calls[2].body["operations"], 4)
	assert.Len(t, fake.calls[5].body["operations"], 2)
}

func TestCreateRejectedByAPI(t *testing.T) {
	fake := &fakeAds{failOn: map[string]func(http.ResponseWriter){
		"campaigns": func(w http.ResponseWriter) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = io.WriteString(w, `{"error":{"code":400,"message":"Request contains an invalid argument.","status":"INVALID_ARGUMENT",
				"details":[{"errors":[{"message":"A campaign with this name already exists."}]}]}}`)
		},
	}}
	client := newTestClient(t, fake)

	res, err := client.Create(context.Background(), "1234567890", "1//refresh", testDefinition())
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Contains(t, res.Error, "create campaign")
	assert.Contains(t, res.Error, "already exists")
}

func TestCreateThrottled(t *testing.T) {
	fake := &fakeAds{failOn: map[string]func(http.ResponseWriter){
		"campaignBudgets": func(w http.ResponseWriter) {
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = io.WriteString(w, `{"error":{"code":429,"message":"Too many requests.","status":"RESOURCE_EXHAUSTED"}}`)
		},
	}}
	client := newTestClient(t, fake)

	_, err := client.Create(context.Background(), "1234567890", "1//refresh", testDefinition())
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.True(t, apiErr.Temporary())
	assert.Equal(t, "RESOURCE_EXHAUSTED", apiErr.Status)
}

func TestCreateInvalidCustomerID(t *testing.T) {
	fake := &fakeAds{}
	client := newTestClient(t, fake)

	res, err := client.Create(context.Background(), "acme", "1//refresh", testDefinition())
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Empty(t, fake.calls)
}

func TestCreateBadRefreshToken(t *testing.T) {
	fake := &fakeAds{}
	client := newTestClient(t, fake)

	_, err := client.Create(context.Background(), "1234567890", "revoked", testDefinition())
	require.Error(t, err)
	assert.Empty(t, fake.calls)
}

func TestAPIErrorTemporary(t *testing.T) {
	assert.True(t, (&APIError{StatusCode: 503}).Temporary())
	assert.True(t, (&APIError{StatusCode: 400, Status: "DEADLINE_EXCEEDED"}).Temporary())
	assert.False(t, (&APIError{StatusCode: 403, Status: "PERMISSION_DENIED"}).Temporary())

	e := newAPIError(502, []byte("bad gateway"))
	assert.Equal(t, "bad gateway", e.Message)
	assert.True(t, e.Temporary())
}
