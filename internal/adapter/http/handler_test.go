package httpadapter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"

	"gads-manager/internal/config/configs"
	"gads-manager/internal/core/domain"
	"gads-manager/internal/core/port"
	"gads-manager/internal/core/port/mocks"
)

const testSessionID = "sess-1"

type testEnv struct {
	deploy    *mocks.MockDeployUseCase
	templates *mocks.MockTemplateUseCase
	sessions  *mocks.MockSessionStore
	handler   *Handler
}

func newTestEnv(t *testing.T, tokenURL string) *testEnv {
	t.Helper()
	env := &testEnv{
		deploy:    mocks.NewMockDeployUseCase(t),
		templates: mocks.NewMockTemplateUseCase(t),
		sessions:  mocks.NewMockSessionStore(t),
	}
	oauth := &oauth2.Config{
		ClientID:     "cid",
		ClientSecret: "secret",
		RedirectURL:  "http://localhost:8080/auth/google/callback",
		Scopes:       []string{"https://www.googleapis.com/auth/adwords"},
		Endpoint: oauth2.Endpoint{
			AuthURL:   "https://accounts.example.com/o/oauth2/auth",
			TokenURL:  tokenURL,
			AuthStyle: oauth2.AuthStyleInParams,
		},
	}
	cfg := configs.HTTP{BaseURL: "http://localhost:8080", AllowedOrigins: []string{"http://localhost:3000"}}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	env.handler = NewHandler(env.deploy, env.templates, env.sessions, oauth, logger, cfg, 24*time.Hour)
	env.handler.now = func() time.Time { return time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC) }
	return env
}

func (e *testEnv) withSession() {
	e.sessions.EXPECT().Get(mock.Anything, testSessionID).
		Return(&domain.Session{ID: testSessionID, RefreshToken: "1//refresh"}, nil)
}

func (e *testEnv) do(method, target, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	e.handler.Router().ServeHTTP(rec, req)
	return rec
}

func session() *http.Cookie {
	return &http.Cookie{Name: sessionCookie, Value: testSessionID}
}

func TestBulkDeployRequiresSession(t *testing.T) {
	env := newTestEnv(t, "")

	rec := env.do(http.MethodPost, "/api/v1/campaigns/bulk-deploy", `{}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":"authentication required"}`, rec.Body.String())

	env.sessions.EXPECT().Get(mock.Anything, "stale").Return(nil, port.ErrSessionNotFound)
	rec = env.do(http.MethodPost, "/api/v1/campaigns/bulk-deploy", `{}`, &http.Cookie{Name: sessionCookie, Value: "stale"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestBulkDeploySessionStoreDown(t *testing.T) {
	env := newTestEnv(t, "")
	env.sessions.EXPECT().Get(mock.Anything, testSessionID).Return(nil, errors.New("dial tcp: connection refused"))

	rec := env.do(http.MethodPost, "/api/v1/campaigns/bulk-deploy", `{}`, session())
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestBulkDeploySuccess(t *testing.T) {
	env := newTestEnv(t, "")
	env.withSession()

	want := domain.DeployRequest{
		TemplateID: "tpl-1",
		Items: []domain.DeployItem{
			{CustomerID: "1234567890", FinalURL: "https://example.com/a"},
			{CustomerID: "2345678901", FinalURL: "https://example.com/b"},
		},
	}
	env.deploy.EXPECT().Deploy(mock.Anything, "1//refresh", want).Return([]domain.DeployResult{
		{CustomerID: "2345678901", Success: false, Error: "quota exceeded"},
		{CustomerID: "1234567890", Success: true, CampaignID: "555"},
	}, nil)

	body := `{"templateId":"tpl-1","items":[
		{"customerId":"1234567890","finalUrl":"https://example.com/a"},
		{"customerId":"2345678901","finalUrl":"https://example.com/b"}]}`
	rec := env.do(http.MethodPost, "/api/v1/campaigns/bulk-deploy", body, session())

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"results":[
		{"customerId":"2345678901","success":false,"error":"quota exceeded"},
		{"customerId":"1234567890","success":true,"campaignId":"555"}]}`, rec.Body.String())
}

func TestBulkDeployOverrides(t *testing.T) {
	env := newTestEnv(t, "")
	env.withSession()

	env.deploy.EXPECT().Deploy(mock.Anything, "1//refresh", mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, req domain.DeployRequest) ([]domain.DeployResult, error) {
			require.NotNil(t, req.Overrides)
			require.NotNil(t, req.Overrides.DeviceTargeting)
			assert.Equal(t, domain.DeviceMobileOnly, *req.Overrides.DeviceTargeting)
			assert.Nil(t, req.Overrides.AdScheduleTemplateID)
			return []domain.DeployResult{}, nil
		})

	body := `{"templateId":"tpl-1","items":[{"customerId":"1","finalUrl":"u"}],"overrides":{"deviceTargeting":"MOBILE_ONLY"}}`
	rec := env.do(http.MethodPost, "/api/v1/campaigns/bulk-deploy", body, session())
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestBulkDeployOutlivesClientDisconnect(t *testing.T) {
	env := newTestEnv(t, "")
	env.withSession()
	env.deploy.EXPECT().Deploy(mock.Anything, "1//refresh", mock.Anything).
		RunAndReturn(func(ctx context.Context, _ string, _ domain.DeployRequest) ([]domain.DeployResult, error) {
			assert.NoError(t, ctx.Err())
			assert.Nil(t, ctx.Done())
			return []domain.DeployResult{{CustomerID: "1234567890", Success: true, CampaignID: "555"}}, nil
		})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/campaigns/bulk-deploy",
		strings.NewReader(`{"templateId":"tpl-1","items":[{"customerId":"1234567890","finalUrl":"u"}]}`)).WithContext(ctx)
	req.AddCookie(session())
	rec := httptest.NewRecorder()
	env.handler.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"results":[{"customerId":"1234567890","success":true,"campaignId":"555"}]}`, rec.Body.String())
}

func TestBulkDeployErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
		msg  string
	}{
		{"invalid request", fmt.Errorf("%w: items are required", port.ErrInvalidRequest), http.StatusBadRequest, "invalid request: items are required"},
		{"invalid template", fmt.Errorf("%w: requires at least 3 headlines", port.ErrTemplateInvalid), http.StatusBadRequest, "template invalid: requires at least 3 headlines"},
		{"unknown template", port.ErrTemplateNotFound, http.StatusNotFound, "template not found"},
		{"unexpected", errors.New("connection reset"), http.StatusInternalServerError, "internal error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, "")
			env.withSession()
			env.deploy.EXPECT().Deploy(mock.Anything, "1//refresh", mock.Anything).Return(nil, tt.err)

			rec := env.do(http.MethodPost, "/api/v1/campaigns/bulk-deploy", `{"templateId":"x","items":[]}`, session())
			assert.Equal(t, tt.code, rec.Code)
			assert.JSONEq(t, fmt.Sprintf(`{"success":false,"error":%q}`, tt.msg), rec.Body.String())
		})
	}
}

func TestBulkDeployBadJSON(t *testing.T) {
	env := newTestEnv(t, "")
	env.withSession()

	rec := env.do(http.MethodPost, "/api/v1/campaigns/bulk-deploy", `{"templateId":`, session())
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env.deploy.AssertNotCalled(t, "Deploy", mock.Anything, mock.Anything, mock.Anything)
}

func TestListTemplates(t *testing.T) {
	env := newTestEnv(t, "")
	env.withSession()
	env.templates.EXPECT().ListTemplates(mock.Anything, "NL").Return(nil, nil)

	rec := env.do(http.MethodGet, "/api/v1/campaign-templates?category=NL", "", session())
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"templates":[],"totalTemplates":0,"categories":["NL","US"]}`, rec.Body.String())
}

func TestGetTemplateNotFound(t *testing.T) {
	env := newTestEnv(t, "")
	env.withSession()
	env.templates.EXPECT().GetTemplate(mock.Anything, "missing").Return(nil, port.ErrTemplateNotFound)

	rec := env.do(http.MethodGet, "/api/v1/campaign-templates/missing", "", session())
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSaveTemplate(t *testing.T) {
	env := newTestEnv(t, "")
	env.withSession()
	env.templates.EXPECT().SaveTemplate(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, tpl *domain.Template) error {
			assert.Equal(t, "Spring", tpl.Name)
			assert.Equal(t, []string{"h1", "h2", "h3"}, tpl.Data.Headlines)
			tpl.ID = "new-id"
			return nil
		})

	body := `{"name":"Spring","category":"NL","data":{"finalUrl":"https://example.com","headlines":["h1","h2","h3"],
		"descriptions":["d1","d2"],"keywords":["k"]}}`
	rec := env.do(http.MethodPost, "/api/v1/campaign-templates", body, session())
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"message":"Template created successfully","templateId":"new-id","category":"NL"}`, rec.Body.String())
}

func TestSaveTemplateInvalid(t *testing.T) {
	env := newTestEnv(t, "")
	env.withSession()
	env.templates.EXPECT().SaveTemplate(mock.Anything, mock.Anything).
		Return(fmt.Errorf("%w: requires at least 1 keyword", port.ErrTemplateInvalid))

	rec := env.do(http.MethodPost, "/api/v1/campaign-templates", `{"_id":"t1","name":"x","category":"US"}`, session())
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "requires at least 1 keyword")
}

func TestDeleteTemplate(t *testing.T) {
	env := newTestEnv(t, "")
	env.withSession()
	env.templates.EXPECT().DeleteTemplate(mock.Anything, "t1").Return(nil)
	env.templates.EXPECT().DeleteTemplate(mock.Anything, "t2").Return(port.ErrTemplateNotFound)

	rec := env.do(http.MethodDelete, "/api/v1/campaign-templates/t1", "", session())
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(http.MethodDelete, "/api/v1/campaign-templates/t2", "", session())
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAuthStatus(t *testing.T) {
	env := newTestEnv(t, "")

	rec := env.do(http.MethodGet, "/api/v1/auth/status", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"authenticated":false,"hasRefreshToken":false,"error":null}`, rec.Body.String())

	env.withSession()
	rec = env.do(http.MethodGet, "/api/v1/auth/status", "", session())
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"authenticated":true,"hasRefreshToken":true,"error":null}`, rec.Body.String())
}

func TestLoginRedirect(t *testing.T) {
	env := newTestEnv(t, "")

	rec := env.do(http.MethodGet, "/auth/google", "")
	require.Equal(t, http.StatusTemporaryRedirect, rec.Code)

	loc, err := url.Parse(rec.Header().Get("Location"))
	require.NoError(t, err)
	assert.Equal(t, "offline", loc.Query().Get("access_type"))
	assert.Equal(t, "consent", loc.Query().Get("prompt"))

	var state *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == stateCookie {
			state = c
		}
	}
	require.NotNil(t, state)
	assert.Equal(t, state.Value, loc.Query().Get("state"))
}

func TestCallbackStateMismatch(t *testing.T) {
	env := newTestEnv(t, "")

	rec := env.do(http.MethodGet, "/auth/google/callback?code=abc&state=forged", "",
		&http.Cookie{Name: stateCookie, Value: "expected"})
	require.Equal(t, http.StatusTemporaryRedirect, rec.Code)
	assert.Equal(t, "http://localhost:8080/dashboard?error=invalid_state", rec.Header().Get("Location"))
}

func TestCallbackCreatesSession(t *testing.T) {
	tokenSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseForm()
		assert.Equal(t, "abc", r.PostForm.Get("code"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"access_token":"at","refresh_token":"1//new","token_type":"Bearer","expires_in":3600}`)
	}))
	defer tokenSrv.Close()

	env := newTestEnv(t, tokenSrv.URL)
	var saved *domain.Session
	env.sessions.EXPECT().Save(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, s *domain.Session) error {
			saved = s
			return nil
		})

	rec := env.do(http.MethodGet, "/auth/google/callback?code=abc&state=st", "",
		&http.Cookie{Name: stateCookie, Value: "st"})
	require.Equal(t, http.StatusTemporaryRedirect, rec.Code)
	assert.Equal(t, "http://localhost:8080/dashboard?auth_success=true", rec.Header().Get("Location"))

	require.NotNil(t, saved)
	assert.Equal(t, "1//new", saved.RefreshToken)
	assert.Equal(t, time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC), saved.ExpiresAt)

	var sess *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == sessionCookie {
			sess = c
		}
	}
	require.NotNil(t, sess)
	assert.Equal(t, saved.ID, sess.Value)
	assert.True(t, sess.HttpOnly)
}

func TestCallbackWithoutRefreshToken(t *testing.T) {
	tokenSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"access_token":"at","token_type":"Bearer","expires_in":3600}`)
	}))
	defer tokenSrv.Close()

	env := newTestEnv(t, tokenSrv.URL)
	rec := env.do(http.MethodGet, "/auth/google/callback?code=abc&state=st", "",
		&http.Cookie{Name: stateCookie, Value: "st"})
	assert.Equal(t, "http://localhost:8080/dashboard?error=no_refresh_token", rec.Header().Get("Location"))
}

func TestLogout(t *testing.T) {
	env := newTestEnv(t, "")
	env.sessions.EXPECT().Delete(mock.Anything, testSessionID).Return(nil)

	rec := env.do(http.MethodPost, "/auth/logout", "", session())
	require.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, sessionCookie, cookies[0].Name)
	assert.Negative(t, cookies[0].MaxAge)
}

func TestHealthz(t *testing.T) {
	env := newTestEnv(t, "")

	rec := env.do(http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
