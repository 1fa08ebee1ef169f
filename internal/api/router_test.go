package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"rockroutes/internal/api/controllers"
	"rockroutes/internal/config"
	"rockroutes/internal/services"
	"rockroutes/internal/testutil"
	"rockroutes/pkg/middleware"
	"rockroutes/pkg/utils"
)

const testSecret = "router-test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

type testServer struct {
	engine   *gin.Engine
	accounts *testutil.AccountRepo
	gyms     *testutil.GymRepo
	routes   *testutil.RouteRepo
	google   *testutil.GoogleVerifier
}

type envelope struct {
	Status  string            `json:"status"`
	Code    int               `json:"code"`
	Message string            `json:"message"`
	TraceID string            `json:"trace_id"`
	Data    json.RawMessage   `json:"data"`
	Errors  map[string]string `json:"errors"`
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.JWTSecret = testSecret

	tokens, err := utils.NewTokenManager(testSecret, utils.TokenTTL)
	require.NoError(t, err)

	s := &testServer{
		accounts: testutil.NewAccountRepo(),
		gyms:     testutil.NewGymRepo(),
		routes:   testutil.NewRouteRepo(),
		google:   testutil.NewGoogleVerifier(),
	}
	s.gyms.CascadeTo(s.routes)

	log := zap.NewNop()
	handlers := Handlers{
		Accounts: controllers.NewAccountController(services.NewAccountService(s.accounts, tokens, s.google, log)),
		Gyms:     controllers.NewGymController(services.NewGymService(s.gyms)),
		Routes:   controllers.NewRouteController(services.NewRouteService(s.routes, s.gyms)),
	}
	s.engine = NewRouter(cfg, log, middleware.JWTAuthMiddleware(tokens, s.accounts), handlers)
	return s
}

func (s *testServer) do(t *testing.T, method, path, token string, body interface{}) (int, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, "/rockroutes"+path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return w.Code, env
}

func (s *testServer) register(t *testing.T, email string) (token string, accountID string) {
	t.Helper()
	code, env := s.do(t, http.MethodPost, "/auth/register", "", gin.H{"email": email, "password": "p"})
	require.Equal(t, http.StatusCreated, code, env.Message)

	var auth struct {
		User  struct{ ID string } `json:"user"`
		Token string              `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &auth))
	return auth.Token, auth.User.ID
}

func (s *testServer) repoCalls() int64 {
	return s.accounts.Calls() + s.gyms.Calls() + s.routes.Calls()
}

func decode[T any](t *testing.T, env envelope) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(env.Data, &v))
	return v
}

type gymBody struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	IsIndoor bool   `json:"isIndoor"`
	User     string `json:"user"`
}

type routeBody struct {
	ID           string     `json:"id"`
	Attempts     int        `json:"attempts"`
	IsProject    bool       `json:"isProject"`
	IsComplete   bool       `json:"isComplete"`
	DateComplete *time.Time `json:"dateComplete"`
	User         string     `json:"user"`
	Gym          string     `json:"gym"`
}

func TestExampleScenario(t *testing.T) {
	s := newTestServer(t)
	token, accountID := s.register(t, "a@x.com")
	require.NotEmpty(t, token)

	code, env := s.do(t, http.MethodPost, "/gyms", token, gin.H{"name": "Crag"})
	require.Equal(t, http.StatusCreated, code)
	gym := decode[gymBody](t, env)
	assert.Equal(t, accountID, gym.User)
	assert.True(t, gym.IsIndoor)

	code, env = s.do(t, http.MethodPost, "/routes", token, gin.H{"name": "R1", "grade": "5.10a", "gym": gym.ID})
	require.Equal(t, http.StatusCreated, code, env.Errors)
	route := decode[routeBody](t, env)
	assert.Zero(t, route.Attempts)
	assert.False(t, route.IsComplete)

	for i := 0; i < 3; i++ {
		code, env = s.do(t, http.MethodPut, "/routes/"+route.ID+"/log-attempt", token, nil)
		require.Equal(t, http.StatusOK, code)
	}
	assert.Equal(t, 3, decode[routeBody](t, env).Attempts)

	code, env = s.do(t, http.MethodPut, "/routes/"+route.ID+"/mark-complete", token, nil)
	require.Equal(t, http.StatusOK, code)
	first := decode[routeBody](t, env)
	assert.True(t, first.IsComplete)
	assert.False(t, first.IsProject)
	require.NotNil(t, first.DateComplete)

	code, env = s.do(t, http.MethodPut, "/routes/"+route.ID+"/mark-complete", token, nil)
	require.Equal(t, http.StatusOK, code)
	second := decode[routeBody](t, env)
	assert.Equal(t, first, second)
}

func TestGate_RejectsBeforePersistence(t *testing.T) {
	s := newTestServer(t)
	token, accountID := s.register(t, "a@x.com")
	id := uuid.NewString()

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, &utils.Claims{
		AccountID: accountID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-61 * time.Minute)),
		},
	})
	expiredToken, err := expired.SignedString([]byte(testSecret))
	require.NoError(t, err)

	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &utils.Claims{
		AccountID:        accountID,
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
	}).SignedString([]byte("other-secret"))
	require.NoError(t, err)

	protected := []struct{ method, path string }{
		{http.MethodGet, "/user"},
		{http.MethodGet, "/gyms"},
		{http.MethodPost, "/gyms"},
		{http.MethodGet, "/gyms/" + id},
		{http.MethodPut, "/gyms/" + id},
		{http.MethodDelete, "/gyms/" + id},
		{http.MethodGet, "/routes"},
		{http.MethodPost, "/routes"},
		{http.MethodPut, "/routes/" + id + "/log-attempt"},
		{http.MethodPut, "/routes/" + id + "/toggle-project"},
		{http.MethodPut, "/routes/" + id + "/mark-complete"},
	}
	tokens := []struct {
		name, token, message string
	}{
		{"no token", "", "Not authorized, no token"},
		{"expired", expiredToken, "Not authorized, token expired"},
		{"bad signature", forged, "Not authorized, token failed"},
		{"garbage", "not.a.jwt", "Not authorized, token failed"},
	}

	for _, tk := range tokens {
		for _, ep := range protected {
			t.Run(tk.name+" "+ep.method+" "+ep.path, func(t *testing.T) {
				before := s.repoCalls()
				code, env := s.do(t, ep.method, ep.path, tk.token, gin.H{"name": "x"})
				assert.Equal(t, http.StatusUnauthorized, code)
				assert.Equal(t, tk.message, env.Message)
				assert.Equal(t, before, s.repoCalls(), "no persistence access")
			})
		}
	}

	t.Run("valid token reaches handler", func(t *testing.T) {
		code, _ := s.do(t, http.MethodGet, "/user", token, nil)
		assert.Equal(t, http.StatusOK, code)
	})
}

func TestGate_UnknownAccount(t *testing.T) {
	s := newTestServer(t)
	tokens, err := utils.NewTokenManager(testSecret, utils.TokenTTL)
	require.NoError(t, err)
	orphan, err := tokens.CreateToken(uuid.NewString())
	require.NoError(t, err)

	code, env := s.do(t, http.MethodGet, "/gyms", orphan, nil)
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "Not authorized, user not found", env.Message)
}

func TestGetUser_OmitsPasswordHash(t *testing.T) {
	s := newTestServer(t)
	token, accountID := s.register(t, "Climber@X.com")

	code, env := s.do(t, http.MethodGet, "/user", token, nil)
	require.Equal(t, http.StatusOK, code)
	assert.NotContains(t, string(env.Data), "password")

	user := decode[map[string]interface{}](t, env)
	assert.Equal(t, accountID, user["id"])
	assert.Equal(t, "climber@x.com", user["email"])
}

func TestInvalidID_RejectedBeforeLookup(t *testing.T) {
	s := newTestServer(t)
	token, _ := s.register(t, "a@x.com")

	cases := []struct{ method, path, message string }{
		{http.MethodGet, "/gyms/not-an-id", "Invalid gym ID"},
		{http.MethodPut, "/gyms/123", "Invalid gym ID"},
		{http.MethodDelete, "/gyms/xyz", "Invalid gym ID"},
		{http.MethodGet, "/routes/not-an-id", "Invalid route ID"},
		{http.MethodPut, "/routes/nope/mark-complete", "Invalid route ID"},
	}
	for _, tc := range cases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			s.gyms.Reset()
			s.routes.Reset()
			code, env := s.do(t, tc.method, tc.path, token, gin.H{})
			assert.Equal(t, http.StatusBadRequest, code)
			assert.Equal(t, tc.message, env.Message)
			assert.Zero(t, s.gyms.Calls()+s.routes.Calls())
		})
	}
}

func TestCrossAccountAccess_Forbidden(t *testing.T) {
	s := newTestServer(t)
	ownerToken, _ := s.register(t, "owner@x.com")
	otherToken, _ := s.register(t, "other@x.com")

	_, env := s.do(t, http.MethodPost, "/gyms", ownerToken, gin.H{"name": "Crag"})
	gym := decode[gymBody](t, env)
	_, env = s.do(t, http.MethodPost, "/routes", ownerToken, gin.H{"name": "R1", "grade": "V4", "gym": gym.ID})
	route := decode[routeBody](t, env)

	cases := []struct{ method, path string }{
		{http.MethodGet, "/gyms/" + gym.ID},
		{http.MethodPut, "/gyms/" + gym.ID},
		{http.MethodDelete, "/gyms/" + gym.ID},
		{http.MethodGet, "/routes/" + route.ID},
		{http.MethodPut, "/routes/" + route.ID},
		{http.MethodDelete, "/routes/" + route.ID},
		{http.MethodPut, "/routes/" + route.ID + "/log-attempt"},
	}
	for _, tc := range cases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			code, _ := s.do(t, tc.method, tc.path, otherToken, gin.H{"name": "Mine now"})
			assert.Equal(t, http.StatusForbidden, code)
		})
	}

	code, env := s.do(t, http.MethodGet, "/gyms/"+gym.ID, ownerToken, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Crag", decode[gymBody](t, env).Name)

	code, env = s.do(t, http.MethodGet, "/gyms", otherToken, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Empty(t, decode[[]gymBody](t, env))
}

func TestUpdate_IgnoresOwnerAndTimestamps(t *testing.T) {
	s := newTestServer(t)
	token, accountID := s.register(t, "a@x.com")

	_, env := s.do(t, http.MethodPost, "/gyms", token, gin.H{"name": "Crag"})
	gym := decode[gymBody](t, env)

	code, env := s.do(t, http.MethodPut, "/gyms/"+gym.ID, token, gin.H{
		"name":      "Renamed",
		"user":      uuid.NewString(),
		"createdAt": "2001-01-01T00:00:00Z",
	})
	require.Equal(t, http.StatusOK, code)

	updated := decode[map[string]interface{}](t, env)
	assert.Equal(t, "Renamed", updated["name"])
	assert.Equal(t, accountID, updated["user"])
	assert.NotContains(t, updated["createdAt"], "2001")
}

func TestNotFound(t *testing.T) {
	s := newTestServer(t)
	token, _ := s.register(t, "a@x.com")

	code, env := s.do(t, http.MethodGet, "/gyms/"+uuid.NewString(), token, nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Gym not found", env.Message)

	code, env = s.do(t, http.MethodPut, "/routes/"+uuid.NewString()+"/toggle-project", token, nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Route not found", env.Message)
}

func TestCreate_ValidationMaps(t *testing.T) {
	s := newTestServer(t)
	token, _ := s.register(t, "a@x.com")

	code, env := s.do(t, http.MethodPost, "/gyms", token, gin.H{"address": "somewhere"})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, env.Errors, "name")

	code, env = s.do(t, http.MethodPost, "/routes", token, gin.H{"name": "R1"})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, env.Errors, "grade")
	assert.Contains(t, env.Errors, "gym")
	assert.Zero(t, s.routes.Writes)
}

func TestRegister_DuplicateAndLogin(t *testing.T) {
	s := newTestServer(t)
	s.register(t, "a@x.com")

	code, env := s.do(t, http.MethodPost, "/auth/register", "", gin.H{"email": "A@x.com", "password": "q"})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "User already exists", env.Message)
	assert.Equal(t, 1, s.accounts.Count())

	code, env = s.do(t, http.MethodPost, "/auth/login", "", gin.H{"email": "a@x.com", "password": "wrong"})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Invalid credentials", env.Message)

	code, env = s.do(t, http.MethodPost, "/auth/login", "", gin.H{"email": "a@x.com", "password": "p"})
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, string(env.Data), "token")
}

func TestGoogleAuth(t *testing.T) {
	s := newTestServer(t)
	s.google.Identities["good"] = &utils.GoogleIdentity{
		Subject: "g-1", Email: "g@x.com", EmailVerified: true, Name: "G",
	}

	code, env := s.do(t, http.MethodPost, "/auth/google", "", gin.H{"token": "good"})
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, string(env.Data), "g@x.com")

	for _, body := range []gin.H{{"token": "bad"}, {}} {
		code, env = s.do(t, http.MethodPost, "/auth/google", "", body)
		assert.Equal(t, http.StatusUnauthorized, code)
		assert.Equal(t, "Google authentication failed. Invalid token.", env.Message)
	}
}

func TestDeleteGym_CascadesToRoutes(t *testing.T) {
	s := newTestServer(t)
	token, _ := s.register(t, "a@x.com")

	_, env := s.do(t, http.MethodPost, "/gyms", token, gin.H{"name": "Crag"})
	gym := decode[gymBody](t, env)
	_, env = s.do(t, http.MethodPost, "/routes", token, gin.H{"name": "R1", "grade": "V1", "gym": gym.ID})
	route := decode[routeBody](t, env)

	code, env := s.do(t, http.MethodDelete, "/gyms/"+gym.ID, token, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Gym removed", env.Message)
	assert.Empty(t, env.Data)

	code, _ = s.do(t, http.MethodGet, "/routes/"+route.ID, token, nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestHealth_Unavailable(t *testing.T) {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	engine := NewRouter(cfg, zap.NewNop(), func(c *gin.Context) { c.Next() }, Handlers{
		Health: func(ctx context.Context) error { return errors.New("connection refused") },
	})

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.NotContains(t, w.Body.String(), "connection refused")
}

func TestTraceIDAndHealth(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	traceID := w.Header().Get(middleware.TraceIDHeader)
	_, err := uuid.Parse(traceID)
	assert.NoError(t, err)
	assert.Contains(t, w.Body.String(), traceID)
}
