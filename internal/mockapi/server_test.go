package mockapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mehmetcc/oseek/internal/api"
	"github.com/mehmetcc/oseek/internal/httpx"
	"github.com/mehmetcc/oseek/internal/person"
	"github.com/mehmetcc/oseek/internal/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(New("test-secret", zap.NewNop()).Routes())
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(b))
	require.NoError(t, err)
	return resp
}

func decodeError(t *testing.T, resp *http.Response) httpx.ErrorBody {
	t.Helper()
	defer resp.Body.Close()
	var body httpx.ErrorBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func loginToken(t *testing.T, srv *httptest.Server, email string) string {
	t.Helper()
	resp := postJSON(t, srv.URL+"/auth/login", api.LoginRequest{Email: email, Password: seedPassword})
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var auth api.AuthResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&auth))
	return auth.Token
}

func TestLoginIssuesUsableToken(t *testing.T) {
	srv := newTestServer(t)
	tok := loginToken(t, srv, "seeker@oseek.dev")

	assert.False(t, token.IsExpired(tok))

	claims, err := token.Decode(tok)
	require.NoError(t, err)
	assert.Equal(t, person.RoleSeeker, claims.Role)
	assert.Equal(t, "seeker@oseek.dev", claims.Email)
	assert.NotEmpty(t, claims.Subject)

	req, _ := http.NewRequest(http.MethodGet, srv.URL+"/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var me person.Person
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&me))
	assert.Equal(t, claims.Subject, me.ID)
}

func TestAuthMiddleware(t *testing.T) {
	srv := newTestServer(t)

	t.Run("missing token", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/auth/me")
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

		body := decodeError(t, resp)
		assert.Equal(t, httpx.CodeUnauthorized, body.MessageCode)
		assert.Equal(t, "missing bearer token", body.Message)
	})

	t.Run("garbage token", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodGet, srv.URL+"/auth/me", nil)
		req.Header.Set("Authorization", "Bearer garbage")
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, "invalid or expired token", decodeError(t, resp).Message)
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		other := httptest.NewServer(New("other-secret", zap.NewNop()).Routes())
		defer other.Close()
		foreign := loginToken(t, other, "seeker@oseek.dev")

		req, _ := http.NewRequest(http.MethodGet, srv.URL+"/auth/me", nil)
		req.Header.Set("Authorization", "Bearer "+foreign)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}

func TestRoleMiddleware(t *testing.T) {
	srv := newTestServer(t)
	seekerTok := loginToken(t, srv, "seeker@oseek.dev")

	req, _ := http.NewRequest(http.MethodGet, srv.URL+"/jobs/company/my-jobs", nil)
	req.Header.Set("Authorization", "Bearer "+seekerTok)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	body := decodeError(t, resp)
	assert.Equal(t, httpx.CodeForbidden, body.MessageCode)
	assert.Equal(t, "this action needs the company role", body.Message)
}

func TestRequestDecoding(t *testing.T) {
	srv := newTestServer(t)

	t.Run("invalid json", func(t *testing.T) {
		resp, err := http.Post(srv.URL+"/auth/signup", "application/json", bytes.NewReader([]byte("{nope")))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, httpx.CodeInvalidJSON, decodeError(t, resp).MessageCode)
	})

	t.Run("validation failure lists fields", func(t *testing.T) {
		resp := postJSON(t, srv.URL+"/auth/signup", api.SignupRequest{Email: "bad", Password: "x"})
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

		body := decodeError(t, resp)
		assert.Equal(t, httpx.CodeValidationFailed, body.MessageCode)
		assert.NotEmpty(t, body.Fields)
	})
}

func TestJobOwnership(t *testing.T) {
	srv := newTestServer(t)

	// a second company must not touch the seeded company's postings
	signupResp := postJSON(t, srv.URL+"/auth/signup", api.SignupRequest{
		Name:     "Rival Corp",
		Email:    "rival@example.com",
		Password: "supersecret",
		Role:     person.RoleCompany,
	})
	defer signupResp.Body.Close()
	require.Equal(t, http.StatusOK, signupResp.StatusCode)
	var auth api.AuthResponse
	require.NoError(t, json.NewDecoder(signupResp.Body).Decode(&auth))

	listResp, err := http.Get(srv.URL + "/jobs/")
	require.NoError(t, err)
	defer listResp.Body.Close()
	var jobs []api.Job
	require.NoError(t, json.NewDecoder(listResp.Body).Decode(&jobs))
	require.NotEmpty(t, jobs)

	req, _ := http.NewRequest(http.MethodDelete, srv.URL+"/jobs/"+jobs[0].ID, nil)
	req.Header.Set("Authorization", "Bearer "+auth.Token)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "you can only delete your own jobs", decodeError(t, resp).Message)
}
