package errata

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Get(t *testing.T) {
	var gotPath, gotQuery, gotAuth, gotRequestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query().Get("filter[name]")
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-ID")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"data": []}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, WithToken("sekret"))

	params := url.Values{}
	params.Set("filter[name]", "redhat-ubi8")
	resp, err := client.Get(context.Background(), "api/v1/cdn_repos", params)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "/api/v1/cdn_repos", gotPath)
	assert.Equal(t, "redhat-ubi8", gotQuery)
	assert.Equal(t, "Bearer sekret", gotAuth)
	assert.NotEmpty(t, gotRequestID, "every request should carry an X-Request-ID")
}

func TestClient_PostJSONBody(t *testing.T) {
	var gotContentType string
	var gotBody []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"data": {"id": 1}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)

	body := map[string]interface{}{"cdn_repo": map[string]interface{}{"name": "repo1"}}
	resp, err := client.Post(context.Background(), "api/v1/cdn_repos", body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "application/json", gotContentType)
	assert.JSONEq(t, `{"cdn_repo": {"name": "repo1"}}`, string(gotBody))
}

func TestClient_NoAuthHeaderWithoutToken(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	resp, err := client.Delete(context.Background(), "api/v1/cdn_repo_package_tags/7")
	require.NoError(t, err)

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Empty(t, gotAuth)
}

func TestResponse_ErrorDetail(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected string
	}{
		{
			name:     "error field",
			body:     `{"error": "Name has already been taken"}`,
			expected: "Name has already been taken",
		},
		{
			name:     "errors field",
			body:     `{"errors": {"name": ["is invalid"]}}`,
			expected: "map[name:[is invalid]]",
		},
		{
			name:     "non-json body",
			body:     "internal server error\n",
			expected: "internal server error",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resp := &Response{StatusCode: 500, Body: []byte(tc.body)}
			assert.Equal(t, tc.expected, resp.ErrorDetail())
		})
	}
}

func TestAPIError(t *testing.T) {
	resp := &Response{StatusCode: 422, Body: []byte(`{"error": "bad arch"}`)}
	err := NewAPIError("POST", "api/v1/cdn_repos", resp)

	assert.Equal(t, "POST api/v1/cdn_repos returned 422: bad arch", err.Error())
	assert.True(t, IsAPIError(err))
	assert.False(t, IsAPIError(assert.AnError))
}
