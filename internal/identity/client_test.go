package identity_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paymesh/session-gate/internal/identity"
	"github.com/paymesh/session-gate/internal/serviceerr"
)

func TestHTTPClient_Me(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		body       string
		errAssert  assert.ErrorAssertionFunc
		wantKYC    bool
	}{
		{
			name:       "Success with submitted KYC",
			statusCode: http.StatusOK,
			body:       `{"status":"success","data":{"kyc_submitted":true,"email":"merchant@example.com"}}`,
			errAssert:  assert.NoError,
			wantKYC:    true,
		},
		{
			name:       "Success with pending KYC",
			statusCode: http.StatusOK,
			body:       `{"status":"success","data":{"kyc_submitted":false}}`,
			errAssert:  assert.NoError,
			wantKYC:    false,
		},
		{
			name:       "Unauthorized",
			statusCode: http.StatusUnauthorized,
			body:       `{"status":"error"}`,
			errAssert: func(t assert.TestingT, err error, _ ...any) bool {
				return assert.ErrorIs(t, err, serviceerr.ErrAuthRejected)
			},
		},
		{
			name:       "Forbidden",
			statusCode: http.StatusForbidden,
			body:       `{"status":"error"}`,
			errAssert: func(t assert.TestingT, err error, _ ...any) bool {
				return assert.ErrorIs(t, err, serviceerr.ErrAuthRejected)
			},
		},
		{
			name:       "Non-success envelope",
			statusCode: http.StatusOK,
			body:       `{"status":"error","data":{}}`,
			errAssert: func(t assert.TestingT, err error, _ ...any) bool {
				return assert.ErrorIs(t, err, serviceerr.ErrAuthRejected)
			},
		},
		{
			name:       "Server error",
			statusCode: http.StatusInternalServerError,
			body:       `{}`,
			errAssert:  assert.Error,
		},
		{
			name:       "Malformed body",
			statusCode: http.StatusOK,
			body:       `{"status":`,
			errAssert:  assert.Error,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodGet, r.Method)
				assert.Equal(t, "/api/v1/auth/users/me", r.URL.Path)
				assert.Equal(t, "Bearer token-123", r.Header.Get("Authorization"))

				w.WriteHeader(tt.statusCode)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client, err := identity.NewHTTPClient(server.URL, nil)
			require.NoError(t, err)

			profile, err := client.Me(t.Context(), "token-123")
			if !tt.errAssert(t, err) {
				return
			}
			if err != nil {
				return
			}

			assert.Equal(t, tt.wantKYC, profile.KYCSubmitted)
			assert.NotEmpty(t, profile.Raw, "raw profile should be kept for caching")
		})
	}
}

func TestHTTPClient_Me_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close()

	client, err := identity.NewHTTPClient(server.URL, nil)
	require.NoError(t, err)

	_, err = client.Me(t.Context(), "token-123")
	require.Error(t, err)
	assert.NotErrorIs(t, err, serviceerr.ErrAuthRejected, "transport errors are not auth rejections")
}

func TestHTTPClient_Login(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/api/v1/auth/login", r.URL.Path)

			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "merchant@example.com", body["email"])
			assert.Equal(t, "hunter2", body["password"])

			_, _ = w.Write([]byte(`{"status":"success","data":{"access_token":"token-9","email_verified":true,"business_id":"biz-9"}}`))
		}))
		defer server.Close()

		client, err := identity.NewHTTPClient(server.URL, nil)
		require.NoError(t, err)

		result, err := client.Login(t.Context(), "merchant@example.com", "hunter2")
		require.NoError(t, err)

		assert.Equal(t, "token-9", result.AccessToken)
		assert.Equal(t, "biz-9", result.BusinessID)
		assert.True(t, result.EmailVerified)
	})

	t.Run("Invalid credentials", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer server.Close()

		client, err := identity.NewHTTPClient(server.URL, nil)
		require.NoError(t, err)

		_, err = client.Login(t.Context(), "merchant@example.com", "wrong")
		assert.ErrorIs(t, err, serviceerr.ErrAuthRejected)
	})
}
