package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
)

// TestDefaultAuthConfig tests default configuration.
func TestDefaultAuthConfig(t *testing.T) {
	config := DefaultAuthConfig()

	if config.Enabled {
		t.Error("expected Enabled=false by default")
	}
	if config.HeaderName != "X-API-Key" {
		t.Errorf("expected HeaderName=X-API-Key, got %s", config.HeaderName)
	}
	if config.APIKey != "" {
		t.Error("expected no API key by default")
	}
}

// TestAuth tests the Auth middleware with various scenarios.
func TestAuth(t *testing.T) {
	logger := zerolog.Nop()
	enabled := AuthConfig{
		Enabled:     true,
		APIKey:      "secret-key",
		HeaderName:  "X-API-Key",
		PublicPaths: []string{"/health", "/api/v1/health"},
	}

	tests := []struct {
		name           string
		config         AuthConfig
		path           string
		headers        map[string]string
		expectedStatus int
	}{
		{
			name:           "auth disabled",
			config:         AuthConfig{Enabled: false, APIKey: "secret-key", HeaderName: "X-API-Key"},
			path:           "/api/v1/pokemon",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "public path",
			config:         enabled,
			path:           "/api/v1/health",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "valid header key",
			config:         enabled,
			path:           "/api/v1/pokemon",
			headers:        map[string]string{"X-API-Key": "secret-key"},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "valid bearer token",
			config:         enabled,
			path:           "/api/v1/pokemon",
			headers:        map[string]string{"Authorization": "Bearer secret-key"},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "raw authorization key",
			config:         enabled,
			path:           "/api/v1/pokemon",
			headers:        map[string]string{"Authorization": "secret-key"},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing key",
			config:         enabled,
			path:           "/api/v1/pokemon",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "wrong key",
			config:         enabled,
			path:           "/api/v1/pokemon/summary",
			headers:        map[string]string{"X-API-Key": "guess"},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "enabled without configured key rejects everything",
			config:         AuthConfig{Enabled: true, HeaderName: "X-API-Key"},
			path:           "/api/v1/pokemon",
			headers:        map[string]string{"X-API-Key": ""},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := Auth(tt.config, &logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest("GET", tt.path, nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, w.Code)
			}
		})
	}
}

// TestExtractAPIKey tests API key extraction precedence.
func TestExtractAPIKey(t *testing.T) {
	config := AuthConfig{HeaderName: "X-Custom-Key"}

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("X-Custom-Key", "from-header")
	req.Header.Set("Authorization", "Bearer from-bearer")
	if got := extractAPIKey(req, config); got != "from-header" {
		t.Errorf("expected custom header to win, got %s", got)
	}

	req = httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer from-bearer")
	if got := extractAPIKey(req, config); got != "from-bearer" {
		t.Errorf("expected bearer token, got %s", got)
	}

	req = httptest.NewRequest("GET", "/", nil)
	if got := extractAPIKey(req, config); got != "" {
		t.Errorf("expected empty key, got %s", got)
	}
}
