package httpx_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/stash/pkg/httpx"
	"github.com/stretchr/testify/require"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func formRequest(fields url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(fields.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.RemoteAddr = "192.168.1.1:12345"
	return req
}

func TestIPKeyExtractor(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		want    string
	}{
		{"remote addr", nil, "192.168.1.1"},
		{"forwarded for", map[string]string{"X-Forwarded-For": "203.0.113.1, 192.168.1.1"}, "203.0.113.1"},
		{"real ip", map[string]string{"X-Real-IP": "203.0.113.2"}, "203.0.113.2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = "192.168.1.1:12345"
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			require.Equal(t, tt.want, httpx.IPKeyExtractor(req))
		})
	}
}

func TestFormFieldKeyExtractor(t *testing.T) {
	t.Run("reads body field", func(t *testing.T) {
		req := formRequest(url.Values{"name": {"bob"}})
		require.Equal(t, "bob", httpx.FormFieldKeyExtractor("name")(req))
		// The handler can still read the form afterwards.
		require.Equal(t, "bob", req.PostFormValue("name"))
	})

	t.Run("ignores query string", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/?name=alice", nil)
		require.Equal(t, "", httpx.FormFieldKeyExtractor("name")(req))
	})
}

func TestCompositeKeyExtractor(t *testing.T) {
	extractor := httpx.CompositeKeyExtractor(":",
		httpx.IPKeyExtractor,
		httpx.FormFieldKeyExtractor("name"),
	)

	require.Equal(t, "192.168.1.1:alice", extractor(formRequest(url.Values{"name": {"alice"}})))
	require.Equal(t, "192.168.1.1", extractor(formRequest(url.Values{})))
}

func TestAccountKeyExtractor(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	require.Equal(t, "", httpx.AccountKeyExtractor(req))

	req = req.WithContext(httpx.WithAccountID(req.Context(), "acc-1"))
	require.Equal(t, "acc-1", httpx.AccountKeyExtractor(req))
}

func TestRateLimitMiddleware(t *testing.T) {
	config := httpx.RateLimitConfig{RequestsPerWindow: 3, Window: time.Minute, Burst: 3}

	t.Run("blocks after burst", func(t *testing.T) {
		limited := httpx.RateLimitMiddleware(config, httpx.IPKeyExtractor)(okHandler)

		for i := range 3 {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = "192.168.1.1:12345"
			rec := httptest.NewRecorder()
			limited.ServeHTTP(rec, req)
			require.Equal(t, http.StatusOK, rec.Code, "request %d should succeed", i+1)
		}

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "192.168.1.1:12345"
		rec := httptest.NewRecorder()
		limited.ServeHTTP(rec, req)
		require.Equal(t, http.StatusTooManyRequests, rec.Code)
		require.NotEmpty(t, rec.Header().Get("Retry-After"))
		require.Equal(t, "3", rec.Header().Get("X-RateLimit-Limit"))
		require.Equal(t, "1m0s", rec.Header().Get("X-RateLimit-Window"))
		require.Contains(t, rec.Body.String(), "rate_limit_exceeded")
	})

	t.Run("keys are independent", func(t *testing.T) {
		limited := httpx.RateLimitMiddleware(config, httpx.IPKeyExtractor)(okHandler)

		for i := range 6 {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = fmt.Sprintf("10.0.0.%d:1000", i%2)
			rec := httptest.NewRecorder()
			limited.ServeHTTP(rec, req)
			require.Equal(t, http.StatusOK, rec.Code)
		}
	})

	t.Run("empty key passes through", func(t *testing.T) {
		limited := httpx.RateLimitMiddleware(config, func(*http.Request) string { return "" })(okHandler)

		for range 10 {
			rec := httptest.NewRecorder()
			limited.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
			require.Equal(t, http.StatusOK, rec.Code)
		}
	})
}

func TestRateLimitByIPAndFormField(t *testing.T) {
	config := httpx.RateLimitConfig{RequestsPerWindow: 2, Window: time.Minute, Burst: 2}
	limited := httpx.RateLimitByIPAndFormField(config, "name")(okHandler)

	for range 2 {
		rec := httptest.NewRecorder()
		limited.ServeHTTP(rec, formRequest(url.Values{"name": {"alice"}}))
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec := httptest.NewRecorder()
	limited.ServeHTTP(rec, formRequest(url.Values{"name": {"alice"}}))
	require.Equal(t, http.StatusTooManyRequests, rec.Code)

	rec = httptest.NewRecorder()
	limited.ServeHTTP(rec, formRequest(url.Values{"name": {"bob"}}))
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimitProfiles(t *testing.T) {
	p := httpx.DefaultRateLimitProfiles()

	for name, config := range map[string]httpx.RateLimitConfig{
		"strict": p.Strict, "moderate": p.Moderate, "lenient": p.Lenient, "public": p.Public,
	} {
		t.Run(name, func(t *testing.T) {
			require.Positive(t, config.RequestsPerWindow)
			require.Positive(t, config.Window)
			require.Positive(t, config.Burst)
		})
	}

	require.Less(t, p.Strict.RequestsPerWindow, p.Moderate.RequestsPerWindow)
	require.Less(t, p.Moderate.RequestsPerWindow, p.Lenient.RequestsPerWindow)
	require.Less(t, p.Lenient.RequestsPerWindow, p.Public.RequestsPerWindow)
}

func TestLoadRateLimitProfiles(t *testing.T) {
	t.Setenv("RATELIMIT_STRICT_REQUESTS", "50")
	t.Setenv("RATELIMIT_STRICT_WINDOW_SEC", "30")
	t.Setenv("RATELIMIT_PUBLIC_BURST", "7")

	p := httpx.LoadRateLimitProfiles(httpx.DefaultRateLimitProfiles())
	require.Equal(t, 50, p.Strict.RequestsPerWindow)
	require.Equal(t, 30*time.Second, p.Strict.Window)
	require.Equal(t, httpx.StrictLimit.Burst, p.Strict.Burst)
	require.Equal(t, 7, p.Public.Burst)
	require.Equal(t, httpx.ModerateLimit, p.Moderate)
}

func TestParseRateLimitFromEnv(t *testing.T) {
	defaultConfig := httpx.RateLimitConfig{RequestsPerWindow: 10, Window: time.Minute, Burst: 10}

	tests := []struct {
		name string
		env  map[string]string
		want httpx.RateLimitConfig
	}{
		{"no overrides", nil, defaultConfig},
		{
			"all overridden",
			map[string]string{"RATELIMIT_TEST_REQUESTS": "200", "RATELIMIT_TEST_WINDOW_SEC": "30", "RATELIMIT_TEST_BURST": "250"},
			httpx.RateLimitConfig{RequestsPerWindow: 200, Window: 30 * time.Second, Burst: 250},
		},
		{
			"invalid values ignored",
			map[string]string{"RATELIMIT_TEST_REQUESTS": "invalid", "RATELIMIT_TEST_WINDOW_SEC": "-10", "RATELIMIT_TEST_BURST": "0"},
			defaultConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			require.Equal(t, tt.want, httpx.ParseRateLimitFromEnv("TEST", defaultConfig))
		})
	}
}

func BenchmarkRateLimitManyIPs(b *testing.B) {
	config := httpx.RateLimitConfig{RequestsPerWindow: 1000000, Window: time.Minute, Burst: 1000}
	limited := httpx.RateLimitMiddleware(config, httpx.IPKeyExtractor)(okHandler)

	for i := 0; b.Loop(); i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = fmt.Sprintf("192.168.%d.%d:12345", i%255, (i/255)%255)
		limited.ServeHTTP(httptest.NewRecorder(), req)
	}
}
