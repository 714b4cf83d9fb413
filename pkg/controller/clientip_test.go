package controller_test

import (
	"net/http"
	"net/http/httptest"
	"tally/pkg/controller"
	"testing"

	"github.com/stretchr/testify/require"
)

func mustProxies(t *testing.T, entries ...string) controller.TrustedProxies {
	t.Helper()

	proxies, err := controller.ParseTrustedProxies(entries)
	require.NoError(t, err)

	return proxies
}

func TestParseTrustedProxies(t *testing.T) {
	proxies := mustProxies(t, "10.0.0.0/8", " 192.168.1.5 ", "", "::1")
	require.Len(t, proxies, 3)

	require.True(t, proxies.Trusts("10.1.2.3"))
	require.True(t, proxies.Trusts("192.168.1.5"))
	require.False(t, proxies.Trusts("192.168.1.6"))
	require.True(t, proxies.Trusts("::1"))
	require.False(t, proxies.Trusts("not-an-ip"))

	_, err := controller.ParseTrustedProxies([]string{"10.0.0.0/99"})
	require.Error(t, err)
	_, err = controller.ParseTrustedProxies([]string{"proxy.local"})
	require.Error(t, err)
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name       string
		proxies    []string
		remoteAddr string
		xff        string
		xrip       string
		want       string
	}{
		{"no proxies ignores forwarded for", nil, "203.0.113.7:5555", "1.1.1.1", "", "203.0.113.7"},
		{"no proxies ignores real ip", nil, "203.0.113.7:5555", "", "9.9.9.9", "203.0.113.7"},
		{"untrusted peer ignores headers", []string{"10.0.0.0/8"}, "203.0.113.7:5555", "1.1.1.1", "", "203.0.113.7"},
		{"trusted peer uses forwarded for", []string{"10.0.0.0/8"}, "10.0.0.2:80", "198.51.100.4", "", "198.51.100.4"},
		{
			"spoofed leftmost entry is skipped",
			[]string{"10.0.0.0/8"}, "10.0.0.2:80", "1.1.1.1, 198.51.100.4, 10.0.0.3", "", "198.51.100.4",
		},
		{"every hop trusted", []string{"10.0.0.0/8"}, "10.0.0.2:80", "10.0.0.9, 10.0.0.3", "", "10.0.0.9"},
		{"garbage hop", []string{"10.0.0.0/8"}, "10.0.0.2:80", "bogus", "", "10.0.0.2"},
		{"trusted peer uses real ip", []string{"10.0.0.0/8"}, "10.0.0.2:80", "", "198.51.100.4", "198.51.100.4"},
		{"invalid remote addr passes through", nil, "not-an-addr", "", "", "not-an-addr"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.xff != "" {
				req.Header.Set("X-Forwarded-For", tt.xff)
			}
			if tt.xrip != "" {
				req.Header.Set("X-Real-IP", tt.xrip)
			}

			require.Equal(t, tt.want, mustProxies(t, tt.proxies...).ClientIP(req))
		})
	}
}
