package controller_test

import (
	"net/http"
	"net/http/httptest"
	"tally/pkg/controller"
	"tally/pkg/domain"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVoterIdentity(t *testing.T) {
	a := controller.VoterIdentity("salt", "1.2.3.4")
	require.Len(t, string(a), 64)
	require.Equal(t, a, controller.VoterIdentity("salt", "1.2.3.4"))
	require.NotEqual(t, a, controller.VoterIdentity("salt", "1.2.3.5"))
	require.NotEqual(t, a, controller.VoterIdentity("pepper", "1.2.3.4"))
	require.NotContains(t, string(a), "1.2.3.4")
}

func identityOf(t *testing.T, mw func(http.Handler) http.Handler, remoteAddr, xff string) domain.VoterIdentity {
	t.Helper()

	var got domain.VoterIdentity
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := controller.VoterIdentityFromContext(r.Context())
		require.True(t, ok)
		got = identity
	})

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.RemoteAddr = remoteAddr
	if xff != "" {
		req.Header.Set("X-Forwarded-For", xff)
	}
	mw(next).ServeHTTP(httptest.NewRecorder(), req)

	return got
}

func TestWithVoterIdentity_IgnoresForwardedForFromClients(t *testing.T) {
	mw := controller.WithVoterIdentity("salt", nil)

	first := identityOf(t, mw, "203.0.113.7:5555", "1.1.1.1")
	second := identityOf(t, mw, "203.0.113.7:6666", "2.2.2.2")

	require.Equal(t, controller.VoterIdentity("salt", "203.0.113.7"), first)
	require.Equal(t, first, second)
}

func TestWithVoterIdentity_BehindTrustedProxy(t *testing.T) {
	proxies, err := controller.ParseTrustedProxies([]string{"10.0.0.0/8"})
	require.NoError(t, err)
	mw := controller.WithVoterIdentity("salt", proxies)

	got := identityOf(t, mw, "10.0.0.2:80", "1.1.1.1, 198.51.100.4")
	require.Equal(t, controller.VoterIdentity("salt", "198.51.100.4"), got)

	// a client prepending entries through the proxy keeps its identity
	spoofed := identityOf(t, mw, "10.0.0.2:80", "2.2.2.2, 198.51.100.4")
	require.Equal(t, got, spoofed)
}

func TestVoterIdentityFromContext_Missing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	_, ok := controller.VoterIdentityFromContext(req.Context())
	require.False(t, ok)
}
