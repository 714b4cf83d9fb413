package controller

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"tally/pkg/domain"
	"tally/pkg/logger"

	"go.uber.org/zap"
)

// VoterIdentityKey is the context key under which the voter identity is stored.
const VoterIdentityKey CtxKey = "VoterIdentity"

// VoterIdentity derives a stable, opaque voter identity from a client address.
// The salt keeps raw addresses out of the vote ledger.
func VoterIdentity(salt, clientIP string) domain.VoterIdentity {
	mac := hmac.New(sha256.New, []byte(salt))
	_, _ = mac.Write([]byte(clientIP))

	return domain.VoterIdentity(hex.EncodeToString(mac.Sum(nil)))
}

// WithVoterIdentity returns a middleware that attaches the caller's voter
// identity to the request context. The identity is derived from the
// connection peer; forwarding headers only count when the peer is one of
// proxies.
func WithVoterIdentity(salt string, proxies TrustedProxies) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity := VoterIdentity(salt, proxies.ClientIP(r))

			ctx := context.WithValue(r.Context(), VoterIdentityKey, identity)
			ctx = logger.WithFields(ctx, zap.String("voter", string(identity)))

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// VoterIdentityFromContext returns the identity set by WithVoterIdentity.
func VoterIdentityFromContext(ctx context.Context) (domain.VoterIdentity, bool) {
	identity, ok := ctx.Value(VoterIdentityKey).(domain.VoterIdentity)

	return identity, ok && identity != ""
}
