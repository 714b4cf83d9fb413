package v1handler

import (
	"context"
	"crypto/rsa"
	"net/http"
	"strings"
	"tally/internal/config"
	"tally/pkg/domain"
	"tally/pkg/serrors"

	"github.com/go-faster/errors"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Roles carried in the role claim.
const (
	RoleJudge = "judge"
	RoleAdmin = "admin"
)

// Claims are the JWT claims accepted by the API. The subject of a judge
// token is the judge ID.
type Claims struct {
	jwt.RegisteredClaims

	Role string `json:"role,omitempty"`
}

// Principal is the authenticated caller.
type Principal struct {
	Subject string
	Role    string
}

type ctxKey string

// PrincipalKey is the context key under which the authenticated Principal is stored.
const PrincipalKey ctxKey = "Principal"

// SecHandlerOptions configures bearer token verification.
type SecHandlerOptions struct {
	// PublicKey is the PEM encoded RSA key tokens are verified with.
	PublicKey string
}

// NewSecHandlerOptions constructs SecHandlerOptions from the provided application config.
func NewSecHandlerOptions(cfg *config.Config) *SecHandlerOptions {
	return &SecHandlerOptions{PublicKey: cfg.JWT.PublicKey}
}

type SecHandler struct {
	publicKey *rsa.PublicKey
	parser    *jwt.Parser
}

func NewSecHandler(opts *SecHandlerOptions) (*SecHandler, error) {
	key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(opts.PublicKey))
	if err != nil {
		return nil, errors.Wrap(err, "parse RSA public key")
	}

	return &SecHandler{
		publicKey: key,
		parser:    jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()})),
	}, nil
}

// HandleBearerAuth verifies token and stores the caller's Principal in the
// returned context. Judge tokens must carry a judge ID as subject.
func (s *SecHandler) HandleBearerAuth(ctx context.Context, token string) (context.Context, error) {
	var claims Claims
	if _, err := s.parser.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return s.publicKey, nil
	}); err != nil {
		return ctx, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token")
	}

	role := claims.Role
	if role == "" {
		role = RoleJudge
	}
	switch role {
	case RoleAdmin:
	case RoleJudge:
		if _, err := uuid.Parse(claims.Subject); err != nil {
			return ctx, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token subject")
		}
	default:
		return ctx, serrors.With(serrors.ErrUnauthorized, "unknown role")
	}

	return context.WithValue(ctx, PrincipalKey, Principal{Subject: claims.Subject, Role: role}), nil
}

// GetPrincipalFromContext returns the Principal stored by HandleBearerAuth.
func GetPrincipalFromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(PrincipalKey).(Principal)

	return p, ok
}

// GetJudgeIDFromContext returns the judge ID of an authenticated judge.
func GetJudgeIDFromContext(ctx context.Context) (domain.JudgeID, bool) {
	p, ok := GetPrincipalFromContext(ctx)
	if !ok || p.Role != RoleJudge {
		return domain.JudgeID{}, false
	}

	id, err := uuid.Parse(p.Subject)
	if err != nil {
		return domain.JudgeID{}, false
	}

	return domain.JudgeID(id), true
}

func (s *SecHandler) require(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok || token == "" {
				writeSecError(w, r, serrors.With(serrors.ErrUnauthorized, "missing bearer token"))

				return
			}

			ctx, err := s.HandleBearerAuth(r.Context(), token)
			if err != nil {
				writeSecError(w, r, err)

				return
			}
			if p, _ := GetPrincipalFromContext(ctx); p.Role != role {
				writeSecError(w, r, serrors.With(serrors.ErrForbidden, "%s role required", role))

				return
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireJudge rejects requests without a valid judge token.
func (s *SecHandler) RequireJudge(next http.Handler) http.Handler { return s.require(RoleJudge)(next) }

// RequireAdmin rejects requests without a valid admin token.
func (s *SecHandler) RequireAdmin(next http.Handler) http.Handler { return s.require(RoleAdmin)(next) }

func writeSecError(w http.ResponseWriter, r *http.Request, err error) {
	(&Handler{}).writeError(w, r, err)
}
