package main

import (
	"context"
	"fmt"
	"tally/internal/api/handler/v1handler"
	"tally/internal/config"
	"tally/pkg/logger"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// tokenCommand constructs the 'token' subcommand that generates a signed RS256
// JWT for a judge (subject is the judge ID) or an admin.
func tokenCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Generates a judge or admin JWT",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			subject, _ := cmd.Flags().GetString("subject")
			role, _ := cmd.Flags().GetString("role")
			ttl, _ := cmd.Flags().GetDuration("ttl")

			switch role {
			case v1handler.RoleJudge:
				if _, err := uuid.Parse(subject); err != nil {
					logger.Fatal(ctx, "judge subject must be a judge ID", zap.Error(err))
				}
			case v1handler.RoleAdmin:
			default:
				logger.Fatal(ctx, "unknown role", zap.String("role", role))
			}

			key, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(cfg.JWT.PrivateKey))
			if err != nil {
				logger.Fatal(ctx, "could not parse RSA private key", zap.Error(err))
			}

			now := time.Now()
			claims := v1handler.Claims{
				RegisteredClaims: jwt.RegisteredClaims{
					Subject:   subject,
					ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
					IssuedAt:  jwt.NewNumericDate(now),
					NotBefore: jwt.NewNumericDate(now),
				},
				Role: role,
			}
			signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
			if err != nil {
				logger.Fatal(ctx, "could not sign JWT", zap.Error(err))
			}

			fmt.Println(signed) //nolint: forbidigo
		},
	}

	cmd.Flags().String("subject", "", "JWT subject (judge ID, or an operator name for admins)")
	cmd.Flags().String("role", v1handler.RoleJudge, "Token role (judge or admin)")
	cmd.Flags().Duration("ttl", 24*time.Hour, "Token TTL (e.g., 30s, 15m, 1h)")
	_ = cmd.MarkFlagRequired("subject")

	return cmd
}
