package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"tradelog/internal/config"
	"tradelog/internal/middleware"
)

var tokenTTL time.Duration

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mint a bearer token for the API",
	Long: `Token signs an HS256 access token whose subject is --user, using
JWT_SECRET and JWT_ISSUER from the environment.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if userID == "" {
			return errors.New("--user is required")
		}
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		ttl := tokenTTL
		if ttl <= 0 {
			ttl = cfg.JWTExpirationDur
		}
		token, err := middleware.GenerateAccessToken(userID, []byte(cfg.JWTSecret), cfg.JWTIssuer, ttl)
		if err != nil {
			return fmt.Errorf("sign token: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tokenCmd)

	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", 0, "token lifetime (default JWT_EXPIRES_IN)")
}
