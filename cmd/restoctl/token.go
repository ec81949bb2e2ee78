package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"restoBotClient/internal/shared/auth"
)

// registerToken adds a command minting staff tokens the development backend accepts.
func registerToken(rootCmd *cobra.Command, a *app) {
	var (
		subject string
		roles   []string
		ttl     time.Duration
		secret  string
	)
	tokenCmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a development JWT signed with backend.jwt_secret",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("secret") {
				secret = a.cfg.Backend.JWTSecret
			}
			if !cmd.Flags().Changed("ttl") {
				ttl = a.cfg.Backend.TokenTTL
			}
			token, err := auth.NewIssuer(secret, ttl).Issue(subject, roles...)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
			return err
		},
	}
	flags := tokenCmd.Flags()
	flags.StringVar(&subject, "subject", "restoctl", "token subject")
	flags.StringSliceVar(&roles, "role", []string{auth.RoleStaff}, "roles to embed (repeatable)")
	flags.DurationVar(&ttl, "ttl", 0, "lifetime (default from backend.token_ttl)")
	flags.StringVar(&secret, "secret", "", "signing secret (default from backend.jwt_secret)")
	rootCmd.AddCommand(tokenCmd)
}
