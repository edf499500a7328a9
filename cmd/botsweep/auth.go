package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"botsweep/pkg/auth"
)

var (
	authTokenName  string
	authTokenValue string
)

// authCmd groups credential management subcommands
var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage stored platform API tokens",
	Long: `Store, inspect, and remove platform API tokens.

Tokens are kept in the system keychain when available, with an encrypted
file fallback. The BOTSWEEP_API_TOKEN environment variable always takes
precedence over stored tokens.`,
}

var authLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Store a platform API token",
	Example: `  botsweep auth login --token <api-token>
  botsweep auth login --token <api-token> --name staging`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if authTokenValue == "" {
			return fmt.Errorf("--token is required")
		}

		manager, err := auth.NewManager()
		if err != nil {
			return fmt.Errorf("failed to open credential store: %w", err)
		}

		token := &auth.Token{
			Name:     authTokenName,
			APIToken: authTokenValue,
		}
		if err := manager.Store(token); err != nil {
			return fmt.Errorf("failed to store token: %w", err)
		}

		fmt.Printf("Token %q stored\n", authTokenName)
		return nil
	},
}

var authShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show stored tokens (masked)",
	RunE: func(cmd *cobra.Command, args []string) error {
		manager, err := auth.NewManager()
		if err != nil {
			return fmt.Errorf("failed to open credential store: %w", err)
		}

		tokens, err := manager.List()
		if err != nil || len(tokens) == 0 {
			fmt.Println("No stored tokens")
			return nil
		}

		for _, token := range tokens {
			fmt.Printf("%s\t%s\t(modified %s)\n",
				token.Name,
				auth.MaskToken(token.APIToken),
				token.LastModified.Format("2006-01-02 15:04"))
		}
		return nil
	},
}

var authLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove a stored token",
	RunE: func(cmd *cobra.Command, args []string) error {
		manager, err := auth.NewManager()
		if err != nil {
			return fmt.Errorf("failed to open credential store: %w", err)
		}

		if err := manager.Delete(authTokenName); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to remove token %q: %v\n", authTokenName, err)
			os.Exit(1)
		}

		fmt.Printf("Token %q removed\n", authTokenName)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(authCmd)
	authCmd.AddCommand(authLoginCmd)
	authCmd.AddCommand(authShowCmd)
	authCmd.AddCommand(authLogoutCmd)

	authCmd.PersistentFlags().StringVar(&authTokenName, "name", "default", "name to store the token under")
	authLoginCmd.Flags().StringVar(&authTokenValue, "token", "", "platform API token value")
}
