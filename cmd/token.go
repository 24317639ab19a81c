package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"application-sync/core/secrets"

	"github.com/spf13/cobra"
)

var tokenDatabase string

// tokenCmd is the parent command for keychain operations.
var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Manage the Notion token stored in the OS keychain",
	Long: `The keychain token is used when NOTION_TOKEN is not set.
Tokens are stored per database id; without --database the default entry is used.`,
}

var tokenSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Store a token read from stdin",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprint(cmd.ErrOrStderr(), "Notion integration token: ")
		line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		if err != nil && line == "" {
			return fmt.Errorf("failed to read token: %w", err)
		}
		if err := secrets.SetToken(tokenDatabase, strings.TrimSpace(line)); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Token stored as %s\n", secrets.TokenAccount(tokenDatabase))
		return nil
	},
}

var tokenDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Remove the stored token",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := secrets.DeleteToken(tokenDatabase); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Token %s removed\n", secrets.TokenAccount(tokenDatabase))
		return nil
	},
}

func init() {
	tokenCmd.PersistentFlags().StringVar(&tokenDatabase, "database", "", "Database id the token belongs to")
	tokenCmd.AddCommand(tokenSetCmd, tokenDeleteCmd)

	RootCmd.AddCommand(tokenCmd)
}
