package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AhmedAllulu/auto-article-sub003/internal/auth"
)

var providers = []string{"gemini", "openai"}

func validProvider(name string) error {
	for _, p := range providers {
		if p == name {
			return nil
		}
	}
	return fmt.Errorf("unknown provider %q (want gemini or openai)", name)
}

func newKeysCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keys",
		Short: "Manage API keys in the system keyring",
	}
	cmd.AddCommand(newKeysSetCmd(), newKeysDeleteCmd(), newKeysStatusCmd())
	return cmd
}

func newKeysSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <provider>",
		Short: "Store an API key for a provider",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			provider := args[0]
			if err := validProvider(provider); err != nil {
				return err
			}
			key, err := auth.PromptForAPIKey(fmt.Sprintf("Enter %s API key: ", provider))
			if err != nil {
				return err
			}
			if key == "" {
				return fmt.Errorf("no key entered")
			}
			if err := auth.SaveKey(provider, key); err != nil {
				return fmt.Errorf("failed to store key: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Stored %s API key in the system keyring.\n", provider)
			return nil
		},
	}
}

func newKeysDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <provider>",
		Short: "Remove a stored API key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			provider := args[0]
			if err := validProvider(provider); err != nil {
				return err
			}
			if err := auth.DeleteKey(provider); err != nil {
				return fmt.Errorf("failed to delete key: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s API key from the system keyring.\n", provider)
			return nil
		},
	}
}

func newKeysStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show which providers have a stored or ambient key",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, provider := range providers {
				stored := "absent"
				if auth.HasKey(provider) {
					stored = "stored"
				}
				env := ""
				if _, ok := auth.GetEnvKey(provider); ok {
					env = " (env var set)"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-8s keyring: %s%s\n", provider, stored, env)
			}
			return nil
		},
	}
}
