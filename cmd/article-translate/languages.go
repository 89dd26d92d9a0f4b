package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AhmedAllulu/auto-article-sub003/internal/language"
)

func newLanguagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List supported target languages",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, lang := range language.Supported() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-8s %s\n", lang.Code, lang.Name)
			}
			return nil
		},
	}
}
