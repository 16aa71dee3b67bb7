package main

import (
	"bountycatch/internal/config"
	"bountycatch/internal/project"
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// countCommand constructs the 'count' subcommand that prints the cardinality
// of a project's domain set. A missing project counts as zero.
func countCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "count",
		Short: "Counts domains in a project",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			projectName, _ := cmd.Flags().GetString("project")

			strg, closeStrg := getStorage(ctx, cfg)
			defer closeStrg()

			count, err := project.New(projectName, strg).Count(ctx)
			if err != nil {
				return err
			}

			fmt.Println(count) //nolint: forbidigo

			return nil
		},
	}

	cmd.Flags().StringP("project", "p", "", "Project name")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}
