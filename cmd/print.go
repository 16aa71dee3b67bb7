package main

import (
	"bountycatch/internal/config"
	"bountycatch/internal/project"
	"bountycatch/pkg/logger"
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// printCommand constructs the 'print' subcommand that writes all domains of a
// project to stdout in lexicographic order.
func printCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "print",
		Short: "Prints all domains of a project",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			projectName, _ := cmd.Flags().GetString("project")

			strg, closeStrg := getStorage(ctx, cfg)
			defer closeStrg()

			domains, err := project.New(projectName, strg).List(ctx)
			if err != nil {
				return err
			}
			if len(domains) == 0 {
				logger.Warn(ctx, "no domains found in project", zap.String("project", projectName))

				return nil
			}

			for _, d := range domains {
				fmt.Println(d) //nolint: forbidigo
			}

			return nil
		},
	}

	cmd.Flags().StringP("project", "p", "", "Project name")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}
