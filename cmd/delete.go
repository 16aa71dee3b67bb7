package main

import (
	"bountycatch/internal/config"
	"bountycatch/internal/project"
	"bountycatch/pkg/logger"
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// deleteCommand constructs the 'delete' subcommand that removes a project's
// entire domain set. The operation is irreversible, so an interactive
// confirmation prompt guards it unless --confirm is given. Deleting a missing
// project is reported but is not a failure.
func deleteCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Deletes a project and all its domains",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			projectName, _ := cmd.Flags().GetString("project")
			confirmed, _ := cmd.Flags().GetBool("confirm")

			if !confirmed {
				//nolint: forbidigo
				fmt.Printf("Are you sure you want to delete project %q? (y/N): ", projectName)
				answer, err := bufio.NewReader(os.Stdin).ReadString('\n')
				if err != nil {
					return fmt.Errorf("could not read confirmation: %w", err)
				}
				answer = strings.ToLower(strings.TrimSpace(answer))
				if answer != "y" && answer != "yes" {
					logger.Info(ctx, "delete operation cancelled")

					return nil
				}
			}

			strg, closeStrg := getStorage(ctx, cfg)
			defer closeStrg()

			existed, err := project.New(projectName, strg).Delete(ctx)
			if err != nil {
				return err
			}
			if !existed {
				logger.Warn(ctx, "project did not exist", zap.String("project", projectName))

				return nil
			}

			fmt.Printf("project %q deleted\n", projectName) //nolint: forbidigo

			return nil
		},
	}

	cmd.Flags().StringP("project", "p", "", "Project name")
	cmd.Flags().Bool("confirm", false, "Skip confirmation prompt")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}
