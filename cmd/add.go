package main

import (
	"bountycatch/internal/config"
	"bountycatch/internal/project"
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// addCommand constructs the 'add' subcommand that reads candidate domains from
// a file, validates them unless --no-validate is given, and adds them to the
// project's set.
func addCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Adds domains from a file to a project",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			projectName, _ := cmd.Flags().GetString("project")
			filePath, _ := cmd.Flags().GetString("file")
			noValidate, _ := cmd.Flags().GetBool("no-validate")

			// the input file is checked before any store interaction
			f, err := os.Open(filePath)
			if err != nil {
				return fmt.Errorf("could not open domains file: %w", err)
			}
			defer func() { _ = f.Close() }()

			strg, closeStrg := getStorage(ctx, cfg)
			defer closeStrg()

			report, err := project.New(projectName, strg).AddFromReader(ctx, f, !noValidate)
			if err != nil {
				return err
			}

			//nolint: forbidigo
			fmt.Printf("added %d, duplicates %d, invalid %d\n",
				report.Added, report.Duplicates, report.Invalid)

			return nil
		},
	}

	cmd.Flags().StringP("project", "p", "", "Project name")
	cmd.Flags().StringP("file", "f", "", "File containing domains, one per line")
	cmd.Flags().Bool("no-validate", false, "Skip domain validation")
	_ = cmd.MarkFlagRequired("project")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
