package main

import (
	"bountycatch/internal/config"
	"bountycatch/internal/export"
	"bountycatch/internal/project"
	"bountycatch/pkg/logger"
	"bountycatch/pkg/serrors"
	"context"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// exportCommand constructs the 'export' subcommand that renders a project's
// domain set as text or JSON and writes it to a file. Exporting a project
// without domains is a command failure.
func exportCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Exports domains of a project to a file",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			projectName, _ := cmd.Flags().GetString("project")
			filePath, _ := cmd.Flags().GetString("file")
			format, _ := cmd.Flags().GetString("format")

			kind, err := export.ParseKind(format)
			if err != nil {
				return err
			}

			strg, closeStrg := getStorage(ctx, cfg)
			defer closeStrg()

			domains, err := project.New(projectName, strg).List(ctx)
			if err != nil {
				return err
			}
			if len(domains) == 0 {
				return serrors.With(serrors.ErrNotFound, "no domains found in project %q", projectName)
			}

			data, err := export.Format(projectName, domains, kind)
			if err != nil {
				return err
			}
			if err := os.WriteFile(filePath, data, 0o644); err != nil {
				return serrors.Wrap(serrors.ErrInternal, err, "could not write export file")
			}

			logger.Info(ctx, "exported domains",
				zap.String("project", projectName),
				zap.Int("count", len(domains)),
				zap.String("file", filePath),
				zap.String("format", string(kind)),
			)

			return nil
		},
	}

	cmd.Flags().StringP("project", "p", "", "Project name")
	cmd.Flags().StringP("file", "f", "", "Output file")
	cmd.Flags().String("format", string(export.KindText), "Export format (text or json)")
	_ = cmd.MarkFlagRequired("project")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
