package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"rookery-deps/internal/app"
)

type versionsOptions struct {
	SpecsDir string
	Package  string
}

func newVersionsCommand() *cobra.Command {
	opts := versionsOptions{}
	cmd := &cobra.Command{
		Use:   "versions",
		Short: "Compare declared spec versions against Arch Linux",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runVersions(cmd.Context(), cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.SpecsDir, "specs", "specs", "Directory containing .rook spec files")
	cmd.Flags().StringVar(&opts.Package, "package", "", "Check a single package")
	_ = viper.BindPFlag("specs", cmd.Flags().Lookup("specs"))

	return cmd
}

func runVersions(ctx context.Context, cmd *cobra.Command, opts versionsOptions) error {
	service := newAppService()
	result, err := service.Versions(ctx, app.VersionsRequest{
		SpecsDir: resolveString(cmd, opts.SpecsDir, "specs", "specs"),
		Package:  opts.Package,
	})
	if err != nil {
		return err
	}
	for _, entry := range result.Outdated {
		fmt.Printf("behind  %-30s %s -> %s\n", entry.Name, entry.LocalVersion, entry.ArchVersion)
	}
	for _, entry := range result.Ahead {
		fmt.Printf("ahead   %-30s %s (arch has %s)\n", entry.Name, entry.LocalVersion, entry.ArchVersion)
	}
	fmt.Printf("checked %d specs: %d behind, %d ahead, %d unknown, %d skipped\n",
		result.Checked, len(result.Outdated), len(result.Ahead), result.Unknown, result.Skipped)
	return nil
}
