package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"rookery-deps/internal/app"
)

type fixOptions struct {
	ReportPath   string
	SpecsDir     string
	Package      string
	DryRun       bool
	SkipBuild    bool
	SkipOptional bool
	Limit        int
}

func newFixCommand() *cobra.Command {
	opts := fixOptions{}
	cmd := &cobra.Command{
		Use:   "fix",
		Short: "Patch spec files from a previously written check report",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runFix(cmd.Context(), cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.ReportPath, "report", "", "Report file produced by check")
	cmd.Flags().StringVar(&opts.SpecsDir, "specs", "specs", "Directory containing .rook spec files")
	cmd.Flags().StringVar(&opts.Package, "package", "", "Fix a single package from the report")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "Show what would change without writing files")
	cmd.Flags().BoolVar(&opts.SkipBuild, "skip-build", false, "Do not add build dependencies")
	cmd.Flags().BoolVar(&opts.SkipOptional, "skip-optional", false, "Do not add optional dependencies")
	cmd.Flags().IntVar(&opts.Limit, "limit", 0, "Process at most this many packages (0 = all)")

	_ = viper.BindPFlag("report", cmd.Flags().Lookup("report"))
	_ = viper.BindPFlag("specs", cmd.Flags().Lookup("specs"))

	return cmd
}

func runFix(ctx context.Context, cmd *cobra.Command, opts fixOptions) error {
	service := newAppService()
	result, err := service.Fix(ctx, app.FixRequest{
		ReportPath:   resolveString(cmd, opts.ReportPath, "report", "report"),
		SpecsDir:     resolveString(cmd, opts.SpecsDir, "specs", "specs"),
		Package:      opts.Package,
		DryRun:       opts.DryRun,
		SkipBuild:    opts.SkipBuild,
		SkipOptional: opts.SkipOptional,
		Limit:        opts.Limit,
	})
	if err != nil {
		return err
	}
	verb := "modified"
	if result.DryRun {
		verb = "would modify"
	}
	fmt.Printf("processed %d packages, %s %d files, %d unchanged\n",
		result.PackagesProcessed, verb, result.FilesModified, result.Unchanged)
	return nil
}
