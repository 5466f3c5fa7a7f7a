package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"rookery-deps/internal/app"
)

type checkOptions struct {
	SpecsDir   string
	Package    string
	ReportPath string
	ShowFixes  bool
}

func newCheckCommand() *cobra.Command {
	opts := checkOptions{}
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Diff spec dependencies against Arch Linux metadata",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCheck(cmd.Context(), cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.SpecsDir, "specs", "specs", "Directory containing .rook spec files")
	cmd.Flags().StringVar(&opts.Package, "package", "", "Check a single package")
	cmd.Flags().StringVar(&opts.ReportPath, "report", "", "Write the report to this file")
	cmd.Flags().BoolVar(&opts.ShowFixes, "show-fixes", false, "Append suggested spec additions per package")

	_ = viper.BindPFlag("specs", cmd.Flags().Lookup("specs"))
	_ = viper.BindPFlag("report", cmd.Flags().Lookup("report"))
	_ = viper.BindPFlag("show_fixes", cmd.Flags().Lookup("show-fixes"))

	return cmd
}

func runCheck(ctx context.Context, cmd *cobra.Command, opts checkOptions) error {
	service := newAppService()
	result, err := service.Check(ctx, app.CheckRequest{
		SpecsDir:   resolveString(cmd, opts.SpecsDir, "specs", "specs"),
		Package:    opts.Package,
		ReportPath: resolveString(cmd, opts.ReportPath, "report", "report"),
		ShowFixes:  resolveBool(cmd, opts.ShowFixes, "show_fixes", "show-fixes"),
	})
	if err != nil {
		return err
	}
	fmt.Print(result.Report)
	if result.ReportPath != "" {
		fmt.Printf("report written: %s\n", result.ReportPath)
	}
	return nil
}
