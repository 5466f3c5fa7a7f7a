package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"rookery-deps/internal/app"
)

type validateOptions struct {
	SpecsDir string
	Package  string
}

func newValidateCommand() *cobra.Command {
	opts := validateOptions{}
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check spec files for structural problems",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runValidate(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.SpecsDir, "specs", "specs", "Directory containing .rook spec files")
	cmd.Flags().StringVar(&opts.Package, "package", "", "Validate a single package")
	_ = viper.BindPFlag("specs", cmd.Flags().Lookup("specs"))
	return cmd
}

func runValidate(ctx context.Context, cmd *cobra.Command, opts validateOptions) error {
	service := newAppService()
	result, err := service.Validate(ctx, app.ValidateRequest{
		SpecsDir: resolveString(cmd, opts.SpecsDir, "specs", "specs"),
		Package:  opts.Package,
	})
	if err != nil {
		return err
	}
	for _, problem := range result.Problems {
		fmt.Println(problem)
	}
	if len(result.Problems) > 0 {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("%d of %d spec files have problems", len(result.Problems), result.FilesChecked))
	}
	fmt.Printf("validated %d spec files\n", result.FilesChecked)
	return nil
}

func resolveString(cmd *cobra.Command, value string, key string, flagName string) string {
	if cmd == nil {
		if value != "" {
			return value
		}
		return viper.GetString(key)
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetString(key)
}

func resolveBool(cmd *cobra.Command, value bool, key string, flagName string) bool {
	if cmd == nil {
		return value
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetBool(key)
}

func flagChanged(cmd *cobra.Command, name string) bool {
	if cmd == nil || strings.TrimSpace(name) == "" {
		return false
	}
	if flag := cmd.Flags().Lookup(name); flag != nil {
		return flag.Changed
	}
	if flag := cmd.PersistentFlags().Lookup(name); flag != nil {
		return flag.Changed
	}
	return false
}
