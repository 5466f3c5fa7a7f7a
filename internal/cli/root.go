package cli

import (
	"errors"
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"rookery-deps/internal/app"
)

// version is set at build time via ldflags.
var version = "dev"

const envPrefix = "ROOKERY_DEPS"

type RootConfig struct {
	ConfigFile string
	LogLevel   string
}

func Execute() {
	root := newRootCommand()
	if err := root.Execute(); err != nil {
		log.Error().Msg(errorMessage(err))
		os.Exit(exitCodeForError(err))
	}
}

func newRootCommand() *cobra.Command {
	cfg := RootConfig{}
	cmd := &cobra.Command{
		Use:     "rookery-deps",
		Short:   "Reconcile Rookery .rook specs against Arch Linux metadata",
		Version: version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := initConfig(cfg.ConfigFile); err != nil {
				return err
			}
			setupLogging(viper.GetString("log_level"))
			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&cfg.ConfigFile, "config", "", "Config file path")
	cmd.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", "info", "Log level")
	cmd.PersistentFlags().String("arch-endpoint", "", "Arch Linux package search endpoint override")
	cmd.PersistentFlags().String("aur-endpoint", "", "AUR RPC endpoint override")
	cmd.PersistentFlags().Int("http-timeout", 0, "HTTP timeout in seconds")
	cmd.PersistentFlags().String("mapping-file", "", "Name-mapping table file (defaults to the embedded table)")
	_ = viper.BindPFlag("log_level", cmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("arch_endpoint", cmd.PersistentFlags().Lookup("arch-endpoint"))
	_ = viper.BindPFlag("aur_endpoint", cmd.PersistentFlags().Lookup("aur-endpoint"))
	_ = viper.BindPFlag("http_timeout_sec", cmd.PersistentFlags().Lookup("http-timeout"))
	_ = viper.BindPFlag("mapping_file", cmd.PersistentFlags().Lookup("mapping-file"))

	cmd.AddCommand(newCheckCommand())
	cmd.AddCommand(newFixCommand())
	cmd.AddCommand(newVersionsCommand())
	cmd.AddCommand(newValidateCommand())
	return cmd
}

func newAppService() app.Service {
	return app.NewService(app.ServiceOptions{
		ArchEndpoint:   viper.GetString("arch_endpoint"),
		AUREndpoint:    viper.GetString("aur_endpoint"),
		HTTPTimeoutSec: viper.GetInt("http_timeout_sec"),
		MappingPath:    viper.GetString("mapping_file"),
	})
}

func initConfig(configFile string) error {
	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv()

	if configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("failed to read config file").
				WithCause(err)
		}
		return nil
	}

	viper.SetConfigName("rookery-deps")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME/.config/rookery-deps")
	if err := viper.ReadInConfig(); err != nil {
		return nil
	}
	return nil
}

func setupLogging(level string) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	switch level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

func exitCodeForError(err error) int {
	switch errbuilder.CodeOf(err) {
	case errbuilder.CodeInvalidArgument:
		return 2
	case errbuilder.CodeNotFound:
		return 3
	case errbuilder.CodeInternal:
		return 5
	default:
		return 1
	}
}

func errorMessage(err error) string {
	var builder *errbuilder.ErrBuilder
	if errors.As(err, &builder) && strings.TrimSpace(builder.Msg) != "" {
		return builder.Msg
	}
	return err.Error()
}
