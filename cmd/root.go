// -- cmd/root.go --
package cmd

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/Irere123/gozilla/internal/config"
	"github.com/Irere123/gozilla/internal/observability"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type contextKey string

const configKey contextKey = "config"

// flagBindings maps command flags onto configuration keys. Flags override the
// config file and the environment.
var flagBindings = map[string]string{
	"html":   "render.html",
	"css":    "render.css",
	"output": "render.output",
	"format": "render.format",
	"width":  "viewport.width",
	"height": "viewport.height",
}

// NewRootCommand builds the gozilla command tree.
func NewRootCommand() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:           "gozilla",
		Short:         "gozilla is a toy browser engine that styles and lays out HTML with CSS.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			v := viper.New()
			config.SetDefaults(v)

			if err := initializeConfig(cmd, v, cfgFile); err != nil {
				return fmt.Errorf("failed to initialize configuration: %w", err)
			}

			cfg, err := config.NewConfigFromViper(v)
			if err != nil {
				observability.InitializeLogger(config.NewDefaultConfig().Logger())
				return fmt.Errorf("failed to load or validate config: %w", err)
			}

			observability.InitializeLogger(cfg.Logger())
			observability.GetLogger().Debug("Starting gozilla", zap.String("version", Version))

			cmd.SetContext(context.WithValue(cmd.Context(), configKey, cfg))
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is ./config.yaml or ~/.gozilla/config.yaml)")
	rootCmd.SetVersionTemplate(`{{printf "%s version %s\n" .Name .Version}}`)

	rootCmd.AddCommand(newRenderCmd(), newLayoutCmd())
	return rootCmd
}

// Execute runs the root command. Failures are logged before being returned.
func Execute(ctx context.Context) error {
	defer observability.Sync()

	if err := NewRootCommand().ExecuteContext(ctx); err != nil {
		observability.GetLogger().Error("Command execution failed", zap.Error(err))
		return err
	}
	return nil
}

// initializeConfig reads in the config file, environment variables and the flags
// of the command being run.
func initializeConfig(cmd *cobra.Command, v *viper.Viper, cfgFile string) error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		if home, err := homedir.Dir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".gozilla"))
		}
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("GOZILLA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; proceed with defaults/env vars
	}

	var bindErr error
	cmd.Flags().VisitAll(func(flag *pflag.Flag) {
		key, ok := flagBindings[flag.Name]
		if !ok || bindErr != nil {
			return
		}
		if err := v.BindPFlag(key, flag); err != nil {
			bindErr = fmt.Errorf("failed to bind flag --%s: %w", flag.Name, err)
		}
	})
	return bindErr
}

// configFromContext returns the configuration loaded by the root command.
func configFromContext(ctx context.Context) (config.Interface, error) {
	cfg, ok := ctx.Value(configKey).(config.Interface)
	if !ok {
		return nil, errors.New("configuration not loaded")
	}
	return cfg, nil
}

// addInputFlags registers the flags shared by every command that runs the pipeline.
func addInputFlags(cmd *cobra.Command) {
	defaults := config.NewDefaultConfig()
	cmd.Flags().String("html", defaults.Render().HTMLPath, "HTML document")
	cmd.Flags().String("css", defaults.Render().CSSPath, "CSS stylesheet")
	cmd.Flags().Int("width", defaults.Viewport().Width, "viewport width in pixels")
	cmd.Flags().Int("height", defaults.Viewport().Height, "viewport height in pixels")
}
