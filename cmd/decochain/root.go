package main

import (
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// rootOptions carries settings shared by every subcommand.
type rootOptions struct {
	cfgFile string
	v       *viper.Viper
	logger  *slog.Logger
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{v: viper.New(), logger: slog.Default()}

	cmd := &cobra.Command{
		Use:   "decochain",
		Short: "Build and describe decorated shapes",
		Long: `decochain wraps a leaf shape in a chain of decorators and prints the
result. Each decorator kind is bound to a cycle policy: strict kinds such as
color may appear only once in a chain, permissive kinds such as transparency
may repeat.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := opts.initConfig(); err != nil {
				return err
			}
			opts.setupLogging(cmd.ErrOrStderr())
			return nil
		},
		SilenceUsage: true,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.cfgFile, "config", "", "config file (default is $HOME/.decochain.yaml)")
	flags.BoolP("verbose", "v", false, "enable verbose output")
	flags.StringP("output", "o", "table", "output format for listings: table or text")
	_ = opts.v.BindPFlag("verbose", flags.Lookup("verbose"))
	_ = opts.v.BindPFlag("output", flags.Lookup("output"))

	cmd.AddCommand(
		newDescribeCmd(opts),
		newLayersCmd(opts),
		newKindsCmd(opts),
		newVersionCmd(),
	)
	return cmd
}

// initConfig loads configuration from the config file and environment.
func (o *rootOptions) initConfig() error {
	o.v.SetEnvPrefix("DECOCHAIN")
	o.v.AutomaticEnv()

	if o.cfgFile != "" {
		o.v.SetConfigFile(o.cfgFile)
		return o.v.ReadInConfig()
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}
	o.v.AddConfigPath(home)
	o.v.SetConfigType("yaml")
	o.v.SetConfigName(".decochain")

	if err := o.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return err
	}
	return nil
}

func (o *rootOptions) setupLogging(w io.Writer) {
	level := slog.LevelInfo
	if o.v.GetBool("verbose") {
		level = slog.LevelDebug
	}

	// Using TextHandler for CLI friendliness
	o.logger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
	if f := o.v.ConfigFileUsed(); f != "" {
		o.logger.Debug("using config file", "file", f)
	}
}

func (o *rootOptions) tableOutput() bool {
	return o.v.GetString("output") != "text"
}
