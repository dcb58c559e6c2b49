package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/logconf/logconfig"
)

// Cmd is the command line arguments shared by all subcommands.
type Cmd struct {
	// ConfigPath is the path to a YAML logging document. Empty means the
	// built-in configuration.
	ConfigPath string
	// Verbose enables diagnostics on stderr.
	Verbose bool
}

func newRootCmd() *cobra.Command {
	cmd := &Cmd{}

	root := &cobra.Command{
		Use:           "logconf",
		Short:         "Build, render and apply logging configurations",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&cmd.ConfigPath, "config", "c", "", "Path to a YAML logging document")
	root.PersistentFlags().BoolVarP(&cmd.Verbose, "verbose", "v", false, "Print diagnostics to stderr")

	root.AddCommand(newRenderCmd(cmd), newDemoCmd(cmd))
	return root
}

// diagnostics returns the CLI's own logger, which is separate from the
// configuration being rendered or applied.
func (c *Cmd) diagnostics(cc *cobra.Command) *zap.Logger {
	if !c.Verbose {
		return zap.NewNop()
	}
	enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	return zap.New(zapcore.NewCore(enc, zapcore.AddSync(cc.ErrOrStderr()), zap.DebugLevel))
}

func (c *Cmd) load(log *zap.Logger) (*logconfig.LogConfig, error) {
	if c.ConfigPath == "" {
		log.Debug("using built-in configuration")
		return logconfig.New(), nil
	}
	log.Debug("loading configuration", zap.String("path", c.ConfigPath))
	return logconfig.LoadFile(c.ConfigPath)
}
