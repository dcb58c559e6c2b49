package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/philipp01105/logconf/logger"
)

func newDemoCmd(cmd *Cmd) *cobra.Command {
	var name string

	c := &cobra.Command{
		Use:   "demo",
		Short: "Apply the configuration and emit one record per severity",
		Args:  cobra.NoArgs,
		RunE: func(cc *cobra.Command, _ []string) error {
			log := cmd.diagnostics(cc)
			defer log.Sync()

			cfg, err := cmd.load(log)
			if err != nil {
				return err
			}
			l, err := logger.FromConfig(cfg)
			if err != nil {
				return err
			}
			log.Debug("configuration applied", zap.String("logger", name))

			emit(l.Named(name))
			return l.Close()
		},
	}
	c.Flags().StringVar(&name, "logger", "a", "Name of the logger records are emitted through")
	return c
}

func emit(l *zap.Logger) {
	l.Info("Info message")
	l.Error("Error message")
	l.DPanic("Critical message")
	l.Debug("Debug message")
	l.Warn("Warning message")
}
