package main

import (
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

func newRenderCmd(cmd *Cmd) *cobra.Command {
	var output string

	c := &cobra.Command{
		Use:   "render",
		Short: "Print the rendered configuration",
		Args:  cobra.NoArgs,
		RunE: func(cc *cobra.Command, _ []string) error {
			log := cmd.diagnostics(cc)
			defer log.Sync()

			cfg, err := cmd.load(log)
			if err != nil {
				return err
			}
			log.Debug("rendering configuration",
				zap.String("output", output),
				zap.Int("formatters", len(cfg.Formatters())),
				zap.Int("handlers", len(cfg.Handlers())),
			)

			out := cc.OutOrStdout()
			switch output {
			case "json":
				data, err := json.MarshalIndent(cfg, "", "  ")
				if err != nil {
					return errors.Wrap(err, "encode json")
				}
				data = append(data, '\n')
				_, err = out.Write(data)
				return err
			case "yaml":
				enc := yaml.NewEncoder(out)
				enc.SetIndent(2)
				if err := enc.Encode(cfg); err != nil {
					return errors.Wrap(err, "encode yaml")
				}
				return enc.Close()
			default:
				return errors.Errorf("unknown output format %q", output)
			}
		},
	}
	c.Flags().StringVarP(&output, "output", "o", "json", "Output format: json or yaml")
	return c
}
