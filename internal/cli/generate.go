package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/khankhulgun/maritimemap/mapstyle"
)

func newGenerateCmd() *cobra.Command {
	var (
		configPath string
		output     string
		compact    bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a style.json from a partial config",
		Example: `  maritimestyle generate
  maritimestyle generate -c night.yaml -o style.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			prog := newProgress(logger)

			cfg, err := readStyleConfig(configPath)
			if err != nil {
				return err
			}
			logger.Debug("loaded style config", "path", configPath, "sections", len(cfg))

			style, err := mapstyle.Build(cfg)
			if err != nil {
				return fmt.Errorf("build style: %w", err)
			}

			var data []byte
			if compact {
				data, err = json.Marshal(style)
			} else {
				data, err = json.MarshalIndent(style, "", "  ")
			}
			if err != nil {
				return fmt.Errorf("encode style: %w", err)
			}
			if err := writeOutput(cmd, output, append(data, '\n')); err != nil {
				return err
			}

			if output != "" && output != "-" {
				prog.done(fmt.Sprintf("Wrote %d layers to %s", len(style.Layers), output))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "partial style config (json, yaml or toml)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&compact, "compact", false, "write compact JSON")

	return cmd
}
