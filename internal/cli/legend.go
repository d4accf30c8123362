package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/khankhulgun/maritimemap/mapstyle"
	"github.com/khankhulgun/maritimemap/sprite"
)

func newLegendCmd() *cobra.Command {
	var (
		configPath string
		outDir     string
		name       string
		size       int
	)

	cmd := &cobra.Command{
		Use:   "legend",
		Short: "Render legend swatches as a sprite sheet",
		Example: `  maritimestyle legend -o ./public/sprite
  maritimestyle legend -c night.toml -o ./public/sprite --size 24`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if size <= 0 {
				return fmt.Errorf("--size must be positive, got %d", size)
			}
			logger := loggerFromContext(cmd.Context())
			prog := newProgress(logger)

			cfg, err := readStyleConfig(configPath)
			if err != nil {
				return err
			}
			merged, err := mapstyle.Merge(cfg)
			if err != nil {
				return err
			}
			if err := sprite.WriteSheet(merged, outDir, name, size); err != nil {
				return err
			}

			prog.done(fmt.Sprintf("Wrote %d legend swatches to %s", len(sprite.Entries(merged)), outDir))
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "partial style config (json, yaml or toml)")
	cmd.Flags().StringVarP(&outDir, "output", "o", "", "output directory")
	cmd.Flags().StringVar(&name, "name", "legend", "sprite file base name")
	cmd.Flags().IntVar(&size, "size", 32, "swatch size in pixels at 1x")
	cmd.MarkFlagRequired("output")

	return cmd
}
