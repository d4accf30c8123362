package cli

import (
	"github.com/spf13/cobra"

	"github.com/khankhulgun/maritimemap/mapstyle"
)

func newDefaultsCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "defaults",
		Short: "Print the default style configuration",
		Long:  `Print the default style configuration. The output is a valid input for generate -c and can be edited into a custom theme.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := mapstyle.Encode(mapstyle.DefaultConfig(), mapstyle.Format(format))
			if err != nil {
				return err
			}
			return writeOutput(cmd, "", data)
		},
	}

	cmd.Flags().StringVar(&format, "format", string(mapstyle.FormatJSON), "output format: json, yaml or toml")

	return cmd
}
