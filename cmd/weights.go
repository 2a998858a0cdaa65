package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kfreiman/fitscore/internal/mcp"
)

// weightsCmd represents the weights command
var weightsCmd = &cobra.Command{
	Use:   "weights",
	Short: "Show the active parameter table",
	Long: `Print every scored parameter with its strategy and weight.

The table reflects WEIGHTS_FILE when set, so this also validates a profile:
an invalid profile makes the command fail.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime(cmd.Context())
		if err != nil {
			return err
		}

		params := mcp.NewListParametersTool(rt.engine).Parameters()
		data, err := json.MarshalIndent(params, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to format parameters: %w", err)
		}

		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return err
	},
}

func init() {
	rootCmd.AddCommand(weightsCmd)
}
