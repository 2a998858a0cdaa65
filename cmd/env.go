package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kfreiman/fitscore/internal/config"
)

// envCmd represents the env command
var envCmd = &cobra.Command{
	Use:   "env",
	Short: "List the environment variables fitscore reads",
	RunE: func(cmd *cobra.Command, args []string) error {
		desc, err := config.Description()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), desc)
		return err
	},
}

func init() {
	rootCmd.AddCommand(envCmd)
}
