package cmd

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/kfreiman/fitscore/internal/mcp"
)

// mcpServerCmd represents the mcp-server command
var mcpServerCmd = &cobra.Command{
	Use:   "mcp-server",
	Short: "Start an MCP server on stdio",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		rt, err := newRuntime(ctx)
		if err != nil {
			return err
		}

		rt.logger.InfoContext(ctx, "mcp server starting",
			"weights_file", rt.cfg.WeightsFile,
			"strict_scoring", rt.cfg.StrictScoring,
			"cache_capacity", rt.cfg.CacheCapacity,
		)

		srv := mcp.NewServer(mcp.Config{}.
			WithAnalyzer(rt.analyzer).
			WithStore(rt.store).
			WithLogger(rt.logger))

		if err := srv.Run(ctx); err != nil && ctx.Err() == nil {
			rt.logger.ErrorContext(ctx, "mcp server stopped",
				"error", err,
			)
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(mcpServerCmd)
}
