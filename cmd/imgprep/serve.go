package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ironsheep/imgprep/internal/server"
)

var serveCommand = &cobra.Command{
	Use:   "serve",
	Short: "Serve the imaging tools over MCP (JSON-RPC 2.0 on stdin/stdout)",
	Long: `Serve the imaging tools over MCP (JSON-RPC 2.0 on stdin/stdout).

This command is normally started by an MCP client. Configure it in your
client as a stdio server; logs go to stderr.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := getLogger()
		if err != nil {
			return err
		}
		defer logger.Sync() //nolint:errcheck

		cfg, err := serverConfig()
		if err != nil {
			return err
		}
		logger.Debug("starting MCP server",
			zap.String("build_time", BuildTime),
			zap.String("commit", GitCommit),
			zap.Int("thumbnail_width", cfg.ThumbnailWidth),
			zap.Int("thumbnail_height", cfg.ThumbnailHeight),
			zap.Int("max_bound", cfg.MaxBound))

		srv := server.New(cfg, logger.Named("server"))
		return srv.Serve(cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

// serverConfig builds the server settings from the loaded configuration. The
// default thumbnail bounds are checked here since tool calls that omit
// max_width or max_height use them as-is.
func serverConfig() (server.Config, error) {
	if _, err := checkBound("thumbnail.max_width", c.Thumbnail.MaxWidth, c.Thumbnail.Limit); err != nil {
		return server.Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	if _, err := checkBound("thumbnail.max_height", c.Thumbnail.MaxHeight, c.Thumbnail.Limit); err != nil {
		return server.Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return server.Config{
		ThumbnailWidth:  c.Thumbnail.MaxWidth,
		ThumbnailHeight: c.Thumbnail.MaxHeight,
		MaxBound:        c.Thumbnail.Limit,
		Version:         Version,
	}, nil
}
