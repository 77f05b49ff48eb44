// File: cmd/render.go
package cmd

import (
	"bytes"
	"fmt"
	"os"

	"github.com/Irere123/gozilla/internal/browser"
	"github.com/Irere123/gozilla/internal/browser/paint"
	"github.com/Irere123/gozilla/internal/config"
	"github.com/Irere123/gozilla/internal/observability"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newRenderCmd() *cobra.Command {
	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "Styles, lays out and paints a document to an image",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := observability.GetLogger()

			cfg, err := configFromContext(ctx)
			if err != nil {
				return err
			}
			renderCfg, viewport := cfg.Render(), cfg.Viewport()

			pipeline := browser.NewPipeline(viewport.Width, viewport.Height, logger)
			result, err := pipeline.RunFiles(ctx, renderCfg.HTMLPath, renderCfg.CSSPath)
			if err != nil {
				return err
			}

			canvas := paint.Paint(result.LayoutRoot, result.Viewport.Content)

			// Encode fully before touching the output file.
			var buf bytes.Buffer
			if err := canvas.EncodePNG(&buf); err != nil {
				return err
			}
			if err := os.WriteFile(renderCfg.Output, buf.Bytes(), 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", renderCfg.Output, err)
			}

			logger.Info("Render complete",
				zap.String("output", renderCfg.Output),
				zap.Int("width", canvas.Width()),
				zap.Int("height", canvas.Height()),
			)
			fmt.Fprintf(cmd.OutOrStdout(), "Saved output as %s\n", renderCfg.Output)
			return nil
		},
	}

	addInputFlags(renderCmd)
	renderCmd.Flags().StringP("output", "o", "output.png", "output file")
	renderCmd.Flags().StringP("format", "f", config.FormatPNG, "output format (png)")
	return renderCmd
}
