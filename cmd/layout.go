// File: cmd/layout.go
package cmd

import (
	"fmt"

	"github.com/Irere123/gozilla/internal/browser"
	"github.com/Irere123/gozilla/internal/browser/layout"
	"github.com/Irere123/gozilla/internal/observability"
	"github.com/spf13/cobra"
)

func newLayoutCmd() *cobra.Command {
	layoutCmd := &cobra.Command{
		Use:   "layout",
		Short: "Prints the laid-out box tree of a document as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := configFromContext(ctx)
			if err != nil {
				return err
			}

			pipeline := browser.NewPipeline(cfg.Viewport().Width, cfg.Viewport().Height, observability.GetLogger())
			result, err := pipeline.RunFiles(ctx, cfg.Render().HTMLPath, cfg.Render().CSSPath)
			if err != nil {
				return err
			}

			data, err := layout.MarshalIndent(result.LayoutRoot)
			if err != nil {
				return fmt.Errorf("failed to encode layout: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return err
		},
	}

	addInputFlags(layoutCmd)
	return layoutCmd
}
