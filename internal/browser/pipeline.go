// internal/browser/pipeline.go
package browser

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/Irere123/gozilla/internal/browser/dom"
	"github.com/Irere123/gozilla/internal/browser/layout"
	"github.com/Irere123/gozilla/internal/browser/parser"
	"github.com/Irere123/gozilla/internal/browser/style"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Result holds every intermediate tree produced by one pipeline run. The trees
// borrow from one another and share the result's lifetime.
type Result struct {
	Document   *dom.Node
	StyleSheet parser.StyleSheet
	StyleRoot  *style.StyledNode
	LayoutRoot *layout.LayoutBox
	Viewport   layout.Dimensions
}

// Pipeline turns an HTML document and a stylesheet into a laid-out box tree.
type Pipeline struct {
	layoutEngine *layout.Engine
	logger       *zap.Logger
}

// NewPipeline creates a pipeline for a viewport of the given size. A nil logger
// disables logging.
func NewPipeline(viewportWidth, viewportHeight int, logger *zap.Logger) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pipeline{
		layoutEngine: layout.NewEngine(float32(viewportWidth), float32(viewportHeight), logger),
		logger:       logger.Named("pipeline"),
	}
}

// Run parses both sources, builds the style tree and lays it out. Parsing the
// document and the stylesheet are independent and run concurrently; the first
// failure cancels the other.
func (p *Pipeline) Run(ctx context.Context, htmlSource, cssSource string) (*Result, error) {
	return p.run(ctx,
		func(context.Context) (string, error) { return htmlSource, nil },
		func(context.Context) (string, error) { return cssSource, nil },
	)
}

// RunFiles is Run for sources read from disk.
func (p *Pipeline) RunFiles(ctx context.Context, htmlPath, cssPath string) (*Result, error) {
	return p.run(ctx, readSource(htmlPath), readSource(cssPath))
}

type sourceFunc func(ctx context.Context) (string, error)

func readSource(path string) sourceFunc {
	return func(ctx context.Context) (string, error) {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", path, err)
		}
		return string(data), nil
	}
}

func (p *Pipeline) run(ctx context.Context, htmlSource, cssSource sourceFunc) (*Result, error) {
	result := &Result{Viewport: p.layoutEngine.Viewport()}

	g, groupCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		src, err := htmlSource(groupCtx)
		if err != nil {
			return err
		}
		doc, err := parser.ParseHTML(strings.NewReader(src))
		if err != nil {
			return err
		}
		result.Document = doc
		return nil
	})
	g.Go(func() error {
		src, err := cssSource(groupCtx)
		if err != nil {
			return err
		}
		sheet, err := parser.ParseCSS(src)
		if err != nil {
			return fmt.Errorf("failed to parse stylesheet: %w", err)
		}
		result.StyleSheet = sheet
		return nil
	})
	if err := g.Wait(); err != nil {
		p.logger.Error("Parsing failed", zap.Error(err))
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	p.logger.Debug("Sources parsed", zap.Int("rules", len(result.StyleSheet.Rules)))

	result.StyleRoot = style.NewEngine(result.StyleSheet, p.logger).BuildTree(result.Document)

	layoutRoot, err := p.layoutEngine.BuildAndLayoutTree(result.StyleRoot)
	if err != nil {
		return nil, err
	}
	result.LayoutRoot = layoutRoot
	return result, nil
}
