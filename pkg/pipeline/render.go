package pipeline

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/matzehuels/patternmap/pkg/errors"
	"github.com/matzehuels/patternmap/pkg/graph"
	"github.com/matzehuels/patternmap/pkg/pattern"
	"github.com/matzehuels/patternmap/pkg/render"
	"github.com/matzehuels/patternmap/pkg/render/nodelink"
	"github.com/matzehuels/patternmap/pkg/render/sink"
)

// RenderLayout generates output artifacts in the requested formats.
// The SVG is drawn once and reused for PNG and PDF conversion.
// patterns is only read for the DOT formats.
func RenderLayout(ctx context.Context, l graph.Layout, patterns []pattern.Pattern, opts Options) (map[string][]byte, error) {
	var svg []byte
	svgOnce := func() []byte {
		if svg == nil {
			svg = sink.RenderSVG(l, buildSVGOptions(opts)...)
		}
		return svg
	}

	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data = svgOnce()
		case FormatPNG, FormatPDF:
			data, err = render.ConvertContext(ctx, svgOnce(), format, render.DefaultPNGScale)
		case FormatJSON:
			data, err = graph.MarshalLayout(l)
		case FormatDOT:
			if patterns == nil {
				return nil, errors.New(errors.ErrCodeInvalidInput, "dot output needs the pattern snapshot")
			}
			data = []byte(nodelink.ToDOT(patterns, nodelink.Options{Detailed: true, MarkCycles: opts.ShowCycles}))
		case FormatDOTSVG:
			if patterns == nil {
				return nil, errors.New(errors.ErrCodeInvalidInput, "dot.svg output needs the pattern snapshot")
			}
			data, err = nodelink.RenderSVGContext(ctx, nodelink.ToDOT(patterns, nodelink.Options{MarkCycles: opts.ShowCycles}))
		default:
			return nil, errors.New(errors.ErrCodeUnsupported, "unsupported format: %s", format)
		}

		if stderrors.Is(err, render.ErrConverterMissing) {
			return nil, errors.Wrap(errors.ErrCodeUnsupported, err, "render %s", format)
		}
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}

// buildSVGOptions builds SVG rendering options.
func buildSVGOptions(opts Options) []sink.SVGOption {
	var svgOpts []sink.SVGOption
	if opts.Lanes {
		svgOpts = append(svgOpts, sink.WithLanes())
	}
	if opts.Labels {
		svgOpts = append(svgOpts, sink.WithLabels())
	}
	if opts.ShowCycles {
		svgOpts = append(svgOpts, sink.WithCycles())
	}
	return svgOpts
}

// RenderFromLayoutData renders output from serialized layout data.
// This is useful when the layout was computed elsewhere (e.g., cached).
func RenderFromLayoutData(ctx context.Context, layoutData []byte, patterns []pattern.Pattern, opts Options) (map[string][]byte, error) {
	parsed, err := graph.UnmarshalLayout(layoutData)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse layout")
	}
	opts.VizType = parsed.VizType
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}
	return RenderLayout(ctx, parsed, patterns, opts)
}
