package render

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
)

// ErrConverterMissing is returned when rsvg-convert is not on PATH.
var ErrConverterMissing = errors.New("rsvg-convert not found")

// DefaultPNGScale is the scale factor used when a PNG scale is not positive.
const DefaultPNGScale = 2.0

// ToPDF converts SVG bytes to PDF using rsvg-convert.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func ToPDF(svg []byte) ([]byte, error) {
	return rsvgConvert(context.Background(), svg, "pdf")
}

// ToPNG converts SVG bytes to PNG using rsvg-convert with the given scale factor.
// Scale of 2.0 produces a 2x resolution image.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func ToPNG(svg []byte, scale float64) ([]byte, error) {
	return ConvertContext(context.Background(), svg, "png", scale)
}

// ConvertContext converts SVG bytes to format ("pdf" or "png"), killing the
// converter if ctx is cancelled. For "svg" the input is returned unchanged.
func ConvertContext(ctx context.Context, svg []byte, format string, scale float64) ([]byte, error) {
	switch format {
	case "svg":
		return svg, nil
	case "pdf":
		return rsvgConvert(ctx, svg, "pdf")
	case "png":
		if scale <= 0 {
			scale = DefaultPNGScale
		}
		return rsvgConvert(ctx, svg, "png", "-z", fmt.Sprintf("%.2f", scale))
	default:
		return nil, fmt.Errorf("cannot convert SVG to %q", format)
	}
}

// rsvgConvert shells out to rsvg-convert for format conversion.
func rsvgConvert(ctx context.Context, svg []byte, format string, extraArgs ...string) ([]byte, error) {
	if _, err := exec.LookPath("rsvg-convert"); err != nil {
		return nil, fmt.Errorf("%w: %s export requires librsvg. Install with:\n  macOS:  brew install librsvg\n  Linux:  apt install librsvg2-bin", ErrConverterMissing, format)
	}

	args := append([]string{"-f", format}, extraArgs...)
	cmd := exec.CommandContext(ctx, "rsvg-convert", args...)
	cmd.Stdin = bytes.NewReader(svg)

	var out, errBuf bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errBuf

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("rsvg-convert: %v: %s", err, errBuf.String())
	}
	return out.Bytes(), nil
}
