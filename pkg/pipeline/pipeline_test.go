package pipeline

import (
	"testing"

	"github.com/matzehuels/patternmap/pkg/errors"
	"github.com/matzehuels/patternmap/pkg/source"
)

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"svg", false},
		{"png", false},
		{"pdf", false},
		{"json", false},
		{"dot", false},
		{"dot.svg", false},
		{"invalid", true},
		{"SVG", true}, // case-sensitive
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, errors.ErrCodeInvalidFormat) {
			t.Errorf("ValidateFormat(%q) code = %v", tt.format, errors.GetCode(err))
		}
	}
}

func TestValidateFormats(t *testing.T) {
	if err := ValidateFormats([]string{"svg", "png"}); err != nil {
		t.Errorf("Valid formats should pass: %v", err)
	}

	if err := ValidateFormats([]string{"svg", "invalid"}); err == nil {
		t.Error("Invalid format should fail")
	}

	// Empty slice is valid
	if err := ValidateFormats(nil); err != nil {
		t.Errorf("Empty formats should pass: %v", err)
	}
}

func TestValidateVizType(t *testing.T) {
	tests := []struct {
		vizType string
		wantErr bool
	}{
		{"timeline", false},
		{"network", false},
		{"tower", true},
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateVizType(tt.vizType)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateVizType(%q) error = %v, wantErr %v", tt.vizType, err, tt.wantErr)
		}
	}
}

func TestOptionsDefaults(t *testing.T) {
	opts := Options{Input: "patterns.json"}

	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("Valid options should pass: %v", err)
	}

	if opts.VizType != DefaultVizType {
		t.Errorf("VizType = %q, want %q", opts.VizType, DefaultVizType)
	}
	if opts.Width != DefaultWidth || opts.Height != DefaultHeight {
		t.Errorf("size = %vx%v, want %vx%v", opts.Width, opts.Height, DefaultWidth, DefaultHeight)
	}
	if len(opts.Formats) != 1 || opts.Formats[0] != FormatSVG {
		t.Errorf("Formats = %v, want [svg]", opts.Formats)
	}
	if opts.Logger == nil {
		t.Error("Logger should default to a discard logger")
	}
	if f, ok := opts.Source.(source.File); !ok || string(f) != "patterns.json" {
		t.Errorf("Source = %#v, want source.File(patterns.json)", opts.Source)
	}
}

func TestOptionsValidateForLoad(t *testing.T) {
	opts := Options{}
	err := opts.ValidateForLoad()
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("missing input error = %v, want INVALID_INPUT", err)
	}

	opts = Options{Source: source.Static{}}
	if err := opts.ValidateForLoad(); err != nil {
		t.Errorf("explicit source should pass: %v", err)
	}
}

func TestOptionsValidateForLayout(t *testing.T) {
	opts := Options{Width: -1}
	if err := opts.ValidateForLayout(); !errors.Is(err, errors.ErrCodeInvalidDimensions) {
		t.Errorf("negative width error = %v, want INVALID_DIMENSIONS", err)
	}

	opts = Options{VizType: "tower"}
	if err := opts.ValidateForLayout(); !errors.Is(err, errors.ErrCodeInvalidVizType) {
		t.Errorf("unknown viz error = %v, want INVALID_VIZ_TYPE", err)
	}
}

func TestOptionsVizType(t *testing.T) {
	opts := Options{}
	if !opts.IsTimeline() {
		t.Error("Empty VizType should be timeline")
	}

	opts.VizType = "network"
	if opts.IsTimeline() || !opts.IsNetwork() {
		t.Error("network VizType should be network")
	}
}

func TestKeyOpts(t *testing.T) {
	opts := Options{VizType: "network", Width: 640, Height: 480, Lanes: true, ShowCycles: true}

	lk := opts.LayoutKeyOpts()
	if lk.VizType != "network" || lk.Width != 640 || lk.Height != 480 {
		t.Errorf("LayoutKeyOpts() = %+v", lk)
	}

	ak := opts.ArtifactKeyOpts("svg")
	if ak.Format != "svg" || !ak.Lanes || ak.Labels || !ak.Cycles {
		t.Errorf("ArtifactKeyOpts() = %+v", ak)
	}
}
