package server

import (
	"encoding/json"
	stderrors "errors"
	"net/http"

	"github.com/matzehuels/patternmap/pkg/analyze"
	"github.com/matzehuels/patternmap/pkg/buildinfo"
	"github.com/matzehuels/patternmap/pkg/errors"
	"github.com/matzehuels/patternmap/pkg/graph"
	"github.com/matzehuels/patternmap/pkg/pattern"
	"github.com/matzehuels/patternmap/pkg/pipeline"
	"github.com/matzehuels/patternmap/pkg/source"
)

// contentTypes maps artifact formats to response content types.
var contentTypes = map[string]string{
	pipeline.FormatSVG:  "image/svg+xml",
	pipeline.FormatPNG:  "image/png",
	pipeline.FormatPDF:  "application/pdf",
	pipeline.FormatJSON: "application/json",
	pipeline.FormatDOT:  "text/vnd.graphviz",

	pipeline.FormatDOTSVG: "image/svg+xml",
}

// layoutRequest is the body of the layout and render endpoints.
type layoutRequest struct {
	Patterns []pattern.Pattern `json:"patterns"`
	VizType  string            `json:"viz_type"`
	Width    float64           `json:"width"`
	Height   float64           `json:"height"`

	// Render only.
	Format string          `json:"format"`
	Lanes  bool            `json:"lanes"`
	Labels bool            `json:"labels"`
	Cycles bool            `json:"cycles"`
	Layout json.RawMessage `json:"layout"`
}

// options converts the request into pipeline options.
func (req layoutRequest) options() pipeline.Options {
	opts := pipeline.Options{
		Source:     source.Static(req.Patterns),
		VizType:    req.VizType,
		Width:      req.Width,
		Height:     req.Height,
		Lanes:      req.Lanes,
		Labels:     req.Labels,
		ShowCycles: req.Cycles,
	}
	if req.Format != "" {
		opts.Formats = []string{req.Format}
	}
	return opts
}

type cycleResponse struct {
	IDs  []int  `json:"ids"`
	Path string `json:"path"`
}

type cyclesResponse struct {
	Cycles []cycleResponse `json:"cycles"`
}

type errorBody struct {
	Code      errors.Code `json:"code"`
	Message   string      `json:"message"`
	RequestID string      `json:"request_id,omitempty"`
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, struct {
		Status string         `json:"status"`
		Build  buildinfo.Info `json:"build"`
	}{Status: "ok", Build: buildinfo.Current()})
}

func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decode(w, r)
	if !ok {
		return
	}
	opts := req.options()
	s.defaults(&opts)

	patterns, err := s.runner.Load(r.Context(), opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	l, err := s.runner.GenerateLayout(r.Context(), patterns, opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	data, err := graph.MarshalLayout(l)
	if err != nil {
		s.writeError(w, r, errors.Wrap(errors.ErrCodeInternal, err, "encode layout"))
		return
	}
	w.Header().Set("Content-Type", contentTypes[pipeline.FormatJSON])
	_, _ = w.Write(data)
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decode(w, r)
	if !ok {
		return
	}
	opts := req.options()
	s.defaults(&opts)
	if len(opts.Formats) != 1 {
		opts.Formats = []string{pipeline.FormatSVG}
	}
	format := opts.Formats[0]

	var (
		artifacts map[string][]byte
		err       error
	)
	if len(req.Layout) > 0 {
		artifacts, err = pipeline.RenderFromLayoutData(r.Context(), req.Layout, req.Patterns, opts)
	} else {
		var result *pipeline.Result
		result, err = s.runner.Execute(r.Context(), opts)
		if result != nil {
			artifacts = result.Artifacts
		}
	}
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", contentTypes[format])
	_, _ = w.Write(artifacts[format])
}

func (s *Server) handleCycles(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decode(w, r)
	if !ok {
		return
	}
	patterns, err := s.runner.Load(r.Context(), req.options())
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	resp := cyclesResponse{Cycles: []cycleResponse{}}
	for _, c := range analyze.DetectCycles(patterns) {
		resp.Cycles = append(resp.Cycles, cycleResponse{IDs: c, Path: c.String()})
	}
	writeJSON(w, http.StatusOK, resp)
}

// decode reads the request body, writing a 400 response on failure.
// Lanes and labels are on unless the body turns them off.
func (s *Server) decode(w http.ResponseWriter, r *http.Request) (layoutRequest, bool) {
	req := layoutRequest{Lanes: true, Labels: true}
	body := http.MaxBytesReader(w, r.Body, s.maxBody)
	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if stderrors.As(err, &tooLarge) {
			s.writeError(w, r, errors.New(errors.ErrCodeInvalidInput, "request body exceeds %d bytes", tooLarge.Limit))
			return req, false
		}
		s.writeError(w, r, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request"))
		return req, false
	}
	return req, true
}

// writeError writes err as a JSON error with the status for its code.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := errors.HTTPStatus(err)
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "error", err, "request_id", RequestIDFrom(r.Context()))
	}
	writeJSON(w, status, errorResponse{Error: errorBody{
		Code:      code,
		Message:   errors.UserMessage(err),
		RequestID: RequestIDFrom(r.Context()),
	}})
}
