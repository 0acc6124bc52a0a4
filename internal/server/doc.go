// Package server exposes the layout pipeline over HTTP.
//
// Routes:
//
//	POST /v1/layout   pattern snapshot → layout JSON (positions, paths, lanes)
//	POST /v1/render   pattern snapshot or layout → one artifact (svg, png, pdf, json, dot)
//	POST /v1/cycles   pattern snapshot → prerequisite cycles
//	GET  /healthz     build information
//
// Request bodies carry the snapshot inline:
//
//	{"patterns": [{"id": 1, "name": "Factory Method", "type": "creational"}],
//	 "viz_type": "timeline", "width": 1200, "height": 800}
//
// Errors are JSON objects with a machine-readable code from
// [github.com/matzehuels/patternmap/pkg/errors]; the status code follows
// [errors.HTTPStatus]. Every response carries an X-Request-ID header.
package server
