// Package io reads and writes pattern snapshots as JSON, TOML or YAML.
//
// # Overview
//
// A snapshot is the list of patterns one layout run consumes. The layout
// engine only needs id, prerequisites, type and level; the remaining fields
// are carried through for labels and tooltips.
//
// # Formats
//
// JSON files are either a document with a "patterns" array or a bare array:
//
//	{
//	  "patterns": [
//	    {"id": 1, "name": "Singleton", "type": "creational"},
//	    {"id": 2, "name": "Factory Method", "type": "creational", "prerequisites": [1]}
//	  ]
//	}
//
// TOML files use an array of tables:
//
//	[[patterns]]
//	id = 1
//	name = "Singleton"
//	type = "creational"
//
// YAML files mirror the JSON document:
//
//	patterns:
//	  - id: 1
//	    name: Singleton
//	    type: creational
//
// # Import
//
// Use [ImportFile] to read a file, choosing the decoder by extension, or one
// of [ReadJSON], [ReadTOML], [ReadYAML] for any io.Reader:
//
//	patterns, err := io.ImportFile("patterns.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Imported snapshots are checked with [pattern.Validate]: duplicate ids and
// unknown types or levels are reported together. Dangling prerequisites and
// cycles are not errors; the layout engine tolerates both.
//
// # Export
//
// Use [ExportJSON] to write a snapshot to a file, or [WriteJSON] to write to
// any io.Writer. The output always uses the document form.
package io
