// Package schemas embeds the JSON schemas shipped with rocauc.
package schemas

import _ "embed"

// ConfigSchemaJSON is the JSON Schema for .rocauc.yaml files.
//
//go:embed config.schema.json
var ConfigSchemaJSON string
