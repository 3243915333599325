package report

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// Schema describes Document for renderers outside this program.
func Schema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	return reflector.Reflect(&Document{})
}

// SchemaJSON is Schema marshalled with indentation.
func SchemaJSON() ([]byte, error) {
	return json.MarshalIndent(Schema(), "", "  ")
}
