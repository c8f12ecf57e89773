// Where: internal/credfile/schema.go
// What: Strict JSON Schema validation of the credential file.
// Why: Give --strict checks a precise shape beyond key presence.
package credfile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// credentialSchema pins the strict shape: an object whose required keys are
// string-typed. The relaxed Check contract accepts any value type; strict
// mode is for users who want the file exactly as a client library expects it.
const credentialSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["client_id", "client_secret"],
  "properties": {
    "client_id": {"type": "string", "minLength": 1},
    "client_secret": {"type": "string", "minLength": 1},
    "project_id": {"type": "string"},
    "redirect_uris": {"type": "array", "items": {"type": "string"}},
    "auth_uri": {"type": "string"},
    "token_uri": {"type": "string"}
  }
}`

var compiledSchema = mustCompileSchema()

func mustCompileSchema() *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("credential-file.schema.json", bytes.NewReader([]byte(credentialSchema))); err != nil {
		panic(err)
	}
	return compiler.MustCompile("credential-file.schema.json")
}

// ValidateStrict validates the credential file at path against the embedded
// schema. It assumes the relaxed Check already passed; callers get a single
// wrapped error describing the first violation.
func ValidateStrict(path string) error {
	payload, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read credential file: %w", err)
	}
	var doc any
	if err := json.Unmarshal(payload, &doc); err != nil {
		return fmt.Errorf("parse credential file: %w", err)
	}
	if err := compiledSchema.Validate(doc); err != nil {
		return fmt.Errorf("credential file does not match the strict shape: %w", err)
	}
	return nil
}
