package profile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	schemafs "github.com/meekukin/casekit/schema"
)

var (
	profileSchema *jsonschema.Schema
	compileOnce   sync.Once
	compileErr    error
)

// compileSchema compiles the embedded profile schema once.
func compileSchema() error {
	compileOnce.Do(func() {
		data, err := schemafs.FS.ReadFile("profile.schema.json")
		if err != nil {
			compileErr = fmt.Errorf("read profile schema: %w", err)
			return
		}

		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
		if err != nil {
			compileErr = fmt.Errorf("unmarshal profile schema: %w", err)
			return
		}

		compiler := jsonschema.NewCompiler()
		if err = compiler.AddResource("profile.schema.json", doc); err != nil {
			compileErr = fmt.Errorf("add profile schema resource: %w", err)
			return
		}

		profileSchema, compileErr = compiler.Compile("profile.schema.json")
	})

	return compileErr
}

// validate checks a decoded YAML document against the profile schema.
// The document round-trips through JSON so the validator sees exactly
// the value shapes it expects.
func validate(doc any) error {
	if err := compileSchema(); err != nil {
		return fmt.Errorf("profile: %w", err)
	}

	encoded, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidProfile, err)
	}
	value, err := jsonschema.UnmarshalJSON(bytes.NewReader(encoded))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidProfile, err)
	}

	if err = profileSchema.Validate(value); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidProfile, err)
	}

	return nil
}
