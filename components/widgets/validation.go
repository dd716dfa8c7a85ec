package widgets

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// ConfigValidator checks a widget configuration against its template schema
// before it is saved. Resolution never validates; only the save path does.
type ConfigValidator interface {
	Validate(tpl WidgetTemplate, config map[string]any) error
}

// JSONSchemaValidator compiles template schemas and validates config blobs.
type JSONSchemaValidator struct {
	mu       sync.RWMutex
	compiled map[string]*jsonschema.Schema
}

// NewJSONSchemaValidator builds a validator backed by jsonschema v5.
func NewJSONSchemaValidator() *JSONSchemaValidator {
	return &JSONSchemaValidator{
		compiled: make(map[string]*jsonschema.Schema),
	}
}

// Validate ensures config satisfies the template schema. Templates without a
// schema accept anything.
func (v *JSONSchemaValidator) Validate(tpl WidgetTemplate, config map[string]any) error {
	if len(tpl.Schema) == 0 {
		return nil
	}
	schema, err := v.schemaFor(tpl)
	if err != nil {
		return err
	}
	payload := map[string]any{}
	if config != nil {
		data, err := json.Marshal(config)
		if err != nil {
			return fmt.Errorf("widgets: marshal config for %s: %w", tpl.ID, err)
		}
		if err := json.Unmarshal(data, &payload); err != nil {
			return fmt.Errorf("widgets: normalize config for %s: %w", tpl.ID, err)
		}
	}
	if err := schema.Validate(payload); err != nil {
		return fmt.Errorf("widgets: configuration for %s failed validation: %w", tpl.ID, err)
	}
	return nil
}

func (v *JSONSchemaValidator) schemaFor(tpl WidgetTemplate) (*jsonschema.Schema, error) {
	v.mu.RLock()
	schema, ok := v.compiled[tpl.ID]
	v.mu.RUnlock()
	if ok {
		return schema, nil
	}
	data, err := json.Marshal(tpl.Schema)
	if err != nil {
		return nil, fmt.Errorf("widgets: marshal schema %s: %w", tpl.ID, err)
	}
	compiler := jsonschema.NewCompiler()
	name := tpl.ID + ".json"
	if err := compiler.AddResource(name, bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("widgets: load schema %s: %w", tpl.ID, err)
	}
	compiled, err := compiler.Compile(name)
	if err != nil {
		return nil, fmt.Errorf("widgets: compile schema %s: %w", tpl.ID, err)
	}
	v.mu.Lock()
	v.compiled[tpl.ID] = compiled
	v.mu.Unlock()
	return compiled, nil
}

type noopConfigValidator struct{}

func (noopConfigValidator) Validate(WidgetTemplate, map[string]any) error { return nil }
