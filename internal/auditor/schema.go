package auditor

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// resultSchema is the contract the audit engine's response must satisfy.
// Item details are left open: the engine adds fields over time and the
// consumer treats them as display-only.
var resultSchema = map[string]any{
	"type":     "object",
	"required": []any{"summary", "items"},
	"properties": map[string]any{
		"summary": map[string]any{
			"type":     "object",
			"required": []any{"total", "compliant", "divergent"},
			"properties": map[string]any{
				"total":     map[string]any{"type": "integer", "minimum": 0},
				"compliant": map[string]any{"type": "integer", "minimum": 0},
				"divergent": map[string]any{"type": "integer", "minimum": 0},
			},
		},
		"items": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type":     "object",
				"required": []any{"item_index", "product_code", "product_name", "status"},
				"properties": map[string]any{
					"item_index":   map[string]any{"type": "integer", "minimum": 1},
					"product_code": map[string]any{"type": "string"},
					"product_name": map[string]any{"type": "string"},
					"status":       map[string]any{"enum": []any{"compliant", "divergent"}},
					"issues": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "string"},
					},
					"details": map[string]any{"type": "object"},
				},
			},
		},
		"invoice_header":     map[string]any{"type": "object"},
		"consistency_errors": map[string]any{"type": "array"},
	},
}

var compiledResultSchema = mustCompile(resultSchema)

func mustCompile(schemaMap map[string]any) *jsonschema.Schema {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		panic(fmt.Sprintf("marshal schema: %v", err))
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("result.json", bytes.NewReader(b)); err != nil {
		panic(fmt.Sprintf("add schema: %v", err))
	}
	schema, err := compiler.Compile("result.json")
	if err != nil {
		panic(fmt.Sprintf("compile schema: %v", err))
	}
	return schema
}

// ValidateResult checks an engine response against the result contract.
func ValidateResult(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := compiledResultSchema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}
