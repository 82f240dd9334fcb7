package llm

// BuildTableJSONSchema returns the JSON-Schema for a single table as a generic map.
func BuildTableJSONSchema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"header": stringArray(),
			"rows": map[string]any{
				"type":  "array",
				"items": stringArray(),
			},
		},
		"required": []string{"header", "rows"},
	}
}

// BuildPageTablesJSONSchema wraps the table schema for a whole page answer.
// We pass this to the model as the output contract and also use it locally to validate.
func BuildPageTablesJSONSchema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"tables": map[string]any{
				"type":  "array",
				"items": BuildTableJSONSchema(),
			},
		},
		"required": []string{"tables"},
	}
}

func stringArray() map[string]any {
	return map[string]any{
		"type":  "array",
		"items": map[string]any{"type": "string"},
	}
}
