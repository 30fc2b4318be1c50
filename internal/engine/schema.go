package engine

// Response schemas sent with each generative call, in the
// generateContent responseSchema dialect (an OpenAPI subset with
// uppercase type names).

// RecordSchema describes the expected shape of a generated principle
// record. The id field is deliberately absent: ids are synthesized
// locally after a successful decode.
func RecordSchema() map[string]any {
	return map[string]any{
		"type": "OBJECT",
		"properties": map[string]any{
			"category": map[string]any{
				"type":        "STRING",
				"description": "A broad uppercase category like 'LEADERSHIP' or 'EMOTIONAL INTELLIGENCE'",
			},
			"corePrinciple":   map[string]any{"type": "STRING"},
			"sourceReference": map[string]any{"type": "STRING"},
			"actionPlan": map[string]any{
				"type":  "ARRAY",
				"items": map[string]any{"type": "STRING"},
			},
			"relatedQuestions": map[string]any{
				"type": "ARRAY",
				"items": map[string]any{
					"type": "OBJECT",
					"properties": map[string]any{
						"question": map[string]any{"type": "STRING"},
						"answer":   map[string]any{"type": "STRING"},
					},
				},
			},
			"additionalScriptures": map[string]any{
				"type": "ARRAY",
				"items": map[string]any{
					"type": "OBJECT",
					"properties": map[string]any{
						"verse": map[string]any{"type": "STRING"},
						"text":  map[string]any{"type": "STRING"},
					},
				},
			},
		},
	}
}

// BlueprintSchema describes the expected shape of a generated blueprint.
func BlueprintSchema() map[string]any {
	return map[string]any{
		"type": "OBJECT",
		"properties": map[string]any{
			"purposeStatement": map[string]any{"type": "STRING"},
			"executionSteps": map[string]any{
				"type":  "ARRAY",
				"items": map[string]any{"type": "STRING"},
			},
		},
	}
}
