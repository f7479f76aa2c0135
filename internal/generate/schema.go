package generate

func visualizationSchema() map[string]any {
	interval := map[string]any{
		"type":     "array",
		"minItems": 2,
		"maxItems": 2,
		"items":    map[string]any{"type": "number"},
	}
	stringList := map[string]any{
		"type":  "array",
		"items": map[string]any{"type": "string"},
	}
	return map[string]any{
		"type": "object",
		"required": []any{
			"explanation",
			"visualizationParams",
		},
		"properties": map[string]any{
			"explanation": map[string]any{
				"type": "string",
			},
			"visualizationParams": map[string]any{
				"type": "object",
				"required": []any{
					"type",
					"title",
				},
				"properties": map[string]any{
					"type": map[string]any{
						"type": "string",
						"enum": []any{
							"function2D",
							"functions2D",
							"function3D",
							"parametric2D",
							"parametric3D",
							"vectorField",
							"geometry",
							"calculus",
							"probabilityDistribution",
							"linearAlgebra",
						},
					},
					"title":      map[string]any{"type": "string"},
					"expression": map[string]any{"type": "string"},
					"functions":  stringList,
					"domain":     interval,
					"range":      interval,
					"zRange":     interval,
				},
				"additionalProperties": true,
			},
			"educationalContent": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"title":   map[string]any{"type": "string"},
					"summary": map[string]any{"type": "string"},
					"steps": map[string]any{
						"type": "array",
						"items": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"title":   map[string]any{"type": "string"},
								"content": map[string]any{"type": "string"},
							},
							"additionalProperties": false,
						},
					},
					"keyInsights": stringList,
					"exercises": map[string]any{
						"type": "array",
						"items": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"question": map[string]any{"type": "string"},
								"solution": map[string]any{"type": "string"},
							},
							"additionalProperties": false,
						},
					},
				},
				"additionalProperties": false,
			},
			"followUpQuestions": stringList,
		},
		"additionalProperties": false,
	}
}
