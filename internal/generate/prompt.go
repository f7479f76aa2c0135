package generate

import (
	"bytes"
	"strings"
)

const promptVersion = "mathviz-gen-v1"

func buildSystemPrompt() string {
	return strings.TrimSpace(`
You are a math visualization assistant for MathViz.
Return ONLY valid JSON that conforms to the provided schema.
visualizationParams.type must be one of: function2D, functions2D, function3D, parametric2D, parametric3D, vectorField, geometry, calculus, probabilityDistribution, linearAlgebra.
Write expressions with bare function names (sin, cos, tan, sqrt, pow, ...) over the variables x, y, t, u, v. No other functions or variables exist.
Keep the explanation under 150 words. Make educationalContent concrete: short steps, two or three key insights, at least one exercise with a solution.
Do not include any extra keys, markdown, or text outside JSON.
	`)
}

func buildUserPrompt(prompt string) string {
	var buf bytes.Buffer
	buf.WriteString("Describe a visualization for the following request.\n")
	buf.WriteString("Pick the simplest type that fits, choose sensible bounds, and propose follow-up questions.\n")
	buf.WriteString("Request:\n")
	buf.WriteString(prompt)
	return buf.String()
}
