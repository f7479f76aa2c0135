package config

const (
	MaxRequestBytes = 1 << 20 // 1MB for JSON API bodies
	MaxPromptChars  = 8000    // prompt length forwarded to Gemini
)
