package ai

import "time"

// GenerateInput is one generation request.
type GenerateInput struct {
	SystemPrompt string
	UserPrompt   string
	MaxTokens    int
	Temperature  float32
	Timeout      time.Duration // per-attempt deadline; zero means caller's ctx only
}
