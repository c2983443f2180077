package catalog

import (
	"time"
)

// GenerationParams are the fixed request parameters for one completion path.
type GenerationParams struct {
	// Model is the provider model identifier
	Model string `yaml:"model"`

	// MaxTokens bounds the generated output length
	MaxTokens int `yaml:"max_tokens"`

	// Temperature controls sampling randomness
	Temperature float32 `yaml:"temperature"`

	// TimeoutSeconds bounds the provider call
	TimeoutSeconds int `yaml:"timeout_seconds"`
}

// Timeout returns the configured timeout as a duration.
func (p *GenerationParams) Timeout() time.Duration {
	return time.Duration(p.TimeoutSeconds) * time.Second
}

// Profile is the full provider profile: the directives sent on the wire and
// the generation parameters for the reply and title paths.
type Profile struct {
	// SystemPrompt is the default directive prepended to a context window
	// that carries no system entry
	SystemPrompt string `yaml:"system_prompt"`

	// TitlePrompt instructs the model to produce a short chat title
	TitlePrompt string `yaml:"title_prompt"`

	// Reply parameterizes the main completion path
	Reply GenerationParams `yaml:"reply"`

	// Title parameterizes title generation: tiny output, low temperature,
	// short timeout
	Title GenerationParams `yaml:"title"`
}
