package catalog

import (
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed config/*.yaml
var configFiles embed.FS

// Registry holds the provider profile loaded from the embedded YAML file.
// It is read once at startup and immutable for the process lifetime.
type Registry struct {
	profile Profile
}

// NewRegistry loads the embedded provider profile
func NewRegistry() (*Registry, error) {
	r := &Registry{}

	if err := r.loadProfile("groq"); err != nil {
		return nil, fmt.Errorf("failed to load groq profile: %w", err)
	}

	return r, nil
}

// loadProfile loads a provider's profile YAML file
func (r *Registry) loadProfile(provider string) error {
	filename := fmt.Sprintf("config/%s.yaml", provider)
	data, err := configFiles.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", filename, err)
	}

	if err := yaml.Unmarshal(data, &r.profile); err != nil {
		return fmt.Errorf("failed to unmarshal %s: %w", filename, err)
	}

	if r.profile.Reply.Model == "" || r.profile.Title.Model == "" {
		return fmt.Errorf("%s: missing model identifiers", filename)
	}

	return nil
}

// SystemPrompt returns the default system directive
func (r *Registry) SystemPrompt() string {
	return r.profile.SystemPrompt
}

// TitlePrompt returns the title-generation directive
func (r *Registry) TitlePrompt() string {
	return r.profile.TitlePrompt
}

// Reply returns the generation parameters for the main completion path
func (r *Registry) Reply() GenerationParams {
	return r.profile.Reply
}

// Title returns the generation parameters for title generation
func (r *Registry) Title() GenerationParams {
	return r.profile.Title
}
