package toml

import "fmt"

const currentSchemaVersion = 1

type fileSchema struct {
	Version int            `toml:"version"`
	Choices []choiceSchema `toml:"choices"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported choices schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type choiceSchema struct {
	Workspace    string `toml:"workspace"`
	Organization string `toml:"organization"`
	TenantID     string `toml:"tenant_id"`
	ChosenAt     string `toml:"chosen_at,omitempty"`
}
