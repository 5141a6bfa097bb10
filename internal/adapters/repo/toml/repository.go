// Package toml persists per-workspace organization choices in a TOML file
// whose path is discovered through viper configuration.
package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"github.com/google/uuid"
	"github.com/lcollet/schemapick/internal/domain"
	"github.com/lcollet/schemapick/internal/ports"
)

const (
	configName        = "config"
	configType        = "toml"
	choicesPathKey    = "choices.path"
	choicesFileMode   = 0o600
	choicesDirMode    = 0o700
	choicesConfigDir  = ".schemapick"
	choicesConfigFile = "choices.toml"
	tempFilePattern   = ".choices-*.toml.tmp"
)

type Repository struct {
	choicesPath string
	mu          *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.ChoiceRepository = (*Repository)(nil)

func NewRepository(cfg *viper.Viper) (*Repository, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	defaultPath := filepath.Join(homeDir, choicesConfigDir, choicesConfigFile)

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(filepath.Join(homeDir, choicesConfigDir))
	cfg.SetDefault(choicesPathKey, defaultPath)

	err = cfg.ReadInConfig()
	if err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	choicesPath := cfg.GetString(choicesPathKey)
	if choicesPath == "" {
		return nil, errors.New("choices path is empty")
	}
	choicesPath, err = normalizeChoicesPath(choicesPath)
	if err != nil {
		return nil, err
	}

	return &Repository{choicesPath: choicesPath, mu: lockForPath(choicesPath)}, nil
}

func (r *Repository) Get(ctx context.Context, workspace string) (domain.OrganizationChoice, error) {
	if err := ctx.Err(); err != nil {
		return domain.OrganizationChoice{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return domain.OrganizationChoice{}, err
	}

	for _, entry := range file.Choices {
		if entry.Workspace == workspace {
			return fromSchema(entry)
		}
	}

	return domain.OrganizationChoice{}, domain.ErrChoiceNotFound
}

// Save upserts by workspace name: existing entries for other workspaces are
// preserved, a prior entry for the same workspace is replaced.
func (r *Repository) Save(ctx context.Context, choice domain.OrganizationChoice) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}
	file.applyDefaults()

	encoded := toSchema(choice)
	updated := false
	for i := range file.Choices {
		if file.Choices[i].Workspace == encoded.Workspace {
			file.Choices[i] = encoded
			updated = true
			break
		}
	}

	if !updated {
		file.Choices = append(file.Choices, encoded)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	return r.writeSchema(file)
}

func (r *Repository) List(ctx context.Context) ([]domain.OrganizationChoice, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return nil, err
	}

	choices := make([]domain.OrganizationChoice, 0, len(file.Choices))
	for _, entry := range file.Choices {
		choice, err := fromSchema(entry)
		if err != nil {
			return nil, err
		}
		choices = append(choices, choice)
	}

	return choices, nil
}

func (r *Repository) readSchema() (fileSchema, error) {
	data, err := os.ReadFile(r.choicesPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fileSchema{}, nil
		}
		return fileSchema{}, fmt.Errorf("read choices file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, fmt.Errorf("decode choices file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func (r *Repository) writeSchema(file fileSchema) error {
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(r.choicesPath), choicesDirMode); err != nil {
		return fmt.Errorf("create choices directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode choices file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(r.choicesPath), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp choices file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp choices file: %w", err)
	}

	if err := tempFile.Chmod(choicesFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp choices file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp choices file: %w", err)
	}

	if err := os.Rename(tempName, r.choicesPath); err != nil {
		return fmt.Errorf("replace choices file: %w", err)
	}

	cleanup = false

	if err := os.Chmod(r.choicesPath, choicesFileMode); err != nil {
		return fmt.Errorf("chmod choices file: %w", err)
	}

	return nil
}

func normalizeChoicesPath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve choices path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}

func toSchema(choice domain.OrganizationChoice) choiceSchema {
	return choiceSchema{
		Workspace:    choice.Workspace,
		Organization: string(choice.Organization),
		TenantID:     choice.TenantID.String(),
		ChosenAt:     formatTime(choice.ChosenAt),
	}
}

func fromSchema(entry choiceSchema) (domain.OrganizationChoice, error) {
	tenantID, err := uuid.Parse(entry.TenantID)
	if err != nil {
		return domain.OrganizationChoice{}, fmt.Errorf("parse tenant id for workspace %q: %w", entry.Workspace, err)
	}

	return domain.OrganizationChoice{
		Workspace:    entry.Workspace,
		Organization: domain.OrganizationName(entry.Organization),
		TenantID:     tenantID,
		ChosenAt:     parseTime(entry.ChosenAt),
	}, nil
}

func parseTime(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}

	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}
	}

	return parsed
}

func formatTime(value time.Time) string {
	if value.IsZero() {
		return ""
	}

	return value.Format(time.RFC3339)
}
