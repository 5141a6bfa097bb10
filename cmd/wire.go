package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/lcollet/schemapick/internal/adapters/devops"
	"github.com/lcollet/schemapick/internal/adapters/provider"
	tomlrepo "github.com/lcollet/schemapick/internal/adapters/repo/toml"
	scmgit "github.com/lcollet/schemapick/internal/adapters/scm/git"
	"github.com/lcollet/schemapick/internal/adapters/store"
	"github.com/lcollet/schemapick/internal/application"
	"github.com/lcollet/schemapick/internal/ports"
)

const (
	configDirName = ".schemapick"
	configName    = "config"
	configType    = "toml"

	baseURLKey      = "api.base_url"
	schemaStoreKey  = "schema.store"
	schemaCustomKey = "schema.custom"
	sessionsKey     = "sessions"

	defaultBaseURL = "https://dev.azure.com"
)

// app holds the wired collaborators. The prompter is chosen per command, so
// resolvers are built on demand around a shared notifier and cache.
type app struct {
	scm      ports.SourceControl
	sessions ports.SessionProvider
	client   ports.OrganizationClient
	choices  ports.ChoiceRepository
	store    ports.SchemaStore
	notifier *application.Notifier
	cache    *application.SessionCache
	fallback application.Fallback
	logger   *slog.Logger
}

func wireApp(logger *slog.Logger) (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	choices, err := tomlrepo.NewRepository(viper.New())
	if err != nil {
		return nil, fmt.Errorf("wire choice repository: %w", err)
	}

	var sessionConfigs []provider.SessionConfig
	if err := cfg.UnmarshalKey(sessionsKey, &sessionConfigs); err != nil {
		return nil, fmt.Errorf("parse configured sessions: %w", err)
	}
	sessions, err := provider.New(sessionConfigs)
	if err != nil {
		return nil, fmt.Errorf("wire session provider: %w", err)
	}

	installRoot, err := installDir()
	if err != nil {
		return nil, fmt.Errorf("resolve install directory: %w", err)
	}

	return &app{
		scm:      scmgit.New(),
		sessions: sessions,
		client:   devops.NewClient(cfg.GetString(baseURLKey), http.DefaultClient),
		choices:  choices,
		store:    store.New(cfg.GetString(schemaStoreKey)),
		notifier: application.NewNotifier(),
		cache:    application.NewSessionCache(),
		fallback: application.Fallback{
			Custom:      cfg.GetString(schemaCustomKey),
			InstallRoot: installRoot,
		},
		logger: logger,
	}, nil
}

// resolver builds a resolver around the shared state with the prompter the
// calling command wants. Sharing the cache keeps the "fetch once per run"
// guarantee across commands in the same process.
func (a *app) resolver(prompter ports.Prompter) *application.Resolver {
	return application.NewResolver(application.ResolverConfig{
		SourceControl: a.scm,
		Sessions:      a.sessions,
		Client:        a.client,
		Choices:       a.choices,
		Store:         a.store,
		Prompter:      prompter,
		Notifier:      a.notifier,
		Cache:         a.cache,
		Fallback:      a.fallback,
		Clock:         ports.SystemClock{},
		Logger:        a.logger,
	})
}

func loadConfig() (*viper.Viper, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	cfg := viper.New()
	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(filepath.Join(homeDir, configDirName))
	cfg.SetDefault(baseURLKey, defaultBaseURL)
	cfg.SetDefault(schemaStoreKey, filepath.Join(homeDir, configDirName, "schemas"))
	cfg.SetDefault(schemaCustomKey, "")

	if err := cfg.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	return cfg, nil
}

func installDir() (string, error) {
	executable, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(executable), nil
}
