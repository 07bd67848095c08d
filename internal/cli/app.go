package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rshade/footprint/internal/config"
	"github.com/rshade/footprint/internal/engine"
	"github.com/rshade/footprint/internal/factors"
	"github.com/rshade/footprint/internal/logging"
)

// app carries the state shared by all subcommands of one invocation.
type app struct {
	configPath     string
	projectDirFlag string
	datasetPath    string

	// Resolved by load.
	resolvedConfigPath string
	projectDir         string
	cfg                *config.Config
	loadErr            error

	table *factors.Table
}

// load resolves and reads the configuration. A broken file is recorded in
// loadErr and replaced by defaults so config init can still repair it.
func (a *app) load(cmd *cobra.Command) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	a.resolvedConfigPath = a.configPath
	if a.resolvedConfigPath == "" {
		path, err := config.DefaultConfigPath()
		if err != nil {
			a.cfg, a.loadErr = config.New(), err
			return
		}
		a.resolvedConfigPath = path
	}

	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}
	a.projectDir = config.ResolveProjectDir(ctx, a.projectDirFlag, wd)

	cfg, err := config.LoadWithProjectDir(ctx, a.resolvedConfigPath, a.projectDir)
	if err != nil {
		a.cfg, a.loadErr = config.New(), err
		return
	}
	a.cfg = cfg
}

// config returns the loaded configuration, failing on a broken config file.
func (a *app) config() (*config.Config, error) {
	if a.loadErr != nil {
		return nil, a.loadErr
	}
	if a.cfg == nil {
		return config.New(), nil
	}
	return a.cfg, nil
}

// settings returns validated engine settings.
func (a *app) settings() (engine.Settings, error) {
	cfg, err := a.config()
	if err != nil {
		return engine.Settings{}, err
	}
	if err = cfg.Validate(); err != nil {
		return engine.Settings{}, fmt.Errorf("configuration validation failed: %w", err)
	}
	settings := cfg.ToSettings()
	if err = settings.Validate(); err != nil {
		return engine.Settings{}, err
	}
	return settings, nil
}

// factorTable loads the dataset named by --dataset or the config, or the
// built-in one.
func (a *app) factorTable(ctx context.Context) (*factors.Table, error) {
	if a.table != nil {
		return a.table, nil
	}

	path := a.datasetPath
	if path == "" && a.cfg != nil {
		path = a.cfg.Footprint.Dataset
	}

	var (
		table *factors.Table
		err   error
	)
	if path == "" {
		table, err = factors.Default()
	} else {
		table, err = factors.LoadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("loading emission factors: %w", err)
	}

	logging.FromContext(ctx).Debug().Ctx(ctx).
		Str("component", "cli").
		Str("dataset", path).
		Str("schema_version", table.SchemaVersion()).
		Int("categories", len(table.Categories())).
		Msg("emission factors loaded")

	a.table = table
	return table, nil
}

// newSession returns an empty session over the loaded factor table.
func (a *app) newSession(ctx context.Context) (*engine.Session, *factors.Table, engine.Settings, error) {
	settings, err := a.settings()
	if err != nil {
		return nil, nil, engine.Settings{}, err
	}
	table, err := a.factorTable(ctx)
	if err != nil {
		return nil, nil, engine.Settings{}, err
	}
	session := engine.NewSession(engine.NewCalculator(table, settings), engine.NewAggregator(settings))
	return session, table, settings, nil
}
