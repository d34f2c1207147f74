package cmd

import (
	"log/slog"
	"path/filepath"

	"github.com/mdobak/go-xerrors"

	"github.com/alexiusacademia/golca/internal/assemble"
	"github.com/alexiusacademia/golca/internal/classify"
	"github.com/alexiusacademia/golca/internal/config"
	"github.com/alexiusacademia/golca/internal/geometry"
	"github.com/alexiusacademia/golca/internal/logger"
	"github.com/alexiusacademia/golca/internal/results"
	"github.com/alexiusacademia/golca/internal/subsurface"
)

// engine holds what a command needs to classify a model.
type engine struct {
	cfg       config.Config
	logger    *slog.Logger
	assembler *assemble.Assembler
	close     func()
}

// newEngine loads configuration and wires the assembler. Non-empty
// resultsPath and defaultsPath override the environment.
func newEngine(resultsPath, defaultsPath string) (*engine, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, xerrors.New("loading configuration", err)
	}
	if resultsPath != "" {
		cfg.ResultsPath = resultsPath
	}
	if defaultsPath != "" {
		cfg.DefaultsFile = defaultsPath
	}

	log := logger.Setup(cfg)

	defaults, err := cfg.Defaults()
	if err != nil {
		return nil, xerrors.New("loading engineering defaults", err)
	}

	store, closeStore, err := openStore(cfg, log)
	if err != nil {
		return nil, err
	}

	return &engine{
		cfg:    cfg,
		logger: log,
		assembler: assemble.New(
			classify.New(defaults),
			subsurface.New(store, subsurface.DefaultColumns),
			geometry.SpanMethod(cfg.SpanMethod),
			log,
		),
		close: closeStore,
	}, nil
}

// openStore opens the configured results store: a .json entry list or an
// EnergyPlus SQLite file. No path yields an empty store.
func openStore(cfg config.Config, log *slog.Logger) (results.Store, func(), error) {
	switch {
	case cfg.ResultsPath == "":
		return results.NewMapStore(), func() {}, nil
	case filepath.Ext(cfg.ResultsPath) == ".json":
		store, err := results.LoadMapStore(cfg.ResultsPath)
		if err != nil {
			return nil, nil, xerrors.New("loading results", err)
		}
		log.Debug("results loaded", "path", cfg.ResultsPath, "entries", store.Len())
		return store, func() {}, nil
	default:
		store, err := results.OpenSQLite(cfg.ResultsPath, cfg.ResultsReport, log)
		if err != nil {
			return nil, nil, xerrors.New("opening results database", err)
		}
		return store, func() {
			if err := store.Close(); err != nil {
				log.Error("closing results database", slog.Any("error", err))
			}
		}, nil
	}
}
