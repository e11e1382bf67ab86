package app

import (
	"fmt"

	"github.com/Badsnus/prettyqr/internal/adapters/config"
	"github.com/Badsnus/prettyqr/pkg/generator"
	"github.com/Badsnus/prettyqr/pkg/logger"
)

type App struct {
	Generator *generator.Generator
	Styles    []generator.Style
	Logger    *logger.Logger
}

func New(cfg *config.Config) (*App, error) {
	appLogger, err := logger.Named("app")
	if err != nil {
		return nil, err
	}
	generatorLogger, err := logger.Named("generator")
	if err != nil {
		return nil, err
	}

	return &App{
		Generator: generator.New(cfg.OutputDir, cfg.Seed, generatorLogger),
		Styles:    cfg.Styles,
		Logger:    appLogger,
	}, nil
}

// Run renders every configured style. It keeps going after a failed style
// and reports how many failed.
func (a *App) Run() error {
	a.Logger.Infof("Rendering %d styles into %s", len(a.Styles), a.Generator.OutputDir)

	failed := 0
	for _, style := range a.Styles {
		if _, _, err := a.Generator.Generate(style); err != nil {
			a.Logger.Errorf("Failed to generate %q: %v", style.Name, err)
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d styles failed", failed, len(a.Styles))
	}
	a.Logger.Info("Done")
	return nil
}
