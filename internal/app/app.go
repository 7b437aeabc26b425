package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/rpncalc/internal/ctxlog"
	"github.com/vk/rpncalc/internal/engine"
	"github.com/vk/rpncalc/internal/operator"
	"github.com/vk/rpncalc/internal/plugin"
	"github.com/vk/rpncalc/internal/registry"
)

// App encapsulates one calculator instance: its logger, operator registry,
// stack engine, plugin loader and driver configuration.
type App struct {
	inR    io.Reader
	outW   io.Writer
	logger *slog.Logger

	registry *registry.Registry
	engine   *engine.Engine
	loader   *plugin.Loader
	driver   DriverConfig
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App: standard set installed, compiled-in groups registered,
// rc file applied and autoload plugins loaded. Startup failures (bad rc
// file, defective autoload plugin) panic; the entrypoint recovers and
// turns them into a clean exit.
func NewApp(inR io.Reader, outW, errW io.Writer, appConfig *Config, groups ...operator.Group) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, errW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	reg := registry.New()
	logger.Debug("Standard operator set installed.", "operators", reg.Len())

	if len(groups) == 0 {
		groups = coreGroups
	}
	for _, g := range groups {
		if err := reg.LoadGroup(ctx, g); err != nil {
			// A defective compiled-in group is a programming error.
			panic(err)
		}
	}
	logger.Debug("Compiled-in operator groups registered.", "count", len(groups))

	driver, err := LoadDriverConfig(appConfig.RCPath)
	if err != nil {
		panic(fmt.Errorf("failed to load driver configuration: %w", err))
	}

	loader := plugin.NewLoader(appConfig.PluginsPath)
	for _, name := range driver.Autoload {
		pluginGroups, err := loader.Load(ctx, name)
		if err != nil {
			panic(fmt.Errorf("failed to autoload plugin %q: %w", name, err))
		}
		for _, g := range pluginGroups {
			if err := reg.LoadGroup(ctx, g); err != nil {
				panic(fmt.Errorf("failed to register autoload plugin %q: %w", name, err))
			}
		}
	}
	logger.Debug("Autoload plugins registered.", "count", len(driver.Autoload))

	return &App{
		inR:      inR,
		outW:     outW,
		logger:   logger,
		registry: reg,
		engine:   engine.New(),
		loader:   loader,
		driver:   driver,
	}
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// Engine returns the application's stack engine. This is primarily for testing.
func (a *App) Engine() *engine.Engine {
	return a.engine
}
