package app

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/vk/rpncalc/internal/console"
	"github.com/vk/rpncalc/internal/ctxlog"
	"github.com/vk/rpncalc/internal/token"
)

// Run executes the main application logic: a one-shot evaluation when the
// config carries expression tokens, otherwise an interactive console
// session.
func (a *App) Run(ctx context.Context, appConfig *Config) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if len(appConfig.Tokens) > 0 {
		return a.runOneShot(ctx, appConfig.Tokens)
	}
	return a.runConsole(ctx)
}

// runOneShot evaluates the tokens left to right and prints the final stack
// bottom-to-top on success. On any processing error nothing reaches the
// output stream; the error propagates to the entrypoint.
func (a *App) runOneShot(ctx context.Context, rawTokens []string) error {
	a.logger.Debug("One-shot evaluation started.", "tokens", len(rawTokens))

	for _, raw := range rawTokens {
		// The driver aliases apply here too, so `3 4 + 2 x` multiplies
		// without shell quoting.
		if target, ok := a.driver.Aliases[raw]; ok {
			raw = target
		}
		tok, err := token.Classify(raw, a.registry)
		if err != nil {
			return err
		}
		if err := a.engine.Execute(ctx, tok, a.registry); err != nil {
			return err
		}
	}

	for _, v := range a.engine.All() {
		fmt.Fprintln(a.outW, v)
	}
	return nil
}

// runConsole starts the interactive driver. Screen control (clearing,
// pausing) is enabled only when output is a real terminal, so piped
// sessions stay scrape-friendly.
func (a *App) runConsole(ctx context.Context) error {
	screen := false
	if f, ok := a.outW.(*os.File); ok {
		screen = term.IsTerminal(int(f.Fd()))
	}

	c := console.New(a.engine, a.registry, a.loader, console.Config{
		Prompt:  a.driver.Prompt,
		Window:  a.driver.Window,
		Aliases: a.driver.Aliases,
		Screen:  screen,
	}, a.inR, a.outW)

	a.logger.Debug("Interactive console starting.", "screen", screen)
	return c.Run(ctx)
}
