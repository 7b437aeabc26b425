// Package console implements the interactive driver: a prompt loop that
// renders a sliding window of the stack, resolves aliases, dispatches UI
// commands, and feeds everything else to the engine one token at a time.
//
// The console owns presentation only. Calculator errors come back from the
// engine as values, get framed on screen, and abort the rest of the input
// line; the stack itself is guaranteed intact by the engine's atomicity.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vk/rpncalc/internal/ctxlog"
	"github.com/vk/rpncalc/internal/engine"
	"github.com/vk/rpncalc/internal/plugin"
	"github.com/vk/rpncalc/internal/registry"
	"github.com/vk/rpncalc/internal/token"
)

// Config carries the driver's presentation settings. Aliases map raw
// tokens to opcodes (or other tokens) before classification; they are
// per-instance configuration, not process globals.
type Config struct {
	Prompt  string
	Window  int
	Aliases map[string]string
	// Screen enables terminal control: clearing between renders and
	// pausing after messages. Off when output is not a terminal.
	Screen bool
}

// Console is an interactive calculator session.
type Console struct {
	cfg    Config
	engine *engine.Engine
	reg    *registry.Registry
	loader *plugin.Loader
	in     *bufio.Scanner
	out    io.Writer
}

// New builds a console around an engine, a registry and a plugin loader.
func New(eng *engine.Engine, reg *registry.Registry, loader *plugin.Loader, cfg Config, in io.Reader, out io.Writer) *Console {
	if cfg.Window <= 0 {
		cfg.Window = 4
	}
	return &Console{
		cfg:    cfg,
		engine: eng,
		reg:    reg,
		loader: loader,
		in:     bufio.NewScanner(in),
		out:    out,
	}
}

// Run drives the prompt loop until the user quits or input is exhausted.
func (c *Console) Run(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Console session started.", "window", c.cfg.Window)

	for {
		c.render()
		fmt.Fprint(c.out, c.cfg.Prompt)
		line, ok := c.readLine()
		if !ok {
			fmt.Fprintln(c.out)
			return nil
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			// An empty command is an alias for dup.
			fields = []string{"dup"}
		}

		quit, err := c.runLine(ctx, fields)
		if err != nil {
			c.frame(err.Error())
			c.pause()
		}
		if quit {
			return nil
		}
	}
}

// runLine processes one input line. The first error aborts the remainder
// of the line; the quit flag ends the session.
func (c *Console) runLine(ctx context.Context, fields []string) (quit bool, err error) {
	for i := 0; i < len(fields); i++ {
		cmd := fields[i]

		if handler, ok := c.uiCommand(cmd); ok {
			// A UI command may consume the next field as its argument.
			arg := ""
			if i+1 < len(fields) {
				arg = fields[i+1]
			}
			consumed, quit, err := handler(ctx, arg)
			if consumed {
				i++
			}
			if quit || err != nil {
				return quit, err
			}
			continue
		}

		if a, ok := c.cfg.Aliases[cmd]; ok {
			cmd = a
		}

		tok, err := token.Classify(cmd, c.reg)
		if err != nil {
			return false, err
		}
		if err := c.engine.Execute(ctx, tok, c.reg); err != nil {
			return false, err
		}
	}
	return false, nil
}

// render redraws the stack window, deepest value first, numbered down to 1
// (the top).
func (c *Console) render() {
	if c.cfg.Screen {
		fmt.Fprint(c.out, "\x1b[2J\x1b[H")
	}
	fmt.Fprintln(c.out, "STACK:")
	visible := c.engine.Peek(c.cfg.Window)
	if len(visible) == 0 {
		fmt.Fprint(c.out, "Empty stack\n\n")
		return
	}
	for i, v := range visible {
		fmt.Fprintf(c.out, "%d: %s\n", len(visible)-i, v)
	}
	fmt.Fprintln(c.out)
}

// frame prints a message between *** markers, the way errors interrupt the
// stack display.
func (c *Console) frame(msg string) {
	fmt.Fprintf(c.out, "***\n%s\n***\n", msg)
}

// pause waits for Enter so a message survives the next screen clear. It is
// a no-op when screen control is off.
func (c *Console) pause() {
	if !c.cfg.Screen {
		return
	}
	fmt.Fprint(c.out, "Press <Enter> to continue . . .")
	c.readLine()
}

func (c *Console) readLine() (string, bool) {
	if !c.in.Scan() {
		return "", false
	}
	return c.in.Text(), true
}

// promptFor asks for a missing command argument on its own line.
func (c *Console) promptFor(what string) (string, bool) {
	fmt.Fprintf(c.out, "Enter %s: ", what)
	line, ok := c.readLine()
	return strings.TrimSpace(line), ok
}

func parseWindow(s string) (int, bool) {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
