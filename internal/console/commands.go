package console

import (
	"context"
	"fmt"

	"github.com/vk/rpncalc/internal/ctxlog"
)

// uiHandler executes one UI command. arg is the next field on the input
// line, if any; consumed reports whether the handler used it.
type uiHandler func(ctx context.Context, arg string) (consumed, quit bool, err error)

// uiCommand resolves a UI command name or its short form.
func (c *Console) uiCommand(cmd string) (uiHandler, bool) {
	switch cmd {
	case "q", "quit":
		return func(context.Context, string) (bool, bool, error) {
			return false, true, nil
		}, true
	case "h", "help":
		return func(context.Context, string) (bool, bool, error) {
			c.printHelp()
			c.pause()
			return false, false, nil
		}, true
	case "c", "clear":
		return func(ctx context.Context, _ string) (bool, bool, error) {
			c.engine.Clear()
			ctxlog.FromContext(ctx).Debug("Stack cleared from console.")
			return false, false, nil
		}, true
	case "l", "list":
		return func(context.Context, string) (bool, bool, error) {
			c.printOperators()
			c.pause()
			return false, false, nil
		}, true
	case "p", "load":
		return c.loadCommand, true
	case "u", "unload":
		return c.unloadCommand, true
	case "ss", "stacksize":
		return c.stacksizeCommand, true
	}
	return nil, false
}

// loadCommand loads a plugin file by name and registers every group it
// declares. The name comes from the line or, failing that, a prompt.
func (c *Console) loadCommand(ctx context.Context, arg string) (bool, bool, error) {
	consumed := arg != ""
	if arg == "" {
		var ok bool
		if arg, ok = c.promptFor("plugin name"); !ok || arg == "" {
			return false, false, nil
		}
	}
	groups, err := c.loader.Load(ctx, arg)
	if err != nil {
		return consumed, false, err
	}
	for _, g := range groups {
		if err := c.reg.LoadGroup(ctx, g); err != nil {
			return consumed, false, err
		}
	}
	return consumed, false, nil
}

// unloadCommand evicts a group by name.
func (c *Console) unloadCommand(ctx context.Context, arg string) (bool, bool, error) {
	consumed := arg != ""
	if arg == "" {
		var ok bool
		if arg, ok = c.promptFor("plugin name"); !ok || arg == "" {
			return false, false, nil
		}
	}
	return consumed, false, c.reg.EvictGroup(ctx, arg)
}

// stacksizeCommand changes the number of stack levels shown. Anything that
// is not a positive integer is silently ignored.
func (c *Console) stacksizeCommand(_ context.Context, arg string) (bool, bool, error) {
	consumed := arg != ""
	if arg == "" {
		var ok bool
		if arg, ok = c.promptFor("new stack size"); !ok {
			return false, false, nil
		}
	}
	if n, ok := parseWindow(arg); ok {
		c.cfg.Window = n
	}
	return consumed, false, nil
}

func (c *Console) printHelp() {
	fmt.Fprint(c.out, `Available commands:
    h, help: print this help message
    ss, stacksize: change the number of stack levels shown
    p, load: load a plugin file by name
    u, unload: unload a plugin group by name
    c, clear: clear stack
    l, list: list available operators and their opcodes
    q, quit: exit

An empty line duplicates the top of the stack. Everything else is numbers
and operators, evaluated left to right.
`)
}

func (c *Console) printOperators() {
	fmt.Fprint(c.out, "Available Operators\nopcode (arity): description\n\n")
	for _, def := range c.reg.All() {
		fmt.Fprintf(c.out, "%s (%d): %s [%s]\n", def.Opcode, def.Arity, def.Description, def.Group)
	}
	fmt.Fprintln(c.out)
}
