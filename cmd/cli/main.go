package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vk/rpncalc/internal/app"
	"github.com/vk/rpncalc/internal/cli"
)

// main is the entrypoint for the rpncalc application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	// The real main function handles errors and exit codes.
	if err := run(os.Stdin, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error
// handling. Calculator errors come back as plain errors (exit 1); flag
// errors carry their own exit code.
func run(inR io.Reader, outW, errW io.Writer, args []string) (err error) {
	appConfig, shouldExit, parseErr := cli.Parse(args, errW)
	if parseErr != nil {
		return parseErr
	}
	if shouldExit {
		return nil
	}

	// The app panics on critical startup errors (bad rc file, defective
	// autoload plugin), so we recover here to provide a clean exit.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("a critical startup error occurred: %v", r)
		}
	}()

	calcApp := app.NewApp(inR, outW, errW, appConfig)
	return calcApp.Run(context.Background(), appConfig)
}
