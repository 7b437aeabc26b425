// Package cli translates command-line arguments into an app.Config. It
// owns flag parsing, usage text and the ExitError type the entrypoint maps
// to process exit codes; it never touches the calculator itself.
package cli
