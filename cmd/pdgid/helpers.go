package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/joss/pdgid/internal/render"
	"github.com/joss/pdgid/pkg/pdgid"
)

// exitOnError prints err to stderr and exits.
func exitOnError(err error) {
	fmt.Fprintf(os.Stderr, "%s %v\n", color.RedString("Error:"), err)
	os.Exit(1)
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// newRenderer builds a renderer for the command's stdout.
func newRenderer(w io.Writer) *render.Renderer {
	pretty := !color.NoColor && isTerminal(w)
	return render.New(w, output, pretty)
}

// parseIDs parses every argument as a code.
func parseIDs(args []string) ([]pdgid.PDGID, error) {
	ids := make([]pdgid.PDGID, 0, len(args))
	for _, arg := range args {
		id, err := pdgid.Parse(arg)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
