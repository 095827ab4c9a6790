package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/fractalqb/spof/diag"
)

const (
	sgrError = "1;31"
	sgrHelp  = "36"
	sgrSide  = "1;34"
	sgrFile  = "38;2;161;211;255"
	sgrLint  = "1;38;2;255;0;64"
	sgrWant  = "1;32"
	sgrGot   = "1;31"
	sgrDim   = "2"
)

// helpIndent is the width of "╧ help: " in columns.
const helpIndent = "        "

// renderer writes diagnostics for humans, with ANSI colors if enabled.
type renderer struct {
	w     io.Writer
	color bool
}

// newRenderer creates a renderer for w. With mode "auto" colors are used
// if w is a terminal.
func newRenderer(w io.Writer, mode string) (*renderer, error) {
	switch mode {
	case "always":
		return &renderer{w: w, color: true}, nil
	case "never":
		return &renderer{w: w}, nil
	case "auto", "":
		f, ok := w.(*os.File)
		return &renderer{w: w, color: ok && term.IsTerminal(int(f.Fd()))}, nil
	}
	return nil, fmt.Errorf("invalid color mode '%s'", mode)
}

func (r *renderer) paint(sgr, s string) string {
	if !r.color || s == "" {
		return s
	}
	return "\x1b[" + sgr + "m" + s + "\x1b[0m"
}

// Error renders all diagnostics in err. Other errors get a headline only.
func (r *renderer) Error(err error) {
	var l diag.List
	if errors.As(err, &l) {
		for i, d := range l {
			if i > 0 {
				fmt.Fprintln(r.w)
			}
			r.Diagnostic(d)
		}
		return
	}
	if d, ok := diag.As(err); ok {
		r.Diagnostic(d)
		return
	}
	r.headline(err.Error())
}

func (r *renderer) headline(msg string) {
	fmt.Fprintf(r.w, "%s: %s\n", r.paint(sgrError, "error"), msg)
}

func (r *renderer) Diagnostic(d *diag.Diagnostic) {
	pad := " "
	if d.HasLine() {
		pad = strings.Repeat(" ", len(strconv.Itoa(d.Line+1))+1)
	}
	side := func(sign string) string { return pad + r.paint(sgrSide, sign) }

	r.headline(d.Message)
	if loc := d.Location(); loc != "" {
		fmt.Fprintf(r.w, "%s %s\n", side("╭╴◊"), r.paint(sgrFile, loc))
	}
	if x := d.Excerpt; x != nil {
		fmt.Fprintln(r.w, side("┆"))
		if d.HasLine() {
			num := r.paint(sgrSide, strconv.Itoa(d.Line+1))
			fmt.Fprintf(r.w, "%s %s %s\n", num, r.paint(sgrSide, "│"), x.Text)
		} else {
			fmt.Fprintf(r.w, "%s %s\n", side("│"), x.Text)
		}
		if ul := diag.Underline(x.Text, x.Spans(), '^'); ul != "" {
			fmt.Fprintf(r.w, "%s %s\n", side("│"), r.paint(sgrLint, ul))
		}
		fmt.Fprintln(r.w, side("┆"))
	}
	if d.Expected != "" || d.Got != "" {
		got := d.Got
		if got == "" {
			got = r.paint(sgrDim, "nothing")
		} else {
			got = r.paint(sgrGot, got)
		}
		fmt.Fprintf(r.w, "%s %s %s\n", side("│"), r.paint(sgrDim, "expected:"), r.paint(sgrWant, d.Expected))
		fmt.Fprintf(r.w, "%s %s      %s\n", side("│"), r.paint(sgrDim, "got:"), got)
	}
	if d.Help != "" {
		help := strings.ReplaceAll(d.Help, "\n", "\n"+pad+helpIndent)
		fmt.Fprintf(r.w, "%s %s: %s\n", side("╧"), r.paint(sgrHelp, "help"), help)
	}
	if d.Cause != nil {
		fmt.Fprintf(r.w, "%s: %s\n", r.paint(sgrError, "caused by"), d.Cause)
	}
}
