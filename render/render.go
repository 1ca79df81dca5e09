package render

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"io"
	"iter"
	"os"
	"strconv"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/npillmayer/lazyseq"
)

// Palette maps the parts of rendered output to console colors. Any nil
// entry is rendered without styling.
type Palette struct {
	Index *color.Color // index column of entry tables
	Term  *color.Color // sequence terms
	Rule  *color.Color // separators and ellipses
}

// makeDefaultPalette creates the palette used when clients do not
// provide one.
func makeDefaultPalette() *Palette {
	return &Palette{
		Index: color.New(color.FgCyan),
		Term:  color.New(color.Bold),
		Rule:  color.New(color.Faint),
	}
}

// Config controls rendering of sequences and partition listings.
type Config struct {
	LineWidth int      // maximum rendered line width
	Colors    *Palette // colors for output parts
}

// ConfigFromTerminal creates a config from the current terminal's
// properties, with the default palette.
func ConfigFromTerminal() *Config {
	return &Config{
		LineWidth: TerminalWidth(),
		Colors:    makeDefaultPalette(),
	}
}

// TerminalWidth returns the width of the terminal connected to stdout,
// or 80 if stdout is not interactive.
func TerminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return 80
}

// cellWidth is the printed width of one "index: term" cell, excluding
// the gap between cells.
const cellWidth = 6 + 2 + 12

// Window writes the entries of s for indices start ≤ i < end as a table
// of "index: term" cells, as many cells per line as the configured line
// width admits.
//
// If config is nil, a config is created from the current terminal's
// properties.
func Window(w io.Writer, s *lazyseq.Seq, start, end int, config *Config) error {
	if config == nil {
		config = ConfigFromTerminal()
	}
	colors := config.Colors
	if colors == nil {
		colors = &Palette{}
	}
	perLine := (config.LineWidth + 2) / (cellWidth + 2)
	if perLine < 1 {
		perLine = 1
	}
	cells := 0
	for i := start; i < end; i++ {
		if cells > 0 {
			gap := "  "
			if cells%perLine == 0 {
				gap = "\n"
			}
			if _, err := io.WriteString(w, gap); err != nil {
				return err
			}
		}
		cell := paint(colors.Index, fmt.Sprintf("%6d", i)) + ": " +
			paint(colors.Term, fmt.Sprintf("%-12d", s.At(i)))
		if _, err := io.WriteString(w, cell); err != nil {
			return err
		}
		cells++
	}
	if cells > 0 {
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

// Partitions writes tuples from an enumerator, one per line, stopping
// after max tuples; max ≤ 0 writes all of them. A trailing ellipsis
// line marks a truncated listing.
//
// If config is nil, a config is created from the current terminal's
// properties.
func Partitions(w io.Writer, tuples iter.Seq[[]int64], max int, config *Config) error {
	if config == nil {
		config = ConfigFromTerminal()
	}
	colors := config.Colors
	if colors == nil {
		colors = &Palette{}
	}
	var err error
	count := 0
	truncated := false
	for tuple := range tuples {
		if max > 0 && count == max {
			truncated = true
			break
		}
		line := formatTuple(tuple, colors)
		if _, err = fmt.Fprintln(w, line); err != nil {
			return err
		}
		count++
	}
	if truncated {
		_, err = fmt.Fprintln(w, paint(colors.Rule, "…"))
	}
	return err
}

// formatTuple renders a tuple as "[a + b + c]".
func formatTuple(tuple []int64, colors *Palette) string {
	line := paint(colors.Rule, "[")
	for i, part := range tuple {
		if i > 0 {
			line += paint(colors.Rule, " + ")
		}
		line += paint(colors.Term, strconv.FormatInt(part, 10))
	}
	return line + paint(colors.Rule, "]")
}

func paint(c *color.Color, s string) string {
	if c == nil {
		return s
	}
	return c.Sprint(s)
}
