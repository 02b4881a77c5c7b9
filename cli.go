package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/gookit/color"
	"github.com/pborman/getopt"
	"github.com/stewi1014/fragart/player"
	"github.com/stewi1014/fragart/programs"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	// ErrHelp means help was requested; the caller exits successfully.
	ErrHelp = errors.New("help requested")
	// ErrList means the art names were requested.
	ErrList = errors.New("list requested")
)

type ArgumentError struct {
	Reason string
}

func (e *ArgumentError) Error() string {
	return e.Reason
}

type options struct {
	mode   player.Mode
	art    string
	start  int
	config string
}

func newFlagSet(program string) (s *getopt.Set, help, runAll, list *bool, art, config *string) {
	s = getopt.New()
	s.SetProgram(program)
	s.SetParameters("")

	help = s.BoolLong("help", 'h', "Display this help message and exit")
	art = s.StringLong("art", 'a', "", "Select an art to render", "name")
	runAll = s.BoolLong("run-all", 'r', "Run all available arts sequentially")
	list = s.BoolLong("list", 'l', "Print the available art names and exit")
	config = s.StringLong("config", 'c', "", "Read settings from a YAML file", "file")
	return
}

// parseArgs interprets args (args[0] is the program name). The selected art
// is resolved against catalog.
func parseArgs(args []string, catalog programs.Catalog) (options, error) {
	var opts options
	if len(args) == 0 {
		return opts, &ArgumentError{Reason: "missing program name"}
	}

	s, help, runAll, list, art, config := newFlagSet(args[0])
	if err := s.Getopt(args, nil); err != nil {
		return opts, &ArgumentError{Reason: err.Error()}
	}

	switch {
	case *help:
		return opts, ErrHelp
	case *list:
		return opts, ErrList
	case len(s.Args()) > 0:
		return opts, &ArgumentError{Reason: fmt.Sprintf("unexpected argument '%v'", s.Args()[0])}
	case *runAll && *art != "":
		return opts, &ArgumentError{Reason: "Options '-a' and '-r' cannot be used together."}
	case !*runAll && *art == "":
		return opts, &ArgumentError{Reason: "Select an art with '-a' or run all with '-r'."}
	case catalog.Len() == 0:
		return opts, programs.ErrNoArts
	}

	opts.config = *config
	if *runAll {
		opts.mode = player.RunAll
		return opts, nil
	}

	i, _, err := catalog.Resolve(*art)
	if err != nil {
		return opts, err
	}

	opts.mode = player.SingleArt
	opts.art = *art
	opts.start = i
	return opts, nil
}

func displayName(name string) string {
	return cases.Title(language.English).String(name)
}

func printHelp(w io.Writer, program string, catalog programs.Catalog) {
	const nameWidth = 15
	s, _, _, _, _, _ := newFlagSet(program)

	fmt.Fprintln(w, color.Green.Sprint("Fragart"))
	fmt.Fprintln(w, "Renders shader-based art in an OpenGL window.")
	fmt.Fprintln(w)

	s.PrintUsage(w)
	fmt.Fprintln(w)

	fmt.Fprintln(w, color.Yellow.Sprint("Available art options:"))
	for _, name := range catalog.Names() {
		fmt.Fprintf(w, "  %v Render the %v\n", color.Blue.Sprintf("- %-*s", nameWidth-2, name), displayName(name))
	}
}

func printList(w io.Writer, catalog programs.Catalog) {
	for _, name := range catalog.Names() {
		fmt.Fprintln(w, name)
	}
}
