package main

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"os"
	"runtime"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/gookit/color"
	"github.com/stewi1014/fragart/player"
	"github.com/stewi1014/fragart/programs"
	"github.com/stewi1014/fragart/render"
)

func init() {
	// GLFW and GL calls must stay on the main thread.
	runtime.LockOSThread()
}

func main() {
	os.Exit(run(os.Args))
}

func run(args []string) int {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	catalog := programs.Default(rng, programs.DefaultPoints)

	opts, err := parseArgs(args, catalog)
	switch {
	case errors.Is(err, ErrHelp):
		printHelp(os.Stdout, programName(args), catalog)
		return 0
	case errors.Is(err, ErrList):
		printList(os.Stdout, catalog)
		return 0
	case err != nil:
		fmt.Fprintln(os.Stderr, color.Red.Sprintf("Error: %v", err))
		var argErr *ArgumentError
		if errors.As(err, &argErr) {
			printHelp(os.Stderr, programName(args), catalog)
		}
		return 1
	}

	config, err := LoadConfig(opts.config)
	if err != nil {
		fmt.Fprintln(os.Stderr, color.Red.Sprintf("Error: %v", err))
		return 1
	}

	if config.FlowFieldPoints != programs.DefaultPoints {
		catalog = programs.Default(rng, config.FlowFieldPoints)
	}

	if err := play(config, catalog, opts); err != nil {
		log.Println(err)
		if config.ErrorDialog {
			ShowErrorDialog(config.Window.Title, err)
		}
		return 1
	}
	return 0
}

func programName(args []string) string {
	if len(args) == 0 {
		return "fragart"
	}
	return args[0]
}

func play(config Config, catalog programs.Catalog, opts options) error {
	if err := catalog.Validate(); err != nil {
		return err
	}

	shaders := config.Shaders()

	if err := glfw.Init(); err != nil {
		return &InitializationError{Op: "glfw.Init", Err: err}
	}
	defer glfw.Terminate()

	window, err := NewRenderWindow(config.Window)
	if err != nil {
		return err
	}
	defer window.Destroy()

	loop := &player.Loop{
		Surface: window,
		Catalog: catalog,
		Build: func(art programs.Art) (player.Session, error) {
			session, err := render.New(shaders, art)
			if err != nil {
				return nil, err
			}
			return session, nil
		},
		Mode:       opts.mode,
		Start:      opts.start,
		Interval:   config.Interval.Seconds(),
		Background: config.Background,
		OnSwitch: func(art programs.Art) {
			window.ShowArt(art.Name())
		},
	}

	return loop.Run()
}
