package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/1broseidon/dragwm/internal/config"
	"github.com/1broseidon/dragwm/internal/launcher"
	"github.com/1broseidon/dragwm/internal/platform"
	"github.com/1broseidon/dragwm/internal/wm"
	"golang.org/x/term"
)

func main() {
	if len(os.Args) < 2 {
		os.Exit(runWM(nil))
	}

	switch os.Args[1] {
	case "run":
		os.Exit(runWM(os.Args[2:]))
	case "config":
		os.Exit(runConfig(os.Args[2:]))
	case "help", "-h", "--help":
		printMainUsage(os.Stdout)
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printMainUsage(os.Stderr)
		os.Exit(2)
	}
}

func printMainUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: dragwm [command] [options]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  run                 Run the window manager (default)")
	fmt.Fprintln(w, "  config print        Print the effective configuration")
	fmt.Fprintln(w, "  config validate     Validate the configuration")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Run 'dragwm <command> --help' for command-specific options.")
}

func runWM(args []string) int {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: dragwm run [--config PATH]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Grab shortcuts on the root window and handle move/resize drags.")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Flags:")
		fs.PrintDefaults()
	}
	configPath := fs.String("config", "", "Config file (default ~/.config/dragwm/config.yaml)")
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "run takes no arguments")
		fs.Usage()
		return 2
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Printf("Failed to load configuration: %v", err)
		return 1
	}

	logger := newLogger(cfg, os.Stderr)
	connect := func(display string) (platform.Session, error) {
		return platform.NewLinuxSessionFromDisplay(display)
	}

	dispatcher, err := wm.Start(cfg, connect, launcher.New(logger), logger)
	if err != nil {
		var serr *wm.StartupError
		if errors.As(err, &serr) && serr.Stage == wm.StageGrab {
			log.Printf("Failed to grab input (is another window manager holding it?): %v", err)
		} else {
			log.Printf("Failed to start: %v", err)
		}
		return 1
	}

	if err := dispatcher.Run(); err != nil {
		log.Printf("Event loop stopped: %v", err)
		return 1
	}
	return 0
}

func runConfig(args []string) int {
	if len(args) == 0 || args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
		fmt.Fprintln(os.Stderr, "Usage: dragwm config <print|validate> [--config PATH]")
		if len(args) == 0 {
			return 2
		}
		return 0
	}

	sub := args[0]
	if sub != "print" && sub != "validate" {
		fmt.Fprintf(os.Stderr, "Unknown config command: %s\n", sub)
		return 2
	}

	fs := flag.NewFlagSet(sub, flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	configPath := fs.String("config", "", "Config file (default ~/.config/dragwm/config.yaml)")
	if err := fs.Parse(args[1:]); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if sub == "validate" {
		fmt.Println("configuration OK")
		return 0
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	os.Stdout.Write(data)
	return 0
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Load()
	}
	return config.LoadFromPath(path)
}

// newLogger builds the manager's structured logger. "auto" picks text output
// when stderr is a terminal and JSON otherwise (e.g. redirected from xinitrc).
func newLogger(cfg *config.Config, w *os.File) *slog.Logger {
	opts := &slog.HandlerOptions{Level: logLevel(cfg.LogLevel)}

	format := cfg.LogFormat
	if format == "auto" {
		format = "json"
		if term.IsTerminal(int(w.Fd())) {
			format = "text"
		}
	}

	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func logLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
