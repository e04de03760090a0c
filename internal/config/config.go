package config

import (
	"fmt"
	"strings"
)

// Action names what a key binding does when pressed.
type Action string

const (
	ActionSpawn        Action = "spawn"         // Launch Command, fire and forget.
	ActionQuit         Action = "quit"          // Close the display connection and exit.
	ActionCloseFocused Action = "close-focused" // Destroy the window holding keyboard focus.
)

// Binding maps one key (combined with Config.Modifier) to an action.
type Binding struct {
	Key     string   `yaml:"key"`
	Action  Action   `yaml:"action"`
	Command []string `yaml:"command,omitempty"`
}

// Config is the effective window manager configuration.
type Config struct {
	// Display overrides $DISPLAY when non-empty.
	Display string `yaml:"display,omitempty"`
	// Modifier qualifies every grabbed key and button, e.g. "mod4" or "mod1-shift".
	Modifier     string    `yaml:"modifier"`
	MoveButton   int       `yaml:"move_button"`
	ResizeButton int       `yaml:"resize_button"`
	Bindings     []Binding `yaml:"bindings"`
	LogLevel     string    `yaml:"log_level"`
	// LogFormat is text, json, or auto (text on a terminal, json otherwise).
	LogFormat string `yaml:"log_format"`
}

// ValidationError reports an invalid configuration value and where it came from.
type ValidationError struct {
	Path string
	File string
	Err  error
}

func (e *ValidationError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.File != "" && e.Path != "" {
		return fmt.Sprintf("%s: %s: %v", e.File, e.Path, e.Err)
	}
	if e.Path != "" {
		return fmt.Sprintf("%s: %v", e.Path, e.Err)
	}
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// DefaultConfig returns the compiled-in configuration: super-qualified
// shortcuts for a terminal, two launchers, quitting and closing the focused
// window, with button 1 moving and button 3 resizing.
func DefaultConfig() *Config {
	return &Config{
		Modifier:     "mod4",
		MoveButton:   1,
		ResizeButton: 3,
		Bindings: []Binding{
			{Key: "Return", Action: ActionSpawn, Command: []string{"kitty"}},
			{Key: "d", Action: ActionSpawn, Command: []string{"dmenu_run"}},
			{Key: "space", Action: ActionSpawn, Command: []string{"rofi", "-show", "run"}},
			{Key: "BackSpace", Action: ActionQuit},
			{Key: "q", Action: ActionCloseFocused},
		},
		LogLevel:  "info",
		LogFormat: "auto",
	}
}

// Validate checks the configuration for values the manager cannot run with.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Modifier) == "" {
		return &ValidationError{Path: "modifier", Err: fmt.Errorf("modifier is required")}
	}
	if _, err := ParseModifiers(c.Modifier); err != nil {
		return &ValidationError{Path: "modifier", Err: err}
	}
	if c.MoveButton < 1 || c.MoveButton > 5 {
		return &ValidationError{Path: "move_button", Err: fmt.Errorf("move_button must be between 1 and 5")}
	}
	if c.ResizeButton < 1 || c.ResizeButton > 5 {
		return &ValidationError{Path: "resize_button", Err: fmt.Errorf("resize_button must be between 1 and 5")}
	}
	if c.MoveButton == c.ResizeButton {
		return &ValidationError{Path: "resize_button", Err: fmt.Errorf("resize_button must differ from move_button")}
	}

	seen := make(map[string]int, len(c.Bindings))
	for i, b := range c.Bindings {
		path := fmt.Sprintf("bindings[%d]", i)
		if strings.TrimSpace(b.Key) == "" {
			return &ValidationError{Path: path + ".key", Err: fmt.Errorf("key is required")}
		}
		if prev, ok := seen[b.Key]; ok {
			return &ValidationError{Path: path + ".key", Err: fmt.Errorf("key %q already bound by bindings[%d]", b.Key, prev)}
		}
		seen[b.Key] = i

		switch b.Action {
		case ActionSpawn:
			if len(b.Command) == 0 || strings.TrimSpace(b.Command[0]) == "" {
				return &ValidationError{Path: path + ".command", Err: fmt.Errorf("spawn requires a command")}
			}
		case ActionQuit, ActionCloseFocused:
			if len(b.Command) != 0 {
				return &ValidationError{Path: path + ".command", Err: fmt.Errorf("%s takes no command", b.Action)}
			}
		default:
			return &ValidationError{Path: path + ".action", Err: fmt.Errorf("action must be one of: spawn, quit, close-focused")}
		}
	}

	switch c.LogLevel {
	case "debug", "info", "warning", "error":
	default:
		return &ValidationError{Path: "log_level", Err: fmt.Errorf("log_level must be one of: debug, info, warning, error")}
	}
	switch c.LogFormat {
	case "auto", "text", "json":
	default:
		return &ValidationError{Path: "log_format", Err: fmt.Errorf("log_format must be one of: auto, text, json")}
	}
	return nil
}
