package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/xgbutil/keybind"
)

// modifierAliases maps common names onto keybind's modifier names.
var modifierAliases = map[string]string{
	"ctrl":  "control",
	"alt":   "mod1",
	"super": "mod4",
}

// ParseModifiers turns a dash-separated modifier list such as "mod4" or
// "control-mod1" into an X modifier mask, using the same names as
// keybind.ParseString plus the ctrl, alt and super aliases. Names are
// case-insensitive.
func ParseModifiers(s string) (uint16, error) {
	var mask uint16
	for _, part := range strings.Split(s, "-") {
		m, ok := modifierMask(part)
		if !ok {
			return 0, fmt.Errorf("unknown modifier %q", part)
		}
		mask |= m
	}
	return mask, nil
}

func modifierMask(name string) (uint16, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if alias, ok := modifierAliases[name]; ok {
		name = alias
	}
	if name == "" {
		return 0, false
	}
	for i, nice := range keybind.NiceModifiers {
		if nice == name {
			return keybind.Modifiers[i], true
		}
	}
	return 0, false
}
