package config

import (
	"os"
	"path/filepath"
)

const appName = "focusctl"

// ConfigDir returns the XDG config directory for focusctl:
// $XDG_CONFIG_HOME/focusctl (default ~/.config/focusctl).
func ConfigDir() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}
