// Package config resolves runtime settings from the environment, optionally
// seeded from a .env file in the working directory.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/choonghwanlee/folio/internal/files"
)

const (
	AddrEnv  = "FOLIO_ADDR"
	DebugEnv = "FOLIO_DEBUG"

	DefaultAddr = ":8080"
)

// Settings are the knobs shared by every command.
type Settings struct {
	// Home is the content directory; empty means files.ResolveBasePath decides.
	Home string
	// Addr is the listen address for the web server.
	Addr string
	// DebugLog is a file receiving log output while the TUI owns the terminal.
	DebugLog string
}

// LoadDotEnv reads variables from the given files (".env" when none are
// given) without overriding values already set. Missing files are ignored.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, path := range paths {
		if err := godotenv.Load(path); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", path, err)
		}
	}
	return nil
}

// FromEnv builds Settings from the process environment.
func FromEnv() Settings {
	s := Settings{
		Home:     strings.TrimSpace(os.Getenv(files.HomeEnv)),
		Addr:     strings.TrimSpace(os.Getenv(AddrEnv)),
		DebugLog: strings.TrimSpace(os.Getenv(DebugEnv)),
	}
	if s.Addr == "" {
		s.Addr = DefaultAddr
	}
	return s
}
