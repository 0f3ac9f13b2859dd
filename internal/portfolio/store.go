package portfolio

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads YAML content from path on top of Default. Keys present in the
// file replace the built-in values; absent keys keep them. A missing file
// yields the defaults.
func Load(path string) (Content, error) {
	content := Default()

	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return content, nil
		}
		return content, fmt.Errorf("read content file: %w", err)
	}

	if err := yaml.Unmarshal(raw, &content); err != nil {
		return Default(), fmt.Errorf("parse content yaml: %w", err)
	}
	if err := content.Validate(); err != nil {
		return Default(), err
	}
	return content, nil
}

// Save writes content to path as YAML, creating parent directories.
func Save(path string, content Content) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create content directory: %w", err)
	}

	serialized, err := Marshal(content)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, serialized, 0o644); err != nil {
		return fmt.Errorf("write content file: %w", err)
	}
	return nil
}

// Marshal encodes content as YAML.
func Marshal(content Content) ([]byte, error) {
	serialized, err := yaml.Marshal(content)
	if err != nil {
		return nil, fmt.Errorf("marshal content yaml: %w", err)
	}
	return serialized, nil
}

// Validate checks the invariants the renderers rely on: a name for the hero,
// and experience tabs keyed by unique, non-empty company names.
func (c Content) Validate() error {
	if strings.TrimSpace(c.Profile.Name) == "" {
		return fmt.Errorf("%w: profile name is required", ErrInvalidContent)
	}

	seen := make(map[string]struct{}, len(c.Experiences))
	for i, exp := range c.Experiences {
		company := strings.TrimSpace(exp.Company)
		if company == "" {
			return fmt.Errorf("%w: experience %d has no company", ErrInvalidContent, i+1)
		}
		if _, ok := seen[company]; ok {
			return fmt.Errorf("%w: duplicate experience company %q", ErrInvalidContent, company)
		}
		seen[company] = struct{}{}
	}

	for i, project := range c.Projects {
		if strings.TrimSpace(project.Title) == "" {
			return fmt.Errorf("%w: project %d has no title", ErrInvalidContent, i+1)
		}
	}
	return nil
}

// ExperienceIndex returns the tab index for company, or -1.
func (c Content) ExperienceIndex(company string) int {
	for i, exp := range c.Experiences {
		if strings.EqualFold(exp.Company, company) {
			return i
		}
	}
	return -1
}
