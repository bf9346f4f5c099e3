package settings

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// ValidationError reports a document that cannot be applied.
type ValidationError struct {
	// Field is the dotted path of the offending field, empty for syntax errors.
	Field string
	// Message describes the problem.
	Message string
	// Err is the underlying decode error, if any.
	Err error
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "invalid config: " + e.Message
	}
	return fmt.Sprintf("invalid config: %s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Parse decodes and validates a YAML document.
func Parse(data []byte) (*Config, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))

	var cfg Config
	if err := dec.Decode(&cfg); err != nil {
		// yaml.v3 returns io.EOF when there is no document at all.
		if errors.Is(err, io.EOF) {
			return nil, &ValidationError{Message: "document is empty"}
		}
		return nil, &ValidationError{Message: "malformed YAML", Err: err}
	}

	var extra any
	if err := dec.Decode(&extra); err == nil {
		return nil, &ValidationError{Message: "multiple YAML documents are not supported"}
	} else if !errors.Is(err, io.EOF) {
		return nil, &ValidationError{Message: "malformed YAML", Err: err}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the required fields of a decoded document.
func (c *Config) Validate() error {
	s := c.Server
	if strings.TrimSpace(s.Name) == "" {
		return &ValidationError{Field: "server.name", Message: "is required"}
	}
	if s.Categories == nil {
		return &ValidationError{Field: "server.categories", Message: "is required"}
	}

	for _, name := range s.CategoryNames() {
		category := s.Categories[name]
		path := "server.categories." + name
		if strings.TrimSpace(name) == "" {
			return &ValidationError{Field: path, Message: "category name must not be empty"}
		}
		if category.Channels == nil {
			return &ValidationError{Field: path + ".channels", Message: "is required"}
		}
		for _, key := range category.ChannelKeys() {
			if strings.TrimSpace(category.Channels[key].Name) == "" {
				return &ValidationError{Field: path + ".channels." + key + ".name", Message: "is required"}
			}
		}
	}
	return nil
}
