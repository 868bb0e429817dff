// Package config provides configuration loading and management for Semscope.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/c360studio/semscope/vocabulary/desktop"
)

// Config represents the complete Semscope configuration
type Config struct {
	Store    StoreConfig    `yaml:"store"`
	Ontology OntologyConfig `yaml:"ontology"`
	Display  DisplayConfig  `yaml:"display"`
}

// StoreConfig configures the connection to the metadata index
type StoreConfig struct {
	// URL is the NATS server URL (empty = use embedded server)
	URL string `yaml:"url"`
	// Embedded indicates whether to run an embedded NATS server
	Embedded bool `yaml:"embedded"`
	// SubjectPrefix is the request subject prefix the index listens on
	SubjectPrefix string `yaml:"subject_prefix"`
	// RequestTimeout bounds a single query round trip
	RequestTimeout time.Duration `yaml:"request_timeout"`
}

// OntologyConfig pins the IRIs the pipeline matches by exact string
// equality. They are configuration rather than code because the index, not
// this tool, is the source of truth for their spelling — notably the date
// datatype, which the index emits as "#dateType" rather than "#dateTime".
type OntologyConfig struct {
	// TypePredicate marks a resource's class
	TypePredicate string `yaml:"type_predicate"`
	// DateType is the datatype IRI whose literals are date-formatted
	DateType string `yaml:"date_type"`
	// FileType is the class IRI of file-like resources
	FileType string `yaml:"file_type"`
	// CommentPredicate carries predicate descriptions
	CommentPredicate string `yaml:"comment_predicate"`
	// MimePredicate carries the indexed MIME type
	MimePredicate string `yaml:"mime_predicate"`
	// InterpretedAsPredicate links a file to its interpretation
	InterpretedAsPredicate string `yaml:"interpreted_as_predicate"`
}

// DisplayConfig bounds compact display contexts
type DisplayConfig struct {
	// TooltipMaxChars bounds value tooltips (code points, not bytes)
	TooltipMaxChars int `yaml:"tooltip_max_chars"`
	// CommentMaxChars bounds predicate description tooltips
	CommentMaxChars int `yaml:"comment_max_chars"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Store: StoreConfig{
			URL:            "",
			Embedded:       true,
			SubjectPrefix:  "metadata.query",
			RequestTimeout: 10 * time.Second,
		},
		Ontology: OntologyConfig{
			TypePredicate:          desktop.RDFType,
			DateType:               desktop.XSDDateType,
			FileType:               desktop.NFOFileDataObject,
			CommentPredicate:       desktop.RDFSComment,
			MimePredicate:          desktop.NIEMimeType,
			InterpretedAsPredicate: desktop.NIEInterpretedAs,
		},
		Display: DisplayConfig{
			TooltipMaxChars: 80,
			CommentMaxChars: 240,
		},
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.Store.SubjectPrefix == "" {
		return fmt.Errorf("store.subject_prefix is required")
	}
	if c.Store.RequestTimeout <= 0 {
		return fmt.Errorf("store.request_timeout must be positive")
	}
	if c.Ontology.TypePredicate == "" {
		return fmt.Errorf("ontology.type_predicate is required")
	}
	if c.Ontology.DateType == "" {
		return fmt.Errorf("ontology.date_type is required")
	}
	if c.Ontology.FileType == "" {
		return fmt.Errorf("ontology.file_type is required")
	}
	if c.Display.TooltipMaxChars < 0 || c.Display.CommentMaxChars < 0 {
		return fmt.Errorf("display limits must not be negative")
	}
	return nil
}

// LoadFromFile loads configuration from a YAML file
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Same rule as Merge: a configured URL means an external store.
	if config.Store.URL != "" {
		config.Store.Embedded = false
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(path string) error {
	// Ensure parent directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Merge merges another config into this one (other takes precedence for non-zero values)
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	// Store
	if other.Store.URL != "" {
		c.Store.URL = other.Store.URL
		c.Store.Embedded = false
	}
	if other.Store.SubjectPrefix != "" {
		c.Store.SubjectPrefix = other.Store.SubjectPrefix
	}
	if other.Store.RequestTimeout != 0 {
		c.Store.RequestTimeout = other.Store.RequestTimeout
	}

	// Ontology
	if other.Ontology.TypePredicate != "" {
		c.Ontology.TypePredicate = other.Ontology.TypePredicate
	}
	if other.Ontology.DateType != "" {
		c.Ontology.DateType = other.Ontology.DateType
	}
	if other.Ontology.FileType != "" {
		c.Ontology.FileType = other.Ontology.FileType
	}
	if other.Ontology.CommentPredicate != "" {
		c.Ontology.CommentPredicate = other.Ontology.CommentPredicate
	}
	if other.Ontology.MimePredicate != "" {
		c.Ontology.MimePredicate = other.Ontology.MimePredicate
	}
	if other.Ontology.InterpretedAsPredicate != "" {
		c.Ontology.InterpretedAsPredicate = other.Ontology.InterpretedAsPredicate
	}

	// Display
	if other.Display.TooltipMaxChars != 0 {
		c.Display.TooltipMaxChars = other.Display.TooltipMaxChars
	}
	if other.Display.CommentMaxChars != 0 {
		c.Display.CommentMaxChars = other.Display.CommentMaxChars
	}
}
