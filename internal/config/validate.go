package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"funcscan/internal/extractor"
)

var (
	// ErrMissingSourceDir indicates the configured source directory does not exist
	ErrMissingSourceDir = errors.New("source directory does not exist")

	// ErrInvalidWorkers indicates a negative worker count
	ErrInvalidWorkers = errors.New("invalid worker count")

	// ErrUnknownLanguage indicates a language outside the supported set
	ErrUnknownLanguage = errors.New("unknown language")

	// ErrInvalidLogLevel indicates an unsupported log level
	ErrInvalidLogLevel = errors.New("invalid log level")
)

// Validate checks that the configuration is valid and complete.
func Validate(cfg *Config) error {
	var errs []error

	if err := validateInput(&cfg.Input); err != nil {
		errs = append(errs, err)
	}
	if err := validateProcessing(&cfg.Processing); err != nil {
		errs = append(errs, err)
	}
	if err := validateLogging(&cfg.Logging); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return joinErrors(errs)
	}
	return nil
}

func validateInput(cfg *InputConfig) error {
	if cfg.SourceDir == "" {
		return nil
	}
	if _, err := os.Stat(cfg.SourceDir); err != nil {
		return fmt.Errorf("%w: %s", ErrMissingSourceDir, cfg.SourceDir)
	}
	return nil
}

func validateProcessing(cfg *ProcessingConfig) error {
	var errs []error

	if cfg.ParallelWorkers < 0 {
		errs = append(errs, fmt.Errorf("%w: parallel_workers cannot be negative, got %d",
			ErrInvalidWorkers, cfg.ParallelWorkers))
	}

	supported := make(map[string]bool)
	for _, lang := range extractor.SupportedLanguages() {
		supported[string(lang)] = true
	}
	for _, lang := range cfg.Languages {
		if !supported[lang] {
			errs = append(errs, fmt.Errorf("%w: %s (valid: python, rust, go, java, c, cpp)",
				ErrUnknownLanguage, lang))
		}
	}

	if len(errs) > 0 {
		return joinErrors(errs)
	}
	return nil
}

func validateLogging(cfg *LoggingConfig) error {
	switch strings.ToLower(cfg.Level) {
	case "", "debug", "info", "warn", "warning", "error":
		return nil
	}
	return fmt.Errorf("%w: %s", ErrInvalidLogLevel, cfg.Level)
}

// joinErrors combines multiple errors into a single error with clear formatting.
func joinErrors(errs []error) error {
	if len(errs) == 0 {
		return nil
	}
	if len(errs) == 1 {
		return errs[0]
	}

	var msgs []string
	for _, err := range errs {
		msgs = append(msgs, err.Error())
	}
	return fmt.Errorf("validation failed:\n  - %s", strings.Join(msgs, "\n  - "))
}
