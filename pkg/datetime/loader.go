package datetime

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

type optionsFile struct {
	Name           string   `json:"name" yaml:"name" toml:"name"`
	ShowAll        *bool    `json:"showAll" yaml:"showAll" toml:"showAll"`
	ShowDate       *bool    `json:"showDate" yaml:"showDate" toml:"showDate"`
	ShowHours      *bool    `json:"showHours" yaml:"showHours" toml:"showHours"`
	ShowMinutes    *bool    `json:"showMinutes" yaml:"showMinutes" toml:"showMinutes"`
	ShowSeconds    *bool    `json:"showSeconds" yaml:"showSeconds" toml:"showSeconds"`
	ShowTimeZone   *bool    `json:"showTimeZone" yaml:"showTimeZone" toml:"showTimeZone"`
	TriggerHandler *bool    `json:"triggerHandler" yaml:"triggerHandler" toml:"triggerHandler"`
	ValidateBounds *bool    `json:"validateBounds" yaml:"validateBounds" toml:"validateBounds"`
	Parts          []string `json:"parts" yaml:"parts" toml:"parts"`
	OnChange       any      `json:"onChange" yaml:"onChange" toml:"onChange"`
}

// LoadOptions parses a JSON or YAML picker configuration on top of
// DefaultOptions. Callbacks cannot be expressed as data, so a document that
// sets onChange is rejected with a *ConfigError.
func LoadOptions(data []byte) (Options, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return Options{}, fmt.Errorf("datetime: options document is empty")
	}

	var file optionsFile
	if err := json.Unmarshal(data, &file); err != nil {
		file = optionsFile{}
		if err := yaml.Unmarshal(data, &file); err != nil {
			return Options{}, fmt.Errorf("datetime: parse options: invalid JSON or YAML")
		}
	}
	return file.options()
}

// LoadOptionsTOML is LoadOptions for TOML documents.
func LoadOptionsTOML(data []byte) (Options, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return Options{}, fmt.Errorf("datetime: options document is empty")
	}
	var file optionsFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return Options{}, fmt.Errorf("datetime: parse options: %w", err)
	}
	return file.options()
}

// LoadOptionsFile reads path and decodes it with LoadOptionsTOML when the
// extension is .toml, LoadOptions otherwise.
func LoadOptionsFile(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, fmt.Errorf("datetime: read %s: %w", path, err)
	}
	load := LoadOptions
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		load = LoadOptionsTOML
	}
	opts, err := load(data)
	if err != nil {
		return Options{}, fmt.Errorf("%w (file %s)", err, path)
	}
	return opts, nil
}

func (f optionsFile) options() (Options, error) {
	if f.OnChange != nil {
		return Options{}, &ConfigError{Field: "onChange", Reason: "must be a function"}
	}

	opts := DefaultOptions()
	opts.Name = strings.TrimSpace(f.Name)
	setBool(&opts.ShowAll, f.ShowAll)
	setBool(&opts.ShowDate, f.ShowDate)
	setBool(&opts.ShowHours, f.ShowHours)
	setBool(&opts.ShowMinutes, f.ShowMinutes)
	setBool(&opts.ShowSeconds, f.ShowSeconds)
	setBool(&opts.ShowTimeZone, f.ShowTimeZone)
	setBool(&opts.TriggerHandler, f.TriggerHandler)
	setBool(&opts.ValidateBounds, f.ValidateBounds)

	if len(f.Parts) > 0 {
		parts, err := ParseParts(strings.Join(f.Parts, ","))
		if err != nil {
			return Options{}, &ConfigError{Field: "parts", Reason: err.Error()}
		}
		WithParts(parts...)(&opts)
	}

	if err := opts.Validate(); err != nil {
		return Options{}, err
	}
	return opts, nil
}

func setBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}
