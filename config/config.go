// Copyright 2026 The jstool Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config loads the project-level YAML configuration file:
// printer options, per-rule severity overrides, and file-scope ignore
// globs (spec.md §6).
package config

import (
	"gopkg.in/yaml.v3"

	"github.com/jstool/jstool/printer"
	"github.com/jstool/jstool/rules"
)

// Config is the on-disk shape of a project's jstool.yaml.
type Config struct {
	Printer PrinterConfig     `yaml:"printer"`
	Rules   map[string]string `yaml:"rules"` // "group/rule" -> severity
	Ignore  []string          `yaml:"ignore"`
}

// PrinterConfig is the YAML shape of [printer.Options].
type PrinterConfig struct {
	PrintWidth int    `yaml:"print_width"`
	IndentSize int    `yaml:"indent_size"`
	UseTabs    bool   `yaml:"use_tabs"`
	LineEnding string `yaml:"line_ending"` // "lf" or "crlf"
}

// Load parses YAML configuration from data.
func Load(data []byte) (Config, error) {
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Default returns the configuration jstool uses when no jstool.yaml is
// present.
func Default() Config {
	return Config{
		Printer: PrinterConfig{PrintWidth: 80, IndentSize: 2, LineEnding: "lf"},
		Rules:   map[string]string{},
		Ignore:  []string{},
	}
}

// Marshal serializes c back to YAML, the inverse of [Load].
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// PrinterOptions converts the loaded printer configuration into
// [printer.Options], applying spec defaults for any unset field.
func (c Config) PrinterOptions() printer.Options {
	opts := printer.Options{
		PrintWidth:  c.Printer.PrintWidth,
		IndentStyle: printer.IndentStyle{Tab: c.Printer.UseTabs, Width: c.Printer.IndentSize},
	}
	if c.Printer.LineEnding == "crlf" {
		opts.LineEnding = printer.CRLF
	}
	return opts.WithDefaults()
}

// Severities parses the Rules map into rule severities keyed by
// [rules.Key]. Entries that don't parse as "group/rule" are skipped.
func (c Config) Severities() map[rules.Key]rules.Severity {
	out := make(map[rules.Key]rules.Severity, len(c.Rules))
	for k, v := range c.Rules {
		key, ok := parseKey(k)
		if !ok {
			continue
		}
		out[key] = parseSeverity(v)
	}
	return out
}

func parseKey(s string) (rules.Key, bool) {
	for i := 0; i < len(s); i++ {
		if s[i] == '/' {
			return rules.Key{Group: rules.GroupKey(s[:i]), Rule: rules.Name(s[i+1:])}, true
		}
	}
	return rules.Key{}, false
}

func parseSeverity(s string) rules.Severity {
	switch s {
	case "error":
		return rules.Error
	case "warn", "warning":
		return rules.Warn
	case "info":
		return rules.Info
	default:
		return rules.Off
	}
}
