// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/cybrota/avlkit/commands"
)

const configFileName = ".avlkit.yaml"

type TreeConfig struct {
	ShowValues  bool `yaml:"show_values"`
	ShowBalance bool `yaml:"show_balance"`
}

type ScriptConfig struct {
	ShowProgress bool `yaml:"show_progress"`
	StopOnError  bool `yaml:"stop_on_error"`
}

type FilterConfig struct {
	BloomBits   uint `yaml:"bloom_bits"`
	BloomHashes uint `yaml:"bloom_hashes"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

type Config struct {
	Tree   TreeConfig   `yaml:"tree"`
	Script ScriptConfig `yaml:"script"`
	Filter FilterConfig `yaml:"filter"`
	Log    LogConfig    `yaml:"log"`
}

func defaultConfig() *Config {
	return &Config{
		Tree: TreeConfig{
			ShowValues:  true,
			ShowBalance: true,
		},
		Script: ScriptConfig{
			ShowProgress: false,
			StopOnError:  true,
		},
		Filter: FilterConfig{
			BloomBits:   commands.DefaultBloomBits,
			BloomHashes: commands.DefaultBloomHashes,
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// SessionOptions turns the config into options for a command session.
func (c *Config) SessionOptions() commands.Options {
	return commands.Options{
		BloomBits:   c.Filter.BloomBits,
		BloomHashes: c.Filter.BloomHashes,
		ShowValues:  c.Tree.ShowValues,
		ShowBalance: c.Tree.ShowBalance,
	}
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

// LoadConfig reads ~/.avlkit.yaml. Any failure gives the defaults.
func LoadConfig() *Config {
	configPath, err := getConfigPath()
	if err != nil {
		logger.Debug().Err(err).Msg("no home directory, using default config")
		return defaultConfig()
	}
	return loadConfigFrom(configPath)
}

func loadConfigFrom(configPath string) *Config {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Debug().Err(err).Str("path", configPath).Msg("config unreadable, using defaults")
		}
		return defaultConfig()
	}

	// keys missing from the file keep their default values
	config := defaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		logger.Debug().Err(err).Str("path", configPath).Msg("config malformed, using defaults")
		return defaultConfig()
	}

	return config
}

func writeDefaultConfigFile(configPath string) error {
	data, err := yaml.Marshal(defaultConfig())
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func displaySettings(w io.Writer) error {
	configPath, err := getConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}
	return displaySettingsAt(w, configPath)
}

func displaySettingsAt(w io.Writer, configPath string) error {
	configExists := true
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		configExists = false
		fmt.Fprintf(w, "📝 Configuration file not found. Creating default configuration...\n\n")

		if err := writeDefaultConfigFile(configPath); err != nil {
			return err
		}
		fmt.Fprintf(w, "✅ Created default configuration at: %s\n\n", configPath)
	}
	config := loadConfigFrom(configPath)

	fmt.Fprintf(w, "🔧 avlkit Configuration Settings\n")
	fmt.Fprintf(w, "═══════════════════════════════════\n\n")

	if configExists {
		fmt.Fprintf(w, "📍 Config file: %s\n", configPath)
	} else {
		fmt.Fprintf(w, "📍 Config file: %s (newly created)\n", configPath)
	}

	fmt.Fprintf(w, "📊 Current settings:\n\n")

	section := func(title string) {
		fmt.Fprintf(w, "%s%s:%s\n", Green, title, Reset)
	}
	setting := func(name string, value any, desc string) {
		fmt.Fprintf(w, "  • %s%s%s: %v\n", Green, name, Reset, value)
		fmt.Fprintf(w, "    %s\n", desc)
	}

	section("🌳 tree")
	setting("show_values", config.Tree.ShowValues, "Print the value next to each key")
	setting("show_balance", config.Tree.ShowBalance, "Print the balance factor next to each key")
	fmt.Fprintln(w)

	section("📜 script")
	setting("show_progress", config.Script.ShowProgress, "Show a progress bar while running scripts")
	setting("stop_on_error", config.Script.StopOnError, "Abort a script on the first failing command")
	fmt.Fprintln(w)

	section("🔍 filter")
	setting("bloom_bits", config.Filter.BloomBits, "Size of the bloom filter in front of lookups")
	setting("bloom_hashes", config.Filter.BloomHashes, "Hash functions used by the bloom filter")
	fmt.Fprintln(w)

	section("🪵 log")
	setting("level", config.Log.Level, "One of debug, info, warn, error")
	fmt.Fprintln(w)

	fmt.Fprintf(w, "💡 Edit %s to change these settings.\n", configPath)
	return nil
}
