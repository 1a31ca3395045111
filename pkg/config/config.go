/*
Package config manages TOML config for syllabicate.

	[language]
	preset = "german"
	vowels = ""       # overrides the preset when set
	consonants = ""

	[corpus]
	path = "corpus.txt"
	delimiters = ",.;|-·"
	snapshot = ""

	[server]
	max_word_len = 64
	cache_size = 4096
	log_level = "warn"
	log_file = ""     # rotated log file, stderr only when empty

	[cli]
	separator = "-"
	show_timing = false

Command line flags override file values, file values override the preset.
*/
package config

import (
	"fmt"
	"os"

	"github.com/bastiangx/syllabicate/internal/utils"
	"github.com/bastiangx/syllabicate/pkg/corpus"
	"github.com/bastiangx/syllabicate/pkg/syllable"
	"github.com/charmbracelet/log"
)

// FileName is the config file looked up in the config dir.
const FileName = "config.toml"

// Config holds the entire config structure
type Config struct {
	Language LanguageConfig `toml:"language"`
	Corpus   CorpusConfig   `toml:"corpus"`
	Server   ServerConfig   `toml:"server"`
	CLI      CliConfig      `toml:"cli"`
}

// LanguageConfig selects the alphabet.
type LanguageConfig struct {
	Preset     string `toml:"preset"`
	Vowels     string `toml:"vowels"`
	Consonants string `toml:"consonants"`
}

// CorpusConfig points at the training data.
type CorpusConfig struct {
	Path       string `toml:"path"`
	Delimiters string `toml:"delimiters"`
	Snapshot   string `toml:"snapshot"`
}

// ServerConfig has server related options.
type ServerConfig struct {
	MaxWordLen int    `toml:"max_word_len"`
	CacheSize  int    `toml:"cache_size"`
	LogLevel   string `toml:"log_level"`
	LogFile    string `toml:"log_file"`
}

// CliConfig holds cli interface options.
type CliConfig struct {
	Separator  string `toml:"separator"`
	ShowTiming bool   `toml:"show_timing"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Language: LanguageConfig{
			Preset: syllable.German.Name,
		},
		Corpus: CorpusConfig{
			Delimiters: corpus.DefaultDelimiters,
		},
		Server: ServerConfig{
			MaxWordLen: 64,
			CacheSize:  4096,
			LogLevel:   "warn",
		},
		CLI: CliConfig{
			Separator: "-",
		},
	}
}

// Alphabet resolves the language section: the preset, with vowels and
// consonants replaced when set.
func (c *Config) Alphabet() (syllable.Alphabet, error) {
	a, ok := syllable.PresetByName(c.Language.Preset)
	if !ok {
		if c.Language.Vowels == "" || c.Language.Consonants == "" {
			return syllable.Alphabet{}, fmt.Errorf("%w: unknown preset %q (available: %v)",
				syllable.ErrInvalidAlphabet, c.Language.Preset, syllable.PresetNames())
		}
		a = syllable.Alphabet{Name: "custom"}
	}
	a = a.WithOverrides(c.Language.Vowels, c.Language.Consonants)
	if err := a.Validate(); err != nil {
		return syllable.Alphabet{}, err
	}
	return a, nil
}

// GetConfigDir returns the per-user config directory
func GetConfigDir() (string, error) {
	pr, err := utils.NewPathResolver()
	if err != nil {
		log.Errorf("Failed to set up path resolver: %v", err)
		return "", err
	}
	return pr.GetConfigDir(), nil
}

// GetDefaultConfigPath returns the default path for config.toml. When the
// config directory cannot be written it falls back to ~/.syllabicate and
// then to the temp dir.
func GetDefaultConfigPath() (string, error) {
	pr, err := utils.NewPathResolver()
	if err != nil {
		log.Errorf("Failed to set up path resolver: %v", err)
		return "", err
	}
	return pr.GetConfigPath(FileName), nil
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from -config flag
// 2. Default path: [UserConfigDir]/syllabicate/config.toml
// 3. Builtin defaults
func LoadConfigWithPriority(customConfigPath string) (*Config, string, error) {
	if customConfigPath != "" {
		if _, statErr := os.Stat(customConfigPath); statErr == nil {
			config, err := LoadConfig(customConfigPath)
			if err == nil {
				log.Debugf("Loaded config from custom path: %s", customConfigPath)
				return config, customConfigPath, nil
			}
			log.Warnf("Failed to load custom config from %s: %v. Trying default path...", customConfigPath, err)
		} else {
			log.Warnf("Custom config file not found at %s: %v. Trying default path...", customConfigPath, statErr)
		}
	}

	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		log.Warnf("Failed to determine default config path: %v. Using built-in defaults...", err)
		return DefaultConfig(), "", nil
	}
	config, err := InitConfig(defaultPath)
	if err != nil {
		log.Warnf("Failed to load/create config at default path %s: %v. Using builtin defaults...", defaultPath, err)
		return DefaultConfig(), "", nil
	}
	log.Debugf("Loaded config from default path: %s", defaultPath)
	return config, defaultPath, nil
}

// InitConfig loads config from file or creates default if missing
func InitConfig(configPath string) (*Config, error) {
	if !utils.FileExists(configPath) {
		config := DefaultConfig()
		if err := SaveConfig(config, configPath); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using built-in defaults...", configPath, err)
			return DefaultConfig(), nil
		}
		log.Debugf("Created default config file at: %s", configPath)
		return config, nil
	}
	return LoadConfig(configPath)
}

// LoadConfig loads from a TOML file. A file that fails to decode as a whole
// is parsed again section by section and every valid value is kept.
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()
	if err := utils.LoadTOMLFile(configPath, config); err != nil {
		return tryPartialParse(configPath)
	}
	return config, nil
}

func tryPartialParse(configPath string) (*Config, error) {
	config := DefaultConfig()

	raw, err := utils.ParseTOMLWithRecovery(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return config, nil
	}

	if section, ok := utils.ExtractSection(raw, "language"); ok {
		extractLanguageConfig(section, &config.Language)
	}
	if section, ok := utils.ExtractSection(raw, "corpus"); ok {
		extractCorpusConfig(section, &config.Corpus)
	}
	if section, ok := utils.ExtractSection(raw, "server"); ok {
		extractServerConfig(section, &config.Server)
	}
	if section, ok := utils.ExtractSection(raw, "cli"); ok {
		extractCliConfig(section, &config.CLI)
	}
	return config, nil
}

func extractLanguageConfig(data map[string]any, lang *LanguageConfig) {
	if val, ok := utils.ExtractString(data, "preset"); ok {
		lang.Preset = val
	}
	if val, ok := utils.ExtractString(data, "vowels"); ok {
		lang.Vowels = val
	}
	if val, ok := utils.ExtractString(data, "consonants"); ok {
		lang.Consonants = val
	}
}

func extractCorpusConfig(data map[string]any, c *CorpusConfig) {
	if val, ok := utils.ExtractString(data, "path"); ok {
		c.Path = val
	}
	if val, ok := utils.ExtractString(data, "delimiters"); ok {
		c.Delimiters = val
	}
	if val, ok := utils.ExtractString(data, "snapshot"); ok {
		c.Snapshot = val
	}
}

func extractServerConfig(data map[string]any, server *ServerConfig) {
	if val, ok := utils.ExtractInt64(data, "max_word_len"); ok {
		server.MaxWordLen = val
	}
	if val, ok := utils.ExtractInt64(data, "cache_size"); ok {
		server.CacheSize = val
	}
	if val, ok := utils.ExtractString(data, "log_level"); ok {
		server.LogLevel = val
	}
	if val, ok := utils.ExtractString(data, "log_file"); ok {
		server.LogFile = val
	}
}

func extractCliConfig(data map[string]any, cli *CliConfig) {
	if val, ok := utils.ExtractString(data, "separator"); ok {
		cli.Separator = val
	}
	if val, ok := utils.ExtractBool(data, "show_timing"); ok {
		cli.ShowTiming = val
	}
}

// GetActiveConfigPath returns the absolute path of loaded config file
func GetActiveConfigPath(configPath string) string {
	if configPath == "" {
		if defaultPath, err := GetDefaultConfigPath(); err == nil {
			return defaultPath
		}
		return "unknown"
	}
	return utils.GetAbsolutePath(configPath)
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}
