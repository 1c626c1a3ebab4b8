package core

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config contains the configuration options available to descrypt. All of it
// is optional; the tool runs with the defaults below when no config file or
// environment overrides are present. The cipher arguments (action, key,
// mode, paths) are deliberately never sourced from here.
type Config struct {
	// Full path to file to which logs will be written. Blank will write to stderr.
	LogFilePath string `mapstructure:"log_file_path"`
	// Minimum level of a log required to be written. Options: debug, info, warn, error
	LogLevel string `mapstructure:"log_level"`

	Audit struct {
		// Record each operation in the audit database.
		Enabled bool `mapstructure:"enabled"`
		// Database engine for the audit trail; sqlite or postgres.
		Engine string `mapstructure:"engine"`
		// Filename of the sqlite database, relative to the config directory.
		Filename string `mapstructure:"filename"`
		// Connection parameters for the postgres engine.
		Host     string `mapstructure:"host"`
		Port     int    `mapstructure:"port"`
		Name     string `mapstructure:"name"`
		Username string `mapstructure:"username"`
		Password string `mapstructure:"password"`
		SSLMode  string `mapstructure:"sslmode"`
	} `mapstructure:"audit"`

	Debugging struct {
		// Enable extra diagnostic output.
		Enabled bool `mapstructure:"enabled"`
		// Dump the derived key schedule to the debug log (only when Enabled is
		// also set). Per-block values are not traced.
		TraceBlocks bool `mapstructure:"trace_blocks"`
	} `mapstructure:"debugging"`

	baseDir string
}

const envVarPrefix = "DESCRYPT"

// LoadConfig initializes Viper with the contents of descrypt.yaml from the
// current directory or ~/.config/descrypt, falling back to defaults when no
// config file exists.
func LoadConfig() (*Config, error) {
	viper.SetConfigName("descrypt")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(filepath.Join(home, ".config", "descrypt"))
	}

	viper.SetDefault("log_level", "info")
	viper.SetDefault("audit.engine", "sqlite")
	viper.SetDefault("audit.filename", "descrypt.db")

	viper.SetEnvPrefix(envVarPrefix)
	viper.AutomaticEnv()

	baseDir := "."
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		baseDir = filepath.Dir(viper.ConfigFileUsed())
	}

	// This allows us to set nested yaml config options through environment
	// variables. For example, audit.engine can be set using: DESCRYPT_AUDIT_ENGINE
	for _, k := range viper.AllKeys() {
		envVar := strings.ReplaceAll(strings.ToUpper(k), ".", "_")
		if err := viper.BindEnv(k, envVarPrefix+"_"+envVar); err != nil {
			return nil, fmt.Errorf("error binding %s to %s: %w", k, envVarPrefix+"_"+envVar, err)
		}
	}

	config := &Config{baseDir: baseDir}
	if err := viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config object: %w", err)
	}
	return config, nil
}

const databaseURITemplate = "host=%s port=%d dbname=%s user=%s password=%s sslmode=%s"

// DatabaseURL returns a postgres connection string generated from the
// configured audit values.
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf(
		databaseURITemplate,
		c.Audit.Host,
		c.Audit.Port,
		c.Audit.Name,
		c.Audit.Username,
		c.Audit.Password,
		c.Audit.SSLMode,
	)
}

// QualifiedPath returns filename resolved relative to the directory the
// config file was loaded from.
func (c *Config) QualifiedPath(filename string) string {
	if c.baseDir == "" {
		return filename
	}
	return filepath.Join(c.baseDir, filename)
}
