// Package config loads nestforge settings from config files, .env files and
// the environment.
package config

import (
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

// AppFs is the filesystem handle used by the CLI for file checks and
// scaffolding. Tests swap it for a memory filesystem.
var AppFs = afero.NewOsFs()

// Config holds the generation settings not given on the command line.
type Config struct {
	SchemaPath string
	OutputDir  string
	ModulePath string
	// Modules are the default module kinds to scaffold when the user is not
	// asked interactively.
	Modules []string
}

// Load reads configuration from .nestforge.yaml (working directory, home
// directory or ~/.config/nestforge), NESTFORGE_* environment variables and
// .env/.env.local files.
func Load() (*Config, error) {
	home, err := homedir.Dir()
	if err != nil {
		return nil, err
	}

	viper.SetConfigName(".nestforge")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath(home)
	viper.AddConfigPath(filepath.Join(home, ".config", "nestforge"))

	viper.SetEnvPrefix("NESTFORGE")
	viper.AutomaticEnv()

	viper.SetDefault("schema_path", "schema.prisma")
	viper.SetDefault("output_path", "./src/modules")
	viper.SetDefault("module_path", "")

	// Missing config file is fine; defaults apply.
	_ = viper.ReadInConfig()

	if _, err := AppFs.Stat(".env"); err == nil {
		_ = godotenv.Load()
	}
	if _, err := AppFs.Stat(".env.local"); err == nil {
		_ = godotenv.Overload(".env.local")
	}

	return &Config{
		SchemaPath: viper.GetString("schema_path"),
		OutputDir:  viper.GetString("output_path"),
		ModulePath: viper.GetString("module_path"),
		Modules:    viper.GetStringSlice("modules"),
	}, nil
}
