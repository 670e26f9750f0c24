package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/gubarz/lispdoc/internal/source"
)

// Config holds the application configuration
type Config struct {
	SourcePath string `mapstructure:"path"`
	OutDir     string `mapstructure:"out"`
	Extension  string `mapstructure:"ext"`
	Marker     string `mapstructure:"marker"`
	Title      string `mapstructure:"title"`
	Jobs       int    `mapstructure:"jobs"`
	Verbose    bool   `mapstructure:"verbose"`
}

// C is the global config instance
var C Config

// Init initializes configuration with viper
func Init() error {
	viper.SetDefault("path", ".")
	viper.SetDefault("out", "docs")
	viper.SetDefault("ext", ".clj")
	viper.SetDefault("marker", source.DefaultMarker)
	viper.SetDefault("title", "")
	viper.SetDefault("jobs", 1)
	viper.SetDefault("verbose", false)

	viper.SetConfigName("lispdoc")
	viper.SetConfigType("yaml")

	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(filepath.Join(home, ".config", "lispdoc"))
		viper.AddConfigPath(home)
	}
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("LISPDOC")
	viper.AutomaticEnv()

	// Try to read config, but don't fail if not found or malformed
	_ = viper.ReadInConfig()

	return viper.Unmarshal(&C)
}

// GetPath returns the source path with tilde expansion
func GetPath() string {
	return expandTilde(viper.GetString("path"))
}

// GetOutDir returns the destination directory with tilde expansion
func GetOutDir() string {
	return expandTilde(viper.GetString("out"))
}

// GetExtension returns the source file extension to match
func GetExtension() string {
	return viper.GetString("ext")
}

// GetMarker returns the comment marker sequence
func GetMarker() string {
	return viper.GetString("marker")
}

// GetTitle returns the page title prefix
func GetTitle() string {
	return viper.GetString("title")
}

// GetJobs returns the number of files processed concurrently
func GetJobs() int {
	if jobs := viper.GetInt("jobs"); jobs > 0 {
		return jobs
	}
	return 1
}

// GetVerbose returns whether per-file progress is logged
func GetVerbose() bool {
	return viper.GetBool("verbose")
}

// SetPath sets the source path at runtime
func SetPath(path string) {
	viper.Set("path", path)
	C.SourcePath = path
}

// SetOutDir sets the destination directory at runtime
func SetOutDir(dir string) {
	viper.Set("out", dir)
	C.OutDir = dir
}

// expandTilde expands ~ to the user's home directory
func expandTilde(path string) string {
	if len(path) == 0 {
		return path
	}
	if path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
