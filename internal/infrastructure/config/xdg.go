package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const (
	appName      = "rclayout"
	databaseName = "rclayout.sqlite"
	configName   = "config.toml"

	dirPerm  = 0755 // Standard directory permissions (rwxr-xr-x)
	filePerm = 0644 // Standard file permissions (rw-r--r--)
)

// XDGDirs holds the XDG Base Directory paths for the application.
type XDGDirs struct {
	ConfigHome string
	DataHome   string
	StateHome  string
}

// GetXDGDirs returns the XDG Base Directory paths for rclayout.
// ENV=dev keeps everything under ./.dev/rclayout.
func GetXDGDirs() (*XDGDirs, error) {
	if os.Getenv("ENV") == "dev" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		devDir := filepath.Join(cwd, ".dev", appName)
		return &XDGDirs{
			ConfigHome: devDir,
			DataHome:   devDir,
			StateHome:  devDir,
		}, nil
	}

	// xdg caches the environment at init; reload so tests can override it.
	xdg.Reload()

	return &XDGDirs{
		ConfigHome: filepath.Join(xdg.ConfigHome, appName),
		DataHome:   filepath.Join(xdg.DataHome, appName),
		StateHome:  filepath.Join(xdg.StateHome, appName),
	}, nil
}

// GetConfigDir returns the XDG config directory for rclayout.
func GetConfigDir() (string, error) {
	dirs, err := GetXDGDirs()
	if err != nil {
		return "", err
	}
	return dirs.ConfigHome, nil
}

// GetDataDir returns the XDG data directory for rclayout.
func GetDataDir() (string, error) {
	dirs, err := GetXDGDirs()
	if err != nil {
		return "", err
	}
	return dirs.DataHome, nil
}

// GetLogDir returns the XDG state directory holding editor logs.
func GetLogDir() (string, error) {
	dirs, err := GetXDGDirs()
	if err != nil {
		return "", err
	}
	return filepath.Join(dirs.StateHome, "logs"), nil
}

// GetConfigFile returns the default config file path.
func GetConfigFile() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configName), nil
}

// GetDatabaseFile returns the default database file path.
func GetDatabaseFile() (string, error) {
	dir, err := GetDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, databaseName), nil
}

// EnsureDirectories creates the config, data and state directories.
func EnsureDirectories() error {
	dirs, err := GetXDGDirs()
	if err != nil {
		return err
	}
	for _, dir := range []string{dirs.ConfigHome, dirs.DataHome, dirs.StateHome} {
		if err := os.MkdirAll(dir, dirPerm); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}
	return nil
}

// GetManDir returns $XDG_DATA_HOME/man/man1 so `man rclayout` works
// without a custom MANPATH.
func GetManDir() (string, error) {
	if os.Getenv("ENV") == "dev" {
		dirs, err := GetXDGDirs()
		if err != nil {
			return "", err
		}
		return filepath.Join(dirs.DataHome, "man", "man1"), nil
	}
	xdg.Reload()
	return filepath.Join(xdg.DataHome, "man", "man1"), nil
}
