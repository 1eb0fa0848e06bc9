// Package xdg resolves the user directories viewshell reads and writes.
package xdg

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/bnema/viewshell/internal/application/port"
	"github.com/bnema/viewshell/internal/infrastructure/config"
)

const userDirsFile = "user-dirs.dirs"

// Adapter implements port.XDGPaths on top of config.GetXDGDirs.
type Adapter struct{}

// New creates a new XDG paths adapter.
func New() *Adapter {
	return &Adapter{}
}

func baseDir(pick func(*config.XDGDirs) string) (string, error) {
	dirs, err := config.GetXDGDirs()
	if err != nil {
		return "", err
	}
	return pick(dirs), nil
}

func (*Adapter) ConfigDir() (string, error) {
	return baseDir(func(d *config.XDGDirs) string { return d.ConfigHome })
}

func (*Adapter) DataDir() (string, error) {
	return baseDir(func(d *config.XDGDirs) string { return d.DataHome })
}

func (*Adapter) StateDir() (string, error) {
	return baseDir(func(d *config.XDGDirs) string { return d.StateHome })
}

func (*Adapter) CacheDir() (string, error) {
	return baseDir(func(d *config.XDGDirs) string { return d.CacheHome })
}

// DownloadDir resolves the download directory from XDG_DOWNLOAD_DIR, then
// user-dirs.dirs, then ~/Downloads. The directory is not created.
func (*Adapter) DownloadDir() (string, error) {
	if dir := os.Getenv("XDG_DOWNLOAD_DIR"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		configHome = filepath.Join(home, ".config")
	}
	if dir := readUserDir(filepath.Join(configHome, userDirsFile), "XDG_DOWNLOAD_DIR", home); dir != "" {
		return dir, nil
	}
	return filepath.Join(home, "Downloads"), nil
}

// readUserDir returns the value of key in a user-dirs.dirs file, with $HOME
// expanded. Missing files and keys yield "".
func readUserDir(path, key, home string) string {
	f, err := os.Open(path)
	if err != nil {
		return ""
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		name, value, ok := strings.Cut(line, "=")
		if !ok || strings.HasPrefix(line, "#") || strings.TrimSpace(name) != key {
			continue
		}
		value = strings.Trim(strings.TrimSpace(value), `"`)
		value = strings.Replace(value, "$HOME", home, 1)
		if !filepath.IsAbs(value) {
			return ""
		}
		return filepath.Clean(value)
	}
	return ""
}

var _ port.XDGPaths = (*Adapter)(nil)
