package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/respath/pkg/errors"
)

// Environment variable names
const (
	// EnvConfigDir overrides the XDG config directory for respath
	EnvConfigDir = "RESPATH_CONFIG_DIR"

	// EnvStateDir overrides the XDG state directory for respath
	EnvStateDir = "RESPATH_STATE_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Fixed names under the respath directories
const (
	// AppDirName is the directory name used under each XDG base directory
	AppDirName = "respath"

	// ConfigFileTOML is the preferred application configuration file
	ConfigFileTOML = "config.toml"

	// ConfigFileYAML is the alternative application configuration file
	ConfigFileYAML = "config.yaml"

	// LogFileName is the name of the log file
	LogFileName = "respath.log"
)

// Dirs locates respath's own files
type Dirs struct {
	configDir string
	stateDir  string
}

// NewDirs resolves the directories from the environment overrides, falling
// back to the XDG base directories
func NewDirs() *Dirs {
	d := &Dirs{
		configDir: filepath.Join(xdg.ConfigHome, AppDirName),
		stateDir:  filepath.Join(xdg.StateHome, AppDirName),
	}
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		d.configDir = ExpandHome(dir)
	}
	if dir := os.Getenv(EnvStateDir); dir != "" {
		d.stateDir = ExpandHome(dir)
	}
	return d
}

// ConfigDir returns the application configuration directory
func (d *Dirs) ConfigDir() string { return d.configDir }

// StateDir returns the directory for logs and other state
func (d *Dirs) StateDir() string { return d.stateDir }

// ConfigFiles returns the candidate application configuration files in
// preference order
func (d *Dirs) ConfigFiles() []string {
	return []string{
		filepath.Join(d.configDir, ConfigFileTOML),
		filepath.Join(d.configDir, ConfigFileYAML),
	}
}

// LogFilePath returns the path of the log file
func (d *Dirs) LogFilePath() string {
	return filepath.Join(d.stateDir, LogFileName)
}

// ExpandHome expands a leading ~ to the home directory
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	home, err := HomeDir()
	if err != nil {
		return path
	}
	if len(path) == 1 {
		return home
	}
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(home, path[2:])
	}

	// ~user is left alone
	return path
}

// HomeDir returns the user's home directory, falling back to $HOME
func HomeDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		if h := os.Getenv(EnvHome); h != "" {
			return h, nil
		}
		return "", errors.Wrapf(err, errors.ErrFileAccess, "failed to get home directory")
	}
	return home, nil
}
