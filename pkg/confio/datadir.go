package confio

import (
	"os"
	"path/filepath"
	"runtime"
)

// DefaultDatadir returns bitcoind's default data directory for the running
// platform.
func DefaultDatadir() string {
	return defaultDatadir(runtime.GOOS, userHome())
}

func defaultDatadir(goos, home string) string {
	switch goos {
	case "windows":
		return filepath.Join(home, "AppData", "Roaming", "Bitcoin")
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "Bitcoin")
	default:
		return filepath.Join(home, ".bitcoin")
	}
}

// userHome falls back to $HOME, then %USERPROFILE%, then the working
// directory when os.UserHomeDir fails.
func userHome() string {
	home, err := os.UserHomeDir()
	if err == nil {
		return home
	}
	if home := os.Getenv("HOME"); home != "" {
		return home
	}
	if home := os.Getenv("USERPROFILE"); home != "" {
		return home
	}
	if wd, err := os.Getwd(); err == nil {
		return wd
	}
	return string(filepath.Separator)
}
