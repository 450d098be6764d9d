package libs

import (
	"os"

	"github.com/mitchellh/go-homedir"
)

// GetHome returns the home directory of the current user, or the working
// directory if it cannot be found.
func GetHome() string {
	if home, err := homedir.Dir(); err == nil {
		return home
	}
	wd, _ := os.Getwd()
	return wd
}

// ExpandHome replaces a leading ~ in path with the home directory.
// path is returned unchanged if it cannot be expanded.
func ExpandHome(path string) string {
	if p, err := homedir.Expand(path); err == nil {
		return p
	}
	return path
}
