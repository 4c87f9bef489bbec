// Package filesystem holds the swappable afero backend every file access goes through.
//
// Production code uses the OS filesystem. Tests switch to memory with SetMemMapFs.
package filesystem

import "github.com/spf13/afero"

var backend = afero.Afero{Fs: afero.NewOsFs()}

func API() afero.Afero {
	return backend
}

func SetOsFs() {
	backend = afero.Afero{Fs: afero.NewOsFs()}
}

func SetMemMapFs() {
	backend = afero.Afero{Fs: afero.NewMemMapFs()}
}

// Sandbox returns a view of the backend rooted at root. Paths given to the
// view resolve inside root and cannot escape it.
func Sandbox(root string) afero.Fs {
	if root == "" {
		return API()
	}
	return afero.NewBasePathFs(API().Fs, root)
}
