// Package where resolves the directories tiramisu reads and writes.
// Every directory returned exists.
package where

import (
	"os"
	"path/filepath"

	"github.com/grngxd/tiramisu/constant"
	"github.com/grngxd/tiramisu/filesystem"
	"github.com/samber/lo"
)

// EnvConfigPath overrides Config when set.
const EnvConfigPath = "TIRAMISU_CONFIG_PATH"

func ensureDir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config is where tiramisu.toml, logs and scaffolded scripts live.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return ensureDir(custom)
	}

	base := lo.Must(os.UserConfigDir())
	return ensureDir(filepath.Join(base, constant.Tiramisu))
}

// Cache holds the version check result and the run history.
func Cache() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = filepath.Join(".", "cache")
	}
	return ensureDir(filepath.Join(base, constant.Tiramisu))
}

func Logs() string {
	return ensureDir(filepath.Join(Config(), "logs"))
}

// Scripts is the default target of `tiramisu new`.
func Scripts() string {
	return ensureDir(filepath.Join(Config(), "scripts"))
}

// Temp is cleared in the background on every start.
func Temp() string {
	return ensureDir(filepath.Join(os.TempDir(), constant.Tiramisu))
}

// History is a file, not a directory. It may not exist yet.
func History() string {
	return filepath.Join(Cache(), "history.json")
}
