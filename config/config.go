// Package config registers the configuration keys and loads them
// into viper from the TOML file and TIRAMISU_* variables.
package config

import (
	"strings"

	"github.com/grngxd/tiramisu/constant"
	"github.com/grngxd/tiramisu/filesystem"
	"github.com/grngxd/tiramisu/where"
	"github.com/spf13/viper"
)

// EnvKeyReplacer maps dotted keys to variable names.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// Setup loads defaults, binds the environment and reads tiramisu.toml
// from where.Config(). A missing file is not an error.
func Setup() error {
	viper.SetConfigName(constant.Tiramisu)
	viper.SetConfigType("toml")
	viper.SetFs(filesystem.API())
	viper.AddConfigPath(where.Config())

	bindEnv()
	setDefaults()

	err := viper.ReadInConfig()
	if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		return nil
	}

	return err
}

func bindEnv() {
	viper.SetEnvPrefix(constant.Tiramisu)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	for _, k := range EnvExposed {
		viper.MustBindEnv(k)
	}
}

func setDefaults() {
	viper.SetTypeByDefaultValue(true)
	for k, field := range Default {
		viper.SetDefault(k, field.Value)
	}
}
