package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/grngxd/tiramisu/constant"
	"github.com/grngxd/tiramisu/where"
	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// ErrUnknownKey is returned for keys that are not registered in Default.
var ErrUnknownKey = errors.New("unknown key")

// Lookup returns the registered field for key. Unknown keys fail with the closest registered key as a hint.
func Lookup(key string) (Field, error) {
	if field, ok := Default[key]; ok {
		return field, nil
	}

	return Field{}, fmt.Errorf("%w %s, did you mean %s?", ErrUnknownKey, key, Closest(key))
}

// Closest returns the registered key with the smallest edit distance to key.
func Closest(key string) string {
	return lo.MinBy(lo.Keys(Default), func(a string, b string) bool {
		return levenshtein.Distance(key, a) < levenshtein.Distance(key, b)
	})
}

// Parse converts raw command line values into the type of the field's default.
func Parse(key string, raw []string) (any, error) {
	field, err := Lookup(key)
	if err != nil {
		return nil, err
	}

	if len(raw) == 0 {
		return nil, fmt.Errorf("no value given for %s", key)
	}

	switch field.Value.(type) {
	case string:
		value := raw[0]
		if len(field.Options) > 0 && !lo.Contains(field.Options, strings.ToLower(value)) {
			return nil, fmt.Errorf("invalid value %q for %s, available: %s", value, key, strings.Join(field.Options, ", "))
		}
		if len(field.Options) > 0 {
			value = strings.ToLower(value)
		}
		return value, nil
	case int:
		parsed, err := strconv.Atoi(raw[0])
		if err != nil {
			return nil, fmt.Errorf("invalid integer value %q for %s", raw[0], key)
		}
		return parsed, nil
	case bool:
		parsed, err := strconv.ParseBool(raw[0])
		if err != nil {
			return nil, fmt.Errorf("invalid boolean value %q for %s", raw[0], key)
		}
		return parsed, nil
	case []string:
		return raw, nil
	default:
		return nil, fmt.Errorf("unsupported type %T of %s", field.Value, key)
	}
}

// Path is the location of the config file.
func Path() string {
	return filepath.Join(where.Config(), constant.Tiramisu+".toml")
}

// Write persists the current configuration, creating the file when missing.
func Write() error {
	switch err := viper.WriteConfig(); err.(type) {
	case viper.ConfigFileNotFoundError:
		return viper.SafeWriteConfig()
	default:
		return err
	}
}
