// Package quick builds platylog loggers from "key=value" configuration
// strings, convenient for examples, tooling glue and tests.
//
// Keys match the toml tags of platylog.Config, e.g.:
//
//	log, err := quick.New("directory=./logs", "save_levels=error|fatal", "max_past_logs=3")
package quick

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/platypus-labs/platylog"
)

// New parses configuration strings and constructs a Logger.
// Each argument must be in "key=value" format where key matches a
// platylog.Config toml tag.
func New(args ...string) (*platylog.Logger, error) {
	cfg, err := config(args...)
	if err != nil {
		return nil, err
	}
	return platylog.New(cfg)
}

// Must is New that panics on error, for program initialization where a bad
// configuration string is a programming mistake.
func Must(args ...string) *platylog.Logger {
	log, err := New(args...)
	if err != nil {
		panic(err)
	}
	return log
}

// config parses configuration strings into a platylog.Config.
// The function handles type conversion and validation for each field.
func config(args ...string) (*platylog.Config, error) {
	cfg := &platylog.Config{}
	for _, arg := range args {
		key, value, err := parseKeyValue(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid config format: %s", arg)
		}

		if err := setValue(cfg, key, value); err != nil {
			return nil, fmt.Errorf("config error: %w", err)
		}
	}
	return cfg, nil
}

// parseKeyValue splits a configuration string into key and value parts.
// Input format must be "key=value". Leading and trailing spaces are removed
// from both parts.
func parseKeyValue(arg string) (string, string, error) {
	parts := strings.SplitN(strings.TrimSpace(arg), "=", 2)
	if len(parts) != 2 {
		return "", "", fmt.Errorf("invalid format")
	}
	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]), nil
}

// setValue updates a platylog.Config field using reflection.
// Field matching is case-insensitive against toml tags. Level fields accept
// either a numeric bitmask or severity names joined with "|" or ",".
func setValue(cfg *platylog.Config, key, value string) error {
	key = strings.ToLower(key)

	levelType := reflect.TypeOf(platylog.LevelNone)

	v := reflect.ValueOf(cfg).Elem()
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if tag := field.Tag.Get("toml"); tag == key {
			f := v.Field(i)

			if field.Type == levelType {
				mask, err := parseMask(value)
				if err != nil {
					return fmt.Errorf("invalid level value for %s: %w", key, err)
				}
				f.SetUint(uint64(mask))
				return nil
			}

			switch f.Kind() {
			case reflect.Int:
				val, err := strconv.ParseInt(value, 10, 64)
				if err != nil {
					return fmt.Errorf("invalid int value for %s: %s", key, value)
				}
				f.SetInt(val)

			case reflect.String:
				f.SetString(value)

			default:
				return fmt.Errorf("unsupported config type for %s", key)
			}

			return nil
		}
	}
	return fmt.Errorf("unknown config key: %s", key)
}

// parseMask converts a level value to a bitmask. Numeric values are taken
// verbatim; anything else is parsed as severity names.
func parseMask(value string) (platylog.Level, error) {
	if n, err := strconv.ParseUint(value, 10, 32); err == nil {
		return platylog.Level(n), nil
	}
	return platylog.ParseLevels(value)
}
