package platylog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
)

// Level is a severity bitmask. Each severity occupies a single bit so that
// display and save filters can select arbitrary combinations.
type Level uint32

// Severity flags. LevelAll selects every severity, LevelNone selects none.
const (
	LevelNone    Level = 0
	LevelTrace   Level = 1 << 0
	LevelInfo    Level = 1 << 1
	LevelDebug   Level = 1 << 2
	LevelWarning Level = 1 << 3
	LevelError   Level = 1 << 4
	LevelFatal   Level = 1 << 5
	LevelAll     Level = LevelTrace | LevelInfo | LevelDebug | LevelWarning | LevelError | LevelFatal
)

// String returns the severity name used in log headers.
// It is only meaningful for single-bit levels.
func (l Level) String() string {
	switch l {
	case LevelTrace:
		return "Trace"
	case LevelInfo:
		return "Info"
	case LevelDebug:
		return "Debug"
	case LevelWarning:
		return "Warning"
	case LevelError:
		return "Error"
	case LevelFatal:
		return "Fatal"
	default:
		return fmt.Sprintf("Level(%d)", uint32(l))
	}
}

// ParseLevel converts a severity name to its Level flag. It accepts the
// single severities plus "all" and "none", case-insensitively. Combined masks
// can be built with ParseLevels.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none":
		return LevelNone, nil
	case "trace":
		return LevelTrace, nil
	case "info":
		return LevelInfo, nil
	case "debug":
		return LevelDebug, nil
	case "warning", "warn":
		return LevelWarning, nil
	case "error":
		return LevelError, nil
	case "fatal":
		return LevelFatal, nil
	case "all":
		return LevelAll, nil
	default:
		return LevelNone, fmt.Errorf("invalid level: %s", s)
	}
}

// ParseLevels builds a bitmask from a list of severity names separated by
// "|" or ",", e.g. "info|warning|error".
func ParseLevels(s string) (Level, error) {
	mask := LevelNone
	for _, part := range strings.FieldsFunc(s, func(r rune) bool { return r == '|' || r == ',' }) {
		level, err := ParseLevel(part)
		if err != nil {
			return LevelNone, err
		}
		mask |= level
	}
	return mask, nil
}

// Config defines the logger configuration parameters.
// All fields can be configured via TOML or JSON configuration files.
//
// Zero values are replaced with defaults at construction time; to silence
// the console or disable persistence entirely use SetDisplayLevels or
// SetSaveLevels with LevelNone after construction.
type Config struct {
	DisplayLevels  Level  `json:"display_levels" toml:"display_levels" validate:"lte=63"`   // Severity bitmask shown on console
	SaveLevels     Level  `json:"save_levels" toml:"save_levels" validate:"lte=63"`         // Severity bitmask persisted to file
	MaxPastLogs    int    `json:"max_past_logs" toml:"max_past_logs" validate:"gte=0"`      // Max number of archived log files to retain
	Directory      string `json:"directory" toml:"directory"`                               // Root directory for the active log and archives
	HeaderTemplate string `json:"header_template" toml:"header_template" validate:"header"` // Header layout, rendered with {time} and {level}
}

// Filesystem layout inside Config.Directory.
const (
	activeLogName   = "latest_log.txt"
	pastLogsDirName = "past_logs"
)

// defaultConfig values are used for any field the user leaves at its zero value.
func defaultConfig() *Config {
	return &Config{
		DisplayLevels:  LevelAll,
		SaveLevels:     LevelAll,
		MaxPastLogs:    5,
		Directory:      "./logs",
		HeaderTemplate: "[{time}] <{level}>",
	}
}

// mergeConfig fills the zero-valued fields of cfg with defaults and
// validates the result.
func mergeConfig(cfg *Config) (*Config, error) {
	def := defaultConfig()
	merged := &Config{
		DisplayLevels:  getConfigValue(def.DisplayLevels, cfg.DisplayLevels),
		SaveLevels:     getConfigValue(def.SaveLevels, cfg.SaveLevels),
		MaxPastLogs:    getConfigValue(def.MaxPastLogs, cfg.MaxPastLogs),
		Directory:      getConfigValue(def.Directory, cfg.Directory),
		HeaderTemplate: getConfigValue(def.HeaderTemplate, cfg.HeaderTemplate),
	}
	if err := validate.Struct(merged); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) && len(ve) > 0 {
			return nil, fmt.Errorf("invalid config field %s: failed %q constraint", ve[0].Field(), ve[0].Tag())
		}
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return merged, nil
}

// getConfigValue returns defaultVal if cfgVal equals the zero value for type T,
// otherwise returns cfgVal. Type T must satisfy the comparable constraint.
func getConfigValue[T comparable](defaultVal, cfgVal T) T {
	var zero T
	if cfgVal == zero {
		return defaultVal
	}
	return cfgVal
}

// LoadConfig reads and parses a TOML configuration file.
// Missing fields keep their zero value and are filled with defaults by New.
func LoadConfig(configPath string) (*Config, error) {
	configFile := filepath.Clean(configPath)

	content, err := os.ReadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(content, &cfg); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return nil, fmt.Errorf("failed to parse config file at line %d, column %d: %s", row, col, derr.Error())
		}
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &cfg, nil
}

var validate *validator.Validate

func init() {
	validate = validator.New()

	// A header template must carry both placeholders or rendered lines lose
	// their timestamp or severity.
	if err := validate.RegisterValidation("header", validateHeaderTemplate); err != nil {
		panic(err)
	}

	// Report field names from "toml" tags so errors match config file keys
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("toml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

func validateHeaderTemplate(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return strings.Contains(value, "{"+headerTimeTag+"}") && strings.Contains(value, "{"+headerLevelTag+"}")
}
