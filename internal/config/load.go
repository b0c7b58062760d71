package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"stonyx-utils/internal/fileutil"
	"stonyx-utils/internal/strutil"
)

// EnvPrefix prefixes every environment variable, e.g. STONYX_LOGGING_LEVEL.
const EnvPrefix = "STONYX"

// Load loads configuration from the process command line. See LoadWithFlags.
func Load() (*Config, error) {
	return LoadWithFlags(pflag.CommandLine, os.Args[1:])
}

// LoadWithFlags loads configuration from multiple sources with the following precedence:
// 1. Command line flags
// 2. Environment variables
// 3. Config file
// 4. Default values
//
// Flags are defined on fs and parsed from args unless fs is already parsed.
// Positional arguments remain available through fs.Args().
func LoadWithFlags(fs *pflag.FlagSet, args []string) (*Config, error) {
	v := viper.New()

	// Defaults (lowest priority)
	setDefaults(v)

	// --- Flags ---
	DefineFlags(fs)
	if !fs.Parsed() {
		if err := fs.Parse(args); err != nil {
			return nil, fmt.Errorf("failed to parse flags: %w", err)
		}
	}

	// --- Config file ---
	cfgPath, _ := fs.GetString("config")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.SetConfigName("stonyx-utils")
		v.SetConfigType("yaml")
		v.AddConfigPath("/etc/stonyx-utils/")
		v.AddConfigPath("$HOME/.stonyx-utils")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		if cfgPath != "" {
			return nil, fmt.Errorf("failed to read config file %q: %w", cfgPath, err)
		}
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// --- Environment variables ---
	// Canonical keys: dot + snake_case
	// Env vars: STONYX_FILES_RECURSIVE_NAMING
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	// --- Flags binding (highest priority) ---
	bindChangedFlagsToViper(fs, v)

	return unmarshal(v)
}

// unmarshal decodes strictly: unknown keys are rejected.
func unmarshal(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.UnmarshalExact(
		&cfg,
		viper.DecodeHook(
			mapstructure.ComposeDecodeHookFunc(
				stringToStringMapHookFunc(","),
			),
		),
	); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.Files.Extension = normalizeExtension(cfg.Files.Extension)
	return &cfg, nil
}

// bindChangedFlagsToViper copies only explicitly-set flags into Viper,
// preserving precedence: flags > env > file > defaults.
func bindChangedFlagsToViper(fs *pflag.FlagSet, v *viper.Viper) {
	fs.Visit(func(f *pflag.Flag) {
		if f.Name == "config" || f.Name == "version" {
			return
		}

		switch f.Value.Type() {
		case "string":
			val, _ := fs.GetString(f.Name)
			v.Set(f.Name, val)
		case "int":
			val, _ := fs.GetInt(f.Name)
			v.Set(f.Name, val)
		case "bool":
			val, _ := fs.GetBool(f.Name)
			v.Set(f.Name, val)
		case "stringToString":
			val, _ := fs.GetStringToString(f.Name)
			v.Set(f.Name, val)
		default:
			v.Set(f.Name, f.Value.String())
		}
	})
}

// DefineFlags defines all command line flags using canonical snake_case keys.
// It is a no-op for flags already defined on fs.
func DefineFlags(fs *pflag.FlagSet) {
	if fs.Lookup("config") != nil {
		return
	}

	// Logging flags
	fs.String("logging.level", "", "Log level (debug, info, warn, error)")
	fs.String("logging.format", "", "Log format (json, text)")
	fs.String("logging.file", "", "Also write JSON logs to this file")

	// Naming flags
	fs.StringToString("naming.plural_overrides", nil, "Custom plurals (singular=plural,...)")
	fs.StringToString("naming.singular_overrides", nil, "Custom singulars (plural=singular,...)")

	// Directory walk flags
	fs.String("files.extension", "", "Extension of files visited by collections (default .json)")
	fs.Bool("files.recursive", false, "Descend into subdirectories")
	fs.Bool("files.recursive_naming", false, "Prefix names with their directory path")
	fs.Bool("files.raw_name", false, "Keep file names as-is instead of camelCasing")
	fs.Bool("files.ignore_access_failure", false, "Treat an unreadable directory as empty")

	// Command flags
	fs.Bool("merge.ignore_new_keys", false, "Drop keys that only exist in later files")
	fs.String("output.format", "", "Structured output format (yaml, json)")
	fs.Int("random.length", 0, "Length of generated random strings")

	// Config file flag
	fs.StringP("config", "c", "", "Config file path")
}

// setDefaults sets default values (lowest precedence).
func setDefaults(v *viper.Viper) {
	// Logging defaults
	v.SetDefault("logging.level", "warn")
	v.SetDefault("logging.format", "text")
	v.SetDefault("logging.file", "")

	// Naming defaults
	v.SetDefault("naming.plural_overrides", map[string]string{})
	v.SetDefault("naming.singular_overrides", map[string]string{})

	// Directory walk defaults
	v.SetDefault("files.extension", fileutil.DefaultExtension)
	v.SetDefault("files.recursive", false)
	v.SetDefault("files.recursive_naming", false)
	v.SetDefault("files.raw_name", false)
	v.SetDefault("files.ignore_access_failure", false)

	// Command defaults
	v.SetDefault("merge.ignore_new_keys", false)
	v.SetDefault("output.format", "yaml")
	v.SetDefault("random.length", strutil.DefaultRandomLength)
}

// normalizeExtension accepts "json" as well as ".json".
func normalizeExtension(ext string) string {
	ext = strings.TrimSpace(ext)
	if ext == "" || strings.HasPrefix(ext, ".") {
		return ext
	}
	return "." + ext
}

// stringToStringMapHookFunc decodes "k1=v1,k2=v2" strings, as supplied by
// environment variables, into map[string]string.
func stringToStringMapHookFunc(sep string) mapstructure.DecodeHookFunc {
	return func(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		if from.Kind() != reflect.String || to != reflect.TypeOf(map[string]string{}) {
			return data, nil
		}

		out := make(map[string]string)
		raw := strings.TrimSpace(data.(string))
		if raw == "" {
			return out, nil
		}

		for _, pair := range strings.Split(raw, sep) {
			key, value, ok := strings.Cut(pair, "=")
			if !ok {
				return nil, fmt.Errorf("invalid key=value pair %q", strings.TrimSpace(pair))
			}
			out[strings.TrimSpace(key)] = strings.TrimSpace(value)
		}
		return out, nil
	}
}
