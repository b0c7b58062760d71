package cliapp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path"
	"strconv"
	"strings"
	"time"

	"stonyx-utils/internal/config"
	"stonyx-utils/internal/dateutil"
	"stonyx-utils/internal/fileutil"
	"stonyx-utils/internal/logging"
	"stonyx-utils/internal/objutil"
	"stonyx-utils/internal/strutil"
)

// ErrPathNotFound is returned by get when the path does not resolve to a value.
var ErrPathNotFound = errors.New("path not found")

type command struct {
	usage   string
	summary string
	minArgs int
	maxArgs int // negative means unlimited
	run     func(a *App, ctx context.Context, args []string) error
}

var commands = map[string]command{
	"pluralize": {
		usage:   "<word>...",
		summary: "Print the plural of each word",
		minArgs: 1, maxArgs: -1,
		run: (*App).pluralize,
	},
	"singularize": {
		usage:   "<word>...",
		summary: "Print the singular of each word",
		minArgs: 1, maxArgs: -1,
		run: (*App).singularize,
	},
	"camel": {
		usage:   "<identifier>...",
		summary: "Convert kebab-case or snake_case to camelCase",
		minArgs: 1, maxArgs: -1,
		run: (*App).camel,
	},
	"pascal": {
		usage:   "<identifier>...",
		summary: "Convert kebab-case or snake_case to PascalCase",
		minArgs: 1, maxArgs: -1,
		run: (*App).pascal,
	},
	"random": {
		usage:   "[length]",
		summary: "Print a random alphanumeric string",
		minArgs: 0, maxArgs: 1,
		run: (*App).random,
	},
	"collections": {
		usage:   "<dir>",
		summary: "Map the files in dir to collection names",
		minArgs: 1, maxArgs: 1,
		run: (*App).collections,
	},
	"merge": {
		usage:   "<file>...",
		summary: "Deep-merge JSON/YAML files, later files win",
		minArgs: 1, maxArgs: -1,
		run: (*App).merge,
	},
	"get": {
		usage:   "<file> <path>",
		summary: "Print the value at a dotted path",
		minArgs: 2, maxArgs: 2,
		run: (*App).get,
	},
	"confirm": {
		usage:   "<question>...",
		summary: "Ask a yes/no question and print yes or no",
		minArgs: 1, maxArgs: -1,
		run: (*App).confirm,
	},
	"timestamp": {
		usage:   "[RFC3339 time]",
		summary: "Print unix seconds for a time, default now",
		minArgs: 0, maxArgs: 1,
		run: (*App).timestamp,
	},
}

func (a *App) pluralize(_ context.Context, args []string) error {
	return a.printEach(args, a.namer.Pluralize)
}

func (a *App) singularize(_ context.Context, args []string) error {
	return a.printEach(args, a.namer.Singularize)
}

func (a *App) camel(_ context.Context, args []string) error {
	return a.printEach(args, func(s string) string {
		return strutil.SnakeToCamel(strutil.KebabToCamel(s))
	})
}

func (a *App) pascal(_ context.Context, args []string) error {
	return a.printEach(args, func(s string) string {
		return strutil.SnakeToPascal(strutil.KebabToPascal(s))
	})
}

func (a *App) printEach(args []string, fn func(string) string) error {
	for _, arg := range args {
		if _, err := fmt.Fprintln(a.out, fn(arg)); err != nil {
			return err
		}
	}
	return nil
}

func (a *App) random(_ context.Context, args []string) error {
	length := a.cfg.Random.Length
	if len(args) == 1 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n <= 0 || n > config.MaxRandomLength {
			return fmt.Errorf("%w: length must be between 1 and %d, got %q", ErrUsage, config.MaxRandomLength, args[0])
		}
		length = n
	}

	s, err := strutil.RandomString(length)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(a.out, s)
	return err
}

// collections walks dir and prints a collection name to file path mapping.
// Names go through the Namer so overrides and collision suffixes apply.
func (a *App) collections(ctx context.Context, args []string) error {
	logger := logging.FromContext(ctx)
	files := a.cfg.Files

	opts := fileutil.WalkOptions{
		Extension:           files.Extension,
		Recursive:           files.Recursive,
		RecursiveNaming:     files.RecursiveNaming,
		RawName:             true, // the Namer needs the delimiters
		IgnoreAccessFailure: files.IgnoreAccessFailure,
	}

	a.namer.Reset()
	result := make(map[string]string)
	err := fileutil.ForEachFile(args[0], func(entry fileutil.Entry) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		dir, base := path.Split(entry.Name)
		if !files.RawName && dir != "" {
			dir = camelPath(dir)
		}

		name := a.namer.RegisterCollection(dir+base, entry.Path)
		if name == "" {
			logger.Warn("skipping file with empty name", slog.String("path", entry.Path))
			return nil
		}
		result[name] = entry.Path
		return nil
	}, opts)
	if err != nil {
		return err
	}

	logger.Info("collections resolved",
		slog.String("dir", args[0]),
		slog.Int("count", len(result)),
	)
	return a.writeValue(result)
}

// camelPath camelCases each segment of a "a-b/c-d/" directory prefix.
func camelPath(dir string) string {
	segments := strings.Split(strings.TrimSuffix(dir, "/"), "/")
	for i, seg := range segments {
		segments[i] = strutil.SnakeToCamel(strutil.KebabToCamel(seg))
	}
	return strings.Join(segments, "/") + "/"
}

func (a *App) merge(ctx context.Context, args []string) error {
	logger := logging.FromContext(ctx)

	var opts []objutil.MergeOption
	if a.cfg.Merge.IgnoreNewKeys {
		opts = append(opts, objutil.WithIgnoreNewKeys())
	}

	var merged map[string]any
	for i, file := range args {
		obj, err := fileutil.ReadObject(file)
		if err != nil {
			return err
		}
		if i == 0 {
			merged = obj
			continue
		}
		merged = objutil.Merge(merged, obj, opts...)
		logger.Debug("merged file", slog.String("file", file), slog.Int("keys", len(merged)))
	}

	return a.writeValue(merged)
}

func (a *App) get(_ context.Context, args []string) error {
	obj, err := fileutil.ReadObject(args[0])
	if err != nil {
		return err
	}

	value, err := objutil.Get(obj, args[1])
	if err != nil {
		return err
	}
	if value == nil {
		return fmt.Errorf("%w: %s", ErrPathNotFound, args[1])
	}

	switch v := value.(type) {
	case map[string]any, []any:
		return a.writeValue(v)
	default:
		_, err = fmt.Fprintln(a.out, v)
		return err
	}
}

func (a *App) confirm(_ context.Context, args []string) error {
	ok, err := a.prompter.Confirm(strings.Join(args, " "))
	if err != nil {
		return err
	}

	answer := "no"
	if ok {
		answer = "yes"
	}
	_, err = fmt.Fprintln(a.out, answer)
	return err
}

func (a *App) timestamp(_ context.Context, args []string) error {
	t := a.now()
	if len(args) == 1 {
		parsed, err := time.Parse(time.RFC3339, args[0])
		if err != nil {
			return fmt.Errorf("%w: %v", ErrUsage, err)
		}
		t = parsed
	}

	_, err := fmt.Fprintln(a.out, dateutil.Timestamp(t))
	return err
}
