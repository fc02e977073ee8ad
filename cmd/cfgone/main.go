// Command cfgone resolves a hierarchical YAML config file and prints the
// flattened result, with the extends chain collapsed.
//
// Usage:
//
//	cfgone [--file config.yaml] [--dir .] [--format yaml|json] [--get server.port]
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/randalmurphal/cfgone/pkg/cfgone"
)

func main() {
	var (
		file    = pflag.StringP("file", "f", cfgone.DefaultFilename, "config file name to discover")
		dir     = pflag.StringP("dir", "C", "", "directory to start discovery from (default: current directory)")
		format  = pflag.String("format", "yaml", "output format: yaml or json")
		key     = pflag.String("get", "", "print only the value at this dotted key path")
		verbose = pflag.BoolP("verbose", "v", false, "log load progress to stderr")
	)
	pflag.Parse()

	if err := run(*file, *dir, *format, *key, *verbose); err != nil {
		fmt.Fprintln(os.Stderr, "cfgone:", err)
		os.Exit(1)
	}
}

func run(file, dir, format, key string, verbose bool) error {
	opts := []cfgone.Option{cfgone.WithFilename(file)}
	if dir != "" {
		opts = append(opts, cfgone.WithStartDir(dir))
	}
	if verbose {
		opts = append(opts, cfgone.WithLogger(slog.New(slog.NewTextHandler(os.Stderr, nil))))
	}

	cfg, err := cfgone.Load(context.Background(), opts...)
	if err != nil {
		return err
	}

	if key != "" {
		value, err := lookup(cfg, key)
		if err != nil {
			return err
		}
		if child, ok := value.(*cfgone.Object); ok {
			return emit(child, format)
		}
		fmt.Println(value)
		return nil
	}

	return emit(cfg, format)
}

// emit prints an Object in the requested format.
func emit(obj *cfgone.Object, format string) error {
	var data []byte
	var err error
	switch format {
	case "yaml":
		data, err = obj.DumpYAML()
	case "json":
		data, err = obj.DumpJSON()
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(append(data, '\n'))
	return err
}

// lookup walks a dotted key path through nested Objects.
func lookup(obj *cfgone.Object, path string) (any, error) {
	var current any = obj
	for _, part := range strings.Split(path, ".") {
		o, ok := current.(*cfgone.Object)
		if !ok {
			return nil, fmt.Errorf("key path %q: %q is not a mapping", path, part)
		}
		value, err := o.Get(part)
		if err != nil {
			return nil, fmt.Errorf("key path %q: %w", path, err)
		}
		current = value
	}
	return current, nil
}
