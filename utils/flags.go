package utils

import (
	"flag"
	"io"

	"github.com/pkg/errors"
)

// ParseFlags builds the configuration from defaults, an optional -config JSON file and
// command-line flags, in increasing order of precedence
func ParseFlags(name string, args []string, output io.Writer) (Config, error) {
	var (
		path   string
		config = DefaultConfig()
		fs     = newFlagSet(name, output, &config, &path)
	)
	if err := fs.Parse(args); err != nil {
		return config, errors.Wrap(err, "[ParseFlags] failed to parse arguments")
	}
	if path == "" {
		return config, config.Validate()
	}

	fromFile, err := LoadConfig(path)
	if err != nil {
		return fromFile, err
	}

	// Parse again on top of the file so explicit flags win
	fs = newFlagSet(name, output, &fromFile, &path)
	if err = fs.Parse(args); err != nil {
		return fromFile, errors.Wrap(err, "[ParseFlags] failed to parse arguments")
	}
	return fromFile, fromFile.Validate()
}

func newFlagSet(name string, output io.Writer, config *Config, path *string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(path, "config", "", "JSON configuration file")
	config.Bind(fs)
	return fs
}
