package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"quadlet-generator/internal/catalog"
	"quadlet-generator/internal/form"
	"quadlet-generator/internal/format"
)

const (
	appName   = "quadlet-generator"
	envPrefix = "QUADLETGEN"
)

// Configuration keys shared by flags, environment and config file.
const (
	keyConfig   = "config"
	keyMode     = "mode"
	keyKind     = "kind"
	keyCatalog  = "catalog"
	keySection  = "section"
	keyOutput   = "output"
	keyDebug    = "debug"
	keyLogLevel = "log-level"
)

// app carries the state shared by all commands.
type app struct {
	v   *viper.Viper
	log *zap.Logger
	reg *format.Registry

	stdin io.Reader
}

func newApp() *app {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault(keyMode, "quadlet")
	v.SetDefault(keyKind, "container")
	v.SetDefault(keySection, true)
	v.SetDefault(keyLogLevel, "warn")

	return &app{
		v:     v,
		reg:   format.NewRegistry(),
		stdin: os.Stdin,
	}
}

// setup reads the config file and builds the logger. It runs before every
// command.
func (a *app) setup(cmd *cobra.Command) error {
	err := a.v.BindPFlags(cmd.Flags())
	if err != nil {
		return err
	}

	err = a.readConfig()
	if err != nil {
		return err
	}

	if a.log == nil {
		a.log, err = newLogger(a.v.GetBool(keyDebug), a.v.GetString(keyLogLevel))
		if err != nil {
			return err
		}
	}

	if used := a.v.ConfigFileUsed(); used != "" {
		a.log.Debug("config file loaded", zap.String("path", used))
	}

	return nil
}

func (a *app) readConfig() error {
	if file := a.v.GetString(keyConfig); file != "" {
		a.v.SetConfigFile(file)
	} else {
		a.v.SetConfigName(appName)
		a.v.AddConfigPath(".")

		if dir, err := os.UserConfigDir(); err == nil {
			a.v.AddConfigPath(filepath.Join(dir, appName))
		}
	}

	err := a.v.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}

		return fmt.Errorf("reading config file: %w", err)
	}

	return nil
}

// newLogger builds a console logger on stderr. Debug switches to the
// development encoder and forces the debug level.
func newLogger(debug bool, level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	if debug {
		cfg = zap.NewDevelopmentConfig()
	} else if level != "" {
		lvl, err := zapcore.ParseLevel(level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", level, err)
		}

		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}

	return cfg.Build()
}

// catalog loads the configured catalogue: an external file when set,
// otherwise the builtin one for the configured kind.
func (a *app) catalog() (*catalog.Catalog, error) {
	if path := a.v.GetString(keyCatalog); path != "" {
		return catalog.LoadFile(path, a.reg, a.log)
	}

	return catalog.Builtin(a.v.GetString(keyKind), a.reg, a.log)
}

// readEntries reads field entries from the named file, or from stdin when
// the name is empty or "-".
func (a *app) readEntries(args []string) ([]form.Entry, error) {
	if len(args) == 0 || args[0] == "-" {
		return form.ReadEntries(a.stdin)
	}

	f, err := os.Open(args[0])
	if err != nil {
		return nil, fmt.Errorf("opening input: %w", err)
	}
	defer f.Close()

	return form.ReadEntries(f)
}

func (a *app) parse(args []string) (*form.Result, error) {
	entries, err := a.readEntries(args)
	if err != nil {
		return nil, err
	}

	cfg := form.DefaultConfig()
	cfg.Logger = a.log

	return form.Parse(entries, cfg)
}

func addPersistentFlags(fs *pflag.FlagSet) {
	fs.StringP(keyConfig, "c", "", "config file (default ./"+appName+".yaml)")
	fs.StringP(keyKind, "k", "container", "resource kind: "+strings.Join(catalog.Kinds(), ", "))
	fs.String(keyCatalog, "", "catalogue YAML file used instead of the builtin one")
	fs.Bool(keyDebug, false, "enable debug logging")
	fs.String(keyLogLevel, "warn", "log level (debug, info, warn, error)")
}
