package main

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	envPrefix = "ESPATCH"

	logFileKey  = "log.file"
	logLevelKey = "log.level"

	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
)

func init() {
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault(logFileKey, "")
	viper.SetDefault(logLevelKey, int(slog.LevelInfo))
}

type MainConfig struct {
	J       bool `cli:"name=j aliases=json desc='patch input is json'"`
	Y       bool `cli:"name=y aliases=yaml desc='patch input is yaml'"`
	Color   bool `cli:"name=color desc='force color output'"`
	Verbose bool `cli:"name=v aliases=verbose desc='log at debug level'"`

	LogFile string

	Main *cli.Command

	logger *slog.Logger
}

// Logger builds the process logger once: a rotating file when one is
// configured (flag or ESPATCH_LOG_FILE), stderr otherwise.
func (cfg *MainConfig) Logger() *slog.Logger {
	if cfg.logger != nil {
		return cfg.logger
	}
	logFile := cfg.LogFile
	if logFile == "" {
		logFile = viper.GetString(logFileKey)
	}
	var w io.Writer = os.Stderr
	if logFile != "" {
		w = &lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    defaultLogMaxSize,
			MaxBackups: defaultLogMaxBackups,
			MaxAge:     defaultLogMaxAge,
		}
	}
	level := slog.Level(viper.GetInt(logLevelKey))
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	cfg.logger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	return cfg.logger
}

func (cfg *MainConfig) useColor() bool {
	return cfg.Color || isatty.IsTerminal(os.Stdout.Fd())
}

// yamlIn reports whether input should be decoded as yaml: the -y flag, or
// a .yaml/.yml input file without -j forcing json.
func (cfg *MainConfig) yamlIn(name string) bool {
	if cfg.J {
		return false
	}
	if cfg.Y {
		return true
	}
	return strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml")
}
