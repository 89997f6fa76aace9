// Package config loads louvain.Options from a viper-backed configuration
// source, the same shape as the teacher's
// graph-clustering-algorithm/pkg/louvain/config.go: a *viper.Viper wrapped
// in getters, defaults set up front, optionally overridden by a config
// file. The core louvain package itself never imports viper; only this
// CLI-facing loader does.
package config

import (
	"os"
	"runtime"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/gilchrisn/louvain-engine/pkg/louvain"
)

// Loader wraps a *viper.Viper pre-populated with the engine's defaults.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a Loader with every algorithm.*/performance.*/logging.*
// default set, mirroring NewConfig's SetDefault block in the teacher's
// config.go.
func NewLoader() *Loader {
	v := viper.New()

	v.SetDefault("algorithm.resolution", 1.0)
	v.SetDefault("algorithm.tolerance", 1e-2)
	v.SetDefault("algorithm.aggregation_tolerance", 0.8)
	v.SetDefault("algorithm.tolerance_decline", 100.0)
	v.SetDefault("algorithm.max_iterations", 20)
	v.SetDefault("algorithm.max_passes", 10)
	v.SetDefault("algorithm.repeat", 1)
	v.SetDefault("algorithm.random_seed", time.Now().UnixNano())

	v.SetDefault("performance.num_workers", runtime.NumCPU())

	v.SetDefault("logging.level", "info")

	return &Loader{v: v}
}

// LoadFromFile merges a config file (any format viper supports: yaml,
// json, toml, ...) on top of the defaults.
func (l *Loader) LoadFromFile(path string) error {
	l.v.SetConfigFile(path)
	return l.v.ReadInConfig()
}

// Set allows programmatic overrides, e.g. from command-line flags.
func (l *Loader) Set(key string, value interface{}) {
	l.v.Set(key, value)
}

// Options builds a louvain.Options from the loaded configuration.
func (l *Loader) Options() louvain.Options {
	return louvain.Options{
		Resolution:           l.v.GetFloat64("algorithm.resolution"),
		Tolerance:            l.v.GetFloat64("algorithm.tolerance"),
		AggregationTolerance: l.v.GetFloat64("algorithm.aggregation_tolerance"),
		ToleranceDecline:     l.v.GetFloat64("algorithm.tolerance_decline"),
		MaxIterations:        l.v.GetInt("algorithm.max_iterations"),
		MaxPasses:            l.v.GetInt("algorithm.max_passes"),
		Repeat:               l.v.GetInt("algorithm.repeat"),
		Workers:              l.v.GetInt("performance.num_workers"),
		RandomSeed:           l.v.GetInt64("algorithm.random_seed"),
		Logger:               l.CreateLogger(),
	}
}

// CreateLogger builds a zerolog.Logger from the logging.level setting,
// identical in shape to the teacher's Config.CreateLogger.
func (l *Loader) CreateLogger() zerolog.Logger {
	level, err := zerolog.ParseLevel(l.v.GetString("logging.level"))
	if err != nil {
		level = zerolog.InfoLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: "15:04:05",
	}).Level(level).With().Timestamp().Str("service", "louvain").Logger()
}
