// Copyright 2022 Matrix Origin
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package logutil builds the single *zap.Logger every long-running
// piece of this module logs through, wired from a small toml-friendly
// config rather than zap's own verbose construction API.
package logutil

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// ZapSink pairs an encoder with the syncer it writes through; a
// logger fans writes out to one sink per destination (always the
// console, plus the rotating file when one is configured).
type ZapSink struct {
	Encoder zapcore.Encoder
	Syncer  zapcore.WriteSyncer
}

// LogConfig is the toml-tagged logging section embedded by every
// binary's own config struct.
type LogConfig struct {
	Level      string `toml:"level"`
	Format     string `toml:"format"`
	Filename   string `toml:"filename"`
	MaxSize    int    `toml:"max-size"`
	MaxDays    int    `toml:"max-days"`
	MaxBackups int    `toml:"max-backups"`

	// DisableStore skips the rotating file sink even when Filename is
	// set, for tests that only want the console sink exercised.
	DisableStore bool `toml:"-"`

	// StacktraceLevel overrides the level at which zap captures a
	// stacktrace; defaults to "panic" when empty.
	StacktraceLevel string `toml:"stacktrace-level"`
}

func (c *LogConfig) getLevel() zap.AtomicLevel {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(c.Level)); err != nil {
		lvl = zapcore.InfoLevel
	}
	return zap.NewAtomicLevelAt(lvl)
}

func (c *LogConfig) getOptions() []zap.Option {
	stacktraceAt := zapcore.PanicLevel
	if c.StacktraceLevel != "" {
		_ = stacktraceAt.UnmarshalText([]byte(c.StacktraceLevel))
	}
	return []zap.Option{zap.AddStacktrace(stacktraceAt), zap.AddCaller()}
}

func getConsoleSyncer() zapcore.WriteSyncer {
	return zapcore.AddSync(os.Stdout)
}

func (c *LogConfig) getFileSyncer() zapcore.WriteSyncer {
	return zapcore.AddSync(&lumberjack.Logger{
		Filename:   c.Filename,
		MaxSize:    c.MaxSize,
		MaxAge:     c.MaxDays,
		MaxBackups: c.MaxBackups,
	})
}

func (c *LogConfig) getSyncer() zapcore.WriteSyncer {
	if c.Filename == "" || c.DisableStore {
		return getConsoleSyncer()
	}
	if info, err := os.Stat(c.Filename); err == nil && info.IsDir() {
		panic("log file can't be a directory")
	}
	return zapcore.NewMultiWriteSyncer(getConsoleSyncer(), c.getFileSyncer())
}

func getLoggerEncoder(format string) zapcore.Encoder {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	switch format {
	case "json":
		return zapcore.NewJSONEncoder(encCfg)
	case "console":
		return zapcore.NewConsoleEncoder(encCfg)
	}
	panic(fmt.Sprintf("unsupported log format: %s", format))
}

func (c *LogConfig) getEncoder() zapcore.Encoder {
	return getLoggerEncoder(c.Format)
}

func (c *LogConfig) getSinks() []ZapSink {
	sinks := []ZapSink{{Encoder: c.getEncoder(), Syncer: getConsoleSyncer()}}
	if c.Filename != "" && !c.DisableStore {
		sinks = append(sinks, ZapSink{Encoder: c.getEncoder(), Syncer: c.getFileSyncer()})
	}
	return sinks
}

var globalLogger *zap.Logger = zap.NewNop()

// SetupMOLogger builds a *zap.Logger from cfg, installs it as the
// package-level global returned by L, and returns it.
func SetupMOLogger(cfg *LogConfig) *zap.Logger {
	cores := make([]zapcore.Core, 0, len(cfg.getSinks()))
	for _, sink := range cfg.getSinks() {
		cores = append(cores, zapcore.NewCore(sink.Encoder, sink.Syncer, cfg.getLevel()))
	}
	logger := zap.New(zapcore.NewTee(cores...), cfg.getOptions()...)
	globalLogger = logger
	return logger
}

// L returns the logger most recently installed by SetupMOLogger, or a
// no-op logger if it was never called.
func L() *zap.Logger { return globalLogger }
