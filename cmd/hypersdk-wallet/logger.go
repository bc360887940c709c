// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/ava-labs/avalanchego/utils/logging"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	logMaxSize  = 8 // megabytes
	logMaxFiles = 3
	logMaxAge   = 7 // days
)

// logFactory builds loggers that write JSON to a rotating file under the
// wallet's log directory. The console core stays muted unless requested, so
// stdout only carries command output.
type logFactory struct {
	config logging.Config

	lock    sync.Mutex
	loggers map[string]logging.Logger
}

func newLogFactory(dir string, level logging.Level, display bool) *logFactory {
	config := logging.Config{
		RotatingWriterConfig: logging.RotatingWriterConfig{
			MaxSize:   logMaxSize,
			MaxFiles:  logMaxFiles,
			MaxAge:    logMaxAge,
			Directory: dir,
		},
		DisableWriterDisplaying: !display,
		LogLevel:                level,
		DisplayLevel:            level,
		LogFormat:               logging.JSON,
	}
	return &logFactory{
		config:  config,
		loggers: make(map[string]logging.Logger),
	}
}

func (f *logFactory) Make(name string) (logging.Logger, error) {
	f.lock.Lock()
	defer f.lock.Unlock()

	if _, ok := f.loggers[name]; ok {
		return nil, fmt.Errorf("logger with name %q already exists", name)
	}

	var consoleWriter io.WriteCloser = os.Stderr
	if f.config.DisableWriterDisplaying {
		consoleWriter = discardWriteCloser{io.Discard}
	}
	consoleCore := logging.NewWrappedCore(f.config.DisplayLevel, consoleWriter, logging.Colors.ConsoleEncoder())
	consoleCore.WriterDisabled = f.config.DisableWriterDisplaying

	rw := &lumberjack.Logger{
		Filename:   filepath.Join(f.config.Directory, name+".log"),
		MaxSize:    f.config.MaxSize,
		MaxAge:     f.config.MaxAge,
		MaxBackups: f.config.MaxFiles,
		Compress:   f.config.Compress,
	}
	fileCore := logging.NewWrappedCore(f.config.LogLevel, rw, f.config.LogFormat.FileEncoder())

	l := logging.NewLogger(f.config.LogFormat.WrapPrefix(name), consoleCore, fileCore)
	f.loggers[name] = l
	return l, nil
}

// Close flushes and stops every logger made by [f].
func (f *logFactory) Close() {
	f.lock.Lock()
	defer f.lock.Unlock()

	for _, l := range f.loggers {
		l.Stop()
	}
	f.loggers = nil
}

type discardWriteCloser struct {
	io.Writer
}

func (discardWriteCloser) Close() error {
	return nil
}
