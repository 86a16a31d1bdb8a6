/*
 * MIT License
 *
 * Copyright (c) 2020 Nicolas JUHEL
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

// Package zlog is a minimal injectable logger, backed by logrus. Logging is
// not part of this module's contract: every handle defaults to a no-op
// logger and only emits lines when a caller attaches one through
// archive/zip's WithLogger or WithReaderLogger option.
package zlog

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Logger is the interface Zipper/Unzipper handles accept. It covers the four
// levels this module ever emits at.
type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	SetLevel(level string) error
	GetLevel() string
}

type noop struct{}

func (noop) Debugf(string, ...interface{}) {}
func (noop) Infof(string, ...interface{})  {}
func (noop) Warnf(string, ...interface{})  {}
func (noop) Errorf(string, ...interface{}) {}
func (noop) SetLevel(string) error         { return nil }
func (noop) GetLevel() string              { return "" }

// Noop is the default logger attached to every new handle.
var Noop Logger = noop{}

type logrusLogger struct {
	l *logrus.Logger
}

// New creates a logrus-backed Logger writing to out (logrus's default
// output, stderr, when out is nil) at logrus's default info level.
func New(out io.Writer) Logger {
	l := logrus.New()
	if out != nil {
		l.SetOutput(out)
	}
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return &logrusLogger{l: l}
}

// Wrap adapts an already configured logrus.Logger.
func Wrap(l *logrus.Logger) Logger {
	if l == nil {
		return Noop
	}
	return &logrusLogger{l: l}
}

func (g *logrusLogger) Debugf(format string, args ...interface{}) { g.l.Debugf(format, args...) }
func (g *logrusLogger) Infof(format string, args ...interface{})  { g.l.Infof(format, args...) }
func (g *logrusLogger) Warnf(format string, args ...interface{})  { g.l.Warnf(format, args...) }
func (g *logrusLogger) Errorf(format string, args ...interface{}) { g.l.Errorf(format, args...) }

func (g *logrusLogger) SetLevel(level string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	g.l.SetLevel(lvl)
	return nil
}

func (g *logrusLogger) GetLevel() string {
	return g.l.GetLevel().String()
}
