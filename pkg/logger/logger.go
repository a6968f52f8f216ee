// SPDX-FileCopyrightText: 2025 OOMOL, Inc. <https://www.oomol.com>
// SPDX-License-Identifier: MPL-2.0

package logger

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"
)

const logCount = 5

var (
	csMu sync.Mutex
	cs   = make([]*Context, 0, 2)
)

// New creates a new log file in p named n.log, rotating older logs to n.2.log ... n.5.log
func New(p, n string) (*Context, error) {
	c := &Context{
		path: p,
		name: n,
	}
	if err := c.createLog(); err != nil {
		return nil, err
	}

	csMu.Lock()
	cs = append(cs, c)
	csMu.Unlock()

	return c, nil
}

// Discard returns a logger that drops every message.
//
// Used when the audit log cannot be created, the copy itself must not depend on it.
func Discard() *Context {
	return &Context{
		syncWriter: syncWriter{
			w: io.Discard,
		},
	}
}

func CloseAll() {
	csMu.Lock()
	defer csMu.Unlock()

	for _, c := range cs {
		c.closeFile()
	}
	cs = cs[:0]
}

type syncWriter struct {
	m    sync.Mutex
	w    io.Writer
	file *os.File
}

func (w *syncWriter) write(b []byte) (n int, err error) {
	w.m.Lock()
	defer w.m.Unlock()
	return w.w.Write(b)
}

func (w *syncWriter) sync() {
	w.m.Lock()
	defer w.m.Unlock()
	if w.file != nil {
		_ = w.file.Sync()
	}
}

func (w *syncWriter) closeFile() {
	w.m.Lock()
	defer w.m.Unlock()
	if w.file == nil {
		return
	}
	_ = w.file.Sync()
	_ = w.file.Close()
	w.file = nil
	w.w = io.Discard
}

type Context struct {
	path string
	name string
	syncWriter
}

func (c *Context) createLog() error {
	for i := logCount - 1; i > 0; i-- {
		logName := c.name
		if i > 1 {
			logName += "." + strconv.Itoa(i)
		}
		logPath := filepath.Join(c.path, logName+".log")

		if _, err := os.Stat(logPath); err == nil {
			err := os.Rename(logPath, filepath.Join(c.path, c.name+"."+strconv.Itoa(i+1)+".log"))
			if err != nil {
				return fmt.Errorf("cannot rename log file: %v", err)
			}
		}

		if i == 1 {
			f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_RDWR|os.O_TRUNC, 0644)
			if err != nil {
				return fmt.Errorf("cannot open log file: %v", err)
			}
			c.file = f
			c.w = f
		}
	}
	return nil
}

// File returns the path of the current log file, or "" for a discarding logger.
func (c *Context) File() string {
	if c.path == "" {
		return ""
	}
	return filepath.Join(c.path, c.name+".log")
}

func (c *Context) base(t, message string) {
	d := time.Now().Format("2006-01-02 15:04:05.000")
	tag := ""
	if t != "" {
		tag = fmt.Sprintf("[%s]: ", t)
	}

	_, _ = c.write([]byte(fmt.Sprintf("%s %s%s\n", d, tag, message)))
}

func (c *Context) Raw(message string) {
	c.base("", message)
}

func (c *Context) Rawf(format string, args ...any) {
	c.Raw(fmt.Sprintf(format, args...))
}

func (c *Context) Info(message string) {
	c.base("INFO", message)
}

func (c *Context) Infof(format string, args ...any) {
	c.Info(fmt.Sprintf(format, args...))
}

func (c *Context) Warn(message string) {
	c.base("WARN", message)
	c.sync()
}

func (c *Context) Warnf(format string, args ...any) {
	c.Warn(fmt.Sprintf(format, args...))
}

func (c *Context) Error(message string) error {
	c.base("ERROR", message)
	c.sync()
	return errors.New(message)
}

func (c *Context) Errorf(format string, args ...any) error {
	return c.Error(fmt.Sprintf(format, args...))
}

func (c *Context) Close() {
	c.closeFile()

	csMu.Lock()
	defer csMu.Unlock()
	for i, context := range cs {
		if context == c {
			cs = append(cs[:i], cs[i+1:]...)
			break
		}
	}
}
