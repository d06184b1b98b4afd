// Copyright (c) The go-kernel authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

// Package cmd implements the kernel diagnostic shell commands, registered on
// import.
package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"regexp"
	"runtime"
	"runtime/debug"

	"github.com/usbarmory/go-kernel/clock"
	"github.com/usbarmory/go-kernel/console"
	"github.com/usbarmory/go-kernel/driver"
	"github.com/usbarmory/go-kernel/kernel"
	"github.com/usbarmory/go-kernel/shell"
)

var errNoClock = errors.New("no system clock registered")

func init() {
	shell.Add(shell.Cmd{
		Name: "build",
		Help: "build information",
		Fn:   buildInfoCmd,
	})

	shell.Add(shell.Cmd{
		Name:    "exit, quit",
		Args:    1,
		Pattern: regexp.MustCompile(`^(exit|quit)$`),
		Help:    "close session",
		Fn:      exitCmd,
	})

	shell.Add(shell.Cmd{
		Name: "stack",
		Help: "goroutine stack trace (current)",
		Fn:   stackCmd,
	})

	shell.Add(shell.Cmd{
		Name: "uptime",
		Help: "show how long the system has been running",
		Fn:   uptimeCmd,
	})

	shell.Add(shell.Cmd{
		Name: "clock",
		Help: "system clock frequency and range",
		Fn:   clockCmd,
	})

	shell.Add(shell.Cmd{
		Name:    "spin",
		Args:    1,
		Pattern: regexp.MustCompile(`^spin (\S+)$`),
		Syntax:  "<duration>",
		Help:    "busy wait on the system clock (e.g. 1.5s, 250ms)",
		Fn:      spinCmd,
	})

	shell.Add(shell.Cmd{
		Name: "drivers",
		Help: "list registered drivers",
		Fn:   driversCmd,
	})

	shell.Add(shell.Cmd{
		Name: "stats",
		Help: "console statistics",
		Fn:   statsCmd,
	})

	// The following commands are board specific, therefore their Fn
	// pointers are defined elsewhere in the respective target files.

	shell.Add(shell.Cmd{
		Name: "info",
		Help: "device information",
		Fn:   infoCmd,
	})
}

func buildInfoCmd(_ *shell.Interface, _ []string) (string, error) {
	var res bytes.Buffer

	fmt.Fprintf(&res, "%s version %s (%s)\n", kernel.Name, kernel.Revision, kernel.Build)

	if bi, ok := debug.ReadBuildInfo(); ok {
		res.WriteString(bi.String())
	}

	return res.String(), nil
}

func exitCmd(_ *shell.Interface, _ []string) (string, error) {
	return fmt.Sprintf("Goodbye from %s/%s", runtime.GOOS, runtime.GOARCH), io.EOF
}

func stackCmd(_ *shell.Interface, _ []string) (string, error) {
	return string(debug.Stack()), nil
}

func uptimeCmd(_ *shell.Interface, _ []string) (string, error) {
	return clock.Uptime().String(), nil
}

func clockCmd(_ *shell.Interface, _ []string) (string, error) {
	var res bytes.Buffer

	c := clock.System()

	if c == nil {
		return "", errNoClock
	}

	fmt.Fprintf(&res, "Frequency ....: %d Hz\n", c.Frequency())
	fmt.Fprintf(&res, "Resolution ...: %s\n", c.Resolution())
	fmt.Fprintf(&res, "Max duration .: %s", c.MaxDuration())

	return res.String(), nil
}

func spinCmd(_ *shell.Interface, arg []string) (string, error) {
	d, err := clock.ParseDuration(arg[0])

	if err != nil {
		return "", fmt.Errorf("invalid duration, %v", err)
	}

	c := clock.System()

	if c == nil {
		return "", errNoClock
	}

	if _, err = c.Ticks(d); err != nil {
		return "", fmt.Errorf("cannot spin for %s, %v", d, err)
	}

	start := c.Uptime()
	c.SpinFor(d)

	return fmt.Sprintf("spun from %s to %s", start, c.Uptime()), nil
}

func driversCmd(_ *shell.Interface, _ []string) (string, error) {
	var res bytes.Buffer

	driver.Default().Enumerate(func(n int, d driver.Descriptor) {
		fmt.Fprintf(&res, "%d. %s\n", n, d.Driver.Compatible())
	})

	if res.Len() == 0 {
		return "no drivers registered", nil
	}

	return res.String(), nil
}

func statsCmd(_ *shell.Interface, _ []string) (string, error) {
	c := console.Current()
	return fmt.Sprintf("Chars written: %d, read: %d", c.CharsWritten(), c.CharsRead()), nil
}
