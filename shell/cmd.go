// Copyright (c) The go-kernel authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package shell

import (
	"bytes"
	"fmt"
	"regexp"
	"sort"
	"text/tabwriter"
)

// CmdFn represents a command handler.
type CmdFn func(iface *Interface, arg []string) (res string, err error)

// Cmd represents a shell command.
type Cmd struct {
	// Name is matched against the input line when Pattern is nil
	Name string
	// Args is the number of Pattern submatches passed to Fn
	Args int
	// Pattern is the optional command syntax
	Pattern *regexp.Regexp
	// Syntax is the argument description shown in help
	Syntax string
	// Help is the command description
	Help string
	// Fn is the command handler
	Fn CmdFn
}

var cmds = make(map[string]*Cmd)

// Add registers a shell command, replacing any existing command with the
// same name.
func Add(cmd Cmd) {
	cmds[cmd.Name] = &cmd
}

// Help returns the list of registered commands.
func (iface *Interface) Help(_ *Interface, _ []string) (string, error) {
	var names []string
	var buf bytes.Buffer

	for name := range cmds {
		names = append(names, name)
	}

	sort.Strings(names)

	t := tabwriter.NewWriter(&buf, 16, 8, 0, '\t', tabwriter.TabIndent)

	for _, name := range names {
		cmd := cmds[name]
		fmt.Fprintf(t, "%s\t%s\t # %s\n", cmd.Name, cmd.Syntax, cmd.Help)
	}

	t.Flush()

	return buf.String(), nil
}
