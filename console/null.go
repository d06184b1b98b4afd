// Copyright (c) The go-kernel authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package console

type nullConsole struct{}

// Null is a console which discards all output, reads spaces and never counts
// any character.
var Null Console = nullConsole{}

func (nullConsole) WriteChar(_ rune) {}

func (nullConsole) Write(p []byte) (int, error) {
	return len(p), nil
}

func (nullConsole) Flush() {}

func (nullConsole) ReadChar() rune {
	return ' '
}

func (nullConsole) ClearRx() {}

func (nullConsole) CharsWritten() int {
	return 0
}

func (nullConsole) CharsRead() int {
	return 0
}
