// Copyright (c) The go-kernel authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package console

import (
	"io"
	"unicode/utf8"
)

type output struct{}

func (output) Write(p []byte) (int, error) {
	return Current().Write(p)
}

// Output writes to the console active at the time of each write, it is meant
// as [log.SetOutput] target.
var Output io.Writer = output{}

// ReadWriter implements the [io.ReadWriter] interface over the active
// console.
type ReadWriter struct{}

// Read blocks until a character is received and returns its UTF-8 encoding.
func (ReadWriter) Read(p []byte) (n int, err error) {
	var buf [utf8.UTFMax]byte

	if len(p) == 0 {
		return
	}

	n = utf8.EncodeRune(buf[:], Current().ReadChar())

	if n > len(p) {
		return 0, io.ErrShortBuffer
	}

	return copy(p, buf[:n]), nil
}

// Write transmits p over the active console.
func (ReadWriter) Write(p []byte) (int, error) {
	return Current().Write(p)
}
