// Copyright (c) The go-kernel authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package console

import (
	"unicode/utf8"
)

func sequenceLen(c byte) int {
	switch {
	case c < 0xc2:
		// ASCII, continuation or overlong lead byte
		return 1
	case c < 0xe0:
		return 2
	case c < 0xf0:
		return 3
	case c < 0xf5:
		return 4
	default:
		return 1
	}
}

// DecodeRune assembles a UTF-8 encoded character from the bytes returned by
// next, as received by byte oriented consoles. Invalid sequences decode to
// [utf8.RuneError], next is not invoked past the first invalid byte.
func DecodeRune(next func() byte) rune {
	var buf [utf8.UTFMax]byte

	buf[0] = next()
	n := sequenceLen(buf[0])

	for i := 1; i < n; i++ {
		if buf[i] = next(); utf8.RuneStart(buf[i]) {
			return utf8.RuneError
		}
	}

	r, _ := utf8.DecodeRune(buf[:n])

	return r
}
