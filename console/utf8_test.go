// Copyright (c) The go-kernel authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package console

import (
	"testing"
	"unicode/utf8"
)

func TestDecodeRune(t *testing.T) {
	for _, tt := range []struct {
		in   []byte
		want rune
		used int
	}{
		{[]byte("a"), 'a', 1},
		{[]byte("é"), 'é', 2},
		{[]byte("€"), '€', 3},
		{[]byte("😀"), '😀', 4},
		{[]byte{0xa9}, utf8.RuneError, 1},
		{[]byte{0xc3, 'a'}, utf8.RuneError, 2},
		{[]byte{0xe0, 0x80, 0x80}, utf8.RuneError, 3},
		{[]byte{0xff}, utf8.RuneError, 1},
	} {
		var used int

		r := DecodeRune(func() byte {
			c := tt.in[used]
			used++
			return c
		})

		if r != tt.want || used != tt.used {
			t.Fatalf("% x: got %q (%d bytes), want %q (%d bytes)", tt.in, r, used, tt.want, tt.used)
		}
	}
}
