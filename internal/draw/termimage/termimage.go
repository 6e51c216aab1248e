/*
Adapted from github.com/BourgeoisBear/rasterm

# MIT License

# Copyright (c) 2021 Jason Stewart

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in all
copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
SOFTWARE.
*/
package termimage

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"strings"
)

// ErrTerminalUnsupported is an error indicating that the current terminal is not
// supported.
var ErrTerminalUnsupported = fmt.Errorf("terminal unsupported")

const chunkSize = 4096

// Supported reports whether the terminal described by the environment
// understands the kitty graphics protocol.
func Supported(getenv func(string) string) bool {
	return strings.ToLower(getenv("TERM")) == "xterm-kitty" || getenv("KITTY_WINDOW_ID") != ""
}

// WriteImage writes the image m to w at the cursor, using whatever protocol
// is detected as supported by the current terminal.
//
// If no supported protocol is detected for the current terminal, the sentinel
// error ErrTerminalUnsupported is returned.
func WriteImage(w io.Writer, m image.Image) error {
	if !Supported(os.Getenv) {
		return ErrTerminalUnsupported
	}

	return writeKitty(w, m)
}

func writeKitty(w io.Writer, m image.Image) error {
	var buf bytes.Buffer
	enc := base64.NewEncoder(base64.StdEncoding, &buf)
	if err := png.Encode(enc, m); err != nil {
		return fmt.Errorf("failed to encode image: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to encode image: %w", err)
	}

	initialCodes := []byte(fmt.Sprintf("a=T,f=100,s=%d,v=%d,",
		m.Bounds().Dx(), m.Bounds().Dy()))

	for buf.Len() > 0 {
		more := []byte("m=1;")
		if buf.Len() <= chunkSize {
			more = []byte("m=0;")
		}

		_, err := w.Write(bytes.Join([][]byte{
			[]byte("\x1b_G"),
			initialCodes,
			more,
			buf.Next(chunkSize),
			[]byte("\x1b\\"),
		}, nil))
		if err != nil {
			return fmt.Errorf("write failed: %w", err)
		}

		initialCodes = nil
	}

	if _, err := fmt.Fprintln(w); err != nil {
		return fmt.Errorf("write failed: %w", err)
	}

	return nil
}
