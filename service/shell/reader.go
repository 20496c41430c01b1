package shell

import (
	"bufio"
	"errors"
	"io"
)

// MaxLineLength is the longest accepted command line in bytes
const MaxLineLength = 4096

// input is one line read from the session input
type input struct {
	text    string
	tooLong bool
	err     error
}

// readLines sends every line of r to lines until end of input, a read error or done is closed.
// Lines over limit are truncated and flagged; the channel is closed on return.
func readLines(r io.Reader, limit int, lines chan<- *input, done <-chan struct{}) {
	defer close(lines)
	reader := bufio.NewReader(r)
	for {
		item, eof := readLine(reader, limit)
		if item != nil {
			select {
			case lines <- item:
			case <-done:
				return
			}
		}
		if eof {
			return
		}
	}
}

// readLine reads a single line; eof is set once no more input follows
func readLine(reader *bufio.Reader, limit int) (item *input, eof bool) {
	var buf []byte
	tooLong := false
	read := false
	for {
		fragment, isPrefix, err := reader.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				if read {
					return &input{text: string(buf), tooLong: tooLong}, true
				}
				return nil, true
			}
			return &input{err: err}, true
		}
		read = true
		if !tooLong {
			if len(buf)+len(fragment) > limit {
				tooLong = true
				buf = buf[:0]
			} else {
				buf = append(buf, fragment...)
			}
		}
		if !isPrefix {
			return &input{text: string(buf), tooLong: tooLong}, false
		}
	}
}
