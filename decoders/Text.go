package decoders

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"go.llib.dev/resumable/consterr"
)

const (
	// Strict makes decode failures surface through ReadLine.
	Strict = "strict"
	// Replace substitutes the replacement character for undecodable input.
	Replace = "replace"
)

// ErrDecode is returned by ReadLine under the Strict policy when the byte
// stream cannot be decoded.
const ErrDecode consterr.Error = "DecodeError"

const defaultChunkSize = 128

// Option configures a decoder produced by Text.
type Option func(*textDecoder)

// WithChunkSize sets how many bytes get pulled from the source per read.
func WithChunkSize(n int) Option {
	return func(d *textDecoder) { d.chunk = n }
}

// WithErrors sets the decode error policy, Strict or Replace.
func WithErrors(policy string) Option {
	return func(d *textDecoder) { d.state.Errors = policy }
}

// Text returns a Factory that decodes the byte stream through the given text
// encoding. The produced decoder keeps all of its internal state in the four
// State fields: before every transform the transformer is reset and fed the
// whole buffered prefix, so a trailing partial character simply stays in the
// byte buffer until more input arrives. This is what keeps mid-character
// snapshots safe.
func Text(enc encoding.Encoding, opts ...Option) Factory {
	return func(r io.Reader) LineDecoder {
		d := &textDecoder{src: r, dec: enc.NewDecoder(), chunk: defaultChunkSize}
		d.state.Errors = Replace
		for _, opt := range opts {
			opt(d)
		}
		return d
	}
}

// UTF8 is the Factory for plain UTF-8 text.
var UTF8 = Text(unicode.UTF8)

type textDecoder struct {
	src   io.Reader
	dec   *encoding.Decoder
	chunk int
	state State
	eof   bool
}

func (d *textDecoder) ReadLine() (string, error) {
	for {
		if 0 < len(d.state.LineBuffer) {
			line := d.state.LineBuffer[0]
			d.state.LineBuffer = d.state.LineBuffer[1:]
			return line, nil
		}
		if d.eof {
			if d.state.CharBuffer != "" {
				line := d.state.CharBuffer
				d.state.CharBuffer = ""
				return line, nil
			}
			return "", io.EOF
		}
		if err := d.fill(); err != nil {
			return "", err
		}
	}
}

func (d *textDecoder) State() State {
	return d.state.clone()
}

func (d *textDecoder) SetState(s State) {
	d.state = s.clone()
	d.eof = false
}

func (d *textDecoder) fill() error {
	buf := make([]byte, d.chunk)
	n, err := d.src.Read(buf)
	if 0 < n {
		d.state.ByteBuffer = append(d.state.ByteBuffer, buf[:n]...)
	}
	switch {
	case err == io.EOF:
		d.eof = true
	case err != nil:
		return err
	}
	return d.decode()
}

func (d *textDecoder) decode() error {
	for 0 < len(d.state.ByteBuffer) {
		d.dec.Reset()
		dst := make([]byte, (len(d.state.ByteBuffer)+1)*utf8.UTFMax)
		nDst, nSrc, err := d.dec.Transform(dst, d.state.ByteBuffer, d.eof)
		if 0 < nDst {
			d.state.CharBuffer += string(dst[:nDst])
		}
		if 0 < nSrc {
			d.state.ByteBuffer = append([]byte(nil), d.state.ByteBuffer[nSrc:]...)
		}
		if err == nil {
			if nSrc == 0 {
				break
			}
			continue
		}
		if err == transform.ErrShortSrc {
			// a partial character stays buffered until more input arrives
			break
		}
		if err == transform.ErrShortDst {
			continue
		}
		if d.state.Errors == Strict {
			d.splitLines()
			return fmt.Errorf("%w: %s", ErrDecode, err)
		}
		d.state.ByteBuffer = append([]byte(nil), d.state.ByteBuffer[1:]...)
		d.state.CharBuffer += string(utf8.RuneError)
	}
	d.splitLines()
	return nil
}

func (d *textDecoder) splitLines() {
	for {
		idx := strings.IndexByte(d.state.CharBuffer, '\n')
		if idx < 0 {
			return
		}
		d.state.LineBuffer = append(d.state.LineBuffer, d.state.CharBuffer[:idx+1])
		d.state.CharBuffer = d.state.CharBuffer[idx+1:]
	}
}
