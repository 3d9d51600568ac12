// Package decoders provide snapshotable line decoders for byte streams.
//
// A LineDecoder converts a raw byte stream into decoded text lines while keeping
// the whole of its internal read-ahead inside the four fields of State.
// That is what makes a decoding iterator restorable: reopen the raw handle,
// build a fresh decoder over it with the same factory, then overwrite the four
// fields with the captured values.
package decoders

import "io"

// State is the complete internal state of a LineDecoder.
// A substituted decoder implementation must externalize its buffering into
// exactly these four fields under these semantics for capture/restore to hold.
type State struct {
	// ByteBuffer holds bytes read from the source but not yet decoded,
	// including a trailing partial character split across a read boundary.
	ByteBuffer []byte `json:"byte_buffer"`
	// CharBuffer holds decoded text that does not yet form a complete line.
	CharBuffer string `json:"char_buffer"`
	// LineBuffer holds complete decoded lines not yet handed out by ReadLine.
	LineBuffer []string `json:"line_buffer"`
	// Errors is the decode error policy, Strict or Replace.
	Errors string `json:"errors"`
}

// clone detaches the mutable buffer fields,
// so a captured State stays untouched by further reads.
func (s State) clone() State {
	if s.ByteBuffer != nil {
		s.ByteBuffer = append([]byte(nil), s.ByteBuffer...)
	}
	if s.LineBuffer != nil {
		s.LineBuffer = append([]string(nil), s.LineBuffer...)
	}
	return s
}

// LineDecoder is a stateful decoder with line based reading.
type LineDecoder interface {
	// ReadLine returns the next decoded line, terminator included.
	// An empty line together with io.EOF signals the end of the stream.
	ReadLine() (string, error)
	// State returns the decoder's complete internal state.
	State() State
	// SetState overwrites the decoder's internal state.
	SetState(State)
}

// Factory builds a LineDecoder over a raw byte stream handle.
type Factory func(io.Reader) LineDecoder
