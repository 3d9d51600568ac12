package iterators

import (
	"fmt"
	"io"
	"os"

	json "github.com/goccy/go-json"

	"go.llib.dev/resumable/decoders"
)

// Decode returns an iterator yielding decoded text lines read from an open file
// or gzip compressed file, while staying snapshotable despite the decoder's
// internal buffering. Only the two resource handle types are accepted and
// anything else panics: the raw handle is what carries reopenable identity,
// the decoder itself has none.
//
// The handle is wrapped into its matching resource iterator internally; that
// nested iterator is held for snapshot identity only, the decoder reads the raw
// handle directly.
func Decode(f any, factory decoders.Factory) *DecodeIter {
	if factory == nil {
		panic("TypeError")
	}
	var inner resourceIter
	switch h := f.(type) {
	case *os.File:
		inner = File(h)
	case *GzipFile:
		inner = Gzip(h)
	default:
		panic("TypeError")
	}
	return &DecodeIter{
		Factory: factory,
		inner:   inner,
		dec:     factory(inner.handle()),
	}
}

// ResumeDecode rebuilds a decoding iterator from a previously captured state.
// The decoder factory is re-supplied by the caller, since a function value
// cannot travel inside a serialized state.
func ResumeDecode(state DecodeState, factory decoders.Factory) (*DecodeIter, error) {
	if factory == nil {
		panic("TypeError")
	}
	i := &DecodeIter{Factory: factory}
	if err := i.RestoreState(state); err != nil {
		return nil, err
	}
	return i, nil
}

// resourceIter is the closed set of iterators a DecodeIter can nest:
// the ones whose state re-acquires an actual handle by name.
type resourceIter interface {
	Resumable[string]
	handle() io.Reader
}

type DecodeIter struct {
	Factory decoders.Factory

	inner  resourceIter
	dec    decoders.LineDecoder
	closed bool
	done   bool
	err    error
	value  string
}

// DecodeState nests the resource iterator's state recursively and carries the
// decoder's four buffer fields. Restoring replays the same two steps the
// original construction did: reopen the resource, then re-inflate the decoder.
type DecodeState struct {
	Inner   State
	Decoder decoders.State
}

func (DecodeState) Kind() string { return "decode" }

// decodeStateDTO is the envelope form of DecodeState; the inner state is an
// interface value, so its kind has to travel along for decoding.
type decodeStateDTO struct {
	InnerKind string          `json:"inner_kind"`
	Inner     json.RawMessage `json:"inner"`
	Decoder   decoders.State  `json:"decoder"`
}

func (s DecodeState) MarshalJSON() ([]byte, error) {
	if s.Inner == nil {
		return nil, fmt.Errorf("%w: missing inner state", ErrStateMismatch)
	}
	inner, err := json.Marshal(s.Inner)
	if err != nil {
		return nil, err
	}
	return json.Marshal(decodeStateDTO{
		InnerKind: s.Inner.Kind(),
		Inner:     inner,
		Decoder:   s.Decoder,
	})
}

func (s *DecodeState) UnmarshalJSON(data []byte) error {
	var dto decodeStateDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return err
	}
	switch dto.InnerKind {
	case FileState{}.Kind():
		var inner FileState
		if err := json.Unmarshal(dto.Inner, &inner); err != nil {
			return err
		}
		s.Inner = inner
	case GzipState{}.Kind():
		var inner GzipState
		if err := json.Unmarshal(dto.Inner, &inner); err != nil {
			return err
		}
		s.Inner = inner
	default:
		return fmt.Errorf("%w: unknown inner state kind %q", ErrStateMismatch, dto.InnerKind)
	}
	s.Decoder = dto.Decoder
	return nil
}

func (i *DecodeIter) Close() error {
	if i.closed {
		return nil
	}
	i.closed = true
	if i.inner == nil {
		return nil
	}
	return i.inner.Close()
}

func (i *DecodeIter) Err() error {
	return i.err
}

func (i *DecodeIter) Next() bool {
	if i.closed || i.done || i.err != nil {
		return false
	}
	line, err := i.dec.ReadLine()
	if err == io.EOF {
		i.done = true
		if line == "" {
			return false
		}
		i.value = line
		return true
	}
	if err != nil {
		i.err = err
		return false
	}
	if line == "" {
		i.done = true
		return false
	}
	i.value = line
	return true
}

func (i *DecodeIter) Value() string {
	return i.value
}

// CaptureState captures the nested resource iterator recursively, not
// flattened: its offset is the raw handle's live offset, which already covers
// whatever the decoder has read ahead into its byte buffer.
func (i *DecodeIter) CaptureState() (State, error) {
	inner, err := i.inner.CaptureState()
	if err != nil {
		return nil, err
	}
	return DecodeState{Inner: inner, Decoder: i.dec.State()}, nil
}

// RestoreState first restores the inner resource iterator (reopen and seek),
// then rebuilds a fresh decoder over the reopened handle and overwrites its
// buffers with the captured values.
func (i *DecodeIter) RestoreState(s State) error {
	state, ok := stateAs[DecodeState](s)
	if !ok {
		return fmt.Errorf("%w: %T is not a decode state", ErrStateMismatch, s)
	}
	if i.Factory == nil {
		return fmt.Errorf("%w: missing decoder factory", ErrStateMismatch)
	}
	var inner resourceIter
	switch st := state.Inner.(type) {
	case FileState:
		it, err := ResumeFile(st)
		if err != nil {
			return err
		}
		inner = it
	case *FileState:
		it, err := ResumeFile(*st)
		if err != nil {
			return err
		}
		inner = it
	case GzipState:
		it, err := ResumeGzip(st)
		if err != nil {
			return err
		}
		inner = it
	case *GzipState:
		it, err := ResumeGzip(*st)
		if err != nil {
			return err
		}
		inner = it
	default:
		return fmt.Errorf("%w: %T is not a resource state", ErrStateMismatch, state.Inner)
	}
	dec := i.Factory(inner.handle())
	dec.SetState(state.Decoder)
	i.inner = inner
	i.dec = dec
	i.closed = false
	i.done = false
	i.err = nil
	return nil
}
