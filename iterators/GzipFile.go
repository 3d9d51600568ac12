package iterators

import (
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
)

// OpenGzip opens a gzip compressed file for reading through a reopenable handle.
// The handle tracks the uncompressed offset it has been consumed to,
// since a compressed stream cannot report one on its own.
func OpenGzip(name string) (*GzipFile, error) {
	raw, err := os.OpenFile(name, os.O_RDONLY, 0)
	if err != nil {
		return nil, err
	}
	zr, err := gzip.NewReader(raw)
	if err != nil {
		_ = raw.Close()
		return nil, err
	}
	return &GzipFile{Raw: raw, Flag: os.O_RDONLY, zr: zr}, nil
}

// GzipFile couples a decompressing reader with the raw file it reads from.
// The open flag belongs to the raw file underneath, not to the gzip wrapper.
type GzipFile struct {
	Raw  *os.File
	Flag int

	zr     *gzip.Reader
	offset int64
}

func (gf *GzipFile) Name() string { return gf.Raw.Name() }

// Tell reports the uncompressed offset consumed so far through Read.
func (gf *GzipFile) Tell() int64 { return gf.offset }

func (gf *GzipFile) Read(p []byte) (int, error) {
	n, err := gf.zr.Read(p)
	gf.offset += int64(n)
	return n, err
}

func (gf *GzipFile) Close() error {
	err := gf.zr.Close()
	if cerr := gf.Raw.Close(); err == nil {
		err = cerr
	}
	return err
}

// Gzip returns an iterator that yields the decompressed lines of a gzip
// compressed file, line terminator included. Snapshots record the uncompressed
// offset; restoring reopens through the decompressing open call and reads
// forward to that offset, as gzip streams cannot seek.
func Gzip(gf *GzipFile) *GzipIter {
	return &GzipIter{GF: gf}
}

// ResumeGzip rebuilds a gzip file iterator from a previously captured state.
func ResumeGzip(state GzipState) (*GzipIter, error) {
	i := &GzipIter{}
	if err := i.RestoreState(state); err != nil {
		return nil, err
	}
	return i, nil
}

type GzipIter struct {
	GF *GzipFile

	closed bool
	done   bool
	err    error
	value  string
}

// GzipState identifies a logical read position within a named gzip file.
// Offset is an uncompressed offset; Flag is the raw file's open flag.
type GzipState struct {
	Name   string `json:"name"`
	Offset int64  `json:"offset"`
	Flag   int    `json:"flag"`
}

func (GzipState) Kind() string { return "gzip" }

func (i *GzipIter) Close() error {
	if i.closed {
		return nil
	}
	i.closed = true
	if i.GF == nil {
		return nil
	}
	return i.GF.Close()
}

func (i *GzipIter) Err() error {
	return i.err
}

func (i *GzipIter) Next() bool {
	if i.closed || i.done || i.err != nil {
		return false
	}
	line, err := readGzipLine(i.GF)
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
	i.value = line
	return true
}

func (i *GzipIter) Value() string {
	return i.value
}

// CaptureState reads the mode from the raw file handle nested inside the
// compression wrapper; the wrapper itself has no reliable one.
func (i *GzipIter) CaptureState() (State, error) {
	return GzipState{Name: i.GF.Name(), Offset: i.GF.Tell(), Flag: i.GF.Flag}, nil
}

// RestoreState reopens the named file through the decompressing open call and
// consumes forward to the captured uncompressed offset. The previously held
// handle, if any, is abandoned rather than closed.
func (i *GzipIter) RestoreState(s State) error {
	state, ok := stateAs[GzipState](s)
	if !ok {
		return fmt.Errorf("%w: %T is not a gzip state", ErrStateMismatch, s)
	}
	gf, err := OpenGzip(state.Name)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrResourceUnavailable, err)
	}
	if _, err := io.CopyN(io.Discard, gf, state.Offset); err != nil {
		_ = gf.Close()
		return fmt.Errorf("%w: %s", ErrResourceUnavailable, err)
	}
	gf.Flag = state.Flag
	i.GF = gf
	i.closed = false
	i.done = false
	i.err = nil
	return nil
}

func (i *GzipIter) handle() io.Reader { return i.GF }

// readGzipLine goes byte by byte: the gzip reader buffers internally,
// and unlike a plain file the stream cannot seek surplus bytes back.
func readGzipLine(gf *GzipFile) (string, error) {
	var line []byte
	var one [1]byte
	for {
		n, err := gf.Read(one[:])
		if 0 < n {
			line = append(line, one[0])
			if one[0] == '\n' {
				return string(line), nil
			}
		}
		if err != nil {
			return string(line), err
		}
	}
}
