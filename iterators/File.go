package iterators

import (
	"bytes"
	"fmt"
	"io"
	"os"
)

// File returns an iterator that yields the lines of an already open file,
// line terminator included. The iterator can be snapshot at any point:
// the captured state is the file name, the handle's byte offset and the open flag,
// which together suffice to reopen an equivalent handle at the same read point.
func File(f *os.File) *FileIter {
	return &FileIter{F: f, Flag: os.O_RDONLY}
}

// ResumeFile rebuilds a file iterator from a previously captured state,
// reopening the named file and seeking to the captured offset.
func ResumeFile(state FileState) (*FileIter, error) {
	i := &FileIter{}
	if err := i.RestoreState(state); err != nil {
		return nil, err
	}
	return i, nil
}

type FileIter struct {
	F *os.File
	// Flag is the flag the file name gets reopened with on restore.
	Flag int

	closed bool
	done   bool
	err    error
	value  string
}

// FileState identifies a logical read position within a named file.
// The handle itself is disposable; Name, Offset and Flag rebuild an equivalent one.
type FileState struct {
	Name   string `json:"name"`
	Offset int64  `json:"offset"`
	Flag   int    `json:"flag"`
}

func (FileState) Kind() string { return "file" }

func (i *FileIter) Close() error {
	if i.closed {
		return nil
	}
	i.closed = true
	if i.F == nil {
		return nil
	}
	return i.F.Close()
}

func (i *FileIter) Err() error {
	return i.err
}

func (i *FileIter) Next() bool {
	if i.closed || i.done || i.err != nil {
		return false
	}
	line, err := readLine(i.F)
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

func (i *FileIter) Value() string {
	return i.value
}

// CaptureState reads the live handle offset,
// so it must run before any further consumption.
func (i *FileIter) CaptureState() (State, error) {
	offset, err := i.F.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, err
	}
	return FileState{Name: i.F.Name(), Offset: offset, Flag: i.Flag}, nil
}

// RestoreState re-acquires the resource by reopening the captured name and
// seeking to the captured offset. The previously held handle, if any, is
// abandoned rather than closed; closing it stays the caller's responsibility.
func (i *FileIter) RestoreState(s State) error {
	state, ok := stateAs[FileState](s)
	if !ok {
		return fmt.Errorf("%w: %T is not a file state", ErrStateMismatch, s)
	}
	f, err := os.OpenFile(state.Name, state.Flag, 0)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrResourceUnavailable, err)
	}
	if _, err := f.Seek(state.Offset, io.SeekStart); err != nil {
		_ = f.Close()
		return fmt.Errorf("%w: %s", ErrResourceUnavailable, err)
	}
	i.F = f
	i.Flag = state.Flag
	i.closed = false
	i.done = false
	i.err = nil
	return nil
}

func (i *FileIter) handle() io.Reader { return i.F }

// readLine reads a single line, terminator included, without leaving the handle
// positioned past the returned bytes: the surplus of each chunk is seeked back.
// Keeping the handle offset equal to the logical offset is what makes the
// captured offset valid, also for the decoded-stream iterator nesting this one.
func readLine(f *os.File) (string, error) {
	var line []byte
	buf := make([]byte, 128)
	for {
		n, err := f.Read(buf)
		if 0 < n {
			if idx := bytes.IndexByte(buf[:n], '\n'); 0 <= idx {
				line = append(line, buf[:idx+1]...)
				if surplus := int64(n - (idx + 1)); 0 < surplus {
					if _, serr := f.Seek(-surplus, io.SeekCurrent); serr != nil {
						return string(line), serr
					}
				}
				return string(line), nil
			}
			line = append(line, buf[:n]...)
		}
		if err != nil {
			return string(line), err
		}
	}
}
