// Package statekit flattens captured iterator states into a plain serialized
// envelope and rebuilds them from it. The envelope is structural, not
// versioned: round-trip fidelity is promised only within this implementation.
package statekit

import (
	"fmt"

	json "github.com/goccy/go-json"

	"go.llib.dev/resumable/consterr"
	"go.llib.dev/resumable/iterators"
)

// ErrKindMismatch is returned when an envelope gets decoded into a state of a
// different kind than the one it was captured from.
const ErrKindMismatch consterr.Error = "KindMismatch"

// Envelope is the only persisted form of an iterator state.
type Envelope struct {
	Kind string          `json:"kind"`
	Data json.RawMessage `json:"data"`
}

// Marshal flattens a captured state into its envelope form.
func Marshal(s iterators.State) ([]byte, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return json.Marshal(Envelope{Kind: s.Kind(), Data: data})
}

// Unmarshal rebuilds a captured state from its envelope form.
// The target must be a pointer to the concrete state type the envelope was
// captured from; a kind mismatch fails before anything gets written.
func Unmarshal(p []byte, into iterators.State) error {
	var env Envelope
	if err := json.Unmarshal(p, &env); err != nil {
		return err
	}
	if env.Kind != into.Kind() {
		return fmt.Errorf("%w: envelope holds %q, target expects %q", ErrKindMismatch, env.Kind, into.Kind())
	}
	return json.Unmarshal(env.Data, into)
}
