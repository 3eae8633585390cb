package speech

import (
	"errors"
	"strings"
	"sync"
)

// Transcriber states.
type State int

const (
	StateIdle State = iota
	StateListening
)

// ErrUnsupported reports that the runtime has no recognition capability;
// callers fall back to the typed-input path. Detected once at construction,
// carried as data rather than re-checked per call.
var ErrUnsupported = errors.New("speech recognition unsupported")

// ErrNotListening rejects fragments pushed outside a recording window.
var ErrNotListening = errors.New("transcriber is not listening")

// Fragment is one recognition result. Interim fragments are transient and
// replaced by the next fragment; final fragments accumulate permanently.
type Fragment struct {
	Text  string `json:"text"`
	Final bool   `json:"isFinal"`
}

// Transcriber maintains the idle/listening state machine and the
// accumulated transcript buffer for one recognition stream.
type Transcriber struct {
	mu        sync.Mutex
	supported bool
	state     State
	final     strings.Builder
	interim   string
}

// NewTranscriber carries the capability-detection result decided at
// startup.
func NewTranscriber(supported bool) *Transcriber {
	return &Transcriber{supported: supported}
}

// Supported reports the capability flag.
func (t *Transcriber) Supported() bool { return t.supported }

// State returns the current state.
func (t *Transcriber) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Start transitions idle to listening and clears any previous buffer.
func (t *Transcriber) Start() error {
	if !t.supported {
		return ErrUnsupported
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.state = StateListening
	t.final.Reset()
	t.interim = ""
	return nil
}

// Push records one fragment while listening. Finals append to the
// accumulated buffer; an interim replaces the previous interim.
func (t *Transcriber) Push(f Fragment) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state != StateListening {
		return ErrNotListening
	}

	if f.Final {
		t.final.WriteString(f.Text)
		t.interim = ""
	} else {
		t.interim = f.Text
	}
	return nil
}

// Transcript returns the accumulated finals plus the pending interim.
func (t *Transcriber) Transcript() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.final.String() + t.interim
}

// Stop transitions to idle, discards the pending interim, and returns the
// accumulated final text.
func (t *Transcriber) Stop() string {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.state = StateIdle
	t.interim = ""
	return t.final.String()
}

// Fail transitions to idle on a fatal recognition error or the stream's own
// end-of-stream signal. The accumulated finals survive.
func (t *Transcriber) Fail() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.state = StateIdle
	t.interim = ""
}
