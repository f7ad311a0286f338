package ui

import (
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/terassyi/ippmingw/internal/installer"
)

// ConsoleReporter writes installer events as plain diagnostic lines:
//
//	Copying <src> -> <dst>
//	IPP's not found at <path>
//
// Directory creation and the header patch are logged instead of printed.
type ConsoleReporter struct {
	w     io.Writer
	style *Style
}

// NewConsoleReporter creates a reporter writing to w.
func NewConsoleReporter(w io.Writer) *ConsoleReporter {
	return &ConsoleReporter{
		w:     w,
		style: NewStyle(),
	}
}

// HandleEvent prints or logs a single event.
func (r *ConsoleReporter) HandleEvent(event installer.Event) {
	switch event.Type {
	case installer.EventNotFound:
		fmt.Fprintf(r.w, "%s\n", r.style.Warn.Sprintf("IPP's not found at %s", event.Path))
	case installer.EventCopy:
		fmt.Fprintf(r.w, "Copying %s %s %s\n",
			r.style.Path.Sprint(event.Src),
			r.style.Arrow.Sprint("->"),
			r.style.Path.Sprint(event.Dst),
		)
	case installer.EventMkdir:
		slog.Info("created directory", "path", event.Path)
	case installer.EventPatch:
		slog.Info("patched header", "path", event.Path, "replacements", event.Replacements)
	}
}

// Recorder collects installer events in order.
type Recorder struct {
	mu     sync.Mutex
	events []installer.Event
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// HandleEvent appends the event.
func (r *Recorder) HandleEvent(event installer.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

// Events returns a copy of the recorded events.
func (r *Recorder) Events() []installer.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]installer.Event, len(r.events))
	copy(out, r.events)
	return out
}

// OfType returns the recorded events of type t.
func (r *Recorder) OfType(t installer.EventType) []installer.Event {
	var out []installer.Event
	for _, e := range r.Events() {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}
