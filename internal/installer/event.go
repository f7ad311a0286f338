package installer

// EventType represents the type of installer event.
type EventType int

const (
	// EventNotFound is emitted when the source include directory is missing.
	EventNotFound EventType = iota
	// EventMkdir is emitted for each destination directory that is created.
	EventMkdir
	// EventCopy is emitted before each file copy.
	EventCopy
	// EventPatch is emitted after the header patch.
	EventPatch
)

func (t EventType) String() string {
	switch t {
	case EventNotFound:
		return "not-found"
	case EventMkdir:
		return "mkdir"
	case EventCopy:
		return "copy"
	case EventPatch:
		return "patch"
	default:
		return "unknown"
	}
}

// Event represents an installer event for progress reporting.
type Event struct {
	Type         EventType
	Path         string // source root (EventNotFound), directory (EventMkdir) or header (EventPatch)
	Src          string // source file (EventCopy)
	Dst          string // destination file (EventCopy)
	Replacements int    // rewritten occurrences (EventPatch)
}

// EventHandler is a callback for installer events.
type EventHandler func(event Event)
