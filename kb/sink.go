package kb

import (
	"time"
)

// Sink accepts key events for injection into the input pipeline.  The
// emission core depends on nothing else.
type Sink interface {
	Send(KeyEvent) error
}

// Injector is the full event sink collaborator: acquisition is performed
// by the constructor, WaitForKeyboard resolves a physical input device,
// and Close releases the underlying driver resource.
type Injector interface {
	Sink
	WaitForKeyboard(timeout time.Duration) (string, error)
	Close() error
}
