package glimpse

import "github.com/cogentcore/webgpu/wgpu"

//go:generate go tool stringer -type=EventType -trimprefix=Event

type EventType int

const (
	// the window wants a new frame
	EventRedraw EventType = iota

	// the framebuffer changed its size, see Event.Width and Event.Height
	EventResize

	// the user asked to close the window
	EventClose
)

type Event struct {
	Type EventType

	// framebuffer size in pixels, only set for EventResize
	Width  uint32
	Height uint32
}

type WindowOptions struct {
	Width  int
	Height int
	Title  string

	// Write a cpu profile of the windows lifetime into the working directory
	Profile bool
}

type Window interface {
	// GetSize returns the size of the framebuffer in pixels
	GetSize() (uint32, uint32)

	SurfaceDescriptor() *wgpu.SurfaceDescriptor

	// Run polls for window events and passes them to handle until handle returns false.
	// A redraw event is emitted once per iteration after all other pending events.
	Run(handle func(ev Event) bool)

	Terminate()
}

// eventQueue collects the events of one poll iteration.
// Consecutive resize events collapse into the most recent one.
type eventQueue struct {
	events []Event
}

func (q *eventQueue) push(ev Event) {
	if n := len(q.events); n > 0 && ev.Type == EventResize && q.events[n-1].Type == EventResize {
		q.events[n-1] = ev
		return
	}

	q.events = append(q.events, ev)
}

// dispatch passes all queued events to handle and clears the queue.
// Returns false as soon as handle does.
func (q *eventQueue) dispatch(handle func(ev Event) bool) bool {
	// handlers may push new events, those are dispatched in the next iteration
	events := q.events
	q.events = nil

	for _, ev := range events {
		if !handle(ev) {
			return false
		}
	}

	return true
}
