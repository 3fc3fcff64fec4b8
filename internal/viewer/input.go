package viewer

import (
	"github.com/veandco/go-sdl2/sdl"
)

// EventType identifies the kind of input event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventKeyUp
	EventMouseMove
	EventMouseDown
	EventMouseUp
	EventMouseWheel
)

// Event is a single input event drained from the SDL queue.
type Event struct {
	Type   EventType
	Key    sdl.Scancode
	Width  int
	Height int
	MouseX int
	MouseY int
	Button uint8
	WheelY int
}

// Input polls the SDL event queue once per frame and buffers the
// events for the frame's update step.
type Input struct {
	events []Event
}

// NewInput creates an input poller.
func NewInput() *Input {
	return &Input{
		events: make([]Event, 0, 32),
	}
}

// Update drains the SDL event queue. It returns false when a quit
// event was received.
func (in *Input) Update() bool {
	in.events = in.events[:0]
	running := true

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			in.events = append(in.events, Event{Type: EventQuit})
			running = false

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_RESIZED || e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				in.events = append(in.events, Event{
					Type:   EventWindowResize,
					Width:  int(e.Data1),
					Height: int(e.Data2),
				})
			}

		case *sdl.KeyboardEvent:
			t := EventKeyDown
			if e.Type == sdl.KEYUP {
				t = EventKeyUp
			}
			if e.Repeat == 0 || t == EventKeyUp {
				in.events = append(in.events, Event{
					Type: t,
					Key:  e.Keysym.Scancode,
				})
			}

		case *sdl.MouseMotionEvent:
			in.events = append(in.events, Event{
				Type:   EventMouseMove,
				MouseX: int(e.X),
				MouseY: int(e.Y),
			})

		case *sdl.MouseButtonEvent:
			t := EventMouseDown
			if e.Type == sdl.MOUSEBUTTONUP {
				t = EventMouseUp
			}
			in.events = append(in.events, Event{
				Type:   t,
				MouseX: int(e.X),
				MouseY: int(e.Y),
				Button: e.Button,
			})

		case *sdl.MouseWheelEvent:
			in.events = append(in.events, Event{
				Type:   EventMouseWheel,
				WheelY: int(e.Y),
			})
		}
	}

	return running
}

// Events returns the events collected by the last Update call.
func (in *Input) Events() []Event {
	return in.events
}
