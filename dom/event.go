package dom

import (
	"reflect"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/html"
)

type eventPhase uint

const (
	noneEventPhase eventPhase = iota
	capturingPhase
	atTargetPhase
	bubblingPhase
)

// Event models the dispatched event object handed to every listener.
// https://dom.whatwg.org/#interface-event
type Event struct {
	Type          string
	Target        *html.Node
	CurrentTarget *html.Node

	phase            eventPhase
	bubbles          bool
	cancelable       bool
	stopped          bool
	stoppedImmediate bool
	defaultPrevented bool
}

// NewEvent builds a bubbling, cancelable event of the given type.
func NewEvent(eventType string) *Event {
	return &Event{Type: eventType, bubbles: true, cancelable: true}
}

// NewEventOpts builds an event with explicit bubbling/cancelable behavior.
func NewEventOpts(eventType string, bubbles, cancelable bool) *Event {
	return &Event{Type: eventType, bubbles: bubbles, cancelable: cancelable}
}

func (e *Event) Bubbles() bool          { return e.bubbles }
func (e *Event) Cancelable() bool       { return e.cancelable }
func (e *Event) DefaultPrevented() bool { return e.defaultPrevented }

// StopPropagation keeps the event from reaching any further node; listeners
// already selected on the current node still run.
func (e *Event) StopPropagation() { e.stopped = true }

// StopImmediatePropagation additionally skips the remaining listeners on the
// current node.
func (e *Event) StopImmediatePropagation() {
	e.stopped = true
	e.stoppedImmediate = true
}

// PreventDefault marks the event canceled when it is cancelable.
func (e *Event) PreventDefault() {
	if e.cancelable {
		e.defaultPrevented = true
	}
}

// Handler is an event callback. The current node is e.CurrentTarget, the
// node the event was dispatched on is e.Target.
type Handler func(*Event)

// ListenerOptions mirror the host listener flags. The zero value is a
// bubble-phase, repeating, non-passive listener.
type ListenerOptions struct {
	Capture bool
	Once    bool
	Passive bool
}

type listener struct {
	eventType string
	fn        Handler
	ptr       uintptr
	opts      ListenerOptions
}

type eventTarget struct {
	listeners []*listener
}

// handlerPtr is the identity used for removal. Go funcs are not comparable,
// so matching is by code pointer; two closures built from the same literal
// share one, so removal takes the oldest matching registration.
func handlerPtr(h Handler) uintptr {
	return reflect.ValueOf(h).Pointer()
}

// AddEventListener registers h for eventType on n. Invocation order follows
// registration order per node. A nil node or handler is ignored.
func (d *Document) AddEventListener(n *html.Node, eventType string, h Handler, opts ListenerOptions) {
	if n == nil || h == nil || eventType == "" {
		return
	}
	t := d.targets[n]
	if t == nil {
		t = &eventTarget{}
		d.targets[n] = t
	}
	t.listeners = append(t.listeners, &listener{
		eventType: eventType,
		fn:        h,
		ptr:       handlerPtr(h),
		opts:      opts,
	})
}

// RemoveEventListener removes the first listener on n matching the event
// type, handler identity and capture flag, the same triple the standard
// removal semantics key on. Options other than Capture are not part of the
// match.
func (d *Document) RemoveEventListener(n *html.Node, eventType string, h Handler, opts ListenerOptions) {
	if n == nil || h == nil {
		return
	}
	t := d.targets[n]
	if t == nil {
		return
	}
	ptr := handlerPtr(h)
	for i, l := range t.listeners {
		if l.eventType == eventType && l.ptr == ptr && l.opts.Capture == opts.Capture {
			t.listeners = append(t.listeners[:i], t.listeners[i+1:]...)
			return
		}
	}
}

// removeListener drops an exact listener record, used for once-listeners so
// only the fired registration disappears.
func (d *Document) removeListener(n *html.Node, l *listener) {
	t := d.targets[n]
	if t == nil {
		return
	}
	for i := range t.listeners {
		if t.listeners[i] == l {
			t.listeners = append(t.listeners[:i], t.listeners[i+1:]...)
			return
		}
	}
}

// Dispatch fires e on n with the three browser phases: capture from the root
// down, at-target, then bubbling back up unless the event does not bubble or
// propagation was stopped. It returns false when a listener called
// PreventDefault on a cancelable event.
func (d *Document) Dispatch(n *html.Node, e *Event) bool {
	if n == nil || e == nil {
		return true
	}
	e.Target = n
	logrus.WithField("event", e.Type).Debugf("[DISPATCH]: %s", TagName(n))

	var path []*html.Node
	for p := n.Parent; p != nil; p = p.Parent {
		path = append(path, p)
	}
	// path is target-outward; capture walks it in reverse.

	e.phase = capturingPhase
	for i := len(path) - 1; i >= 0; i-- {
		d.invoke(path[i], e)
		if e.stopped {
			return !e.defaultPrevented
		}
	}

	e.phase = atTargetPhase
	d.invoke(n, e)
	if e.stopped || !e.bubbles {
		return !e.defaultPrevented
	}

	e.phase = bubblingPhase
	for _, p := range path {
		d.invoke(p, e)
		if e.stopped {
			break
		}
	}
	return !e.defaultPrevented
}

// invoke runs the listeners on one node that apply to the current phase,
// working over a snapshot so listeners may deregister themselves (or each
// other) mid-flight.
func (d *Document) invoke(n *html.Node, e *Event) {
	t := d.targets[n]
	if t == nil {
		return
	}
	snapshot := make([]*listener, len(t.listeners))
	copy(snapshot, t.listeners)

	e.CurrentTarget = n
	for _, l := range snapshot {
		if e.stoppedImmediate {
			return
		}
		if l.eventType != e.Type {
			continue
		}
		switch e.phase {
		case capturingPhase:
			if !l.opts.Capture {
				continue
			}
		case bubblingPhase:
			if l.opts.Capture {
				continue
			}
		}
		if !d.stillRegistered(n, l) {
			continue
		}
		if l.opts.Once {
			d.removeListener(n, l)
		}
		l.fn(e)
	}
}

func (d *Document) stillRegistered(n *html.Node, l *listener) bool {
	t := d.targets[n]
	if t == nil {
		return false
	}
	for _, cur := range t.listeners {
		if cur == l {
			return true
		}
	}
	return false
}
