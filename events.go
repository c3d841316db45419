package domq

import (
	"github.com/domq/domq/dom"
)

// listenerOpts collapses the optional options parameter; omitted options
// mean a bubble-phase, repeating listener.
func listenerOpts(opts []dom.ListenerOptions) dom.ListenerOptions {
	if len(opts) == 0 {
		return dom.ListenerOptions{}
	}
	return opts[0]
}

// On registers handler for event on every element.
func (s *Selection) On(event string, handler dom.Handler, opts ...dom.ListenerOptions) *Selection {
	o := listenerOpts(opts)
	for _, n := range s.nodes {
		s.doc.AddEventListener(n, event, handler, o)
	}
	return s
}

// Off removes a previously registered handler from every element. The
// capture flag must match the registration for removal to take effect, per
// the host's removal semantics.
func (s *Selection) Off(event string, handler dom.Handler, opts ...dom.ListenerOptions) *Selection {
	o := listenerOpts(opts)
	for _, n := range s.nodes {
		s.doc.RemoveEventListener(n, event, handler, o)
	}
	return s
}

// One registers handler to fire exactly once per element. Registration is
// per element, so firing on one element leaves the one-shot listeners of its
// siblings in place. The deregistration removes only the fired registration,
// keyed by its own listener record, and the handler sees the original event
// object with CurrentTarget bound to the triggering element.
func (s *Selection) One(event string, handler dom.Handler, opts ...dom.ListenerOptions) *Selection {
	o := listenerOpts(opts)
	o.Once = true
	for _, n := range s.nodes {
		s.doc.AddEventListener(n, event, handler, o)
	}
	return s
}
