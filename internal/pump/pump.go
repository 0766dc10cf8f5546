// Package pump queues window events between native callbacks and the
// application handler.
//
// Native callbacks fire while the platform polls for events, often in the
// middle of a poll. The queue collects them and delivers them afterwards,
// one at a time, so the handler never runs re-entrantly. Redraw requests are
// coalesced per window and delivered after the queued events of the same
// iteration.
package pump

import (
	"github.com/gogpu/gpushell"
	"github.com/gogpu/gpushell/window"
)

type entry struct {
	id window.ID
	ev window.Event
}

// Queue is a single-threaded event queue. The zero value is ready to use.
type Queue struct {
	events  []entry
	redraws []window.ID
	exit    bool
}

// Push appends an event for window id.
func (q *Queue) Push(id window.ID, ev window.Event) {
	q.events = append(q.events, entry{id: id, ev: ev})
}

// RequestRedraw schedules one RedrawRequested for id. Repeated requests
// before delivery collapse into one.
func (q *Queue) RequestRedraw(id window.ID) {
	for _, r := range q.redraws {
		if r == id {
			return
		}
	}
	q.redraws = append(q.redraws, id)
}

// Exit stops delivery. Queued events are dropped.
func (q *Queue) Exit() {
	q.exit = true
	q.events = nil
	q.redraws = nil
}

// Exiting reports whether Exit was called.
func (q *Queue) Exiting() bool { return q.exit }

// Pending reports whether events or redraws are waiting for delivery.
func (q *Queue) Pending() bool {
	return len(q.events) > 0 || len(q.redraws) > 0
}

// ShouldBlock reports whether the loop may block until the platform
// delivers new events.
func (q *Queue) ShouldBlock(flow gpushell.ControlFlow) bool {
	return flow == gpushell.Wait && !q.Pending() && !q.exit
}

// Dispatch delivers queued events in order, then the redraws requested
// before the call. Redraws requested while dispatching wait for the next
// call. Delivery stops as soon as Exit is called.
func (q *Queue) Dispatch(h window.Handler, loop window.ActiveLoop) {
	for len(q.events) > 0 && !q.exit {
		e := q.events[0]
		q.events = q.events[1:]
		h.WindowEvent(loop, e.id, e.ev)
	}
	if q.exit {
		return
	}
	redraws := q.redraws
	q.redraws = nil
	for _, id := range redraws {
		if q.exit {
			return
		}
		h.WindowEvent(loop, id, window.RedrawRequested{})
	}
}
