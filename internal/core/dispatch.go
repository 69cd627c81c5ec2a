package core

// Handler reacts to a single delivered action.
type Handler func()

// Subscription is the handle returned by Dispatcher.Subscribe.
// Cancelling it detaches the handler; cancelling twice is a no-op.
type Subscription struct {
	d       *Dispatcher
	action  Action
	handler Handler
	active  bool
}

// Active reports whether the subscription still receives actions.
func (s *Subscription) Active() bool {
	return s != nil && s.active
}

// Cancel detaches the handler from its dispatcher.
func (s *Subscription) Cancel() {
	if s == nil || !s.active {
		return
	}
	s.active = false
	s.d.remove(s)
}

// Dispatcher delivers per-frame input actions to subscribed handlers.
// Handlers run in subscription order and may subscribe or cancel freely
// while a dispatch is in progress; changes take effect on the next action.
type Dispatcher struct {
	subs map[Action][]*Subscription
}

// NewDispatcher creates a dispatcher with no subscriptions.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{subs: make(map[Action][]*Subscription)}
}

// Subscribe registers h for action a and returns its handle.
func (d *Dispatcher) Subscribe(a Action, h Handler) *Subscription {
	s := &Subscription{d: d, action: a, handler: h, active: true}
	d.subs[a] = append(d.subs[a], s)
	return s
}

// Dispatch delivers every action set in the frame, in Action order.
func (d *Dispatcher) Dispatch(in InputFrame) {
	for _, a := range in.Actions() {
		// Snapshot so handlers can cancel themselves mid-dispatch.
		snapshot := append([]*Subscription(nil), d.subs[a]...)
		for _, s := range snapshot {
			if s.active {
				s.handler()
			}
		}
	}
}

// Count returns the number of live subscriptions for an action.
func (d *Dispatcher) Count(a Action) int {
	return len(d.subs[a])
}

// CancelAll revokes every subscription.
func (d *Dispatcher) CancelAll() {
	for a, list := range d.subs {
		for _, s := range list {
			s.active = false
		}
		delete(d.subs, a)
	}
}

func (d *Dispatcher) remove(s *Subscription) {
	list := d.subs[s.action]
	for i, other := range list {
		if other == s {
			d.subs[s.action] = append(list[:i:i], list[i+1:]...)
			return
		}
	}
}
