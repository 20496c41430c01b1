package event

import "sync"

// Listener receives events synchronously, in emission order
type Listener func(*Event)

// Publisher fans events out to its listeners
type Publisher struct {
	listeners []Listener
}

func NewPublisher(listeners ...Listener) *Publisher {
	ret := &Publisher{}
	for _, l := range listeners {
		ret.Subscribe(l)
	}
	return ret
}

// Subscribe registers a listener; nil listeners are ignored
func (p *Publisher) Subscribe(listener Listener) {
	if listener == nil {
		return
	}
	p.listeners = append(p.listeners, listener)
}

// Publish delivers the event to every listener
func (p *Publisher) Publish(e *Event) {
	if p == nil {
		return
	}
	for _, l := range p.listeners {
		l(e)
	}
}

// Recorder captures events, typically in tests
type Recorder struct {
	mux    sync.Mutex
	events []*Event
}

// Listen implements Listener
func (r *Recorder) Listen(e *Event) {
	r.mux.Lock()
	defer r.mux.Unlock()
	r.events = append(r.events, e)
}

// Events returns all captured events
func (r *Recorder) Events() []*Event {
	r.mux.Lock()
	defer r.mux.Unlock()
	return append([]*Event(nil), r.events...)
}

// Of returns captured events of the given kinds
func (r *Recorder) Of(kinds ...Kind) []*Event {
	var ret []*Event
	for _, e := range r.Events() {
		for _, k := range kinds {
			if e.Kind == k {
				ret = append(ret, e)
				break
			}
		}
	}
	return ret
}

// Reset drops captured events
func (r *Recorder) Reset() {
	r.mux.Lock()
	defer r.mux.Unlock()
	r.events = nil
}
