package amps

import "sync"

// monitor tracks which amplifiers of a threaded network wait for input and
// how many signals are between a sender and its receiver. When every live
// amplifier waits and nothing is in flight, no one can make progress.
type monitor struct {
	mu       sync.Mutex
	waiting  []bool
	exited   int
	inflight int
	wake     chan struct{}
}

func newMonitor(n int) *monitor {
	return &monitor{
		waiting: make([]bool, n),
		wake:    make(chan struct{}, 1),
	}
}

func (m *monitor) notify() {
	select {
	case m.wake <- struct{}{}:
	default:
	}
}

// await marks amplifier i as blocked on its inbound link.
func (m *monitor) await(i int) {
	m.mu.Lock()
	m.waiting[i] = true
	m.mu.Unlock()
	m.notify()
}

// received is called by amplifier i, or by the driver with i < 0, after a
// receive. ok reports whether a signal was taken.
func (m *monitor) received(i int, ok bool) {
	m.mu.Lock()
	if i >= 0 {
		m.waiting[i] = false
	}
	if ok {
		m.inflight--
	}
	m.mu.Unlock()
}

// sending is called before a signal is offered to a receiver.
func (m *monitor) sending() {
	m.mu.Lock()
	m.inflight++
	m.mu.Unlock()
}

func (m *monitor) exit(i int) {
	m.mu.Lock()
	m.waiting[i] = false
	m.exited++
	m.mu.Unlock()
	m.notify()
}

// starved reports the first waiting amplifier if the network can not make
// progress. pending is the number of signals the driver still holds.
func (m *monitor) starved(pending int) (int, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if pending > 0 || m.inflight != 0 {
		return 0, false
	}
	live := len(m.waiting) - m.exited
	if live == 0 {
		return 0, false
	}
	first := -1
	waiting := 0
	for i, w := range m.waiting {
		if !w {
			continue
		}
		waiting++
		if first < 0 {
			first = i
		}
	}
	if waiting < live {
		return 0, false
	}
	return first, true
}
