// Package notifier fans a refresh signal out to the dashboards' SSE
// connections. A ping only means "the datasets changed, recompute" -
// subscribers re-run their own view build against the current snapshot.
package notifier

import "sync"

// Notifier broadcasts refresh pings to all subscribed connections.
type Notifier struct {
	mu   sync.RWMutex
	subs map[chan struct{}]struct{}
}

// New creates an empty Notifier.
func New() *Notifier {
	return &Notifier{subs: make(map[chan struct{}]struct{})}
}

// Subscribe registers a listener. Callers must Unsubscribe when their
// connection closes, or the channel leaks.
func (n *Notifier) Subscribe() chan struct{} {
	ch := make(chan struct{}, 1)
	n.mu.Lock()
	n.subs[ch] = struct{}{}
	n.mu.Unlock()
	return ch
}

// Unsubscribe removes and closes a listener channel.
func (n *Notifier) Unsubscribe(ch chan struct{}) {
	n.mu.Lock()
	delete(n.subs, ch)
	n.mu.Unlock()
	close(ch)
}

// Broadcast pings every listener without blocking; a listener whose
// buffer is full already has a pending refresh and will catch up.
func (n *Notifier) Broadcast() {
	n.mu.RLock()
	defer n.mu.RUnlock()
	for ch := range n.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
