package application

import "sync"

// Notifier signals that a workspace should be re-resolved after an
// asynchronous state change (sign-in completed, organization selected).
// One subscriber per workspace; firing without a subscriber is a no-op and
// events are not queued. The notifier performs no resolution itself.
type Notifier struct {
	mu   sync.Mutex
	subs map[string]func(workspace string)
}

func NewNotifier() *Notifier {
	return &Notifier{subs: make(map[string]func(string))}
}

// Subscribe registers the re-resolution callback for a workspace, replacing
// any previous subscription.
func (n *Notifier) Subscribe(workspace string, fn func(workspace string)) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.subs[workspace] = fn
}

func (n *Notifier) Unsubscribe(workspace string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	delete(n.subs, workspace)
}

// Fire invokes the workspace's subscriber, if any, on the calling
// goroutine.
func (n *Notifier) Fire(workspace string) {
	n.mu.Lock()
	fn := n.subs[workspace]
	n.mu.Unlock()

	if fn != nil {
		fn(workspace)
	}
}
