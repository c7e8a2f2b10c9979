package editor

import "time"

// Notification is a short message for the UI to show until Expires.
type Notification struct {
	Text    string
	Expires time.Time
}

// Notifications is a queue of messages that expire after a fixed TTL.
type Notifications struct {
	ttl   time.Duration
	items []Notification
}

// Push adds a message that expires ttl after now.
func (n *Notifications) Push(text string, now time.Time) {
	n.items = append(n.items, Notification{Text: text, Expires: now.Add(n.ttl)})
}

// Active drops expired messages and returns the rest, oldest first.
func (n *Notifications) Active(now time.Time) []Notification {
	kept := n.items[:0]
	for _, it := range n.items {
		if now.Before(it.Expires) {
			kept = append(kept, it)
		}
	}
	n.items = kept
	return kept
}
