package service

import "sync"

// NoticeSet remembers keys that were already reported so a repeated warning
// is emitted once until the next Reset. It is shared process-wide and reset
// at the start of every request.
type NoticeSet struct {
	mu   sync.Mutex
	seen map[string]struct{}
}

func NewNoticeSet() *NoticeSet {
	return &NoticeSet{seen: make(map[string]struct{})}
}

// First records key and reports whether this is its first sighting since
// the last Reset. A nil set reports every key as first.
func (n *NoticeSet) First(key string) bool {
	if n == nil {
		return true
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	if _, ok := n.seen[key]; ok {
		return false
	}
	n.seen[key] = struct{}{}
	return true
}

// Reset forgets every recorded key.
func (n *NoticeSet) Reset() {
	if n == nil {
		return
	}
	n.mu.Lock()
	n.seen = make(map[string]struct{})
	n.mu.Unlock()
}

// Len returns the number of keys recorded since the last Reset.
func (n *NoticeSet) Len() int {
	if n == nil {
		return 0
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.seen)
}
