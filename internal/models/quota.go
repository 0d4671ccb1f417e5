package models

import "fmt"

// MessageLimit is a message ceiling that is either a finite count or
// unlimited. Unlimited is a distinct state, never a sentinel number,
// so it can not leak into arithmetic against finite counts.
type MessageLimit struct {
	Unlimited bool
	Count     int
}

func LimitedMessages(n int) MessageLimit {
	if n < 0 {
		n = 0
	}
	return MessageLimit{Count: n}
}

func UnlimitedMessages() MessageLimit {
	return MessageLimit{Unlimited: true}
}

// GreaterThan reports whether l is a strictly larger ceiling than
// other. Unlimited beats every finite count.
func (l MessageLimit) GreaterThan(other MessageLimit) bool {
	switch {
	case l.Unlimited && other.Unlimited:
		return false
	case l.Unlimited:
		return true
	case other.Unlimited:
		return false
	default:
		return l.Count > other.Count
	}
}

// IsZero reports whether the limit allows no messages at all.
func (l MessageLimit) IsZero() bool {
	return !l.Unlimited && l.Count <= 0
}

func (l MessageLimit) String() string {
	if l.Unlimited {
		return "unlimited"
	}
	return fmt.Sprintf("%d", l.Count)
}
