package vendorreq

import "time"

// Status is the stored lifecycle state of a vendor request. Transitions are
// one-directional: sent -> responded | expired | cancelled, all terminal.
type Status string

const (
	StatusSent      Status = "sent"
	StatusResponded Status = "responded"
	StatusExpired   Status = "expired"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusSent, StatusResponded, StatusExpired, StatusCancelled:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	return s.IsValid() && s != StatusSent
}

// DeriveEffectiveStatus is the single place that decides how an expiry
// timestamp shadows the stored status. A request past its expiry reads as
// expired even when the stored row still says sent; terminal statuses are
// never reinterpreted. Every surface that renders or gates on status must go
// through this derivation.
func DeriveEffectiveStatus(stored Status, expiresAt, now time.Time) Status {
	if stored == StatusSent && now.After(expiresAt) {
		return StatusExpired
	}
	return stored
}
