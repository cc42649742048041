package hub

// Observer receives every event the hub broadcasts. Update must never fail
// the command that produced the event: sink faults are reported out-of-band
// by the implementation, not returned.
type Observer interface {
	Update(event Event)
}
