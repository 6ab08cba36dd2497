package ledger

// Event is a single committed-on-success notification emitted by a
// module operation (asset registered, swap executed, rewards claimed,
// ...). Payload is module-specific and left as a map so every module can
// shape its own event without a central schema registry.
type Event struct {
	Module  string
	Kind    string
	Payload map[string]string
}

// Bus buffers events for the duration of one call and only hands them to
// a sink once the call's Sandbox has committed, matching spec.md §5's
// "events emitted are buffered and committed together with state."
type Bus struct {
	buffered []Event
}

// NewBus returns an empty event bus.
func NewBus() *Bus {
	return &Bus{}
}

// Emit buffers an event. It never fails: losing an event is not a
// reason to abort state-changing work, and the buffer is discarded
// wholesale on rollback anyway.
func (b *Bus) Emit(e Event) {
	b.buffered = append(b.buffered, e)
}

// Drain returns and clears the buffered events, called once the
// Sandbox backing this call has committed.
func (b *Bus) Drain() []Event {
	out := b.buffered
	b.buffered = nil
	return out
}
