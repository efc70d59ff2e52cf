package bracken

// pendingSlot is one coalescing slot: empty, or holding the latest raw event
// of its class. Overwriting a filled slot before the next flush discards the
// earlier event — only the most recent raw record per class survives.
//
// This replaces the captured-closure scheme of ad-hoc deferred dispatch with
// an explicit tagged value, consumed and cleared each tick.
type pendingSlot struct {
	filled bool
	raw    RawPointer
}

func (s *pendingSlot) set(raw RawPointer) {
	s.filled = true
	s.raw = raw
}

// take empties the slot and returns its contents. Clearing happens here,
// before any listener runs, so a listener that synchronously produces new
// raw input schedules it for the NEXT flush instead of being clobbered.
func (s *pendingSlot) take() (RawPointer, bool) {
	if !s.filled {
		return RawPointer{}, false
	}
	raw := s.raw
	s.filled = false
	s.raw = RawPointer{}
	return raw, true
}

// pendingSet holds the three deferred event classes. Enter/leave are not
// coalesced; they dispatch immediately at raw-event time.
type pendingSet struct {
	move pendingSlot
	down pendingSlot
	up   pendingSlot
}

func (p *pendingSet) clear() {
	*p = pendingSet{}
}
