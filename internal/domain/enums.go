package domain

// CardState is the lifecycle state of a knowledge card.
type CardState string

const (
	CardStateLoading CardState = "LOADING"
	CardStateReady   CardState = "READY"
	CardStateFailed  CardState = "FAILED"
)

func (s CardState) String() string { return string(s) }

func (s CardState) IsValid() bool {
	switch s {
	case CardStateLoading, CardStateReady, CardStateFailed:
		return true
	}
	return false
}

// Settled reports whether the card has left the Loading state.
func (s CardState) Settled() bool {
	return s == CardStateReady || s == CardStateFailed
}

// StreakOutcome describes what a visit did to the streak.
type StreakOutcome string

const (
	StreakStarted  StreakOutcome = "STARTED"
	StreakKept     StreakOutcome = "KEPT"
	StreakExtended StreakOutcome = "EXTENDED"
	StreakReset    StreakOutcome = "RESET"
)

func (o StreakOutcome) String() string { return string(o) }

// CardEventType names an event published by the card board.
type CardEventType string

const (
	CardEventBatchStarted   CardEventType = "batch.started"
	CardEventBatchCompleted CardEventType = "batch.completed"
	CardEventCreated        CardEventType = "card.created"
	CardEventUpdated        CardEventType = "card.updated"
)

func (t CardEventType) String() string { return string(t) }
