package core

import "time"

// Sound identifies a short sound effect owned by the presentation layer.
type Sound int

const (
	SoundCoin   Sound = iota // Played on a win
	SoundImpact              // Played on a kill and on a loss
)

// String returns the asset-facing name of the sound.
func (s Sound) String() string {
	switch s {
	case SoundCoin:
		return "coin"
	case SoundImpact:
		return "impact"
	default:
		return "unknown"
	}
}

// EventKind classifies a presentation event emitted by a game tick.
type EventKind int

const (
	EventMusicStart EventKind = iota
	EventMusicStop
	EventSound
	EventGameEnd
)

// Event is a side effect requested by game logic and carried out by the
// platform. Games never touch audio or timers directly.
type Event struct {
	Kind    EventKind
	Sound   Sound         // Set for EventSound
	Outcome Outcome       // Set for EventGameEnd
	Hold    time.Duration // How long the final frame stays up (EventGameEnd)
}

// PlaySound builds a sound effect event.
func PlaySound(s Sound) Event {
	return Event{Kind: EventSound, Sound: s}
}

// EndGame builds a game end event.
func EndGame(o Outcome, hold time.Duration) Event {
	return Event{Kind: EventGameEnd, Outcome: o, Hold: hold}
}

// FindEnd returns the game end event in events, if any.
func FindEnd(events []Event) (Event, bool) {
	for _, e := range events {
		if e.Kind == EventGameEnd {
			return e, true
		}
	}
	return Event{}, false
}
