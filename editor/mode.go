package editor

import "fmt"

// Mode is the active editing mode. Exactly one mode is active at a time.
type Mode uint8

const (
	ModeNormal Mode = iota
	ModeInsert
	ModeVisual
)

func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "NORMAL"
	case ModeInsert:
		return "INSERT"
	case ModeVisual:
		return "VISUAL"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

// PendingState tags a PendingKey.
type PendingState uint8

const (
	PendingInactive PendingState = iota
	// PendingWaiting holds the first key of a multi-key sequence ("g", ":").
	PendingWaiting
	// PendingWaitingForCommand is reserved for a typed command line. No
	// transition produces it yet.
	PendingWaitingForCommand
)

// PendingKey is an in-progress multi-key command. The zero value is inactive.
// PendingKey is comparable and is used directly as a dispatch table key.
type PendingKey struct {
	State   PendingState
	Key     rune
	Command string
}

func Inactive() PendingKey { return PendingKey{} }

func Waiting(r rune) PendingKey { return PendingKey{State: PendingWaiting, Key: r} }

func WaitingForCommand(cmd string) PendingKey {
	return PendingKey{State: PendingWaitingForCommand, Command: cmd}
}

func (p PendingKey) Active() bool { return p.State != PendingInactive }

// commandPrefix reports whether p opens a command (":"). Command prefixes
// are abandoned by any stray key regardless of PendingPolicy.
func (p PendingKey) commandPrefix() bool {
	return (p.State == PendingWaiting && p.Key == ':') || p.State == PendingWaitingForCommand
}

func (p PendingKey) String() string {
	switch p.State {
	case PendingWaiting:
		return string(p.Key)
	case PendingWaitingForCommand:
		return ":" + p.Command
	default:
		return "-"
	}
}
