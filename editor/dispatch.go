package editor

// Token is a resolved input key, independent of the terminal's key encoding.
// KeyMap turns key messages into tokens; the dispatch tables consume them.
type Token uint8

const (
	TokenNone Token = iota
	TokenLeft
	TokenDown
	TokenUp
	TokenRight
	TokenInsert
	TokenVisual
	TokenEscape
	TokenGoto
	TokenGotoBottom
	TokenCommand
	TokenQuit
	TokenForceQuit
	TokenBackspace
	TokenTab
	TokenRune
)

// Input is one resolved key press. Rune is set for TokenRune only.
type Input struct {
	Token Token
	Rune  rune
}

// Action is the effect of a transition on the editor state.
type Action uint8

const (
	ActionNone Action = iota
	ActionMoveLeft
	ActionMoveDown
	ActionMoveUp
	ActionMoveRight
	ActionGotoTop
	ActionGotoBottom
	ActionEnterNormal
	ActionEnterInsert
	ActionEnterVisual
	ActionInsertRune
	ActionInsertTab
	ActionDeleteBackward
	ActionQuit
)

// Transition is the result of dispatching one Input.
//
// When KeepPending is set the pending-key state is left as it was;
// otherwise it is replaced by Next.
type Transition struct {
	Action      Action
	Next        PendingKey
	KeepPending bool
}

// modeClass groups modes sharing a dispatch table.
type modeClass uint8

const (
	classNormal modeClass = iota // Normal and Visual
	classInsert
)

func classOf(m Mode) modeClass {
	if m == ModeInsert {
		return classInsert
	}
	return classNormal
}

type pendingEntry struct {
	pending PendingKey
	token   Token
}

var (
	keep  = Transition{KeepPending: true}
	reset = Transition{Next: Inactive()}
)

func act(a Action) Transition { return Transition{Action: a, KeepPending: true} }

func actReset(a Action) Transition { return Transition{Action: a, Next: Inactive()} }

// normalTable holds Normal/Visual transitions that apply whatever the
// pending-key state is.
var normalTable = map[Token]Transition{
	TokenInsert:     act(ActionEnterInsert),
	TokenVisual:     act(ActionEnterVisual),
	TokenEscape:     actReset(ActionEnterNormal),
	TokenLeft:       act(ActionMoveLeft),
	TokenDown:       act(ActionMoveDown),
	TokenUp:         act(ActionMoveUp),
	TokenRight:      act(ActionMoveRight),
	TokenGotoBottom: actReset(ActionGotoBottom),
	TokenForceQuit:  actReset(ActionQuit),
}

// pendingTable holds Normal/Visual transitions keyed on an exact
// pending-key state. Entries here take precedence over normalTable.
var pendingTable = map[pendingEntry]Transition{
	{pending: Inactive(), token: TokenGoto}:      {Next: Waiting('g')},
	{pending: Waiting('g'), token: TokenGoto}:    actReset(ActionGotoTop),
	{pending: Inactive(), token: TokenCommand}:   {Next: Waiting(':')},
	{pending: Waiting(':'), token: TokenCommand}: reset,
	{pending: Waiting('g'), token: TokenCommand}: reset,
	{pending: Waiting(':'), token: TokenQuit}:    actReset(ActionQuit),
}

// insertTable holds Insert transitions. Insert mode ignores pending keys.
var insertTable = map[Token]Transition{
	TokenEscape:    act(ActionEnterNormal),
	TokenBackspace: act(ActionDeleteBackward),
	TokenTab:       act(ActionInsertTab),
	TokenRune:      act(ActionInsertRune),
	TokenLeft:      act(ActionMoveLeft),
	TokenDown:      act(ActionMoveDown),
	TokenUp:        act(ActionMoveUp),
	TokenRight:     act(ActionMoveRight),
	TokenForceQuit: act(ActionQuit),
}

// Dispatch resolves in against the (mode, pending) state.
//
// Keys without a table entry are no-ops. A key that does not continue an
// active pending sequence is a stray key and is handled per policy:
//
//   - PendingClear drops the sequence; the key still runs its
//     pending-independent action, if it has one.
//   - PendingKeep leaves the sequence pending; the key still runs its
//     pending-independent action, if it has one.
//
// A ":" prefix is always dropped by a stray key.
func Dispatch(mode Mode, pending PendingKey, in Input, policy PendingPolicy) Transition {
	if classOf(mode) == classInsert {
		if tr, ok := insertTable[in.Token]; ok {
			return tr
		}
		return keep
	}

	if tr, ok := pendingTable[pendingEntry{pending: pending, token: in.Token}]; ok {
		return tr
	}

	base, hasBase := normalTable[in.Token]
	if !pending.Active() {
		if hasBase {
			return base
		}
		return keep
	}

	if pending.commandPrefix() || policy == PendingClear {
		if hasBase {
			base.KeepPending = false
			base.Next = Inactive()
			return base
		}
		return reset
	}

	if hasBase {
		return base
	}
	return keep
}
