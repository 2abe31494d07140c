package editor

import "time"

// Config configures the editor Model.
type Config struct {
	// Initial terminal size. Hosts normally follow up with SetSize once the
	// real size is known.
	Width, Height int

	// Rendering options.
	ShowLineNums bool
	Gutter       GutterPolicy
	Style        Style

	KeyMap KeyMap

	// Pending-key handling. A zero PendingTimeout never expires sequences.
	Pending        PendingPolicy
	PendingTimeout time.Duration

	// When ExpandTabs is set, Tab inserts TabSpaces spaces instead of '\t'.
	// A TabSpaces below one inserts '\t' regardless.
	ExpandTabs bool
	TabSpaces  int

	// Message is shown in the status line until the first key press.
	Message string

	// OnChange is called after every key press that modified the buffer.
	OnChange func(ChangeEvent)

	// Now returns the time used for pending-key timeouts. Defaults to time.Now.
	Now func() time.Time
}

func DefaultConfig() Config {
	return Config{
		ShowLineNums: true,
		Gutter:       GutterDynamic,
		Style:        DefaultStyle(),
		KeyMap:       DefaultKeyMap(),
		Pending:      PendingClear,
		TabSpaces:    4,
	}
}
