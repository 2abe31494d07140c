package editor

// PendingPolicy controls what a stray key does to an active multi-key
// sequence (for example "g" followed by "x").
type PendingPolicy int

const (
	// PendingClear abandons the sequence on any key that does not continue it.
	PendingClear PendingPolicy = iota
	// PendingKeep leaves the sequence pending until it is completed, cancelled
	// with Escape or ":", or replaced by a key that resets it.
	PendingKeep
)

func (p PendingPolicy) String() string {
	switch p {
	case PendingKeep:
		return "keep"
	default:
		return "clear"
	}
}

// GutterPolicy controls when the line-number gutter width is computed.
type GutterPolicy int

const (
	// GutterDynamic recomputes the width from the live line count whenever
	// coordinates are mapped.
	GutterDynamic GutterPolicy = iota
	// GutterFixed computes the width once, when the buffer is attached.
	GutterFixed
)

func (p GutterPolicy) String() string {
	switch p {
	case GutterFixed:
		return "fixed"
	default:
		return "dynamic"
	}
}
