// Package editor provides the modal editing core of fred and a Bubble Tea
// component that hosts it.
//
// The core is a single State value: a buffer, a viewport over it, an explicit
// cursor, the active Mode and any pending multi-key sequence. Key presses are
// resolved to Inputs by a KeyMap and dispatched through explicit transition
// tables keyed by (mode, pending key, token). Every operation reports the
// cheapest Redraw that keeps the screen correct, and Paint repaints only
// that much of a Surface.
package editor
