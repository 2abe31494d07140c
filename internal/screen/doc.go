// Package screen implements an in-memory terminal surface: a grid of cells
// addressed by (col, row) that supports cursor moves, region clears and
// printing, and renders itself through lipgloss styles.
//
// Every cell holds exactly one rune. Runes whose display width is not one
// cell are substituted so that screen columns and rune indexes stay aligned.
package screen
