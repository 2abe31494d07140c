package screen

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Role selects the style a printed cell is rendered with.
type Role uint8

const (
	RoleText Role = iota
	RoleGutter
	RoleStatus
	RoleCursor
)

// Palette maps roles to styles. Roles without an entry render unstyled.
type Palette map[Role]lipgloss.Style

// Replacement is drawn in place of runes that do not occupy exactly one cell.
const Replacement = '?'

type cell struct {
	r    rune
	role Role
}

var blank = cell{r: ' ', role: RoleText}

// Grid is a fixed-size cell surface.
type Grid struct {
	w, h  int
	cells [][]cell

	col, row int
	role     Role

	palette Palette
	hideCur bool

	// damage holds rows printed or cleared since the last ResetDamage.
	damage map[int]struct{}

	// View cache: rows are re-rendered only when dirty.
	cache []string
	dirty []bool
}

func New(width, height int, p Palette) *Grid {
	g := &Grid{palette: p}
	g.Resize(width, height)
	return g
}

// Resize reallocates the grid. Content is discarded.
func (g *Grid) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	g.w, g.h = width, height
	g.cells = make([][]cell, height)
	for i := range g.cells {
		g.cells[i] = blankRow(width)
	}
	g.cache = make([]string, height)
	g.dirty = make([]bool, height)
	for i := range g.dirty {
		g.dirty[i] = true
	}
	g.damage = make(map[int]struct{}, height)
	g.col, g.row = 0, 0
}

// HideCursor controls whether View draws the cursor cell.
func (g *Grid) HideCursor(hide bool) {
	if g.hideCur == hide {
		return
	}
	g.hideCur = hide
	g.markDirty(g.row)
}

func (g *Grid) Size() (cols, rows int) { return g.w, g.h }

func (g *Grid) Cursor() (col, row int) { return g.col, g.row }

// MoveTo places the cursor at (col, row). Coordinates outside the grid are
// kept as-is; printing there is clipped.
func (g *Grid) MoveTo(col, row int) {
	if col == g.col && row == g.row {
		return
	}
	g.markDirty(g.row)
	g.col, g.row = col, row
	g.markDirty(g.row)
}

// ClearRegion blanks rows in [top, bottom).
func (g *Grid) ClearRegion(top, bottom int) {
	if top < 0 {
		top = 0
	}
	if bottom > g.h {
		bottom = g.h
	}
	for row := top; row < bottom; row++ {
		g.cells[row] = blankRow(g.w)
		g.touch(row)
	}
}

func (g *Grid) SetRole(r Role) { g.role = r }

// Print writes s at the cursor with the current role and advances the cursor
// one column per rune.
func (g *Grid) Print(s string) {
	if s == "" {
		return
	}
	inRow := g.row >= 0 && g.row < g.h
	for _, r := range s {
		if inRow && g.col >= 0 && g.col < g.w {
			g.cells[g.row][g.col] = cell{r: cellRune(r), role: g.role}
		}
		g.col++
	}
	if inRow {
		g.touch(g.row)
	}
}

// Row returns the plain text of row, or "" when out of range.
func (g *Grid) Row(row int) string {
	if row < 0 || row >= g.h {
		return ""
	}
	var sb strings.Builder
	for _, c := range g.cells[row] {
		sb.WriteRune(c.r)
	}
	return sb.String()
}

// Damage returns the sorted rows printed or cleared since the last ResetDamage.
func (g *Grid) Damage() []int {
	out := make([]int, 0, len(g.damage))
	for row := range g.damage {
		out = append(out, row)
	}
	sort.Ints(out)
	return out
}

func (g *Grid) ResetDamage() {
	g.damage = make(map[int]struct{}, g.h)
}

// View renders the grid, one line per row, with the cursor cell drawn in
// the cursor role.
func (g *Grid) View() string {
	for row := 0; row < g.h; row++ {
		if g.dirty[row] {
			g.cache[row] = g.renderRow(row)
			g.dirty[row] = false
		}
	}
	return strings.Join(g.cache, "\n")
}

func (g *Grid) renderRow(row int) string {
	cells := g.cells[row]
	cursorCol := -1
	if !g.hideCur && row == g.row && g.col >= 0 && g.col < g.w {
		cursorCol = g.col
	}

	var sb strings.Builder
	var run []rune
	runRole := RoleText
	flush := func() {
		if len(run) == 0 {
			return
		}
		sb.WriteString(g.render(runRole, string(run)))
		run = run[:0]
	}
	for col, c := range cells {
		role := c.role
		if col == cursorCol {
			role = RoleCursor
		}
		if role != runRole {
			flush()
			runRole = role
		}
		run = append(run, c.r)
	}
	flush()
	return sb.String()
}

func (g *Grid) render(role Role, s string) string {
	st, ok := g.palette[role]
	if !ok {
		return s
	}
	return st.Render(s)
}

func (g *Grid) touch(row int) {
	g.damage[row] = struct{}{}
	g.markDirty(row)
}

func (g *Grid) markDirty(row int) {
	if row >= 0 && row < g.h {
		g.dirty[row] = true
	}
}

func blankRow(width int) []cell {
	row := make([]cell, width)
	for i := range row {
		row[i] = blank
	}
	return row
}

// cellRune maps r to the rune drawn in its cell.
func cellRune(r rune) rune {
	if r == '\t' {
		return ' '
	}
	if runewidth.RuneWidth(r) != 1 {
		return Replacement
	}
	return r
}
