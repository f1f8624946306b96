package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/gridboard/pkg/grid"
	"github.com/matzehuels/gridboard/pkg/grid/session"
	"github.com/matzehuels/gridboard/pkg/layout"
)

// Terminal tile geometry. One grid position renders as tileWidth x tileHeight
// characters with one blank row/column between tiles; mouse coordinates map
// onto this pixel model directly.
const (
	tileWidth    = 12
	tileHeight   = 3
	tileSpacing  = 1
	headerHeight = 3

	longPressDelay = 500 * time.Millisecond
)

// Board tile styles.
var (
	tilePlaceholder = lipgloss.NewStyle().Background(lipgloss.Color("236")).Foreground(colorDim)
	tileCell        = lipgloss.NewStyle().Background(colorBlue).Foreground(lipgloss.Color("232"))
	tileSelected    = lipgloss.NewStyle().Background(colorCyan).Foreground(lipgloss.Color("232")).Bold(true)
	tileAccept      = lipgloss.NewStyle().Background(colorGreen).Foreground(lipgloss.Color("232"))
	tileReject      = lipgloss.NewStyle().Background(colorRed).Foreground(lipgloss.Color("232"))
)

// longPressMsg fires when a press has been held long enough.
type longPressMsg struct {
	seq int
}

// editModel is the bubbletea model for the interactive board editor.
type editModel struct {
	sess    *session.Machine
	cursorC int
	cursorR int

	pressSeq int  // invalidates stale long-press timers
	holding  bool // pointer currently down
	dirty    bool
}

func newEditModel(sess *session.Machine) *editModel {
	m := &editModel{sess: sess, cursorC: 1, cursorR: 1}
	sess.SetMetrics(tileWidth, tileHeight)
	sess.OnCellChanged = func(grid.Cell) { m.dirty = true }
	return m
}

func (m *editModel) Init() tea.Cmd {
	return nil
}

func (m *editModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKey(msg)
	case tea.MouseMsg:
		return m.updateMouse(msg)
	case longPressMsg:
		if m.holding && msg.seq == m.pressSeq {
			x, y := m.positionCenter(m.cursorC, m.cursorR)
			m.sess.Handle(session.Event{Kind: session.LongPress, X: x, Y: y})
		}
		return m, nil
	}
	return m, nil
}

func (m *editModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.endSession()
		return m, tea.Quit
	case "up", "k":
		m.moveCursor(0, -1)
	case "down", "j":
		m.moveCursor(0, 1)
	case "left", "h":
		m.moveCursor(-1, 0)
	case "right", "l":
		m.moveCursor(1, 0)
	case "K", "shift+up":
		m.moveSelected(0, -1)
	case "J", "shift+down":
		m.moveSelected(0, 1)
	case "H", "shift+left":
		m.moveSelected(-1, 0)
	case "L", "shift+right":
		m.moveSelected(1, 0)
	case "enter", " ":
		if m.sess.State() == session.Idle {
			x, y := m.positionCenter(m.cursorC, m.cursorR)
			m.sess.Handle(session.Event{Kind: session.PointerDown, X: x, Y: y})
			m.sess.Handle(session.Event{Kind: session.LongPress, X: x, Y: y})
			m.sess.Handle(session.Event{Kind: session.PointerUp, X: x, Y: y})
		} else {
			m.endSession()
		}
	case "esc":
		if m.sess.State() == session.Dragging {
			m.sess.Handle(session.Event{Kind: session.DragCancel})
		} else {
			m.endSession()
		}
	}
	return m, nil
}

func (m *editModel) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	x := float64(msg.X)
	y := float64(msg.Y - headerHeight)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if col, row, ok := m.locate(x, y); ok {
			m.cursorC, m.cursorR = col, row
		}
		m.holding = true
		m.pressSeq++
		m.sess.Handle(session.Event{Kind: session.PointerDown, X: x, Y: y})
		seq := m.pressSeq
		return m, tea.Tick(longPressDelay, func(time.Time) tea.Msg {
			return longPressMsg{seq: seq}
		})

	case tea.MouseActionMotion:
		if m.holding {
			m.sess.Handle(session.Event{Kind: session.PointerMove, X: x, Y: y})
		}

	case tea.MouseActionRelease:
		if m.holding {
			m.holding = false
			m.pressSeq++
			m.sess.Handle(session.Event{Kind: session.PointerUp, X: x, Y: y})
		}
	}
	return m, nil
}

// moveCursor moves the keyboard cursor within board bounds.
func (m *editModel) moveCursor(dc, dr int) {
	cfg := m.sess.Config()
	if cfg.InBounds(m.cursorC+dc, m.cursorR+dr) {
		m.cursorC += dc
		m.cursorR += dr
	}
}

// moveSelected shifts the selected cell one position by synthesizing a
// press-drag-release at tile centers. Invalid targets leave the board
// unchanged.
func (m *editModel) moveSelected(dc, dr int) {
	id, ok := m.sess.Selected()
	if !ok {
		return
	}
	c, ok := m.sess.Registry().Get(id)
	if !ok {
		return
	}

	fromX, fromY := m.positionCenter(c.Column, c.Row)
	toX, toY := m.positionCenter(c.Column+dc, c.Row+dr)
	m.sess.Handle(session.Event{Kind: session.PointerDown, X: fromX, Y: fromY})
	m.sess.Handle(session.Event{Kind: session.PointerMove, X: toX, Y: toY})
	m.sess.Handle(session.Event{Kind: session.PointerUp, X: toX, Y: toY})

	if c, ok := m.sess.Registry().Get(id); ok {
		m.cursorC, m.cursorR = c.Column, c.Row
	}
}

// endSession leaves edit mode via a synthetic tap on the selected cell.
func (m *editModel) endSession() {
	id, ok := m.sess.Selected()
	if !ok {
		return
	}
	c, ok := m.sess.Registry().Get(id)
	if !ok {
		return
	}
	x, y := m.positionCenter(c.Column, c.Row)
	m.sess.Handle(session.Event{Kind: session.PointerDown, X: x, Y: y})
	m.sess.Handle(session.Event{Kind: session.PointerUp, X: x, Y: y})
}

// positionCenter returns the pixel center of a 1-based grid position.
func (m *editModel) positionCenter(col, row int) (x, y float64) {
	x = float64(col-1)*(tileWidth+tileSpacing) + float64(tileWidth)/2
	y = float64(row-1)*(tileHeight+tileSpacing) + float64(tileHeight)/2
	return x, y
}

func (m *editModel) locate(x, y float64) (col, row int, ok bool) {
	cfg := m.sess.Config()
	if x < 0 || y < 0 {
		return 0, 0, false
	}
	col = int(x)/(tileWidth+tileSpacing) + 1
	row = int(y)/(tileHeight+tileSpacing) + 1
	if !cfg.InBounds(col, row) {
		return 0, 0, false
	}
	return col, row, true
}

func (m *editModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Gridboard"))
	b.WriteString("  ")
	b.WriteString(StyleDim.Render(m.statusLine()))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("↑↓←→ cursor · ⏎ edit/done · shift+↑↓←→ move · drag with mouse · esc cancel · q quit"))
	b.WriteString("\n\n")

	plan := m.sess.Plan()
	for _, row := range plan {
		lines := make([]string, tileHeight)
		for _, p := range row {
			style, label := m.tileFace(p)
			for i := 0; i < tileHeight; i++ {
				text := strings.Repeat(" ", tileWidth)
				if i == tileHeight/2 {
					text = padCenter(label, tileWidth)
				}
				lines[i] += style.Render(text) + strings.Repeat(" ", tileSpacing)
			}
		}
		for _, line := range lines {
			b.WriteString(line)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	return b.String()
}

// tileFace picks the style and label for one board position.
func (m *editModel) tileFace(p session.Position) (lipgloss.Style, string) {
	style := tilePlaceholder
	label := ""

	switch p.Kind {
	case session.CellOrigin, session.CellSpan:
		style = tileCell
		if p.Selected {
			style = tileSelected
		}
		if p.Kind == session.CellOrigin {
			if c, ok := m.sess.Registry().Get(p.CellID); ok {
				label, _ = c.Content.(string)
			}
		}
	}

	switch p.Drop {
	case session.DropAccept:
		style = tileAccept
	case session.DropReject:
		style = tileReject
	}

	if p.Column == m.cursorC && p.Row == m.cursorR && label == "" {
		label = "·"
	}
	return style, label
}

func (m *editModel) statusLine() string {
	state := m.sess.State().String()
	if id, ok := m.sess.Selected(); ok {
		if c, found := m.sess.Registry().Get(id); found {
			label, _ := c.Content.(string)
			return fmt.Sprintf("%s: %s (%d,%d)", state, label, c.Column, c.Row)
		}
	}
	return state
}

func padCenter(s string, width int) string {
	if len(s) > width {
		s = s[:width-1] + "…"
	}
	left := (width - len(s)) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-left-len(s))
}

// =============================================================================
// Command
// =============================================================================

// newEditSession builds the session machine for a layout, projected onto the
// editor's terminal tile geometry. On screen every tile sits on the same
// tileSpacing pitch regardless of the layout's own spacing, so the session's
// pixel model must use tileSpacing too; the layout's spacing only applies to
// image export. The returned config is the layout's own, for saving.
func newEditSession(l *layout.Layout, strat session.Strategy) (*session.Machine, grid.Config, []grid.Diagnostic, error) {
	cfg, err := l.Config()
	if err != nil {
		return nil, grid.Config{}, nil, err
	}

	sessCfg := cfg
	sessCfg.Spacing = tileSpacing
	sess := session.New(sessCfg, strat)
	diags := sess.SetCells(l.GridCells())
	return sess, cfg, diags, nil
}

// editCommand creates the edit command for interactive layout editing.
func (c *CLI) editCommand() *cobra.Command {
	var (
		name    string
		backend string
		output  string
	)

	cmd := &cobra.Command{
		Use:   "edit [layout.json]",
		Short: "Edit a layout interactively",
		Long: `Open a layout in the interactive board editor.

Cells are moved by pressing and dragging with the mouse, or with the
keyboard: long-press (enter) selects a cell, shift+arrows move it one
position at a time, enter confirms. The edited layout is written back on
exit.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var (
				l   *layout.Layout
				err error
			)
			switch {
			case len(args) == 1:
				l, err = layout.ReadLayoutFile(args[0])
				if err != nil {
					return err
				}
			case name != "":
				st, serr := c.openStore(ctx, backend)
				if serr != nil {
					return serr
				}
				defer st.Close()
				l, err = st.Get(ctx, name)
				if err != nil {
					return fmt.Errorf("load layout %q: %w", name, err)
				}
			default:
				gcfg, gerr := c.Config.GridSettings()
				if gerr != nil {
					return gerr
				}
				l = layout.FromCells("untitled", gcfg, nil)
			}
			l.EnsureIDs()

			sess, cfg, diags, err := newEditSession(l, c.Config.SessionStrategy())
			if err != nil {
				return err
			}
			for _, d := range diags {
				c.Logger.Warn("layout diagnostic", "kind", d.Kind, "cell", d.CellID, "detail", d.Detail)
			}

			model := newEditModel(sess)
			p := tea.NewProgram(model,
				tea.WithContext(ctx),
				tea.WithAltScreen(),
				tea.WithMouseAllMotion(),
			)
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("run editor: %w", err)
			}

			if !model.dirty {
				printInfo("no changes")
				return nil
			}

			edited := layout.FromCells(l.Name, cfg, sess.Registry().All())
			switch {
			case output != "":
				if err := layout.WriteLayoutFile(edited, output); err != nil {
					return err
				}
				printSuccess("layout saved")
				printFile(output)
			case len(args) == 1:
				if err := layout.WriteLayoutFile(edited, args[0]); err != nil {
					return err
				}
				printSuccess("layout saved")
				printFile(args[0])
			case name != "":
				st, serr := c.openStore(ctx, backend)
				if serr != nil {
					return serr
				}
				defer st.Close()
				if err := st.Set(ctx, edited); err != nil {
					return err
				}
				printSuccess("layout %q saved", name)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "load the layout from the store instead of a file")
	cmd.Flags().StringVar(&backend, "store", "", "store backend (file, memory, redis, mongo)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the edited layout to this file")

	return cmd
}
