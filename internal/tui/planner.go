// Package tui is an interactive expedition planner
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/napolitain/exped-planner/internal/catalog"
	"github.com/napolitain/exped-planner/internal/economy"
	"github.com/napolitain/exped-planner/internal/fleet"
	"github.com/napolitain/exped-planner/internal/models"
	"github.com/napolitain/exped-planner/internal/solver"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	worldStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	cursorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	panelStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

// Options configures the planner model
type Options struct {
	Configs    solver.ConfigSource
	CostModel  *fleet.CostModel
	Fleets     int
	AFKMinutes int
	Priority   models.Weights
	Selected   []int
}

// nameWidth is the display width of the name column
const nameWidth = 18

// Model is the bubbletea model of the planner
//
// ids holds the rendering order, world by world as View draws them;
// the cursor indexes it.
type Model struct {
	cat       *catalog.Catalog
	opts      Options
	ids       []int
	selection models.Selection
	cursor    int
	preset    int
	status    string
}

// NewModel creates a planner over cat
func NewModel(cat *catalog.Catalog, opts Options) Model {
	if opts.Configs == nil {
		opts.Configs = solver.ConfigTable{}
	}
	if opts.CostModel == nil {
		opts.CostModel = fleet.DefaultCostModel()
	}
	if opts.Fleets == 0 {
		opts.Fleets = models.MaxExpeditionFleets
	}

	m := Model{
		cat:       cat,
		opts:      opts,
		ids:       displayOrder(cat),
		selection: make(models.Selection),
		preset:    -1,
	}
	m.selection.ApplyPreset(opts.Selected, m.ids)
	return m
}

func displayOrder(cat *catalog.Catalog) []int {
	ids := make([]int, 0, cat.Len())
	for _, group := range cat.Worlds() {
		for _, info := range group {
			ids = append(ids, info.ID)
		}
	}
	return ids
}

// Cursor returns the expedition id under the cursor
func (m Model) Cursor() (int, bool) {
	if len(m.ids) == 0 {
		return 0, false
	}
	return m.ids[m.cursor], true
}

// Run starts the planner in the alternate screen
func Run(m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Selected returns the enabled expedition ids
func (m Model) Selected() []int {
	return m.selection.IDs()
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.ids)-1 {
			m.cursor++
		}
	case "left", "h":
		m.cursor = max(0, m.cursor-models.ExpeditionsPerWorld)
	case "right", "l":
		m.cursor = min(len(m.ids)-1, m.cursor+models.ExpeditionsPerWorld)
	case " ", "space", "enter":
		if len(m.ids) > 0 {
			id := m.ids[m.cursor]
			m.selection.Toggle(id)
			m.status = fmt.Sprintf("toggled %d", id)
		}
	case "p":
		presets := models.Presets()
		m.preset = (m.preset + 1) % len(presets)
		m.applyPreset(presets[m.preset])
	case "P":
		presets := models.Presets()
		m.preset = (max(m.preset, 0) - 1 + len(presets)) % len(presets)
		m.applyPreset(presets[m.preset])
	case "c":
		m.selection.ApplyPreset(nil, m.ids)
		m.status = "selection cleared"
	}
	return m, nil
}

func (m *Model) applyPreset(p models.Preset) {
	m.selection.ApplyPreset(p.IDs, m.ids)
	m.status = "preset: " + p.Name
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Expedition Planner"))
	b.WriteString("\n\n")

	columns := make([]string, 0, 5)
	cursorID, hasCursor := m.Cursor()
	for _, group := range m.cat.Worlds() {
		var col strings.Builder
		col.WriteString(worldStyle.Render(fmt.Sprintf("World %d", group[0].World())))
		col.WriteString("\n")
		for _, info := range group {
			col.WriteString(m.renderRow(info, hasCursor && info.ID == cursorID))
			col.WriteString("\n")
		}
		columns = append(columns, col.String())
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, spaced(columns)...))
	b.WriteString("\n")

	b.WriteString(panelStyle.Render(m.summary()))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("↑/↓ move  ←/→ world  space toggle  p/P preset  c clear  q quit"))
	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(m.status)
		b.WriteString("\n")
	}
	return b.String()
}

func spaced(columns []string) []string {
	out := make([]string, 0, 2*len(columns))
	for i, c := range columns {
		if i > 0 {
			out = append(out, "  ")
		}
		out = append(out, c)
	}
	return out
}

func (m Model) renderRow(info *models.ExpeditionInfo, atCursor bool) string {
	mark := "[ ]"
	if m.selection[info.ID] {
		mark = "[x]"
	}
	row := fmt.Sprintf("%s %2d %s %s", mark, info.ID, fitName(info.Name), models.FormatTime(info.Time))

	switch {
	case atCursor:
		return cursorStyle.Render(row)
	case m.selection[info.ID]:
		return selectedStyle.Render(row)
	}
	return row
}

// fitName truncates and pads a name to nameWidth terminal cells
func fitName(name string) string {
	return runewidth.FillRight(runewidth.Truncate(name, nameWidth, "…"), nameWidth)
}

// Totals is the summed hourly income of the selected expeditions
type Totals struct {
	Gross   map[models.ResourceType]float64
	Net     map[models.ResourceType]float64
	Unknown []int // ids whose net income is unknown
	Failed  []int // ids whose config could not be evaluated
}

// Totals evaluates every selected expedition
func (m Model) Totals() Totals {
	t := Totals{
		Gross: make(map[models.ResourceType]float64),
		Net:   make(map[models.ResourceType]float64),
	}
	for _, id := range m.selection.IDs() {
		info, ok := m.cat.Get(id)
		if !ok {
			continue
		}
		ev, err := economy.Evaluate(info, m.opts.Configs.ConfigFor(id), m.opts.CostModel.Lookup)
		if err != nil {
			t.Failed = append(t.Failed, id)
			continue
		}
		for _, rt := range models.AllResourceTypes() {
			t.Gross[rt] += ev.GrossPerHour(rt)
			if rate, ok := ev.NetPerHour(rt); ok {
				t.Net[rt] += rate
			}
		}
		if ev.Net == nil {
			t.Unknown = append(t.Unknown, id)
		}
	}
	return t
}

// Plan runs the solver restricted to the selection
func (m Model) Plan() (*solver.Solution, error) {
	ids := m.selection.IDs()
	if len(ids) == 0 {
		return &solver.Solution{}, nil
	}
	s := &solver.Solver{Catalog: m.cat, CostModel: m.opts.CostModel}
	return s.Solve(solver.Request{
		Fleets:     m.opts.Fleets,
		AFKMinutes: m.opts.AFKMinutes,
		Priority:   m.opts.Priority,
		Candidates: ids,
		Configs:    m.opts.Configs,
	})
}

func (m Model) summary() string {
	var b strings.Builder
	t := m.Totals()

	fmt.Fprintf(&b, "Selected: %d\n", len(m.selection.IDs()))
	fmt.Fprintf(&b, "%-8s %8s %8s %8s %8s\n", "per hour", "fuel", "ammo", "steel", "bauxite")
	b.WriteString(rateRow("gross", t.Gross))
	b.WriteString(rateRow("net", t.Net))
	if len(t.Unknown) > 0 {
		fmt.Fprintf(&b, "net excludes unknown costs: %v\n", t.Unknown)
	}
	if len(t.Failed) > 0 {
		fmt.Fprintf(&b, "config errors: %v\n", t.Failed)
	}

	sol, err := m.Plan()
	switch {
	case err != nil:
		fmt.Fprintf(&b, "plan: %v", err)
	case len(sol.Picks) == 0:
		b.WriteString("plan: -")
	default:
		names := make([]string, len(sol.Picks))
		for i, p := range sol.Picks {
			names[i] = fmt.Sprintf("%d %s", p.ID(), p.Eval.Info.Name)
		}
		b.WriteString("plan: " + strings.Join(names, ", "))
	}
	return b.String()
}

func rateRow(label string, rates map[models.ResourceType]float64) string {
	return fmt.Sprintf("%-8s %8.1f %8.1f %8.1f %8.1f\n", label,
		rates[models.Fuel], rates[models.Ammo], rates[models.Steel], rates[models.Bauxite])
}
