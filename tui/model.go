package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"moodgen/composer"
	"moodgen/debug"
	"moodgen/midi"
	"moodgen/mood"
	"moodgen/theme"
	"moodgen/widgets"
)

const (
	labelWidth   = 12
	cellsPerBeat = 2
)

type Model struct {
	Theme     *theme.Theme
	Moods     []string
	OutputDir string
	LaneWidth int // cells shown per lane

	moodIdx     int
	seed        int64
	offset      int // first visible cell
	composition *composer.Composition
	status      string
	err         error
	quitting    bool
}

// NewModel creates a previewer starting at the given mood and seed
func NewModel(th *theme.Theme, startMood string, seed int64, outputDir string, laneWidth int) Model {
	m := Model{
		Theme:     th,
		Moods:     mood.Names(),
		OutputDir: outputDir,
		LaneWidth: max(laneWidth, 8),
		seed:      seed,
	}
	for i, name := range m.Moods {
		if name == startMood {
			m.moodIdx = i
		}
	}
	m.regenerate()
	return m
}

// Composition returns the composition currently shown
func (m Model) Composition() *composer.Composition {
	return m.composition
}

func (m *Model) regenerate() {
	p, err := mood.Preset(m.Moods[m.moodIdx])
	if err != nil {
		m.err = err
		m.composition = nil
		return
	}
	m.err = nil
	m.offset = 0
	m.composition = composer.ComposeSeed(&p, m.seed)
	debug.Log("tui", "regenerated %s seed=%d", p.Name, m.seed)
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "r":
			m.seed++
			m.status = ""
			m.regenerate()

		case "R":
			m.seed--
			m.status = ""
			m.regenerate()

		case "m":
			m.moodIdx = (m.moodIdx + 1) % len(m.Moods)
			m.status = ""
			m.regenerate()

		case "M":
			m.moodIdx = (m.moodIdx + len(m.Moods) - 1) % len(m.Moods)
			m.status = ""
			m.regenerate()

		case "l", "right":
			m.offset += m.cellsPerBar()

		case "h", "left":
			m.offset = max(0, m.offset-m.cellsPerBar())

		case "s":
			m.save()
		}

	case tea.WindowSizeMsg:
		m.LaneWidth = max(8, msg.Width-labelWidth-24)
	}

	return m, nil
}

func (m *Model) save() {
	if m.composition == nil {
		return
	}
	path := filepath.Join(m.OutputDir, m.composition.Filename())
	err := midi.SaveSMF(path, uint16(m.composition.TicksPerBeat), m.composition.Tracks)
	if err != nil {
		m.status = fmt.Sprintf("save failed: %v", err)
		return
	}
	m.status = "saved " + path
}

func (m Model) cellsPerBar() int {
	return mood.BeatsPerBar * cellsPerBeat
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	headerStyle := lipgloss.NewStyle().Foreground(m.Theme.Accent())
	dimStyle := lipgloss.NewStyle().Foreground(m.Theme.Muted())
	statusStyle := lipgloss.NewStyle().
		Foreground(m.Theme.FG()).
		Background(m.Theme.Muted()).
		Padding(0, 1)
	errStyle := lipgloss.NewStyle().Foreground(m.Theme.Warning())

	var out strings.Builder
	out.WriteString("\n")

	if m.err != nil || m.composition == nil {
		out.WriteString(errStyle.Render(fmt.Sprintf("error: %v", m.err)))
		out.WriteString("\n")
		return out.String()
	}

	c := m.composition
	header := fmt.Sprintf("moodgen  %s  %3.0fbpm  seed:%d  %s", c.Mood, c.TempoBPM, c.Seed, c.Scale.Name)
	out.WriteString(headerStyle.Render(header))
	out.WriteString("\n\n")

	ticksPerCell := c.TicksPerBeat / cellsPerBeat
	for i := range c.Tracks {
		t := &c.Tracks[i]
		cells := m.laneCells(t, ticksPerCell)
		out.WriteString(widgets.RenderLane(t.Name, labelWidth, cells, m.cellsPerBar()))
		out.WriteString(dimStyle.Render(fmt.Sprintf("  ch%-2d %s", t.Channel+1, t.Instrument)))
		out.WriteString("\n")
	}

	bar := m.offset/m.cellsPerBar() + 1
	out.WriteString(dimStyle.Render(fmt.Sprintf("\nbar %d  melody %d notes", bar, c.Melody.Len())))
	out.WriteString("\n")
	out.WriteString(widgets.RenderLegendItem(widgets.Cell{Symbol: m.Theme.Symbols.Hit, Color: m.Theme.VelocityColor(64)}, "hit", "drum"))
	out.WriteString(widgets.RenderLegendItem(widgets.Cell{Symbol: m.Theme.Symbols.Accent, Color: m.Theme.VelocityColor(110)}, "accent", "velocity 90+"))
	out.WriteString("\n\n")

	out.WriteString(dimStyle.Render(widgets.RenderKeyHelp([]widgets.KeySection{
		{Keys: []widgets.KeyBinding{
			{Key: "r / R", Desc: "next / previous seed"},
			{Key: "m / M", Desc: "next / previous mood"},
			{Key: "h / l", Desc: "scroll bars"},
			{Key: "s", Desc: "save .mid"},
			{Key: "q", Desc: "quit"},
		}},
	})))

	if m.status != "" {
		out.WriteString("\n\n")
		out.WriteString(statusStyle.Render(m.status))
	}

	return out.String()
}

// laneCells maps the visible window of a track onto cells
func (m Model) laneCells(t *midi.Track, ticksPerCell int) []widgets.Cell {
	cells := make([]widgets.Cell, m.LaneWidth)
	rest := widgets.Cell{Symbol: m.Theme.Symbols.Rest, Color: m.Theme.Palette.Lookup(theme.RoleMuted)}
	for i := range cells {
		cells[i] = rest
	}
	if ticksPerCell <= 0 {
		return cells
	}

	drums := t.Channel == mood.PercussionChannel
	start := make(map[uint8]int64)
	var tick int64
	for _, e := range t.Events {
		tick += int64(e.Delta)
		switch e.Type {
		case midi.NoteOn:
			start[e.Note] = tick
			idx := int(tick/int64(ticksPerCell)) - m.offset
			if idx < 0 || idx >= len(cells) {
				continue
			}
			if drums {
				sym := m.Theme.Symbols.Hit
				if e.Velocity >= 90 {
					sym = m.Theme.Symbols.Accent
				}
				cells[idx] = widgets.Cell{Symbol: sym, Color: m.Theme.VelocityColor(int(e.Velocity))}
			} else {
				cells[idx] = widgets.Cell{Symbol: m.Theme.Symbols.Note, Color: m.Theme.PitchColor(int(e.Note))}
			}
		case midi.NoteOff:
			if drums {
				continue
			}
			from := int(start[e.Note]/int64(ticksPerCell)) + 1
			to := int((tick - 1) / int64(ticksPerCell))
			for c := from; c <= to; c++ {
				idx := c - m.offset
				if idx >= 0 && idx < len(cells) && cells[idx].Symbol == m.Theme.Symbols.Rest {
					cells[idx] = widgets.Cell{Symbol: m.Theme.Symbols.Hold, Color: m.Theme.PitchColor(int(e.Note))}
				}
			}
		}
	}
	return cells
}
