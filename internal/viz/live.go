package viz

import (
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/galaxsim/internal/metrics"
	"github.com/san-kum/galaxsim/internal/sim"
)

const traceCapacity = 600

type TickMsg time.Time

// LiveModel steps a simulation on every tick and shows the frame next to a
// stats panel.
type LiveModel struct {
	sim       *sim.Simulation
	trace     *metrics.Trace
	sink      *TextSink
	theme     Theme
	styles    styles
	name      string
	interval  time.Duration
	running   bool
	showStats bool
	frame     string
	err       error
}

// NewLiveModel attaches an energy trace to s. fps sets the tick rate.
func NewLiveModel(s *sim.Simulation, name, theme string, fps int) LiveModel {
	if fps <= 0 {
		fps = 60
	}
	trace := metrics.NewTrace(s.Gravity(), traceCapacity)
	s.AddObserver(trace)

	t := GetTheme(theme)
	ramp := s.Frame().Params().Ramp
	return LiveModel{
		sim:       s,
		trace:     trace,
		sink:      NewTextSink(ramp, t),
		theme:     t,
		styles:    newStyles(t, ramp),
		name:      name,
		interval:  time.Second / time.Duration(fps),
		running:   true,
		showStats: true,
	}
}

func (m LiveModel) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m LiveModel) Init() tea.Cmd {
	return m.tick()
}

func (m LiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case ".":
			if !m.running {
				m.advance()
			}
		case "r":
			m.sim.Reset()
			m.trace.Reset()
			m.frame = ""
		case "t":
			m.setTheme(NextTheme(m.theme.Name))
		case "s":
			m.showStats = !m.showStats
		}
	case TickMsg:
		if m.running {
			m.advance()
		}
		return m, m.tick()
	}
	return m, nil
}

// advance runs one step and keeps the resulting frame for View.
func (m *LiveModel) advance() {
	if err := m.sim.Step(); err != nil {
		m.err = err
		m.running = false
		log.Printf("live: step failed: %v", err)
		return
	}
	if err := m.sim.Render(m.sink); err != nil {
		m.err = err
		return
	}
	m.frame = m.sink.String()
	m.sim.ClearFrame()
}

func (m *LiveModel) setTheme(t Theme) {
	ramp := m.sim.Frame().Params().Ramp
	m.theme = t
	m.styles = newStyles(t, ramp)
	m.sink = NewTextSink(ramp, t)
}

func (m LiveModel) Running() bool { return m.running }
func (m LiveModel) Theme() Theme  { return m.theme }
func (m LiveModel) Err() error    { return m.err }

func (m LiveModel) View() string {
	if !m.showStats {
		return m.frame
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, m.frame, m.statsView())
}

func (m LiveModel) statsView() string {
	st := m.styles
	var b strings.Builder

	b.WriteString(st.title.Render(strings.ToUpper(m.name)) + "\n")
	status := "RUNNING"
	if !m.running {
		status = "PAUSED"
	}
	if m.err != nil {
		b.WriteString(st.warn.Render(m.err.Error()) + "\n\n")
	} else {
		b.WriteString(status + "\n\n")
	}

	b.WriteString(st.statRow("Time", fmt.Sprintf("%.2fs", m.sim.Time())) + "\n")
	b.WriteString(st.statRow("Steps", fmt.Sprintf("%d", m.sim.Steps())) + "\n")
	b.WriteString(st.statRow("Bodies", fmt.Sprintf("%d", m.sim.Len())) + "\n")
	b.WriteString(st.statRow("Theme", m.theme.Name) + "\n")

	vals := m.sim.Metrics()
	if len(vals) > 0 {
		names := make([]string, 0, len(vals))
		for k := range vals {
			names = append(names, k)
		}
		sort.Strings(names)
		b.WriteString("\n")
		for _, k := range names {
			b.WriteString(st.statRow(k, fmt.Sprintf("%.4g", vals[k])) + "\n")
		}
	}

	if energy := m.trace.Values(); len(energy) > 1 {
		chart := asciigraph.Plot(energy, asciigraph.Height(6), asciigraph.Width(32), asciigraph.Caption("Energy"))
		b.WriteString("\n" + chart + "\n")
	}

	b.WriteString("\n" + st.separator(34) + "\n")
	b.WriteString(st.help.Render("SP:Pause .:Step R:Reset\nT:Theme  S:Stats  Q:Quit"))
	return st.panel.Render(b.String())
}
