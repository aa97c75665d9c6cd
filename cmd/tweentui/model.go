package main

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/automoto/uitween/config"
	"github.com/automoto/uitween/ease"
	"github.com/automoto/uitween/logx"
	"github.com/automoto/uitween/tween"
)

const barWidth = 40

// tickMsg drives the scheduler once per frame.
type tickMsg time.Time

func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// bar is one animated value. The tween key is the bar's name.
type bar struct {
	name  string
	value float64
	done  int
}

type model struct {
	sched    *tween.Scheduler
	clock    *tween.Clock
	source   tween.TimeSource
	tickRate int
	log      logx.Logger

	bars     []*bar
	selected int
	easing   int
	last     time.Time
	status   string
}

func newModel(names []string, tickRate int, log logx.Logger) *model {
	m := &model{
		sched:    tween.NewScheduler(tween.WithLogger(log)),
		clock:    tween.NewClock(),
		tickRate: tickRate,
		log:      log,
	}
	if m.tickRate <= 0 {
		m.tickRate = 60
	}
	for _, n := range names {
		m.bars = append(m.bars, &bar{name: n})
	}
	m.clock.SetTimeScale(config.Tween.TimeScale)
	return m
}

func (m *model) Init() tea.Cmd {
	m.restartAll()
	return tickCmd(m.tickRate)
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		now := time.Time(msg)
		dt := 1.0 / float64(m.tickRate)
		if !m.last.IsZero() {
			dt = now.Sub(m.last).Seconds()
		}
		m.last = now
		m.step(dt)
		return m, tickCmd(m.tickRate)
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.sched.Close()
			return m, tea.Quit
		case "r":
			m.restartAll()
		case "enter":
			m.restart(m.bars[m.selected], 0)
		case "c":
			if m.sched.Cancel(m.bars[m.selected].name) {
				m.status = "canceled " + m.bars[m.selected].name
			}
		case "up", "k":
			m.selected = (m.selected + len(m.bars) - 1) % len(m.bars)
		case "down", "j", "tab":
			m.selected = (m.selected + 1) % len(m.bars)
		case "e":
			m.easing++
			m.status = "easing " + m.easingName()
		case " ":
			if m.clock.IsPaused() {
				m.clock.Resume()
			} else {
				m.clock.Pause()
			}
		case "+", "=":
			m.clock.SetTimeScale(m.clock.TimeScale() * 2)
		case "-":
			m.clock.SetTimeScale(m.clock.TimeScale() / 2)
		case "u":
			if m.source == tween.Scaled {
				m.source = tween.Unscaled
			} else {
				m.source = tween.Scaled
			}
		}
	}
	return m, nil
}

// step advances the scheduler by a raw delta in seconds.
func (m *model) step(raw float64) {
	if err := m.sched.Tick(m.clock.Delta(raw, m.source)); err != nil {
		m.log.Warn("tween callbacks failed", logx.Err(err))
		m.status = err.Error()
	}
}

func (m *model) easingName() string {
	names := config.Settings.EasingCycle
	if len(names) == 0 {
		return config.Tween.Easing
	}
	return names[m.easing%len(names)]
}

func (m *model) restartAll() {
	for i, b := range m.bars {
		m.restart(b, float64(i)*0.15)
	}
}

func (m *model) restart(b *bar, delay float64) {
	fn, err := ease.Lookup(m.easingName())
	if err != nil {
		fn = ease.Default
	}
	from := b.value
	to := 1.0
	if from > 0.5 {
		to = 0
	}
	_, err = m.sched.Start(b.name, tween.Options{
		Duration: config.Tween.Duration * 3,
		Delay:    delay,
		Easing:   fn,
		OnUpdate: func(p float64) {
			b.value = from + (to-from)*p
		},
		OnComplete: func() {
			b.done++
		},
	})
	if err != nil {
		m.status = err.Error()
	}
}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	nameStyle     = lipgloss.NewStyle().Width(10)
	selectedStyle = nameStyle.Foreground(lipgloss.Color("212")).Bold(true)
	fillStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	trackStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	stateStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(10)
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	boxStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

func (m *model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("uitween"))
	b.WriteString(fmt.Sprintf("  easing=%s scale=%.2f paused=%v source=%s active=%d\n\n",
		m.easingName(), m.clock.TimeScale(), m.clock.IsPaused(), m.source, m.sched.Len()))

	for i, bar := range m.bars {
		name := nameStyle.Render(bar.name)
		if i == m.selected {
			name = selectedStyle.Render("> " + bar.name)
		}
		state := "idle"
		if h, ok := m.sched.Handle(bar.name); ok {
			state = h.State().String()
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
			name,
			renderBar(bar.value),
			" ",
			stateStyle.Render(state),
			fmt.Sprintf("x%d", bar.done),
		))
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}
	b.WriteString(helpStyle.Render("\nr restart all, enter restart, c cancel, e easing, space pause, +/- scale, u source, q quit"))
	return boxStyle.Render(b.String())
}

func renderBar(v float64) string {
	n := int(v*barWidth + 0.5)
	n = max(0, min(barWidth, n))
	return fillStyle.Render(strings.Repeat("█", n)) + trackStyle.Render(strings.Repeat("░", barWidth-n))
}
