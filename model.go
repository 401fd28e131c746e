package main

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"concentool/internal/game"
	"concentool/internal/render"
	"concentool/internal/state"
)

type Model struct {
	game     *game.Game
	renderer render.Renderer
	keys     keyMap
	help     help.Model
	progress progress.Model
	fps      int
	now      func() time.Time
}

type TickMsg time.Time

func tickCmd(fps int) tea.Cmd {
	interval := time.Second / time.Duration(fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func newModel(g *game.Game, fps, width, height int) *Model {
	if fps <= 0 {
		fps = 60
	}
	m := &Model{
		game:     g,
		renderer: render.NewCanvas(width, height-state.FooterRows),
		keys:     newKeyMap(),
		help:     help.New(),
		progress: progress.New(progress.WithSolidFill(timeBarColor), progress.WithoutPercentage()),
		fps:      fps,
		now:      time.Now,
	}
	m.resize(width, height)
	return m
}

func (m *Model) Init() tea.Cmd {
	return tickCmd(m.fps)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		m.game.HandleTick(time.Time(msg))
		if m.game.Done() {
			return m, tea.Quit
		}
		return m, tickCmd(m.fps)
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			m.game.HandleClick(msg.X, msg.Y)
		}
	case tea.KeyMsg:
		m.game.HandleKey(msg.String(), m.now())
		if m.game.Done() {
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m *Model) resize(width, height int) {
	m.game.Resize(width, height)
	m.renderer.Resize(width, height-state.FooterRows)
	m.help.Width = width
	m.progress.Width = width / 3
}
