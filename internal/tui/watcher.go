package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wallfacerlabs/vaults-cli/internal/logger"
	"github.com/wallfacerlabs/vaults-cli/internal/models"
	"github.com/wallfacerlabs/vaults-cli/internal/render"
	"github.com/wallfacerlabs/vaults-cli/internal/services"
)

type positionsLoaded struct {
	positions []models.Position
	err       error
}

type refreshMsg time.Time

// Model is the bubbletea model for the positions watcher. It fetches the
// wallet's vault positions on an interval and re-renders the table.
type Model struct {
	portfolio *services.PortfolioService
	address   string
	interval  time.Duration

	spinner     spinner.Model
	positions   []models.Position
	lastUpdated time.Time
	fetchErr    error
	loading     bool
	refreshes   int
	width       int
	height      int
	quit        bool
}

// NewModel creates the watcher model for the given wallet.
func NewModel(portfolio *services.PortfolioService, address string, interval time.Duration) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return Model{
		portfolio: portfolio,
		address:   address,
		interval:  interval,
		spinner:   sp,
		loading:   true,
		width:     80,
		height:    24,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.fetchPositions(),
	)
}

func (m Model) fetchPositions() tea.Cmd {
	portfolio := m.portfolio
	address := m.address
	return func() tea.Msg {
		positions, err := portfolio.Positions(address)
		return positionsLoaded{positions: positions, err: err}
	}
}

func (m Model) scheduleRefresh() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return refreshMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quit = true
			return m, tea.Quit
		case "r":
			if !m.loading {
				m.loading = true
				cmds = append(cmds, m.fetchPositions())
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case positionsLoaded:
		m.loading = false
		m.refreshes++
		m.fetchErr = msg.err
		if msg.err == nil {
			m.positions = msg.positions
			m.lastUpdated = time.Now()
		} else {
			logger.Error("Failed to refresh positions: %v", msg.err)
		}
		cmds = append(cmds, m.scheduleRefresh())

	case refreshMsg:
		if !m.loading {
			m.loading = true
			cmds = append(cmds, m.fetchPositions())
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if m.quit {
		return "Shutting down...\n"
	}

	var s strings.Builder

	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginBottom(1)

	s.WriteString(headerStyle.Render("💼 Vault Positions"))
	s.WriteString("\n\n")

	summaryStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("244"))

	status := fmt.Sprintf("Wallet: %s | Refreshes: %d", m.address, m.refreshes)
	if !m.lastUpdated.IsZero() {
		status += fmt.Sprintf(" | Updated: %s", m.lastUpdated.Format("15:04:05"))
	}
	s.WriteString(summaryStyle.Render(status))
	s.WriteString("\n\n")

	if m.loading {
		s.WriteString(fmt.Sprintf("%s Fetching positions...\n\n", m.spinner.View()))
	}

	if m.fetchErr != nil {
		errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
		s.WriteString(errStyle.Render(fmt.Sprintf("❌ %v", m.fetchErr)))
		s.WriteString("\n\n")
	}

	if !m.loading || len(m.positions) > 0 {
		s.WriteString(render.Positions(m.positions))
		s.WriteString("\n")
	}

	footerStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	s.WriteString("\n")
	s.WriteString(footerStyle.Render("r to refresh • q to quit"))
	s.WriteString("\n")

	return s.String()
}

// Run starts the watcher and blocks until the user quits.
func Run(portfolio *services.PortfolioService, address string, interval time.Duration) error {
	model := NewModel(portfolio, address, interval)
	program := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("watcher terminated: %w", err)
	}
	return nil
}
