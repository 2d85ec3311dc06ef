package status

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	ledgerdto "lifeos/internal/modules/ledger/dto"
	"lifeos/internal/ui/theme"
)

const barWidth = 24

type StatusPort interface {
	FinanceStatus(ctx context.Context) (ledgerdto.FinanceOutput, error)
	ThemeStats(ctx context.Context) ([]ledgerdto.ThemeStatOutput, error)
	Achievements(ctx context.Context) ([]ledgerdto.BadgeOutput, error)
}

type LoadedMsg struct {
	Finance ledgerdto.FinanceOutput
	Stats   []ledgerdto.ThemeStatOutput
	Badges  []ledgerdto.BadgeOutput
	Err     error
}

type Model struct {
	port   StatusPort
	body   viewport.Model
	width  int
	height int
}

func New(port StatusPort) Model {
	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().
		Background(theme.Mantle).
		Foreground(theme.Text).
		Padding(1)
	return Model{port: port, body: vp}
}

func (m Model) Init() tea.Cmd {
	return m.Reload()
}

// Reload refetches every aggregate; the app calls it whenever the ledger may
// have changed.
func (m Model) Reload() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		finance, err := m.port.FinanceStatus(ctx)
		if err != nil {
			return LoadedMsg{Err: err}
		}
		stats, err := m.port.ThemeStats(ctx)
		if err != nil {
			return LoadedMsg{Err: err}
		}
		badges, err := m.port.Achievements(ctx)
		if err != nil {
			return LoadedMsg{Err: err}
		}
		return LoadedMsg{Finance: finance, Stats: stats, Badges: badges}
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.body.Width = m.width - 4
		m.body.Height = m.height - 4

	case LoadedMsg:
		if msg.Err != nil {
			m.body.SetContent(theme.Muted.Render("status load failed: " + msg.Err.Error()))
			break
		}
		m.body.SetContent(render(msg))
	}

	var cmd tea.Cmd
	m.body, cmd = m.body.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Background(theme.Mantle).
		Width(m.width - 2).
		Height(m.height - 2).
		Render(m.body.View())
}

// Filtering is always false; the status tab has no filter.
func (m Model) Filtering() bool { return false }

func render(msg LoadedMsg) string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Progression") + "\n\n")
	for _, stat := range msg.Stats {
		sb.WriteString(fmt.Sprintf("%s %-14s Lv %-3d %s %4.0f%%  %d min\n",
			stat.Icon, stat.Theme, stat.Level, bar(stat.ProgressPercent), stat.ProgressPercent, stat.TotalMinutes))
	}

	sb.WriteString("\n" + theme.Title.Render("Finance") + "\n\n")
	sb.WriteString(fmt.Sprintf("earned %d   spent %d   ", msg.Finance.TotalMinutes, msg.Finance.TotalSpent))
	sb.WriteString(theme.Hot.Render(fmt.Sprintf("balance %d", msg.Finance.Balance)) + "\n")

	sb.WriteString("\n" + theme.Title.Render("Achievements") + "\n\n")
	if len(msg.Badges) == 0 {
		sb.WriteString(theme.Muted.Render("none yet; the first badge lands at 60 focused minutes") + "\n")
	}
	for _, badge := range msg.Badges {
		sb.WriteString(theme.Good.Render("★ "+badge.Name) + theme.Muted.Render(fmt.Sprintf("  (%d min)", badge.Threshold)) + "\n")
	}
	return sb.String()
}

func bar(percent float64) string {
	filled := int(percent / 100 * barWidth)
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}
	return theme.Good.Render(strings.Repeat("█", filled)) + theme.Muted.Render(strings.Repeat("░", barWidth-filled))
}
