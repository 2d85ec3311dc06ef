package journal

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	ledgerdto "lifeos/internal/modules/ledger/dto"
	"lifeos/internal/ui/theme"
)

const recentLimit = 50

type JournalPort interface {
	RecentSessions(ctx context.Context, limit int) ([]ledgerdto.SessionOutput, error)
	ListSnapshots(ctx context.Context) ([]ledgerdto.SnapshotOutput, error)
}

type SessionsLoadedMsg struct {
	Sessions []ledgerdto.SessionOutput
	Err      error
}

type SnapshotsLoadedMsg struct {
	Snapshots []ledgerdto.SnapshotOutput
	Err       error
}

type sessionItem struct {
	session ledgerdto.SessionOutput
}

func (i sessionItem) Title() string { return i.session.TaskLabel }
func (i sessionItem) Description() string {
	return fmt.Sprintf("%s  %s  %d min  %s",
		i.session.EndedAt.Format("01-02 15:04"), i.session.Theme, i.session.DurationMin, i.session.Stage)
}
func (i sessionItem) FilterValue() string { return i.session.TaskLabel }

type Model struct {
	port      JournalPort
	sessions  list.Model
	snapshots viewport.Model
	width     int
	height    int
}

func New(port JournalPort) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Yellow).BorderForeground(theme.Yellow)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Blue).BorderForeground(theme.Yellow)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Focus Journal"
	l.Styles.Title = theme.Title
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().
		Background(theme.Mantle).
		Foreground(theme.Text).
		Padding(1)

	return Model{port: port, sessions: l, snapshots: vp}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadSessionsCmd(), m.loadSnapshotsCmd())
}

// Reload refetches both panes; the app calls it after a session completes.
func (m Model) Reload() tea.Cmd {
	return tea.Batch(m.loadSessionsCmd(), m.loadSnapshotsCmd())
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.sessions.SetSize(m.width*6/10, m.height)
		m.snapshots.Width = m.width - m.width*6/10 - 4
		m.snapshots.Height = m.height - 4

	case SessionsLoadedMsg:
		if msg.Err != nil {
			m.sessions.Title = "journal load failed: " + msg.Err.Error()
			break
		}
		items := make([]list.Item, len(msg.Sessions))
		for i, session := range msg.Sessions {
			items[i] = sessionItem{session: session}
		}
		cmds = append(cmds, m.sessions.SetItems(items))

	case SnapshotsLoadedMsg:
		if msg.Err == nil {
			m.snapshots.SetContent(renderSnapshots(msg.Snapshots))
		}
	}

	var lCmd tea.Cmd
	m.sessions, lCmd = m.sessions.Update(msg)
	cmds = append(cmds, lCmd)

	var vCmd tea.Cmd
	m.snapshots, vCmd = m.snapshots.Update(msg)
	cmds = append(cmds, vCmd)

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	listW := m.width * 6 / 10
	sideW := m.width - listW

	listPane := lipgloss.NewStyle().
		Width(listW).
		Height(m.height).
		Render(m.sessions.View())

	sidePane := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Background(theme.Mantle).
		Width(sideW - 2).
		Height(m.height - 2).
		Render(m.snapshots.View())

	return lipgloss.JoinHorizontal(lipgloss.Top, listPane, sidePane)
}

// Filtering reports whether the list's search filter is currently active.
func (m Model) Filtering() bool {
	return m.sessions.FilterState() == list.Filtering
}

func renderSnapshots(snapshots []ledgerdto.SnapshotOutput) string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Daily State") + "\n\n")
	if len(snapshots) == 0 {
		sb.WriteString(theme.Muted.Render("no snapshots yet; :snapshot:record <5 scores>"))
		return sb.String()
	}
	// Newest on top.
	for i := len(snapshots) - 1; i >= 0; i-- {
		s := snapshots[i]
		sb.WriteString(theme.Muted.Render(s.Day.Format("2006-01-02")) + "\n")
		sb.WriteString(fmt.Sprintf("  emo %.0f  cog %.0f  awa %.0f  mot %.0f  soc %.0f\n",
			s.Scores.Emotion, s.Scores.Cognition, s.Scores.Awareness, s.Scores.Motivation, s.Scores.Social))
	}
	return sb.String()
}

func (m Model) loadSessionsCmd() tea.Cmd {
	return func() tea.Msg {
		sessions, err := m.port.RecentSessions(context.Background(), recentLimit)
		return SessionsLoadedMsg{Sessions: sessions, Err: err}
	}
}

func (m Model) loadSnapshotsCmd() tea.Cmd {
	return func() tea.Msg {
		snapshots, err := m.port.ListSnapshots(context.Background())
		return SnapshotsLoadedMsg{Snapshots: snapshots, Err: err}
	}
}
