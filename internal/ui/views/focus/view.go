package focus

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	ledgerdto "lifeos/internal/modules/ledger/dto"
	sessiondto "lifeos/internal/modules/session/dto"
	"lifeos/internal/ui/theme"
)

// FocusPort is the slice of the engine this tab needs. The app layer binds it
// to the signed-in user.
type FocusPort interface {
	GetActive(ctx context.Context) (sessiondto.ActiveSessionOutput, error)
	Elapsed(ctx context.Context) (sessiondto.ElapsedOutput, error)
	TodayMinutes(ctx context.Context) (int, error)
	ThemeStats(ctx context.Context) ([]ledgerdto.ThemeStatOutput, error)
}

type ActiveLoadedMsg struct {
	Active sessiondto.ActiveSessionOutput
	Err    error
}

type ElapsedMsg struct {
	Elapsed sessiondto.ElapsedOutput
	Err     error
}

type TodayMsg struct {
	Minutes int
	Err     error
}

type ThemesLoadedMsg struct {
	Stats []ledgerdto.ThemeStatOutput
	Err   error
}

type themeItem struct {
	stat ledgerdto.ThemeStatOutput
}

func (i themeItem) Title() string { return i.stat.Icon + " " + i.stat.Theme }
func (i themeItem) Description() string {
	return fmt.Sprintf("Lv %d  %s", i.stat.Level, i.stat.Description)
}
func (i themeItem) FilterValue() string { return i.stat.Theme }

type Model struct {
	port FocusPort

	themes  list.Model
	active  sessiondto.ActiveSessionOutput
	elapsed sessiondto.ElapsedOutput
	running bool
	today   int
	width   int
	height  int
}

func New(port FocusPort) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Yellow).BorderForeground(theme.Yellow)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Blue).BorderForeground(theme.Yellow)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Life Domains"
	l.Styles.Title = theme.Title
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	return Model{port: port, themes: l}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadThemesCmd(), m.Refresh())
}

// Refresh reloads everything time-dependent. The app layer calls it from its
// one-second tick while a session is running.
func (m Model) Refresh() tea.Cmd {
	return tea.Batch(m.loadActiveCmd(), m.loadTodayCmd())
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.themes.SetSize(m.width*4/10, m.height)

	case ActiveLoadedMsg:
		if msg.Err != nil {
			m.running = false
			m.active = sessiondto.ActiveSessionOutput{}
			m.elapsed = sessiondto.ElapsedOutput{}
		} else {
			m.running = true
			m.active = msg.Active
			cmds = append(cmds, m.loadElapsedCmd())
		}

	case ElapsedMsg:
		if msg.Err == nil {
			m.elapsed = msg.Elapsed
		}

	case TodayMsg:
		if msg.Err == nil {
			m.today = msg.Minutes
		}

	case ThemesLoadedMsg:
		if msg.Err != nil {
			m.themes.Title = "domains load failed: " + msg.Err.Error()
			break
		}
		items := make([]list.Item, len(msg.Stats))
		for i, stat := range msg.Stats {
			items[i] = themeItem{stat: stat}
		}
		cmds = append(cmds, m.themes.SetItems(items))
	}

	var lCmd tea.Cmd
	m.themes, lCmd = m.themes.Update(msg)
	cmds = append(cmds, lCmd)

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	listW := m.width * 4 / 10
	detailW := m.width - listW

	listPane := lipgloss.NewStyle().
		Width(listW).
		Height(m.height).
		Render(m.themes.View())

	detailPane := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Background(theme.Mantle).
		Width(detailW - 2).
		Height(m.height - 2).
		Padding(1).
		Render(m.renderSession())

	return lipgloss.JoinHorizontal(lipgloss.Top, listPane, detailPane)
}

// SelectedTheme returns the highlighted domain key, if any.
func (m Model) SelectedTheme() (string, bool) {
	if item, ok := m.themes.SelectedItem().(themeItem); ok {
		return item.stat.Theme, true
	}
	return "", false
}

// Filtering reports whether the list's search filter is currently active.
func (m Model) Filtering() bool {
	return m.themes.FilterState() == list.Filtering
}

func (m Model) renderSession() string {
	var sb strings.Builder
	if m.running {
		sb.WriteString(theme.Hot.Render("● focusing") + "\n\n")
		sb.WriteString(theme.Muted.Render("task:   ") + m.active.TaskLabel + "\n")
		sb.WriteString(theme.Muted.Render("domain: ") + m.active.Theme + "\n")
		sb.WriteString(theme.Muted.Render("stage:  ") + m.active.Stage + "\n")
		sb.WriteString(fmt.Sprintf("%s%02d:%02d\n", theme.Muted.Render("timer:  "), m.elapsed.Minutes, m.elapsed.Seconds))
		sb.WriteString("\n" + theme.Muted.Render(":focus:finish <5 scores> to bank it, :focus:abandon to drop it"))
	} else {
		sb.WriteString(theme.Title.Render("No session running") + "\n\n")
		sb.WriteString(theme.Muted.Render(":focus:start <theme> <stage> <task> to begin"))
	}
	sb.WriteString(fmt.Sprintf("\n\n%s%d min", theme.Muted.Render("today:  "), m.today))
	return sb.String()
}

func (m Model) loadThemesCmd() tea.Cmd {
	return func() tea.Msg {
		stats, err := m.port.ThemeStats(context.Background())
		return ThemesLoadedMsg{Stats: stats, Err: err}
	}
}

func (m Model) loadActiveCmd() tea.Cmd {
	return func() tea.Msg {
		active, err := m.port.GetActive(context.Background())
		return ActiveLoadedMsg{Active: active, Err: err}
	}
}

func (m Model) loadElapsedCmd() tea.Cmd {
	return func() tea.Msg {
		elapsed, err := m.port.Elapsed(context.Background())
		return ElapsedMsg{Elapsed: elapsed, Err: err}
	}
}

func (m Model) loadTodayCmd() tea.Cmd {
	return func() tea.Msg {
		minutes, err := m.port.TodayMinutes(context.Background())
		return TodayMsg{Minutes: minutes, Err: err}
	}
}
