package reports

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	reportdto "lifeos/internal/modules/report/dto"
	"lifeos/internal/ui/theme"
)

type ReportsPort interface {
	ListReports(ctx context.Context) ([]reportdto.ReportOutput, error)
}

type ReportsLoadedMsg struct {
	Reports []reportdto.ReportOutput
	Err     error
}

type reportItem struct {
	report reportdto.ReportOutput
}

func (i reportItem) Title() string {
	return fmt.Sprintf("#%d  %s", i.report.ID, i.report.CreatedAt.Format("2006-01-02"))
}
func (i reportItem) Description() string {
	return fmt.Sprintf("week %s → %s",
		i.report.WindowStart.Format("01-02"), i.report.WindowEnd.Format("01-02"))
}
func (i reportItem) FilterValue() string { return i.report.CreatedAt.Format("2006-01-02") }

type Model struct {
	port    ReportsPort
	reports list.Model
	preview viewport.Model
	width   int
	height  int
}

func New(port ReportsPort) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Yellow).BorderForeground(theme.Yellow)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Blue).BorderForeground(theme.Yellow)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Weekly Reports"
	l.Styles.Title = theme.Title
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)

	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().
		Background(theme.Mantle).
		Foreground(theme.Text).
		Padding(1)

	return Model{port: port, reports: l, preview: vp}
}

func (m Model) Init() tea.Cmd {
	return m.Reload()
}

// Reload refetches the archive; the app calls it after an archive or export.
func (m Model) Reload() tea.Cmd {
	return func() tea.Msg {
		reports, err := m.port.ListReports(context.Background())
		return ReportsLoadedMsg{Reports: reports, Err: err}
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.reports.SetSize(m.width*3/10, m.height)
		m.preview.Width = m.width - m.width*3/10 - 4
		m.preview.Height = m.height - 4

	case ReportsLoadedMsg:
		if msg.Err != nil {
			m.reports.Title = "reports load failed: " + msg.Err.Error()
			break
		}
		items := make([]list.Item, len(msg.Reports))
		for i, report := range msg.Reports {
			items[i] = reportItem{report: report}
		}
		cmds = append(cmds, m.reports.SetItems(items))
		m.syncPreview()
	}

	prevIdx := m.reports.Index()
	var lCmd tea.Cmd
	m.reports, lCmd = m.reports.Update(msg)
	cmds = append(cmds, lCmd)
	if m.reports.Index() != prevIdx {
		m.syncPreview()
	}

	var vCmd tea.Cmd
	m.preview, vCmd = m.preview.Update(msg)
	cmds = append(cmds, vCmd)

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	listW := m.width * 3 / 10
	previewW := m.width - listW

	listPane := lipgloss.NewStyle().
		Width(listW).
		Height(m.height).
		Render(m.reports.View())

	previewPane := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Background(theme.Mantle).
		Width(previewW - 2).
		Height(m.height - 2).
		Render(m.preview.View())

	return lipgloss.JoinHorizontal(lipgloss.Top, listPane, previewPane)
}

// SelectedReportID returns the highlighted report's id, if any.
func (m Model) SelectedReportID() (int64, bool) {
	if item, ok := m.reports.SelectedItem().(reportItem); ok {
		return item.report.ID, true
	}
	return 0, false
}

// Filtering is always false; the report list has no filter. Kept so the app
// can treat all tabs uniformly.
func (m Model) Filtering() bool { return false }

func (m *Model) syncPreview() {
	if item, ok := m.reports.SelectedItem().(reportItem); ok {
		m.preview.SetContent(item.report.Content)
	} else {
		m.preview.SetContent(theme.Muted.Render("no reports archived; :report:generate then :report:archive"))
	}
}
