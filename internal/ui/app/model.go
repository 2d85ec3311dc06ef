package app

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	economydto "lifeos/internal/modules/economy/dto"
	ledgerdto "lifeos/internal/modules/ledger/dto"
	reportdto "lifeos/internal/modules/report/dto"
	sessiondto "lifeos/internal/modules/session/dto"
	"lifeos/internal/ui/components"
	"lifeos/internal/ui/theme"
	focusview "lifeos/internal/ui/views/focus"
	journalview "lifeos/internal/ui/views/journal"
	reportsview "lifeos/internal/ui/views/reports"
	shopview "lifeos/internal/ui/views/shop"
	statusview "lifeos/internal/ui/views/status"
)

// ─── ports ───────────────────────────────────────────────────────────────────
// Each port is the minimal interface this orchestration layer requires; every
// call is implicitly scoped to the signed-in user by the bootstrap bridges.

type sessionPort interface {
	Start(ctx context.Context, theme, taskLabel, stage string) (sessiondto.StartOutput, error)
	Complete(ctx context.Context, emotion, cognition, awareness, motivation, social float64) (sessiondto.CompleteOutput, error)
	Abandon(ctx context.Context) error
	GetActive(ctx context.Context) (sessiondto.ActiveSessionOutput, error)
	Elapsed(ctx context.Context) (sessiondto.ElapsedOutput, error)
}

type ledgerPort interface {
	RecordSnapshot(ctx context.Context, emotion, cognition, awareness, motivation, social float64) (ledgerdto.SnapshotOutput, error)
	FinanceStatus(ctx context.Context) (ledgerdto.FinanceOutput, error)
	ThemeStats(ctx context.Context) ([]ledgerdto.ThemeStatOutput, error)
	TodayFocusedMinutes(ctx context.Context) (int, error)
	RecentSessions(ctx context.Context, limit int) ([]ledgerdto.SessionOutput, error)
	Achievements(ctx context.Context) ([]ledgerdto.BadgeOutput, error)
	ListSnapshots(ctx context.Context) ([]ledgerdto.SnapshotOutput, error)
}

type economyPort interface {
	ListGoods(ctx context.Context) ([]economydto.GoodOutput, error)
	Purchase(ctx context.Context, itemName string) (economydto.PurchaseOutput, error)
}

type reportPort interface {
	GenerateWeekly(ctx context.Context) (reportdto.GenerateOutput, error)
	Archive(ctx context.Context, content string) (reportdto.ReportOutput, error)
	ListReports(ctx context.Context) ([]reportdto.ReportOutput, error)
	Export(ctx context.Context, reportID int64) (reportdto.ExportOutput, error)
}

// ─── tab index ───────────────────────────────────────────────────────────────

type tabID int

const (
	tabFocus tabID = iota
	tabShop
	tabJournal
	tabReports
	tabStatus
	tabCount
)

var tabLabels = [tabCount]string{
	"Focus", "Shop", "Journal", "Reports", "Status",
}

// ─── async messages ───────────────────────────────────────────────────────────

type tickMsg time.Time

type sessionStartedMsg struct {
	out sessiondto.StartOutput
	err error
}

type sessionEndedMsg struct {
	out sessiondto.CompleteOutput
	err error
}

type sessionAbandonedMsg struct{ err error }

type snapshotRecordedMsg struct {
	out ledgerdto.SnapshotOutput
	err error
}

type reportGeneratedMsg struct {
	out reportdto.GenerateOutput
	err error
}

type reportArchivedMsg struct {
	out reportdto.ReportOutput
	err error
}

type reportExportedMsg struct {
	out reportdto.ExportOutput
	err error
}

// ─── key bindings ─────────────────────────────────────────────────────────────

type keyMap struct {
	Tab     key.Binding
	Help    key.Binding
	Palette key.Binding
	Quit    key.Binding
	Enter   key.Binding
	Export  key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Tab:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Palette: key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "palette")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
		Enter:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "buy (shop)")),
		Export:  key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "export (reports)")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Help, k.Palette, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.Enter, k.Export},
		{k.Help, k.Palette, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It owns tab routing, the running-session
// second tick, the global help overlay, and the command palette. All business
// logic is delegated to port interfaces; all rendering to sub-views.
type Model struct {
	userID string

	session sessionPort
	ledger  ledgerPort
	report  reportPort

	focusView   focusview.Model
	shopView    shopview.Model
	journalView journalview.Model
	reportsView reportsview.Model
	statusView  statusview.Model

	activeTab     tabID
	keys          keyMap
	help          help.Model
	showHelp      bool
	palette       components.Palette
	hasActive     bool
	ticking       bool
	lastNarrative string
	status        string
	width         int
	height        int
}

// ─── constructor ─────────────────────────────────────────────────────────────

func NewModel(userID string, session sessionPort, ledger ledgerPort, economy economyPort, report reportPort) Model {
	return Model{
		userID:      userID,
		session:     session,
		ledger:      ledger,
		report:      report,
		focusView:   focusview.New(focusPortBridge{session: session, ledger: ledger}),
		shopView:    shopview.New(shopPortBridge{economy: economy, ledger: ledger}),
		journalView: journalview.New(journalPortBridge{ledger: ledger}),
		reportsView: reportsview.New(reportsPortBridge{report: report}),
		statusView:  statusview.New(statusPortBridge{ledger: ledger}),
		activeTab:   tabFocus,
		keys:        defaultKeys(),
		help:        help.New(),
		palette:     components.NewPalette(),
		status:      "ready",
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.focusView.Init(),
		m.shopView.Init(),
		m.journalView.Init(),
		m.reportsView.Init(),
		m.statusView.Init(),
	)
}

// ─── update ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// The palette intercepts all input while open.
	if m.palette.Visible() {
		if _, isKey := msg.(tea.KeyMsg); isKey {
			var cmd tea.Cmd
			m.palette, cmd = m.palette.Update(msg)
			return m, cmd
		}
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.palette.SetWidth(min(m.width-4, 80))
		m.help.Width = m.width
		m.propagateSize()

	case tickMsg:
		if !m.hasActive {
			m.ticking = false
			break
		}
		cmds = append(cmds, m.focusView.Refresh(), scheduleTick())

	case focusview.ActiveLoadedMsg:
		wasActive := m.hasActive
		m.hasActive = msg.Err == nil
		if m.hasActive && !m.ticking {
			m.ticking = true
			cmds = append(cmds, scheduleTick())
		}
		if m.hasActive && !wasActive {
			m.status = "session recovered: " + msg.Active.TaskLabel
		}

	case sessionStartedMsg:
		if msg.err != nil {
			m.status = "focus start failed: " + msg.err.Error()
		} else {
			m.hasActive = true
			m.status = "focusing: " + msg.out.TaskLabel
			if !m.ticking {
				m.ticking = true
				cmds = append(cmds, scheduleTick())
			}
			cmds = append(cmds, m.focusView.Refresh())
		}

	case sessionEndedMsg:
		if msg.err != nil {
			m.status = "focus finish failed: " + msg.err.Error()
		} else {
			m.hasActive = false
			m.status = fmt.Sprintf("banked %d min on %s", msg.out.DurationMin, msg.out.Theme)
			cmds = append(cmds, m.focusView.Refresh(), m.journalView.Reload(), m.statusView.Reload())
		}

	case sessionAbandonedMsg:
		if msg.err != nil {
			m.status = "abandon failed: " + msg.err.Error()
		} else {
			m.hasActive = false
			m.status = "session abandoned, nothing recorded"
			cmds = append(cmds, m.focusView.Refresh())
		}

	case snapshotRecordedMsg:
		if msg.err != nil {
			m.status = "snapshot failed: " + msg.err.Error()
		} else {
			m.status = "state snapshot saved for " + msg.out.Day.Format("2006-01-02")
			cmds = append(cmds, m.journalView.Reload())
		}

	case shopview.PurchasedMsg:
		if msg.Err != nil {
			m.status = "purchase failed: " + msg.Err.Error()
		} else {
			m.status = fmt.Sprintf("bought %s, balance %d", msg.Out.ItemName, msg.Out.NewBalance)
			cmds = append(cmds, m.statusView.Reload())
		}
		var cmd tea.Cmd
		m.shopView, cmd = m.shopView.Update(msg)
		return m, tea.Batch(append(cmds, cmd)...)

	case reportGeneratedMsg:
		if msg.err != nil {
			m.status = "report generation failed: " + msg.err.Error()
		} else {
			m.lastNarrative = msg.out.Narrative
			m.status = "narrative ready; :report:archive to keep it"
			m.activeTab = tabReports
		}

	case reportArchivedMsg:
		if msg.err != nil {
			m.status = "archive failed: " + msg.err.Error()
		} else {
			m.lastNarrative = ""
			m.status = fmt.Sprintf("archived report #%d", msg.out.ID)
			cmds = append(cmds, m.reportsView.Reload())
		}

	case reportExportedMsg:
		if msg.err != nil {
			m.status = "export failed: " + msg.err.Error()
		} else {
			m.status = "exported to " + msg.out.Path
		}

	case components.PaletteSubmitMsg:
		return m.executePalette(msg.Input)

	case components.PaletteCancelMsg:
		m.status = "ready"

	case tea.KeyMsg:
		if m.showHelp {
			if msg.String() == "?" || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}

		// Yield to sub-view when its search filter is active.
		if m.subViewFiltering() {
			break
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "tab":
			m.activeTab = (m.activeTab + 1) % tabCount
			cmds = append(cmds, m.reloadTab())
		case "shift+tab":
			m.activeTab = (m.activeTab + tabCount - 1) % tabCount
			cmds = append(cmds, m.reloadTab())
		case "?":
			m.showHelp = !m.showHelp
		case ":":
			cmds = append(cmds, m.palette.Open())
			return m, tea.Batch(cmds...)
		case "enter":
			if m.activeTab == tabShop {
				cmds = append(cmds, m.shopView.BuySelected())
			}
		case "e":
			if m.activeTab == tabReports {
				if id, ok := m.reportsView.SelectedReportID(); ok {
					cmds = append(cmds, m.exportReportCmd(id))
				}
			}
		}
	}

	// Propagate the message to the active tab's sub-view.
	var tabCmd tea.Cmd
	switch m.activeTab {
	case tabFocus:
		m.focusView, tabCmd = m.focusView.Update(msg)
	case tabShop:
		m.shopView, tabCmd = m.shopView.Update(msg)
	case tabJournal:
		m.journalView, tabCmd = m.journalView.Update(msg)
	case tabReports:
		m.reportsView, tabCmd = m.reportsView.Update(msg)
	case tabStatus:
		m.statusView, tabCmd = m.statusView.Update(msg)
	}
	cmds = append(cmds, tabCmd)

	return m, tea.Batch(cmds...)
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	tabBar := m.renderTabBar()
	statusBar := m.renderStatusBar()
	tabBarH := lipgloss.Height(tabBar)
	statusBarH := lipgloss.Height(statusBar)

	contentH := m.height - tabBarH - statusBarH
	if contentH < 1 {
		contentH = 1
	}

	var content string
	switch {
	case m.showHelp:
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).
			Render(m.help.View(m.keys))
	case m.palette.Visible():
		content = lipgloss.Place(m.width, contentH,
			lipgloss.Center, lipgloss.Center, m.palette.View())
	default:
		content = m.activeView()
	}

	return lipgloss.JoinVertical(lipgloss.Left, tabBar, content, statusBar)
}

func (m Model) activeView() string {
	switch m.activeTab {
	case tabFocus:
		return m.focusView.View()
	case tabShop:
		return m.shopView.View()
	case tabJournal:
		return m.journalView.View()
	case tabReports:
		return m.reportsView.View()
	case tabStatus:
		return m.statusView.View()
	}
	return ""
}

func (m Model) renderTabBar() string {
	parts := make([]string, tabCount)
	for i := tabID(0); i < tabCount; i++ {
		label := tabLabels[i]
		if i == m.activeTab {
			parts[i] = theme.Hot.Render(" " + label + " ")
		} else {
			parts[i] = theme.Muted.Render(" " + label + " ")
		}
	}
	sep := theme.Muted.Render(" │ ")
	bar := "lifeos:" + m.userID + "  " + strings.Join(parts, sep)
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar) + "\n"
}

func (m Model) renderStatusBar() string {
	left := m.status
	if m.hasActive {
		left = theme.Hot.Render("● focusing") + "  " + left
	}
	right := theme.Muted.Render("?:help  tab:switch  :::palette  q:quit")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	bar := left + strings.Repeat(" ", gap) + right
	return "\n" + lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar)
}

// ─── palette execution ────────────────────────────────────────────────────────

func (m Model) executePalette(input string) (tea.Model, tea.Cmd) {
	if strings.TrimSpace(input) == "" {
		return m, nil
	}
	parts := strings.Fields(input)

	switch parts[0] {
	case "focus:start":
		if len(parts) < 4 {
			m.status = "usage: focus:start <theme> <stage> <task>"
			return m, nil
		}
		task := strings.TrimSpace(strings.TrimPrefix(input, parts[0]+" "+parts[1]+" "+parts[2]))
		return m, m.startFocusCmd(parts[1], parts[2], task)

	case "focus:finish":
		scores, err := parseScores(parts[1:])
		if err != nil {
			m.status = "usage: focus:finish <emotion> <cognition> <awareness> <motivation> <social>"
			return m, nil
		}
		return m, m.finishFocusCmd(scores)

	case "focus:abandon":
		return m, m.abandonFocusCmd()

	case "shop:buy":
		if len(parts) < 2 {
			m.status = "usage: shop:buy <item>"
			return m, nil
		}
		item := strings.TrimSpace(strings.TrimPrefix(input, parts[0]))
		m.activeTab = tabShop
		return m, m.shopView.Buy(item)

	case "snapshot:record":
		scores, err := parseScores(parts[1:])
		if err != nil {
			m.status = "usage: snapshot:record <emotion> <cognition> <awareness> <motivation> <social>"
			return m, nil
		}
		return m, m.recordSnapshotCmd(scores)

	case "report:generate":
		m.status = "asking the narrator…"
		return m, m.generateReportCmd()

	case "report:archive":
		if m.lastNarrative == "" {
			m.status = "nothing to archive; run report:generate first"
			return m, nil
		}
		return m, m.archiveReportCmd(m.lastNarrative)

	case "report:export":
		if len(parts) < 2 {
			m.status = "usage: report:export <id>"
			return m, nil
		}
		id, err := strconv.ParseInt(parts[1], 10, 64)
		if err != nil {
			m.status = "invalid report id"
			return m, nil
		}
		m.activeTab = tabReports
		return m, m.exportReportCmd(id)

	default:
		m.status = "unknown command: " + parts[0]
	}
	return m, nil
}

func parseScores(fields []string) ([5]float64, error) {
	var scores [5]float64
	if len(fields) != 5 {
		return scores, fmt.Errorf("want 5 scores, got %d", len(fields))
	}
	for i, field := range fields {
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return scores, err
		}
		scores[i] = v
	}
	return scores, nil
}

// ─── helpers ─────────────────────────────────────────────────────────────────

// subViewFiltering reports whether the active tab's list filter is open,
// in which case global key bindings must yield to allow free typing.
func (m Model) subViewFiltering() bool {
	switch m.activeTab {
	case tabFocus:
		return m.focusView.Filtering()
	case tabShop:
		return m.shopView.Filtering()
	case tabJournal:
		return m.journalView.Filtering()
	}
	return false
}

func (m *Model) propagateSize() {
	sz := tea.WindowSizeMsg{Width: m.width, Height: m.height - 3}
	m.focusView, _ = m.focusView.Update(sz)
	m.shopView, _ = m.shopView.Update(sz)
	m.journalView, _ = m.journalView.Update(sz)
	m.reportsView, _ = m.reportsView.Update(sz)
	m.statusView, _ = m.statusView.Update(sz)
}

// reloadTab refreshes whatever the newly focused tab shows, so aggregates are
// never stale after ledger writes made from other tabs.
func (m Model) reloadTab() tea.Cmd {
	switch m.activeTab {
	case tabFocus:
		return m.focusView.Refresh()
	case tabShop:
		return m.shopView.Init()
	case tabJournal:
		return m.journalView.Reload()
	case tabReports:
		return m.reportsView.Reload()
	case tabStatus:
		return m.statusView.Reload()
	}
	return nil
}

func scheduleTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// ─── async commands ───────────────────────────────────────────────────────────

func (m Model) startFocusCmd(themeKey, stage, task string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.session.Start(context.Background(), themeKey, task, stage)
		return sessionStartedMsg{out: out, err: err}
	}
}

func (m Model) finishFocusCmd(scores [5]float64) tea.Cmd {
	return func() tea.Msg {
		out, err := m.session.Complete(context.Background(), scores[0], scores[1], scores[2], scores[3], scores[4])
		return sessionEndedMsg{out: out, err: err}
	}
}

func (m Model) abandonFocusCmd() tea.Cmd {
	return func() tea.Msg {
		return sessionAbandonedMsg{err: m.session.Abandon(context.Background())}
	}
}

func (m Model) recordSnapshotCmd(scores [5]float64) tea.Cmd {
	return func() tea.Msg {
		out, err := m.ledger.RecordSnapshot(context.Background(), scores[0], scores[1], scores[2], scores[3], scores[4])
		return snapshotRecordedMsg{out: out, err: err}
	}
}

func (m Model) generateReportCmd() tea.Cmd {
	return func() tea.Msg {
		out, err := m.report.GenerateWeekly(context.Background())
		return reportGeneratedMsg{out: out, err: err}
	}
}

func (m Model) archiveReportCmd(content string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.report.Archive(context.Background(), content)
		return reportArchivedMsg{out: out, err: err}
	}
}

func (m Model) exportReportCmd(id int64) tea.Cmd {
	return func() tea.Msg {
		out, err := m.report.Export(context.Background(), id)
		return reportExportedMsg{out: out, err: err}
	}
}

// ─── port bridges ─────────────────────────────────────────────────────────────
// Each bridge narrows the broad ports above to the minimal interface a
// sub-view needs, keeping view packages free of knowledge about the wider
// port surface.

type focusPortBridge struct {
	session sessionPort
	ledger  ledgerPort
}

func (b focusPortBridge) GetActive(ctx context.Context) (sessiondto.ActiveSessionOutput, error) {
	return b.session.GetActive(ctx)
}
func (b focusPortBridge) Elapsed(ctx context.Context) (sessiondto.ElapsedOutput, error) {
	return b.session.Elapsed(ctx)
}
func (b focusPortBridge) TodayMinutes(ctx context.Context) (int, error) {
	return b.ledger.TodayFocusedMinutes(ctx)
}
func (b focusPortBridge) ThemeStats(ctx context.Context) ([]ledgerdto.ThemeStatOutput, error) {
	return b.ledger.ThemeStats(ctx)
}

type shopPortBridge struct {
	economy economyPort
	ledger  ledgerPort
}

func (b shopPortBridge) ListGoods(ctx context.Context) ([]economydto.GoodOutput, error) {
	return b.economy.ListGoods(ctx)
}
func (b shopPortBridge) Purchase(ctx context.Context, itemName string) (economydto.PurchaseOutput, error) {
	return b.economy.Purchase(ctx, itemName)
}
func (b shopPortBridge) Balance(ctx context.Context) (ledgerdto.FinanceOutput, error) {
	return b.ledger.FinanceStatus(ctx)
}

type journalPortBridge struct {
	ledger ledgerPort
}

func (b journalPortBridge) RecentSessions(ctx context.Context, limit int) ([]ledgerdto.SessionOutput, error) {
	return b.ledger.RecentSessions(ctx, limit)
}
func (b journalPortBridge) ListSnapshots(ctx context.Context) ([]ledgerdto.SnapshotOutput, error) {
	return b.ledger.ListSnapshots(ctx)
}

type reportsPortBridge struct {
	report reportPort
}

func (b reportsPortBridge) ListReports(ctx context.Context) ([]reportdto.ReportOutput, error) {
	return b.report.ListReports(ctx)
}

type statusPortBridge struct {
	ledger ledgerPort
}

func (b statusPortBridge) FinanceStatus(ctx context.Context) (ledgerdto.FinanceOutput, error) {
	return b.ledger.FinanceStatus(ctx)
}
func (b statusPortBridge) ThemeStats(ctx context.Context) ([]ledgerdto.ThemeStatOutput, error) {
	return b.ledger.ThemeStats(ctx)
}
func (b statusPortBridge) Achievements(ctx context.Context) ([]ledgerdto.BadgeOutput, error) {
	return b.ledger.Achievements(ctx)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
