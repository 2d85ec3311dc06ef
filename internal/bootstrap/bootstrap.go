package bootstrap

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	authinadapter "lifeos/internal/modules/auth/adapter/in"
	authoutadapter "lifeos/internal/modules/auth/adapter/out"
	authservice "lifeos/internal/modules/auth/service"
	authusecase "lifeos/internal/modules/auth/usecase"
	economyinadapter "lifeos/internal/modules/economy/adapter/in"
	economyoutadapter "lifeos/internal/modules/economy/adapter/out"
	economydto "lifeos/internal/modules/economy/dto"
	economyservice "lifeos/internal/modules/economy/service"
	economyusecase "lifeos/internal/modules/economy/usecase"
	ledgerinadapter "lifeos/internal/modules/ledger/adapter/in"
	ledgeroutadapter "lifeos/internal/modules/ledger/adapter/out"
	ledgerdto "lifeos/internal/modules/ledger/dto"
	ledgerservice "lifeos/internal/modules/ledger/service"
	ledgerusecase "lifeos/internal/modules/ledger/usecase"
	reportinadapter "lifeos/internal/modules/report/adapter/in"
	reportoutadapter "lifeos/internal/modules/report/adapter/out"
	reportdto "lifeos/internal/modules/report/dto"
	reportport "lifeos/internal/modules/report/port/out"
	reportservice "lifeos/internal/modules/report/service"
	reportusecase "lifeos/internal/modules/report/usecase"
	sessioninadapter "lifeos/internal/modules/session/adapter/in"
	sessionoutadapter "lifeos/internal/modules/session/adapter/out"
	sessiondto "lifeos/internal/modules/session/dto"
	sessionservice "lifeos/internal/modules/session/service"
	sessionusecase "lifeos/internal/modules/session/usecase"
	"lifeos/internal/platform/clock"
	"lifeos/internal/platform/config"
	"lifeos/internal/platform/id"
	"lifeos/internal/platform/userlock"
	uiapp "lifeos/internal/ui/app"
)

type App struct {
	LedgerCLI  ledgerinadapter.CLIHandler
	SessionCLI sessioninadapter.CLIHandler
	EconomyCLI economyinadapter.CLIHandler
	ReportCLI  reportinadapter.CLIHandler
	AuthCLI    authinadapter.CLIHandler
}

func New(cfg config.Config) (*App, error) {
	clk := clock.SystemClock{}
	ids := id.RandomHex{}
	// One lock manager for the whole engine; the ledger and economy services
	// must serialize on the same per-user mutex.
	locks := userlock.NewKeyed()

	eventStore, err := ledgeroutadapter.NewSQLiteEventStore(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("new event store: %w", err)
	}
	ledgerUC := ledgerusecase.NewInteractor(ledgerservice.NewLedgerService(clk, eventStore, locks))

	sessionUC := sessionusecase.NewInteractor(
		sessionservice.NewSessionService(clk, ids),
		sessionoutadapter.NewLedgerAdapter(ledgerUC),
		sessionoutadapter.NewFileActiveSessionStore(cfg.DataDir),
	)

	economyUC := economyusecase.NewInteractor(economyservice.NewEconomyService(
		economyoutadapter.NewYAMLCatalogStore(cfg.DataDir),
		economyoutadapter.NewLedgerAdapter(ledgerUC),
		locks,
	))

	var narrator reportport.Narrator
	if cfg.NarratorPlugin != "" {
		narrator = reportoutadapter.NewPluginNarrator(cfg.NarratorPlugin)
	} else {
		narrator = reportoutadapter.NewChatNarrator(cfg.NarratorAPIKey, cfg.NarratorBaseURL, cfg.NarratorTimeout)
	}
	reportStore, err := reportoutadapter.NewSQLiteReportStore(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("new report store: %w", err)
	}
	reportUC := reportusecase.NewInteractor(reportservice.NewReportService(
		clk,
		reportStore,
		reportoutadapter.NewLedgerWeeklySource(ledgerUC),
		narrator,
		reportoutadapter.NewMarkdownNoteExporter(cfg.DataDir),
	))

	userStore, err := authoutadapter.NewSQLiteUserStore(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("new user store: %w", err)
	}
	authUC := authusecase.NewInteractor(authservice.NewAuthService(clk, userStore))

	return &App{
		LedgerCLI:  ledgerinadapter.NewCLIHandler(ledgerUC),
		SessionCLI: sessioninadapter.NewCLIHandler(sessionUC),
		EconomyCLI: economyinadapter.NewCLIHandler(economyUC),
		ReportCLI:  reportinadapter.NewCLIHandler(reportUC),
		AuthCLI:    authinadapter.NewCLIHandler(authUC),
	}, nil
}

func RunTUI(userID string, app *App) error {
	model := uiapp.NewModel(
		userID,
		userSession{user: userID, h: app.SessionCLI},
		userLedger{user: userID, h: app.LedgerCLI},
		userEconomy{user: userID, h: app.EconomyCLI},
		userReport{user: userID, h: app.ReportCLI},
	)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}

// The TUI ports are user-scoped; these adapters bind the signed-in user to
// the per-call userID the handlers expect.

type userSession struct {
	user string
	h    sessioninadapter.CLIHandler
}

func (a userSession) Start(ctx context.Context, theme, taskLabel, stage string) (sessiondto.StartOutput, error) {
	return a.h.Start(ctx, a.user, theme, taskLabel, stage)
}
func (a userSession) Complete(ctx context.Context, emotion, cognition, awareness, motivation, social float64) (sessiondto.CompleteOutput, error) {
	return a.h.Complete(ctx, a.user, emotion, cognition, awareness, motivation, social)
}
func (a userSession) Abandon(ctx context.Context) error {
	return a.h.Abandon(ctx, a.user)
}
func (a userSession) GetActive(ctx context.Context) (sessiondto.ActiveSessionOutput, error) {
	return a.h.GetActive(ctx, a.user)
}
func (a userSession) Elapsed(ctx context.Context) (sessiondto.ElapsedOutput, error) {
	return a.h.Elapsed(ctx, a.user)
}

type userLedger struct {
	user string
	h    ledgerinadapter.CLIHandler
}

func (a userLedger) RecordSnapshot(ctx context.Context, emotion, cognition, awareness, motivation, social float64) (ledgerdto.SnapshotOutput, error) {
	return a.h.RecordSnapshot(ctx, a.user, emotion, cognition, awareness, motivation, social)
}
func (a userLedger) FinanceStatus(ctx context.Context) (ledgerdto.FinanceOutput, error) {
	return a.h.FinanceStatus(ctx, a.user)
}
func (a userLedger) ThemeStats(ctx context.Context) ([]ledgerdto.ThemeStatOutput, error) {
	return a.h.ThemeStats(ctx, a.user)
}
func (a userLedger) TodayFocusedMinutes(ctx context.Context) (int, error) {
	return a.h.TodayFocusedMinutes(ctx, a.user)
}
func (a userLedger) RecentSessions(ctx context.Context, limit int) ([]ledgerdto.SessionOutput, error) {
	return a.h.RecentSessions(ctx, a.user, limit)
}
func (a userLedger) Achievements(ctx context.Context) ([]ledgerdto.BadgeOutput, error) {
	return a.h.Achievements(ctx, a.user)
}
func (a userLedger) ListSnapshots(ctx context.Context) ([]ledgerdto.SnapshotOutput, error) {
	return a.h.ListSnapshots(ctx, a.user)
}

type userEconomy struct {
	user string
	h    economyinadapter.CLIHandler
}

func (a userEconomy) ListGoods(ctx context.Context) ([]economydto.GoodOutput, error) {
	return a.h.ListGoods(ctx)
}
func (a userEconomy) Purchase(ctx context.Context, itemName string) (economydto.PurchaseOutput, error) {
	return a.h.Purchase(ctx, a.user, itemName)
}

type userReport struct {
	user string
	h    reportinadapter.CLIHandler
}

func (a userReport) GenerateWeekly(ctx context.Context) (reportdto.GenerateOutput, error) {
	return a.h.GenerateWeekly(ctx, a.user)
}
func (a userReport) Archive(ctx context.Context, content string) (reportdto.ReportOutput, error) {
	return a.h.Archive(ctx, a.user, content)
}
func (a userReport) ListReports(ctx context.Context) ([]reportdto.ReportOutput, error) {
	return a.h.ListReports(ctx, a.user)
}
func (a userReport) Export(ctx context.Context, reportID int64) (reportdto.ExportOutput, error) {
	return a.h.Export(ctx, a.user, reportID)
}
