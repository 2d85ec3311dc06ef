package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"lifeos/internal/bootstrap"
	"lifeos/internal/platform/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var dataDir, userID string

	root := &cobra.Command{
		Use:           "lifeos",
		Short:         "Focus ledger and progression engine",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&dataDir, "data", defaultDataDir(), "data directory")
	root.PersistentFlags().StringVar(&userID, "user", defaultUser(), "acting user")

	root.AddCommand(newTUICmd(&dataDir, &userID))
	root.AddCommand(newFocusCmd(&dataDir, &userID))
	root.AddCommand(newSnapshotCmd(&dataDir, &userID))
	root.AddCommand(newShopCmd(&dataDir, &userID))
	root.AddCommand(newStatsCmd(&dataDir, &userID))
	root.AddCommand(newReportCmd(&dataDir, &userID))
	root.AddCommand(newUserCmd(&dataDir))
	return root
}

func defaultDataDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".lifeos")
	}
	return ".lifeos"
}

func defaultUser() string {
	if u := os.Getenv("LIFEOS_USER"); u != "" {
		return u
	}
	return "me"
}

func loadApp(dataDir string) (*bootstrap.App, error) {
	cfg, err := config.New(dataDir)
	if err != nil {
		return nil, err
	}
	return bootstrap.New(cfg)
}

func newTUICmd(dataDir, userID *string) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the lifeos dashboard",
		RunE: func(_ *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			return bootstrap.RunTUI(*userID, app)
		},
	}
}

func newFocusCmd(dataDir, userID *string) *cobra.Command {
	focus := &cobra.Command{Use: "focus", Short: "Focus session lifecycle"}

	var themeKey, stage string
	start := &cobra.Command{
		Use:   "start <task>",
		Short: "Start a focus session",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			out, err := app.SessionCLI.Start(context.Background(), *userID, themeKey, strings.Join(args, " "), stage)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "focusing on %q (%s/%s) since %s\n", out.TaskLabel, out.Theme, out.Stage, out.StartedAt.Format("15:04:05"))
			return nil
		},
	}
	start.Flags().StringVar(&themeKey, "theme", "core-ability", "life domain: core-ability|innovation|exploration|wellbeing|social|aesthetics")
	start.Flags().StringVar(&stage, "stage", "Process", "work stage: Input|Process|Output")

	status := &cobra.Command{
		Use:   "status",
		Short: "Show the running session, if any",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			out, err := app.SessionCLI.Elapsed(context.Background(), *userID)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%q (%s) %02d:%02d elapsed\n", out.TaskLabel, out.Theme, out.Minutes, out.Seconds)
			return nil
		},
	}

	var scores []float64
	finish := &cobra.Command{
		Use:   "finish --scores e,c,a,m,s",
		Short: "Finish the running session and bank its minutes",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if len(scores) != 5 {
				return fmt.Errorf("--scores needs exactly 5 values (emotion,cognition,awareness,motivation,social)")
			}
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			out, err := app.SessionCLI.Complete(context.Background(), *userID, scores[0], scores[1], scores[2], scores[3], scores[4])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "banked %d min on %s (%q), event #%d\n", out.DurationMin, out.Theme, out.TaskLabel, out.EventID)
			return nil
		},
	}
	finish.Flags().Float64SliceVar(&scores, "scores", nil, "five 0-10 scores: emotion,cognition,awareness,motivation,social")

	abandon := &cobra.Command{
		Use:   "abandon",
		Short: "Drop the running session without recording anything",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			if err := app.SessionCLI.Abandon(context.Background(), *userID); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "session abandoned, nothing recorded")
			return nil
		},
	}

	focus.AddCommand(start, status, finish, abandon)
	return focus
}

func newSnapshotCmd(dataDir, userID *string) *cobra.Command {
	snapshot := &cobra.Command{Use: "snapshot", Short: "Daily state snapshots"}

	var scores []float64
	record := &cobra.Command{
		Use:   "record --scores e,c,a,m,s",
		Short: "Record today's state snapshot (replaces an earlier one)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if len(scores) != 5 {
				return fmt.Errorf("--scores needs exactly 5 values (emotion,cognition,awareness,motivation,social)")
			}
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			out, err := app.LedgerCLI.RecordSnapshot(context.Background(), *userID, scores[0], scores[1], scores[2], scores[3], scores[4])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "snapshot saved for %s\n", out.Day.Format("2006-01-02"))
			return nil
		},
	}
	record.Flags().Float64SliceVar(&scores, "scores", nil, "five 0-10 scores: emotion,cognition,awareness,motivation,social")

	list := &cobra.Command{
		Use:   "list",
		Short: "List recorded snapshots",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			snapshots, err := app.LedgerCLI.ListSnapshots(context.Background(), *userID)
			if err != nil {
				return err
			}
			if len(snapshots) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no snapshots")
				return nil
			}
			for _, s := range snapshots {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\temo %.0f  cog %.0f  awa %.0f  mot %.0f  soc %.0f\n",
					s.Day.Format("2006-01-02"), s.Scores.Emotion, s.Scores.Cognition, s.Scores.Awareness, s.Scores.Motivation, s.Scores.Social)
			}
			return nil
		},
	}

	snapshot.AddCommand(record, list)
	return snapshot
}

func newShopCmd(dataDir, userID *string) *cobra.Command {
	shop := &cobra.Command{Use: "shop", Short: "Reward shop"}

	shop.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List purchasable rewards",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			goods, err := app.EconomyCLI.ListGoods(context.Background())
			if err != nil {
				return err
			}
			for _, good := range goods {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\t%d credits\n", good.Icon, good.Name, good.Price)
			}
			return nil
		},
	})

	shop.AddCommand(&cobra.Command{
		Use:   "buy <item>",
		Short: "Spend focus credits on a reward",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			out, err := app.EconomyCLI.Purchase(context.Background(), *userID, strings.Join(args, " "))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "bought %s for %d, balance %d\n", out.ItemName, out.Cost, out.NewBalance)
			return nil
		},
	})

	return shop
}

func newStatsCmd(dataDir, userID *string) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show progression, finance, and achievements",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			ctx := context.Background()

			stats, err := app.LedgerCLI.ThemeStats(ctx, *userID)
			if err != nil {
				return err
			}
			for _, stat := range stats {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %-14s Lv %-3d %5.1f%%  %d min\n",
					stat.Icon, stat.Theme, stat.Level, stat.ProgressPercent, stat.TotalMinutes)
			}

			finance, err := app.LedgerCLI.FinanceStatus(ctx, *userID)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "earned %d  spent %d  balance %d\n", finance.TotalMinutes, finance.TotalSpent, finance.Balance)

			today, err := app.LedgerCLI.TodayFocusedMinutes(ctx, *userID)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "today %d min\n", today)

			badges, err := app.LedgerCLI.Achievements(ctx, *userID)
			if err != nil {
				return err
			}
			for _, badge := range badges {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "★ %s (%d min)\n", badge.Name, badge.Threshold)
			}
			return nil
		},
	}
}

func newReportCmd(dataDir, userID *string) *cobra.Command {
	report := &cobra.Command{Use: "report", Short: "Weekly narrative reports"}

	var archive bool
	generate := &cobra.Command{
		Use:   "generate",
		Short: "Generate this week's narrative",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			out, err := app.ReportCLI.GenerateWeekly(context.Background(), *userID)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), out.Narrative)
			if archive {
				archived, err := app.ReportCLI.Archive(context.Background(), *userID, out.Narrative)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "archived as report #%d\n", archived.ID)
			}
			return nil
		},
	}
	generate.Flags().BoolVar(&archive, "archive", false, "archive the narrative after printing it")

	report.AddCommand(generate)

	report.AddCommand(&cobra.Command{
		Use:   "archive <text>",
		Short: "Archive a narrative verbatim",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			out, err := app.ReportCLI.Archive(context.Background(), *userID, strings.Join(args, " "))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "archived as report #%d\n", out.ID)
			return nil
		},
	})

	report.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List archived reports, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			reports, err := app.ReportCLI.ListReports(context.Background(), *userID)
			if err != nil {
				return err
			}
			if len(reports) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no reports archived")
				return nil
			}
			for _, r := range reports {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "#%d\t%s\tweek %s → %s\n",
					r.ID, r.CreatedAt.Format("2006-01-02"), r.WindowStart.Format("01-02"), r.WindowEnd.Format("01-02"))
			}
			return nil
		},
	})

	report.AddCommand(&cobra.Command{
		Use:   "export <id>",
		Short: "Export an archived report as a markdown note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid report id %q", args[0])
			}
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			out, err := app.ReportCLI.Export(context.Background(), *userID, id)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "exported report #%d to %s\n", out.ReportID, out.Path)
			return nil
		},
	})

	return report
}

func newUserCmd(dataDir *string) *cobra.Command {
	user := &cobra.Command{Use: "user", Short: "Account management"}

	var password string
	register := &cobra.Command{
		Use:   "register <name>",
		Short: "Register an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" {
				return fmt.Errorf("--password is required")
			}
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			out, err := app.AuthCLI.Register(context.Background(), args[0], password)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "registered %s\n", out.Name)
			return nil
		},
	}
	register.Flags().StringVar(&password, "password", "", "account password")

	var verifyPassword string
	verify := &cobra.Command{
		Use:   "verify <name>",
		Short: "Check a name/password pair",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if verifyPassword == "" {
				return fmt.Errorf("--password is required")
			}
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			out, err := app.AuthCLI.Verify(context.Background(), args[0], verifyPassword)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "ok, registered %s\n", out.CreatedAt.Format("2006-01-02"))
			return nil
		},
	}
	verify.Flags().StringVar(&verifyPassword, "password", "", "account password")

	list := &cobra.Command{
		Use:   "list",
		Short: "List accounts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			users, err := app.AuthCLI.ListUsers(context.Background())
			if err != nil {
				return err
			}
			if len(users) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no accounts")
				return nil
			}
			for _, u := range users {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\tsince %s\n", u.Name, u.CreatedAt.Format("2006-01-02"))
			}
			return nil
		},
	}

	user.AddCommand(register, verify, list)
	return user
}
