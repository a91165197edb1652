package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ai-usage-tracker/internal/bootstrap"
	eventsUsecase "ai-usage-tracker/internal/events/core/usecase"
	goalsUsecase "ai-usage-tracker/internal/goals/core/usecase"
	"ai-usage-tracker/internal/metrics/core/domain"
	metricsUsecase "ai-usage-tracker/internal/metrics/core/usecase"
)

// logCmd appends one usage event.
func logCmd(a *app) *cobra.Command {
	var (
		in         eventsUsecase.StoreEventInput
		creativity int
		skill      int
	)

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Log one AI usage event",
		RunE: func(cmd *cobra.Command, args []string) error {
			in.CreativityImpact = &creativity
			in.SkillDevelopmentImpact = &skill

			e, err := eventsUsecase.NewStoreEventUseCase(a.store).Execute(cmd.Context(), in)
			if err != nil {
				return err
			}
			a.log.Debug("event logged", "task", e.TaskDescription, "tool", e.AiTool)
			fmt.Fprintln(cmd.OutOrStdout(), "AI usage logged successfully!")
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&in.TaskDescription, "task", "", "task description")
	f.StringVar(&in.AiTool, "tool", "", "AI tool used")
	f.Float64Var(&in.TimeSpentOnAi, "time-spent", 0, "hours spent using AI")
	f.IntVar(&creativity, "creativity", 3, "creativity impact (1-5)")
	f.Float64Var(&in.TimeSaved, "time-saved", 0, "hours saved")
	f.IntVar(&skill, "skill", 3, "skill development impact (1-5)")
	f.StringVar(&in.TaskCompletion, "completion", "Completed", "Completed or Incomplete")

	return cmd
}

// summaryCmd prints the dashboard scores and distributions.
func summaryCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Print the dashboard metrics",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := metricsUsecase.NewGetMetricsUseCase(a.store).Execute(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if s.EventCount == 0 {
				fmt.Fprintln(out, "No data available. Please log some AI usage first.")
				return nil
			}

			fmt.Fprintf(out, "Events:                   %d\n", s.EventCount)
			fmt.Fprintf(out, "AI Dependence Score:      %s\n", domain.FormatPercent(s.AIDependenceScore))
			fmt.Fprintf(out, "Creativity Score:         %s\n", domain.FormatScore(s.CreativityScore))
			fmt.Fprintf(out, "Productivity Score:       %s\n", domain.FormatPercent(s.ProductivityScore))
			fmt.Fprintf(out, "Time Saved:               %s\n", domain.FormatHours(s.TimeSaved))
			fmt.Fprintf(out, "Skill Development Impact: %s\n", domain.FormatScore(s.SkillDevelopmentImpact))

			printDistribution(cmd, "Task Type Distribution", s.TaskDistribution)
			printDistribution(cmd, "AI Tool Usage", s.ToolDistribution)
			return nil
		},
	}
}

func printDistribution(cmd *cobra.Command, title string, d domain.Distribution) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "\n%s\n", title)
	total := d.Total()
	for _, b := range d {
		fmt.Fprintf(out, "  %-40s %d (%s)\n", b.Key, b.Count, domain.FormatPercent(float64(b.Count)*100/float64(total)))
	}
}

// goalCmd checks the dependence score against a reduction target.
func goalCmd(a *app) *cobra.Command {
	var target int

	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Compare AI dependence with a target percentage",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := goalsUsecase.NewEvaluateGoalUseCase(a.store).Execute(cmd.Context(), goalsUsecase.EvaluateGoalInput{TargetPercent: target})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Current AI dependence: %s (target %d%%)\n", domain.FormatPercent(st.CurrentScore), st.TargetPercent)
			fmt.Fprintf(out, "Progress: %.0f%%\n", st.Progress*100)
			if st.Met {
				fmt.Fprintln(out, "Goal met.")
			} else {
				fmt.Fprintln(out, "Goal not met yet.")
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&target, "target", 0, "target AI usage percentage (0-100)")
	return cmd
}

// chartCmd writes one chart PNG to disk.
func chartCmd(a *app) *cobra.Command {
	var (
		kind string
		out  string
	)

	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Render a chart to a PNG file",
		RunE: func(cmd *cobra.Command, args []string) error {
			renderer, err := bootstrap.NewChartRenderer(a.cfg.Charts)
			if err != nil {
				return err
			}

			png, err := metricsUsecase.NewRenderChartUseCase(a.store, renderer).Execute(cmd.Context(), metricsUsecase.ChartKind(kind))
			if err != nil {
				return err
			}

			if out == "" {
				out = kind + ".png"
			}
			if err := os.WriteFile(out, png, 0o644); err != nil {
				return fmt.Errorf("write chart: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVar(&kind, "kind", string(metricsUsecase.ChartTaskDistribution), "chart kind")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default <kind>.png)")
	return cmd
}
