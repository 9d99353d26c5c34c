// Package cli renders dashboards and history for the terminal.
package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"

	"healthdash/internal/app"
	"healthdash/internal/domain"
)

var (
	bold   = color.New(color.Bold).SprintFunc()
	cyan   = color.New(color.FgCyan, color.Bold).SprintFunc()
	green  = color.New(color.FgGreen).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	gray   = color.New(color.FgHiBlack).SprintFunc()
)

func tierColor(t domain.Tier) func(a ...interface{}) string {
	switch t {
	case domain.TierExcellent:
		return green
	case domain.TierFair:
		return yellow
	}
	return red
}

func signed(n int) string {
	if n > 0 {
		return "+" + humanize.Comma(int64(n))
	}
	return humanize.Comma(int64(n))
}

// RenderDashboard writes the dashboard summary to w.
func RenderDashboard(w io.Writer, d *app.Dashboard) error {
	if d.Empty {
		_, err := fmt.Fprintln(w, gray("No records yet. Save today's readings with `healthdash record`."))
		return err
	}

	s := d.Summary
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s\n\n", cyan("Health dashboard"), gray(d.Latest.Date))
	fmt.Fprintf(&b, "  %-14s %s (%s)\n", "Score", bold(s.Score), signed(s.ScoreDelta))
	bmiLabel := green(s.BMILabel)
	if s.BMILabel != domain.BMILabelNormal {
		bmiLabel = yellow(s.BMILabel)
	}
	fmt.Fprintf(&b, "  %-14s %.2f %s\n", "BMI", s.BMI, bmiLabel)
	fmt.Fprintf(&b, "  %-14s %.1f kcal\n", "BMR", s.BMR)
	fmt.Fprintf(&b, "  %-14s %s (%s vs goal %s)\n", "Steps",
		humanize.Comma(int64(s.Steps)), signed(s.StepsDelta), humanize.Comma(int64(s.StepsGoal)))

	r := d.Recommendation
	fmt.Fprintf(&b, "\n  %s\n", tierColor(r.Tier)(r.Advice))

	wa := d.Water
	fmt.Fprintf(&b, "\n  %-14s %.1f L (%d cups)\n", "Water target", wa.RecommendedLiters, wa.RecommendedCups)
	fmt.Fprintf(&b, "  %-14s %d/%d cups %s %s mL\n", "Water today",
		wa.CupsToday, wa.CupsGoal, progressBar(wa.Progress, 10), humanize.Comma(int64(wa.MlToday)))

	_, err := io.WriteString(w, b.String())
	return err
}

func progressBar(p float64, width int) string {
	filled := int(p * float64(width))
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat(".", width-filled) + "]"
}

// RenderHistory writes records as an aligned table in the order given.
func RenderHistory(w io.Writer, records []domain.HealthRecord) error {
	if len(records) == 0 {
		_, err := fmt.Fprintln(w, gray("No records yet."))
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "DATE\tHEIGHT\tWEIGHT\tBMI\tBMR\tGLUCOSE\tBP\tSTEPS\tWATER\tSCORE")
	for _, r := range records {
		fmt.Fprintf(tw, "%s\t%.1f\t%.1f\t%.2f\t%.1f\t%d\t%d/%d\t%s\t%d\t%s\n",
			r.Date, r.HeightCm, r.WeightKg, r.BMI, r.BMR,
			r.FastingGlucoseMgdl, r.SystolicBP, r.DiastolicBP,
			humanize.Comma(int64(r.Steps)), r.WaterCups,
			tierColor(domain.Recommend(r.Score))(r.Score))
	}
	return tw.Flush()
}

// RenderMetrics writes a one-line summary of a freshly saved record.
func RenderMetrics(w io.Writer, r *domain.HealthRecord) error {
	_, err := fmt.Fprintf(w, "%s %s  BMI %.2f  BMR %.1f kcal  score %s\n",
		green("saved"), r.Date, r.BMI, r.BMR, tierColor(domain.Recommend(r.Score))(r.Score))
	return err
}
