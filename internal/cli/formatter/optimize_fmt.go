package formatter

import (
	"fmt"
	"strings"

	"github.com/beamshop/opticut/internal/contract"
)

// FormatOptimizeResponse renders the full result bundle as a styled
// CLI dashboard string.
func FormatOptimizeResponse(resp *contract.OptimizeResponse) string {
	var b strings.Builder

	b.WriteString(Header(fmt.Sprintf("Optimized Schedule (%d jobs)", len(resp.OptimizedSchedule))))
	b.WriteString("\n\n")
	writeSchedule(&b, resp)

	b.WriteString("\n")
	b.WriteString(Header("Performance"))
	b.WriteString("\n\n")
	writePerformance(&b, resp)

	b.WriteString("\n")
	b.WriteString(Header("Cost Projection"))
	b.WriteString("\n\n")
	writeCost(&b, resp)

	b.WriteString("\n")
	b.WriteString(Header("Risk"))
	b.WriteString("\n\n")
	writeRisk(&b, resp)

	if len(resp.AlternativeSchedules) > 0 {
		b.WriteString("\n")
		b.WriteString(Header("Alternatives"))
		b.WriteString("\n\n")
		writeScenarios(&b, resp)
	}

	writeInsights(&b, resp)
	writeAlerts(&b, resp)

	return b.String()
}

func writeSchedule(b *strings.Builder, resp *contract.OptimizeResponse) {
	for _, s := range resp.OptimizedSchedule {
		num := fmt.Sprintf("%d.", s.SequenceNumber)
		titleLine := fmt.Sprintf(
			"%s %s  %s  %s",
			Bold(num),
			StyleFg.Render(s.Job.Name),
			PriorityStyle(s.Job.Priority).Render(strings.ToUpper(string(s.Job.Priority))),
			StyleBlue.Render(fmt.Sprintf("(%s)", FormatMinutes(s.ProcessingMin()))),
		)
		b.WriteString(titleLine + "\n")
		b.WriteString(fmt.Sprintf("   %s\n", Dim(fmt.Sprintf(
			"Machine: %s  |  %s → %s  |  buffer %s",
			s.AssignedMachine,
			s.ScheduledStart.Format("Jan 02 15:04"),
			s.ScheduledEnd.Format("Jan 02 15:04"),
			FormatMinutes(s.BufferMin),
		))))
		if !s.OnTime() {
			b.WriteString(fmt.Sprintf("   %s\n", StyleRed.Render(fmt.Sprintf(
				"LATE by %s (due %s)", FormatMinutes(s.TardinessMin()), s.Job.DueDate.Format("Jan 02 15:04")))))
		}
	}
}

func writePerformance(b *strings.Builder, resp *contract.OptimizeResponse) {
	m := resp.PerformanceMetrics
	b.WriteString(fmt.Sprintf("  %s %s   %s %s\n",
		Dim("Processing total:"), Bold(FormatHours(m.TotalMakespanHours)),
		Dim("Wall-clock span:"), Bold(FormatHours(m.ScheduleSpanHours))))
	b.WriteString(fmt.Sprintf("  %s %s   %s %s\n",
		Dim("On-time rate:"), onTimeStyled(m.OnTimeDeliveryRatePct),
		Dim("Total tardiness:"), Bold(FormatMinutes(m.TotalTardinessMin))))
	b.WriteString(fmt.Sprintf("  %s %s   %s %s\n",
		Dim("Avg wait:"), Bold(FormatMinutes(m.AverageWaitTimeMin)),
		Dim("Throughput:"), Bold(fmt.Sprintf("%.2f jobs/h", m.ThroughputJobsPerHour))))

	for _, mu := range resp.ResourceUtilization.Machines {
		bar := Dim("idle")
		if mu.JobsAssigned > 0 {
			bar = StyleGreen.Render(FormatPct(mu.UtilizationPct))
		}
		b.WriteString(fmt.Sprintf("  %s %s %s\n",
			Dim("Machine"), StyleFg.Render(mu.MachineName), bar))
	}
}

func onTimeStyled(pct float64) string {
	text := FormatPct(pct)
	switch {
	case pct >= 95:
		return StyleGreen.Render(text)
	case pct >= 80:
		return StyleYellow.Render(text)
	default:
		return StyleRed.Render(text)
	}
}

func writeCost(b *strings.Builder, resp *contract.OptimizeResponse) {
	c := resp.CostAnalysis
	b.WriteString(fmt.Sprintf("  %s %s\n", Dim("Total:"), Bold(FormatMoney(c.TotalCost))))
	for _, share := range c.Breakdown {
		b.WriteString(fmt.Sprintf("  %s %s %s\n",
			Dim(share.Category+":"),
			StyleFg.Render(FormatMoney(share.Amount)),
			Dim(fmt.Sprintf("(%.0f%% band)", share.SharePct))))
	}
	if c.ProfitOptimization > 0 {
		b.WriteString(fmt.Sprintf("  %s %s\n",
			Dim("Optimization benefit:"), StyleGreen.Render(FormatMoney(c.ProfitOptimization))))
	}
}

func writeRisk(b *strings.Builder, resp *contract.OptimizeResponse) {
	r := resp.RiskAssessment
	b.WriteString(fmt.Sprintf("  %s  %s %s\n",
		RiskIndicator(r.Level),
		Dim("Buffer adequacy:"), Bold(FormatPct(r.BufferAdequacyPct))))
	for _, f := range r.RiskFactors {
		b.WriteString(fmt.Sprintf("  %s %s\n", StyleYellow.Render("FACTOR:"), Dim(f)))
	}
	for _, p := range r.ContingencyPlans {
		b.WriteString(fmt.Sprintf("  %s %s\n", StyleBlue.Render("PLAN:"), Dim(p)))
	}
}

func writeScenarios(b *strings.Builder, resp *contract.OptimizeResponse) {
	for _, s := range resp.AlternativeSchedules {
		b.WriteString(fmt.Sprintf("  %s  %s %s  %s %s  %s %s\n",
			StylePurple.Render(s.Name),
			Dim("span"), Bold(FormatHours(s.MakespanHours)),
			Dim("on-time"), Bold(FormatPct(s.OnTimeRatePct)),
			Dim("cost"), Bold(FormatMoney(s.TotalCost))))
		b.WriteString(fmt.Sprintf("    %s\n", Dim(s.Tradeoff)))
	}
}

func writeInsights(b *strings.Builder, resp *contract.OptimizeResponse) {
	sections := []struct {
		title string
		items []string
	}{
		{"Improvement Areas", resp.OptimizationInsights.ImprovementAreas},
		{"Bottlenecks", resp.OptimizationInsights.Bottlenecks},
		{"Capacity", resp.OptimizationInsights.CapacityRecommendations},
		{"Process", resp.OptimizationInsights.ProcessImprovements},
		{"Strategy", resp.OptimizationInsights.SchedulingStrategies},
	}
	wroteHeader := false
	for _, sec := range sections {
		if len(sec.items) == 0 {
			continue
		}
		if !wroteHeader {
			b.WriteString("\n")
			b.WriteString(Header("Insights"))
			b.WriteString("\n\n")
			wroteHeader = true
		}
		b.WriteString(fmt.Sprintf("  %s\n", StyleHeader.Render(sec.title)))
		for _, item := range sec.items {
			b.WriteString(fmt.Sprintf("    %s %s\n", Dim("·"), StyleFg.Render(item)))
		}
	}
}

func writeAlerts(b *strings.Builder, resp *contract.OptimizeResponse) {
	if len(resp.AlertsAndRecommendations) == 0 && len(resp.Warnings) == 0 {
		return
	}
	b.WriteString("\n")
	for _, a := range resp.AlertsAndRecommendations {
		b.WriteString(StyleYellow.Render(fmt.Sprintf("  ALERT: %s", a)) + "\n")
	}
	for _, w := range resp.Warnings {
		b.WriteString(StyleRed.Render(fmt.Sprintf("  WARNING: %s", w)) + "\n")
	}
}
