// Package output renders analysis results for the terminal.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/jahangeer10/supply-chain-orchestration/pkg/application/services/detection"
	"github.com/jahangeer10/supply-chain-orchestration/pkg/domain/entities"
)

const (
	headerRule  = "============================================================"
	sectionRule = "----------------------------------------"
)

// RenderReport writes the human-readable summary of a completed run.
func RenderReport(w io.Writer, report *entities.Report) {
	fmt.Fprintln(w, "📊 ANALYSIS RESULTS")
	fmt.Fprintln(w, sectionRule)
	fmt.Fprintf(w, "Status: %s\n", report.Status)
	fmt.Fprintf(w, "Total Bottlenecks: %d\n", report.Summary.TotalBottlenecks)
	fmt.Fprintf(w, "Total Recommendations: %d\n", report.Summary.TotalRecommendations)
	fmt.Fprintf(w, "Total Alerts: %d\n", report.Summary.TotalAlerts)
	fmt.Fprintf(w, "High Priority Items: %d\n", report.Summary.HighPriorityItems)
	fmt.Fprintln(w)

	critical := detection.Critical(report.Bottlenecks.Details)
	if len(critical) > 0 {
		fmt.Fprintln(w, "🚨 CRITICAL BOTTLENECKS")
		fmt.Fprintln(w, sectionRule)
		for i, b := range critical {
			fmt.Fprintf(w, "%d. %s: %s\n", i+1, b.Type, b.Message)
			fmt.Fprintf(w, "   Action: %s\n", b.RecommendedAction)
		}
		fmt.Fprintln(w)
	}

	var highPriority []entities.Recommendation
	for _, r := range report.Recommendations {
		if r.IsHighPriority() {
			highPriority = append(highPriority, r)
		}
	}
	if len(highPriority) > 0 {
		fmt.Fprintln(w, "💡 HIGH PRIORITY RECOMMENDATIONS")
		fmt.Fprintln(w, sectionRule)
		for i, r := range highPriority {
			fmt.Fprintf(w, "%d. %s\n", i+1, r.Type)
			if r.ProductID != "" {
				fmt.Fprintf(w, "   Product: %s\n", r.ProductID)
			}
			if r.Message != "" {
				fmt.Fprintf(w, "   Details: %s\n", r.Message)
			}
			fmt.Fprintf(w, "   Agent: %s\n", r.Agent)
		}
		fmt.Fprintln(w)
	}
}

// RenderStatus writes one real-time status snapshot.
func RenderStatus(w io.Writer, status *entities.RealTimeStatus) {
	fmt.Fprintf(w, "\n⏰ %s\n", status.Timestamp.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(w, "Overall Status: %s\n", status.OverallStatus)
	fmt.Fprintf(w, "Critical Issues: %d\n", status.CriticalIssuesCount)
	fmt.Fprintf(w, "Total Bottlenecks: %d\n", status.TotalBottlenecks)

	if len(status.CriticalIssues) > 0 {
		fmt.Fprintln(w, "\n🚨 Top Critical Issues:")
		for i, issue := range status.CriticalIssues {
			fmt.Fprintf(w, "  %d. %s: %s\n", i+1, issue.Type, issue.Message)
		}
	}

	fmt.Fprintln(w, "\n📊 System Health:")
	for _, component := range entities.HealthComponents {
		health := status.SystemHealth[component]
		emoji := "✅"
		if health != entities.HealthGood {
			emoji = "⚠️"
		}
		fmt.Fprintf(w, "  %s %s: %s\n", emoji, componentTitle(component), health)
	}

	fmt.Fprintln(w, "\n"+sectionRule)
}

// RenderDataSummary writes per-table row counts after a load check.
func RenderDataSummary(w io.Writer, counts map[string]int) {
	fmt.Fprintln(w, "\nData Summary:")
	for _, name := range []string{"inventory", "orders", "shipments", "suppliers", "demand_history", "warehouses"} {
		fmt.Fprintf(w, "  %s: %d rows\n", name, counts[name])
	}
}

// Banner writes the program header.
func Banner(w io.Writer, startedAt string) {
	fmt.Fprintln(w, headerRule)
	fmt.Fprintln(w, "SUPPLY CHAIN ORCHESTRATION SYSTEM")
	fmt.Fprintln(w, headerRule)
	fmt.Fprintf(w, "Analysis started at: %s\n\n", startedAt)
}

// Footer writes the program trailer.
func Footer(w io.Writer, completedAt string) {
	fmt.Fprintln(w, headerRule)
	fmt.Fprintf(w, "Analysis completed at: %s\n", completedAt)
}

// componentTitle turns a health-map key into a display name, for example
// "inventory_levels" becomes "Inventory Levels".
func componentTitle(key string) string {
	words := strings.Split(key, "_")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
