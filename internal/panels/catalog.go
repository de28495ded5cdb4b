package panels

import (
	"fmt"

	"github.com/heorconnect/heor-connect/internal/model"
)

const pendingApproval = "Content will be added later after structure approval."

// Section ids that change panel content.
const (
	SectionGapsHeatmaps    = "gaps-heatmaps"
	SectionRecommendations = "recommendations"
	SectionActionPlan      = "action-plan"
)

// PlatformSections are the tabs of the platform panel.
var PlatformSections = []model.Tab{
	{ID: "overview", Label: "Platform Overview"},
	{ID: "features", Label: "Key Features"},
	{ID: "architecture", Label: "System Architecture"},
}

// AnalysisModules are the tabs of the payer and market access panels.
var AnalysisModules = []model.Tab{
	{ID: "value-proposition", Label: "Value Proposition & Story", Icon: "fas fa-bullseye"},
	{ID: "challenge", Label: "The Challenge: Five Highest-Priority System Gaps", Icon: "fas fa-exclamation-triangle"},
	{ID: SectionGapsHeatmaps, Label: "Gaps Heatmaps", Icon: "fas fa-fire"},
	{ID: SectionRecommendations, Label: "Recommendations", Icon: "fas fa-lightbulb"},
	{ID: "hta-maturity", Label: "HTA Maturity Snapshot", Icon: "fas fa-camera"},
	{ID: "cross-domain", Label: "HTA Cross-Domain Synergy", Icon: "fas fa-sitemap"},
	{ID: SectionActionPlan, Label: "Action Plan & KPIs", Icon: "fas fa-tasks"},
}

// countryFlowSteps is how many analysis modules the country flow shows.
const countryFlowSteps = 5

// HeatmapComponents returns the component labels C1..C12.
func HeatmapComponents() []string {
	out := make([]string, 12)
	for i := range out {
		out[i] = fmt.Sprintf("C%d", i+1)
	}
	return out
}

var introductionFeatures = []model.Item{
	{Icon: "fas fa-chart-line", Title: "Evidence Generation", Body: "Advanced analytics for healthcare evidence generation and assessment"},
	{Icon: "fas fa-balance-scale", Title: "HTA Framework", Body: "Comprehensive Health Technology Assessment methodologies"},
	{Icon: "fas fa-globe", Title: "Regional Focus", Body: "Specialized analysis for MEAR region countries"},
	{Icon: "fas fa-handshake", Title: "Stakeholder Engagement", Body: "Tools for payer and market access perspectives"},
}

var objectives = []model.Item{
	{Icon: "fas fa-bullseye", Title: "Primary Objective", Body: "Advance HEOR & HTA maturity across the MEAR region through comprehensive evidence generation and strategic implementation frameworks."},
	{Icon: "fas fa-chart-network", Title: "Evidence Integration", Body: "Create seamless integration between clinical evidence, economic evaluation, and real-world data for informed decision-making."},
	{Icon: "fas fa-users", Title: "Stakeholder Alignment", Body: "Align payer perspectives, market access strategies, and healthcare system requirements across MEAR countries."},
	{Icon: "fas fa-rocket", Title: "Platform Scalability", Body: "Build a scalable platform that adapts to evolving healthcare landscapes and regulatory requirements."},
}

var platformTags = []model.Item{
	{Title: "Evidence Management"},
	{Title: "HTA Assessment"},
	{Title: "Market Access"},
	{Title: "Payer Analytics"},
}

var countryHighlights = []model.Item{
	{Icon: "fas fa-hospital", Title: "Healthcare System Analysis"},
	{Icon: "fas fa-pills", Title: "Treatment Landscape"},
	{Icon: "fas fa-money-bill-wave", Title: "Reimbursement Framework"},
}

var methodologyItems = []model.Item{
	{Icon: "fas fa-database", Title: "Data Collection", Body: "Systematic gathering of clinical, economic, and real-world evidence data"},
	{Icon: "fas fa-chart-bar", Title: "Analysis Framework", Body: "Advanced statistical and economic modeling techniques"},
	{Icon: "fas fa-balance-scale", Title: "HTA Assessment", Body: "Comprehensive health technology assessment methodologies"},
	{Icon: "fas fa-map", Title: "Regional Adaptation", Body: "Country-specific adaptation of global best practices"},
}
