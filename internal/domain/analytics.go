package domain

// DashboardSummary aggregates generation activity over the last 24 hours.
type DashboardSummary struct {
	Generated   int64
	Failed      int64
	Previews    int64
	SuccessRate float64
}
