package domain

import "fmt"

// PerformanceFlag marks an active campaign whose engagement fell below the
// configured floors. It never changes the campaign status.
type PerformanceFlag struct {
	AvgDailyImpressions float64
	CTR                 float64
	MinDailyImpressions float64
	MinCTR              float64
}

// Message renders the flag into the text stored on errorMessage.
func (f PerformanceFlag) Message() string {
	return fmt.Sprintf("underperforming: avg %.0f impressions/day (floor %.0f), CTR %.2f%% (floor %.2f%%)",
		f.AvgDailyImpressions, f.MinDailyImpressions, f.CTR*100, f.MinCTR*100)
}
