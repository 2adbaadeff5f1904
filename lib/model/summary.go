package model

type SummaryMetrics struct {
	Count            int
	AveragePotential float64
	CoveredRegions   []string
	RegionCounts     map[string]int
}

// RadarSeries is closed: the first category and score are repeated at the end.
type RadarSeries struct {
	Categories []string
	Scores     []int
}

type MapPoint struct {
	Region    string
	Latitude  float64
	Longitude float64
	Count     int
}
