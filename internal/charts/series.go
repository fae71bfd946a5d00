// Package charts reshapes aggregate statistic rows into the flat name/value
// series the statistics view feeds to its charts. Pure projections, no
// rendering.
package charts

import "github.com/vgtracker-dev/vgtracker/internal/stats"

// Point is one chart datum.
type Point struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// PopularitySeries maps most-owned rows onto bar chart points.
func PopularitySeries(rows []stats.GamePopularity) []Point {
	points := make([]Point, 0, len(rows))
	for _, r := range rows {
		points = append(points, Point{Name: r.Title, Value: float64(r.NumberOwned)})
	}
	return points
}

// RatingSeries maps best-rated rows onto bar chart points.
func RatingSeries(rows []stats.GameRating) []Point {
	points := make([]Point, 0, len(rows))
	for _, r := range rows {
		points = append(points, Point{Name: r.Title, Value: r.AverageRating})
	}
	return points
}

// DeveloperPie keeps the topN developers as individual slices and folds the
// remainder into a trailing "Other" slice. The Other slice is always present,
// even when nothing falls into it.
func DeveloperPie(rows []stats.DeveloperCount, topN int) []Point {
	if topN > len(rows) {
		topN = len(rows)
	}

	points := make([]Point, 0, topN+1)
	for _, r := range rows[:topN] {
		points = append(points, Point{Name: r.Developer, Value: float64(r.GameCount)})
	}

	var others int64
	for _, r := range rows[topN:] {
		others += r.GameCount
	}
	points = append(points, Point{Name: "Other", Value: float64(others)})

	return points
}

// CollectorSeries maps library-size rows onto bar chart points.
func CollectorSeries(rows []stats.Collector) []Point {
	points := make([]Point, 0, len(rows))
	for _, r := range rows {
		points = append(points, Point{Name: r.Username, Value: float64(r.OwnedGames)})
	}
	return points
}
