package sphere

import (
	"time"
)

// SpendDirection labels the trend of a spend series
type SpendDirection string

const (
	SpendDirectionUp     SpendDirection = "up"
	SpendDirectionDown   SpendDirection = "down"
	SpendDirectionStable SpendDirection = "stable"
)

// directionBand is the relative change below which the trend is
// reported as stable.
const directionBand = 0.05

// CumulativeMonthSeries produces one point per day from the 1st of the
// month containing month through the current day, never projecting into
// the future. Each point carries that day's outflow total and the running
// cumulative total. The series is recomputed fresh on every call.
func CumulativeMonthSeries(transactions []*Transaction, month, now time.Time) []*TrendPoint {
	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, month.Location())
	last := startOfDay(now)

	// End the series at the month boundary when now is past it.
	endOfMonth := first.AddDate(0, 1, -1)
	if last.After(endOfMonth) {
		last = endOfMonth
	}
	if last.Before(first) {
		return nil
	}

	var series []*TrendPoint
	cumulative := 0.0
	for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
		daily := DailySpendOn(transactions, day).TotalSpend
		cumulative += daily
		series = append(series, &TrendPoint{
			Day:             day,
			DailySpend:      daily,
			CumulativeSpend: cumulative,
		})
	}

	return series
}

// WeekOverWeekDelta compares the trailing week of a daily spend series
// against the week before it. Entries 0-7 whole days old count as this
// week, 8-14 as last. A zero last-week baseline yields a percent change
// of zero, not a division fault: there is simply no prior baseline.
func WeekOverWeekDelta(series []*DailySpend, now time.Time) *WeekDelta {
	delta := &WeekDelta{}

	for _, ds := range series {
		age := wholeDaysBefore(now, ds.Date)
		switch {
		case age >= 0 && age <= 7:
			delta.ThisWeekTotal += ds.TotalSpend
		case age >= 8 && age <= 14:
			delta.LastWeekTotal += ds.TotalSpend
		}
	}

	if delta.LastWeekTotal > 0 {
		delta.PercentChange = (delta.ThisWeekTotal - delta.LastWeekTotal) / delta.LastWeekTotal * 100
	}

	return delta
}

// TrendDirection compares the average daily spend of the first half of a
// series against the second half and reports whether spending is
// accelerating, cooling, or flat. This approximates week-over-week
// acceleration without needing a second month of history.
func TrendDirection(series []*TrendPoint) SpendDirection {
	if len(series) < 2 {
		return SpendDirectionStable
	}

	mid := len(series) / 2
	firstAvg := averageDaily(series[:mid])
	secondAvg := averageDaily(series[mid:])

	if firstAvg == 0 {
		if secondAvg > 0 {
			return SpendDirectionUp
		}
		return SpendDirectionStable
	}

	change := (secondAvg - firstAvg) / firstAvg
	switch {
	case change > directionBand:
		return SpendDirectionUp
	case change < -directionBand:
		return SpendDirectionDown
	default:
		return SpendDirectionStable
	}
}

func averageDaily(points []*TrendPoint) float64 {
	if len(points) == 0 {
		return 0
	}
	sum := 0.0
	for _, p := range points {
		sum += p.DailySpend
	}
	return sum / float64(len(points))
}
