package attendance

import (
	"sort"
	"strings"

	"github.com/edutrack/edutrack-backend-go/internal/domain/attendance"
	"github.com/edutrack/edutrack-backend-go/internal/pkg/timeutil"
)

// DailyHours reduces one day's unpartitioned scan set to the elapsed
// span between the earliest and latest tap, in fractional hours.
// Schedule windows play no part here. A single distinct tap yields
// first == last and zero hours.
func DailyHours(scans []attendance.ScanEvent) attendance.DailyHours {
	if len(scans) == 0 {
		return attendance.DailyHours{}
	}

	first := scans[0].Time
	last := scans[0].Time
	for _, s := range scans[1:] {
		if s.Time < first {
			first = s.Time
		}
		if s.Time > last {
			last = s.Time
		}
	}

	hours := float64(last-first) / float64(timeutil.Hour)
	if hours < 0 {
		hours = 0
	}
	return attendance.DailyHours{First: &first, Last: &last, Hours: hours}
}

// PeriodHours sums one teacher's daily hours over a month, or over one
// week-of-month (ceil(day/7), a plain calendar partition) in weekly
// mode. Dates are visited in sorted order so the float total is stable
// across runs.
func PeriodHours(byDate attendance.ScansByDate, uid string, mode attendance.ReportMode, month string, week int) float64 {
	dates := make([]string, 0, len(byDate))
	for date := range byDate {
		if strings.HasPrefix(date, month) {
			dates = append(dates, date)
		}
	}
	sort.Strings(dates)

	total := 0.0
	for _, date := range dates {
		if mode == attendance.ReportModeWeekly {
			wom, err := timeutil.WeekOfMonth(date)
			if err != nil || wom != week {
				continue
			}
		}
		total += DailyHours(byDate[date][uid]).Hours
	}
	return total
}
