package attendance

import (
	"sort"

	"github.com/edutrack/edutrack-backend-go/internal/domain/attendance"
	"github.com/edutrack/edutrack-backend-go/internal/pkg/timeutil"
)

// Reconcile assigns a day's raw scans to schedule windows and derives a
// per-window report. It is a pure function: no I/O, no shared state,
// identical inputs always yield identical output.
//
// Matching rules, per scan in ascending time order:
//   - a window is a candidate when the scan falls inside its buffered
//     interval [start-G, end+G];
//   - a candidate is strict when the scan also falls inside the core
//     interval [start, end], and any strict candidate outranks any
//     buffer-only candidate;
//   - among candidates of equal rank the window whose start is closest
//     to the scan wins, and on an exact distance tie the earlier window
//     in ascending-start order wins;
//   - a scan matching no window is discarded. That is a defined
//     outcome, not an error.
//
// Tie-breaking depends on ascending-start window order, so matching
// runs over a stable-sorted view of the windows whatever order the
// caller passes; reports still come back one per window, in the
// caller's order.
//
// Known limitation: when two windows overlap and a scan falls strictly
// inside both cores, only the first window in ascending-start order
// receives it and the other reports missing. Double-booked timetables
// should avoid overlapping windows.
func Reconcile(windows []attendance.ScheduleWindow, scans []attendance.ScanEvent, graceMinutes int) []attendance.WindowReport {
	grace := timeutil.TimeOfDay(graceMinutes) * timeutil.Minute

	// Ascending-start view over the caller's slice.
	order := make([]int, len(windows))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return windows[order[a]].Start < windows[order[b]].Start
	})

	times := make([]timeutil.TimeOfDay, len(scans))
	for i, s := range scans {
		times[i] = s.Time
	}
	sort.Slice(times, func(a, b int) bool { return times[a] < times[b] })

	assigned := make([][]timeutil.TimeOfDay, len(windows))
	for _, t := range times {
		best := -1
		bestStrict := false
		var bestDist timeutil.TimeOfDay

		for _, wi := range order {
			w := windows[wi]
			if t < w.Start-grace || t > w.End+grace {
				continue
			}
			strict := t >= w.Start && t <= w.End
			dist := t - w.Start
			if dist < 0 {
				dist = -dist
			}

			switch {
			case best == -1:
				// first candidate of any rank
			case strict && !bestStrict:
				// strict always displaces a buffer match
			case strict == bestStrict && dist < bestDist:
				// same rank, strictly closer start
			default:
				continue
			}
			best, bestStrict, bestDist = wi, strict, dist
		}

		if best >= 0 {
			assigned[best] = append(assigned[best], t)
		}
	}

	reports := make([]attendance.WindowReport, len(windows))
	for i, w := range windows {
		reports[i] = windowReport(w, dedupe(assigned[i]), grace)
	}
	return reports
}

// dedupe collapses exact-duplicate timestamps in an ascending log.
func dedupe(log []timeutil.TimeOfDay) []timeutil.TimeOfDay {
	out := log[:0]
	for i, t := range log {
		if i == 0 || t != log[i-1] {
			out = append(out, t)
		}
	}
	return out
}

func windowReport(w attendance.ScheduleWindow, log []timeutil.TimeOfDay, grace timeutil.TimeOfDay) attendance.WindowReport {
	report := attendance.WindowReport{
		Subject: w.Subject,
		Status:  attendance.StatusMissing,
	}
	if len(log) == 0 {
		return report
	}

	checkIn := log[0]
	report.CheckIn = &checkIn
	if len(log) > 1 {
		checkOut := log[len(log)-1]
		report.CheckOut = &checkOut
	}

	// Equality with start+G is still on time.
	if checkIn > w.Start+grace {
		report.Status = attendance.StatusLate
	} else {
		report.Status = attendance.StatusPresent
	}
	return report
}
