// Package schedule holds the pure filtering, grouping and statistics
// functions shared by the API services and the dashboard client. Nothing in
// this package mutates its input or touches I/O.
package schedule

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"construction-dashboard-api/internal/domain"
)

// ActivityRecord is an activity as the dashboard sees it: the domain row plus
// the owning project's title for list views and search.
type ActivityRecord struct {
	domain.Activity
	ProjectTitle string `json:"projectTitle,omitempty"`
}

// Filter is the criteria object applied to an activity record set. A zero or
// "all" value for Status/Category/Priority means the field is not filtered.
type Filter struct {
	Status    string
	Category  string
	Priority  string
	Search    string
	ProjectID uuid.UUID
	From      *time.Time
	To        *time.Time
}

// Stats summarizes a record set by status. Pending counts both the pending and
// to_do statuses.
type Stats struct {
	Total      int `json:"total"`
	Completed  int `json:"completed"`
	InProgress int `json:"inProgress"`
	Pending    int `json:"pending"`
	Delayed    int `json:"delayed"`
	Progress   int `json:"progress"`
}

// WeekGroup is one week's activities within a phase group
type WeekGroup struct {
	Week       int              `json:"week"`
	Activities []ActivityRecord `json:"activities"`
}

// PhaseGroup is one construction phase's activities, sub-grouped by week
type PhaseGroup struct {
	Phase domain.SitePhase `json:"phase"`
	Weeks []WeekGroup      `json:"weeks"`
}

func filterActive(v string) bool {
	return v != "" && !strings.EqualFold(v, "all")
}

// recordDate is the date an activity is filtered against: the daily-log work
// date when present, otherwise the scheduled start time.
func recordDate(r ActivityRecord) *time.Time {
	if r.WorkDate != nil {
		return r.WorkDate
	}
	return r.StartTime
}

// Matches reports whether a single record satisfies the filter. All predicates
// are ANDed; there is no OR or negation.
func (f Filter) Matches(r ActivityRecord) bool {
	if filterActive(f.Status) && r.Status != domain.NormalizeActivityStatus(f.Status) {
		return false
	}
	if filterActive(f.Category) && r.Category != domain.ActivityCategory(strings.ToLower(f.Category)) {
		return false
	}
	if filterActive(f.Priority) && r.Priority != domain.ActivityPriority(strings.ToLower(f.Priority)) {
		return false
	}
	if f.ProjectID != uuid.Nil && r.ProjectID != f.ProjectID {
		return false
	}
	if f.From != nil || f.To != nil {
		d := recordDate(r)
		if d == nil {
			return false
		}
		if f.From != nil && d.Before(*f.From) {
			return false
		}
		if f.To != nil && d.After(*f.To) {
			return false
		}
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		needle := strings.ToLower(s)
		if !strings.Contains(strings.ToLower(r.Title), needle) &&
			!strings.Contains(strings.ToLower(r.Contractor), needle) &&
			!strings.Contains(strings.ToLower(r.Supervisor), needle) &&
			!strings.Contains(strings.ToLower(r.ProjectTitle), needle) {
			return false
		}
	}
	return true
}

// FilterActivities returns the subsequence of records matching the filter.
// The input slice is never modified.
func FilterActivities(records []ActivityRecord, f Filter) []ActivityRecord {
	out := make([]ActivityRecord, 0, len(records))
	for _, r := range records {
		if f.Matches(r) {
			out = append(out, r)
		}
	}
	return out
}

// ComputeStats counts records per status bucket in a single pass. An empty
// input yields all-zero counts and 0% progress.
func ComputeStats(records []ActivityRecord) Stats {
	s := Stats{Total: len(records)}
	for _, r := range records {
		switch r.Status {
		case domain.ActivityStatusCompleted:
			s.Completed++
		case domain.ActivityStatusInProgress:
			s.InProgress++
		case domain.ActivityStatusDelayed:
			s.Delayed++
		case domain.ActivityStatusPending, domain.ActivityStatusToDo:
			s.Pending++
		}
	}
	if s.Total > 0 {
		s.Progress = int(math.Round(float64(s.Completed) / float64(s.Total) * 100))
	}
	return s
}

// GroupByPhaseAndWeek partitions records into the five construction phases in
// display order, then by week number ascending within each phase. Records
// without a phase tag fall into construction; a missing week number defaults
// to week 1. No record is ever dropped.
func GroupByPhaseAndWeek(records []ActivityRecord) []PhaseGroup {
	byPhase := make(map[domain.SitePhase]map[int][]ActivityRecord, len(domain.SitePhaseOrder))
	for _, r := range records {
		phase := domain.NormalizeSitePhase(string(r.SitePhase))
		week := r.WeekNumber
		if week < 1 {
			week = 1
		}
		if byPhase[phase] == nil {
			byPhase[phase] = make(map[int][]ActivityRecord)
		}
		byPhase[phase][week] = append(byPhase[phase][week], r)
	}

	groups := make([]PhaseGroup, 0, len(domain.SitePhaseOrder))
	for _, phase := range domain.SitePhaseOrder {
		weeksByNumber := byPhase[phase]
		weekNumbers := make([]int, 0, len(weeksByNumber))
		for w := range weeksByNumber {
			weekNumbers = append(weekNumbers, w)
		}
		sort.Ints(weekNumbers)

		weeks := make([]WeekGroup, 0, len(weekNumbers))
		for _, w := range weekNumbers {
			weeks = append(weeks, WeekGroup{Week: w, Activities: weeksByNumber[w]})
		}
		groups = append(groups, PhaseGroup{Phase: phase, Weeks: weeks})
	}
	return groups
}

// UpcomingActivities returns up to limit not-yet-completed activities starting
// at or after now, ordered by start time. Activities without a start time are
// skipped.
func UpcomingActivities(records []ActivityRecord, now time.Time, limit int) []ActivityRecord {
	upcoming := make([]ActivityRecord, 0, limit)
	for _, r := range records {
		if r.IsDone() || r.StartTime == nil || r.StartTime.Before(now) {
			continue
		}
		upcoming = append(upcoming, r)
	}
	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].StartTime.Before(*upcoming[j].StartTime)
	})
	if len(upcoming) > limit {
		upcoming = upcoming[:limit]
	}
	return upcoming
}

// ToRecords wraps domain activities with an optional project title lookup
func ToRecords(activities []domain.Activity, titleOf func(uuid.UUID) string) []ActivityRecord {
	records := make([]ActivityRecord, 0, len(activities))
	for _, a := range activities {
		rec := ActivityRecord{Activity: a}
		if titleOf != nil {
			rec.ProjectTitle = titleOf(a.ProjectID)
		}
		records = append(records, rec)
	}
	return records
}
