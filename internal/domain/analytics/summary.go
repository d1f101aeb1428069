// Package analytics aggregates a user's applications for the profile page.
package analytics

import (
	"sort"
	"time"

	"career-orient/internal/domain/engagement"
)

const (
	RecentLimit = 5
	MonthWindow = 6

	// UnknownCompany groups applications whose job no longer exists.
	UnknownCompany = "Unknown"

	monthLayout = "2006-01"
)

type RecentJob struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Company string `json:"company"`
}

type RecentApplication struct {
	ID        int64      `json:"id"`
	Job       *RecentJob `json:"job"`
	CreatedAt time.Time  `json:"createdAt"`
	Message   *string    `json:"message"`
}

// Summary is rendered as-is in the profile response. encoding/json sorts map
// keys, so ByMonth serializes oldest month first.
type Summary struct {
	Total            int                 `json:"total"`
	LastApplications []RecentApplication `json:"lastApplications"`
	ByCompany        map[string]int      `json:"byCompany"`
	ByMonth          map[string]int      `json:"byMonth"`
}

// Months returns the ByMonth keys oldest first.
func (s Summary) Months() []string {
	keys := make([]string, 0, len(s.ByMonth))
	for k := range s.ByMonth {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// MonthKeys returns the window of MonthWindow "YYYY-MM" keys ending with the
// month containing now, oldest first. Months are computed in UTC.
func MonthKeys(now time.Time) []string {
	now = now.UTC()
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	keys := make([]string, 0, MonthWindow)
	for i := MonthWindow - 1; i >= 0; i-- {
		keys = append(keys, first.AddDate(0, -i, 0).Format(monthLayout))
	}
	return keys
}

// Summarize computes the application summary as of now.
func Summarize(apps []engagement.Application, now time.Time) Summary {
	s := Summary{
		Total:            len(apps),
		LastApplications: make([]RecentApplication, 0, RecentLimit),
		ByCompany:        make(map[string]int),
		ByMonth:          make(map[string]int, MonthWindow),
	}

	for _, k := range MonthKeys(now) {
		s.ByMonth[k] = 0
	}

	for _, a := range apps {
		company := UnknownCompany
		if a.JobID != nil && a.Job != nil {
			company = a.Job.Company
		}
		s.ByCompany[company]++

		k := a.CreatedAt.UTC().Format(monthLayout)
		if _, ok := s.ByMonth[k]; ok {
			s.ByMonth[k]++
		}
	}

	sorted := make([]engagement.Application, len(apps))
	copy(sorted, apps)
	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].CreatedAt.Equal(sorted[j].CreatedAt) {
			return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
		}
		return sorted[i].ID > sorted[j].ID
	})
	if len(sorted) > RecentLimit {
		sorted = sorted[:RecentLimit]
	}

	for _, a := range sorted {
		ra := RecentApplication{ID: a.ID, CreatedAt: a.CreatedAt, Message: a.Message}
		if a.JobID != nil && a.Job != nil {
			ra.Job = &RecentJob{ID: a.Job.ID, Title: a.Job.Title, Company: a.Job.Company}
		}
		s.LastApplications = append(s.LastApplications, ra)
	}

	return s
}
