package analytics

import (
	"encoding/json"
	"testing"
	"time"

	"career-orient/internal/domain/engagement"
	"career-orient/internal/domain/job"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func app(id int64, company string, at time.Time) engagement.Application {
	jobID := id * 100
	return engagement.Application{
		ID:        id,
		JobID:     &jobID,
		Job:       &job.Summary{ID: jobID, Title: "Role " + company, Company: company},
		CreatedAt: at,
	}
}

func TestMonthKeys(t *testing.T) {
	keys := MonthKeys(day(2026, time.March, 31))
	assert.Equal(t, []string{"2025-10", "2025-11", "2025-12", "2026-01", "2026-02", "2026-03"}, keys)
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil, day(2026, time.October, 18))

	assert.Equal(t, 0, s.Total)
	assert.NotNil(t, s.LastApplications)
	assert.Empty(t, s.LastApplications)
	assert.Empty(t, s.ByCompany)
	require.Len(t, s.ByMonth, MonthWindow)
	for k, v := range s.ByMonth {
		assert.Zero(t, v, "month %s", k)
	}
	assert.Equal(t, []string{"2026-05", "2026-06", "2026-07", "2026-08", "2026-09", "2026-10"}, s.Months())
}

func TestSummarize_SevenApplicationsOverEightMonths(t *testing.T) {
	now := day(2026, time.October, 18)
	apps := []engagement.Application{
		app(1, "Other Co", day(2026, time.March, 10)),
		app(2, "Other Co", day(2026, time.April, 10)),
		app(3, "Other Co", day(2026, time.May, 2)),
		app(4, "Other Co", day(2026, time.July, 20)),
		app(5, "Acme", day(2026, time.August, 15)),
		app(6, "Other Co", day(2026, time.October, 1)),
		app(7, "Acme", day(2026, time.October, 10)),
	}

	s := Summarize(apps, now)

	assert.Equal(t, 7, s.Total)
	assert.Equal(t, map[string]int{"Acme": 2, "Other Co": 5}, s.ByCompany)

	require.Len(t, s.ByMonth, 6)
	sum := 0
	for _, v := range s.ByMonth {
		sum += v
	}
	assert.Equal(t, 5, sum)
	assert.Equal(t, map[string]int{
		"2026-05": 1, "2026-06": 0, "2026-07": 1,
		"2026-08": 1, "2026-09": 0, "2026-10": 2,
	}, s.ByMonth)

	require.Len(t, s.LastApplications, RecentLimit)
	var ids []int64
	for _, ra := range s.LastApplications {
		ids = append(ids, ra.ID)
	}
	assert.Equal(t, []int64{7, 6, 5, 4, 3}, ids)
	require.NotNil(t, s.LastApplications[0].Job)
	assert.Equal(t, "Acme", s.LastApplications[0].Job.Company)
}

func TestSummarize_UnknownJob(t *testing.T) {
	now := day(2026, time.October, 18)
	msg := "hello"
	apps := []engagement.Application{
		app(1, "Acme", day(2026, time.October, 2)),
		{ID: 2, CreatedAt: day(2026, time.October, 3), Message: &msg},
		{ID: 3, CreatedAt: day(2026, time.September, 3)},
	}

	s := Summarize(apps, now)

	assert.Equal(t, 3, s.Total)
	assert.Equal(t, 2, s.ByCompany[UnknownCompany])

	known := 0
	for k, v := range s.ByCompany {
		if k != UnknownCompany {
			known += v
		}
	}
	assert.Equal(t, s.Total-s.ByCompany[UnknownCompany], known)

	require.Len(t, s.LastApplications, 3)
	assert.Equal(t, int64(2), s.LastApplications[0].ID)
	assert.Nil(t, s.LastApplications[0].Job)
	require.NotNil(t, s.LastApplications[0].Message)
	assert.Equal(t, "hello", *s.LastApplications[0].Message)
}

func TestSummarize_TieBreakByIDDesc(t *testing.T) {
	at := day(2026, time.October, 5)
	s := Summarize([]engagement.Application{app(1, "A", at), app(2, "B", at)}, at)

	require.Len(t, s.LastApplications, 2)
	assert.Equal(t, int64(2), s.LastApplications[0].ID)
	assert.Equal(t, int64(1), s.LastApplications[1].ID)
}

func TestSummary_JSONShape(t *testing.T) {
	s := Summarize(nil, day(2026, time.January, 1))
	b, err := json.Marshal(s)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"total": 0,
		"lastApplications": [],
		"byCompany": {},
		"byMonth": {"2025-08":0,"2025-09":0,"2025-10":0,"2025-11":0,"2025-12":0,"2026-01":0}
	}`, string(b))
}
