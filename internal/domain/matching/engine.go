// Package matching ranks jobs against the tags implied by a user's quiz answers.
//
// Each answered question contributes the tag attached to the chosen option.
// A job earns one point per answered question whose implied tag is among the
// job's tags, so a job matching every answer scores exactly the number of
// answered questions. Ranking is by score descending, then job id ascending.
package matching

import (
	"sort"
	"strings"

	"career-orient/internal/domain/job"
	"career-orient/internal/domain/quiz"
)

const DefaultTopK = 3

type MatchedTag struct {
	QuestionID int64
	Tag        string
}

type Result struct {
	Job         job.Job
	Score       int
	MatchedTags []MatchedTag
}

// ImpliedTags returns, in question order, the tag implied by each answered
// question. Unanswered questions, out-of-range indexes and untagged options
// contribute nothing.
func ImpliedTags(questions []quiz.Question, answers quiz.Answers) []MatchedTag {
	out := make([]MatchedTag, 0, len(questions))
	for _, q := range questions {
		idx, ok := answers[q.ID]
		if !ok {
			continue
		}
		tag, ok := q.TagFor(idx)
		if !ok {
			continue
		}
		out = append(out, MatchedTag{QuestionID: q.ID, Tag: strings.TrimSpace(tag)})
	}
	return out
}

// Score is the number of implied tags the job carries.
func Score(j job.Job, implied []MatchedTag) int {
	s, _ := score(j, implied)
	return s
}

func score(j job.Job, implied []MatchedTag) (int, []MatchedTag) {
	matched := make([]MatchedTag, 0, len(implied))
	for _, it := range implied {
		if j.HasTag(it.Tag) {
			matched = append(matched, it)
		}
	}
	return len(matched), matched
}

// Rank scores every job and returns the top k (all when k <= 0).
func Rank(questions []quiz.Question, answers quiz.Answers, jobs []job.Job, k int) []Result {
	implied := ImpliedTags(questions, answers)

	results := make([]Result, 0, len(jobs))
	for _, j := range jobs {
		s, matched := score(j, implied)
		results = append(results, Result{Job: j, Score: s, MatchedTags: matched})
	}

	sort.SliceStable(results, func(a, b int) bool {
		if results[a].Score != results[b].Score {
			return results[a].Score > results[b].Score
		}
		return results[a].Job.ID < results[b].Job.ID
	})

	if k > 0 && len(results) > k {
		results = results[:k]
	}
	return results
}
