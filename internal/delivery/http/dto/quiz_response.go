package dto

import (
	"strconv"
	"time"

	"career-orient/internal/domain/matching"
	"career-orient/internal/domain/quiz"

	"github.com/google/uuid"
)

type QuestionResponse struct {
	ID         int64    `json:"id"`
	QuizID     int64    `json:"quizId"`
	Text       string   `json:"text"`
	Options    []string `json:"options"`
	OptionTags []string `json:"optionTags"`
	Correct    *int     `json:"correct"`
}

type QuizResponse struct {
	ID          int64              `json:"id"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Questions   []QuestionResponse `json:"questions,omitempty"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
}

type QuizResultResponse struct {
	ID         int64          `json:"id"`
	UserID     uuid.UUID      `json:"userId"`
	QuizID     int64          `json:"quizId"`
	ResultData map[string]int `json:"resultData"`
	Score      int            `json:"score"`
	CreatedAt  time.Time      `json:"createdAt"`
}

type MatchedTagResponse struct {
	QuestionID int64  `json:"questionId"`
	Tag        string `json:"tag"`
}

type RecommendationResponse struct {
	Job         JobResponse          `json:"job"`
	Score       int                  `json:"score"`
	MatchedTags []MatchedTagResponse `json:"matchedTags"`
}

func NewQuestionResponses(items []quiz.Question) []QuestionResponse {
	out := make([]QuestionResponse, 0, len(items))
	for _, q := range items {
		opts, tags := q.Options, q.OptionTags
		if opts == nil {
			opts = []string{}
		}
		if tags == nil {
			tags = []string{}
		}
		out = append(out, QuestionResponse{
			ID:         q.ID,
			QuizID:     q.QuizID,
			Text:       q.Text,
			Options:    opts,
			OptionTags: tags,
			Correct:    q.Correct,
		})
	}
	return out
}

func NewQuizResponse(q quiz.Quiz) QuizResponse {
	out := QuizResponse{
		ID:          q.ID,
		Title:       q.Title,
		Description: q.Description,
		CreatedAt:   q.CreatedAt,
		UpdatedAt:   q.UpdatedAt,
	}
	if q.Questions != nil {
		out.Questions = NewQuestionResponses(q.Questions)
	}
	return out
}

func NewQuizResponses(items []quiz.Quiz) []QuizResponse {
	out := make([]QuizResponse, 0, len(items))
	for _, q := range items {
		out = append(out, NewQuizResponse(q))
	}
	return out
}

func NewQuizResultResponse(r quiz.Result) QuizResultResponse {
	data := make(map[string]int, len(r.ResultData))
	for qid, idx := range r.ResultData {
		data[strconv.FormatInt(qid, 10)] = idx
	}
	return QuizResultResponse{
		ID:         r.ID,
		UserID:     r.UserID,
		QuizID:     r.QuizID,
		ResultData: data,
		Score:      r.Score,
		CreatedAt:  r.CreatedAt,
	}
}

func NewQuizResultResponses(items []quiz.Result) []QuizResultResponse {
	out := make([]QuizResultResponse, 0, len(items))
	for _, r := range items {
		out = append(out, NewQuizResultResponse(r))
	}
	return out
}

func NewRecommendationResponses(items []matching.Result) []RecommendationResponse {
	out := make([]RecommendationResponse, 0, len(items))
	for _, r := range items {
		tags := make([]MatchedTagResponse, 0, len(r.MatchedTags))
		for _, mt := range r.MatchedTags {
			tags = append(tags, MatchedTagResponse{QuestionID: mt.QuestionID, Tag: mt.Tag})
		}
		out = append(out, RecommendationResponse{Job: NewJobResponse(r.Job), Score: r.Score, MatchedTags: tags})
	}
	return out
}
