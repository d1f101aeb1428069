package handler

import (
	"errors"
	"strconv"
	"strings"

	"career-orient/internal/delivery/http/dto"
	"career-orient/internal/delivery/http/middleware"
	"career-orient/internal/domain/quiz"
	"career-orient/internal/pkg/response"
	"career-orient/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type QuizHandler struct {
	uc usecase.QuizUsecase
}

type submitResultRequest struct {
	QuizID     int64          `json:"quizId"`
	UserID     *string        `json:"userId"`
	ResultData map[string]int `json:"resultData"`
}

type matchRequest struct {
	Answers map[string]int `json:"answers"`
	Limit   int            `json:"limit"`
}

func NewQuizHandler(uc usecase.QuizUsecase) *QuizHandler {
	return &QuizHandler{uc: uc}
}

func (h *QuizHandler) RegisterRoutes(r fiber.Router, auth fiber.Handler) {
	if r == nil {
		return
	}

	r.Get("/quizzes", h.ListQuizzes)
	r.Get("/quizzes/:id", h.GetQuiz)
	r.Get("/quizzes/:id/questions", h.ListQuestions)
	r.Post("/quizzes/:id/match", h.Match)

	r.Post("/quizResults", auth, h.SubmitResult)
	r.Get("/quizResults", auth, h.ListResults)
	r.Get("/quizResults/:id/recommendations", auth, h.Recommendations)
}

func (h *QuizHandler) ListQuizzes(c fiber.Ctx) error {
	items, err := h.uc.ListQuizzes(c.Context())
	if err != nil {
		return mapCommonError(err)
	}
	return response.OK(c, dto.NewQuizResponses(items))
}

func (h *QuizHandler) GetQuiz(c fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	q, err := h.uc.GetQuiz(c.Context(), id)
	if err != nil {
		return mapQuizError(err, fiber.StatusNotFound)
	}
	return response.OK(c, dto.NewQuizResponse(q))
}

// ListQuestions answers an empty list for unknown or malformed quiz ids.
func (h *QuizHandler) ListQuestions(c fiber.Ctx) error {
	id, _ := strconv.ParseInt(strings.TrimSpace(c.Params("id")), 10, 64)
	items, err := h.uc.ListQuestions(c.Context(), id)
	if err != nil {
		return mapCommonError(err)
	}
	return response.OK(c, dto.NewQuestionResponses(items))
}

func (h *QuizHandler) Match(c fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	var req matchRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	answers, err := parseAnswers(req.Answers, "answers")
	if err != nil {
		return err
	}

	ranked, err := h.uc.Match(c.Context(), id, answers, req.Limit)
	if err != nil {
		return mapQuizError(err, fiber.StatusNotFound)
	}
	return response.OK(c, dto.NewRecommendationResponses(ranked))
}

func (h *QuizHandler) SubmitResult(c fiber.Ctx) error {
	callerID, err := currentUser(c)
	if err != nil {
		return err
	}
	var req submitResultRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	answers, err := parseAnswers(req.ResultData, "resultData")
	if err != nil {
		return err
	}

	in := usecase.SubmitResultInput{QuizID: req.QuizID, ResultData: answers}
	if req.UserID != nil {
		owner, err := parseUUID(*req.UserID, "userId")
		if err != nil {
			return err
		}
		in.UserID = &owner
	}

	res, err := h.uc.SubmitResult(c.Context(), callerID, in)
	if err != nil {
		return mapQuizError(err, fiber.StatusBadRequest)
	}
	return response.OK(c, dto.NewQuizResultResponse(res))
}

func (h *QuizHandler) ListResults(c fiber.Ctx) error {
	callerID, err := currentUser(c)
	if err != nil {
		return err
	}

	var quizID *int64
	if s := strings.TrimSpace(c.Query("quizId")); s != "" {
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return middleware.NewAppError(fiber.StatusBadRequest, "quizId must be an integer", nil, err)
		}
		quizID = &v
	}

	items, err := h.uc.ListResults(c.Context(), callerID, quizID)
	if err != nil {
		return mapCommonError(err)
	}
	return response.OK(c, dto.NewQuizResultResponses(items))
}

func (h *QuizHandler) Recommendations(c fiber.Ctx) error {
	callerID, err := currentUser(c)
	if err != nil {
		return err
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	limit, err := parseQueryIntStrict(c, "limit", 0)
	if err != nil {
		return err
	}

	ranked, err := h.uc.Recommend(c.Context(), callerID, id, limit)
	if err != nil {
		return mapQuizError(err, fiber.StatusNotFound)
	}
	return response.OK(c, dto.NewRecommendationResponses(ranked))
}

func parseAnswers(raw map[string]int, field string) (quiz.Answers, error) {
	out := make(quiz.Answers, len(raw))
	for k, v := range raw {
		qid, err := strconv.ParseInt(strings.TrimSpace(k), 10, 64)
		if err != nil {
			return nil, middleware.NewAppError(fiber.StatusBadRequest, field+" keys must be question ids", nil, err)
		}
		out[qid] = v
	}
	return out, nil
}

// mapQuizError maps a missing quiz to quizMissingStatus: 404 when the quiz
// is the addressed resource, 400 when it is referenced from a body.
func mapQuizError(err error, quizMissingStatus int) error {
	switch {
	case errors.Is(err, usecase.ErrQuizNotFound):
		return middleware.NewAppError(quizMissingStatus, "Quiz not found", nil, err)
	case errors.Is(err, usecase.ErrResultNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Quiz result not found", nil, err)
	default:
		return mapCommonError(err)
	}
}
