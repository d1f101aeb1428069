package handler

import (
	"errors"

	"career-orient/internal/delivery/http/dto"
	"career-orient/internal/delivery/http/middleware"
	"career-orient/internal/pkg/response"
	"career-orient/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type JobsHandler struct {
	uc usecase.JobListUsecase
}

func NewJobsHandler(uc usecase.JobListUsecase) *JobsHandler {
	return &JobsHandler{uc: uc}
}

func (h *JobsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/jobs", h.HandleListJobs)
	r.Get("/jobs/:id", h.HandleGetJob)
}

func (h *JobsHandler) HandleListJobs(c fiber.Ctx) error {
	page, err := parseQueryIntStrict(c, "page", 1)
	if err != nil {
		return err
	}
	limit, err := parseQueryIntStrict(c, "limit", usecase.DefaultJobPageLimit)
	if err != nil {
		return err
	}
	if page < 1 || limit < 1 {
		return middleware.NewAppError(fiber.StatusBadRequest, "page and limit must be positive", nil, nil)
	}

	out, err := h.uc.ListJobs(c.Context(), usecase.JobListParams{Page: page, Limit: limit})
	if err != nil {
		return mapCommonError(err)
	}

	return response.OK(c, dto.JobListResponse{
		Jobs:       dto.NewJobResponses(out.Jobs),
		TotalCount: out.TotalCount,
	})
}

func (h *JobsHandler) HandleGetJob(c fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	j, err := h.uc.GetJob(c.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrJobNotFound) {
			return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
		}
		return mapCommonError(err)
	}

	return response.OK(c, dto.NewJobResponse(j))
}
