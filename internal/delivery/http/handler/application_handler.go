package handler

import (
	"errors"
	"strings"

	"career-orient/internal/delivery/http/dto"
	"career-orient/internal/delivery/http/middleware"
	"career-orient/internal/pkg/response"
	"career-orient/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type ApplicationHandler struct {
	uc usecase.ApplicationUsecase
}

type applyRequest struct {
	Message *string `json:"message"`
}

func NewApplicationHandler(uc usecase.ApplicationUsecase) *ApplicationHandler {
	return &ApplicationHandler{uc: uc}
}

func (h *ApplicationHandler) RegisterRoutes(r fiber.Router, auth fiber.Handler) {
	if r == nil {
		return
	}

	r.Post("/jobs/:jobId/apply", auth, h.Apply)
	r.Get("/applications", auth, h.List)
}

func (h *ApplicationHandler) Apply(c fiber.Ctx) error {
	callerID, err := currentUser(c)
	if err != nil {
		return err
	}
	jobID, err := parseIDParam(c, "jobId")
	if err != nil {
		return err
	}

	var req applyRequest
	if len(c.Body()) > 0 {
		if err := bindBody(c, &req); err != nil {
			return err
		}
	}

	app, err := h.uc.Apply(c.Context(), callerID, jobID, req.Message)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrAlreadyApplied):
			return middleware.NewAppError(fiber.StatusBadRequest, "Already applied to this job", nil, err)
		case errors.Is(err, usecase.ErrJobNotFound):
			return middleware.NewAppError(fiber.StatusBadRequest, "Job not found", nil, err)
		default:
			return mapCommonError(err)
		}
	}
	return response.OK(c, dto.NewApplicationResponse(app))
}

func (h *ApplicationHandler) List(c fiber.Ctx) error {
	callerID, err := currentUser(c)
	if err != nil {
		return err
	}

	var ownerID *uuid.UUID
	if s := strings.TrimSpace(c.Query("userId")); s != "" {
		id, err := parseUUID(s, "userId")
		if err != nil {
			return err
		}
		ownerID = &id
	}

	items, err := h.uc.List(c.Context(), callerID, ownerID)
	if err != nil {
		return mapCommonError(err)
	}
	return response.OK(c, dto.NewApplicationResponses(items))
}
