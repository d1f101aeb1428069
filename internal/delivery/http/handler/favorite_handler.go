package handler

import (
	"errors"

	"career-orient/internal/delivery/http/dto"
	"career-orient/internal/delivery/http/middleware"
	"career-orient/internal/pkg/response"
	"career-orient/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type FavoriteHandler struct {
	uc usecase.FavoriteUsecase
}

type addFavoriteRequest struct {
	JobID int64 `json:"jobId"`
}

func NewFavoriteHandler(uc usecase.FavoriteUsecase) *FavoriteHandler {
	return &FavoriteHandler{uc: uc}
}

func (h *FavoriteHandler) RegisterRoutes(r fiber.Router, auth fiber.Handler) {
	if r == nil {
		return
	}

	r.Get("/users/:userId/favorites", auth, h.List)
	r.Post("/users/:userId/favorites", auth, h.Add)
	r.Delete("/users/:userId/favorites/:jobId", auth, h.Remove)
}

func (h *FavoriteHandler) List(c fiber.Ctx) error {
	callerID, ownerID, err := favoriteOwner(c)
	if err != nil {
		return err
	}

	items, err := h.uc.List(c.Context(), callerID, ownerID)
	if err != nil {
		return mapFavoriteError(err)
	}
	return response.OK(c, dto.NewFavoriteResponses(items))
}

func (h *FavoriteHandler) Add(c fiber.Ctx) error {
	callerID, ownerID, err := favoriteOwner(c)
	if err != nil {
		return err
	}
	var req addFavoriteRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	fav, err := h.uc.Add(c.Context(), callerID, ownerID, req.JobID)
	if err != nil {
		return mapFavoriteError(err)
	}
	return response.OK(c, dto.NewFavoriteResponse(fav))
}

func (h *FavoriteHandler) Remove(c fiber.Ctx) error {
	callerID, ownerID, err := favoriteOwner(c)
	if err != nil {
		return err
	}
	jobID, err := parseIDParam(c, "jobId")
	if err != nil {
		return err
	}

	if err := h.uc.Remove(c.Context(), callerID, ownerID, jobID); err != nil {
		return mapFavoriteError(err)
	}
	return response.OK(c, map[string]bool{"success": true})
}

func favoriteOwner(c fiber.Ctx) (uuid.UUID, uuid.UUID, error) {
	callerID, err := currentUser(c)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	ownerID, err := parseUUID(c.Params("userId"), "userId")
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	return callerID, ownerID, nil
}

func mapFavoriteError(err error) error {
	if errors.Is(err, usecase.ErrJobNotFound) {
		return middleware.NewAppError(fiber.StatusBadRequest, "Job not found", nil, err)
	}
	return mapCommonError(err)
}
