package handler

import (
	"errors"

	"career-orient/internal/delivery/http/dto"
	"career-orient/internal/delivery/http/middleware"
	"career-orient/internal/domain/user"
	"career-orient/internal/pkg/response"
	"career-orient/internal/usecase"
	ucuser "career-orient/internal/usecase/user"

	"github.com/gofiber/fiber/v3"
)

type ProfileHandler struct {
	uc usecase.UserUsecase
}

type createProfileRequest struct {
	FirstName string         `json:"firstName"`
	LastName  string         `json:"lastName"`
	Settings  *user.Settings `json:"settings"`
}

type updateProfileRequest struct {
	FirstName *string        `json:"firstName"`
	LastName  *string        `json:"lastName"`
	Settings  *user.Settings `json:"settings"`
}

func NewProfileHandler(uc usecase.UserUsecase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

func (h *ProfileHandler) RegisterRoutes(r fiber.Router, auth fiber.Handler) {
	if r == nil {
		return
	}

	r.Get("/profile", auth, h.GetProfile)
	r.Post("/profile", auth, h.CreateProfile)
	r.Put("/profile", auth, h.UpdateProfile)
}

func (h *ProfileHandler) GetProfile(c fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	me, err := h.uc.GetMe(c.Context(), userID)
	if err != nil {
		return mapProfileError(err)
	}

	res := dto.MeResponse{
		ID:                  me.User.ID,
		Email:               me.User.Email,
		CreatedAt:           me.User.CreatedAt,
		ApplicationsSummary: me.ApplicationsSummary,
	}
	if me.Profile != nil {
		p := dto.NewProfileResponse(*me.Profile)
		res.Profile = &p
	}
	return response.OK(c, res)
}

func (h *ProfileHandler) CreateProfile(c fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	var req createProfileRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	p, err := h.uc.CreateProfile(c.Context(), userID, ucuser.CreateProfileInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Settings:  req.Settings,
	})
	if err != nil {
		return mapProfileError(err)
	}
	return response.OK(c, dto.NewProfileResponse(p))
}

func (h *ProfileHandler) UpdateProfile(c fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	var req updateProfileRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	p, err := h.uc.UpdateProfile(c.Context(), userID, ucuser.UpdateProfileInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Settings:  req.Settings,
	})
	if err != nil {
		return mapProfileError(err)
	}
	return response.OK(c, dto.NewProfileResponse(p))
}

func mapProfileError(err error) error {
	switch {
	case errors.Is(err, ucuser.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "User not found", nil, err)
	case errors.Is(err, ucuser.ErrProfileMissing):
		return middleware.NewAppError(fiber.StatusNotFound, "Profile not found", nil, err)
	case errors.Is(err, ucuser.ErrProfileExists):
		return middleware.NewAppError(fiber.StatusBadRequest, "Profile already exists", nil, err)
	case errors.Is(err, ucuser.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return mapCommonError(err)
	}
}
