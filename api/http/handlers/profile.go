package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/identity/api/http/presenter"
	"github.com/artem13815/identity/pkg/auth"
	"github.com/artem13815/identity/pkg/security/jwt"
)

type ProfileHandler struct {
	useCase auth.AuthUseCase
}

func NewProfileHandler(useCase auth.AuthUseCase) *ProfileHandler {
	return &ProfileHandler{useCase: useCase}
}

// Get returns the profile of the authenticated identity. The email comes from
// the verified token via the auth middleware, never from the request body.
// @Summary  Get own profile
// @Tags     profile
// @Produce  json
// @Security BearerAuth
// @Success  200 {object} map[string]any
// @Failure  401 {object} presenter.ErrorResponse
// @Router   /profile [get]
func (h *ProfileHandler) Get(c *fiber.Ctx) error {
	email, _ := c.Locals(jwt.LocalsEmail).(string)
	if email == "" {
		return presenter.Error(c, http.StatusUnauthorized, "unauthorized")
	}

	user, err := h.useCase.Profile(c.Context(), email)
	if err != nil {
		if errors.Is(err, auth.ErrNotFound) {
			return presenter.Error(c, http.StatusUnauthorized, "unauthorized")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to fetch profile")
	}

	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"email":    user.Email,
		"username": user.Username,
	})
}
