package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Jagadeeshroc/backend-of-Achyuta/internal/services"
	"github.com/Jagadeeshroc/backend-of-Achyuta/internal/services/dto"
)

type AuthHandler struct {
	*BaseHandler
	authService services.AuthService
}

func NewAuthHandler(base *BaseHandler, authService services.AuthService) *AuthHandler {
	return &AuthHandler{
		BaseHandler: base,
		authService: authService,
	}
}

// RegisterRoutes mounts auth under /auth (the original mount) and at the
// root, since deployed clients use both path variants.
func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
	}

	rg.POST("/register", h.Register)
	rg.POST("/login", h.Login)
}

// Register godoc
// @Summary  Create a user account
// @Accept   json
// @Produce  json
// @Success  201 {object} dto.RegisterResponse
// @Router   /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	response, err := h.authService.Register(db, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

// Login godoc
// @Summary  Exchange credentials for a bearer token
// @Accept   json
// @Produce  json
// @Success  200 {object} dto.LoginResponse
// @Router   /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	response, err := h.authService.Login(db, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
