package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"paju/constants"
	"paju/dto"
	"paju/middleware"
	"paju/response"
	"paju/services"
)

type AuthController struct {
	auth         *services.AuthService
	secureCookie bool
}

// NewAuthController: secureCookie bật ở production
func NewAuthController(auth *services.AuthService, secureCookie bool) AuthController {
	return AuthController{auth: auth, secureCookie: secureCookie}
}

func (u AuthController) setToken(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(constants.AuthCookieName, token, maxAge, "/", "", u.secureCookie, true)
}

// Login godoc
// @Summary      CMS login, sets the auth-token cookie
// @Tags         auth
// @Accept       json
// @Param        body  body  dto.LoginInput  true  "credentials"
// @Success      200  {object}  response.Response{data=dto.LoginResponse}
// @Failure      401  {object}  response.Response
// @Failure      429  {object}  response.Response
// @Router       /api/auth/login [post]
func (u AuthController) Login(c *gin.Context) {
	var input dto.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Username and password are required")
		return
	}

	token, user, err := u.auth.Login(c.Request.Context(), input.Username, input.Password)
	if err != nil {
		response.FromError(c, err)
		return
	}

	u.setToken(c, token, int(u.auth.Tokens().TTL().Seconds()))
	response.SuccessMessage(c, "Login successful", dto.LoginResponse{User: dto.NewUserResponse(user), Token: token})
}

// Logout godoc
// @Summary      Clear the auth-token cookie
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /api/auth/logout [post]
func (u AuthController) Logout(c *gin.Context) {
	u.setToken(c, "", -1)
	response.SuccessMessage(c, "Logged out", nil)
}

// Verify trả về user của token trong cookie hoặc header
// @Summary      Current user of the auth-token cookie or Bearer token
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /api/auth/verify [get]
func (u AuthController) Verify(c *gin.Context) {
	user, err := u.auth.Verify(c.Request.Context(), middleware.TokenFromRequest(c))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, gin.H{"authenticated": true, "user": dto.NewUserResponse(user)})
}
