package controllers

import (
	"github.com/gin-gonic/gin"

	"paju/dto"
	"paju/middleware"
	"paju/response"
	"paju/services"
)

type UserController struct {
	users *services.UserService
}

func NewUserController(users *services.UserService) UserController {
	return UserController{users: users}
}

// GetUsers godoc
// @Summary      List CMS users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /api/users [get]
func (u UserController) GetUsers(c *gin.Context) {
	users, err := u.users.List(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.SuccessWithTotal(c, users, len(users))
}

// CreateUser godoc
// @Summary      Create a CMS user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateUserInput  true  "user"
// @Success      201  {object}  response.Response{data=dto.UserResponse}
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /api/users [post]
func (u UserController) CreateUser(c *gin.Context) {
	var input dto.CreateUserInput
	if !bindJSON(c, &input) {
		return
	}
	user, err := u.users.Create(c.Request.Context(), input)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Created(c, user)
}

// UpdateUser godoc
// @Summary      Update a CMS user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "user id"
// @Param        body  body  dto.UpdateUserInput  true  "fields to change"
// @Success      200  {object}  response.Response{data=dto.UserResponse}
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/users/{id} [put]
func (u UserController) UpdateUser(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var input dto.UpdateUserInput
	if !bindJSON(c, &input) {
		return
	}
	user, err := u.users.Update(c.Request.Context(), middleware.CurrentUserID(c), id, input)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, user)
}

// DeleteUser godoc
// @Summary      Delete a CMS user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "user id"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/users/{id} [delete]
func (u UserController) DeleteUser(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := u.users.Delete(c.Request.Context(), middleware.CurrentUserID(c), id); err != nil {
		response.FromError(c, err)
		return
	}
	response.SuccessMessage(c, "User deleted", nil)
}
