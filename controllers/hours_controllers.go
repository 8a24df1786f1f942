package controllers

import (
	"github.com/gin-gonic/gin"

	"paju/dto"
	"paju/response"
	"paju/services"
)

type HoursController struct {
	hours *services.HoursService
}

func NewHoursController(hours *services.HoursService) HoursController {
	return HoursController{hours: hours}
}

// GetHours godoc
// @Summary      Opening hours, Monday to Sunday
// @Tags         hours
// @Success      200  {object}  response.Response
// @Router       /api/restaurant/hours [get]
func (u HoursController) GetHours(c *gin.Context) {
	days, err := u.hours.List(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, days)
}

// GetDisplay godoc
// @Summary      Opening hours grouped into consecutive days with the same schedule
// @Tags         hours
// @Success      200  {object}  response.Response{data=dto.HoursDisplay}
// @Router       /api/restaurant/hours/display [get]
func (u HoursController) GetDisplay(c *gin.Context) {
	view, err := u.hours.Display(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, view)
}

// UpdateHours godoc
// @Summary      Partial update of one day; empty string clears a time
// @Tags         hours
// @Accept       json
// @Security     BearerAuth
// @Param        id    path  int                   true  "hours id"
// @Param        body  body  dto.UpdateHoursInput  true  "fields to change"
// @Success      200  {object}  response.Response
// @Router       /api/restaurant/hours/{id} [put]
func (u HoursController) UpdateHours(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var input dto.UpdateHoursInput
	if !bindJSON(c, &input) {
		return
	}
	day, err := u.hours.Update(c.Request.Context(), id, input)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, day)
}
