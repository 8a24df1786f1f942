package controllers

import (
	"github.com/gin-gonic/gin"

	"paju/dto"
	"paju/response"
	"paju/services"
)

type AnnouncementController struct {
	announcements *services.AnnouncementService
}

func NewAnnouncementController(announcements *services.AnnouncementService) AnnouncementController {
	return AnnouncementController{announcements: announcements}
}

// GetAnnouncements godoc
// @Summary      List all announcements
// @Tags         announcements
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /api/announcements [get]
func (u AnnouncementController) GetAnnouncements(c *gin.Context) {
	list, err := u.announcements.List(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.SuccessWithTotal(c, list, len(list))
}

// GetActive trả về thông báo đang hiệu lực cho banner
// @Summary      Announcements currently shown on the site
// @Tags         announcements
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /api/announcements/active [get]
func (u AnnouncementController) GetActive(c *gin.Context) {
	list, err := u.announcements.Active(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, list)
}

// CreateAnnouncement godoc
// @Summary      Create an announcement
// @Tags         announcements
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.AnnouncementInput  true  "announcement"
// @Success      201  {object}  response.Response{data=models.Announcement}
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /api/announcements [post]
func (u AnnouncementController) CreateAnnouncement(c *gin.Context) {
	var input dto.AnnouncementInput
	if !bindJSON(c, &input) {
		return
	}
	a, err := u.announcements.Create(c.Request.Context(), input)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Created(c, a)
}

// UpdateAnnouncement godoc
// @Summary      Update an announcement
// @Tags         announcements
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "announcement id"
// @Param        body  body  dto.AnnouncementInput  true  "fields to change"
// @Success      200  {object}  response.Response{data=models.Announcement}
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/announcements/{id} [put]
func (u AnnouncementController) UpdateAnnouncement(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var input dto.AnnouncementInput
	if !bindJSON(c, &input) {
		return
	}
	a, err := u.announcements.Update(c.Request.Context(), id, input)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, a)
}

// DeleteAnnouncement godoc
// @Summary      Delete an announcement
// @Tags         announcements
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "announcement id"
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/announcements/{id} [delete]
func (u AnnouncementController) DeleteAnnouncement(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := u.announcements.Delete(c.Request.Context(), id); err != nil {
		response.FromError(c, err)
		return
	}
	response.SuccessMessage(c, "Announcement deleted", nil)
}
