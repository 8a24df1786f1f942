package controllers

import (
	"io"

	"github.com/gin-gonic/gin"

	"paju/response"
	"paju/services"
	"paju/storage"
)

type UploadController struct {
	uploads *services.UploadService
	menu    *services.MenuService
	source  func() (*storage.LocalStorage, error)
}

// NewUploadController: source mở thư mục uploads local khi cần chuyển ảnh cũ
func NewUploadController(uploads *services.UploadService, menu *services.MenuService, source func() (*storage.LocalStorage, error)) UploadController {
	return UploadController{uploads: uploads, menu: menu, source: source}
}

// Upload godoc
// @Summary      Upload a menu image (JPEG, PNG or WebP, max 5MB)
// @Tags         upload
// @Accept       multipart/form-data
// @Security     BearerAuth
// @Param        file  formData  file  true  "image"
// @Success      200  {object}  response.Response{data=dto.UploadResult}
// @Router       /api/upload [post]
func (u UploadController) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "No file uploaded")
		return
	}
	if file.Size > storage.MaxImageSize {
		response.BadRequest(c, "File too large. Please upload an image smaller than 5MB.")
		return
	}

	src, err := file.Open()
	if err != nil {
		response.BadRequest(c, "Could not read file")
		return
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, storage.MaxImageSize+1))
	if err != nil {
		response.BadRequest(c, "Could not read file")
		return
	}

	res, err := u.uploads.Upload(c.Request.Context(), file.Filename, data)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.SuccessMessage(c, "File uploaded successfully", res)
}

// MigrateUploads godoc
// @Summary      Move menu images from the local uploads dir to the configured image storage
// @Tags         upload
// @Produce      json
// @Security     BearerAuth
// @Failure      403  {object}  response.Response
// @Success      200  {object}  response.Response{data=dto.MigrateUploadsReport}
// @Router       /api/tools/migrate-uploads [post]
func (u UploadController) MigrateUploads(c *gin.Context) {
	source, err := u.source()
	if err != nil {
		response.ServerError(c)
		return
	}
	report, err := u.menu.MigrateLocalImages(c.Request.Context(), source)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, report)
}
