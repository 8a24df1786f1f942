package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"paju/dto"
	"paju/response"
	"paju/services"
)

type MenuController struct {
	menu *services.MenuService
}

func NewMenuController(menu *services.MenuService) MenuController {
	return MenuController{menu: menu}
}

// GetItems godoc
// @Summary      List menu items
// @Tags         menu
// @Produce      json
// @Param        menuType  query  string  false  "breakfast, lunch or dinner"
// @Success      200  {object}  response.Response
// @Router       /api/menu/items [get]
func (u MenuController) GetItems(c *gin.Context) {
	menuType, ok := menuTypeQuery(c)
	if !ok {
		return
	}
	items, err := u.menu.ListItems(c.Request.Context(), menuType)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.SuccessWithTotal(c, items, len(items))
}

// SearchItems godoc
// @Summary      Fuzzy search over available items of enabled menus
// @Tags         menu
// @Param        q      query  string  true   "keyword"
// @Param        limit  query  int     false  "max results"
// @Success      200  {object}  response.Response
// @Router       /api/menu/items/search [get]
func (u MenuController) SearchItems(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	results, err := u.menu.Search(c.Request.Context(), c.Query("q"), limit)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.SuccessWithTotal(c, results, len(results))
}

// GetDisplay godoc
// @Summary      Public menu for one menu type
// @Tags         menu
// @Param        menuType  query  string  false  "defaults to dinner when enabled"
// @Success      200  {object}  response.Response{data=dto.MenuDisplay}
// @Router       /api/menu/display [get]
func (u MenuController) GetDisplay(c *gin.Context) {
	view, err := u.menu.Display(c.Request.Context(), c.Query("menuType"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, view)
}

// CreateItem godoc
// @Summary      Create a menu item
// @Tags         menu
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateMenuItemInput  true  "menu item"
// @Success      201  {object}  response.Response{data=models.MenuItem}
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /api/menu/items [post]
func (u MenuController) CreateItem(c *gin.Context) {
	var input dto.CreateMenuItemInput
	if !bindJSON(c, &input) {
		return
	}
	item, err := u.menu.CreateItem(c.Request.Context(), input)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Created(c, item)
}

// UpdateItem godoc
// @Summary      Partial update of a menu item
// @Tags         menu
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "item id"
// @Param        body  body  dto.UpdateMenuItemInput  true  "fields to change"
// @Success      200  {object}  response.Response{data=models.MenuItem}
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/menu/items/{id} [put]
func (u MenuController) UpdateItem(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var input dto.UpdateMenuItemInput
	if !bindJSON(c, &input) {
		return
	}
	item, err := u.menu.UpdateItem(c.Request.Context(), id, input)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, item)
}

// DeleteItem godoc
// @Summary      Delete a menu item and its image
// @Tags         menu
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "item id"
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/menu/items/{id} [delete]
func (u MenuController) DeleteItem(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := u.menu.DeleteItem(c.Request.Context(), id); err != nil {
		response.FromError(c, err)
		return
	}
	response.SuccessMessage(c, "Menu item deleted", nil)
}

// ReorderItems godoc
// @Summary      Reorder the items of one category
// @Tags         menu
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.ReorderItemsInput  true  "new order"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /api/menu/items/reorder [put]
func (u MenuController) ReorderItems(c *gin.Context) {
	var input dto.ReorderItemsInput
	if !bindJSON(c, &input) {
		return
	}
	items, err := u.menu.ReorderItems(c.Request.Context(), input)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, items)
}

// ExportItems trả file xlsx toàn bộ món ăn
// @Summary      Export menu items as xlsx
// @Tags         menu
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security     BearerAuth
// @Success      200  {file}  binary
// @Failure      401  {object}  response.Response
// @Router       /api/menu/items/export [get]
func (u MenuController) ExportItems(c *gin.Context) {
	buf, err := u.menu.Export(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	filename := "menu-" + time.Now().Format("20060102") + ".xlsx"
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

// ---- categories ----

// GetCategories godoc
// @Summary      List menu categories
// @Tags         menu
// @Produce      json
// @Param        menuType  query  string  false  "breakfast, lunch or dinner"
// @Success      200  {object}  response.Response
// @Router       /api/menu/categories [get]
func (u MenuController) GetCategories(c *gin.Context) {
	menuType, ok := menuTypeQuery(c)
	if !ok {
		return
	}
	cats, err := u.menu.ListCategories(c.Request.Context(), menuType)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.SuccessWithTotal(c, cats, len(cats))
}

// CreateCategory godoc
// @Summary      Create a menu category
// @Tags         menu
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CategoryInput  true  "category"
// @Success      201  {object}  response.Response{data=models.MenuCategory}
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /api/menu/categories [post]
func (u MenuController) CreateCategory(c *gin.Context) {
	var input dto.CategoryInput
	if !bindJSON(c, &input) {
		return
	}
	cat, err := u.menu.CreateCategory(c.Request.Context(), input)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Created(c, cat)
}

// UpdateCategory godoc
// @Summary      Update a menu category
// @Tags         menu
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "category id"
// @Param        body  body  dto.UpdateCategoryInput  true  "fields to change"
// @Success      200  {object}  response.Response{data=models.MenuCategory}
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/menu/categories/{id} [put]
func (u MenuController) UpdateCategory(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var input dto.UpdateCategoryInput
	if !bindJSON(c, &input) {
		return
	}
	cat, err := u.menu.UpdateCategory(c.Request.Context(), id, input)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, cat)
}

// DeleteCategory godoc
// @Summary      Delete a menu category
// @Tags         menu
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "category id"
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/menu/categories/{id} [delete]
func (u MenuController) DeleteCategory(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := u.menu.DeleteCategory(c.Request.Context(), id); err != nil {
		response.FromError(c, err)
		return
	}
	response.SuccessMessage(c, "Category deleted", nil)
}

// ReorderCategories godoc
// @Summary      Reorder the categories of one menu type
// @Tags         menu
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.ReorderCategoriesInput  true  "new order"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /api/menu/categories/reorder [put]
func (u MenuController) ReorderCategories(c *gin.Context) {
	var input dto.ReorderCategoriesInput
	if !bindJSON(c, &input) {
		return
	}
	cats, err := u.menu.ReorderCategories(c.Request.Context(), input)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, cats)
}

// ---- status ----

// GetStatus godoc
// @Summary      Enabled flag of every menu type
// @Tags         menu
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /api/menu/status [get]
func (u MenuController) GetStatus(c *gin.Context) {
	statuses, err := u.menu.ListStatus(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, statuses)
}

// GetEnabled trả về danh sách menu type đang bật
// @Summary      Enabled menu types in breakfast, lunch, dinner order
// @Tags         menu
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /api/menu/enabled [get]
func (u MenuController) GetEnabled(c *gin.Context) {
	enabled, err := u.menu.EnabledMenuTypes(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, enabled)
}

// UpdateStatus godoc
// @Summary      Enable or disable a menu type
// @Tags         menu
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.MenuStatusInput  true  "menu type and flag"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /api/menu/status [put]
func (u MenuController) UpdateStatus(c *gin.Context) {
	var input dto.MenuStatusInput
	if !bindJSON(c, &input) {
		return
	}
	statuses, err := u.menu.SetStatus(c.Request.Context(), input.MenuType, *input.IsEnabled)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, statuses)
}
