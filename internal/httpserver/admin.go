package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	menusvc "partymenu/internal/service/menu"
)

func adminListItemsHandler(svc MenuService) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := svc.ListAllItems(c.Request.Context())
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": items})
	}
}

func adminCreateItemHandler(svc MenuService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in menusvc.ItemInput
		if err := c.ShouldBindJSON(&in); err != nil {
			respondError(c, http.StatusBadRequest, "invalid request body")
			return
		}
		item, err := svc.CreateItem(c.Request.Context(), in)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusCreated, item)
	}
}

func adminUpdateItemHandler(svc MenuService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := pathID(c)
		if err != nil {
			respondError(c, http.StatusBadRequest, "invalid item id")
			return
		}
		var in menusvc.ItemInput
		if err := c.ShouldBindJSON(&in); err != nil {
			respondError(c, http.StatusBadRequest, "invalid request body")
			return
		}
		item, err := svc.UpdateItem(c.Request.Context(), id, in)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

func adminDeleteItemHandler(svc MenuService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := pathID(c)
		if err != nil {
			respondError(c, http.StatusBadRequest, "invalid item id")
			return
		}
		if err := svc.DeleteItem(c.Request.Context(), id); err != nil {
			respondServiceError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func adminCreateCategoryHandler(svc MenuService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in menusvc.CategoryInput
		if err := c.ShouldBindJSON(&in); err != nil {
			respondError(c, http.StatusBadRequest, "invalid request body")
			return
		}
		category, err := svc.CreateCategory(c.Request.Context(), in)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusCreated, category)
	}
}

func adminUpdateCategoryHandler(svc MenuService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := pathID(c)
		if err != nil {
			respondError(c, http.StatusBadRequest, "invalid category id")
			return
		}
		var in menusvc.CategoryInput
		if err := c.ShouldBindJSON(&in); err != nil {
			respondError(c, http.StatusBadRequest, "invalid request body")
			return
		}
		category, err := svc.UpdateCategory(c.Request.Context(), id, in)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, category)
	}
}

func adminDeleteCategoryHandler(svc MenuService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := pathID(c)
		if err != nil {
			respondError(c, http.StatusBadRequest, "invalid category id")
			return
		}
		if err := svc.DeleteCategory(c.Request.Context(), id); err != nil {
			respondServiceError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func adminCreateMenuTypeHandler(svc MenuService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in menusvc.MenuTypeInput
		if err := c.ShouldBindJSON(&in); err != nil {
			respondError(c, http.StatusBadRequest, "invalid request body")
			return
		}
		mt, err := svc.CreateMenuType(c.Request.Context(), in)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusCreated, mt)
	}
}

func adminUpdateMenuTypeHandler(svc MenuService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := pathID(c)
		if err != nil {
			respondError(c, http.StatusBadRequest, "invalid menu type id")
			return
		}
		var in menusvc.MenuTypeInput
		if err := c.ShouldBindJSON(&in); err != nil {
			respondError(c, http.StatusBadRequest, "invalid request body")
			return
		}
		mt, err := svc.UpdateMenuType(c.Request.Context(), id, in)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, mt)
	}
}

func adminDeleteMenuTypeHandler(svc MenuService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := pathID(c)
		if err != nil {
			respondError(c, http.StatusBadRequest, "invalid menu type id")
			return
		}
		if err := svc.DeleteMenuType(c.Request.Context(), id); err != nil {
			respondServiceError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
