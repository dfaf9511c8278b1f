package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func listItemsHandler(svc MenuService) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := svc.ListAvailableItems(c.Request.Context())
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": items})
	}
}

func listPopularItemsHandler(svc MenuService) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := svc.ListPopularItems(c.Request.Context())
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": items})
	}
}

func getItemHandler(svc MenuService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := pathID(c)
		if err != nil {
			respondError(c, http.StatusBadRequest, "invalid item id")
			return
		}
		item, err := svc.GetItem(c.Request.Context(), id)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

func listItemsByCategoryHandler(svc MenuService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := pathID(c)
		if err != nil {
			respondError(c, http.StatusBadRequest, "invalid category id")
			return
		}
		items, err := svc.ListItemsByCategory(c.Request.Context(), id)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": items})
	}
}

func listCategoriesHandler(svc MenuService) gin.HandlerFunc {
	return func(c *gin.Context) {
		categories, err := svc.ListCategories(c.Request.Context())
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"categories": categories})
	}
}

func listCategoriesByMenuTypeHandler(svc MenuService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := pathID(c)
		if err != nil {
			respondError(c, http.StatusBadRequest, "invalid menu type id")
			return
		}
		categories, err := svc.ListCategoriesByMenuType(c.Request.Context(), id)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"categories": categories})
	}
}

func listMenuTypesHandler(svc MenuService) gin.HandlerFunc {
	return func(c *gin.Context) {
		types, err := svc.ListMenuTypes(c.Request.Context())
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"menuTypes": types})
	}
}
