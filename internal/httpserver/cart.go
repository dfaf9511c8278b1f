package httpserver

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"partymenu/internal/domain"
	cartsvc "partymenu/internal/service/cart"
)

type addItemRequest struct {
	MenuItemID int64 `json:"menuItemId" binding:"required"`
	Quantity   int   `json:"quantity"`
}

type updateItemRequest struct {
	Quantity int `json:"quantity"`
}

type cartLineResponse struct {
	ID         int64           `json:"id"`
	MenuItemID int64           `json:"menuItemId"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unitPrice"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
}

type cartResponse struct {
	Lines     []cartLineResponse `json:"lines"`
	ItemCount int                `json:"itemCount"`
	Amount    decimal.Decimal    `json:"amount"`
	IsEmpty   bool               `json:"isEmpty"`
}

func toCartLineResponse(l domain.CartLine) cartLineResponse {
	return cartLineResponse{
		ID:         l.ID,
		MenuItemID: l.MenuItemID,
		Quantity:   l.Quantity,
		UnitPrice:  l.UnitPrice,
		TotalPrice: l.TotalPrice,
	}
}

func toCartResponse(s *cartsvc.Summary) cartResponse {
	lines := make([]cartLineResponse, 0, len(s.Lines))
	for _, l := range s.Lines {
		lines = append(lines, toCartLineResponse(l))
	}
	return cartResponse{
		Lines:     lines,
		ItemCount: s.ItemCount,
		Amount:    s.Amount,
		IsEmpty:   s.IsEmpty,
	}
}

func getCartHandler(svc CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		summary, err := svc.GetSummary(c.Request.Context(), ownerFromContext(c))
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, toCartResponse(summary))
	}
}

func addCartItemHandler(svc CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.Quantity == 0 {
			req.Quantity = 1
		}
		line, err := svc.AddToCart(c.Request.Context(), ownerFromContext(c), req.MenuItemID, req.Quantity)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusCreated, toCartLineResponse(*line))
	}
}

func updateCartItemHandler(svc CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		lineID, err := pathID(c)
		if err != nil {
			respondError(c, http.StatusBadRequest, "invalid cart item id")
			return
		}
		var req updateItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "invalid request body")
			return
		}
		line, err := svc.UpdateQuantity(c.Request.Context(), ownerFromContext(c), lineID, req.Quantity)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		if line == nil {
			// A non-positive quantity removes the line.
			c.Status(http.StatusNoContent)
			return
		}
		c.JSON(http.StatusOK, toCartLineResponse(*line))
	}
}

func removeCartItemHandler(svc CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		lineID, err := pathID(c)
		if err != nil {
			respondError(c, http.StatusBadRequest, "invalid cart item id")
			return
		}
		if err := svc.RemoveLine(c.Request.Context(), ownerFromContext(c), lineID); err != nil {
			respondServiceError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func clearCartHandler(svc CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.ClearCart(c.Request.Context(), ownerFromContext(c)); err != nil {
			respondServiceError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func pathID(c *gin.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}
