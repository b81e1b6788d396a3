package handlers

import (
	"github.com/inkwell-next/internal/http/response"
	"github.com/inkwell-next/internal/service"

	"github.com/gin-gonic/gin"
)

// CartItemRequest 添加购物车项请求
type CartItemRequest struct {
	ProductID uint `json:"productId"`
	Quantity  int  `json:"quantity"`
}

// AddCartItem POST /users/:userId/cart
func (h *Handler) AddCartItem(c *gin.Context) {
	userID, ok := parseID(c, "userId")
	if !ok {
		return
	}
	var req CartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	item, err := h.CartService.AddItem(service.AddCartItemInput{
		UserID:    userID,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		respondServiceError(c, err, "Failed to add cart item")
		return
	}
	response.Created(c, item)
}

// GetCart GET /users/:userId/cart
func (h *Handler) GetCart(c *gin.Context) {
	userID, ok := parseID(c, "userId")
	if !ok {
		return
	}
	items, err := h.CartService.ListByUser(userID)
	if err != nil {
		respondServiceError(c, err, "Failed to fetch cart")
		return
	}
	response.OK(c, items)
}
