package handlers

import (
	"github.com/inkwell-next/internal/http/response"
	"github.com/inkwell-next/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// ProductRequest 创建商品请求，tagID 为既有标签
type ProductRequest struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
	TagID *uint           `json:"tagID"`
}

// CreateProduct POST /products
func (h *Handler) CreateProduct(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	input := service.ProductInput{
		Name:  req.Name,
		Price: req.Price,
	}
	if req.TagID != nil {
		input.TagIDs = []uint{*req.TagID}
	}
	product, err := h.CatalogService.CreateProduct(input)
	if err != nil {
		respondServiceError(c, err, "Failed to create product")
		return
	}
	response.Created(c, product)
}

// ListTags GET /tags 标签及其关联商品
func (h *Handler) ListTags(c *gin.Context) {
	tags, err := h.CatalogService.ListTags()
	if err != nil {
		respondServiceError(c, err, "Failed to fetch tags")
		return
	}
	response.OK(c, tags)
}
