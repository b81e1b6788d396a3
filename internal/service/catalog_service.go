package service

import (
	"github.com/inkwell-next/internal/models"
	"github.com/inkwell-next/internal/repository"

	"github.com/shopspring/decimal"
)

// ProductInput 创建商品输入
type ProductInput struct {
	Name   string
	Price  decimal.Decimal
	TagIDs []uint
}

// CatalogService 商品/标签服务
type CatalogService struct {
	productRepo repository.ProductRepository
	tagRepo     repository.TagRepository
}

// NewCatalogService 创建目录服务
func NewCatalogService(productRepo repository.ProductRepository, tagRepo repository.TagRepository) *CatalogService {
	return &CatalogService{
		productRepo: productRepo,
		tagRepo:     tagRepo,
	}
}

// CreateProduct 创建商品并挂接既有标签
func (s *CatalogService) CreateProduct(input ProductInput) (*models.Product, error) {
	if input.Name == "" {
		return nil, newValidationError("name", "is required")
	}
	if input.Price.IsNegative() {
		return nil, newValidationError("price", "must not be negative")
	}

	var tags []models.Tag
	if len(input.TagIDs) > 0 {
		found, err := s.tagRepo.ListByIDs(input.TagIDs)
		if err != nil {
			return nil, err
		}
		if len(found) != len(input.TagIDs) {
			return nil, ErrTagNotFound
		}
		tags = found
	}

	product := &models.Product{
		Name:  input.Name,
		Price: input.Price,
		Tags:  tags,
	}
	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

// ListTags 标签列表并展开关联商品
func (s *CatalogService) ListTags() ([]models.Tag, error) {
	return s.tagRepo.ListWithProducts()
}
