package repository

import (
	"github.com/inkwell-next/internal/models"

	"gorm.io/gorm"
)

// TagRepository 标签数据访问接口
type TagRepository interface {
	Create(tag *models.Tag) error
	ListByIDs(ids []uint) ([]models.Tag, error)
	ListWithProducts() ([]models.Tag, error)
	WithTx(tx *gorm.DB) *GormTagRepository
}

// GormTagRepository GORM 实现
type GormTagRepository struct {
	db *gorm.DB
}

// NewTagRepository 创建标签仓库
func NewTagRepository(db *gorm.DB) *GormTagRepository {
	return &GormTagRepository{db: db}
}

// WithTx 绑定事务
func (r *GormTagRepository) WithTx(tx *gorm.DB) *GormTagRepository {
	if tx == nil {
		return r
	}
	return &GormTagRepository{db: tx}
}

// Create 创建标签
func (r *GormTagRepository) Create(tag *models.Tag) error {
	return r.db.Create(tag).Error
}

// ListByIDs 批量获取标签
func (r *GormTagRepository) ListByIDs(ids []uint) ([]models.Tag, error) {
	if len(ids) == 0 {
		return []models.Tag{}, nil
	}
	var tags []models.Tag
	if err := r.db.Where("id IN ?", ids).Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

// ListWithProducts 标签列表并展开关联商品（单层 include）
func (r *GormTagRepository) ListWithProducts() ([]models.Tag, error) {
	var tags []models.Tag
	if err := r.db.Preload("Products").Order("id ASC").Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}
