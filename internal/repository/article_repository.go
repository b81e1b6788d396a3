package repository

import (
	"errors"

	"github.com/inkwell-next/internal/models"

	"gorm.io/gorm"
)

// ArticleRepository 文章数据访问接口
type ArticleRepository interface {
	Create(article *models.Article) error
	CreateBatch(articles []models.Article) (int64, error)
	GetByID(id uint) (*models.Article, error)
	List(filter ArticleListFilter) ([]models.Article, error)
	UpdateFields(id uint, updates map[string]interface{}) (int64, error)
	UpdateManyByIDs(ids []uint, updates map[string]interface{}) (int64, error)
	DeleteByID(id uint) error
	DeleteManyByIDs(ids []uint) (int64, error)
	CountByState(state string) (int64, error)
	Snapshot() (*ArticleSnapshot, error)
	Transaction(fn func(tx *gorm.DB) error) error
	WithTx(tx *gorm.DB) *GormArticleRepository
}

// GormArticleRepository GORM 实现
type GormArticleRepository struct {
	db *gorm.DB
}

// NewArticleRepository 创建文章仓库
func NewArticleRepository(db *gorm.DB) *GormArticleRepository {
	return &GormArticleRepository{db: db}
}

// WithTx 绑定事务
func (r *GormArticleRepository) WithTx(tx *gorm.DB) *GormArticleRepository {
	if tx == nil {
		return r
	}
	return &GormArticleRepository{db: tx}
}

// Transaction 执行事务
func (r *GormArticleRepository) Transaction(fn func(tx *gorm.DB) error) error {
	if fn == nil {
		return nil
	}
	return r.db.Transaction(fn)
}

// Create 创建单篇文章
func (r *GormArticleRepository) Create(article *models.Article) error {
	return r.db.Create(article).Error
}

// CreateBatch 批量创建文章（单条 INSERT，整批原子）
func (r *GormArticleRepository) CreateBatch(articles []models.Article) (int64, error) {
	if len(articles) == 0 {
		return 0, nil
	}
	result := r.db.Create(&articles)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// GetByID 按 ID 获取文章，未命中返回 nil
func (r *GormArticleRepository) GetByID(id uint) (*models.Article, error) {
	var article models.Article
	if err := r.db.First(&article, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &article, nil
}

// List 文章列表，支持状态/作者过滤、单层关联展开与 skip/take 分页
func (r *GormArticleRepository) List(filter ArticleListFilter) ([]models.Article, error) {
	query := r.db.Model(&models.Article{})
	if filter.State != "" {
		query = query.Where("state = ?", filter.State)
	}
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if len(filter.IDs) > 0 {
		query = query.Where("id IN ?", filter.IDs)
	}
	if filter.WithAuthor {
		query = query.Preload("Author").Preload("Author.Profile")
	}
	query = applyOffsetLimit(query, filter.Skip, filter.Take)

	var articles []models.Article
	if err := query.Order("id ASC").Find(&articles).Error; err != nil {
		return nil, err
	}
	return articles, nil
}

// UpdateFields 按 ID 部分更新，返回命中行数
func (r *GormArticleRepository) UpdateFields(id uint, updates map[string]interface{}) (int64, error) {
	if len(updates) == 0 {
		return 0, nil
	}
	result := r.db.Model(&models.Article{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// UpdateManyByIDs 对命中子集应用同一字段合并，不存在的 ID 静默跳过
func (r *GormArticleRepository) UpdateManyByIDs(ids []uint, updates map[string]interface{}) (int64, error) {
	if len(ids) == 0 || len(updates) == 0 {
		return 0, nil
	}
	result := r.db.Model(&models.Article{}).Where("id IN ?", ids).Updates(updates)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// DeleteByID 按 ID 物理删除
func (r *GormArticleRepository) DeleteByID(id uint) error {
	return r.db.Delete(&models.Article{}, id).Error
}

// DeleteManyByIDs 批量物理删除，返回命中行数
func (r *GormArticleRepository) DeleteManyByIDs(ids []uint) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	result := r.db.Where("id IN ?", ids).Delete(&models.Article{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// CountByState 按状态统计
func (r *GormArticleRepository) CountByState(state string) (int64, error) {
	var count int64
	query := r.db.Model(&models.Article{})
	if state != "" {
		query = query.Where("state = ?", state)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Snapshot 在同一只读事务内取全部文章与已发布计数，保证两者一致
func (r *GormArticleRepository) Snapshot() (*ArticleSnapshot, error) {
	snapshot := &ArticleSnapshot{}
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Order("id ASC").Find(&snapshot.Articles).Error; err != nil {
			return err
		}
		return tx.Model(&models.Article{}).
			Where("state = ?", models.ArticleStatePublished).
			Count(&snapshot.PublishedCount).Error
	})
	if err != nil {
		return nil, err
	}
	return snapshot, nil
}
