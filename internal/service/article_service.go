package service

import (
	"time"

	"github.com/inkwell-next/internal/models"
	"github.com/inkwell-next/internal/repository"
)

// ArticleInput 创建文章输入
type ArticleInput struct {
	Title   string
	Content string
	State   string
	UserID  *uint
}

// ArticlePatch 部分更新输入，nil 字段不参与合并
type ArticlePatch struct {
	Title   *string
	Content *string
	State   *string
	UserID  *uint
}

// ArticleService 文章服务
// 所有写路径统一经过同一个校验闸口，处理器不得绕过本服务直达仓库。
type ArticleService struct {
	articleRepo repository.ArticleRepository
}

// NewArticleService 创建文章服务
func NewArticleService(articleRepo repository.ArticleRepository) *ArticleService {
	return &ArticleService{articleRepo: articleRepo}
}

// validateFields 单一校验闸口：标题/正文长度与状态枚举
func validateFields(title, content, state *string) error {
	if title != nil && len(*title) > models.ArticleTitleMaxLen {
		return newValidationError("title", "must be at most 100 characters")
	}
	if content != nil && len(*content) > models.ArticleContentMaxLen {
		return newValidationError("content", "must be at most 500 characters")
	}
	if state != nil && !models.ValidArticleState(*state) {
		return newValidationError("state", "must be one of DRAFT, PUBLISHED, ARCHIVED")
	}
	return nil
}

// normalize 补默认状态并整体校验创建输入
func (s *ArticleService) normalize(input ArticleInput) (*models.Article, error) {
	if input.Title == "" {
		return nil, newValidationError("title", "is required")
	}
	if input.State == "" {
		input.State = models.ArticleStateDraft
	}
	if err := validateFields(&input.Title, &input.Content, &input.State); err != nil {
		return nil, err
	}
	return &models.Article{
		Title:   input.Title,
		Content: input.Content,
		State:   input.State,
		UserID:  input.UserID,
	}, nil
}

// Create 创建单篇文章
func (s *ArticleService) Create(input ArticleInput) (*models.Article, error) {
	article, err := s.normalize(input)
	if err != nil {
		return nil, err
	}
	if err := s.articleRepo.Create(article); err != nil {
		return nil, err
	}
	return article, nil
}

// CreateBatch 批量创建：先整体校验，任一条不合法则整批拒绝，不触达持久层
func (s *ArticleService) CreateBatch(inputs []ArticleInput) (int64, error) {
	articles := make([]models.Article, 0, len(inputs))
	for _, input := range inputs {
		article, err := s.normalize(input)
		if err != nil {
			return 0, err
		}
		articles = append(articles, *article)
	}
	return s.articleRepo.CreateBatch(articles)
}

// List 文章列表，展开作者及其档案
func (s *ArticleService) List() ([]models.Article, error) {
	return s.articleRepo.List(repository.ArticleListFilter{WithAuthor: true})
}

// ListPublished 已发布文章列表
func (s *ArticleService) ListPublished() ([]models.Article, error) {
	return s.articleRepo.List(repository.ArticleListFilter{State: models.ArticleStatePublished})
}

// Get 按 ID 获取
func (s *ArticleService) Get(id uint) (*models.Article, error) {
	article, err := s.articleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, ErrArticleNotFound
	}
	return article, nil
}

// patchUpdates 把部分更新转成字段合并，复用同一校验闸口
func (s *ArticleService) patchUpdates(patch ArticlePatch) (map[string]interface{}, error) {
	if err := validateFields(patch.Title, patch.Content, patch.State); err != nil {
		return nil, err
	}
	updates := map[string]interface{}{}
	if patch.Title != nil {
		updates["title"] = *patch.Title
	}
	if patch.Content != nil {
		updates["content"] = *patch.Content
	}
	if patch.State != nil {
		updates["state"] = *patch.State
	}
	if patch.UserID != nil {
		updates["user_id"] = *patch.UserID
	}
	if len(updates) > 0 {
		updates["updated_at"] = time.Now()
	}
	return updates, nil
}

// Update 部分更新单篇文章，返回更新后的记录
func (s *ArticleService) Update(id uint, patch ArticlePatch) (*models.Article, error) {
	updates, err := s.patchUpdates(patch)
	if err != nil {
		return nil, err
	}
	if len(updates) == 0 {
		return s.Get(id)
	}
	rows, err := s.articleRepo.UpdateFields(id, updates)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, ErrArticleNotFound
	}
	return s.Get(id)
}

// UpdateMany 对 ID 集合应用同一合并，返回实际命中数
func (s *ArticleService) UpdateMany(ids []uint, patch ArticlePatch) (int64, error) {
	updates, err := s.patchUpdates(patch)
	if err != nil {
		return 0, err
	}
	if len(updates) == 0 {
		return 0, nil
	}
	return s.articleRepo.UpdateManyByIDs(ids, updates)
}

// Delete 物理删除，返回被删记录
func (s *ArticleService) Delete(id uint) (*models.Article, error) {
	article, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if err := s.articleRepo.DeleteByID(id); err != nil {
		return nil, err
	}
	return article, nil
}

// DeleteMany 批量物理删除，返回实际命中数
func (s *ArticleService) DeleteMany(ids []uint) (int64, error) {
	return s.articleRepo.DeleteManyByIDs(ids)
}

// Counts 只读事务快照：全量文章 + 已发布计数
func (s *ArticleService) Counts() (*repository.ArticleSnapshot, error) {
	return s.articleRepo.Snapshot()
}

// Page skip/take 偏移分页
func (s *ArticleService) Page(skip, take int) ([]models.Article, error) {
	if take <= 0 {
		take = 10
	}
	if skip < 0 {
		skip = 0
	}
	return s.articleRepo.List(repository.ArticleListFilter{Skip: skip, Take: take})
}
