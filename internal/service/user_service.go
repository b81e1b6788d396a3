package service

import (
	"errors"
	"strings"

	"github.com/inkwell-next/internal/models"
	"github.com/inkwell-next/internal/repository"

	"gorm.io/gorm"
)

// RegisterInput 注册用户输入（用户 + 档案一次创建）
type RegisterInput struct {
	Email   string
	Name    string
	Address string
	Phone   string
}

// UserInput 批量创建用户输入
type UserInput struct {
	Email string
}

// ProfileInput 创建档案输入
type ProfileInput struct {
	Name    string
	Address string
	Phone   string
}

// UserService 用户服务
type UserService struct {
	userRepo    repository.UserRepository
	profileRepo repository.ProfileRepository
	articleRepo repository.ArticleRepository
	articles    *ArticleService
}

// NewUserService 创建用户服务
func NewUserService(userRepo repository.UserRepository, profileRepo repository.ProfileRepository, articleRepo repository.ArticleRepository, articles *ArticleService) *UserService {
	return &UserService{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		articleRepo: articleRepo,
		articles:    articles,
	}
}

// Register 交互式事务：查邮箱、建用户、建档案，任一步失败整体回滚。
// 邮箱预检只是快速路径，并发请求间存在竞态窗口；
// 唯一索引触发的 gorm.ErrDuplicatedKey 才是最终裁决。
func (s *UserService) Register(input RegisterInput) (*models.User, *models.Profile, error) {
	email := strings.TrimSpace(input.Email)
	if email == "" {
		return nil, nil, newValidationError("email", "is required")
	}

	var user *models.User
	var profile *models.Profile
	err := s.userRepo.Transaction(func(tx *gorm.DB) error {
		existing, err := s.userRepo.WithTx(tx).GetByEmail(email)
		if err != nil {
			return err
		}
		if existing != nil {
			return ErrEmailTaken
		}
		user = &models.User{Email: email}
		if err := s.userRepo.WithTx(tx).Create(user); err != nil {
			return err
		}
		profile = &models.Profile{
			Name:    input.Name,
			Address: input.Address,
			Phone:   input.Phone,
			UserID:  user.ID,
		}
		return s.profileRepo.WithTx(tx).Create(profile)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, nil, ErrEmailTaken
		}
		return nil, nil, err
	}
	return user, profile, nil
}

// CreateBatch 批量创建用户（整批原子）
func (s *UserService) CreateBatch(inputs []UserInput) (int64, error) {
	users := make([]models.User, 0, len(inputs))
	for _, input := range inputs {
		email := strings.TrimSpace(input.Email)
		if email == "" {
			return 0, newValidationError("email", "is required")
		}
		users = append(users, models.User{Email: email})
	}
	count, err := s.userRepo.CreateBatch(users)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return 0, ErrEmailTaken
		}
		return 0, err
	}
	return count, nil
}

// List 用户列表
func (s *UserService) List() ([]models.User, error) {
	return s.userRepo.List()
}

// Get 按 ID 获取用户（含档案）
func (s *UserService) Get(id uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(id, true)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// requireUser 父记录存在性检查，依赖操作前必须通过
func (s *UserService) requireUser(id uint) error {
	user, err := s.userRepo.GetByID(id, false)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	return nil
}

// CreateProfile 为既有用户创建档案
func (s *UserService) CreateProfile(userID uint, input ProfileInput) (*models.Profile, error) {
	if err := s.requireUser(userID); err != nil {
		return nil, err
	}
	profile := &models.Profile{
		Name:    input.Name,
		Address: input.Address,
		Phone:   input.Phone,
		UserID:  userID,
	}
	if err := s.profileRepo.Create(profile); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, newValidationError("userId", "profile already exists for this user")
		}
		return nil, err
	}
	return profile, nil
}

// ListProfiles 用户档案列表
func (s *UserService) ListProfiles(userID uint) ([]models.Profile, error) {
	if err := s.requireUser(userID); err != nil {
		return nil, err
	}
	return s.profileRepo.ListByUser(userID)
}

// CreateArticles 为既有用户批量创建署名文章
func (s *UserService) CreateArticles(userID uint, inputs []ArticleInput) (int64, error) {
	if err := s.requireUser(userID); err != nil {
		return 0, err
	}
	for i := range inputs {
		inputs[i].UserID = &userID
	}
	return s.articles.CreateBatch(inputs)
}

// ListArticles 用户署名文章列表
func (s *UserService) ListArticles(userID uint) ([]models.Article, error) {
	if err := s.requireUser(userID); err != nil {
		return nil, err
	}
	return s.articleRepo.List(repository.ArticleListFilter{UserID: &userID})
}
