package provider

import (
	"github.com/inkwell-next/internal/config"
	"github.com/inkwell-next/internal/models"
	"github.com/inkwell-next/internal/repository"
	"github.com/inkwell-next/internal/service"
)

// Container 依赖注入容器
type Container struct {
	Config *config.Config

	// Repositories
	ArticleRepo repository.ArticleRepository
	UserRepo    repository.UserRepository
	ProfileRepo repository.ProfileRepository
	ProductRepo repository.ProductRepository
	TagRepo     repository.TagRepository
	CartRepo    repository.CartRepository

	// Services
	ArticleService *service.ArticleService
	UserService    *service.UserService
	CatalogService *service.CatalogService
	CartService    *service.CartService
}

// NewContainer 基于全局数据库句柄装配依赖
func NewContainer(cfg *config.Config) *Container {
	db := models.DB

	articleRepo := repository.NewArticleRepository(db)
	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	productRepo := repository.NewProductRepository(db)
	tagRepo := repository.NewTagRepository(db)
	cartRepo := repository.NewCartRepository(db)

	articleService := service.NewArticleService(articleRepo)
	userService := service.NewUserService(userRepo, profileRepo, articleRepo, articleService)
	catalogService := service.NewCatalogService(productRepo, tagRepo)
	cartService := service.NewCartService(cartRepo, userRepo, productRepo)

	return &Container{
		Config: cfg,

		ArticleRepo: articleRepo,
		UserRepo:    userRepo,
		ProfileRepo: profileRepo,
		ProductRepo: productRepo,
		TagRepo:     tagRepo,
		CartRepo:    cartRepo,

		ArticleService: articleService,
		UserService:    userService,
		CatalogService: catalogService,
		CartService:    cartService,
	}
}
