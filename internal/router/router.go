package router

import (
	"net/http"

	"github.com/inkwell-next/internal/config"
	"github.com/inkwell-next/internal/http/handlers"
	"github.com/inkwell-next/internal/logger"
	"github.com/inkwell-next/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	handler := handlers.New(c)

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Hello, World!")
	})

	// 文章
	r.POST("/articles", handler.CreateArticles)
	r.GET("/articles", handler.ListArticles)
	r.GET("/articles/published", handler.GetPublishedArticles)
	r.GET("/articles/count", handler.CountArticles)
	r.GET("/articles/paginated", handler.PaginatedArticles)
	r.PUT("/articles/:ids", handler.UpdateArticles)
	r.DELETE("/articles/:ids", handler.DeleteArticles)
	r.GET("/article/:id", handler.GetArticle)
	r.PUT("/article/:id", handler.UpdateArticle)
	r.DELETE("/article/:id", handler.DeleteArticle)

	// 用户与档案
	r.POST("/user", handler.RegisterUser)
	r.GET("/user/:id", handler.GetUser)
	r.POST("/user/:id/profile", handler.CreateProfile)
	r.GET("/user/:id/profiles", handler.ListProfiles)
	r.POST("/user/:id/articles", handler.CreateUserArticles)
	r.GET("/user/:id/articles", handler.ListUserArticles)
	r.POST("/users", handler.CreateUsers)
	r.GET("/users", handler.ListUsers)

	// 商品与标签
	r.POST("/products", handler.CreateProduct)
	r.GET("/tags", handler.ListTags)

	// 购物车
	r.POST("/users/:userId/cart", handler.AddCartItem)
	r.GET("/users/:userId/cart", handler.GetCart)

	return r
}
