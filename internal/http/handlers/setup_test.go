package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/inkwell-next/internal/models"
	"github.com/inkwell-next/internal/provider"
	"github.com/inkwell-next/internal/repository"
	"github.com/inkwell-next/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupHandlerTest(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:handler_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Profile{}, &models.Article{},
		&models.Product{}, &models.Tag{}, &models.CartItem{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}

	articleRepo := repository.NewArticleRepository(db)
	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	productRepo := repository.NewProductRepository(db)
	tagRepo := repository.NewTagRepository(db)
	cartRepo := repository.NewCartRepository(db)

	articleService := service.NewArticleService(articleRepo)
	handler := New(&provider.Container{
		ArticleRepo: articleRepo,
		UserRepo:    userRepo,
		ProfileRepo: profileRepo,
		ProductRepo: productRepo,
		TagRepo:     tagRepo,
		CartRepo:    cartRepo,

		ArticleService: articleService,
		UserService:    service.NewUserService(userRepo, profileRepo, articleRepo, articleService),
		CatalogService: service.NewCatalogService(productRepo, tagRepo),
		CartService:    service.NewCartService(cartRepo, userRepo, productRepo),
	})

	r := gin.New()
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
	r.POST("/user", handler.RegisterUser)
	r.GET("/user/:id", handler.GetUser)
	r.POST("/user/:id/profile", handler.CreateProfile)
	r.GET("/user/:id/profiles", handler.ListProfiles)
	r.POST("/user/:id/articles", handler.CreateUserArticles)
	r.GET("/user/:id/articles", handler.ListUserArticles)
	r.POST("/users", handler.CreateUsers)
	r.GET("/users", handler.ListUsers)
	r.POST("/products", handler.CreateProduct)
	r.GET("/tags", handler.ListTags)
	r.POST("/users/:userId/cart", handler.AddCartItem)
	r.GET("/users/:userId/cart", handler.GetCart)
	return r, db
}

func doRequest(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body == nil {
		reader = bytes.NewReader(nil)
	} else {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body failed: %v", err)
		}
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response %q failed: %v", w.Body.String(), err)
	}
}

func wantStatus(t *testing.T, w *httptest.ResponseRecorder, status int) {
	t.Helper()
	if w.Code != status {
		t.Fatalf("status want %d got %d, body: %s", status, w.Code, w.Body.String())
	}
}

func wantError(t *testing.T, w *httptest.ResponseRecorder, status int, msg string) {
	t.Helper()
	wantStatus(t, w, status)
	var body map[string]string
	decodeBody(t, w, &body)
	if body["error"] != msg {
		t.Fatalf("error want %q got %q", msg, body["error"])
	}
}

func wantCount(t *testing.T, w *httptest.ResponseRecorder, status int, count float64) {
	t.Helper()
	wantStatus(t, w, status)
	var body map[string]float64
	decodeBody(t, w, &body)
	if body["count"] != count {
		t.Fatalf("count want %v got %v", count, body["count"])
	}
}
