package main

import (
	"github.com/inkwell-next/internal/config"
	"github.com/inkwell-next/internal/logger"
	"github.com/inkwell-next/internal/models"
	"github.com/inkwell-next/internal/provider"
	"github.com/inkwell-next/internal/service"

	"github.com/shopspring/decimal"
)

// 写入一批演示数据：标签、商品、用户 + 档案、署名文章、购物车项。
func main() {
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()

	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns: cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns: cfg.Database.Pool.MaxIdleConns,
	}); err != nil {
		stdLog.Fatalf("database init failed: %v", err)
	}
	defer func() {
		_ = models.CloseDB()
	}()
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("database migrate failed: %v", err)
	}

	c := provider.NewContainer(cfg)

	tags := []models.Tag{
		{Name: "stationery"},
		{Name: "digital"},
	}
	for i := range tags {
		if err := c.TagRepo.Create(&tags[i]); err != nil {
			stdLog.Fatalf("seed tag failed: %v", err)
		}
	}

	products := []service.ProductInput{
		{Name: "Fountain Pen", Price: decimal.NewFromFloat(29.90), TagIDs: []uint{tags[0].ID}},
		{Name: "Notebook", Price: decimal.NewFromFloat(9.50), TagIDs: []uint{tags[0].ID}},
		{Name: "E-Reader", Price: decimal.NewFromFloat(129.00), TagIDs: []uint{tags[1].ID}},
	}
	var firstProduct *models.Product
	for _, input := range products {
		product, err := c.CatalogService.CreateProduct(input)
		if err != nil {
			stdLog.Fatalf("seed product failed: %v", err)
		}
		if firstProduct == nil {
			firstProduct = product
		}
	}

	user, _, err := c.UserService.Register(service.RegisterInput{
		Email:   "demo@inkwell.dev",
		Name:    "Demo Writer",
		Address: "1 Sample Street",
		Phone:   "000-0000",
	})
	if err != nil {
		stdLog.Fatalf("seed user failed: %v", err)
	}

	if _, err := c.UserService.CreateArticles(user.ID, []service.ArticleInput{
		{Title: "Hello Inkwell", Content: "First demo article.", State: models.ArticleStatePublished},
		{Title: "Drafting", Content: "Work in progress.", State: models.ArticleStateDraft},
	}); err != nil {
		stdLog.Fatalf("seed articles failed: %v", err)
	}

	if _, err := c.CartService.AddItem(service.AddCartItemInput{
		UserID:    user.ID,
		ProductID: firstProduct.ID,
		Quantity:  2,
	}); err != nil {
		stdLog.Fatalf("seed cart failed: %v", err)
	}

	logger.Infow("seed_done", "user_id", user.ID)
}
