package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product 商品表
type Product struct {
	ID        uint            `gorm:"primarykey" json:"id"`             // 主键
	Name      string          `gorm:"not null" json:"name"`             // 名称
	Price     decimal.Decimal `gorm:"type:decimal(12,2)" json:"price"`  // 价格
	CreatedAt time.Time       `gorm:"index" json:"createdAt"`           // 创建时间
	UpdatedAt time.Time       `gorm:"index" json:"updatedAt"`           // 更新时间

	Tags []Tag `gorm:"many2many:product_tags" json:"tags,omitempty"` // 关联标签
}

// TableName 指定表名
func (Product) TableName() string {
	return "products"
}
