package models

import "time"

// Tag 标签表
type Tag struct {
	ID        uint      `gorm:"primarykey" json:"id"`   // 主键
	Name      string    `gorm:"not null" json:"name"`   // 名称
	CreatedAt time.Time `gorm:"index" json:"createdAt"` // 创建时间
	UpdatedAt time.Time `gorm:"index" json:"updatedAt"` // 更新时间

	Products []Product `gorm:"many2many:product_tags" json:"products,omitempty"` // 关联商品
}

// TableName 指定表名
func (Tag) TableName() string {
	return "tags"
}
