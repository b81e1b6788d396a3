package models

import "time"

// User 用户表
type User struct {
	ID        uint      `gorm:"primarykey" json:"id"`              // 主键
	Email     string    `gorm:"uniqueIndex;not null" json:"email"` // 邮箱（唯一索引为最终裁决）
	CreatedAt time.Time `gorm:"index" json:"createdAt"`            // 创建时间
	UpdatedAt time.Time `gorm:"index" json:"updatedAt"`            // 更新时间

	Profile  *Profile  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"profile,omitempty"`   // 一对一档案（随用户级联删除）
	Articles []Article `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL" json:"articles,omitempty"` // 署名文章（用户删除后转为匿名）
}

// TableName 指定表名
func (User) TableName() string {
	return "users"
}
