package models

import "time"

// Profile 用户档案表（与用户一对一）
type Profile struct {
	ID        uint      `gorm:"primarykey" json:"id"`                                         // 主键
	Name      string    `gorm:"not null" json:"name"`                                         // 姓名
	Address   string    `gorm:"default:''" json:"address"`                                    // 地址
	Phone     string    `gorm:"default:''" json:"phone"`                                      // 电话
	UserID    uint      `gorm:"uniqueIndex;not null" json:"userId"`                           // 所属用户（唯一）
	CreatedAt time.Time `gorm:"index" json:"createdAt"`                                       // 创建时间
	UpdatedAt time.Time `gorm:"index" json:"updatedAt"`                                       // 更新时间
}

// TableName 指定表名
func (Profile) TableName() string {
	return "profiles"
}
