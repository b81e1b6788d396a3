package models

import "time"

// 文章状态枚举
const (
	ArticleStateDraft     = "DRAFT"
	ArticleStatePublished = "PUBLISHED"
	ArticleStateArchived  = "ARCHIVED"
)

// 文章字段长度上限
const (
	ArticleTitleMaxLen   = 100
	ArticleContentMaxLen = 500
)

// Article 文章表
type Article struct {
	ID        uint      `gorm:"primarykey" json:"id"`                                       // 主键
	Title     string    `gorm:"type:varchar(100);not null" json:"title"`                    // 标题
	Content   string    `gorm:"type:varchar(500);not null" json:"content"`                  // 正文
	State     string    `gorm:"type:varchar(20);not null;default:'DRAFT';index" json:"state"` // 状态（DRAFT/PUBLISHED/ARCHIVED）
	UserID    *uint     `gorm:"index" json:"userId"`                                        // 作者（可为空，匿名文章）
	CreatedAt time.Time `gorm:"index" json:"createdAt"`                                     // 创建时间
	UpdatedAt time.Time `gorm:"index" json:"updatedAt"`                                     // 更新时间

	Author *User `gorm:"foreignKey:UserID" json:"user,omitempty"` // 关联作者
}

// TableName 指定表名
func (Article) TableName() string {
	return "articles"
}

// ValidArticleState 判断状态是否在枚举内
func ValidArticleState(state string) bool {
	switch state {
	case ArticleStateDraft, ArticleStatePublished, ArticleStateArchived:
		return true
	}
	return false
}
