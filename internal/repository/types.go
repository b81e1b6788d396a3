package repository

import "github.com/inkwell-next/internal/models"

// ArticleListFilter 查询文章列表的过滤条件
type ArticleListFilter struct {
	State      string // 为空表示不过滤
	UserID     *uint
	IDs        []uint
	WithAuthor bool // 预加载 Author → Profile（单层 include，避免 N+1）
	Skip       int
	Take       int // <= 0 表示不分页
}

// ArticleSnapshot 同一只读事务内取得的一致性快照
type ArticleSnapshot struct {
	Articles       []models.Article
	PublishedCount int64
}
