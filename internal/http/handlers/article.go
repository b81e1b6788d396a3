package handlers

import (
	"bytes"
	"encoding/json"

	"github.com/inkwell-next/internal/http/response"
	"github.com/inkwell-next/internal/service"

	"github.com/gin-gonic/gin"
)

// ArticleRequest 创建文章请求
type ArticleRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	State   string `json:"state"`
	UserID  *uint  `json:"userId"`
}

// ArticlePatchRequest 部分更新请求，缺省字段不参与合并
type ArticlePatchRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
	State   *string `json:"state"`
	UserID  *uint   `json:"userId"`
}

func (req ArticleRequest) toInput() service.ArticleInput {
	return service.ArticleInput{
		Title:   req.Title,
		Content: req.Content,
		State:   req.State,
		UserID:  req.UserID,
	}
}

func (req ArticlePatchRequest) toPatch() service.ArticlePatch {
	return service.ArticlePatch{
		Title:   req.Title,
		Content: req.Content,
		State:   req.State,
		UserID:  req.UserID,
	}
}

// decodeArticleRequests 请求体可为单个对象或数组，统一按批处理
func decodeArticleRequests(c *gin.Context) ([]ArticleRequest, bool) {
	body, err := c.GetRawData()
	if err != nil {
		response.BadRequest(c, "Invalid request body")
		return nil, false
	}
	trimmed := bytes.TrimLeft(body, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var reqs []ArticleRequest
		if err := json.Unmarshal(trimmed, &reqs); err != nil {
			response.BadRequest(c, "Invalid request body")
			return nil, false
		}
		return reqs, true
	}
	var req ArticleRequest
	if err := json.Unmarshal(trimmed, &req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return nil, false
	}
	return []ArticleRequest{req}, true
}

// CreateArticles POST /articles 单个或批量创建，整批校验通过才写入
func (h *Handler) CreateArticles(c *gin.Context) {
	reqs, ok := decodeArticleRequests(c)
	if !ok {
		return
	}
	inputs := make([]service.ArticleInput, 0, len(reqs))
	for _, req := range reqs {
		inputs = append(inputs, req.toInput())
	}
	count, err := h.ArticleService.CreateBatch(inputs)
	if err != nil {
		respondServiceError(c, err, "Failed to create article")
		return
	}
	response.CreatedCount(c, count)
}

// ListArticles GET /articles 全量列表，展开作者与档案
func (h *Handler) ListArticles(c *gin.Context) {
	articles, err := h.ArticleService.List()
	if err != nil {
		respondServiceError(c, err, "Failed to fetch articles")
		return
	}
	response.OK(c, articles)
}

// GetArticle GET /article/:id
func (h *Handler) GetArticle(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	article, err := h.ArticleService.Get(id)
	if err != nil {
		respondServiceError(c, err, "Failed to fetch article")
		return
	}
	response.OK(c, article)
}

// GetPublishedArticles GET /articles/published
func (h *Handler) GetPublishedArticles(c *gin.Context) {
	articles, err := h.ArticleService.ListPublished()
	if err != nil {
		respondServiceError(c, err, "Failed to fetch published articles")
		return
	}
	response.OK(c, articles)
}

// UpdateArticle PUT /article/:id 部分字段合并
func (h *Handler) UpdateArticle(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req ArticlePatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	article, err := h.ArticleService.Update(id, req.toPatch())
	if err != nil {
		respondServiceError(c, err, "Failed to update article")
		return
	}
	response.OK(c, article)
}

// UpdateArticles PUT /articles/:ids 对逗号分隔 ID 集合应用同一合并
func (h *Handler) UpdateArticles(c *gin.Context) {
	ids, ok := parseIDList(c, "ids")
	if !ok {
		return
	}
	var req ArticlePatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	count, err := h.ArticleService.UpdateMany(ids, req.toPatch())
	if err != nil {
		respondServiceError(c, err, "Failed to update articles")
		return
	}
	response.Count(c, count)
}

// DeleteArticle DELETE /article/:id 返回被删记录
func (h *Handler) DeleteArticle(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	article, err := h.ArticleService.Delete(id)
	if err != nil {
		respondServiceError(c, err, "Failed to delete article")
		return
	}
	response.OK(c, article)
}

// DeleteArticles DELETE /articles/:ids 批量删除，返回命中数
func (h *Handler) DeleteArticles(c *gin.Context) {
	ids, ok := parseIDList(c, "ids")
	if !ok {
		return
	}
	count, err := h.ArticleService.DeleteMany(ids)
	if err != nil {
		respondServiceError(c, err, "Failed to delete articles")
		return
	}
	response.Count(c, count)
}

// CountArticles GET /articles/count 只读事务快照
func (h *Handler) CountArticles(c *gin.Context) {
	snapshot, err := h.ArticleService.Counts()
	if err != nil {
		respondServiceError(c, err, "Failed to fetch article counts")
		return
	}
	response.OK(c, gin.H{
		"articleCount":          snapshot.Articles,
		"publishedArticleCount": snapshot.PublishedCount,
	})
}

// PaginatedArticles GET /articles/paginated?skip&take
func (h *Handler) PaginatedArticles(c *gin.Context) {
	skip, ok := parseQueryInt(c, "skip", 0)
	if !ok {
		return
	}
	take, ok := parseQueryInt(c, "take", 10)
	if !ok {
		return
	}
	articles, err := h.ArticleService.Page(skip, take)
	if err != nil {
		respondServiceError(c, err, "Failed to fetch paginated articles")
		return
	}
	response.OK(c, articles)
}
