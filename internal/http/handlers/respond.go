package handlers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/inkwell-next/internal/http/response"
	"github.com/inkwell-next/internal/logger"
	"github.com/inkwell-next/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// requestLog 提供携带 request_id 的日志实例。
func requestLog(c *gin.Context) *zap.SugaredLogger {
	if c == nil {
		return logger.S()
	}
	if requestID, ok := c.Get("request_id"); ok {
		if id, ok := requestID.(string); ok && id != "" {
			return logger.SW("request_id", id)
		}
	}
	return logger.S()
}

// respondServiceError 业务错误到响应的统一映射：
// 校验失败 → 400，资源缺失 → 404，唯一约束冲突 → 400，其余 → 500 静态文案。
func respondServiceError(c *gin.Context, err error, fallback string) {
	var vErr *service.ValidationError
	switch {
	case errors.As(err, &vErr):
		response.BadRequest(c, vErr.Error())
	case errors.Is(err, service.ErrArticleNotFound):
		response.NotFound(c, "Article")
	case errors.Is(err, service.ErrUserNotFound):
		response.NotFound(c, "User")
	case errors.Is(err, service.ErrProductNotFound):
		response.NotFound(c, "Product")
	case errors.Is(err, service.ErrTagNotFound):
		response.NotFound(c, "Tag")
	case errors.Is(err, service.ErrEmailTaken):
		response.BadRequest(c, "User with this email already exists")
	case errors.Is(err, service.ErrInvalidCartItem):
		response.BadRequest(c, "Invalid cart item")
	default:
		requestLog(c).Errorw("handler_error",
			"path", c.Request.URL.Path,
			"error", err,
		)
		response.Internal(c, fallback)
	}
}

// parseID 解析路径中的整数 ID，失败即 400，不触达数据库
func parseID(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		response.BadRequest(c, "Invalid "+name)
		return 0, false
	}
	return uint(id), true
}

// parseIDList 解析逗号分隔的 ID 列表，任一段非法即 400
func parseIDList(c *gin.Context, name string) ([]uint, bool) {
	raw := c.Param(name)
	parts := strings.Split(raw, ",")
	ids := make([]uint, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.ParseUint(strings.TrimSpace(part), 10, 64)
		if err != nil || id == 0 {
			response.BadRequest(c, "Invalid "+name)
			return nil, false
		}
		ids = append(ids, uint(id))
	}
	return ids, true
}

// parseQueryInt 解析整数查询参数，缺省取 fallback，非法即 400
func parseQueryInt(c *gin.Context, name string, fallback int) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, true
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		response.BadRequest(c, "Invalid "+name)
		return 0, false
	}
	return value, true
}
