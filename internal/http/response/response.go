package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// 响应体直出记录/数组，错误统一为 {"error": msg}，与上游 API 的线上格式保持兼容。

// OK 200 成功响应
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created 201 创建成功响应
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// CreatedCount 201 批量创建响应（createMany 语义）
func CreatedCount(c *gin.Context, count int64) {
	c.JSON(http.StatusCreated, gin.H{"count": count})
}

// Count 200 批量命中数响应
func Count(c *gin.Context, count int64) {
	c.JSON(http.StatusOK, gin.H{"count": count})
}

// Error 错误响应
func Error(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"error": msg})
}

// BadRequest 400 响应
func BadRequest(c *gin.Context, msg string) {
	Error(c, http.StatusBadRequest, msg)
}

// NotFound 404 响应，msg 形如 "<Resource> not found"
func NotFound(c *gin.Context, resource string) {
	Error(c, http.StatusNotFound, resource+" not found")
}

// Internal 500 响应（静态文案，不泄漏内部错误细节）
func Internal(c *gin.Context, msg string) {
	Error(c, http.StatusInternalServerError, msg)
}
