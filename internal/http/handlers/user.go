package handlers

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/inkwell-next/internal/http/response"
	"github.com/inkwell-next/internal/service"

	"github.com/gin-gonic/gin"
)

// RegisterUserRequest 注册用户请求（用户 + 档案）
type RegisterUserRequest struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

// UserRequest 批量创建用户请求
type UserRequest struct {
	Email string `json:"email"`
}

// ProfileRequest 创建档案请求
type ProfileRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

// RegisterUser POST /user 交互式事务创建用户与档案
func (h *Handler) RegisterUser(c *gin.Context) {
	var req RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	user, profile, err := h.UserService.Register(service.RegisterInput{
		Email:   req.Email,
		Name:    req.Name,
		Address: req.Address,
		Phone:   req.Phone,
	})
	if err != nil {
		respondServiceError(c, err, "Failed to create user")
		return
	}
	response.Created(c, gin.H{"user": user, "profile": profile})
}

// CreateUsers POST /users 单个或批量创建
func (h *Handler) CreateUsers(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	trimmed := bytes.TrimLeft(body, " \t\r\n")
	var reqs []UserRequest
	if len(trimmed) > 0 && trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &reqs); err != nil {
			response.BadRequest(c, "Invalid request body")
			return
		}
	} else {
		var req UserRequest
		if err := json.Unmarshal(trimmed, &req); err != nil {
			response.BadRequest(c, "Invalid request body")
			return
		}
		reqs = []UserRequest{req}
	}

	inputs := make([]service.UserInput, 0, len(reqs))
	for _, req := range reqs {
		inputs = append(inputs, service.UserInput{Email: req.Email})
	}
	count, err := h.UserService.CreateBatch(inputs)
	if err != nil {
		respondServiceError(c, err, "Failed to create users")
		return
	}
	response.CreatedCount(c, count)
}

// ListUsers GET /users
func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.UserService.List()
	if err != nil {
		respondServiceError(c, err, "Failed to fetch users")
		return
	}
	response.OK(c, users)
}

// GetUser GET /user/:id 含档案
func (h *Handler) GetUser(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	user, err := h.UserService.Get(id)
	if err != nil {
		respondServiceError(c, err, "Failed to fetch user")
		return
	}
	response.OK(c, user)
}

// CreateProfile POST /user/:id/profile
func (h *Handler) CreateProfile(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	profile, err := h.UserService.CreateProfile(id, service.ProfileInput{
		Name:    req.Name,
		Address: req.Address,
		Phone:   req.Phone,
	})
	if err != nil {
		respondServiceError(c, err, "Failed to create profile")
		return
	}
	response.Created(c, profile)
}

// ListProfiles GET /user/:id/profiles
func (h *Handler) ListProfiles(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	profiles, err := h.UserService.ListProfiles(id)
	if err != nil {
		respondServiceError(c, err, "Failed to fetch profiles")
		return
	}
	response.OK(c, profiles)
}

// CreateUserArticles POST /user/:id/articles 为既有用户批量创建署名文章。
// 持久层故障在此端点按约定透出原始错误文本。
func (h *Handler) CreateUserArticles(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	reqs, ok := decodeArticleRequests(c)
	if !ok {
		return
	}
	inputs := make([]service.ArticleInput, 0, len(reqs))
	for _, req := range reqs {
		inputs = append(inputs, req.toInput())
	}
	count, err := h.UserService.CreateArticles(id, inputs)
	if err != nil {
		var vErr *service.ValidationError
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			response.NotFound(c, "User")
		case errors.As(err, &vErr):
			response.BadRequest(c, vErr.Error())
		default:
			requestLog(c).Errorw("handler_error", "path", c.Request.URL.Path, "error", err)
			response.Internal(c, err.Error())
		}
		return
	}
	response.CreatedCount(c, count)
}

// ListUserArticles GET /user/:id/articles
func (h *Handler) ListUserArticles(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	articles, err := h.UserService.ListArticles(id)
	if err != nil {
		respondServiceError(c, err, "Failed to fetch user articles")
		return
	}
	response.OK(c, articles)
}
