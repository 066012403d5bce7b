package handler

import (
	"github.com/gin-gonic/gin"

	"uni-timetable/backend/internal/service"
	"uni-timetable/backend/pkg/response"
)

// ReferenceHandler 基础数据模块 Handler
type ReferenceHandler struct {
	svc service.ReferenceService
}

// NewReferenceHandler 创建 ReferenceHandler 实例
func NewReferenceHandler(svc service.ReferenceService) *ReferenceHandler {
	return &ReferenceHandler{svc: svc}
}

// GetAll 获取全部下拉框基础数据
// GET /api/v1/reference
//
// 任一路拉取失败只降级该路为空列表，整体始终 200。
func (h *ReferenceHandler) GetAll(c *gin.Context) {
	response.OK(c, h.svc.FetchAll(c.Request.Context()))
}
