package handler

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"uni-timetable/backend/internal/dto"
	"uni-timetable/backend/internal/service"
	"uni-timetable/backend/pkg/response"
)

// TimetableHandler 时间表模块 Handler
type TimetableHandler struct {
	svc service.TimetableService
}

// NewTimetableHandler 创建 TimetableHandler 实例
func NewTimetableHandler(svc service.TimetableService) *TimetableHandler {
	return &TimetableHandler{svc: svc}
}

// List 时间表列表
// GET /api/v1/timetables
func (h *TimetableHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		handleTimetableError(c, err)
		return
	}
	response.OK(c, resp)
}

// Generate 触发远端生成
// POST /api/v1/timetables/generate
func (h *TimetableHandler) Generate(c *gin.Context) {
	var req dto.GenerateTimetableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 21000, err.Error())
		return
	}

	resp, err := h.svc.Generate(c.Request.Context(), &req)
	if err != nil {
		handleTimetableError(c, err)
		return
	}
	response.OK(c, resp)
}

// Activate 激活时间表
// POST /api/v1/timetables/:id/activate
func (h *TimetableHandler) Activate(c *gin.Context) {
	id, ok := timetableID(c)
	if !ok {
		return
	}

	if err := h.svc.Activate(c.Request.Context(), id); err != nil {
		handleTimetableError(c, err)
		return
	}
	response.OK(c, nil)
}

// Delete 删除时间表
// DELETE /api/v1/timetables/:id
//
// 删除不可逆，要求请求头 X-Confirm-Delete: true 作为显式确认。
func (h *TimetableHandler) Delete(c *gin.Context) {
	id, ok := timetableID(c)
	if !ok {
		return
	}

	if c.GetHeader("X-Confirm-Delete") != "true" {
		response.BadRequest(c, 21002, "删除操作需在请求头 X-Confirm-Delete 中显式确认")
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		handleTimetableError(c, err)
		return
	}
	response.OK(c, nil)
}

// Grid 课表网格视图
// GET /api/v1/timetables/:id/grid
func (h *TimetableHandler) Grid(c *gin.Context) {
	id, ok := timetableID(c)
	if !ok {
		return
	}

	resp, err := h.svc.Grid(c.Request.Context(), id)
	if err != nil {
		handleTimetableError(c, err)
		return
	}
	response.OK(c, resp)
}

// Export 导出中转
// GET /api/v1/timetables/:id/export/:format (pdf | excel)
func (h *TimetableHandler) Export(c *gin.Context) {
	id, ok := timetableID(c)
	if !ok {
		return
	}
	format := c.Param("format")

	data, filename, contentType, err := h.svc.Export(c.Request.Context(), id, format)
	if err != nil {
		handleTimetableError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(200, contentType, data)
}

// timetableID 解析路径中的时间表 ID
func timetableID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(c, 21001, "无效的时间表 ID")
		return 0, false
	}
	return id, true
}

// handleTimetableError 统一时间表模块错误映射
func handleTimetableError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrExportFormatInvalid):
		response.BadRequest(c, 21003, err.Error())
	case handleUpstreamError(c, err, 21010):
	default:
		response.InternalError(c)
	}
}
