package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"uni-timetable/backend/internal/dto"
	"uni-timetable/backend/internal/schedule"
	"uni-timetable/backend/internal/service"
	"uni-timetable/backend/pkg/response"
)

// SectionEditorHandler 班级编辑模块 Handler
type SectionEditorHandler struct {
	svc service.SectionEditorService
}

// NewSectionEditorHandler 创建 SectionEditorHandler 实例
func NewSectionEditorHandler(svc service.SectionEditorService) *SectionEditorHandler {
	return &SectionEditorHandler{svc: svc}
}

// Open 打开班级编辑会话
// POST /api/v1/sections/:id/editor
func (h *SectionEditorHandler) Open(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(c, 23001, "无效的班级 ID")
		return
	}

	resp, err := h.svc.Open(c.Request.Context(), id)
	if err != nil {
		handleEditorError(c, err)
		return
	}
	response.Created(c, resp)
}

// Get 查询会话状态
// GET /api/v1/sections/editor/:sid
func (h *SectionEditorHandler) Get(c *gin.Context) {
	resp, err := h.svc.Get(c.Request.Context(), c.Param("sid"))
	if err != nil {
		handleEditorError(c, err)
		return
	}
	response.OK(c, resp)
}

// UpdateSelection 整体替换选中课程集合
// PUT /api/v1/sections/editor/:sid/courses
func (h *SectionEditorHandler) UpdateSelection(c *gin.Context) {
	var req dto.UpdateSelectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 23000, err.Error())
		return
	}

	resp, err := h.svc.UpdateSelection(c.Request.Context(), c.Param("sid"), &req)
	if err != nil {
		handleEditorError(c, err)
		return
	}
	response.OK(c, resp)
}

// Assign 为课程指派教师
// PUT /api/v1/sections/editor/:sid/assignments
func (h *SectionEditorHandler) Assign(c *gin.Context) {
	var req dto.AssignInstructorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 23000, err.Error())
		return
	}

	resp, err := h.svc.Assign(c.Request.Context(), c.Param("sid"), &req)
	if err != nil {
		handleEditorError(c, err)
		return
	}
	response.OK(c, resp)
}

// ChangeYear 变更年级并重算学期选项
// PUT /api/v1/sections/editor/:sid/year
func (h *SectionEditorHandler) ChangeYear(c *gin.Context) {
	var req dto.ChangeYearRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 23000, err.Error())
		return
	}

	resp, err := h.svc.ChangeYear(c.Request.Context(), c.Param("sid"), &req)
	if err != nil {
		handleEditorError(c, err)
		return
	}
	response.OK(c, resp)
}

// Submit 整体提交并销毁会话
// POST /api/v1/sections/editor/:sid/submit
func (h *SectionEditorHandler) Submit(c *gin.Context) {
	resp, err := h.svc.Submit(c.Request.Context(), c.Param("sid"))
	if err != nil {
		handleEditorError(c, err)
		return
	}
	response.OK(c, resp)
}

// Discard 放弃草稿并销毁会话
// DELETE /api/v1/sections/editor/:sid
func (h *SectionEditorHandler) Discard(c *gin.Context) {
	if err := h.svc.Discard(c.Request.Context(), c.Param("sid")); err != nil {
		handleEditorError(c, err)
		return
	}
	response.OK(c, nil)
}

// SemesterOptions 按年级重算学期选项（会话外的独立查询）
// GET /api/v1/sections/semester-options?year=2&current=3
func (h *SectionEditorHandler) SemesterOptions(c *gin.Context) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		response.BadRequest(c, 23000, "无效的年级")
		return
	}
	current, _ := strconv.Atoi(c.DefaultQuery("current", "0"))

	options, semester, reset := schedule.RecomputeSemesterOptions(year, current)
	response.OK(c, dto.SemesterOptionsResponse{
		Options:  options,
		Semester: semester,
		Reset:    reset,
	})
}

// handleEditorError 统一班级编辑模块错误映射
func handleEditorError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrEditorSessionNotFound):
		response.NotFound(c, 23002, err.Error())
	case errors.Is(err, service.ErrCourseNotFound):
		response.NotFound(c, 23003, err.Error())
	case errors.Is(err, schedule.ErrInstructorNotEligible):
		response.Error(c, http.StatusConflict, 23004, err.Error())
	case handleUpstreamError(c, err, 23010):
	default:
		response.InternalError(c)
	}
}
