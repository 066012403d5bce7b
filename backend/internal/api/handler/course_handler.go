package handler

import (
	"github.com/gin-gonic/gin"

	"uni-timetable/backend/internal/dto"
	"uni-timetable/backend/internal/service"
	"uni-timetable/backend/pkg/response"
)

// CourseHandler 课程模块 Handler
type CourseHandler struct {
	svc service.CourseService
}

// NewCourseHandler 创建 CourseHandler 实例
func NewCourseHandler(svc service.CourseService) *CourseHandler {
	return &CourseHandler{svc: svc}
}

// Create 创建课程
// POST /api/v1/courses
func (h *CourseHandler) Create(c *gin.Context) {
	var req dto.CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 22000, err.Error())
		return
	}

	course, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		handleCourseError(c, err)
		return
	}
	response.Created(c, course)
}

// handleCourseError 统一课程模块错误映射
func handleCourseError(c *gin.Context, err error) {
	switch {
	case handleUpstreamError(c, err, 22010):
	default:
		response.InternalError(c)
	}
}
