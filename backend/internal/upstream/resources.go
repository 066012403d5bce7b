package upstream

import (
	"context"
	"fmt"
	"net/http"

	"uni-timetable/backend/internal/model"
)

// ── 基础数据列表 ──

// ListInstructors 拉取教师列表
func (c *Client) ListInstructors(ctx context.Context) ([]model.Instructor, error) {
	var list []model.Instructor
	if err := c.getList(ctx, "/api/instructors/", &list); err != nil {
		return nil, err
	}
	return list, nil
}

// ListRooms 拉取教室列表
func (c *Client) ListRooms(ctx context.Context) ([]model.Room, error) {
	var list []model.Room
	if err := c.getList(ctx, "/api/rooms/", &list); err != nil {
		return nil, err
	}
	return list, nil
}

// ListCourses 拉取课程列表
func (c *Client) ListCourses(ctx context.Context) ([]model.Course, error) {
	var list []model.Course
	if err := c.getList(ctx, "/api/courses/", &list); err != nil {
		return nil, err
	}
	return list, nil
}

// ListDepartments 拉取院系列表
func (c *Client) ListDepartments(ctx context.Context) ([]model.Department, error) {
	var list []model.Department
	if err := c.getList(ctx, "/api/departments/", &list); err != nil {
		return nil, err
	}
	return list, nil
}

// ListSections 拉取班级列表
func (c *Client) ListSections(ctx context.Context) ([]model.Section, error) {
	var list []model.Section
	if err := c.getList(ctx, "/api/sections/", &list); err != nil {
		return nil, err
	}
	return list, nil
}

// ── 单实体操作 ──

// GetSection 拉取班级明细
func (c *Client) GetSection(ctx context.Context, id int64) (*model.Section, error) {
	var section model.Section
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/api/sections/%d/", id), nil, &section); err != nil {
		return nil, err
	}
	return &section, nil
}

// UpdateSection 整体提交班级表单（含课程-教师指派映射）
func (c *Client) UpdateSection(ctx context.Context, id int64, payload interface{}) error {
	return c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/api/sections/%d/", id), payload, nil)
}

// CreateCourse 创建课程
func (c *Client) CreateCourse(ctx context.Context, payload interface{}) (*model.Course, error) {
	var course model.Course
	if err := c.doJSON(ctx, http.MethodPost, "/api/courses/", payload, &course); err != nil {
		return nil, err
	}
	return &course, nil
}

// ── 时间表 ──

// SchedulePayload view_schedule 接口的响应结构
type SchedulePayload struct {
	TimetableName string                                               `json:"timetable_name"`
	Fitness       float64                                              `json:"fitness"`
	Schedule      map[model.Weekday]map[string][]model.ClassAssignment `json:"schedule"`
}

// GenerateRequest 生成时间表请求（参数透传给远端遗传算法）
type GenerateRequest struct {
	DepartmentIDs  []int64 `json:"department_ids"`
	Years          []int   `json:"years"`
	Semester       int     `json:"semester"`
	PopulationSize int     `json:"population_size"`
	MutationRate   float64 `json:"mutation_rate"`
	EliteRate      float64 `json:"elite_rate"`
	Generations    int     `json:"generations"`
}

// GenerateResult 生成时间表响应：成功与失败同时上报
type GenerateResult struct {
	GeneratedTimetables []model.Timetable `json:"generated_timetables"`
	Errors              []string          `json:"errors"`
}

// ListTimetables 拉取时间表列表
func (c *Client) ListTimetables(ctx context.Context) ([]model.Timetable, error) {
	var list []model.Timetable
	if err := c.getList(ctx, "/api/timetables/", &list); err != nil {
		return nil, err
	}
	return list, nil
}

// GetTimetable 拉取时间表元信息
func (c *Client) GetTimetable(ctx context.Context, id int64) (*model.Timetable, error) {
	var tt model.Timetable
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/api/timetables/%d/", id), nil, &tt); err != nil {
		return nil, err
	}
	return &tt, nil
}

// GetSchedule 拉取时间表的课表载荷
func (c *Client) GetSchedule(ctx context.Context, id int64) (*SchedulePayload, error) {
	var payload SchedulePayload
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/api/timetables/%d/view_schedule/", id), nil, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// Generate 触发远端遗传算法生成时间表
func (c *Client) Generate(ctx context.Context, req *GenerateRequest) (*GenerateResult, error) {
	var result GenerateResult
	if err := c.doJSON(ctx, http.MethodPost, "/api/timetables/generate/", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Activate 激活时间表（fire-and-refresh，不消费响应体）
func (c *Client) Activate(ctx context.Context, id int64) error {
	return c.doJSON(ctx, http.MethodPost, fmt.Sprintf("/api/timetables/%d/activate/", id), nil, nil)
}

// DeleteTimetable 删除时间表
func (c *Client) DeleteTimetable(ctx context.Context, id int64) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/api/timetables/%d/", id), nil, nil)
}

// ExportPDF 拉取 PDF 导出字节流（文件在后端生成，这里只中转）
func (c *Client) ExportPDF(ctx context.Context, id int64) ([]byte, error) {
	data, _, err := c.doRaw(ctx, http.MethodGet, fmt.Sprintf("/api/timetables/%d/export_pdf/", id), nil)
	return data, err
}

// ExportExcel 拉取 Excel 导出字节流
func (c *Client) ExportExcel(ctx context.Context, id int64) ([]byte, error) {
	data, _, err := c.doRaw(ctx, http.MethodGet, fmt.Sprintf("/api/timetables/%d/export_excel/", id), nil)
	return data, err
}
