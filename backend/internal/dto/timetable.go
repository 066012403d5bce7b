package dto

import (
	"uni-timetable/backend/internal/model"
	"uni-timetable/backend/internal/schedule"
)

// ── 时间表列表 ──

// TimetableResponse 时间表条目（附定性摘要）
type TimetableResponse struct {
	ID       int64             `json:"id"`
	Name     string            `json:"name"`
	Year     int               `json:"year"`
	Semester int               `json:"semester"`
	Fitness  float64           `json:"fitness"`
	IsActive bool              `json:"is_active"`
	Summary  schedule.Summary  `json:"summary"`
}

// ── 生成 ──

// GenerateTimetableRequest 生成时间表请求
// 遗传算法参数可省略，省略时沿用调度后端的默认值
type GenerateTimetableRequest struct {
	DepartmentIDs  []int64 `json:"department_ids" binding:"required,min=1"`
	Years          []int   `json:"years" binding:"required,min=1,dive,min=1,max=4"`
	Semester       int     `json:"semester" binding:"required,min=1,max=8"`
	PopulationSize int     `json:"population_size" binding:"omitempty,min=2,max=1000"`
	MutationRate   float64 `json:"mutation_rate" binding:"omitempty,gt=0,lte=1"`
	EliteRate      float64 `json:"elite_rate" binding:"omitempty,gt=0,lte=1"`
	Generations    int     `json:"generations" binding:"omitempty,min=1,max=10000"`
}

// GenerateTimetableResponse 生成结果：成功与失败同时上报，
// 两者非零时界面需同时展示
type GenerateTimetableResponse struct {
	Generated    []TimetableResponse `json:"generated"`
	Errors       []string            `json:"errors"`
	SuccessCount int                 `json:"success_count"`
	ErrorCount   int                 `json:"error_count"`
}

// ── 课表网格 ──

// GridEntry 网格单元格内的一条上课记录（附显示色带）
type GridEntry struct {
	CourseCode     string               `json:"course_id"`
	CourseName     string               `json:"course_name"`
	InstructorName string               `json:"instructor"`
	RoomName       string               `json:"room"`
	SectionName    string               `json:"section"`
	Category       string               `json:"category"`
	Band           schedule.DisplayBand `json:"band"`
}

// GridRow 网格中一个时间段对应的行，单元格按星期顺序排列
type GridRow struct {
	TimeSlot string        `json:"time_slot"`
	Cells    [][]GridEntry `json:"cells"`
}

// GridResponse 课表网格响应
type GridResponse struct {
	TimetableName string           `json:"timetable_name"`
	Fitness       float64          `json:"fitness"`
	Summary       schedule.Summary `json:"summary"`
	Days          []model.Weekday  `json:"days"`
	TimeSlots     []string         `json:"time_slots"`
	Rows          []GridRow        `json:"rows"`
}
