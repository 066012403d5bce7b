package dto

import "uni-timetable/backend/internal/schedule"

// ── 班级编辑会话 ──

// SectionForm 班级表单字段（与指派映射一起构成提交载荷）
type SectionForm struct {
	Code         string `json:"section_id"`
	DepartmentID int64  `json:"department"`
	Year         int    `json:"year"`
	Semester     int    `json:"semester"`
	NumStudents  int    `json:"num_students"`
}

// EditorSessionResponse 编辑会话状态
type EditorSessionResponse struct {
	SessionID         string                    `json:"session_id"`
	SectionID         int64                     `json:"section_id"`
	Form              SectionForm               `json:"form"`
	SelectedCourseIDs []int64                   `json:"selected_course_ids"`
	Assignments       map[int64]int64           `json:"assignments"`
	SemesterOptions   []schedule.SemesterOption `json:"semester_options"`
}

// UpdateSelectionRequest 变更选中课程集合
type UpdateSelectionRequest struct {
	CourseIDs []int64 `json:"course_ids" binding:"required"`
}

// AssignInstructorRequest 为课程指派教师
type AssignInstructorRequest struct {
	CourseID     int64 `json:"course_id" binding:"required"`
	InstructorID int64 `json:"instructor_id" binding:"required"`
}

// ChangeYearRequest 变更年级（触发学期选项重算）
type ChangeYearRequest struct {
	Year int `json:"year" binding:"required"`
}

// SemesterOptionsResponse 学期选项重算结果
type SemesterOptionsResponse struct {
	Options  []schedule.SemesterOption `json:"options"`
	Semester int                       `json:"semester"`
	Reset    bool                      `json:"reset"` // 原学期不合法而被复位时为 true
}

// SectionUpdatePayload 提交给调度后端的班级整体载荷
type SectionUpdatePayload struct {
	Code         string          `json:"section_id"`
	DepartmentID int64           `json:"department"`
	Year         int             `json:"year"`
	Semester     int             `json:"semester"`
	NumStudents  int             `json:"num_students"`
	Courses      []int64         `json:"courses"`
	Assignments  map[int64]int64 `json:"course_instructor_assignments"`
}
