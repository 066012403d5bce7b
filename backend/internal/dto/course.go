package dto

// CreateCourseRequest 创建课程请求。
// duration_hours 省略（为 0）时按课程类别补全默认值：实验课 2 小时，其余 1 小时。
type CreateCourseRequest struct {
	Code           string  `json:"course_id" binding:"required,max=20"`
	Name           string  `json:"course_name" binding:"required,max=100"`
	Category       string  `json:"course_type" binding:"required,oneof=Theory Lab Practical"`
	Credits        int     `json:"credits" binding:"omitempty,min=1,max=10"`
	MaxStudents    int     `json:"max_students" binding:"omitempty,min=1"`
	DurationHours  int     `json:"duration" binding:"omitempty,min=1,max=4"`
	Year           int     `json:"year" binding:"required,min=1,max=4"`
	ClassesPerWeek int     `json:"classes_per_week" binding:"omitempty,min=1,max=10"`
	Instructors    []int64 `json:"instructors"`
	Sections       []int64 `json:"sections"`
}
