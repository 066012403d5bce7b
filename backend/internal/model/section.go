package model

// Section 班级，对应调度后端 /api/sections 资源。
// 某院系某年级某学期的一批学生，共享同一组课程。
type Section struct {
	ID           int64   `json:"id"`
	Code         string  `json:"section_id"`
	DepartmentID int64   `json:"department"`
	Year         int     `json:"year"` // 1-4
	Semester     int     `json:"semester"`
	NumStudents  int     `json:"num_students"`
	Courses      []int64 `json:"courses"`
	Instructors  []int64 `json:"instructors"`
}
