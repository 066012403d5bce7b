package model

// 课程类别（调度后端 COURSE_TYPES 约定值）
const (
	CategoryTheory    = "Theory"
	CategoryLab       = "Lab"
	CategoryPractical = "Practical"
)

// Course 课程，对应调度后端 /api/courses 资源
type Course struct {
	ID             int64  `json:"id"`
	Code           string `json:"course_id"`
	Name           string `json:"course_name"`
	Category       string `json:"course_type"` // Theory | Lab | Practical
	Credits        int    `json:"credits"`
	MaxStudents    int    `json:"max_students"`
	DurationHours  int    `json:"duration"`
	Year           int    `json:"year"`
	ClassesPerWeek int    `json:"classes_per_week"`
	// Instructors 既是课程的可选教师集合，也是当前持久化的任课教师列表
	// （后端用同一个多对多字段承载两种含义）
	Instructors []int64 `json:"instructors"`
	Sections    []int64 `json:"sections"`
}

// DefaultDurationHours 新建课程的课时默认值：实验课 2 小时，其余 1 小时。
// 仅用于创建时补全，已有记录的课时保持独立可编辑。
func DefaultDurationHours(category string) int {
	if category == CategoryLab {
		return 2
	}
	return 1
}
