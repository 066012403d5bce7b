package model

// Weekday 排课使用的星期枚举（周一至周六，与调度后端约定一致）
type Weekday string

const (
	Monday    Weekday = "Monday"
	Tuesday   Weekday = "Tuesday"
	Wednesday Weekday = "Wednesday"
	Thursday  Weekday = "Thursday"
	Friday    Weekday = "Friday"
	Saturday  Weekday = "Saturday"
)

// Weekdays 固定的星期展示顺序
var Weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}

// ClassAssignment 一条已排定的上课记录，对应 view_schedule 返回的单元格条目。
// 由优化器在调度后端生成，客户端只读；同一 天×时间段 允许多条记录并存
// （如拆分的平行班），没有独立主键。
type ClassAssignment struct {
	Day            Weekday `json:"day"`
	TimeSlot       string  `json:"time_slot"` // "HH:MM-HH:MM"
	CourseCode     string  `json:"course_id"`
	CourseName     string  `json:"course"`
	InstructorName string  `json:"instructor"`
	RoomName       string  `json:"room"`
	SectionName    string  `json:"section"`
	CourseCategory string  `json:"course_type"`
}
