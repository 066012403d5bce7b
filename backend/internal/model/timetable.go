package model

// Timetable 时间表，优化器产出的只读结果，对应 /api/timetables 资源。
// 客户端只整体 激活/删除/导出，不做局部修改。
type Timetable struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Year     int     `json:"year"`
	Semester int     `json:"semester"`
	Fitness  float64 `json:"fitness"` // 0-100
	IsActive bool    `json:"is_active"`
}
