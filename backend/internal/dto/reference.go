package dto

import "uni-timetable/backend/internal/model"

// ReferenceData 下拉选择框所需的全部基础数据。
// 任一数据源拉取失败时降级为空列表，不影响其余数据源。
type ReferenceData struct {
	Instructors []model.Instructor `json:"instructors"`
	Rooms       []model.Room       `json:"rooms"`
	Courses     []model.Course     `json:"courses"`
	Departments []model.Department `json:"departments"`
	Sections    []model.Section    `json:"sections"`
}
