package handler

import "uni-timetable/backend/internal/service"

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Reference     *ReferenceHandler
	Timetable     *TimetableHandler
	Course        *CourseHandler
	SectionEditor *SectionEditorHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Reference:     NewReferenceHandler(svc.Reference),
		Timetable:     NewTimetableHandler(svc.Timetable),
		Course:        NewCourseHandler(svc.Course),
		SectionEditor: NewSectionEditorHandler(svc.SectionEditor),
	}
}
