package service

import (
	"context"
	"net/http"

	"uni-timetable/backend/internal/model"
	"uni-timetable/backend/internal/upstream"
)

// ── Mock UpstreamAPI ──
//
// 函数字段为 nil 时返回零值成功；测试只需覆写关心的方法。

type mockUpstream struct {
	listInstructorsFn func(ctx context.Context) ([]model.Instructor, error)
	listRoomsFn       func(ctx context.Context) ([]model.Room, error)
	listCoursesFn     func(ctx context.Context) ([]model.Course, error)
	listDepartmentsFn func(ctx context.Context) ([]model.Department, error)
	listSectionsFn    func(ctx context.Context) ([]model.Section, error)
	getSectionFn      func(ctx context.Context, id int64) (*model.Section, error)
	updateSectionFn   func(ctx context.Context, id int64, payload interface{}) error
	createCourseFn    func(ctx context.Context, payload interface{}) (*model.Course, error)
	listTimetablesFn  func(ctx context.Context) ([]model.Timetable, error)
	getTimetableFn    func(ctx context.Context, id int64) (*model.Timetable, error)
	getScheduleFn     func(ctx context.Context, id int64) (*upstream.SchedulePayload, error)
	generateFn        func(ctx context.Context, req *upstream.GenerateRequest) (*upstream.GenerateResult, error)
	activateFn        func(ctx context.Context, id int64) error
	deleteTimetableFn func(ctx context.Context, id int64) error
	exportPDFFn       func(ctx context.Context, id int64) ([]byte, error)
	exportExcelFn     func(ctx context.Context, id int64) ([]byte, error)
}

func (m *mockUpstream) ListInstructors(ctx context.Context) ([]model.Instructor, error) {
	if m.listInstructorsFn != nil {
		return m.listInstructorsFn(ctx)
	}
	return []model.Instructor{}, nil
}

func (m *mockUpstream) ListRooms(ctx context.Context) ([]model.Room, error) {
	if m.listRoomsFn != nil {
		return m.listRoomsFn(ctx)
	}
	return []model.Room{}, nil
}

func (m *mockUpstream) ListCourses(ctx context.Context) ([]model.Course, error) {
	if m.listCoursesFn != nil {
		return m.listCoursesFn(ctx)
	}
	return []model.Course{}, nil
}

func (m *mockUpstream) ListDepartments(ctx context.Context) ([]model.Department, error) {
	if m.listDepartmentsFn != nil {
		return m.listDepartmentsFn(ctx)
	}
	return []model.Department{}, nil
}

func (m *mockUpstream) ListSections(ctx context.Context) ([]model.Section, error) {
	if m.listSectionsFn != nil {
		return m.listSectionsFn(ctx)
	}
	return []model.Section{}, nil
}

func (m *mockUpstream) GetSection(ctx context.Context, id int64) (*model.Section, error) {
	if m.getSectionFn != nil {
		return m.getSectionFn(ctx, id)
	}
	return nil, &upstream.APIError{StatusCode: http.StatusNotFound, Message: "not found"}
}

func (m *mockUpstream) UpdateSection(ctx context.Context, id int64, payload interface{}) error {
	if m.updateSectionFn != nil {
		return m.updateSectionFn(ctx, id, payload)
	}
	return nil
}

func (m *mockUpstream) CreateCourse(ctx context.Context, payload interface{}) (*model.Course, error) {
	if m.createCourseFn != nil {
		return m.createCourseFn(ctx, payload)
	}
	return &model.Course{}, nil
}

func (m *mockUpstream) ListTimetables(ctx context.Context) ([]model.Timetable, error) {
	if m.listTimetablesFn != nil {
		return m.listTimetablesFn(ctx)
	}
	return []model.Timetable{}, nil
}

func (m *mockUpstream) GetTimetable(ctx context.Context, id int64) (*model.Timetable, error) {
	if m.getTimetableFn != nil {
		return m.getTimetableFn(ctx, id)
	}
	return nil, &upstream.APIError{StatusCode: http.StatusNotFound, Message: "not found"}
}

func (m *mockUpstream) GetSchedule(ctx context.Context, id int64) (*upstream.SchedulePayload, error) {
	if m.getScheduleFn != nil {
		return m.getScheduleFn(ctx, id)
	}
	return &upstream.SchedulePayload{}, nil
}

func (m *mockUpstream) Generate(ctx context.Context, req *upstream.GenerateRequest) (*upstream.GenerateResult, error) {
	if m.generateFn != nil {
		return m.generateFn(ctx, req)
	}
	return &upstream.GenerateResult{}, nil
}

func (m *mockUpstream) Activate(ctx context.Context, id int64) error {
	if m.activateFn != nil {
		return m.activateFn(ctx, id)
	}
	return nil
}

func (m *mockUpstream) DeleteTimetable(ctx context.Context, id int64) error {
	if m.deleteTimetableFn != nil {
		return m.deleteTimetableFn(ctx, id)
	}
	return nil
}

func (m *mockUpstream) ExportPDF(ctx context.Context, id int64) ([]byte, error) {
	if m.exportPDFFn != nil {
		return m.exportPDFFn(ctx, id)
	}
	return []byte{}, nil
}

func (m *mockUpstream) ExportExcel(ctx context.Context, id int64) ([]byte, error) {
	if m.exportExcelFn != nil {
		return m.exportExcelFn(ctx, id)
	}
	return []byte{}, nil
}

var _ UpstreamAPI = (*mockUpstream)(nil)
