package service

import (
	"context"

	"go.uber.org/zap"

	"uni-timetable/backend/config"
	"uni-timetable/backend/internal/model"
	"uni-timetable/backend/internal/upstream"
	"uni-timetable/backend/pkg/redis"
)

// UpstreamAPI 调度后端能力的消费侧接口（便于测试替身）
type UpstreamAPI interface {
	ListInstructors(ctx context.Context) ([]model.Instructor, error)
	ListRooms(ctx context.Context) ([]model.Room, error)
	ListCourses(ctx context.Context) ([]model.Course, error)
	ListDepartments(ctx context.Context) ([]model.Department, error)
	ListSections(ctx context.Context) ([]model.Section, error)
	GetSection(ctx context.Context, id int64) (*model.Section, error)
	UpdateSection(ctx context.Context, id int64, payload interface{}) error
	CreateCourse(ctx context.Context, payload interface{}) (*model.Course, error)
	ListTimetables(ctx context.Context) ([]model.Timetable, error)
	GetTimetable(ctx context.Context, id int64) (*model.Timetable, error)
	GetSchedule(ctx context.Context, id int64) (*upstream.SchedulePayload, error)
	Generate(ctx context.Context, req *upstream.GenerateRequest) (*upstream.GenerateResult, error)
	Activate(ctx context.Context, id int64) error
	DeleteTimetable(ctx context.Context, id int64) error
	ExportPDF(ctx context.Context, id int64) ([]byte, error)
	ExportExcel(ctx context.Context, id int64) ([]byte, error)
}

var _ UpstreamAPI = (*upstream.Client)(nil)

// Service 所有 Service 的聚合入口
type Service struct {
	Reference     ReferenceService
	Timetable     TimetableService
	Course        CourseService
	SectionEditor SectionEditorService
}

// NewService 创建 Service 聚合
// rdb 可为 nil（Redis 不可用时基础数据缓存降级为直连拉取）
func NewService(
	cfg *config.Config,
	api UpstreamAPI,
	rdb *redis.Client,
	logger *zap.Logger,
) *Service {
	return &Service{
		Reference:     NewReferenceService(api, rdb, cfg.Redis.CacheTTL, logger),
		Timetable:     NewTimetableService(api, logger),
		Course:        NewCourseService(api, logger),
		SectionEditor: NewSectionEditorService(api, cfg.Editor.SessionTTL, logger),
	}
}
