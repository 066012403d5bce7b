package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"uni-timetable/backend/internal/dto"
	"uni-timetable/backend/internal/model"
	"uni-timetable/backend/pkg/redis"
)

// ── ReferenceService 接口 ────────────────────────────────
//
// 设计说明：
//   - 五路基础数据（教师/教室/课程/院系/班级）并行独立拉取，
//     互相之间无顺序依赖；任一路失败只降级该路为空列表并记日志，
//     绝不拖垮或取消其余各路（隔离失败扇出，非全有全无）。
//   - Redis 作为读穿缓存挡在每一路前面，短 TTL；缓存本身出错
//     同样非致命。
// ─────────────────────────────────────────────────────────────

// ReferenceService 基础数据业务接口
type ReferenceService interface {
	// FetchAll 并行拉取全部下拉框基础数据（失败路降级为空列表）
	FetchAll(ctx context.Context) *dto.ReferenceData
}

type referenceService struct {
	api    UpstreamAPI
	cache  *redis.Client // 可为 nil
	ttl    time.Duration
	logger *zap.Logger
}

// NewReferenceService 创建 ReferenceService 实例
func NewReferenceService(api UpstreamAPI, cache *redis.Client, ttl time.Duration, logger *zap.Logger) ReferenceService {
	return &referenceService{api: api, cache: cache, ttl: ttl, logger: logger}
}

// FetchAll 并行拉取基础数据
func (s *referenceService) FetchAll(ctx context.Context) *dto.ReferenceData {
	data := &dto.ReferenceData{}

	var wg sync.WaitGroup
	wg.Add(5)
	go func() { defer wg.Done(); data.Instructors = s.instructors(ctx) }()
	go func() { defer wg.Done(); data.Rooms = s.rooms(ctx) }()
	go func() { defer wg.Done(); data.Courses = s.courses(ctx) }()
	go func() { defer wg.Done(); data.Departments = s.departments(ctx) }()
	go func() { defer wg.Done(); data.Sections = s.sections(ctx) }()
	wg.Wait()

	return data
}

// ── 单路拉取（缓存 → 上游 → 降级空列表） ──

func (s *referenceService) instructors(ctx context.Context) []model.Instructor {
	const key = "ref:instructors"
	var cached []model.Instructor
	if s.cacheGet(ctx, key, &cached) {
		return cached
	}
	list, err := s.api.ListInstructors(ctx)
	if err != nil {
		s.logger.Warn("拉取教师列表失败，降级为空列表", zap.Error(err))
		return []model.Instructor{}
	}
	if list == nil {
		list = []model.Instructor{}
	}
	s.cacheSet(ctx, key, list)
	return list
}

func (s *referenceService) rooms(ctx context.Context) []model.Room {
	const key = "ref:rooms"
	var cached []model.Room
	if s.cacheGet(ctx, key, &cached) {
		return cached
	}
	list, err := s.api.ListRooms(ctx)
	if err != nil {
		s.logger.Warn("拉取教室列表失败，降级为空列表", zap.Error(err))
		return []model.Room{}
	}
	if list == nil {
		list = []model.Room{}
	}
	s.cacheSet(ctx, key, list)
	return list
}

func (s *referenceService) courses(ctx context.Context) []model.Course {
	const key = "ref:courses"
	var cached []model.Course
	if s.cacheGet(ctx, key, &cached) {
		return cached
	}
	list, err := s.api.ListCourses(ctx)
	if err != nil {
		s.logger.Warn("拉取课程列表失败，降级为空列表", zap.Error(err))
		return []model.Course{}
	}
	if list == nil {
		list = []model.Course{}
	}
	s.cacheSet(ctx, key, list)
	return list
}

func (s *referenceService) departments(ctx context.Context) []model.Department {
	const key = "ref:departments"
	var cached []model.Department
	if s.cacheGet(ctx, key, &cached) {
		return cached
	}
	list, err := s.api.ListDepartments(ctx)
	if err != nil {
		s.logger.Warn("拉取院系列表失败，降级为空列表", zap.Error(err))
		return []model.Department{}
	}
	if list == nil {
		list = []model.Department{}
	}
	s.cacheSet(ctx, key, list)
	return list
}

func (s *referenceService) sections(ctx context.Context) []model.Section {
	const key = "ref:sections"
	var cached []model.Section
	if s.cacheGet(ctx, key, &cached) {
		return cached
	}
	list, err := s.api.ListSections(ctx)
	if err != nil {
		s.logger.Warn("拉取班级列表失败，降级为空列表", zap.Error(err))
		return []model.Section{}
	}
	if list == nil {
		list = []model.Section{}
	}
	s.cacheSet(ctx, key, list)
	return list
}

// ── 缓存辅助（出错一律非致命） ──

func (s *referenceService) cacheGet(ctx context.Context, key string, out interface{}) bool {
	if s.cache == nil {
		return false
	}
	err := s.cache.GetJSON(ctx, key, out)
	if err != nil {
		if !errors.Is(err, redis.ErrCacheMiss) {
			s.logger.Warn("读取基础数据缓存失败", zap.String("key", key), zap.Error(err))
		}
		return false
	}
	return true
}

func (s *referenceService) cacheSet(ctx context.Context, key string, val interface{}) {
	if s.cache == nil {
		return
	}
	if err := s.cache.SetJSON(ctx, key, val, s.ttl); err != nil {
		s.logger.Warn("写入基础数据缓存失败", zap.String("key", key), zap.Error(err))
	}
}
