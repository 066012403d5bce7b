package service

import (
	"context"

	"go.uber.org/zap"

	"uni-timetable/backend/internal/dto"
	"uni-timetable/backend/internal/model"
)

// CourseService 课程模块业务接口
type CourseService interface {
	// Create 创建课程（时长省略时按课程类别补默认值）
	Create(ctx context.Context, req *dto.CreateCourseRequest) (*model.Course, error)
}

type courseService struct {
	api    UpstreamAPI
	logger *zap.Logger
}

// NewCourseService 创建 CourseService 实例
func NewCourseService(api UpstreamAPI, logger *zap.Logger) CourseService {
	return &courseService{api: api, logger: logger}
}

// Create 创建课程
func (s *courseService) Create(ctx context.Context, req *dto.CreateCourseRequest) (*model.Course, error) {
	if req.DurationHours == 0 {
		req.DurationHours = model.DefaultDurationHours(req.Category)
	}

	course, err := s.api.CreateCourse(ctx, req)
	if err != nil {
		s.logger.Error("创建课程失败", zap.String("code", req.Code), zap.Error(err))
		return nil, err
	}

	s.logger.Info("课程创建成功",
		zap.Int64("id", course.ID),
		zap.String("code", course.Code),
	)
	return course, nil
}
