package service

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"uni-timetable/backend/internal/dto"
	"uni-timetable/backend/internal/model"
)

func TestCourseCreate_DefaultDuration(t *testing.T) {
	var captured *dto.CreateCourseRequest
	api := &mockUpstream{
		createCourseFn: func(ctx context.Context, payload interface{}) (*model.Course, error) {
			captured = payload.(*dto.CreateCourseRequest)
			return &model.Course{ID: 1, Code: captured.Code}, nil
		},
	}

	svc := NewCourseService(api, zap.NewNop())

	// 实验课省略时长: 补 2 小时
	_, err := svc.Create(context.Background(), &dto.CreateCourseRequest{
		Code: "PH102L", Name: "物理实验", Category: model.CategoryLab, Year: 1,
	})
	if err != nil {
		t.Fatalf("Create 失败: %v", err)
	}
	if captured.DurationHours != 2 {
		t.Fatalf("实验课默认时长期望 2, 实际 %d", captured.DurationHours)
	}

	// 理论课省略时长: 补 1 小时
	_, err = svc.Create(context.Background(), &dto.CreateCourseRequest{
		Code: "MA101", Name: "高等数学", Category: model.CategoryTheory, Year: 1,
	})
	if err != nil {
		t.Fatalf("Create 失败: %v", err)
	}
	if captured.DurationHours != 1 {
		t.Fatalf("理论课默认时长期望 1, 实际 %d", captured.DurationHours)
	}

	// 显式时长不被覆盖
	_, err = svc.Create(context.Background(), &dto.CreateCourseRequest{
		Code: "CS301L", Name: "综合实验", Category: model.CategoryLab, Year: 3, DurationHours: 3,
	})
	if err != nil {
		t.Fatalf("Create 失败: %v", err)
	}
	if captured.DurationHours != 3 {
		t.Fatalf("显式时长被覆盖: %d", captured.DurationHours)
	}
}
