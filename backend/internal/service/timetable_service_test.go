package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"uni-timetable/backend/internal/dto"
	"uni-timetable/backend/internal/model"
	"uni-timetable/backend/internal/schedule"
	"uni-timetable/backend/internal/upstream"
)

func TestTimetableList_AttachesSummary(t *testing.T) {
	api := &mockUpstream{
		listTimetablesFn: func(ctx context.Context) ([]model.Timetable, error) {
			return []model.Timetable{
				{ID: 1, Name: "TT-1", Fitness: 91.0, IsActive: true},
				{ID: 2, Name: "TT-2", Fitness: 72.5},
			}, nil
		},
	}

	svc := NewTimetableService(api, zap.NewNop())
	list, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List 失败: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("期望 2 条, 实际 %d", len(list))
	}
	if list[0].Summary.Band != "Excellent" || list[0].Summary.Color != schedule.BandGreen {
		t.Fatalf("高分摘要不符: %+v", list[0].Summary)
	}
	if list[1].Summary.Band != "Needs Improvement" || list[1].Summary.Color != schedule.BandYellow {
		t.Fatalf("中分摘要不符: %+v", list[1].Summary)
	}
}

func TestTimetableGenerate_AppliesDefaults(t *testing.T) {
	var captured *upstream.GenerateRequest
	api := &mockUpstream{
		generateFn: func(ctx context.Context, req *upstream.GenerateRequest) (*upstream.GenerateResult, error) {
			captured = req
			return &upstream.GenerateResult{
				GeneratedTimetables: []model.Timetable{{ID: 1, Fitness: 85}},
				Errors:              []string{"Year 3: no courses found"},
			}, nil
		},
	}

	svc := NewTimetableService(api, zap.NewNop())
	resp, err := svc.Generate(context.Background(), &dto.GenerateTimetableRequest{
		DepartmentIDs: []int64{1},
		Years:         []int{1, 3},
		Semester:      2,
	})
	if err != nil {
		t.Fatalf("Generate 失败: %v", err)
	}

	// 省略的算法参数补默认值
	if captured.PopulationSize != 50 || captured.MutationRate != 0.1 ||
		captured.EliteRate != 0.1 || captured.Generations != 500 {
		t.Fatalf("默认参数不符: %+v", captured)
	}

	// 成功与失败同时上报
	if resp.SuccessCount != 1 || resp.ErrorCount != 1 {
		t.Fatalf("计数不符: success=%d error=%d", resp.SuccessCount, resp.ErrorCount)
	}
	if resp.Generated[0].Summary.Band != "Excellent" {
		t.Fatalf("生成结果摘要不符: %+v", resp.Generated[0].Summary)
	}
}

func TestTimetableGenerate_ExplicitParamsKept(t *testing.T) {
	var captured *upstream.GenerateRequest
	api := &mockUpstream{
		generateFn: func(ctx context.Context, req *upstream.GenerateRequest) (*upstream.GenerateResult, error) {
			captured = req
			return &upstream.GenerateResult{}, nil
		},
	}

	svc := NewTimetableService(api, zap.NewNop())
	_, err := svc.Generate(context.Background(), &dto.GenerateTimetableRequest{
		DepartmentIDs:  []int64{1},
		Years:          []int{1},
		Semester:       1,
		PopulationSize: 120,
		MutationRate:   0.25,
		EliteRate:      0.05,
		Generations:    800,
	})
	if err != nil {
		t.Fatalf("Generate 失败: %v", err)
	}
	if captured.PopulationSize != 120 || captured.MutationRate != 0.25 ||
		captured.EliteRate != 0.05 || captured.Generations != 800 {
		t.Fatalf("显式参数被默认值覆盖: %+v", captured)
	}
}

func TestTimetableGrid_Assembly(t *testing.T) {
	api := &mockUpstream{
		getScheduleFn: func(ctx context.Context, id int64) (*upstream.SchedulePayload, error) {
			return &upstream.SchedulePayload{
				TimetableName: "2026 春季",
				Fitness:       86.5,
				Schedule: map[model.Weekday]map[string][]model.ClassAssignment{
					model.Monday: {
						"14:00-15:00": {{CourseName: "高等数学", CourseCategory: "Theory"}},
						"09:00-10:00": {{CourseName: "物理实验", CourseCategory: "Lab"}},
					},
					model.Tuesday: {
						"09:00-10:00": {{CourseName: "研讨课", CourseCategory: "Seminar"}},
					},
				},
			}, nil
		},
	}

	svc := NewTimetableService(api, zap.NewNop())
	resp, err := svc.Grid(context.Background(), 7)
	if err != nil {
		t.Fatalf("Grid 失败: %v", err)
	}

	if resp.TimetableName != "2026 春季" || resp.Summary.Band != "Excellent" {
		t.Fatalf("网格元信息不符: %+v", resp)
	}
	if len(resp.Days) != 6 {
		t.Fatalf("期望 6 个标准星期, 实际 %d", len(resp.Days))
	}
	if len(resp.TimeSlots) != 2 || resp.TimeSlots[0] != "09:00-10:00" {
		t.Fatalf("时间段列不符: %v", resp.TimeSlots)
	}

	// 行按时间段排列，行内单元格按星期排列
	monday := resp.Rows[0].Cells[0]
	if len(monday) != 1 || monday[0].CourseName != "物理实验" || monday[0].Band != schedule.BandGreen {
		t.Fatalf("周一 09:00 单元格不符: %+v", monday)
	}
	tuesday := resp.Rows[0].Cells[1]
	if len(tuesday) != 1 || tuesday[0].Band != schedule.BandGray {
		t.Fatalf("未识别类别应归入灰色: %+v", tuesday)
	}
	// 周三 09:00 无排课，但单元格存在且为空
	wednesday := resp.Rows[0].Cells[2]
	if wednesday == nil || len(wednesday) != 0 {
		t.Fatalf("空单元格应为非 nil 空列表: %v", wednesday)
	}
}

func TestTimetableExport(t *testing.T) {
	api := &mockUpstream{
		getTimetableFn: func(ctx context.Context, id int64) (*model.Timetable, error) {
			return &model.Timetable{ID: id, Name: "Spring 2026"}, nil
		},
		exportPDFFn: func(ctx context.Context, id int64) ([]byte, error) {
			return []byte("%PDF"), nil
		},
		exportExcelFn: func(ctx context.Context, id int64) ([]byte, error) {
			return []byte("PK"), nil
		},
	}

	svc := NewTimetableService(api, zap.NewNop())

	data, filename, contentType, err := svc.Export(context.Background(), 5, "pdf")
	if err != nil {
		t.Fatalf("PDF 导出失败: %v", err)
	}
	if filename != "Spring 2026.pdf" || contentType != "application/pdf" || string(data) != "%PDF" {
		t.Fatalf("PDF 导出结果不符: %s %s", filename, contentType)
	}

	_, filename, contentType, err = svc.Export(context.Background(), 5, "excel")
	if err != nil {
		t.Fatalf("Excel 导出失败: %v", err)
	}
	if filename != "Spring 2026.xlsx" ||
		contentType != "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet" {
		t.Fatalf("Excel 导出结果不符: %s %s", filename, contentType)
	}

	_, _, _, err = svc.Export(context.Background(), 5, "csv")
	if !errors.Is(err, ErrExportFormatInvalid) {
		t.Fatalf("未知格式期望 ErrExportFormatInvalid, 实际 %v", err)
	}
}

func TestTimetableDelete_PropagatesUpstreamError(t *testing.T) {
	api := &mockUpstream{
		deleteTimetableFn: func(ctx context.Context, id int64) error {
			return &upstream.APIError{StatusCode: 404, Message: "Timetable not found"}
		},
	}

	svc := NewTimetableService(api, zap.NewNop())
	err := svc.Delete(context.Background(), 99)
	var apiErr *upstream.APIError
	if !errors.As(err, &apiErr) || apiErr.StatusCode != 404 {
		t.Fatalf("期望透传 APIError, 实际 %v", err)
	}
}
