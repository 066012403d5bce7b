package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"uni-timetable/backend/internal/dto"
	"uni-timetable/backend/internal/schedule"
	"uni-timetable/backend/internal/upstream"
)

// ── 时间表模块业务错误 ──

var (
	ErrExportFormatInvalid = errors.New("不支持的导出格式")
)

// 远端遗传算法参数默认值（与调度后端约定一致）
const (
	defaultPopulationSize = 50
	defaultMutationRate   = 0.1
	defaultEliteRate      = 0.1
	defaultGenerations    = 500
)

// 导出内容类型
const (
	contentTypePDF   = "application/pdf"
	contentTypeExcel = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// TimetableService 时间表模块业务接口
//
// 设计说明：
//   - 时间表是远端优化器的只读产物：本层只做 列表/生成/激活/删除/
//     导出中转/网格装配，从不修改单条上课记录。
//   - 网格装配 = 展平 view_schedule 载荷 → 确定性网格索引 →
//     按课程类别着色，全部为同步纯计算。
type TimetableService interface {
	// List 时间表列表（附定性摘要）
	List(ctx context.Context) ([]dto.TimetableResponse, error)
	// Generate 触发远端生成并汇总成功/失败
	Generate(ctx context.Context, req *dto.GenerateTimetableRequest) (*dto.GenerateTimetableResponse, error)
	// Activate 激活时间表
	Activate(ctx context.Context, id int64) error
	// Delete 删除时间表
	Delete(ctx context.Context, id int64) error
	// Grid 课表网格视图
	Grid(ctx context.Context, id int64) (*dto.GridResponse, error)
	// Export 中转导出文件，format ∈ {pdf, excel}
	Export(ctx context.Context, id int64, format string) (data []byte, filename, contentType string, err error)
}

type timetableService struct {
	api    UpstreamAPI
	logger *zap.Logger
}

// NewTimetableService 创建 TimetableService 实例
func NewTimetableService(api UpstreamAPI, logger *zap.Logger) TimetableService {
	return &timetableService{api: api, logger: logger}
}

// ═══════════════════════════════════════════════════════════
// List — 时间表列表
// ═══════════════════════════════════════════════════════════

func (s *timetableService) List(ctx context.Context) ([]dto.TimetableResponse, error) {
	timetables, err := s.api.ListTimetables(ctx)
	if err != nil {
		s.logger.Error("拉取时间表列表失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.TimetableResponse, 0, len(timetables))
	for _, tt := range timetables {
		result = append(result, dto.TimetableResponse{
			ID:       tt.ID,
			Name:     tt.Name,
			Year:     tt.Year,
			Semester: tt.Semester,
			Fitness:  tt.Fitness,
			IsActive: tt.IsActive,
			Summary:  schedule.Summarize(tt.Fitness),
		})
	}
	return result, nil
}

// ═══════════════════════════════════════════════════════════
// Generate — 触发远端遗传算法
// ═══════════════════════════════════════════════════════════
//
// 省略的算法参数补默认值后透传；响应中成功与失败同时上报，
// 两者非零时界面需同时展示两条提示。

func (s *timetableService) Generate(ctx context.Context, req *dto.GenerateTimetableRequest) (*dto.GenerateTimetableResponse, error) {
	upReq := &upstream.GenerateRequest{
		DepartmentIDs:  req.DepartmentIDs,
		Years:          req.Years,
		Semester:       req.Semester,
		PopulationSize: req.PopulationSize,
		MutationRate:   req.MutationRate,
		EliteRate:      req.EliteRate,
		Generations:    req.Generations,
	}
	if upReq.PopulationSize == 0 {
		upReq.PopulationSize = defaultPopulationSize
	}
	if upReq.MutationRate == 0 {
		upReq.MutationRate = defaultMutationRate
	}
	if upReq.EliteRate == 0 {
		upReq.EliteRate = defaultEliteRate
	}
	if upReq.Generations == 0 {
		upReq.Generations = defaultGenerations
	}

	result, err := s.api.Generate(ctx, upReq)
	if err != nil {
		s.logger.Error("时间表生成请求失败", zap.Error(err))
		return nil, err
	}

	generated := make([]dto.TimetableResponse, 0, len(result.GeneratedTimetables))
	for _, tt := range result.GeneratedTimetables {
		generated = append(generated, dto.TimetableResponse{
			ID:       tt.ID,
			Name:     tt.Name,
			Year:     tt.Year,
			Semester: tt.Semester,
			Fitness:  tt.Fitness,
			IsActive: tt.IsActive,
			Summary:  schedule.Summarize(tt.Fitness),
		})
	}
	errorMessages := result.Errors
	if errorMessages == nil {
		errorMessages = []string{}
	}

	s.logger.Info("时间表生成完成",
		zap.Int("success", len(generated)),
		zap.Int("errors", len(errorMessages)),
	)

	return &dto.GenerateTimetableResponse{
		Generated:    generated,
		Errors:       errorMessages,
		SuccessCount: len(generated),
		ErrorCount:   len(errorMessages),
	}, nil
}

// ═══════════════════════════════════════════════════════════
// Activate / Delete — 整体操作，不消费响应体
// ═══════════════════════════════════════════════════════════

func (s *timetableService) Activate(ctx context.Context, id int64) error {
	if err := s.api.Activate(ctx, id); err != nil {
		s.logger.Error("激活时间表失败", zap.Int64("id", id), zap.Error(err))
		return err
	}
	return nil
}

func (s *timetableService) Delete(ctx context.Context, id int64) error {
	if err := s.api.DeleteTimetable(ctx, id); err != nil {
		s.logger.Error("删除时间表失败", zap.Int64("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ═══════════════════════════════════════════════════════════
// Grid — 课表网格装配
// ═══════════════════════════════════════════════════════════

func (s *timetableService) Grid(ctx context.Context, id int64) (*dto.GridResponse, error) {
	payload, err := s.api.GetSchedule(ctx, id)
	if err != nil {
		s.logger.Error("拉取课表载荷失败", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	grid := schedule.BuildGrid(schedule.Flatten(payload.Schedule))

	days := grid.Days()
	rows := make([]dto.GridRow, 0, len(grid.TimeSlots()))
	for _, slot := range grid.TimeSlots() {
		row := dto.GridRow{TimeSlot: slot, Cells: make([][]dto.GridEntry, 0, len(days))}
		for _, day := range days {
			cell := grid.Cell(day, slot)
			entries := make([]dto.GridEntry, 0, len(cell))
			for _, e := range cell {
				entries = append(entries, dto.GridEntry{
					CourseCode:     e.CourseCode,
					CourseName:     e.CourseName,
					InstructorName: e.InstructorName,
					RoomName:       e.RoomName,
					SectionName:    e.SectionName,
					Category:       e.CourseCategory,
					Band:           schedule.CategoryBand(e.CourseCategory),
				})
			}
			row.Cells = append(row.Cells, entries)
		}
		rows = append(rows, row)
	}

	return &dto.GridResponse{
		TimetableName: payload.TimetableName,
		Fitness:       payload.Fitness,
		Summary:       schedule.Summarize(payload.Fitness),
		Days:          days,
		TimeSlots:     grid.TimeSlots(),
		Rows:          rows,
	}, nil
}

// ═══════════════════════════════════════════════════════════
// Export — 导出文件中转
// ═══════════════════════════════════════════════════════════
//
// 文件在调度后端生成，这里只负责以 <时间表名称>.<扩展名>
// 的形式把字节流交给浏览器下载。

func (s *timetableService) Export(ctx context.Context, id int64, format string) ([]byte, string, string, error) {
	tt, err := s.api.GetTimetable(ctx, id)
	if err != nil {
		s.logger.Error("拉取时间表元信息失败", zap.Int64("id", id), zap.Error(err))
		return nil, "", "", err
	}

	switch format {
	case "pdf":
		data, err := s.api.ExportPDF(ctx, id)
		if err != nil {
			s.logger.Error("PDF 导出中转失败", zap.Int64("id", id), zap.Error(err))
			return nil, "", "", err
		}
		return data, fmt.Sprintf("%s.pdf", tt.Name), contentTypePDF, nil
	case "excel":
		data, err := s.api.ExportExcel(ctx, id)
		if err != nil {
			s.logger.Error("Excel 导出中转失败", zap.Int64("id", id), zap.Error(err))
			return nil, "", "", err
		}
		return data, fmt.Sprintf("%s.xlsx", tt.Name), contentTypeExcel, nil
	default:
		return nil, "", "", ErrExportFormatInvalid
	}
}
