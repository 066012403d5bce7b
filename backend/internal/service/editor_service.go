package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"uni-timetable/backend/internal/dto"
	"uni-timetable/backend/internal/model"
	"uni-timetable/backend/internal/schedule"
)

// ── 班级编辑模块业务错误 ──

var (
	ErrEditorSessionNotFound = errors.New("编辑会话不存在或已过期")
	ErrCourseNotFound        = errors.New("课程不存在")
)

// SectionEditorService 班级编辑会话业务接口
//
// 设计说明：
//   - 会话是服务端内存态：打开班级时从调度后端取一次快照，
//     之后的选课/指派/改年级全部作用在会话内，直到提交才整体
//     写回。会话用 go-cache 按 TTL 兜底回收，丢弃即放弃草稿。
//   - 提交载荷不校验每门选中课程都已指派教师，缺口按原约定保留。
type SectionEditorService interface {
	// Open 打开班级编辑会话（从调度后端取快照并播种指派）
	Open(ctx context.Context, sectionID int64) (*dto.EditorSessionResponse, error)
	// Get 查询会话当前状态
	Get(ctx context.Context, sessionID string) (*dto.EditorSessionResponse, error)
	// UpdateSelection 整体替换选中课程集合
	UpdateSelection(ctx context.Context, sessionID string, req *dto.UpdateSelectionRequest) (*dto.EditorSessionResponse, error)
	// Assign 为选中课程指派教师
	Assign(ctx context.Context, sessionID string, req *dto.AssignInstructorRequest) (*dto.EditorSessionResponse, error)
	// ChangeYear 变更年级并重算学期选项
	ChangeYear(ctx context.Context, sessionID string, req *dto.ChangeYearRequest) (*dto.EditorSessionResponse, error)
	// Submit 整体提交并销毁会话，返回实际写回的载荷
	Submit(ctx context.Context, sessionID string) (*dto.SectionUpdatePayload, error)
	// Discard 放弃草稿并销毁会话
	Discard(ctx context.Context, sessionID string) error
}

// editorSession 单个编辑会话的内存态
type editorSession struct {
	mu        sync.Mutex
	id        string
	sectionID int64
	form      dto.SectionForm
	editor    *schedule.AssignmentEditor
}

type sectionEditorService struct {
	api      UpstreamAPI
	sessions *gocache.Cache
	logger   *zap.Logger
}

// NewSectionEditorService 创建 SectionEditorService 实例
func NewSectionEditorService(api UpstreamAPI, sessionTTL time.Duration, logger *zap.Logger) SectionEditorService {
	return &sectionEditorService{
		api:      api,
		sessions: gocache.New(sessionTTL, sessionTTL/2),
		logger:   logger,
	}
}

// ═══════════════════════════════════════════════════════════
// Open — 打开编辑会话
// ═══════════════════════════════════════════════════════════

func (s *sectionEditorService) Open(ctx context.Context, sectionID int64) (*dto.EditorSessionResponse, error) {
	section, err := s.api.GetSection(ctx, sectionID)
	if err != nil {
		s.logger.Error("拉取班级明细失败", zap.Int64("section_id", sectionID), zap.Error(err))
		return nil, err
	}

	courses, err := s.coursesByID(ctx, section.Courses)
	if err != nil {
		return nil, err
	}

	editor := schedule.NewAssignmentEditor()
	editor.Seed(courses)

	sess := &editorSession{
		id:        uuid.New().String(),
		sectionID: section.ID,
		form: dto.SectionForm{
			Code:         section.Code,
			DepartmentID: section.DepartmentID,
			Year:         section.Year,
			Semester:     section.Semester,
			NumStudents:  section.NumStudents,
		},
		editor: editor,
	}
	s.sessions.SetDefault(sess.id, sess)

	s.logger.Info("打开班级编辑会话",
		zap.String("session_id", sess.id),
		zap.Int64("section_id", sectionID),
	)
	return s.snapshot(sess), nil
}

// ═══════════════════════════════════════════════════════════
// Get / UpdateSelection / Assign / ChangeYear — 会话内操作
// ═══════════════════════════════════════════════════════════

func (s *sectionEditorService) Get(ctx context.Context, sessionID string) (*dto.EditorSessionResponse, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return s.snapshot(sess), nil
}

func (s *sectionEditorService) UpdateSelection(ctx context.Context, sessionID string, req *dto.UpdateSelectionRequest) (*dto.EditorSessionResponse, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}

	courses, err := s.coursesByID(ctx, req.CourseIDs)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.editor.SetCourseSelection(courses)
	return s.snapshot(sess), nil
}

func (s *sectionEditorService) Assign(ctx context.Context, sessionID string, req *dto.AssignInstructorRequest) (*dto.EditorSessionResponse, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	if err := sess.editor.Assign(req.CourseID, req.InstructorID); err != nil {
		return nil, err
	}
	return s.snapshot(sess), nil
}

func (s *sectionEditorService) ChangeYear(ctx context.Context, sessionID string, req *dto.ChangeYearRequest) (*dto.EditorSessionResponse, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.form.Year = req.Year
	_, semester, reset := schedule.RecomputeSemesterOptions(req.Year, sess.form.Semester)
	sess.form.Semester = semester
	if reset {
		s.logger.Info("年级变更导致学期复位",
			zap.String("session_id", sessionID),
			zap.Int("year", req.Year),
			zap.Int("semester", semester),
		)
	}
	return s.snapshot(sess), nil
}

// ═══════════════════════════════════════════════════════════
// Submit / Discard — 会话终结
// ═══════════════════════════════════════════════════════════

func (s *sectionEditorService) Submit(ctx context.Context, sessionID string) (*dto.SectionUpdatePayload, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	payload := &dto.SectionUpdatePayload{
		Code:         sess.form.Code,
		DepartmentID: sess.form.DepartmentID,
		Year:         sess.form.Year,
		Semester:     sess.form.Semester,
		NumStudents:  sess.form.NumStudents,
		Courses:      sess.editor.SelectedCourseIDs(),
		Assignments:  sess.editor.Assignments(),
	}
	sectionID := sess.sectionID
	sess.mu.Unlock()

	if err := s.api.UpdateSection(ctx, sectionID, payload); err != nil {
		s.logger.Error("提交班级更新失败",
			zap.String("session_id", sessionID),
			zap.Int64("section_id", sectionID),
			zap.Error(err),
		)
		return nil, err
	}

	s.sessions.Delete(sessionID)
	s.logger.Info("班级更新提交成功",
		zap.String("session_id", sessionID),
		zap.Int64("section_id", sectionID),
		zap.Int("courses", len(payload.Courses)),
		zap.Int("assignments", len(payload.Assignments)),
	)
	return payload, nil
}

func (s *sectionEditorService) Discard(ctx context.Context, sessionID string) error {
	if _, err := s.session(sessionID); err != nil {
		return err
	}
	s.sessions.Delete(sessionID)
	return nil
}

// ── 内部辅助 ──

func (s *sectionEditorService) session(sessionID string) (*editorSession, error) {
	v, ok := s.sessions.Get(sessionID)
	if !ok {
		return nil, ErrEditorSessionNotFound
	}
	return v.(*editorSession), nil
}

// coursesByID 按给定 ID 顺序取课程明细；任一 ID 不存在即整体失败
func (s *sectionEditorService) coursesByID(ctx context.Context, ids []int64) ([]model.Course, error) {
	all, err := s.api.ListCourses(ctx)
	if err != nil {
		s.logger.Error("拉取课程列表失败", zap.Error(err))
		return nil, err
	}

	byID := make(map[int64]model.Course, len(all))
	for _, c := range all {
		byID[c.ID] = c
	}

	courses := make([]model.Course, 0, len(ids))
	for _, id := range ids {
		c, ok := byID[id]
		if !ok {
			s.logger.Warn("课程不存在", zap.Int64("course_id", id))
			return nil, ErrCourseNotFound
		}
		courses = append(courses, c)
	}
	return courses, nil
}

// snapshot 生成会话当前状态（调用方需已持有 sess.mu，Open 时例外）
func (s *sectionEditorService) snapshot(sess *editorSession) *dto.EditorSessionResponse {
	return &dto.EditorSessionResponse{
		SessionID:         sess.id,
		SectionID:         sess.sectionID,
		Form:              sess.form,
		SelectedCourseIDs: sess.editor.SelectedCourseIDs(),
		Assignments:       sess.editor.Assignments(),
		SemesterOptions:   schedule.SemesterOptionsForYear(sess.form.Year),
	}
}
