package schedule

import (
	"errors"

	"uni-timetable/backend/internal/model"
)

// ErrInstructorNotEligible 教师不在课程的可选教师集合内
var ErrInstructorNotEligible = errors.New("该教师不在此课程的可选教师集合内")

// ── 课程-教师指派编辑器 ──────────────────────────────────
//
// 设计说明：
//   - 一次班级编辑会话持有一张显式的 课程ID → 教师ID 映射，
//     Seed / SetCourseSelection / Assign 是仅有的三个写入口。
//   - 持久化模型允许一门课挂多名教师，编辑器只保留列表首位
//     （一对多投影为一对一，规则固定为"取第一个"），其余教师
//     在会话内不可见——这是已知的有损投影，按原约定保留。
//   - 提交载荷不校验"每门选中课程都已指派教师"；该缺口为当前
//     行为，留待产品决策，不在此悄悄收紧。
// ─────────────────────────────────────────────────────────────

// AssignmentEditor 单次班级编辑会话内的指派状态
type AssignmentEditor struct {
	order       []int64 // 当前选中课程，保持选择顺序
	selected    map[int64]bool
	eligible    map[int64][]int64
	assignments map[int64]int64
}

// NewAssignmentEditor 创建空编辑器
func NewAssignmentEditor() *AssignmentEditor {
	return &AssignmentEditor{
		selected:    make(map[int64]bool),
		eligible:    make(map[int64][]int64),
		assignments: make(map[int64]int64),
	}
}

// Seed 以班级持久化明细初始化编辑器：选中集合为班级当前的课程，
// 已挂教师的课程取其教师列表首位作为初始指派。
func (e *AssignmentEditor) Seed(courses []model.Course) {
	e.order = e.order[:0]
	e.selected = make(map[int64]bool, len(courses))
	e.eligible = make(map[int64][]int64, len(courses))
	e.assignments = make(map[int64]int64)

	for _, c := range courses {
		e.order = append(e.order, c.ID)
		e.selected[c.ID] = true
		e.eligible[c.ID] = append([]int64(nil), c.Instructors...)
		if len(c.Instructors) > 0 {
			e.assignments[c.ID] = c.Instructors[0]
		}
	}
}

// SetCourseSelection 将选中课程集合替换为恰好给定的课程。
// 被移出的课程连同其指派一并删除；新加入的课程在显式指派前无条目。
func (e *AssignmentEditor) SetCourseSelection(courses []model.Course) {
	e.order = e.order[:0]
	e.selected = make(map[int64]bool, len(courses))
	e.eligible = make(map[int64][]int64, len(courses))

	for _, c := range courses {
		e.order = append(e.order, c.ID)
		e.selected[c.ID] = true
		e.eligible[c.ID] = append([]int64(nil), c.Instructors...)
	}

	for id := range e.assignments {
		if !e.selected[id] {
			delete(e.assignments, id)
		}
	}
}

// Assign 为选中课程指派一名可选教师。
// 课程不在选中集合内时为数据层面的空操作（界面不应暴露该路径，
// 由 SetCourseSelection 负责把关，此处不报错）。
func (e *AssignmentEditor) Assign(courseID, instructorID int64) error {
	if !e.selected[courseID] {
		return nil
	}
	for _, id := range e.eligible[courseID] {
		if id == instructorID {
			e.assignments[courseID] = instructorID
			return nil
		}
	}
	return ErrInstructorNotEligible
}

// SelectedCourseIDs 当前选中课程 ID（保持选择顺序）
func (e *AssignmentEditor) SelectedCourseIDs() []int64 {
	return append([]int64(nil), e.order...)
}

// Assignment 查询某课程的当前指派
func (e *AssignmentEditor) Assignment(courseID int64) (int64, bool) {
	id, ok := e.assignments[courseID]
	return id, ok
}

// Assignments 当前指派映射的副本，提交时并入班级表单载荷。
// 不做完整性校验：选中但未指派的课程不会出现在映射中。
func (e *AssignmentEditor) Assignments() map[int64]int64 {
	out := make(map[int64]int64, len(e.assignments))
	for k, v := range e.assignments {
		out[k] = v
	}
	return out
}
