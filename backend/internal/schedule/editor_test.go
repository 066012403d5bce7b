package schedule

import (
	"errors"
	"reflect"
	"testing"

	"uni-timetable/backend/internal/model"
)

func course(id int64, instructors ...int64) model.Course {
	return model.Course{ID: id, Instructors: instructors}
}

func TestEditorSeed_FirstInstructorWins(t *testing.T) {
	e := NewAssignmentEditor()
	e.Seed([]model.Course{
		course(10, 7, 8), // 两名教师，播种取首位
		course(20),       // 无教师，不产生指派
	})

	if got := e.SelectedCourseIDs(); !reflect.DeepEqual(got, []int64{10, 20}) {
		t.Fatalf("选中课程期望 [10 20], 实际 %v", got)
	}
	if id, ok := e.Assignment(10); !ok || id != 7 {
		t.Fatalf("课程 10 的初始指派期望教师 7, 实际 (%d, %v)", id, ok)
	}
	if _, ok := e.Assignment(20); ok {
		t.Fatal("无教师的课程不应有初始指派")
	}
}

func TestEditorSetCourseSelection_PrunesAssignments(t *testing.T) {
	e := NewAssignmentEditor()
	e.Seed([]model.Course{course(10, 7), course(20, 9)})

	// 把课程 20 移出选中集合，其指派应随之删除
	e.SetCourseSelection([]model.Course{course(10, 7)})

	if got := e.SelectedCourseIDs(); !reflect.DeepEqual(got, []int64{10}) {
		t.Fatalf("选中课程期望 [10], 实际 %v", got)
	}
	if _, ok := e.Assignment(20); ok {
		t.Fatal("移出的课程指派未被删除")
	}
	if id, ok := e.Assignment(10); !ok || id != 7 {
		t.Fatal("留存课程的指派不应受影响")
	}

	// 重新加回课程 20：在显式指派前不应有条目
	e.SetCourseSelection([]model.Course{course(10, 7), course(20, 9)})
	if _, ok := e.Assignment(20); ok {
		t.Fatal("重新加入的课程不应自动恢复指派")
	}
}

func TestEditorAssign_Eligibility(t *testing.T) {
	e := NewAssignmentEditor()
	e.Seed([]model.Course{course(10, 7, 8)})

	if err := e.Assign(10, 8); err != nil {
		t.Fatalf("可选教师指派失败: %v", err)
	}
	if id, _ := e.Assignment(10); id != 8 {
		t.Fatalf("指派应覆盖为教师 8, 实际 %d", id)
	}

	err := e.Assign(10, 99)
	if !errors.Is(err, ErrInstructorNotEligible) {
		t.Fatalf("非可选教师期望 ErrInstructorNotEligible, 实际 %v", err)
	}
	if id, _ := e.Assignment(10); id != 8 {
		t.Fatal("失败的指派不应改变已有映射")
	}
}

func TestEditorAssign_UnselectedCourseNoop(t *testing.T) {
	e := NewAssignmentEditor()
	e.Seed([]model.Course{course(10, 7)})

	// 未选中课程的指派是数据层面的空操作，不报错也不落映射
	if err := e.Assign(99, 7); err != nil {
		t.Fatalf("未选中课程的指派不应报错: %v", err)
	}
	if _, ok := e.Assignment(99); ok {
		t.Fatal("未选中课程不应产生指派条目")
	}
}

func TestEditorAssignments_PermissiveSnapshot(t *testing.T) {
	e := NewAssignmentEditor()
	e.Seed([]model.Course{course(10, 7), course(20, 9)})
	e.SetCourseSelection([]model.Course{course(10, 7), course(20, 9), course(30, 5)})

	// 课程 30 选中但未指派：快照中无条目，提交不因此受阻
	got := e.Assignments()
	if _, ok := got[30]; ok {
		t.Fatal("未指派课程不应出现在快照中")
	}
	if got[10] != 7 {
		t.Fatalf("课程 10 的指派期望教师 7, 实际 %d", got[10])
	}

	// 快照是副本，外部修改不应污染编辑器状态
	got[10] = 99
	if id, _ := e.Assignment(10); id != 7 {
		t.Fatal("修改快照不应影响编辑器内部映射")
	}
}
