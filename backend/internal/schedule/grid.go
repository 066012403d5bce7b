package schedule

import (
	"sort"
	"strings"

	"uni-timetable/backend/internal/model"
)

// ── 课表网格 ──────────────────────────────────────────────
//
// 设计说明：
//   - 时间段列 = 输入中出现过的全部 time_slot 去重后的并集；
//     一旦某时间段在任何一天出现，所有天都渲染该列（空单元格而非缺键）。
//   - 时间段按分隔符前的起始时间做字符串字典序排序。该规则沿用
//     调度后端的约定：仅当起始时间为补零的 24 小时制（"09:00"）时
//     才与时间先后一致，上游需保证该前提；此处不做"修正"，否则
//     展示顺序会在数据契约变更前被悄悄改变。
//   - 单元格内条目保持输入顺序，不去重不丢弃：同一 天×时间段 多条
//     记录是合法状态（如平行实验班），不是需要消解的冲突。
// ─────────────────────────────────────────────────────────────

// Grid 按 星期 × 时间段 组织的课表网格
type Grid struct {
	days  []model.Weekday
	slots []string
	cells map[model.Weekday]map[string][]model.ClassAssignment
}

// BuildGrid 将无序的上课记录集合构建为确定性排序的网格
func BuildGrid(entries []model.ClassAssignment) *Grid {
	g := &Grid{
		days:  append([]model.Weekday(nil), model.Weekdays...),
		cells: make(map[model.Weekday]map[string][]model.ClassAssignment),
	}

	// 上游偶发的非常规星期值追加在周六之后，按首次出现顺序保留
	known := make(map[model.Weekday]bool, len(g.days))
	for _, d := range g.days {
		known[d] = true
	}
	for _, e := range entries {
		if !known[e.Day] {
			known[e.Day] = true
			g.days = append(g.days, e.Day)
		}
	}

	// 时间段列：去重后按起始时间字典序
	seen := make(map[string]bool)
	for _, e := range entries {
		if !seen[e.TimeSlot] {
			seen[e.TimeSlot] = true
			g.slots = append(g.slots, e.TimeSlot)
		}
	}
	SortTimeSlots(g.slots)

	// 物化所有单元格：已知时间段在每一天都有（可能为空的）非 nil 列表
	for _, d := range g.days {
		g.cells[d] = make(map[string][]model.ClassAssignment, len(g.slots))
		for _, s := range g.slots {
			g.cells[d][s] = []model.ClassAssignment{}
		}
	}

	// 按输入顺序填充
	for _, e := range entries {
		g.cells[e.Day][e.TimeSlot] = append(g.cells[e.Day][e.TimeSlot], e)
	}

	return g
}

// Days 网格的星期轴（周一至周六，含上游出现过的额外值）
func (g *Grid) Days() []model.Weekday { return g.days }

// TimeSlots 有序的时间段列
func (g *Grid) TimeSlots() []string { return g.slots }

// Cell 返回指定 天×时间段 的条目列表；未知坐标返回空列表
func (g *Grid) Cell(day model.Weekday, slot string) []model.ClassAssignment {
	if row, ok := g.cells[day]; ok {
		if cell, ok := row[slot]; ok {
			return cell
		}
	}
	return []model.ClassAssignment{}
}

// slotStart 提取时间段分隔符前的起始时间子串（原样，不解析）
func slotStart(slot string) string {
	if i := strings.Index(slot, "-"); i >= 0 {
		return slot[:i]
	}
	return slot
}

// SortTimeSlots 按起始时间子串的字典序稳定排序时间段
func SortTimeSlots(slots []string) {
	sort.SliceStable(slots, func(i, j int) bool {
		return slotStart(slots[i]) < slotStart(slots[j])
	})
}

// Flatten 将调度后端 view_schedule 的嵌套结构
// （星期 → 时间段 → 条目列表）展平为平铺集合。
// 遍历顺序固定：星期按周一至周六（额外值按字典序追加），
// 时间段按起始时间字典序，单元格内保持上游数组顺序，
// 保证同一载荷展平结果确定。
func Flatten(payload map[model.Weekday]map[string][]model.ClassAssignment) []model.ClassAssignment {
	days := append([]model.Weekday(nil), model.Weekdays...)
	known := make(map[model.Weekday]bool, len(days))
	for _, d := range days {
		known[d] = true
	}
	var extra []model.Weekday
	for d := range payload {
		if !known[d] {
			extra = append(extra, d)
		}
	}
	sort.Slice(extra, func(i, j int) bool { return extra[i] < extra[j] })
	days = append(days, extra...)

	var out []model.ClassAssignment
	for _, day := range days {
		row, ok := payload[day]
		if !ok {
			continue
		}
		slots := make([]string, 0, len(row))
		for s := range row {
			slots = append(slots, s)
		}
		SortTimeSlots(slots)
		for _, slot := range slots {
			for _, e := range row[slot] {
				e.Day = day
				e.TimeSlot = slot
				out = append(out, e)
			}
		}
	}
	return out
}
