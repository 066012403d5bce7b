package schedule

import "fmt"

// SemesterOption 学期下拉选项
type SemesterOption struct {
	Value int    `json:"value"`
	Label string `json:"label"`
}

// SemesterOptionsForYear 返回某年级合法的学期选项（有序）。
// 年级 n ∈ {1,2,3,4} → 第 2n-1、2n 学期；其余输入返回空序列，
// 不虚构默认学期。
func SemesterOptionsForYear(year int) []SemesterOption {
	if year < 1 || year > 4 {
		return []SemesterOption{}
	}
	first := year*2 - 1
	return []SemesterOption{
		{Value: first, Label: fmt.Sprintf("Semester %d", first)},
		{Value: first + 1, Label: fmt.Sprintf("Semester %d", first+1)},
	}
}

// RecomputeSemesterOptions 在年级变更时重新计算学期选项。
// 当前学期不在新选项集合内时回退为集合首元素（兜底复位，
// 绝不留下非法学期）；选项为空时保持原值不动。
// 返回值: (新选项, 生效的学期, 是否发生复位)
func RecomputeSemesterOptions(year, current int) ([]SemesterOption, int, bool) {
	options := SemesterOptionsForYear(year)
	for _, opt := range options {
		if opt.Value == current {
			return options, current, false
		}
	}
	if len(options) == 0 {
		return options, current, false
	}
	return options, options[0].Value, true
}
