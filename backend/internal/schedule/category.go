package schedule

import "strings"

// DisplayBand 网格单元格与摘要视图使用的显示色带
type DisplayBand string

const (
	BandGreen  DisplayBand = "green"
	BandBlue   DisplayBand = "blue"
	BandYellow DisplayBand = "yellow"
	BandRed    DisplayBand = "red"
	BandGray   DisplayBand = "gray"
)

// CategoryBand 课程类别到显示色带的全函数映射。
// 大小写不敏感；未识别的类别一律归入灰色，不报错。
func CategoryBand(category string) DisplayBand {
	switch strings.ToLower(category) {
	case "lab":
		return BandGreen
	case "theory":
		return BandBlue
	case "practical":
		return BandYellow
	default:
		return BandGray
	}
}
