package schedule

import "testing"

func TestCategoryBand(t *testing.T) {
	tests := []struct {
		category string
		want     DisplayBand
	}{
		{"Lab", BandGreen},
		{"lab", BandGreen},
		{"LAB", BandGreen},
		{"Theory", BandBlue},
		{"Practical", BandYellow},
		{"Seminar", BandGray}, // 未识别类别归入灰色，不报错
		{"", BandGray},
	}

	for _, tt := range tests {
		if got := CategoryBand(tt.category); got != tt.want {
			t.Errorf("CategoryBand(%q) = %s, 期望 %s", tt.category, got, tt.want)
		}
	}
}
