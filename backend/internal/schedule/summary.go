package schedule

// ── 时间表摘要视图 ──
//
// 两个阈值刻意不统一：指导语区块以 80 分为界（band），
// 颜色档位在 60 分再分一档（color）。两者来自同一份前端约定，
// 必须原样保留，不做合并。

// Summary 适应度得分的定性摘要
type Summary struct {
	Band          string      `json:"band"`           // Excellent | Needs Improvement（80 分界）
	Quality       string      `json:"quality"`        // Excellent | Good | Needs Improvement（随颜色档位）
	Color         DisplayBand `json:"color"`          // green ≥80 | yellow ≥60 | red <60
	ShowGuidance  bool        `json:"show_guidance"`  // fitness < 80 时展示改进指导语
	ProgressWidth float64     `json:"progress_width"` // 进度条填充百分比，min(fitness, 100)
}

// Summarize 由 0-100 适应度得分推导摘要（80 分界含上界）
func Summarize(fitness float64) Summary {
	s := Summary{ProgressWidth: fitness}
	if s.ProgressWidth > 100 {
		s.ProgressWidth = 100
	}

	if fitness >= 80 {
		s.Band = "Excellent"
	} else {
		s.Band = "Needs Improvement"
		s.ShowGuidance = true
	}

	switch {
	case fitness >= 80:
		s.Quality = "Excellent"
		s.Color = BandGreen
	case fitness >= 60:
		s.Quality = "Good"
		s.Color = BandYellow
	default:
		s.Quality = "Needs Improvement"
		s.Color = BandRed
	}

	return s
}
