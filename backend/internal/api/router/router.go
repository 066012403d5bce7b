package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"uni-timetable/backend/config"
	"uni-timetable/backend/internal/api/handler"
	"uni-timetable/backend/internal/api/middleware"
	"uni-timetable/backend/pkg/redis"
)

// 生成端点限流：生成是远端的重计算，同一来源短窗口内只放行少量请求
const (
	generateRateLimit  = 5
	generateRateWindow = time.Minute
)

// Setup 初始化并返回 Gin 路由引擎
func Setup(cfg *config.Config, h *handler.Handler, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))

	// ── 健康检查 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// 基础数据模块
		v1.GET("/reference", h.Reference.GetAll)

		// 课程模块
		v1.POST("/courses", h.Course.Create)

		// 时间表模块
		timetables := v1.Group("/timetables")
		{
			timetables.GET("", h.Timetable.List)
			timetables.POST("/generate",
				middleware.RateLimit(rdb, generateRateLimit, generateRateWindow),
				h.Timetable.Generate)
			timetables.POST("/:id/activate", h.Timetable.Activate)
			timetables.DELETE("/:id", h.Timetable.Delete)
			timetables.GET("/:id/grid", h.Timetable.Grid)
			timetables.GET("/:id/export/:format", h.Timetable.Export)
		}

		// 班级编辑模块
		sections := v1.Group("/sections")
		{
			sections.GET("/semester-options", h.SectionEditor.SemesterOptions)
			sections.POST("/:id/editor", h.SectionEditor.Open)

			editor := sections.Group("/editor/:sid")
			{
				editor.GET("", h.SectionEditor.Get)
				editor.PUT("/courses", h.SectionEditor.UpdateSelection)
				editor.PUT("/assignments", h.SectionEditor.Assign)
				editor.PUT("/year", h.SectionEditor.ChangeYear)
				editor.POST("/submit", h.SectionEditor.Submit)
				editor.DELETE("", h.SectionEditor.Discard)
			}
		}
	}

	return r
}
