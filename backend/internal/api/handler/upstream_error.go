package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"uni-timetable/backend/internal/upstream"
	"uni-timetable/backend/pkg/response"
)

// handleUpstreamError 调度后端错误的统一二次映射。
// 404 透传为 404，其余上游错误一律以 502 上报并携带服务端提取的
// 错误消息；非上游错误交给各模块的 handleXxxError 先行匹配，
// 走到这里说明无业务语义，按内部错误处理。
func handleUpstreamError(c *gin.Context, err error, code int) bool {
	var apiErr *upstream.APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	if apiErr.StatusCode == http.StatusNotFound {
		response.NotFound(c, code, apiErr.Message)
		return true
	}
	response.ErrorWithDetails(c, http.StatusBadGateway, code, "调度服务暂不可用", apiErr.Message)
	return true
}
