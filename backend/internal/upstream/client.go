package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"uni-timetable/backend/config"
)

// ── 调度后端 HTTP 客户端 ──────────────────────────────────
//
// 设计说明：
//   - 本服务不持有任何数据：全部实体由调度后端（系统记录源）托管，
//     这里只做带类型的请求封装。
//   - 列表接口可能返回裸数组，也可能返回 {results: [...]} 分页信封，
//     两种形态都必须接受。
//   - 变更类请求失败时，尽量携带后端自己的错误文案（APIError），
//     供界面原样提示；没有文案时回退为通用提示。
// ─────────────────────────────────────────────────────────────

// APIError 调度后端返回的业务错误
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("上游服务错误 (HTTP %d): %s", e.StatusCode, e.Message)
}

// Client 调度后端客户端
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient 创建调度后端客户端
func NewClient(cfg *config.UpstreamConfig, logger *zap.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		token:      cfg.Token,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     logger,
	}
}

// ── 底层请求封装 ──

func (c *Client) newRequest(ctx context.Context, method, path string, body interface{}) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("序列化请求体失败: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	return req, nil
}

// doJSON 发送请求并把成功响应解码到 out（out 为 nil 时丢弃响应体）
func (c *Client) doJSON(ctx context.Context, method, path string, body, out interface{}) error {
	data, _, err := c.doRaw(ctx, method, path, body)
	if err != nil {
		return err
	}
	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("解析上游响应失败 (%s %s): %w", method, path, err)
	}
	return nil
}

// doRaw 发送请求并返回原始响应体与 Content-Type
func (c *Client) doRaw(ctx context.Context, method, path string, body interface{}) ([]byte, string, error) {
	req, err := c.newRequest(ctx, method, path, body)
	if err != nil {
		return nil, "", err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("请求上游服务失败 (%s %s): %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("读取上游响应失败 (%s %s): %w", method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn("上游服务返回错误",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
		)
		return nil, "", &APIError{
			StatusCode: resp.StatusCode,
			Message:    extractErrorMessage(data),
		}
	}

	return data, resp.Header.Get("Content-Type"), nil
}

// extractErrorMessage 从错误响应体中提取后端文案。
// 依次尝试 error / detail / message 字段，都没有时回退为通用提示。
func extractErrorMessage(data []byte) string {
	var body struct {
		Error   string `json:"error"`
		Detail  string `json:"detail"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &body); err == nil {
		switch {
		case body.Error != "":
			return body.Error
		case body.Detail != "":
			return body.Detail
		case body.Message != "":
			return body.Message
		}
	}
	return "操作失败，请稍后重试"
}

// decodeList 解码列表响应：兼容裸数组与 {results: [...]} 信封。
// out 必须是指向切片的指针。
func decodeList(data []byte, out interface{}) error {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '[' {
		return json.Unmarshal(trimmed, out)
	}
	var envelope struct {
		Results json.RawMessage `json:"results"`
	}
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return fmt.Errorf("解析列表响应失败: %w", err)
	}
	if envelope.Results == nil {
		return fmt.Errorf("解析列表响应失败: 既非数组也无 results 字段")
	}
	return json.Unmarshal(envelope.Results, out)
}

// getList 请求列表接口并解码
func (c *Client) getList(ctx context.Context, path string, out interface{}) error {
	data, _, err := c.doRaw(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	return decodeList(data, out)
}
