package upstream

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"

	"uni-timetable/backend/config"
)

func newTestClient(baseURL string) *Client {
	return NewClient(&config.UpstreamConfig{
		BaseURL: baseURL,
		Token:   "test-token",
		Timeout: 5 * time.Second,
	}, zap.NewNop())
}

func TestListCourses_BareArray(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/courses/" {
			t.Errorf("路径不符: %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Errorf("认证头不符: %s", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id": 1, "course_name": "高等数学"}, {"id": 2, "course_name": "大学英语"}]`))
	}))
	defer srv.Close()

	list, err := newTestClient(srv.URL).ListCourses(context.Background())
	if err != nil {
		t.Fatalf("ListCourses 失败: %v", err)
	}
	if len(list) != 2 || list[0].Name != "高等数学" {
		t.Fatalf("列表解析不符: %+v", list)
	}
}

func TestListCourses_PaginatedEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"count": 1, "next": null, "results": [{"id": 3, "course_name": "数据结构"}]}`))
	}))
	defer srv.Close()

	list, err := newTestClient(srv.URL).ListCourses(context.Background())
	if err != nil {
		t.Fatalf("ListCourses 失败: %v", err)
	}
	if len(list) != 1 || list[0].ID != 3 {
		t.Fatalf("信封解析不符: %+v", list)
	}
}

func TestAPIError_MessageExtraction(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"error 字段", `{"error": "该时间段已有排课"}`, "该时间段已有排课"},
		{"detail 字段", `{"detail": "Not found."}`, "Not found."},
		{"message 字段", `{"message": "参数错误"}`, "参数错误"},
		{"无文案回退", `{"foo": "bar"}`, "操作失败，请稍后重试"},
		{"非 JSON 回退", `<html>502</html>`, "操作失败，请稍后重试"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := newTestClient(srv.URL).ListCourses(context.Background())
			var apiErr *APIError
			if !errors.As(err, &apiErr) {
				t.Fatalf("期望 APIError, 实际 %v", err)
			}
			if apiErr.StatusCode != http.StatusBadRequest {
				t.Fatalf("状态码期望 400, 实际 %d", apiErr.StatusCode)
			}
			if apiErr.Message != tt.want {
				t.Fatalf("错误文案期望 %q, 实际 %q", tt.want, apiErr.Message)
			}
		})
	}
}

func TestGetSchedule_NestedPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/timetables/7/view_schedule/" {
			t.Errorf("路径不符: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"timetable_name": "2026 春季",
			"fitness": 86.5,
			"schedule": {
				"Monday": {
					"09:00-10:00": [{"course": "高等数学", "course_id": "MA101", "instructor": "王老师", "room": "A101", "section": "CS-1", "course_type": "Theory"}]
				}
			}
		}`))
	}))
	defer srv.Close()

	payload, err := newTestClient(srv.URL).GetSchedule(context.Background(), 7)
	if err != nil {
		t.Fatalf("GetSchedule 失败: %v", err)
	}
	if payload.TimetableName != "2026 春季" || payload.Fitness != 86.5 {
		t.Fatalf("元信息不符: %+v", payload)
	}
	cell := payload.Schedule["Monday"]["09:00-10:00"]
	if len(cell) != 1 || cell[0].CourseCode != "MA101" || cell[0].CourseCategory != "Theory" {
		t.Fatalf("嵌套载荷解析不符: %+v", cell)
	}
}

func TestExportPDF_RawBytes(t *testing.T) {
	want := []byte("%PDF-1.4 fake content")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/timetables/5/export_pdf/" {
			t.Errorf("路径不符: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/pdf")
		w.Write(want)
	}))
	defer srv.Close()

	data, err := newTestClient(srv.URL).ExportPDF(context.Background(), 5)
	if err != nil {
		t.Fatalf("ExportPDF 失败: %v", err)
	}
	if !bytes.Equal(data, want) {
		t.Fatal("导出字节流被改写")
	}
}

func TestGenerate_ForwardsParams(t *testing.T) {
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		buf := new(bytes.Buffer)
		buf.ReadFrom(r.Body)
		gotBody = buf.Bytes()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"generated_timetables": [{"id": 1, "name": "TT-1", "fitness": 91.0}], "errors": ["Year 3: no courses"]}`))
	}))
	defer srv.Close()

	result, err := newTestClient(srv.URL).Generate(context.Background(), &GenerateRequest{
		DepartmentIDs:  []int64{1},
		Years:          []int{1, 2},
		Semester:       2,
		PopulationSize: 50,
		MutationRate:   0.1,
		EliteRate:      0.1,
		Generations:    500,
	})
	if err != nil {
		t.Fatalf("Generate 失败: %v", err)
	}
	if len(result.GeneratedTimetables) != 1 || result.GeneratedTimetables[0].Name != "TT-1" {
		t.Fatalf("成功列表不符: %+v", result.GeneratedTimetables)
	}
	if len(result.Errors) != 1 {
		t.Fatalf("失败列表不符: %+v", result.Errors)
	}
	if !bytes.Contains(gotBody, []byte(`"population_size":50`)) {
		t.Fatalf("算法参数未透传: %s", gotBody)
	}
}
