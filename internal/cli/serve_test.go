package cli

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mklettner/dropzone/pkg/hover"
)

func newTestServer(t *testing.T) *classifyServer {
	t.Helper()
	engine, err := hover.New()
	if err != nil {
		t.Fatal(err)
	}
	return &classifyServer{engine: engine}
}

func TestHandleHealthz(t *testing.T) {
	s := newTestServer(t)
	w := httptest.NewRecorder()
	s.handleHealthz(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"ok"`) {
		t.Errorf("body = %s", w.Body.String())
	}
}

func TestHandleMatrices(t *testing.T) {
	s := newTestServer(t)
	w := httptest.NewRecorder()
	s.handleMatrices(w, httptest.NewRequest(http.MethodGet, "/v1/matrices", nil))

	var resp map[string][]string
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if len(resp["matrices"]) != 3 {
		t.Errorf("matrices = %v, want the three built-ins", resp["matrices"])
	}
}

func TestHandleClassify(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantAction string
		wantLevel  *int
	}{
		{
			name: "AboveHere",
			body: `{
				"drag":  {"id": "d"},
				"hover": {"id": "h", "levels": {"above": 2, "below": 2, "left": 2, "right": 2}},
				"room":  {"width": 100, "height": 100},
				"mouse": {"x": 50, "y": 15}
			}`,
			wantStatus: http.StatusOK,
			wantAction: "above",
			wantLevel:  intPtr(0),
		},
		{
			name: "InlineMerge",
			body: `{
				"drag":  {"id": "d", "inlineable": true},
				"hover": {"id": "h", "levels": {"above": 2, "below": 2, "left": 2, "right": 2}},
				"room":  {"width": 100, "height": 100},
				"mouse": {"x": 35, "y": 55}
			}`,
			wantStatus: http.StatusOK,
			wantAction: "inlineLeft",
		},
		{
			name: "RowDragOnInlineIsSilent",
			body: `{
				"drag":  {"id": "d", "kind": "row"},
				"hover": {"id": "h"},
				"room":  {"width": 100, "height": 100},
				"mouse": {"x": 35, "y": 55}
			}`,
			wantStatus: http.StatusOK,
			wantAction: "none",
		},
		{
			name:       "MalformedBody",
			body:       `{"drag": `,
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "DegenerateRoom",
			body: `{
				"drag":  {"id": "d"},
				"hover": {"id": "h"},
				"room":  {"width": 0, "height": 100},
				"mouse": {"x": 1, "y": 1}
			}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "UnknownMatrix",
			body: `{
				"drag":   {"id": "d"},
				"hover":  {"id": "h"},
				"room":   {"width": 100, "height": 100},
				"mouse":  {"x": 50, "y": 50},
				"matrix": "nope"
			}`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t)
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/v1/classify", strings.NewReader(tt.body))
			s.handleClassify(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d: %s", w.Code, tt.wantStatus, w.Body.String())
			}
			if tt.wantStatus != http.StatusOK {
				if !strings.Contains(w.Body.String(), `"error"`) {
					t.Errorf("error body = %s", w.Body.String())
				}
				return
			}

			var resp classifyResponse
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatal(err)
			}
			if resp.Action != tt.wantAction {
				t.Errorf("action = %q, want %q", resp.Action, tt.wantAction)
			}
			if (resp.Level == nil) != (tt.wantLevel == nil) {
				t.Fatalf("level = %v, want %v", resp.Level, tt.wantLevel)
			}
			if resp.Level != nil && *resp.Level != *tt.wantLevel {
				t.Errorf("level = %d, want %d", *resp.Level, *tt.wantLevel)
			}
		})
	}
}

func intPtr(v int) *int { return &v }
