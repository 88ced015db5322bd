package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/roksva123/go-clickup/model"
)

func tasks(t *testing.T) *model.Tasks {
	t.Helper()
	raw, err := model.DecodeBody([]byte(`{"tasks": [{"id": "1", "name": "Write", "creator": {"id": 1963465985517105840, "username": "ari", "color": "#fff"}, "tags": [{"name": "docs"}]}]}`))
	if err != nil {
		t.Fatalf("DecodeBody: %v", err)
	}
	ts, err := model.NewTasks(raw)
	if err != nil {
		t.Fatalf("NewTasks: %v", err)
	}
	return ts
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, JSON, tasks(t)); err != nil {
		t.Fatalf("Write: %v", err)
	}
	for _, want := range []string{`"tasks": [`, `"tags": [`, `"id": 1963465985517105840`} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("JSON output missing %q:\n%s", want, buf.String())
		}
	}
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, YAML, tasks(t)); err != nil {
		t.Fatalf("Write: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"tasks:\n", "tags:\n", "id: 1963465985517105840\n", "name: Write\n"} {
		if !strings.Contains(out, want) {
			t.Errorf("YAML output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "task_tags") {
		t.Errorf("YAML uses field name instead of wire key:\n%s", out)
	}
}

func TestWriteUnknownFormat(t *testing.T) {
	if err := Write(&bytes.Buffer{}, "xml", map[string]int{}); err == nil {
		t.Error("Write(xml) succeeded")
	}
}

func TestNumbers(t *testing.T) {
	tree, err := jsonTree(map[string]any{"a": 1.5, "b": []any{int64(2)}})
	if err != nil {
		t.Fatalf("jsonTree: %v", err)
	}
	m := tree.(map[string]any)
	if m["a"] != 1.5 {
		t.Errorf("a = %#v, want 1.5", m["a"])
	}
	if b := m["b"].([]any); b[0] != int64(2) {
		t.Errorf("b[0] = %#v, want int64(2)", b[0])
	}
}
