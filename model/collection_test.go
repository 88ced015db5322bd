package model_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/roksva123/go-clickup/model"
)

func ids(tasks []model.Task) []string {
	out := make([]string, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, deref(t.ID))
	}
	return out
}

func TestCollectionOrdering(t *testing.T) {
	tasks, err := model.NewTasks(body(t, `{"tasks": [{"id":"1"},{"id":"2"},{"id":"3"}]}`))
	if err != nil {
		t.Fatalf("NewTasks: %v", err)
	}

	if tasks.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", tasks.Len())
	}
	if tasks.Name() != "tasks" {
		t.Errorf("Name() = %q, want %q", tasks.Name(), "tasks")
	}

	var got []string
	for _, task := range tasks.All() {
		got = append(got, deref(task.ID))
	}
	want := []string{"1", "2", "3"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("item %d id = %q, want %q", i, got[i], want[i])
		}
	}

	second, err := tasks.At(1)
	if err != nil {
		t.Fatalf("At(1): %v", err)
	}
	if deref(second.ID) != "2" {
		t.Errorf("At(1).ID = %q, want %q", deref(second.ID), "2")
	}
}

func TestCollectionIterationRestarts(t *testing.T) {
	tasks, err := model.NewTasks(body(t, `{"tasks": [{"id":"a"},{"id":"b"}]}`))
	if err != nil {
		t.Fatalf("NewTasks: %v", err)
	}

	for range 2 {
		var seen []string
		for task := range tasks.Values() {
			seen = append(seen, deref(task.ID))
		}
		if len(seen) != 2 || seen[0] != "a" || seen[1] != "b" {
			t.Errorf("iteration = %v, want [a b]", seen)
		}
	}

	for i, task := range tasks.All() {
		if i == 0 && deref(task.ID) != "a" {
			t.Errorf("first item = %q, want %q", deref(task.ID), "a")
		}
		break
	}
}

func TestCollectionIndexOutOfRange(t *testing.T) {
	tasks, err := model.NewTasks(body(t, `{"tasks": [{"id":"1"},{"id":"2"}]}`))
	if err != nil {
		t.Fatalf("NewTasks: %v", err)
	}

	for _, i := range []int{5, 2, -1} {
		if _, err := tasks.At(i); !errors.Is(err, model.ErrIndexOutOfRange) {
			t.Errorf("At(%d) error = %v, want ErrIndexOutOfRange", i, err)
		}
	}
}

func TestCollectionItemsIsACopy(t *testing.T) {
	tasks, err := model.NewTasks(body(t, `{"tasks": [{"id":"1"}]}`))
	if err != nil {
		t.Fatalf("NewTasks: %v", err)
	}
	items := tasks.Items()
	items[0] = model.Task{}

	first, _ := tasks.At(0)
	if deref(first.ID) != "1" {
		t.Errorf("collection changed through Items(): %+v", first)
	}
}

func TestCollectionFailsAtomically(t *testing.T) {
	payload := `{"spaces": [{"id": "1"}, {"name": "no id"}, {"id": "3"}]}`
	spaces, err := model.NewSpaces(body(t, payload))
	if spaces != nil {
		t.Errorf("spaces = %+v, want nil on failure", spaces)
	}
	se := schemaErr(t, err)
	if se.Resource != "spaces" {
		t.Errorf("Resource = %q, want %q", se.Resource, "spaces")
	}
	if se.Field != "[1].id" {
		t.Errorf("Field = %q, want %q", se.Field, "[1].id")
	}
}

func TestCollectionShapeErrors(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"not a list", `{"tasks": {"id": "1"}}`},
		{"null list", `{"tasks": null}`},
		{"item not an object", `{"tasks": ["1"]}`},
		{"missing key", `{"items": []}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := model.NewTasks(body(t, tt.payload))
			schemaErr(t, err)
		})
	}
}

func TestCollectionIgnoresExtraKeys(t *testing.T) {
	goals, err := model.NewGoals(body(t, `{"goals": [{"id": "g1"}], "folders": []}`))
	if err != nil {
		t.Fatalf("NewGoals: %v", err)
	}
	if goals.Len() != 1 {
		t.Errorf("Len() = %d, want 1", goals.Len())
	}
}

func TestGenericCollection(t *testing.T) {
	c, err := model.NewCollection(body(t, `{"whatever": [{"name": "x"}, {"name": "y"}]}`), model.DecodeTag)
	if err != nil {
		t.Fatalf("NewCollection: %v", err)
	}
	if c.Name() != "whatever" || c.Len() != 2 {
		t.Errorf("collection = %q with %d items", c.Name(), c.Len())
	}

	for _, payload := range []string{`{}`, `{"a": [], "b": []}`} {
		if _, err := model.NewCollection(body(t, payload), model.DecodeTag); err == nil {
			t.Errorf("NewCollection(%s) succeeded, want error", payload)
		} else {
			schemaErr(t, err)
		}
	}
}

func TestCollectionEmptyList(t *testing.T) {
	folders, err := model.NewFolders(body(t, `{"folders": []}`))
	if err != nil {
		t.Fatalf("NewFolders: %v", err)
	}
	if folders.Len() != 0 {
		t.Errorf("Len() = %d, want 0", folders.Len())
	}
}

func TestTimeEntriesNullData(t *testing.T) {
	for _, payload := range []string{`{"data": null}`, `{}`} {
		entries, err := model.NewTimeEntries(body(t, payload))
		if err != nil {
			t.Fatalf("NewTimeEntries(%s): %v", payload, err)
		}
		if entries.Len() != 0 {
			t.Errorf("Len() = %d, want 0", entries.Len())
		}
	}
}

func TestCollectionMarshalJSON(t *testing.T) {
	tasks, err := model.NewTasks(body(t, `{"tasks": [{"id":"1","tags":[{"name":"x"}]},{"id":"2"}]}`))
	if err != nil {
		t.Fatalf("NewTasks: %v", err)
	}
	out, err := json.Marshal(tasks)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	again, err := model.NewTasks(body(t, string(out)))
	if err != nil {
		t.Fatalf("NewTasks(round trip): %v", err)
	}
	got := ids(again.Items())
	if len(got) != 2 || got[0] != "1" || got[1] != "2" {
		t.Errorf("round trip ids = %v, want [1 2]", got)
	}
	first, _ := again.At(0)
	if len(first.TaskTags) != 1 {
		t.Errorf("round trip TaskTags = %+v", first.TaskTags)
	}
}

func TestZeroCollectionMarshalJSON(t *testing.T) {
	var tasks model.Tasks
	out, err := json.Marshal(&tasks)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(out) != "[]" {
		t.Errorf("Marshal(zero Tasks) = %s, want []", out)
	}
	if tasks.Len() != 0 {
		t.Errorf("Len() = %d, want 0", tasks.Len())
	}
}
