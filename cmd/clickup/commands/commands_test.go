package commands

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

// run executes the root command against a fake ClickUp that answers every
// request with body, and returns the command output and request paths seen.
func run(t *testing.T, body string, args ...string) (string, []string, error) {
	t.Helper()
	t.Setenv("APP_ENV", "")
	t.Setenv("CLICKUP_TOKEN", "")
	t.Setenv("CLICKUP_TEAM_ID", "T-env")

	var paths []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		if r.Header.Get("Authorization") != "pk_cli" {
			w.WriteHeader(http.StatusUnauthorized)
			io.WriteString(w, `{"err": "Token invalid", "ECODE": "OAUTH_025"}`)
			return
		}
		io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)

	var out bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(append([]string{"--token", "pk_cli", "--base-url", srv.URL}, args...))
	err := root.Execute()
	return out.String(), paths, err
}

func TestTasksJSON(t *testing.T) {
	out, paths, err := run(t, `{"tasks": [{"id": "a", "name": "Ship", "tags": [{"name": "x"}]}]}`, "tasks", "L1")
	if err != nil {
		t.Fatalf("tasks: %v", err)
	}
	if len(paths) != 1 || paths[0] != "/list/L1/task" {
		t.Errorf("paths = %v", paths)
	}
	if !strings.Contains(out, `"name": "Ship"`) || !strings.Contains(out, `"tags": [`) {
		t.Errorf("output = %s", out)
	}
}

func TestTaskYAML(t *testing.T) {
	out, _, err := run(t, `{"id": "9hx", "name": "Ship", "checklists": []}`, "task", "9hx", "-o", "yaml")
	if err != nil {
		t.Fatalf("task: %v", err)
	}
	for _, want := range []string{"id: 9hx\n", "name: Ship\n", "checklists: []\n"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestTeamIDFallsBackToEnv(t *testing.T) {
	_, paths, err := run(t, `{"goals": []}`, "goals")
	if err != nil {
		t.Fatalf("goals: %v", err)
	}
	if len(paths) != 1 || paths[0] != "/team/T-env/goal" {
		t.Errorf("paths = %v", paths)
	}
}

func TestFolderlessLists(t *testing.T) {
	_, paths, err := run(t, `{"lists": []}`, "lists", "--folderless", "S1")
	if err != nil {
		t.Fatalf("lists: %v", err)
	}
	if len(paths) != 1 || paths[0] != "/space/S1/list" {
		t.Errorf("paths = %v", paths)
	}
}

func TestHierarchyCommand(t *testing.T) {
	// Every request gets the same body, so spaces, folders and lists all
	// decode from it.
	body := `{"spaces": [{"id": "S1"}], "folders": [], "lists": []}`
	out, paths, err := run(t, body, "hierarchy", "T1")
	if err != nil {
		t.Fatalf("hierarchy: %v", err)
	}
	if len(paths) != 3 {
		t.Errorf("paths = %v, want spaces, folders and folderless lists", paths)
	}
	if !strings.Contains(out, `"folderless_lists": []`) {
		t.Errorf("output = %s", out)
	}
}

func TestUpstreamErrorIsReturned(t *testing.T) {
	t.Setenv("APP_ENV", "")
	root := NewRootCmd()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		io.WriteString(w, `{"err": "Task not found"}`)
	}))
	defer srv.Close()

	root.SetArgs([]string{"--token", "x", "--base-url", srv.URL, "task", "nope"})
	err := root.Execute()
	if err == nil || err.Error() != "(404) Task not found" {
		t.Errorf("error = %v, want (404) Task not found", err)
	}
}

func TestInvalidFlags(t *testing.T) {
	tests := [][]string{
		{"tasks", "L1", "-o", "xml"},
		{"workload", "T1", "--start", "2026-10-05"},
		{"time-entries", "--start", "05/10/2026"},
		{"task"},
	}
	for _, args := range tests {
		if _, _, err := run(t, `{}`, args...); err == nil {
			t.Errorf("%v succeeded, want error", args)
		}
	}
}

func TestMissingToken(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("CLICKUP_TOKEN", "")
	root := NewRootCmd()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"teams"})
	if err := root.Execute(); err == nil || !strings.Contains(err.Error(), "no ClickUp token") {
		t.Errorf("error = %v, want missing token", err)
	}
}

func TestHashPassword(t *testing.T) {
	for _, tc := range []struct {
		args  []string
		stdin string
	}{
		{[]string{"hash-password", "s3cret"}, ""},
		{[]string{"hash-password"}, "s3cret\n"},
	} {
		var out bytes.Buffer
		root := NewRootCmd()
		root.SetOut(&out)
		root.SetIn(strings.NewReader(tc.stdin))
		root.SetArgs(tc.args)
		if err := root.Execute(); err != nil {
			t.Fatalf("%v: %v", tc.args, err)
		}
		hash := strings.TrimSpace(out.String())
		if bcrypt.CompareHashAndPassword([]byte(hash), []byte("s3cret")) != nil {
			t.Errorf("%v printed %q, not a hash of s3cret", tc.args, hash)
		}
	}
}
