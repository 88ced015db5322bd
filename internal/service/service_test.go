package service

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/roksva123/go-clickup/clickup"
	"github.com/roksva123/go-clickup/model"
)

func payload(t *testing.T, s string) map[string]any {
	t.Helper()
	raw, err := model.DecodeBody([]byte(s))
	if err != nil {
		t.Fatalf("DecodeBody(%s): %v", s, err)
	}
	return raw
}

func itoa(n int64) string { return strconv.FormatInt(n, 10) }

type fakeClickUp struct {
	t          *testing.T
	spaces     string
	folders    map[string]string
	lists      map[string]string
	folderless map[string]string
	entries    string
	query      clickup.TimeEntryQuery
}

func (f *fakeClickUp) GetSpaces(ctx context.Context, teamID string, includeArchived bool) (*model.Spaces, error) {
	return model.NewSpaces(payload(f.t, f.spaces))
}

func (f *fakeClickUp) GetFolders(ctx context.Context, spaceID string, includeArchived bool) (*model.Folders, error) {
	body, ok := f.folders[spaceID]
	if !ok {
		return nil, errors.New("folders unavailable")
	}
	return model.NewFolders(payload(f.t, body))
}

func (f *fakeClickUp) GetLists(ctx context.Context, folderID string, includeArchived bool) (*model.Lists, error) {
	return model.NewLists(payload(f.t, f.lists[folderID]))
}

func (f *fakeClickUp) GetFolderlessLists(ctx context.Context, spaceID string, includeArchived bool) (*model.Lists, error) {
	body, ok := f.folderless[spaceID]
	if !ok {
		body = `{"lists": []}`
	}
	return model.NewLists(payload(f.t, body))
}

func (f *fakeClickUp) GetTimeEntriesInRange(ctx context.Context, teamID string, q clickup.TimeEntryQuery) (*model.TimeEntries, error) {
	f.query = q
	return model.NewTimeEntries(payload(f.t, f.entries))
}

func TestHierarchyWalk(t *testing.T) {
	fake := &fakeClickUp{
		t:      t,
		spaces: `{"spaces": [{"id": "s1", "name": "Eng"}, {"id": "s2", "name": "Ops"}]}`,
		folders: map[string]string{
			"s1": `{"folders": [{"id": "f1", "name": "Backend", "hidden": false}]}`,
		},
		lists:      map[string]string{"f1": `{"lists": [{"id": "l1"}, {"id": "l2"}]}`},
		folderless: map[string]string{"s2": `{"lists": [{"id": "l3"}]}`},
	}

	tree, err := NewHierarchyService(fake).Walk(context.Background(), "T1")
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}
	if len(tree) != 2 {
		t.Fatalf("spaces = %d, want 2", len(tree))
	}
	if len(tree[0].Folders) != 1 || len(tree[0].Folders[0].Lists) != 2 {
		t.Errorf("space s1 = %+v", tree[0])
	}
	// s2 folders fail; its folderless lists still load.
	if len(tree[1].Folders) != 0 || len(tree[1].FolderlessLists) != 1 {
		t.Errorf("space s2 = %+v", tree[1])
	}
}

func TestHierarchyWalkNeedsTeam(t *testing.T) {
	if _, err := NewHierarchyService(&fakeClickUp{t: t}).Walk(context.Background(), ""); err == nil {
		t.Error("Walk without team id succeeded")
	}
}

var bands = Bands{Underload: 35, NormalMin: 36, NormalMax: 45, Overload: 60}

func TestBandsClassify(t *testing.T) {
	tests := []struct {
		hours float64
		want  string
	}{
		{0, CategoryUnderload},
		{35, CategoryUnderload},
		{35.5, CategoryBelowNormal},
		{40, CategoryNormal},
		{50, CategoryAboveNormal},
		{60, CategoryOverload},
	}
	for _, tt := range tests {
		if got := bands.Classify(tt.hours); got != tt.want {
			t.Errorf("Classify(%v) = %q, want %q", tt.hours, got, tt.want)
		}
	}
}

func TestWorkloadSummarize(t *testing.T) {
	hour := int64(time.Hour / time.Millisecond)
	fake := &fakeClickUp{t: t, entries: `{"data": [
		{"id": "1", "user": {"id": 2, "username": "zoe", "color": "#000"}, "duration": "` + itoa(40*hour) + `"},
		{"id": "2", "user": {"id": 1, "username": "ari", "color": "#fff"}, "duration": "` + itoa(10*hour) + `"},
		{"id": "3", "user": {"id": 1, "username": "ari", "color": "#fff"}, "duration": "` + itoa(5*hour) + `"},
		{"id": "4", "user": {"id": 1, "username": "ari", "color": "#fff"}, "duration": "-5000"},
		{"id": "5", "duration": "1000"}
	]}`}

	// Monday through Friday of one week.
	start := time.Date(2026, 10, 5, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 10, 9, 23, 0, 0, 0, time.UTC)

	got, err := NewWorkloadService(fake, bands).Summarize(context.Background(), "T1", start, end, []int64{1, 2})
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("users = %+v, want 2", got)
	}
	ari, zoe := got[0], got[1]
	if ari.Username != "ari" || ari.Entries != 2 || ari.TotalHours != 15 || ari.Category != CategoryUnderload {
		t.Errorf("ari = %+v", ari)
	}
	if zoe.WeeklyHours != 40 || zoe.Category != CategoryNormal {
		t.Errorf("zoe = %+v", zoe)
	}
	if fake.query.Start == nil || *fake.query.Start != start.UnixMilli() {
		t.Errorf("query start = %v, want %d", fake.query.Start, start.UnixMilli())
	}
}

func TestWorkloadRejectsInvertedRange(t *testing.T) {
	now := time.Now()
	_, err := NewWorkloadService(&fakeClickUp{t: t}, bands).Summarize(context.Background(), "T1", now, now.Add(-time.Hour), nil)
	if err == nil {
		t.Error("Summarize accepted end before start")
	}
}

func TestWorkingDaysBetween(t *testing.T) {
	mon := time.Date(2026, 10, 5, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		end  time.Time
		want int
	}{
		{mon, 1},
		{mon.AddDate(0, 0, 6), 5},
		{mon.AddDate(0, 0, 13), 10},
		{mon.AddDate(0, 0, -1), 0},
	}
	for _, tt := range tests {
		if got := WorkingDaysBetween(mon, tt.end); got != tt.want {
			t.Errorf("WorkingDaysBetween(mon, %s) = %d, want %d", tt.end.Format("Mon 02"), got, tt.want)
		}
	}
}

func TestAuthLogin(t *testing.T) {
	hash, err := HashPassword("s3cret")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	svc := NewAuthService("admin", hash, "key")
	fixed := time.Unix(1_700_000_000, 0)
	svc.now = func() time.Time { return fixed }

	tokenStr, err := svc.Login("admin", "s3cret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	claims := jwt.MapClaims{}
	_, err = jwt.ParseWithClaims(tokenStr, claims, func(*jwt.Token) (any, error) { return []byte("key"), nil },
		jwt.WithTimeFunc(func() time.Time { return fixed }))
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims["sub"] != "admin" {
		t.Errorf("sub = %v, want admin", claims["sub"])
	}
	if exp, _ := claims.GetExpirationTime(); !exp.Equal(fixed.Add(12 * time.Hour)) {
		t.Errorf("exp = %v, want %v", exp, fixed.Add(12*time.Hour))
	}
}

func TestAuthLoginRejects(t *testing.T) {
	hash, _ := HashPassword("s3cret")
	tests := []struct {
		name               string
		svc                *AuthService
		username, password string
	}{
		{"wrong password", NewAuthService("admin", hash, "k"), "admin", "nope"},
		{"wrong user", NewAuthService("admin", hash, "k"), "root", "s3cret"},
		{"no hash configured", NewAuthService("admin", "", "k"), "admin", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.svc.Login(tt.username, tt.password); !errors.Is(err, ErrInvalidCredentials) {
				t.Errorf("Login error = %v, want ErrInvalidCredentials", err)
			}
		})
	}
}

func TestHashPasswordEmpty(t *testing.T) {
	if _, err := HashPassword(""); err == nil {
		t.Error("HashPassword(\"\") succeeded")
	}
}
