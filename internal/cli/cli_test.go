package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"testing"
)

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func mustRunJSON(t *testing.T, args ...string) map[string]any {
	t.Helper()
	stdout, stderr, err := runCLI(t, args...)
	if err != nil {
		t.Fatalf("command failed: notes %v\nerr: %v\nstderr:\n%s", args, err, stderr)
	}
	var env map[string]any
	if err := json.Unmarshal([]byte(stdout), &env); err != nil {
		t.Fatalf("unmarshal stdout: %v\nstdout:\n%s", err, stdout)
	}
	if _, ok := env["data"]; !ok {
		t.Fatalf("expected JSON envelope with data key; got:\n%s", stdout)
	}
	return env
}

func TestCLISmoke(t *testing.T) {
	dir := t.TempDir()

	g := mustRunJSON(t, "--dir", dir, "groups", "create", "--name", "Work", "--color", "blue")
	groupID, _ := g["data"].(map[string]any)["id"].(string)
	if groupID == "" {
		t.Fatalf("groups create returned no id: %#v", g["data"])
	}

	n := mustRunJSON(t, "--dir", dir, "notes", "create", "--group", groupID)
	idNum, ok := n["data"].(map[string]any)["id"].(float64)
	if !ok || idNum == 0 {
		t.Fatalf("notes create returned no id: %#v", n["data"])
	}
	noteID := fmt.Sprintf("%.0f", idNum)

	mustRunJSON(t, "--dir", dir, "notes", "set", noteID, "--title", "Plan", "--content", "<div>Milk</div>")
	shown := mustRunJSON(t, "--dir", dir, "notes", "show", noteID)
	if title := shown["data"].(map[string]any)["title"]; title != "Plan" {
		t.Fatalf("title = %v", title)
	}

	mustRunJSON(t, "--dir", dir, "notes", "color", noteID, "green")

	listed := mustRunJSON(t, "--dir", dir, "notes", "list", "--group", groupID)
	if xs, ok := listed["data"].([]any); !ok || len(xs) != 1 {
		t.Fatalf("list --group = %#v", listed["data"])
	}

	// Delete the group: its note must land in the default bucket.
	del := mustRunJSON(t, "--dir", dir, "groups", "delete", groupID)
	if reassigned := del["data"].(map[string]any)["reassigned"]; reassigned != float64(1) {
		t.Fatalf("reassigned = %v", reassigned)
	}
	shown = mustRunJSON(t, "--dir", dir, "notes", "show", noteID)
	if gid := shown["data"].(map[string]any)["groupId"]; gid != "default" {
		t.Fatalf("groupId = %v", gid)
	}

	mustRunJSON(t, "--dir", dir, "notes", "delete", noteID)
}

func TestCLIDefaultGroupProtected(t *testing.T) {
	dir := t.TempDir()

	if _, _, err := runCLI(t, "--dir", dir, "groups", "delete", "default"); err == nil {
		t.Fatalf("expected error deleting the default bucket")
	}
	if _, _, err := runCLI(t, "--dir", dir, "groups", "rename", "default", "--name", "X"); err == nil {
		t.Fatalf("expected error renaming the default bucket")
	}
}

func TestCLIPrefs(t *testing.T) {
	dir := t.TempDir()

	got := mustRunJSON(t, "--dir", dir, "prefs", "get", "language")
	if v := got["data"].(map[string]any)["language"]; v != "en" {
		t.Fatalf("default language = %v", v)
	}
	mustRunJSON(t, "--dir", dir, "prefs", "set", "language", "ru")
	got = mustRunJSON(t, "--dir", dir, "prefs", "get", "language")
	if v := got["data"].(map[string]any)["language"]; v != "ru" {
		t.Fatalf("language = %v", v)
	}

	if _, _, err := runCLI(t, "--dir", dir, "prefs", "set", "language", "xx"); err == nil {
		t.Fatalf("expected bad value to be rejected")
	}
	if _, _, err := runCLI(t, "--dir", dir, "prefs", "get", "nope"); err == nil {
		t.Fatalf("expected unknown key to be rejected")
	}
}
