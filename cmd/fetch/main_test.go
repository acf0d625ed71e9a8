package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"path/filepath"
	"testing"

	"hackerstories/hn/hnfake"
	"hackerstories/stories"
)

// isolate keeps the host's config, .env values and search store out of the run
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HS_CONFIG", filepath.Join(t.TempDir(), "absent.yaml"))
	t.Setenv("HS_API_BASE", "")
	t.Setenv("HS_FEED", "")
	t.Setenv("HS_STORY_LIMIT", "")
	t.Setenv("HS_STORE", "memory")
	t.Setenv("HS_LOG_LEVEL", "error")
}

func TestRunOfflineNoMatchPrintsEmptyList(t *testing.T) {
	isolate(t)
	var stdout, stderr bytes.Buffer

	code := run(context.Background(), []string{"-offline", "-search", "no story has this title"}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("exit = %d; stderr: %s", code, stderr.String())
	}

	var out map[string]json.RawMessage
	if err := json.Unmarshal(stdout.Bytes(), &out); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, stdout.String())
	}
	if string(out["data"]) != "[]" {
		t.Fatalf("data = %s; want []", out["data"])
	}
	if string(out["isLoading"]) != "false" || string(out["isError"]) != "false" {
		t.Fatalf("flags = %s / %s", out["isLoading"], out["isError"])
	}
}

func TestRunOfflineSortsVisibleStories(t *testing.T) {
	isolate(t)
	var stdout, stderr bytes.Buffer

	code := run(context.Background(), []string{"-offline", "-search", "", "-sort", "points", "-limit", "5"}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("exit = %d; stderr: %s", code, stderr.String())
	}

	var state stories.FetchState
	if err := json.Unmarshal(stdout.Bytes(), &state); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(state.Data) != 5 {
		t.Fatalf("stories = %d; want 5", len(state.Data))
	}
	for i := 1; i < len(state.Data); i++ {
		if state.Data[i-1].Score < state.Data[i].Score {
			t.Fatalf("not sorted by points: %d before %d", state.Data[i-1].Score, state.Data[i].Score)
		}
	}
}

func TestRunFailedFetchExitsNonZero(t *testing.T) {
	isolate(t)
	srv := hnfake.New()
	defer srv.Close()
	srv.FailList("topstories", http.StatusInternalServerError)
	t.Setenv("HS_API_BASE", srv.APIBase())

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"-feed", "top", "-search", ""}, &stdout, &stderr)
	if code != 1 {
		t.Fatalf("exit = %d; want 1", code)
	}

	var state stories.FetchState
	if err := json.Unmarshal(stdout.Bytes(), &state); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !state.IsError || state.IsLoading {
		t.Fatalf("state = %+v; want failure", state)
	}
	if state.Data == nil {
		t.Fatal("data must encode as [] after a failure")
	}
}

func TestRunRejectsBadFlags(t *testing.T) {
	isolate(t)
	cases := [][]string{
		{"-sort", "votes"},
		{"-nope"},
	}
	for _, args := range cases {
		var stdout, stderr bytes.Buffer
		if code := run(context.Background(), args, &stdout, &stderr); code != 2 {
			t.Fatalf("run(%v) = %d; want 2", args, code)
		}
		if stdout.Len() != 0 {
			t.Fatalf("run(%v) wrote output: %s", args, stdout.String())
		}
	}
}
