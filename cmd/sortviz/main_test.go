package main

import (
	"bytes"
	"io"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/san-kum/sortviz/internal/config"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestParseValues(t *testing.T) {
	tests := []struct {
		in      string
		want    []int
		wantErr bool
	}{
		{"5,3,1,4", []int{5, 3, 1, 4}, false},
		{" 2, 1 ,", []int{2, 1}, false},
		{"0,-3,7", []int{1, 1, 7}, false},
		{"1,x", nil, true},
	}

	for _, tt := range tests {
		got, err := parseValues(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseValues(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("parseValues(%q): %v", tt.in, err)
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("parseValues(%q): expected %v, got %v", tt.in, tt.want, got)
		}
	}
}

func TestToFloats(t *testing.T) {
	got := toFloats([]int{1, 2})
	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Errorf("unexpected %v", got)
	}
}

func TestConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sortviz.yaml")

	if _, err := execute(t, "config", "init", path, "--preset", "slow", "--children", "20", "--seed", "7"); err != nil {
		t.Fatalf("config init failed: %v", err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.SortType != "quick-sort" || cfg.Children != 20 || cfg.Seed != 7 {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if cfg.Pacing.SwapMs != 200 {
		t.Errorf("expected slow preset pacing, got %+v", cfg.Pacing)
	}
}

func TestChildrenFallsBackOnInvalidValue(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sortviz.yaml")

	if _, err := execute(t, "config", "init", path, "--children", "lots"); err != nil {
		t.Fatalf("config init failed: %v", err)
	}
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Children != 50 {
		t.Errorf("expected default children, got %d", cfg.Children)
	}
}

func TestUnknownThemeRejected(t *testing.T) {
	if _, err := execute(t, "run", "--theme", "neon"); err == nil || !strings.Contains(err.Error(), "unknown theme") {
		t.Errorf("expected unknown theme error, got %v", err)
	}
}

func TestRunWithValues(t *testing.T) {
	out, err := execute(t, "run", "bubble-sort", "--values", "5,3,1,4")
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if !strings.Contains(out, "after:  [1 3 4 5]") {
		t.Errorf("expected sorted values in output:\n%s", out)
	}
	if !strings.Contains(out, "swaps: 4") {
		t.Errorf("expected 4 swaps in output:\n%s", out)
	}
}

func TestBench(t *testing.T) {
	out, err := execute(t, "bench", "--seed", "7")
	if err != nil {
		t.Fatalf("bench failed: %v", err)
	}
	for _, name := range []string{"bubble-sort", "quick-sort"} {
		if !strings.Contains(out, name) {
			t.Errorf("expected %s in bench output", name)
		}
	}
}
