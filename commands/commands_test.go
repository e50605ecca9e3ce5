package commands

import (
	"bytes"
	"strings"
	"testing"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("TERMSOCIAL_LOG", "")
	t.Setenv("TERMSOCIAL_SEED", "42")
	t.Setenv("TERMSOCIAL_LOCALE", "es-AR")

	var out bytes.Buffer
	cmd := New()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestFeedPrintsSeedPosts(t *testing.T) {
	out, err := run(t, "feed")
	if err != nil {
		t.Fatalf("feed: %v", err)
	}
	for _, want := range []string{"AUTOR", "Ariel Faivisovich ✓", "Coder Jane", "¿Alguien conoce"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
	if rows := strings.Count(strings.TrimSpace(out), "\n"); rows != 2 {
		t.Fatalf("expected header plus 2 rows, got %d:\n%s", rows+1, out)
	}
}

func TestFeedRefreshAddsRows(t *testing.T) {
	out, err := run(t, "feed", "--refresh", "2")
	if err != nil {
		t.Fatalf("feed: %v", err)
	}
	rows := strings.Count(strings.TrimSpace(out), "\n")
	if rows < 2+2 || rows > 2+6 {
		t.Fatalf("expected 4..8 rows after two refreshes, got %d:\n%s", rows, out)
	}
	// Seed posts stay at the bottom.
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if !strings.Contains(lines[len(lines)-1], "Coder Jane") {
		t.Fatalf("expected oldest seed post last:\n%s", out)
	}
}

func TestFeedRejectsNegativeRefresh(t *testing.T) {
	if _, err := run(t, "feed", "-r", "-1"); err == nil {
		t.Fatalf("expected error for negative refresh count")
	}
}

func TestFeedRejectsBadConfig(t *testing.T) {
	t.Setenv("TERMSOCIAL_PUBLISH_DELAY", "-1s")
	var out bytes.Buffer
	cmd := New()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"feed"})
	if err := cmd.Execute(); err == nil || !strings.Contains(err.Error(), "config") {
		t.Fatalf("expected config error, got %v", err)
	}
}

func TestRootRejectsArgs(t *testing.T) {
	if _, err := run(t, "bogus"); err == nil {
		t.Fatalf("expected error for unknown argument")
	}
}

func TestVersionShort(t *testing.T) {
	out, err := run(t, "version", "--short")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if strings.TrimSpace(out) == "" {
		t.Fatalf("expected a version string")
	}
}

func TestResolveVersionInfo(t *testing.T) {
	tests := []struct {
		name       string
		in         [3]string
		modVersion string
		settings   map[string]string
		want       [3]string
	}{
		{
			name:       "placeholders from build info",
			in:         [3]string{"dev", "none", "unknown"},
			modVersion: "v1.2.3",
			settings:   map[string]string{"vcs.revision": "0123456789abcdef", "vcs.time": "2025-07-01T10:00:00Z"},
			want:       [3]string{"v1.2.3", "0123456789ab", "2025-07-01T10:00:00Z"},
		},
		{
			name:       "ldflags win",
			in:         [3]string{"v2.0.0", "abc", "today"},
			modVersion: "v1.2.3",
			settings:   map[string]string{"vcs.revision": "ffff"},
			want:       [3]string{"v2.0.0", "abc", "today"},
		},
		{
			name:       "devel build keeps dev",
			in:         [3]string{"dev", "none", "unknown"},
			modVersion: "(devel)",
			want:       [3]string{"dev", "none", "unknown"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v, c, d := resolveVersionInfo(tc.in[0], tc.in[1], tc.in[2], tc.modVersion, tc.settings)
			if got := [3]string{v, c, d}; got != tc.want {
				t.Fatalf("got %v want %v", got, tc.want)
			}
		})
	}
}
