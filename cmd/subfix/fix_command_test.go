package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testFixtureSRT = `1
00:00:00,000 --> 00:00:01,000
hello , world

2
00:00:00,800 --> 00:00:02,000
second line.
`

func writeTestConfig(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "config.toml")
	content := "[paths]\njournal_path = \"" + filepath.Join(dir, "journal.db") + "\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return buf.String(), err
}

func TestFixCommandRewritesFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeTestConfig(t, dir)
	input := filepath.Join(dir, "episode.srt")
	if err := os.WriteFile(input, []byte(testFixtureSRT), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}

	output, err := runCommand(t, "--config", cfgPath, "fix", input)
	if err != nil {
		t.Fatalf("fix failed: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Updated "+input) {
		t.Fatalf("missing update notice:\n%s", output)
	}
	if !strings.Contains(output, "Timing adjustments: 1") {
		t.Fatalf("missing stats:\n%s", output)
	}

	fixed, err := os.ReadFile(input)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.Contains(string(fixed), "Hello, world") {
		t.Fatalf("text not normalized:\n%s", fixed)
	}
	if !strings.Contains(string(fixed), "00:00:01,000 --> 00:00:02,000") {
		t.Fatalf("overlap not repaired:\n%s", fixed)
	}
}

func TestFixCommandDryRun(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeTestConfig(t, dir)
	input := filepath.Join(dir, "episode.srt")
	if err := os.WriteFile(input, []byte(testFixtureSRT), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}

	output, err := runCommand(t, "--config", cfgPath, "fix", "--dry-run", input)
	if err != nil {
		t.Fatalf("fix failed: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Dry run") {
		t.Fatalf("missing dry run notice:\n%s", output)
	}
	unchanged, err := os.ReadFile(input)
	if err != nil {
		t.Fatalf("read input: %v", err)
	}
	if string(unchanged) != testFixtureSRT {
		t.Fatal("dry run modified the input file")
	}
}

func TestFixCommandRejectsUnknownFormat(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeTestConfig(t, dir)
	input := filepath.Join(dir, "episode.srt")
	if err := os.WriteFile(input, []byte(testFixtureSRT), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}

	_, err := runCommand(t, "--config", cfgPath, "fix", "--output-format", "ass", input)
	if err == nil || !strings.Contains(err.Error(), "unknown output format") {
		t.Fatalf("expected format error, got %v", err)
	}
}

func TestFixCommandBatchDirectory(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeTestConfig(t, dir)
	media := filepath.Join(dir, "media")
	if err := os.Mkdir(media, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	for _, name := range []string{"e01.srt", "e02.srt"} {
		if err := os.WriteFile(filepath.Join(media, name), []byte(testFixtureSRT), 0o644); err != nil {
			t.Fatalf("write input: %v", err)
		}
	}

	output, err := runCommand(t, "--config", cfgPath, "fix", media)
	if err != nil {
		t.Fatalf("batch fix failed: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Processed 2 files (0 failed)") {
		t.Fatalf("unexpected batch summary:\n%s", output)
	}

	listing, err := runCommand(t, "--config", cfgPath, "journal", "list")
	if err != nil {
		t.Fatalf("journal list failed: %v\n%s", err, listing)
	}
	if !strings.Contains(listing, "e01.srt") || !strings.Contains(listing, "completed") {
		t.Fatalf("journal missing batch entries:\n%s", listing)
	}
}

func TestFixCommandBatchRejectsOutputFlag(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeTestConfig(t, dir)
	media := filepath.Join(dir, "media")
	if err := os.Mkdir(media, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(media, "e01.srt"), []byte(testFixtureSRT), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}

	_, err := runCommand(t, "--config", cfgPath, "fix", "-o", filepath.Join(dir, "out.srt"), media)
	if err == nil || !strings.Contains(err.Error(), "directory input") {
		t.Fatalf("expected directory error, got %v", err)
	}
}
