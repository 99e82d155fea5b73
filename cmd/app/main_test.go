package main

import (
	"bytes"
	"flag"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/akyairhashvil/focusday/internal/config"
	"github.com/akyairhashvil/focusday/internal/models"
	"github.com/akyairhashvil/focusday/internal/schedule"
	"github.com/charmbracelet/log"
)

func TestRunBatchPrintsOrderedAgenda(t *testing.T) {
	in := strings.NewReader("买菜\n14:00 深度工作\n\n   \n6点半 晨跑\n")
	var out bytes.Buffer
	if err := runBatch(in, &out, schedule.New()); err != nil {
		t.Fatalf("runBatch failed: %v", err)
	}
	want := "06:30  晨跑\n14:00  深度工作\n--:--  买菜\n"
	if out.String() != want {
		t.Fatalf("agenda = %q, want %q", out.String(), want)
	}
}

func TestRunBatchEmptyInput(t *testing.T) {
	var out bytes.Buffer
	if err := runBatch(strings.NewReader(""), &out, schedule.New()); err != nil {
		t.Fatalf("runBatch failed: %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("expected no output, got %q", out.String())
	}
}

func TestNewSchedulerIDStyle(t *testing.T) {
	cfg := config.Default()
	task, err := newScheduler(cfg).AddTask(models.NoTime, "x")
	if err != nil {
		t.Fatalf("AddTask failed: %v", err)
	}
	if task.ID != "task-1" {
		t.Fatalf("expected sequence id, got %q", task.ID)
	}

	cfg.IDStyle = config.IDStyleUUID
	task, err = newScheduler(cfg).AddTask(models.NoTime, "y")
	if err != nil {
		t.Fatalf("AddTask failed: %v", err)
	}
	if len(task.ID) != 36 || strings.HasPrefix(task.ID, "task-") {
		t.Fatalf("expected uuid id, got %q", task.ID)
	}
}

func setupRun(t *testing.T, input string) (*os.File, string) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	t.Setenv("XDG_DOCUMENTS_DIR", filepath.Join(dir, "docs"))
	t.Setenv(config.EnvPrefix+"CONFIG", "")
	t.Cleanup(func() { log.SetDefault(log.New(io.Discard)) })

	inPath := filepath.Join(dir, "tasks.txt")
	if err := os.WriteFile(inPath, []byte(input), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	in, err := os.Open(inPath)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { in.Close() })
	return in, filepath.Join(dir, "focusday.log")
}

func TestRunBatchFromPipe(t *testing.T) {
	in, logPath := setupRun(t, "9:00 standup\n")
	var out, errOut bytes.Buffer
	code := run(flag.NewFlagSet("test", flag.ContinueOnError), []string{"-log-file", logPath}, in, &out, &errOut)
	if code != 0 {
		t.Fatalf("run exit code = %d, stderr = %q", code, errOut.String())
	}
	if out.String() != "09:00  standup\n" {
		t.Fatalf("agenda = %q", out.String())
	}
	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if !strings.Contains(string(data), "starting") {
		t.Fatalf("expected startup log line, got %q", data)
	}
}

func TestRunReportsErrorsAsExitCodes(t *testing.T) {
	in, logPath := setupRun(t, "")
	var out, errOut bytes.Buffer
	missing := filepath.Join(t.TempDir(), "missing.toml")
	code := run(flag.NewFlagSet("test", flag.ContinueOnError), []string{"-config", missing}, in, &out, &errOut)
	if code != 2 || !strings.Contains(errOut.String(), "missing.toml") {
		t.Fatalf("bad config: code = %d, stderr = %q", code, errOut.String())
	}

	in.Close()
	errOut.Reset()
	code = run(flag.NewFlagSet("test", flag.ContinueOnError), []string{"-log-file", logPath}, in, &out, &errOut)
	if code != 1 || errOut.Len() == 0 {
		t.Fatalf("unreadable input: code = %d, stderr = %q", code, errOut.String())
	}
	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if !strings.Contains(string(data), "batch agenda") {
		t.Fatalf("expected batch error in log, got %q", data)
	}
}
