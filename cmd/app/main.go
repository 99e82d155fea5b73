package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/akyairhashvil/focusday/internal/config"
	"github.com/akyairhashvil/focusday/internal/models"
	"github.com/akyairhashvil/focusday/internal/schedule"
	"github.com/akyairhashvil/focusday/internal/speech"
	"github.com/akyairhashvil/focusday/internal/timer"
	"github.com/akyairhashvil/focusday/internal/tui"
	"github.com/akyairhashvil/focusday/internal/util"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"golang.org/x/term"
)

func main() {
	os.Exit(run(flag.CommandLine, os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run returns the process exit code so deferred cleanup happens before exit.
func run(fs *flag.FlagSet, args []string, stdin *os.File, stdout, stderr io.Writer) int {
	// 1. Configuration and logging
	cfg, err := config.Load(fs, args)
	if err != nil {
		fmt.Fprintf(stderr, "Alas, there's been an error: %v\n", err)
		return 2
	}
	closer, err := util.SetupLogging(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(stderr, "Alas, there's been an error: %v\n", err)
		return 1
	}
	defer closer.Close()
	log.Info("starting", "config", cfg.Path, "focus", cfg.Focus, "id_style", cfg.IDStyle)

	scheduler := newScheduler(cfg)

	// 2. Piped input prints the agenda instead of opening the UI
	if !term.IsTerminal(int(stdin.Fd())) {
		if err := runBatch(stdin, stdout, scheduler); err != nil {
			util.LogError("batch agenda", err)
			fmt.Fprintf(stderr, "Alas, there's been an error: %v\n", err)
			return 1
		}
		return 0
	}

	// 3. Interactive session
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	model := tui.NewModel(tui.Options{
		Context:     ctx,
		Timer:       timer.New(cfg.Durations()),
		Scheduler:   scheduler,
		Transcriber: speech.NewCommand(cfg.SpeechCommand, cfg.SpeechTimeout),
		Theme:       cfg.Theme,
		ReportDir:   cfg.ReportDir,
		ReportFont:  cfg.ReportFont,
	})
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithInput(stdin), tea.WithOutput(stdout))
	if _, err := p.Run(); err != nil {
		util.LogError("run program", err)
		fmt.Fprintf(stderr, "Alas, there's been an error: %v\n", err)
		return 1
	}
	return 0
}

func newScheduler(cfg *config.Config) *schedule.Scheduler {
	var ids schedule.IDGenerator = schedule.NewSequence("task-")
	if cfg.IDStyle == config.IDStyleUUID {
		ids = schedule.UUIDGenerator{}
	}
	return schedule.New(schedule.WithIDGenerator(ids))
}

// runBatch adds one task per input line and prints the ordered agenda.
func runBatch(r io.Reader, w io.Writer, s *schedule.Scheduler) error {
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		if _, err := s.AddTask(models.NoTime, scanner.Text()); err != nil {
			if errors.Is(err, schedule.ErrEmptyContent) {
				log.Warn("skipping line", "line", line, "err", err)
				continue
			}
			return fmt.Errorf("line %d: %w", line, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading tasks: %w", err)
	}
	for _, t := range s.Tasks() {
		if _, err := fmt.Fprintf(w, "%s  %s\n", t.Time, t.Content); err != nil {
			return err
		}
	}
	return nil
}
