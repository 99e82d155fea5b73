// Package speech is the boundary to an optional speech-to-text capability.
package speech

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

var (
	ErrUnavailable = errors.New("speech input unavailable")
	ErrNoSpeech    = errors.New("no speech recognised")
)

// Transcriber turns one utterance into text.
//
//go:generate mockgen -source=speech.go -destination=../tui/mock_transcriber_test.go -package=tui
type Transcriber interface {
	Available() bool
	Transcribe(ctx context.Context) (string, error)
}

// Unsupported is used when no transcriber is configured.
type Unsupported struct{}

func (Unsupported) Available() bool { return false }

func (Unsupported) Transcribe(context.Context) (string, error) {
	return "", ErrUnavailable
}

// Command runs an external speech-to-text program that records one utterance
// and prints the transcript on stdout.
type Command struct {
	Argv    []string
	Timeout time.Duration
}

// NewCommand splits a command line on whitespace. A blank line yields
// Unsupported.
func NewCommand(line string, timeout time.Duration) Transcriber {
	argv := strings.Fields(line)
	if len(argv) == 0 {
		return Unsupported{}
	}
	return &Command{Argv: argv, Timeout: timeout}
}

func (c *Command) Available() bool {
	if len(c.Argv) == 0 {
		return false
	}
	_, err := exec.LookPath(c.Argv[0])
	return err == nil
}

func (c *Command) Transcribe(ctx context.Context) (string, error) {
	if !c.Available() {
		return "", ErrUnavailable
	}
	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, c.Argv[0], c.Argv[1:]...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	start := time.Now()
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return "", fmt.Errorf("run %s: %w: %s", c.Argv[0], err, msg)
		}
		return "", fmt.Errorf("run %s: %w", c.Argv[0], err)
	}
	transcript := strings.TrimSpace(stdout.String())
	log.Debug("transcription finished", "cmd", c.Argv[0], "took", time.Since(start), "chars", len(transcript))
	if transcript == "" {
		return "", ErrNoSpeech
	}
	return transcript, nil
}
