// Package report exports the day's plan as a PDF.
package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
	"unicode"

	"github.com/akyairhashvil/focusday/internal/models"
	"github.com/go-pdf/fpdf"
)

// Snapshot is everything a report shows.
type Snapshot struct {
	Date  time.Time
	Tasks []models.Task
	Timer models.TimerState
	// FontPath is an optional UTF-8 TrueType font; without it non-Latin
	// text cannot be rendered by the core fonts.
	FontPath string
}

const unicodeFamily = "plan"

func newDocument(fontPath string) (*fpdf.Fpdf, string) {
	pdf := fpdf.New("P", "mm", "A4", "")
	family := "Helvetica"
	if fontPath != "" {
		pdf.AddUTF8Font(unicodeFamily, "", fontPath)
		family = unicodeFamily
	}
	return pdf, family
}

// Write renders snap as a PDF into w.
func Write(w io.Writer, snap Snapshot) error {
	pdf, family := newDocument(snap.FontPath)
	pdf.AddPage()

	pdf.SetFont(family, "", 16)
	pdf.Cell(0, 10, fmt.Sprintf("Daily Plan: %s", snap.Date.Format("2006-01-02")))
	pdf.Ln(12)

	pdf.SetFont(family, "", 12)
	done := 0
	if len(snap.Tasks) == 0 {
		pdf.Cell(0, 8, "  - No tasks planned.")
		pdf.Ln(8)
	}
	for _, t := range snap.Tasks {
		box := "[ ]"
		if t.Completed {
			box = "[x]"
			done++
		}
		pdf.MultiCell(0, 8, fmt.Sprintf("%s  %s  %s", box, t.Time, t.Content), "", "", false)
	}

	pdf.Ln(6)
	pdf.SetFont(family, "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Tasks completed: %d/%d", done, len(snap.Tasks)))
	pdf.Ln(8)
	pdf.Cell(0, 8, fmt.Sprintf("Focus sessions completed: %d", snap.Timer.CompletedFocusCount))
	pdf.Ln(8)
	remaining := snap.Timer.RemainingSeconds
	pdf.Cell(0, 8, fmt.Sprintf("Timer: %s, %02d:%02d remaining", snap.Timer.Mode, remaining/60, remaining%60))
	pdf.Ln(8)

	if err := pdf.Error(); err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	return pdf.Output(w)
}

// NeedsUnicodeFont reports whether snap has task text outside Latin-1 but no
// font to render it with. The core fonts print such text as garbage.
func NeedsUnicodeFont(snap Snapshot) bool {
	if snap.FontPath != "" {
		return false
	}
	for _, t := range snap.Tasks {
		for _, r := range t.Content {
			if r > unicode.MaxLatin1 {
				return true
			}
		}
	}
	return false
}

// Export writes plan_YYYY-MM-DD.pdf into dir and returns its path.
func Export(dir string, snap Snapshot) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create report dir: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("plan_%s.pdf", snap.Date.Format("2006-01-02")))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create report: %w", err)
	}
	if err := Write(f, snap); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close report: %w", err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return path, nil
	}
	return abs, nil
}
