package pipeline

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"
)

// Reporter renders run progress for an operator.
type Reporter interface {
	Started(mode Mode, total int)
	UnitStarted(step, total int, u Seeder)
	UnitFinished(step, total int, r Result)
	UnitFailed(step, total int, u Seeder, err error)
	Finished(s *Summary)
}

// NopReporter discards all progress.
type NopReporter struct{}

func (NopReporter) Started(Mode, int)                  {}
func (NopReporter) UnitStarted(int, int, Seeder)       {}
func (NopReporter) UnitFinished(int, int, Result)      {}
func (NopReporter) UnitFailed(int, int, Seeder, error) {}
func (NopReporter) Finished(*Summary)                  {}

// TextReporter writes human-readable progress and a summary table.
type TextReporter struct {
	w io.Writer
}

// NewTextReporter creates a TextReporter writing to w.
func NewTextReporter(w io.Writer) *TextReporter {
	return &TextReporter{w: w}
}

func (t *TextReporter) Started(mode Mode, total int) {
	if mode == ModeSingle {
		fmt.Fprintf(t.w, "🌱 Seeding a single unit\n\n")
		return
	}
	fmt.Fprintf(t.w, "🌱 Seeding %d units\n\n", total)
}

func (t *TextReporter) UnitStarted(step, total int, u Seeder) {
	fmt.Fprintf(t.w, "[%d/%d] %s\n", step, total, u.Label())
}

func (t *TextReporter) UnitFinished(_, _ int, r Result) {
	if r.Skipped > 0 {
		fmt.Fprintf(t.w, "      ✅ %d created, %d skipped (%s)\n", r.Created, r.Skipped, round(r.Duration))
		return
	}
	fmt.Fprintf(t.w, "      ✅ %d created (%s)\n", r.Created, round(r.Duration))
}

func (t *TextReporter) UnitFailed(_, _ int, u Seeder, err error) {
	fmt.Fprintf(t.w, "      ❌ %s failed: %v\n", u.Name(), err)
}

func (t *TextReporter) Finished(s *Summary) {
	fmt.Fprintln(t.w)
	if len(s.Results) > 0 {
		fmt.Fprintln(t.w, "📊 Summary")
		tw := tabwriter.NewWriter(t.w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "UNIT\tCOLLECTION\tCREATED\tSKIPPED\tTIME")
		for _, r := range s.Results {
			fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%s\n", r.Unit, r.Collection, r.Created, r.Skipped, round(r.Duration))
		}
		fmt.Fprintf(tw, "total\t\t%d\t%d\t\n", s.Created(), s.Skipped())
		_ = tw.Flush()
		fmt.Fprintln(t.w)
	}

	if !s.OK() {
		if s.Failed != "" {
			fmt.Fprintf(t.w, "💥 Seeding failed at %s after %.2fs: %v\n", s.Failed, s.Duration.Seconds(), s.Err)
		} else {
			fmt.Fprintf(t.w, "💥 Seeding failed after %.2fs: %v\n", s.Duration.Seconds(), s.Err)
		}
		if skipped := len(s.Planned) - len(s.Results) - 1; s.Failed != "" && skipped > 0 {
			fmt.Fprintf(t.w, "   %d later unit(s) not run\n", skipped)
		}
		return
	}
	fmt.Fprintf(t.w, "🎉 Seeding completed in %.2fs\n", s.Duration.Seconds())
}

func round(d time.Duration) time.Duration {
	return d.Round(time.Millisecond)
}
