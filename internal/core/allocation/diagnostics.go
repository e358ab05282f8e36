package allocation

import "github.com/velstra/spendboard/internal/core/domain"

// Diagnostics collects records the engine skipped and why. Skipping is the
// engine's deliberate response to malformed input; this channel exists so
// callers can observe the omissions without changing that behavior.
// A nil *Diagnostics is valid and discards everything.
type Diagnostics struct {
	skipped []domain.SkippedRecord
}

// Skip records one omitted record.
func (d *Diagnostics) Skip(kind, id, reason string) {
	if d == nil {
		return
	}
	d.skipped = append(d.skipped, domain.SkippedRecord{Kind: kind, ID: id, Reason: reason})
}

// Records returns everything collected so far.
func (d *Diagnostics) Records() []domain.SkippedRecord {
	if d == nil {
		return nil
	}
	return d.skipped
}
