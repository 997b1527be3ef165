package measure

import (
	"github.com/dkoosis/cardfit/internal/debug"
	"github.com/dkoosis/cardfit/pkg/textlayout"
)

// Input is everything one pipeline run reads.
type Input struct {
	Kind       CardKind
	Compact    bool
	Box        *textlayout.Box
	Badge      int     // zero hides the badge
	BadgeWidth float64 // rendered badge width in units; zero when the badge is absent
}

// Pipeline runs probe, shadow detection and classification.
type Pipeline struct {
	Detector   *ShadowDetector
	Thresholds Thresholds
}

// NewPipeline returns a pipeline with its own shadow detector.
func NewPipeline(margin float64, t Thresholds) *Pipeline {
	return &Pipeline{Detector: NewShadowDetector(margin), Thresholds: t.WithDefaults()}
}

// Run measures in.Box and classifies it. ok is false when the box is not laid
// out yet; callers keep whatever variant they already had.
func (p *Pipeline) Run(in Input) (Result, Variant, bool) {
	if in.Box == nil || !in.Box.LaidOut() {
		debug.Logf("pipeline", "kind=%s skipped: container not laid out", in.Kind)
		return Result{}, DefaultVariant, false
	}

	pr := Probe(in.Box)
	r := Result{LineCount: pr.LineCount, LineHeight: pr.LineHeight, Height: pr.Height}
	if in.Badge != 0 && in.Kind.DetectsOverflow() {
		r.Overflow = p.Detector.Detect(in.Box, in.BadgeWidth)
	}

	v := Classify(r, in.Kind, in.Compact, p.Thresholds)
	debug.Logf("pipeline", "kind=%s lines=%d lh=%.1f overflow=%t variant=%s", in.Kind, r.LineCount, r.LineHeight, r.Overflow, v)
	return r, v, true
}
