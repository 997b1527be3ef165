package measure

// TextImageRule holds the text-with-image centering thresholds.
type TextImageRule struct {
	CenterMaxLines        int `yaml:"center_max_lines"`
	CompactCenterMaxLines int `yaml:"compact_center_max_lines"`
}

// PictureRule holds a picture card centering threshold, as a multiple of the
// line height.
type PictureRule struct {
	CenterHeightFactor float64 `yaml:"center_height_factor"`
}

// Thresholds is the per-kind threshold table. Each kind is configured on its
// own; the values are not derived from one another. Text cards have no
// threshold: a single-line variant always means exactly one line.
type Thresholds struct {
	TextImage       TextImageRule `yaml:"text_image"`
	Picture         PictureRule   `yaml:"picture"`
	PictureReversed PictureRule   `yaml:"picture_reversed"`
}

// DefaultThresholds returns the stock threshold table.
func DefaultThresholds() Thresholds {
	return Thresholds{
		TextImage:       TextImageRule{CenterMaxLines: 2, CompactCenterMaxLines: 3},
		Picture:         PictureRule{CenterHeightFactor: 2.5},
		PictureReversed: PictureRule{CenterHeightFactor: 2.5},
	}
}

// WithDefaults fills unset (zero or negative) entries from DefaultThresholds.
func (t Thresholds) WithDefaults() Thresholds {
	def := DefaultThresholds()
	if t.TextImage.CenterMaxLines <= 0 {
		t.TextImage.CenterMaxLines = def.TextImage.CenterMaxLines
	}
	if t.TextImage.CompactCenterMaxLines <= 0 {
		t.TextImage.CompactCenterMaxLines = def.TextImage.CompactCenterMaxLines
	}
	if t.Picture.CenterHeightFactor <= 0 {
		t.Picture.CenterHeightFactor = def.Picture.CenterHeightFactor
	}
	if t.PictureReversed.CenterHeightFactor <= 0 {
		t.PictureReversed.CenterHeightFactor = def.PictureReversed.CenterHeightFactor
	}
	return t
}

func (t Thresholds) pictureRule(k CardKind) PictureRule {
	if k == KindPictureReversed {
		return t.PictureReversed
	}
	return t.Picture
}
