// CLAUDE:SUMMARY Confidence indicator: granular scores fold to min, label fallback, grid-shape quality measure.
package gridpipe

// ConfidenceLevel is the three-step indicator shown next to a rendered grid.
type ConfidenceLevel string

const (
	ConfidenceHigh   ConfidenceLevel = "high"
	ConfidenceMedium ConfidenceLevel = "medium"
	ConfidenceLow    ConfidenceLevel = "low"
)

// Color returns the indicator color for a level.
func (l ConfidenceLevel) Color() string {
	switch l {
	case ConfidenceHigh:
		return "green"
	case ConfidenceMedium:
		return "yellow"
	default:
		return "red"
	}
}

// Confidence is the resolved indicator for one recognized block. Score is
// the granular value the level was derived from, or -1 when the level came
// from a categorical label instead.
type Confidence struct {
	Level ConfidenceLevel `json:"level"`
	Color string          `json:"color"`
	Score float64         `json:"score"`
}

const (
	highConfidenceFloor   = 0.90
	mediumConfidenceFloor = 0.70

	// fallbackPenalty discounts shape scores for grids the regex fallback
	// produced: token peeling recovers less structure than tree parsing.
	fallbackPenalty = 0.7
)

func levelFor(score float64) ConfidenceLevel {
	switch {
	case score >= highConfidenceFloor:
		return ConfidenceHigh
	case score >= mediumConfidenceFloor:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}

func labelLevel(label string) ConfidenceLevel {
	switch ConfidenceLevel(label) {
	case ConfidenceHigh, ConfidenceMedium, ConfidenceLow:
		return ConfidenceLevel(label)
	}
	return ConfidenceLow
}

// scoreConfidence resolves the indicator for one block. Granular scores win:
// the extraction score from upstream and a parse score, which is the
// upstream one when provided and a measured grid-shape score otherwise.
// When several scores apply the weakest link decides. Blocks with no grid
// and no scores fall back to the categorical label.
func scoreConfidence(meta *BlockMeta, grid *TableGrid, usedFallback bool) Confidence {
	var scores []float64
	if meta != nil && meta.ExtractConfidence != nil {
		scores = append(scores, *meta.ExtractConfidence)
	}
	switch {
	case meta != nil && meta.ParseConfidence != nil:
		scores = append(scores, *meta.ParseConfidence)
	case grid != nil:
		s := MeasureGrid(grid).Score()
		if usedFallback {
			s *= fallbackPenalty
		}
		scores = append(scores, s)
	}

	if len(scores) > 0 {
		score := scores[0]
		for _, s := range scores[1:] {
			if s < score {
				score = s
			}
		}
		level := levelFor(score)
		return Confidence{Level: level, Color: level.Color(), Score: score}
	}

	if meta != nil && meta.Confidence != "" {
		level := labelLevel(meta.Confidence)
		return Confidence{Level: level, Color: level.Color(), Score: -1}
	}

	return Confidence{Level: ConfidenceLow, Color: ConfidenceLow.Color(), Score: 0}
}

// GridQuality captures shape metrics about a reconstructed grid.
type GridQuality struct {
	Rows             int     `json:"rows"`
	Columns          int     `json:"columns"`
	FilledRatio      float64 `json:"filled_ratio"`
	WidthConsistency float64 `json:"width_consistency"`
}

// MeasureGrid computes shape metrics over every row of the grid.
func MeasureGrid(g *TableGrid) *GridQuality {
	q := &GridQuality{Rows: g.RowCount(), Columns: g.ColCount()}
	if q.Rows == 0 || q.Columns == 0 {
		return q
	}

	widths := make(map[int]int)
	filled := 0
	total := 0
	for r := 0; r < q.Rows; r++ {
		row := g.rowAt(r)
		widths[len(row)]++
		for _, cell := range row {
			total++
			if cell != "" {
				filled++
			}
		}
	}

	modal := 0
	for _, count := range widths {
		if count > modal {
			modal = count
		}
	}
	q.WidthConsistency = float64(modal) / float64(q.Rows)
	if total > 0 {
		q.FilledRatio = float64(filled) / float64(total)
	}
	return q
}

// Score folds the shape metrics into one parse-confidence value in 0..1.
// Consistent row widths weigh more than fill: merged cells legitimately
// leave placeholders empty. Single-column grids are usually a parse that
// found no columns, so they cannot score high.
func (q *GridQuality) Score() float64 {
	if q.Rows == 0 || q.Columns == 0 {
		return 0
	}
	score := 0.6*q.WidthConsistency + 0.4*q.FilledRatio
	if q.Columns < 2 {
		score *= 0.6
	}
	return score
}
