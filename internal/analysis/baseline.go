package analysis

import (
	"math"

	"github.com/jstittsworth/ninecat-analyzer/internal/models"
)

// CategoryMoments holds the league mean and sample standard deviation for one
// category.
type CategoryMoments struct {
	Mean float64 `json:"mean"`
	Std  float64 `json:"std"`
}

// Baseline is the league-wide reference frame for z-score normalization:
// moments for each of the nine categories, computed over one snapshot of
// player stats. A Baseline is immutable after construction and is passed
// explicitly into every normalization call; when the input population
// changes it is rebuilt wholesale.
type Baseline struct {
	moments map[string]CategoryMoments
	size    int
}

// BuildBaseline computes per-category moments over all records with at least
// one game played. It returns a ValidationError when records is empty or no
// record has games played.
func BuildBaseline(records []*models.PlayerStats) (*Baseline, error) {
	if len(records) == 0 {
		return nil, validationErrorf("cannot build baseline from an empty player population")
	}

	eligible := make([]*models.PlayerStats, 0, len(records))
	for _, s := range records {
		if s != nil && s.GamesPlayed > 0 {
			eligible = append(eligible, s)
		}
	}
	if len(eligible) == 0 {
		return nil, validationErrorf("no player in population has games played")
	}

	moments := make(map[string]CategoryMoments, len(models.Categories))
	values := make([]float64, len(eligible))
	for _, cat := range models.Categories {
		for i, s := range eligible {
			v, _ := s.CategoryValue(cat)
			values[i] = v
		}
		moments[cat] = momentsOf(values)
	}

	return &Baseline{moments: moments, size: len(eligible)}, nil
}

// momentsOf computes the mean and sample standard deviation. A single-element
// population has no variance and gets std 0.
func momentsOf(values []float64) CategoryMoments {
	n := float64(len(values))

	var sum float64
	for _, v := range values {
		sum += v
	}
	mean := sum / n

	if len(values) < 2 {
		return CategoryMoments{Mean: mean}
	}

	var sq float64
	for _, v := range values {
		d := v - mean
		sq += d * d
	}
	return CategoryMoments{Mean: mean, Std: math.Sqrt(sq / (n - 1))}
}

// Size returns the number of records the baseline was computed over.
func (b *Baseline) Size() int {
	return b.size
}

// Moments returns the moments for a category, or a ConfigError when the
// category is not part of the baseline.
func (b *Baseline) Moments(category string) (CategoryMoments, error) {
	m, ok := b.moments[category]
	if !ok {
		return CategoryMoments{}, &ConfigError{Category: category}
	}
	return m, nil
}

// LowerIsBetter reports whether a lower raw value is the favorable direction
// for a category. This is the single source of truth for category direction;
// normalization, matchup comparison, and trade impact all derive their sign
// handling from it.
func LowerIsBetter(category string) bool {
	return category == models.CategoryTurnovers
}

// Normalize converts a raw category value into a z-score against the
// baseline: (value - mean) / std. A zero standard deviation yields 0. For
// turnover-style categories the sign is inverted here, so a below-average
// turnover count comes back positive. Weights layered on top of Normalize
// must therefore stay positive; the inversion happens exactly once.
func (b *Baseline) Normalize(value float64, category string) (float64, error) {
	m, err := b.Moments(category)
	if err != nil {
		return 0, err
	}

	if m.Std == 0 {
		return 0, nil
	}

	z := (value - m.Mean) / m.Std
	if LowerIsBetter(category) {
		z = -z
	}
	return z, nil
}

// DefaultWeights returns the default category weights, all 1.0. Normalize
// already inverts turnover-style categories, so no weight carries a sign.
func DefaultWeights() map[string]float64 {
	weights := make(map[string]float64, len(models.Categories))
	for _, cat := range models.Categories {
		weights[cat] = 1.0
	}
	return weights
}

// PlayerZScores returns the player's z-score in every category.
func PlayerZScores(stats *models.PlayerStats, baseline *Baseline) (map[string]float64, error) {
	scores := make(map[string]float64, len(models.Categories))
	for _, cat := range models.Categories {
		value, _ := stats.CategoryValue(cat)
		z, err := baseline.Normalize(value, cat)
		if err != nil {
			return nil, err
		}
		scores[cat] = z
	}
	return scores, nil
}

// TotalValue is the weighted sum of a player's z-scores across all nine
// categories. A nil weights map uses DefaultWeights.
func TotalValue(stats *models.PlayerStats, baseline *Baseline, weights map[string]float64) (float64, error) {
	if weights == nil {
		weights = DefaultWeights()
	}

	scores, err := PlayerZScores(stats, baseline)
	if err != nil {
		return 0, err
	}

	var total float64
	for _, cat := range models.Categories {
		w, ok := weights[cat]
		if !ok {
			w = 1.0
		}
		total += w * scores[cat]
	}
	return total, nil
}
