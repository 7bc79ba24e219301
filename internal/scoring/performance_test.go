package scoring

import (
	"math/rand"
	"testing"

	"github.com/alexanderramin/hrpulse/internal/domain"
	"github.com/alexanderramin/hrpulse/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMapAppraisalToPerformance_Boundaries(t *testing.T) {
	tests := []struct {
		score float64
		want  domain.PerformanceCategory
	}{
		{5, domain.CategoryElitePerformer},
		{4.5, domain.CategoryElitePerformer},
		{4.49, domain.CategoryHighAchiever},
		{4, domain.CategoryHighAchiever},
		{3.5, domain.CategoryHighAchiever},
		{3.49, domain.CategorySolidContributor},
		{3, domain.CategorySolidContributor},
		{2.5, domain.CategorySolidContributor},
		{2.49, domain.CategoryNeedsIntervention},
		{2, domain.CategoryNeedsIntervention},
		{1, domain.CategoryNeedsIntervention},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, MapAppraisalToPerformance(tt.score), "score %v", tt.score)
	}
}

func categoryRank(c domain.PerformanceCategory) int {
	for i, cat := range domain.PerformanceCategories {
		if cat == c {
			return len(domain.PerformanceCategories) - i
		}
	}
	return 0
}

// TestMapAppraisalToPerformance_Monotonic property-tests that a higher score
// never yields a lower category.
func TestMapAppraisalToPerformance_Monotonic(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 500; trial++ {
		a := rng.Float64() * 6
		b := rng.Float64() * 6
		if a > b {
			a, b = b, a
		}
		assert.LessOrEqual(t,
			categoryRank(MapAppraisalToPerformance(a)),
			categoryRank(MapAppraisalToPerformance(b)),
			"trial %d: %v <= %v", trial, a, b)
	}
}

func TestPerformanceCategoryToLevel_AllIntegerScores(t *testing.T) {
	want := map[int]domain.PerformanceLevel{
		1: domain.PerformanceBelow,
		2: domain.PerformanceBelow,
		3: domain.PerformanceMeets,
		4: domain.PerformanceExceeds,
		5: domain.PerformanceExceeds,
	}
	for score, level := range want {
		got := PerformanceCategoryToLevel(MapAppraisalToPerformance(float64(score)))
		assert.Equal(t, level, got, "score %d", score)
	}
}

func TestPerformanceLevelOf_NoAppraisalDefaultsToMeets(t *testing.T) {
	e := testutil.NewTestEmployee("emp-x")
	assert.Equal(t, domain.PerformanceMeets, PerformanceLevelOf(e))
	assert.Equal(t, domain.CategorySolidContributor, PerformanceCategoryOf(e))
}

func TestPerformanceLevelOf_UsesLatestAppraisal(t *testing.T) {
	e := testutil.NewTestEmployee("emp-x",
		testutil.WithAppraisal(5),
		testutil.WithAppraisal(2),
	)
	assert.Equal(t, domain.PerformanceBelow, PerformanceLevelOf(e))
	assert.Equal(t, domain.CategoryNeedsIntervention, PerformanceCategoryOf(e))
}
