package intelligence

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/hrpulse/internal/domain"
	"github.com/alexanderramin/hrpulse/internal/llm"
	"github.com/alexanderramin/hrpulse/internal/scoring"
	"github.com/alexanderramin/hrpulse/internal/testutil"
)

var fixedNow = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func gapEmployee() *domain.Employee {
	cloud := testutil.NewTestCompetency("Cloud Architecture", domain.CategoryTechnical, 5, 2)
	comms := testutil.NewTestCompetency("Communication", domain.CategoryCore, 4, 3)
	return testutil.NewTestEmployee("emp-7",
		testutil.WithName("Maya", "Chen"),
		testutil.WithAppraisal(3, cloud, comms),
		testutil.WithTrack(domain.StatusInProgress, 40),
		testutil.WithGapAnalysis(domain.PriorityHigh, cloud, comms),
	)
}

func TestGapRationale_PromptCarriesProfile(t *testing.T) {
	client := &mockLLMClient{response: "Maya needs cloud depth."}
	svc := NewRationaleService(Deps{Client: client, Now: fixedClock})

	out := svc.GapRationale(context.Background(), gapEmployee())

	assert.Equal(t, SourceAI, out.Source)
	assert.Equal(t, "Maya needs cloud depth.", out.Value)
	require.Len(t, client.requests, 1)
	req := client.requests[0]
	assert.Equal(t, llm.TaskGapRationale, req.Task)
	assert.Contains(t, req.UserPrompt, "- Name: Maya Chen")
	assert.Contains(t, req.UserPrompt, "- Years of Tenure: 2")
	assert.Contains(t, req.UserPrompt, "- Cloud Architecture: Current 2.0/5, Required 5/5 (Gap: 3.0)")
	assert.Contains(t, req.UserPrompt, "Training Progress: 40%")
	assert.Contains(t, req.UserPrompt, "Average Competency Score: 2.5/5")
	assert.Contains(t, req.UserPrompt, "Gap Priority: High")
	assert.Contains(t, req.UserPrompt, "Critical Gaps: 1")
}

func TestGapRationale_FallbackUsesStoredRationale(t *testing.T) {
	svc := NewRationaleService(Deps{Client: &mockLLMClient{err: llm.ErrTimeout}})

	out := svc.GapRationale(context.Background(), gapEmployee())

	assert.Equal(t, SourceFallback, out.Source)
	assert.Equal(t, "stored rationale", out.Value)
}

func TestGapRationale_NoGapAnalysis(t *testing.T) {
	client := &mockLLMClient{response: "unused"}
	svc := NewRationaleService(Deps{Client: client})

	out := svc.GapRationale(context.Background(), testutil.NewTestEmployee("emp-8"))

	assert.Equal(t, SourceFallback, out.Source)
	assert.ErrorIs(t, out.Err, ErrMissingInput)
	assert.Equal(t, NoGapRationale, out.Value)
	assert.Empty(t, client.requests)
}

func TestSuccessionRationale(t *testing.T) {
	pos := scoring.NineBoxPosition{
		Performance:    domain.PerformanceExceeds,
		Potential:      domain.PotentialMedium,
		PotentialScore: 62.4,
	}

	t.Run("fallback", func(t *testing.T) {
		svc := NewRationaleService(Deps{})
		out := svc.SuccessionRationale(context.Background(), gapEmployee(), pos)
		assert.Equal(t, "Positioned as Exceeds performance with Medium potential (62% score).", out.Value)
	})

	t.Run("model", func(t *testing.T) {
		client := &mockLLMClient{response: "Ready for a stretch role."}
		svc := NewRationaleService(Deps{Client: client})
		out := svc.SuccessionRationale(context.Background(), gapEmployee(), pos)

		assert.Equal(t, "Ready for a stretch role.", out.Value)
		require.Len(t, client.requests, 1)
		assert.Equal(t, llm.TaskSuccession, client.requests[0].Task)
		assert.Contains(t, client.requests[0].UserPrompt, "Latest Appraisal: 3/5")
		assert.Contains(t, client.requests[0].UserPrompt, "Potential Score: 62%")
	})
}

func TestDashboardInsight(t *testing.T) {
	m := Metric{Name: "Average Performance", Value: "3.6/5", Trend: domain.TrendUp, Change: 2.5}

	t.Run("fallback", func(t *testing.T) {
		svc := NewRationaleService(Deps{})
		out := svc.DashboardInsight(context.Background(), m, 10)
		assert.Equal(t, "Metric Average Performance shows up trend with 2.5% change. Analysis requires API configuration.", out.Value)
	})

	t.Run("model", func(t *testing.T) {
		client := &mockLLMClient{response: "Performance is climbing."}
		svc := NewRationaleService(Deps{Client: client})
		out := svc.DashboardInsight(context.Background(), m, 10)

		assert.Equal(t, SourceAI, out.Source)
		prompt := client.requests[0].UserPrompt
		assert.Contains(t, prompt, "Trend: Improving")
		assert.Contains(t, prompt, "Change: 2.5% increase")
		assert.Contains(t, prompt, "Total Employees: 10")
	})

	t.Run("stable without population", func(t *testing.T) {
		client := &mockLLMClient{response: "ok"}
		svc := NewRationaleService(Deps{Client: client})
		svc.DashboardInsight(context.Background(), Metric{Name: "Headcount", Value: "0", Trend: domain.TrendStable}, 0)

		prompt := client.requests[0].UserPrompt
		assert.Contains(t, prompt, "Trend: Stable")
		assert.Contains(t, prompt, "Change: 0%\n")
		assert.Contains(t, prompt, "Total Employees: N/A")
	})
}
