package formatter

import (
	"strings"
	"testing"

	"github.com/lucasferrand/pathex/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestRenderProgress_FillProportions(t *testing.T) {
	tests := []struct {
		pct        int
		width      int
		wantFilled int
	}{
		{0, 10, 0},
		{50, 10, 5},
		{100, 10, 10},
		{33, 10, 3},
		{99, 10, 9},
	}
	for _, tc := range tests {
		out := RenderProgress(tc.pct, tc.width)
		assert.Equal(t, tc.wantFilled, strings.Count(out, filledBlock), "pct=%d", tc.pct)
		assert.Equal(t, tc.width-tc.wantFilled, strings.Count(out, emptyBlock), "pct=%d", tc.pct)
	}
}

func TestRenderProgress_ShowsPercentage(t *testing.T) {
	assert.Contains(t, RenderProgress(50, 10), "50%")
	assert.Contains(t, RenderProgress(100, 10), "100%")
	assert.Contains(t, RenderProgress(0, 10), "0%")
}

func TestRenderProgress_ClampsOutOfRangeInput(t *testing.T) {
	assert.Contains(t, RenderProgress(-5, 10), "0%")
	assert.Contains(t, RenderProgress(250, 10), "100%")
	assert.NotContains(t, RenderProgress(250, 10), "250")
}

func TestStateIndicator(t *testing.T) {
	assert.Contains(t, StateIndicator(domain.PhaseCompleted), "DONE")
	assert.Contains(t, StateIndicator(domain.PhaseReadyToComplete), "READY")
	assert.Contains(t, StateIndicator(domain.PhaseInProgress), "ACTIVE")
	assert.Contains(t, StateIndicator(domain.PhaseNotStarted), "TODO")
}

func TestPriorityLabel(t *testing.T) {
	assert.Contains(t, PriorityLabel(domain.PriorityCritical), "CRITICAL")
	assert.Contains(t, PriorityLabel(domain.PriorityHigh), "HIGH")
	assert.Contains(t, PriorityLabel(domain.PriorityMedium), "MEDIUM")
}
