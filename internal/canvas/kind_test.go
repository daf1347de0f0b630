package canvas

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		id   string
		want Kind
	}{
		{"cs-developers", KindCustomerSegment},
		{"vp-core", KindValueProposition},
		{"ps-cli", KindProductService},
		{"pain-slow-builds", KindPain},
		{"gain-fast-feedback", KindGain},
		{"job-ship-features", KindJob},
		{"fit-main", KindFit},
		{"ch-web", KindChannel},
		{"cr-support", KindRelationship},
		{"rs-subscriptions", KindRevenueStream},
		{"kr-index", KindKeyResource},
		{"ka-crawling", KindKeyActivity},
		{"kp-cloud", KindPartnership},
		{"cost-infra", KindCost},
		{"pr-caching", KindPainReliever},
		{"gc-speedup", KindGainCreator},
		{"zz-what", KindUnknown},
		{"nodash", KindUnknown},
		{"-leading", KindUnknown},
		{"", KindUnknown},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, KindOf(tt.id), "id %q", tt.id)
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "pain reliever", KindPainReliever.String())
	assert.Equal(t, "unknown", KindUnknown.String())
	assert.Equal(t, "unknown", Kind(99).String())
}
