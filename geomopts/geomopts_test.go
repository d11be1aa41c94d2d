package geomopts

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApply_Defaults(t *testing.T) {
	o := Apply()
	assert.Equal(t, 0, o.EventCapacityHint)
	assert.False(t, o.CollectIntersections)
}

func TestApply_Options(t *testing.T) {
	o := Apply(WithEventCapacityHint(128), WithIntersectionCollection())
	assert.Equal(t, 128, o.EventCapacityHint)
	assert.True(t, o.CollectIntersections)
}
