package geom_test

import (
	"math"
	"testing"

	"github.com/plus3/oneshot/geom"
	"github.com/stretchr/testify/assert"
)

func TestVec2(t *testing.T) {
	v := geom.V(3, 4)
	assert.Equal(t, float32(5), v.Len())
	assert.Equal(t, geom.V(4, 6), v.Add(geom.V(1, 2)))
	assert.Equal(t, geom.V(2, 2), v.Sub(geom.V(1, 2)))
	assert.Equal(t, geom.V(6, 8), v.Scale(2))

	n := v.Normalize()
	assert.InDelta(t, 0.6, n.X, 1e-6)
	assert.InDelta(t, 0.8, n.Y, 1e-6)

	assert.Equal(t, geom.Vec2{}, geom.Vec2{}.Normalize())
}

func TestCircleCircle(t *testing.T) {
	assert.True(t, geom.CircleCircle(geom.V(0, 0), 5, geom.V(9, 0), 5))
	assert.False(t, geom.CircleCircle(geom.V(0, 0), 5, geom.V(10, 0), 5), "touching is not overlapping")
	assert.False(t, geom.CircleCircle(geom.V(0, 0), 5, geom.V(20, 0), 5))
}

func TestCircleRect(t *testing.T) {
	rect := geom.Rect{X: 0, Y: 0, W: 20, H: 100}

	tests := []struct {
		name   string
		center geom.Vec2
		radius float32
		want   bool
	}{
		{"inside", geom.V(10, 50), 1, true},
		{"overlapping side", geom.V(25, 50), 6, true},
		{"beyond side", geom.V(30, 50), 6, false},
		{"near corner", geom.V(23, 103), 5, true},
		{"outside corner", geom.V(25, 105), 5, false},
		{"below", geom.V(10, 120), 10, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, geom.CircleRect(tt.center, tt.radius, rect))
		})
	}

	assert.False(t, geom.CircleRect(geom.V(0, 0), 10, geom.Rect{W: 0, H: 10}), "degenerate rect never collides")
}

func TestDeg2Rad(t *testing.T) {
	assert.InDelta(t, math.Pi, geom.Deg2Rad(180), 1e-6)
	assert.InDelta(t, -math.Pi/9, geom.Deg2Rad(-20), 1e-6)
}

func TestClamp(t *testing.T) {
	assert.Equal(t, float32(1), geom.Clamp(-4, 1, 3))
	assert.Equal(t, float32(3), geom.Clamp(9, 1, 3))
	assert.Equal(t, float32(2), geom.Clamp(2, 1, 3))
}
