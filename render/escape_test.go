package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsInSet(t *testing.T) {
	cases := []struct {
		name      string
		z0, c     complex128
		iter      int
		wantIn    bool
		wantStage int
	}{
		{"origin fixed point", 0, 0, 100, true, NotEscaped},
		{"immediate escape", 2, 2, 100, false, 0},
		{"window corner", complex(-2, 2), 0, 100, false, 0},
		// 1.5 → 2.25 > 2 on the first iteration
		{"outside unit disc", 1.5, 0, 100, false, 0},
		// 1.1 → 1.21 → 1.4641 → 2.1436 > 2 on the third iteration
		{"slow escape", 1.1, 0, 100, false, 2},
		{"budget exhausted before escape", 1.1, 0, 2, true, NotEscaped},
		// -1 → 0 → -1 → 0: period 2 is not detected, the budget runs out
		{"basilica period two", 0, -1, 100, true, NotEscaped},
		{"zero budget", 5, 5, 0, true, NotEscaped},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			in, stage := IsInSet(c.z0, c.c, c.iter)
			assert.Equal(t, c.wantIn, in)
			assert.Equal(t, c.wantStage, stage)
		})
	}
}

func TestIsInSetFixedPointShortCircuit(t *testing.T) {
	// z=1, c=0 stays at 1; a budget of one iteration must still report a member
	in, stage := IsInSet(1, 0, 1)
	assert.True(t, in)
	assert.Equal(t, NotEscaped, stage)
}

func BenchmarkIsInSet(b *testing.B) {
	c := complex(-0.123, 0.745)
	for b.Loop() {
		IsInSet(complex(0.1, 0.1), c, 1000)
	}
}
