package math

import (
	gomath "math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/db47h/fixed"
)

func TestAtan(t *testing.T) {
	ctx := fixed.NewContext(50)
	for _, tt := range []struct {
		d    int64
		want string
	}{
		{2, "0.46364760900080611621425623146121440202853705428612"},
		{3, "0.32175055439664219340140461435866131902075529555765"},
		{5, "0.19739555984988075837004976519479029344758510378785"},
		{7, "0.14189705460416392281285161710255308300778175872846"},
		{239, "0.00418407600207472386453821495928545274104806530763"},
	} {
		assert.Equal(t, tt.want, Atan(ctx, tt.d).String(), "atan(1/%d)", tt.d)
	}
}

// TestAtan_iterations checks that the series stops after
// O(scale digits / log10(d²)) iterations.
func TestAtan_iterations(t *testing.T) {
	for _, prec := range []uint{0, 1, 10, 50, 100, 500, 1000} {
		ctx := fixed.NewContext(prec)
		total := float64(ctx.Prec() + ctx.Guard())
		for _, d := range []int64{2, 3, 5, 10, 57, 239, 1000, 99991} {
			t.Run(strconv.Itoa(int(prec))+"/"+strconv.Itoa(int(d)), func(t *testing.T) {
				_, n := atan(ctx, d)
				bound := int(gomath.Ceil(total/(2*gomath.Log10(float64(d*d))))) + 1
				require.Positive(t, n)
				require.LessOrEqual(t, n, bound)
			})
		}
	}
}

func TestAtan_tiny(t *testing.T) {
	// with 0 digits of precision, only guard digits remain.
	ctx := fixed.NewContextGuard(0, 8)
	z, n := atan(ctx, 2)
	assert.Equal(t, "46364762", z.Numerator().String())
	assert.Equal(t, 7, n)
	assert.Equal(t, "0", z.String())
}

func TestAtan_domain(t *testing.T) {
	ctx := fixed.NewContext(10)
	for _, d := range []int64{-5, 0, 1, MaxAtanDenominator + 1} {
		assert.Panics(t, func() { Atan(ctx, d) }, "d = %d", d)
	}
	assert.NotPanics(t, func() { Atan(ctx, MaxAtanDenominator) })
	assert.True(t, Atan(ctx, MaxAtanDenominator).Sign() > 0)
}

func BenchmarkAtan(b *testing.B) {
	ctx := fixed.NewContext(1000)
	for _, d := range []int64{5, 239} {
		b.Run(strconv.Itoa(int(d)), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				Atan(ctx, d)
			}
		})
	}
}
