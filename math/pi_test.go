package math

import (
	"os"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/go-logr/logr/funcr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/db47h/fixed"
)

// loadPi returns the first 10000 decimal places of π as "3.1415...".
func loadPi(t testing.TB) string {
	t.Helper()
	b, err := os.ReadFile("testdata/pi10000.txt")
	require.NoError(t, err)
	s := strings.TrimSpace(string(b))
	require.True(t, strings.HasPrefix(s, "3.14159"), "bad reference file")
	return s
}

func refPi(ref string, digits uint) string {
	if digits == 0 {
		return ref[:1]
	}
	return ref[:2+digits]
}

func TestPiString_known(t *testing.T) {
	assert.Equal(t, "3", PiString(0))
	assert.Equal(t, "3.1", PiString(1))
	assert.Equal(t, "3.1415926535", PiString(10))
	assert.Equal(t, "3.14159265358979323846", PiString(20))
}

func TestPiString(t *testing.T) {
	ref := loadPi(t)
	digits := []uint{2, 3, 5, 50, 99, 100, 101, 500, 761, 762, 999, 1000}
	if !testing.Short() {
		digits = append(digits, 2000, 3000, 10000)
	}
	for _, d := range digits {
		d := d
		t.Run(strconv.Itoa(int(d)), func(t *testing.T) {
			s := PiString(d)
			require.Len(t, s, len(refPi(ref, d)))
			require.Equal(t, refPi(ref, d), s)
		})
	}
}

func TestPiString_shape(t *testing.T) {
	for d := uint(0); d <= 120; d++ {
		s := PiString(d)
		if d == 0 {
			require.Equal(t, "3", s)
			continue
		}
		intPart, frac, ok := strings.Cut(s, ".")
		require.True(t, ok, "no decimal point in %q", s)
		require.Equal(t, "3", intPart)
		require.Len(t, frac, int(d))
	}
}

// TestPiString_prefix checks that results at different precisions agree on
// their common digits.
func TestPiString_prefix(t *testing.T) {
	long := PiString(1000)
	for d := uint(1); d < 1000; d += 37 {
		require.Equal(t, long[:2+d], PiString(d), "digits: %d", d)
	}
	require.Equal(t, long[:1], PiString(0))
}

func TestPi(t *testing.T) {
	ref := loadPi(t)
	for _, d := range []uint{100, 1000} {
		ctx := fixed.NewContext(d)
		pi := Pi(ctx)
		assert.Equal(t, refPi(ref, d), pi.String())
		assert.Same(t, ctx, pi.Context())
	}
}

func TestPi_concurrent(t *testing.T) {
	ref := loadPi(t)
	var wg sync.WaitGroup
	res := make([]string, 8)
	for i := range res {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			res[i] = PiString(uint(100 + i*50))
		}(i)
	}
	wg.Wait()
	for i, s := range res {
		assert.Equal(t, refPi(ref, uint(100+i*50)), s)
	}
}

func TestEngine_guard(t *testing.T) {
	ref := loadPi(t)
	e := New(WithGuardDigits(20))
	ctx := e.Context(300)
	assert.Equal(t, uint(300), ctx.Prec())
	assert.Equal(t, uint(20), ctx.Guard())
	assert.Equal(t, refPi(ref, 300), e.Pi(300))

	// below the minimum
	assert.Equal(t, uint(fixed.DefaultGuardDigits), New(WithGuardDigits(1)).Context(10).Guard())
	assert.Equal(t, fixed.GuardDigits(10), New().Context(10).Guard())
}

func TestEngine_logging(t *testing.T) {
	var lines []string
	l := funcr.New(func(prefix, args string) {
		lines = append(lines, args)
	}, funcr.Options{Verbosity: 2})

	s := New(WithLogger(l)).Pi(50)
	require.Equal(t, "3.14159265358979323846264338327950288419716939937510", s)

	all := strings.Join(lines, "\n")
	assert.Contains(t, all, `"msg"="computing π"`)
	assert.Contains(t, all, `"msg"="computed π"`)
	assert.Contains(t, all, `"d"=5`)
	assert.Contains(t, all, `"d"=239`)
	assert.Contains(t, all, `"digits"=50`)
	assert.Contains(t, all, `"iterations"=`)
}

func BenchmarkPiString(b *testing.B) {
	for _, digits := range []uint{100, 1000, 10000} {
		b.Run(strconv.Itoa(int(digits)), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				PiString(digits)
			}
		})
	}
}
