package plotpanel

import (
	"math"
	"strconv"
	"testing"
)

var transformationTests = []struct {
	trans   Transformation
	a, b    float64 // from
	u, v    float64 // to
	x, want float64
}{
	{LinearTrans, 10, 20, 10, 20, 12, 12},
	{LinearTrans, 10, 20, 100, 200, 12, 120},
	{LinearTrans, 3, 5, 0, 1, 3, 0},
	{LinearTrans, 3, 5, 0, 1, 4, 0.5},
	{LinearTrans, 3, 5, 0, 1, 5, 1},
	{LinearTrans, 0.2, 0.8, 0, 1, 0.5, 0.5},
	{LinearTrans, 0, 1, -4, 6, 0.25, -1.5},
}

func equal64(a, b float64) bool {
	ai, af := math.Modf(a)
	bi, bf := math.Modf(b)
	if af == 0 && bf == 0 {
		return ai == bi
	}
	return math.Abs(a-b) < 1e-9
}

func TestTransform(t *testing.T) {
	for i, tc := range transformationTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			from, to := Interval{tc.a, tc.b}, Interval{tc.u, tc.v}
			got := tc.trans.Trans(from, to, tc.x)
			if !equal64(got, tc.want) {
				t.Errorf("Trans(%v,%v,%f) = %f, want %f",
					from, to, tc.x, got, tc.want)
			}
			if back := tc.trans.Inverse(from, to, got); !equal64(back, tc.x) {
				t.Errorf("Inverse(%v,%v,%f) = %f, want %f",
					from, to, got, back, tc.x)
			}
		})
	}
}
