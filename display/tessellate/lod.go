package tessellate

import "math"

// gridStep returns max(1, floor(extent/division)), clamped to maxSpacing
// unless maxSpacing is -1. A division of zero or less counts as 1.
func gridStep(extent, division, maxSpacing float64) int {
	if division <= 0 || !isFinite(division) {
		division = 1
	}
	q := extent / division
	if !isFinite(q) || q < 1 {
		q = 1
	}
	step := math.Floor(q)
	if maxSpacing != -1 && maxSpacing >= 1 {
		step = math.Min(step, math.Floor(maxSpacing))
	}
	if step > math.MaxInt32 {
		step = math.MaxInt32
	}
	return int(step)
}

// segmentPolicy bounds how finely a closed curve is tessellated.
type segmentPolicy struct {
	min, max     int
	targetLength float64
	scaleFactor  float64
}

func (p segmentPolicy) normalized() segmentPolicy {
	if p.min < 3 {
		p.min = 3
	}
	if p.max < p.min {
		p.max = p.min
	}
	return p
}

// count picks the larger of the length-driven and radius-driven estimates,
// clamped to [min, max]. A non-positive target length disables the
// length-driven estimate.
func (p segmentPolicy) count(circumference, avgRadius float64) int {
	p = p.normalized()
	if !isFinite(avgRadius) || avgRadius < 0 {
		avgRadius = 0
	}
	n := math.Floor(float64(p.min) + p.scaleFactor*math.Sqrt(avgRadius))
	if p.targetLength > 0 && isFinite(circumference) && circumference > 0 {
		n = math.Max(n, math.Ceil(circumference/p.targetLength))
	}
	if !isFinite(n) || n > float64(p.max) {
		return p.max
	}
	if n < float64(p.min) {
		return p.min
	}
	return int(n)
}

// circleSegments sizes a cylinder layer from its average radius.
func circleSegments(rx, rz float64, p segmentPolicy) int {
	avg := (rx + rz) / 2
	return p.count(2*math.Pi*avg, avg)
}

// ellipseSegments sizes an ellipse using Ramanujan's circumference
// approximation.
func ellipseSegments(r1, r2 float64, p segmentPolicy) int {
	a, b := math.Max(r1, r2), math.Min(r1, r2)
	if a+b <= 0 {
		return p.count(0, 0)
	}
	h := math.Pow((a-b)/(a+b), 2)
	c := math.Pi * (a + b) * (1 + 3*h/(10+math.Sqrt(4-3*h)))
	return p.count(c, (r1+r2)/2)
}
