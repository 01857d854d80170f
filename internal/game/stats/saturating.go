package stats

import "math"

// SatAdd returns a+b, saturating at math.MaxUint32.
func SatAdd(a, b uint32) uint32 {
	if a > math.MaxUint32-b {
		return math.MaxUint32
	}
	return a + b
}

// SatSub returns a-b, saturating at zero.
func SatSub(a, b uint32) uint32 {
	if b >= a {
		return 0
	}
	return a - b
}

// Linear returns base + perLevel*level, saturating at math.MaxUint32.
func Linear(base, perLevel, level uint32) uint32 {
	return clamp(uint64(base) + uint64(perLevel)*uint64(level))
}

func clamp(v uint64) uint32 {
	if v > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(v)
}

func satAddRate(a, b Rate) Rate { return Rate(SatAdd(uint32(a), uint32(b))) }
func satSubRate(a, b Rate) Rate { return Rate(SatSub(uint32(a), uint32(b))) }
