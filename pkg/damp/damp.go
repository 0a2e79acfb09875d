// Package damp implements the exponential-decay easing used by every animated channel.
//
// Each call moves a value a fixed fraction of the remaining distance toward its target, so
// motion is fast at first and slows as it approaches. Once the remaining distance is within
// tolerance the value snaps to the target, which guarantees termination in a finite number of
// ticks.
package damp

import (
	"math"

	"github.com/philipparndt/goorbit/pkg/geometry"
)

// DefaultTolerance is the snap distance used when a channel does not configure its own
const DefaultTolerance = 1.0

// Approach returns the next value of current on its way to target.
// friction is the fraction of the remaining distance kept after the step and must lie in
// (0, 1); values outside that range are not checked and make the sequence oscillate or diverge.
func Approach(current, target, friction, tolerance float64) float64 {
	diff := target - current
	if target == current || math.Abs(diff) <= tolerance {
		return target
	}
	return target - diff*friction
}

// ApproachVector2 applies Approach to each axis independently
func ApproachVector2(current, target geometry.Vector2, friction, tolerance float64) geometry.Vector2 {
	return geometry.Vector2{
		X: Approach(current.X, target.X, friction, tolerance),
		Y: Approach(current.Y, target.Y, friction, tolerance),
	}
}

// ApproachVector3 applies Approach to each axis independently
func ApproachVector3(current, target geometry.Vector3, friction, tolerance float64) geometry.Vector3 {
	return geometry.Vector3{
		X: Approach(current.X, target.X, friction, tolerance),
		Y: Approach(current.Y, target.Y, friction, tolerance),
		Z: Approach(current.Z, target.Z, friction, tolerance),
	}
}

// MaxTicks returns the number of steps after which a value starting diff away from its
// target is guaranteed to be within tolerance. It is 0 when diff is already within tolerance.
func MaxTicks(diff, friction, tolerance float64) int {
	diff = math.Abs(diff)
	if diff <= tolerance {
		return 0
	}
	return int(math.Ceil(math.Log(tolerance/diff) / math.Log(friction)))
}

// Settled reports whether Approach would snap current onto target on the next call
func Settled(current, target, tolerance float64) bool {
	return current == target || math.Abs(target-current) <= tolerance
}
