package geometry

import "math"

// Quaternion represents a rotation. W is the scalar part.
type Quaternion struct {
	X, Y, Z, W float64
}

// QuaternionIdentity returns the rotation that leaves vectors unchanged
func QuaternionIdentity() Quaternion {
	return Quaternion{W: 1}
}

// QuaternionFromUnitVectors returns the shortest rotation taking unit vector from onto unit vector to
func QuaternionFromUnitVectors(from, to Vector3) Quaternion {
	r := from.Dot(to) + 1

	if r < 1e-6 {
		// Opposite vectors: rotate half a turn around any axis perpendicular to from
		if math.Abs(from.X) > math.Abs(from.Z) {
			return Quaternion{X: -from.Y, Y: from.X, Z: 0, W: 0}.Normalize()
		}
		return Quaternion{X: 0, Y: -from.Z, Z: from.Y, W: 0}.Normalize()
	}

	c := from.Cross(to)
	return Quaternion{X: c.X, Y: c.Y, Z: c.Z, W: r}.Normalize()
}

// QuaternionFromEuler builds a rotation from Euler angles (radians) applied in X, Y, Z order
func QuaternionFromEuler(e Vector3) Quaternion {
	c1, s1 := math.Cos(e.X/2), math.Sin(e.X/2)
	c2, s2 := math.Cos(e.Y/2), math.Sin(e.Y/2)
	c3, s3 := math.Cos(e.Z/2), math.Sin(e.Z/2)

	return Quaternion{
		X: s1*c2*c3 + c1*s2*s3,
		Y: c1*s2*c3 - s1*c2*s3,
		Z: c1*c2*s3 + s1*s2*c3,
		W: c1*c2*c3 - s1*s2*s3,
	}
}

// Length returns the norm of the quaternion
func (q Quaternion) Length() float64 {
	return math.Sqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)
}

// Normalize returns a unit quaternion, or the identity for a zero quaternion
func (q Quaternion) Normalize() Quaternion {
	l := q.Length()
	if l == 0 {
		return QuaternionIdentity()
	}
	return Quaternion{X: q.X / l, Y: q.Y / l, Z: q.Z / l, W: q.W / l}
}

// Inverse returns the inverse rotation of a unit quaternion
func (q Quaternion) Inverse() Quaternion {
	return Quaternion{X: -q.X, Y: -q.Y, Z: -q.Z, W: q.W}
}

// Multiply returns q*other, the rotation other followed by q
func (q Quaternion) Multiply(other Quaternion) Quaternion {
	return Quaternion{
		X: q.X*other.W + q.W*other.X + q.Y*other.Z - q.Z*other.Y,
		Y: q.Y*other.W + q.W*other.Y + q.Z*other.X - q.X*other.Z,
		Z: q.Z*other.W + q.W*other.Z + q.X*other.Y - q.Y*other.X,
		W: q.W*other.W - q.X*other.X - q.Y*other.Y - q.Z*other.Z,
	}
}
