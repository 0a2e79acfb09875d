// Package orbit turns 2D pointer or device-orientation input into camera rotation around a
// fixed target.
//
// Input is first smoothed by a tracker that eases toward the latest destination; the motion of
// the tracker during a tick becomes a spherical Delta, which Apply adds to the camera's
// spherical offset from the target. The offset is expressed in a frame where the camera's up
// vector is aligned with world up, so cameras with a custom up vector orbit around their own
// up axis.
package orbit
