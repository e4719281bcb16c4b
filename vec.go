package gocube

import "fmt"

// Vec3 is an integer vector in cube space. The cube spans [-1, 1] on every
// axis with the origin at its center; +X is right, +Y is up, +Z is front.
type Vec3 struct {
	X, Y, Z int
}

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

func (v Vec3) Scale(k int) Vec3 {
	return Vec3{v.X * k, v.Y * k, v.Z * k}
}

// Cross returns the cross product v × o.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

// Component returns the coordinate along the given axis.
func (v Vec3) Component(a Axis) int {
	switch a {
	case AxisX:
		return v.X
	case AxisY:
		return v.Y
	default:
		return v.Z
	}
}

func (v Vec3) String() string {
	return fmt.Sprintf("(%d,%d,%d)", v.X, v.Y, v.Z)
}

// Axis is one of the three spatial axes.
type Axis uint8

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	default:
		return "z"
	}
}

// Rotate90 rotates v by 90 degrees about the positive axis a. A sign of +1
// turns counter-clockwise when looking down the axis from its positive end
// (right-hand rule); -1 turns the other way.
func (v Vec3) Rotate90(a Axis, sign int) Vec3 {
	switch a {
	case AxisX:
		return Vec3{v.X, -sign * v.Z, sign * v.Y}
	case AxisY:
		return Vec3{sign * v.Z, v.Y, -sign * v.X}
	default:
		return Vec3{-sign * v.Y, sign * v.X, v.Z}
	}
}
