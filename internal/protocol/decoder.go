package protocol

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// RotationEvent is a single quarter turn reported by the cube.
type RotationEvent struct {
	FaceCode          byte   // Raw face+direction code (0x00-0x0B)
	CenterOrientation byte   // Center piece orientation
	Clockwise         bool   // Direction of rotation
	Color             string // Center color of the turned face
	Face              byte   // Face letter in standard orientation: U, D, L, R, F or B
}

func (e RotationEvent) String() string {
	dir := "cw"
	if !e.Clockwise {
		dir = "ccw"
	}
	return fmt.Sprintf("%c %s (%s)", e.Face, dir, e.Color)
}

// BatteryEvent represents a battery level notification.
type BatteryEvent struct {
	Level int // 0-100 percentage
}

// CubeTypeEvent represents a cube type notification.
type CubeTypeEvent struct {
	TypeCode byte
	TypeName string
}

// OrientationEvent represents a cube orientation notification.
type OrientationEvent struct {
	X, Y, Z, W float64

	// Derived discrete orientation
	UpFace    byte // Face letter pointing up
	FrontFace byte // Face letter facing the solver
}

// OfflineStatsEvent represents offline statistics.
type OfflineStatsEvent struct {
	Moves  int
	Time   int // seconds
	Solves int
}

// colors lists the center colors in face-code order.
var colors = [6]string{"blue", "green", "white", "yellow", "red", "orange"}

// colorFaces maps a center color to its face with white up and green front.
var colorFaces = map[string]byte{
	"white":  'U',
	"yellow": 'D',
	"orange": 'L',
	"red":    'R',
	"green":  'F',
	"blue":   'B',
}

// DecodeRotation decodes a rotation payload. It holds pairs of bytes:
// [face_dir] [center_orientation]. Even face codes turn clockwise.
func DecodeRotation(payload []byte) ([]RotationEvent, error) {
	if len(payload)%2 != 0 {
		return nil, fmt.Errorf("rotation payload must have even length, got %d", len(payload))
	}

	events := make([]RotationEvent, 0, len(payload)/2)
	for i := 0; i < len(payload); i += 2 {
		code := payload[i]
		idx := int(code / 2)
		if idx >= len(colors) {
			return nil, fmt.Errorf("unknown color index %d from face code 0x%02X", idx, code)
		}
		color := colors[idx]

		events = append(events, RotationEvent{
			FaceCode:          code,
			CenterOrientation: payload[i+1],
			Clockwise:         code%2 == 0,
			Color:             color,
			Face:              colorFaces[color],
		})
	}

	return events, nil
}

// DecodeBattery decodes a battery message payload.
func DecodeBattery(payload []byte) (*BatteryEvent, error) {
	if len(payload) < 1 {
		return nil, fmt.Errorf("battery payload too short")
	}
	return &BatteryEvent{Level: int(payload[0])}, nil
}

// DecodeCubeType decodes a cube type message payload.
func DecodeCubeType(payload []byte) (*CubeTypeEvent, error) {
	if len(payload) < 1 {
		return nil, fmt.Errorf("cube type payload too short")
	}

	name := "standard"
	if payload[0] == 0x01 {
		name = "edge"
	}
	return &CubeTypeEvent{TypeCode: payload[0], TypeName: name}, nil
}

// DecodeOrientation decodes an orientation payload: the ASCII string
// "x#y#z#w", where w may be followed by stray bytes.
func DecodeOrientation(payload []byte) (*OrientationEvent, error) {
	parts := strings.Split(string(payload), "#")
	if len(parts) != 4 {
		return nil, fmt.Errorf("orientation payload must have 4 parts, got %d", len(parts))
	}

	var q [4]float64
	for i, name := range []string{"x", "y", "z", "w"} {
		v, err := strconv.ParseFloat(leadingNumber(parts[i]), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid %s value: %w", name, err)
		}
		q[i] = v
	}

	event := &OrientationEvent{X: q[0], Y: q[1], Z: q[2], W: q[3]}
	event.UpFace, event.FrontFace = quaternionToFaces(q[0], q[1], q[2], q[3])
	return event, nil
}

// leadingNumber returns the leading numeric portion of s.
func leadingNumber(s string) string {
	end := 0
	for i, r := range s {
		if (r == '-' && i == 0) || r == '.' || (r >= '0' && r <= '9') {
			end = i + 1
			continue
		}
		break
	}
	return s[:end]
}

// quaternionToFaces converts a quaternion to the faces pointing up and
// towards the solver.
func quaternionToFaces(x, y, z, w float64) (up, front byte) {
	// GoCube sends raw integer components.
	mag := math.Sqrt(x*x + y*y + z*z + w*w)
	if mag > 0 {
		x /= mag
		y /= mag
		z /= mag
		w /= mag
	}

	// Rotate (0, 1, 0) and (0, 0, 1).
	upX := 2 * (x*y - w*z)
	upY := 1 - 2*(x*x+z*z)
	upZ := 2 * (y*z + w*x)

	frontX := 2 * (x*z + w*y)
	frontY := 2 * (y*z - w*x)
	frontZ := 1 - 2*(x*x+y*y)

	return vectorToFace(upX, upY, upZ), vectorToFace(frontX, frontY, frontZ)
}

// vectorToFace returns the face a direction points at.
func vectorToFace(x, y, z float64) byte {
	ax, ay, az := math.Abs(x), math.Abs(y), math.Abs(z)

	switch {
	case ay >= ax && ay >= az:
		if y > 0 {
			return 'U'
		}
		return 'D'
	case az >= ax:
		if z > 0 {
			return 'F'
		}
		return 'B'
	case x > 0:
		return 'R'
	default:
		return 'L'
	}
}

// DecodeOfflineStats decodes an offline stats payload: "moves#time#solves".
func DecodeOfflineStats(payload []byte) (*OfflineStatsEvent, error) {
	parts := strings.Split(string(payload), "#")
	if len(parts) != 3 {
		return nil, fmt.Errorf("offline stats payload must have 3 parts, got %d", len(parts))
	}

	var vals [3]int
	for i, name := range []string{"moves", "time", "solves"} {
		v, err := strconv.Atoi(parts[i])
		if err != nil {
			return nil, fmt.Errorf("invalid %s value: %w", name, err)
		}
		vals[i] = v
	}

	return &OfflineStatsEvent{Moves: vals[0], Time: vals[1], Solves: vals[2]}, nil
}

// Describe returns a one-line summary of a message for logs and raw dumps.
func Describe(msg *Message) string {
	switch msg.Type {
	case MsgTypeRotation:
		events, err := DecodeRotation(msg.Payload)
		if err != nil {
			return "rotation: " + err.Error()
		}
		parts := make([]string, len(events))
		for i, e := range events {
			parts[i] = e.String()
		}
		return "rotation: " + strings.Join(parts, ", ")
	case MsgTypeBattery:
		b, err := DecodeBattery(msg.Payload)
		if err != nil {
			return "battery: " + err.Error()
		}
		return fmt.Sprintf("battery: %d%%", b.Level)
	case MsgTypeCubeType:
		c, err := DecodeCubeType(msg.Payload)
		if err != nil {
			return "cube_type: " + err.Error()
		}
		return "cube_type: " + c.TypeName
	case MsgTypeOrientation:
		o, err := DecodeOrientation(msg.Payload)
		if err != nil {
			return "orientation: " + err.Error()
		}
		return fmt.Sprintf("orientation: up=%c front=%c", o.UpFace, o.FrontFace)
	case MsgTypeOfflineStats:
		s, err := DecodeOfflineStats(msg.Payload)
		if err != nil {
			return "offline_stats: " + err.Error()
		}
		return fmt.Sprintf("offline_stats: moves=%d time=%ds solves=%d", s.Moves, s.Time, s.Solves)
	default:
		return fmt.Sprintf("%s: % X", msg.TypeName(), msg.Payload)
	}
}
