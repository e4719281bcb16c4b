// Package protocol implements GoCube BLE message framing and payload decoding.
package protocol

import (
	"encoding/base64"
	"errors"
	"fmt"
)

// GoCube BLE Service and Characteristic UUIDs
const (
	ServiceUUID = "6e400001-b5a3-f393-e0a9-e50e24dcca9e"
	TxCharUUID  = "6e400003-b5a3-f393-e0a9-e50e24dcca9e" // Notify
	RxCharUUID  = "6e400002-b5a3-f393-e0a9-e50e24dcca9e" // Write
)

// Message type constants
const (
	MsgTypeRotation     byte = 0x01
	MsgTypeState        byte = 0x02
	MsgTypeOrientation  byte = 0x03
	MsgTypeBattery      byte = 0x05
	MsgTypeOfflineStats byte = 0x07
	MsgTypeCubeType     byte = 0x08
)

// Command codes for writing to RX characteristic
const (
	CmdRequestBattery       byte = 0x32
	CmdRequestState         byte = 0x33
	CmdReboot               byte = 0x34
	CmdResetSolved          byte = 0x35
	CmdDisableOrientation   byte = 0x37
	CmdEnableOrientation    byte = 0x38
	CmdRequestOfflineStats  byte = 0x39
	CmdFlashBacklight       byte = 0x41
	CmdToggleAnimatedBL     byte = 0x42
	CmdSlowFlashBacklight   byte = 0x43
	CmdToggleBacklight      byte = 0x44
	CmdRequestCubeType      byte = 0x56
	CmdCalibrateOrientation byte = 0x57
)

// Frame bytes
const (
	FramePrefix  byte = 0x2A // '*'
	FrameSuffix1 byte = 0x0D // CR
	FrameSuffix2 byte = 0x0A // LF
)

// Errors
var (
	ErrInvalidPrefix   = errors.New("protocol: invalid message prefix")
	ErrInvalidSuffix   = errors.New("protocol: invalid message suffix")
	ErrInvalidChecksum = errors.New("protocol: invalid checksum")
	ErrMessageTooShort = errors.New("protocol: message too short")
	ErrInvalidLength   = errors.New("protocol: invalid message length")
)

// Message is one parsed notification.
type Message struct {
	Type    byte   // Message type identifier
	Payload []byte // Payload without frame overhead
	Raw     []byte // The complete frame
}

// Base64 returns the raw frame base64-encoded, for logging.
func (m *Message) Base64() string {
	return base64.StdEncoding.EncodeToString(m.Raw)
}

// TypeName returns a readable name for the message type.
func (m *Message) TypeName() string {
	return MessageTypeName(m.Type)
}

// Parse parses a raw BLE notification into a Message.
//
// Frame format: [0x2A] [length] [type] [payload...] [checksum] [0x0D 0x0A].
// The length byte counts everything after itself (type, payload, checksum
// and suffix). The checksum is the byte sum of everything before it.
func Parse(data []byte) (*Message, error) {
	if len(data) < 6 {
		return nil, ErrMessageTooShort
	}
	if data[0] != FramePrefix {
		return nil, ErrInvalidPrefix
	}

	length := int(data[1])
	total := 2 + length
	if length < 4 || len(data) < total {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidLength, total, len(data))
	}

	checksumIdx := total - 3
	if data[total-2] != FrameSuffix1 || data[total-1] != FrameSuffix2 {
		return nil, ErrInvalidSuffix
	}

	var sum byte
	for _, b := range data[:checksumIdx] {
		sum += b
	}
	if sum != data[checksumIdx] {
		return nil, fmt.Errorf("%w: frame has 0x%02X, computed 0x%02X", ErrInvalidChecksum, data[checksumIdx], sum)
	}

	raw := make([]byte, total)
	copy(raw, data[:total])

	return &Message{
		Type:    raw[2],
		Payload: raw[3:checksumIdx],
		Raw:     raw,
	}, nil
}

// Build frames a message of the given type and payload.
func Build(msgType byte, payload []byte) []byte {
	frame := make([]byte, 0, len(payload)+6)
	frame = append(frame, FramePrefix, byte(len(payload)+4), msgType)
	frame = append(frame, payload...)

	var sum byte
	for _, b := range frame {
		sum += b
	}
	return append(frame, sum, FrameSuffix1, FrameSuffix2)
}

// BuildCommand creates a command message to send to the cube.
// Commands carry no payload: [0x2A] [0x01] [cmd] [checksum] [0x0D] [0x0A].
func BuildCommand(cmd byte) []byte {
	length := byte(0x01)
	checksum := FramePrefix + length + cmd
	return []byte{FramePrefix, length, cmd, checksum, FrameSuffix1, FrameSuffix2}
}

// MessageTypeName returns a human-readable name for the message type.
func MessageTypeName(msgType byte) string {
	switch msgType {
	case MsgTypeRotation:
		return "rotation"
	case MsgTypeState:
		return "state"
	case MsgTypeOrientation:
		return "orientation"
	case MsgTypeBattery:
		return "battery"
	case MsgTypeOfflineStats:
		return "offline_stats"
	case MsgTypeCubeType:
		return "cube_type"
	default:
		return fmt.Sprintf("unknown_0x%02X", msgType)
	}
}
