package protocol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCommand(t *testing.T) {
	got := BuildCommand(CmdRequestBattery)
	assert.Equal(t, []byte{0x2A, 0x01, 0x32, 0x5D, 0x0D, 0x0A}, got)
}

func TestParseRoundTrip(t *testing.T) {
	frame := Build(MsgTypeRotation, []byte{0x06, 0x03})
	require.Len(t, frame, 8)
	assert.Equal(t, byte(0x06), frame[1])

	msg, err := Parse(frame)
	require.NoError(t, err)
	assert.Equal(t, MsgTypeRotation, msg.Type)
	assert.Equal(t, []byte{0x06, 0x03}, msg.Payload)
	assert.Equal(t, "rotation", msg.TypeName())
	assert.NotEmpty(t, msg.Base64())
}

func TestParseIgnoresTrailingBytes(t *testing.T) {
	frame := append(Build(MsgTypeBattery, []byte{80}), 0xFF, 0xFF)
	msg, err := Parse(frame)
	require.NoError(t, err)
	assert.Equal(t, []byte{80}, msg.Payload)
	assert.Len(t, msg.Raw, 7)
}

func TestParseErrors(t *testing.T) {
	good := Build(MsgTypeBattery, []byte{80})

	badPrefix := append([]byte{}, good...)
	badPrefix[0] = 0x00

	badChecksum := append([]byte{}, good...)
	badChecksum[len(badChecksum)-3]++

	badSuffix := append([]byte{}, good...)
	badSuffix[len(badSuffix)-1] = 0x00

	badLength := append([]byte{}, good...)
	badLength[1] = 0x40

	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"short", []byte{0x2A, 0x01}, ErrMessageTooShort},
		{"prefix", badPrefix, ErrInvalidPrefix},
		{"checksum", badChecksum, ErrInvalidChecksum},
		{"suffix", badSuffix, ErrInvalidSuffix},
		{"length", badLength, ErrInvalidLength},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.data)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestDecodeRotation(t *testing.T) {
	// white clockwise, white counter-clockwise, red clockwise, blue ccw
	events, err := DecodeRotation([]byte{0x04, 0x00, 0x05, 0x03, 0x08, 0x06, 0x01, 0x09})
	require.NoError(t, err)
	require.Len(t, events, 4)

	assert.Equal(t, byte('U'), events[0].Face)
	assert.True(t, events[0].Clockwise)
	assert.Equal(t, "white", events[0].Color)

	assert.Equal(t, byte('U'), events[1].Face)
	assert.False(t, events[1].Clockwise)
	assert.Equal(t, byte(0x03), events[1].CenterOrientation)

	assert.Equal(t, byte('R'), events[2].Face)
	assert.Equal(t, byte('B'), events[3].Face)
	assert.False(t, events[3].Clockwise)
	assert.Equal(t, "B ccw (blue)", events[3].String())
}

func TestDecodeRotationAllFaces(t *testing.T) {
	want := map[byte]byte{0: 'B', 1: 'F', 2: 'U', 3: 'D', 4: 'R', 5: 'L'}
	for idx, face := range want {
		events, err := DecodeRotation([]byte{idx * 2, 0})
		require.NoError(t, err)
		assert.Equal(t, face, events[0].Face, "color index %d", idx)
	}
}

func TestDecodeRotationErrors(t *testing.T) {
	_, err := DecodeRotation([]byte{0x00})
	assert.Error(t, err)

	_, err = DecodeRotation([]byte{0x0C, 0x00})
	assert.Error(t, err)
}

func TestDecodeBatteryAndCubeType(t *testing.T) {
	b, err := DecodeBattery([]byte{57})
	require.NoError(t, err)
	assert.Equal(t, 57, b.Level)

	_, err = DecodeBattery(nil)
	assert.Error(t, err)

	c, err := DecodeCubeType([]byte{0x01})
	require.NoError(t, err)
	assert.Equal(t, "edge", c.TypeName)

	c, err = DecodeCubeType([]byte{0x00})
	require.NoError(t, err)
	assert.Equal(t, "standard", c.TypeName)
}

func TestDecodeOrientation(t *testing.T) {
	// Identity rotation: white up, green front.
	o, err := DecodeOrientation([]byte("0#0#0#1000\x7f"))
	require.NoError(t, err)
	assert.Equal(t, byte('U'), o.UpFace)
	assert.Equal(t, byte('F'), o.FrontFace)
	assert.Equal(t, 1000.0, o.W)

	_, err = DecodeOrientation([]byte("1#2#3"))
	assert.Error(t, err)

	_, err = DecodeOrientation([]byte("a#0#0#1"))
	assert.Error(t, err)
}

func TestDecodeOfflineStats(t *testing.T) {
	s, err := DecodeOfflineStats([]byte("120#300#4"))
	require.NoError(t, err)
	assert.Equal(t, &OfflineStatsEvent{Moves: 120, Time: 300, Solves: 4}, s)

	_, err = DecodeOfflineStats([]byte("1#2"))
	assert.Error(t, err)
}

func TestDescribe(t *testing.T) {
	msg, err := Parse(Build(MsgTypeRotation, []byte{0x04, 0x00}))
	require.NoError(t, err)
	assert.Equal(t, "rotation: U cw (white)", Describe(msg))

	msg, err = Parse(Build(MsgTypeBattery, []byte{42}))
	require.NoError(t, err)
	assert.Equal(t, "battery: 42%", Describe(msg))

	msg, err = Parse(Build(0x99, []byte{0x01, 0x02}))
	require.NoError(t, err)
	assert.Equal(t, "unknown_0x99: 01 02", Describe(msg))
}
