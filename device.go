package gocube

import (
	"context"
	"sync"
	"time"

	"github.com/SeamusWaldron/gocube_perm/internal/ble"
	"github.com/SeamusWaldron/gocube_perm/internal/protocol"
)

// DefaultScanTimeout is how long ConnectFirst scans for devices.
const DefaultScanTimeout = 10 * time.Second

// Device represents a discovered GoCube device.
// Devices are returned by the Scan function and can be passed to Connect.
type Device struct {
	Name string // Device name (e.g., "GoCube_XXXX")
	UUID string // Platform address used for connection
	RSSI int16  // Signal strength in dBm

	result ble.ScanResult
}

// GoCube is a connected GoCube smart cube. Every rotation it reports is
// queued on an internal Controller, so the tracked permutation follows the
// physical cube.
//
// The tracked state starts solved. Call Reset when the physical cube is
// solved but the tracked state has drifted.
type GoCube struct {
	client *ble.Client
	ctrl   *Controller
	device Device

	ctx     context.Context
	cancel  context.CancelFunc
	runDone chan struct{}

	mu        sync.RWMutex
	onMove    func(Move, Perm)
	onBattery func(int)
	onSolved  func()
}

// Scan discovers nearby GoCube devices via Bluetooth Low Energy.
// It returns every device seen before the timeout or ctx ends.
//
// Ensure the cube is not connected to another device (e.g., phone app).
func Scan(ctx context.Context, timeout time.Duration) ([]Device, error) {
	client, err := ble.NewClient(Logger())
	if err != nil {
		return nil, err
	}

	results, err := client.Scan(ctx, timeout)
	if err != nil {
		return nil, err
	}

	devices := make([]Device, len(results))
	for i, r := range results {
		devices[i] = Device{
			Name:   r.Name,
			UUID:   r.UUID,
			RSSI:   r.RSSI,
			result: r,
		}
	}
	return devices, nil
}

// Connect connects to a device returned by Scan. Options configure the
// internal Controller.
func Connect(ctx context.Context, device Device, opts ...Option) (*GoCube, error) {
	client, err := ble.NewClient(Logger())
	if err != nil {
		return nil, err
	}
	if err := client.Connect(ctx, device.result); err != nil {
		return nil, err
	}

	runCtx, cancel := context.WithCancel(context.Background())
	g := &GoCube{
		client:  client,
		ctrl:    NewController(opts...),
		device:  device,
		ctx:     runCtx,
		cancel:  cancel,
		runDone: make(chan struct{}),
	}
	g.ctrl.OnMove(g.handleMove)

	go func() {
		defer close(g.runDone)
		g.ctrl.Run(runCtx)
	}()

	client.SetMessageCallback(g.handleMessage)
	return g, nil
}

// ConnectFirst scans for DefaultScanTimeout and connects to the first GoCube
// found.
func ConnectFirst(ctx context.Context, opts ...Option) (*GoCube, error) {
	devices, err := Scan(ctx, DefaultScanTimeout)
	if err != nil {
		return nil, err
	}
	if len(devices) == 0 {
		return nil, ErrDeviceNotFound
	}
	return Connect(ctx, devices[0], opts...)
}

// Close applies any queued moves, stops tracking and disconnects.
func (g *GoCube) Close() error {
	g.client.SetMessageCallback(nil)
	g.ctrl.Close()
	<-g.runDone
	g.cancel()
	return g.client.Disconnect()
}

// IsConnected returns true if still connected to the cube.
func (g *GoCube) IsConnected() bool {
	return g.client.IsConnected()
}

// DeviceName returns the connected device name.
func (g *GoCube) DeviceName() string {
	return g.device.Name
}

// OnMove sets a callback that fires for each move with the resulting state.
func (g *GoCube) OnMove(cb func(Move, Perm)) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.onMove = cb
}

// OnBattery sets a callback for battery level updates.
func (g *GoCube) OnBattery(cb func(int)) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.onBattery = cb
}

// OnSolved sets a callback that fires when a move returns the tracked state
// to the identity.
func (g *GoCube) OnSolved(cb func()) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.onSolved = cb
}

// Permutation returns the tracked state.
func (g *GoCube) Permutation() Perm {
	return g.ctrl.Permutation()
}

// IsSolved reports whether the tracked state is the identity.
func (g *GoCube) IsSolved() bool {
	return g.ctrl.Permutation().IsIdentity()
}

// Moves returns the moves applied since connection or the last Reset.
func (g *GoCube) Moves() []Move {
	return g.ctrl.History()
}

// Battery returns the last known battery level (0-100), or -1 if unknown.
func (g *GoCube) Battery() int {
	return g.client.Battery()
}

// Reset marks the current physical state as solved. Moves already
// reported are applied first.
func (g *GoCube) Reset(ctx context.Context) error {
	return g.ctrl.Reset(ctx)
}

// FlashBacklight flashes the cube backlight.
func (g *GoCube) FlashBacklight() error {
	return g.client.FlashBacklight()
}

func (g *GoCube) handleMove(m Move, p Perm) {
	g.mu.RLock()
	moveCb, solvedCb := g.onMove, g.onSolved
	g.mu.RUnlock()

	if moveCb != nil {
		moveCb(m, p)
	}
	if solvedCb != nil && p.IsIdentity() {
		solvedCb()
	}
}

func (g *GoCube) handleMessage(msg *protocol.Message) {
	switch msg.Type {
	case protocol.MsgTypeRotation:
		g.handleRotation(msg)
	case protocol.MsgTypeBattery:
		g.handleBattery(msg)
	}
}

func (g *GoCube) handleRotation(msg *protocol.Message) {
	events, err := protocol.DecodeRotation(msg.Payload)
	if err != nil {
		Logger().Warn("undecodable rotation", "error", err, "raw", msg.Base64())
		return
	}

	moves := rotationsToMoves(events)
	if err := g.ctrl.Enqueue(g.ctx, moves...); err != nil {
		Logger().Warn("rotation dropped", "error", err, "moves", FormatMoves(moves))
	}
}

func (g *GoCube) handleBattery(msg *protocol.Message) {
	battery, err := protocol.DecodeBattery(msg.Payload)
	if err != nil {
		return
	}

	g.mu.RLock()
	cb := g.onBattery
	g.mu.RUnlock()

	if cb != nil {
		cb(battery.Level)
	}
}

// rotationsToMoves converts decoded rotations into moves. Consecutive
// quarter turns of one face reported together are merged, so a burst of
// "R R" becomes R2.
func rotationsToMoves(events []protocol.RotationEvent) []Move {
	moves := make([]Move, 0, len(events))
	for _, e := range events {
		face, ok := ParseFace(rune(e.Face))
		if !ok {
			continue
		}
		turn := CW
		if !e.Clockwise {
			turn = CCW
		}
		moves = append(moves, Move{Face: face, Turn: turn})
	}
	return MergeMoves(moves)
}
