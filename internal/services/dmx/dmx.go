// Package dmx provides the Art-Net sender session used to drive the fixtures.
package dmx

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"strconv"

	"github.com/bbernstein/lacylights-umbrella/pkg/artnet"
)

const (
	// ChannelsPerFixture is the fixture footprint: R, G, B, White, Amber.
	ChannelsPerFixture = 5
	// DefaultFixtureCount is the number of fixtures on one universe.
	DefaultFixtureCount = 12
	// DefaultUniverse is the universe the fixtures listen on.
	DefaultUniverse = 3
	// DefaultBrightness is the stored brightness level (0 off, 8 full).
	DefaultBrightness = 6
	// MaxFixtures is the largest fixture count that fits in one universe.
	MaxFixtures = artnet.MaxDataLength / ChannelsPerFixture
	// FrameChunkSize is the number of frame bytes per universe, 170 whole pixels.
	FrameChunkSize = 510
)

var (
	// ErrTooManyFixtures is returned when the fixture payload would exceed one universe.
	ErrTooManyFixtures = errors.New("dmx: fixture count exceeds one universe")
	// ErrUniverseRange is returned when a frame would spill past artnet.MaxUniverse.
	ErrUniverseRange = errors.New("dmx: frame exceeds universe range")
)

// Config holds sender configuration.
type Config struct {
	BroadcastAddr string
	Port          int
	Universe      uint16
	FixtureCount  int

	// Brightness (0-8) and ControlBrightness are stored on the session but
	// not applied to outgoing payloads.
	Brightness        int
	ControlBrightness bool
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() Config {
	return Config{
		BroadcastAddr:     "255.255.255.255",
		Port:              artnet.DefaultPort,
		Universe:          DefaultUniverse,
		FixtureCount:      DefaultFixtureCount,
		Brightness:        DefaultBrightness,
		ControlBrightness: true,
	}
}

// Sender owns a broadcast UDP socket and the Art-Net sequence counter.
// A Sender is not safe for concurrent use.
type Sender struct {
	broadcastAddr string
	port          int
	universe      uint16
	fixtureCount  int

	brightness        int
	controlBrightness bool

	// Art-Net sequence number (increments after each packet, wraps at 255)
	sequence byte

	conn *net.UDPConn
	addr *net.UDPAddr
}

// NewSender opens a broadcast-enabled UDP socket for cfg's destination.
func NewSender(cfg Config) (*Sender, error) {
	port := cfg.Port
	if port <= 0 {
		port = artnet.DefaultPort
	}
	fixtureCount := cfg.FixtureCount
	if fixtureCount <= 0 {
		fixtureCount = DefaultFixtureCount
	}
	if fixtureCount > MaxFixtures {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyFixtures, fixtureCount, MaxFixtures)
	}
	broadcastAddr := cfg.BroadcastAddr
	if broadcastAddr == "" {
		broadcastAddr = "255.255.255.255"
	}

	addr, err := net.ResolveUDPAddr("udp4", net.JoinHostPort(broadcastAddr, strconv.Itoa(port)))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", broadcastAddr, err)
	}

	lc := net.ListenConfig{Control: enableBroadcast}
	pc, err := lc.ListenPacket(context.Background(), "udp4", ":0")
	if err != nil {
		return nil, fmt.Errorf("failed to open broadcast socket: %w", err)
	}

	s := &Sender{
		broadcastAddr:     broadcastAddr,
		port:              port,
		universe:          cfg.Universe,
		fixtureCount:      fixtureCount,
		brightness:        cfg.Brightness,
		controlBrightness: cfg.ControlBrightness,
		conn:              pc.(*net.UDPConn),
		addr:              addr,
	}

	log.Printf("📡 Art-Net sender ready, broadcasting to %s (universe %d, %d fixtures)", addr, s.universe, s.fixtureCount)
	return s, nil
}

// RGBPayload repeats [r, g, b, 0, 0] once per fixture.
func RGBPayload(fixtures int, r, g, b byte) []byte {
	return fixturePayload(fixtures, [ChannelsPerFixture]byte{r, g, b, 0, 0})
}

// WAPayload repeats [0, 0, 0, a, w] once per fixture.
func WAPayload(fixtures int, w, a byte) []byte {
	return fixturePayload(fixtures, [ChannelsPerFixture]byte{0, 0, 0, a, w})
}

func fixturePayload(fixtures int, group [ChannelsPerFixture]byte) []byte {
	buf := make([]byte, 0, fixtures*ChannelsPerFixture)
	for i := 0; i < fixtures; i++ {
		buf = append(buf, group[:]...)
	}
	return buf
}

// SendRGB sets every fixture to r, g, b with white and amber off.
func (s *Sender) SendRGB(r, g, b byte) error {
	return s.send(s.universe, RGBPayload(s.fixtureCount, r, g, b))
}

// SendWA sets white and amber on every fixture with the color channels off.
func (s *Sender) SendWA(w, a byte) error {
	return s.send(s.universe, WAPayload(s.fixtureCount, w, a))
}

// Blackout sends an all-zero fixture payload.
func (s *Sender) Blackout() error {
	return s.send(s.universe, make([]byte, s.fixtureCount*ChannelsPerFixture))
}

// SendFrame sends a frame buffer across consecutive universes starting at the
// session universe, FrameChunkSize bytes per universe. Nothing is sent when the
// last universe would pass artnet.MaxUniverse.
func (s *Sender) SendFrame(frame []byte) error {
	chunks := (len(frame) + FrameChunkSize - 1) / FrameChunkSize
	if last := int(s.universe) + chunks - 1; chunks > 0 && last > artnet.MaxUniverse {
		return fmt.Errorf("%w: universes %d-%d", ErrUniverseRange, s.universe, last)
	}

	universe := s.universe
	for start := 0; start < len(frame); start += FrameChunkSize {
		end := start + FrameChunkSize
		if end > len(frame) {
			end = len(frame)
		}
		if err := s.send(universe, frame[start:end]); err != nil {
			return err
		}
		universe++
	}
	return nil
}

// send writes one datagram and advances the sequence counter.
func (s *Sender) send(universe uint16, payload []byte) error {
	if s.conn == nil {
		return fmt.Errorf("art-net send to universe %d: %w", universe, net.ErrClosed)
	}
	packet := artnet.BuildDMXPacket(universe, s.sequence, payload)

	if _, err := s.conn.WriteToUDP(packet, s.addr); err != nil {
		return fmt.Errorf("art-net send to universe %d: %w", universe, err)
	}

	s.sequence++
	return nil
}

// Sequence returns the sequence number the next datagram will carry.
func (s *Sender) Sequence() byte {
	return s.sequence
}

// Universe returns the session universe.
func (s *Sender) Universe() uint16 {
	return s.universe
}

// FixtureCount returns the number of fixtures addressed per datagram.
func (s *Sender) FixtureCount() int {
	return s.fixtureCount
}

// Brightness returns the stored brightness level.
func (s *Sender) Brightness() int {
	return s.brightness
}

// ControlBrightness reports whether brightness control was requested.
func (s *Sender) ControlBrightness() bool {
	return s.controlBrightness
}

// Destination returns the resolved broadcast destination.
func (s *Sender) Destination() *net.UDPAddr {
	return s.addr
}

// Close closes the socket.
func (s *Sender) Close() error {
	if s.conn == nil {
		return nil
	}
	err := s.conn.Close()
	s.conn = nil
	log.Printf("🔌 Art-Net sender closed")
	return err
}
