// Package artnet provides Art-Net protocol packet building and parsing.
package artnet

import (
	"encoding/binary"
	"errors"
)

const (
	// OpCodeDMX is the Art-Net operation code for DMX data.
	OpCodeDMX uint16 = 0x5000
	// ProtocolVersion is the Art-Net protocol version.
	ProtocolVersion uint16 = 14
	// HeaderSize is the number of bytes preceding the DMX data.
	HeaderSize = 18
	// MaxDataLength is the number of DMX channels per universe.
	MaxDataLength = 512
	// DefaultPort is the standard Art-Net UDP port (0x1936).
	DefaultPort = 6454
	// MaxUniverse is the highest 15-bit port address.
	MaxUniverse = 0x7FFF
)

// ArtNetID is the Art-Net packet identifier.
var ArtNetID = []byte{'A', 'r', 't', '-', 'N', 'e', 't', 0x00}

var (
	// ErrPacketTooShort is returned when a datagram is smaller than the ArtDmx header.
	ErrPacketTooShort = errors.New("artnet: packet too short")
	// ErrInvalidID is returned when the datagram does not start with "Art-Net\0".
	ErrInvalidID = errors.New("artnet: invalid packet id")
	// ErrUnsupportedOpCode is returned for anything other than ArtDmx.
	ErrUnsupportedOpCode = errors.New("artnet: unsupported opcode")
	// ErrLengthMismatch is returned when the length field disagrees with the datagram size.
	ErrLengthMismatch = errors.New("artnet: data length mismatch")
)

// DMXPacket is a decoded ArtDmx datagram.
type DMXPacket struct {
	Sequence byte
	Physical byte
	Universe uint16
	Data     []byte
}

// BuildDMXPacket creates an ArtDmx packet carrying data for the given universe.
// The universe is written as-is (no 1-based adjustment) and data longer than
// MaxDataLength is truncated.
// Sequence should increment for each packet (0-255, wraps around) so receivers
// can detect out-of-order UDP packets.
func BuildDMXPacket(universe uint16, sequence byte, data []byte) []byte {
	if len(data) > MaxDataLength {
		data = data[:MaxDataLength]
	}
	packet := make([]byte, HeaderSize+len(data))

	copy(packet[0:8], ArtNetID)                                  // ID (8 bytes): "Art-Net\0"
	binary.LittleEndian.PutUint16(packet[8:10], OpCodeDMX)       // OpCode (2 bytes): 0x00 0x50
	binary.BigEndian.PutUint16(packet[10:12], ProtocolVersion)   // Protocol version (2 bytes): 0x00 0x0E
	packet[12] = sequence                                        // Sequence (1 byte)
	packet[13] = 0                                               // Physical input port (1 byte): 0
	binary.LittleEndian.PutUint16(packet[14:16], universe)       // Universe (2 bytes)
	binary.BigEndian.PutUint16(packet[16:18], uint16(len(data))) // Data length (2 bytes)

	copy(packet[HeaderSize:], data)

	return packet
}

// Parse decodes an ArtDmx datagram. The returned Data aliases b.
func Parse(b []byte) (*DMXPacket, error) {
	if len(b) < HeaderSize {
		return nil, ErrPacketTooShort
	}
	if string(b[0:8]) != string(ArtNetID) {
		return nil, ErrInvalidID
	}
	if binary.LittleEndian.Uint16(b[8:10]) != OpCodeDMX {
		return nil, ErrUnsupportedOpCode
	}

	length := int(binary.BigEndian.Uint16(b[16:18]))
	if length != len(b)-HeaderSize {
		return nil, ErrLengthMismatch
	}

	return &DMXPacket{
		Sequence: b[12],
		Physical: b[13],
		Universe: binary.LittleEndian.Uint16(b[14:16]),
		Data:     b[HeaderSize:],
	}, nil
}
