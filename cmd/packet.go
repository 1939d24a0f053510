package cmd

import (
	"errors"
	"fmt"
)

// Packet layout: [Header(0xAA), address, command, arg0, arg1, checksum]

const (
	PacketHeader = 0xAA
	PacketSize   = 6
)

var (
	ErrBadPacket = errors.New("bad packet")
	ErrChecksum  = errors.New("checksum mismatch")
)

type Packet struct {
	Address Address
	Command Command
	Arg0    byte
	Arg1    byte
}

// Checksum is the byte sum of the four payload bytes.
func (p Packet) Checksum() byte {
	return byte(p.Address) + byte(p.Command) + p.Arg0 + p.Arg1
}

func (p Packet) Encode() [PacketSize]byte {
	return [PacketSize]byte{PacketHeader, byte(p.Address), byte(p.Command), p.Arg0, p.Arg1, p.Checksum()}
}

// For reports whether the packet is addressed to addr.
func (p Packet) For(addr Address) bool {
	return p.Address == addr || p.Address == Broadcast
}

func DecodePacket(b []byte) (Packet, error) {
	if len(b) != PacketSize {
		return Packet{}, fmt.Errorf("%w: length %d", ErrBadPacket, len(b))
	}
	if b[0] != PacketHeader {
		return Packet{}, fmt.Errorf("%w: header 0x%02X", ErrBadPacket, b[0])
	}
	p := Packet{
		Address: Address(b[1]),
		Command: Command(b[2]),
		Arg0:    b[3],
		Arg1:    b[4],
	}
	if sum := p.Checksum(); sum != b[5] {
		return Packet{}, fmt.Errorf("%w: got 0x%02X, want 0x%02X", ErrChecksum, b[5], sum)
	}
	return p, nil
}

// PacketReader assembles packets from a byte stream, dropping bytes until it sees a
// header.
type PacketReader struct {
	buf [PacketSize]byte
	n   int
}

// Feed adds one byte. It reports a packet once one is complete; a corrupt packet is
// reported as an error and the reader picks up again at the next header, even one
// already inside the rejected bytes.
func (r *PacketReader) Feed(b byte) (Packet, bool, error) {
	if r.n == 0 && b != PacketHeader {
		return Packet{}, false, nil
	}
	r.buf[r.n] = b
	r.n++
	if r.n < PacketSize {
		return Packet{}, false, nil
	}
	p, err := DecodePacket(r.buf[:])
	if err != nil {
		r.resync()
		return Packet{}, false, err
	}
	r.n = 0
	return p, true, nil
}

// resync keeps the buffered bytes from the next header on, so a packet that starts
// inside a truncated one is not lost.
func (r *PacketReader) resync() {
	for i := 1; i < r.n; i++ {
		if r.buf[i] == PacketHeader {
			r.n = copy(r.buf[:], r.buf[i:r.n])
			return
		}
	}
	r.n = 0
}
