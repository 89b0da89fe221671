package cidr

import (
	"encoding/binary"
	"net/netip"
)

// Family selects the address family of a Prefix.
type Family byte

const (
	V4 Family = iota
	V6
)

const (
	BitsV4 = 32
	BitsV6 = 128
)

func (f Family) String() string {
	switch f {
	case V4:
		return "v4"
	case V6:
		return "v6"
	default:
		return ""
	}
}

// Bits returns the address width of the family.
func (f Family) Bits() int {
	if f == V4 {
		return BitsV4
	}
	return BitsV6
}

// Prefix is a fixed-width address value stored as one big unsigned
// integer whose top bit is the first bit of the address, so the
// leading bit can be read and shifted out without byte juggling.
// The 128-bit family keeps its value in two 64-bit halves; left
// shifts carry bits out of the low half into the high half.
//
// A Prefix is immutable, every operation returns a new value.
type Prefix struct {
	family Family
	v4     uint32
	hi, lo uint64
}

// PrefixFrom4 builds a V4 prefix from network-order octets.
func PrefixFrom4(octets [4]byte) Prefix {
	return Prefix{family: V4, v4: binary.BigEndian.Uint32(octets[:])}
}

// PrefixFrom16 builds a V6 prefix from network-order octets.
func PrefixFrom16(octets [16]byte) Prefix {
	return Prefix{
		family: V6,
		hi:     binary.BigEndian.Uint64(octets[:8]),
		lo:     binary.BigEndian.Uint64(octets[8:]),
	}
}

// ParsePrefix parses a dotted-quad or colon-hex address. Addresses in
// `::` compressed or 4-in-6 form belong to the 16-byte family.
func ParsePrefix(s string) (Prefix, error) {
	addr, err := netip.ParseAddr(s)
	if err != nil {
		return Prefix{}, &AddressError{Text: s, Err: err}
	}
	if addr.Is4() {
		return PrefixFrom4(addr.As4()), nil
	}
	return PrefixFrom16(addr.As16()), nil
}

func (p Prefix) Family() Family {
	return p.family
}

// Bits returns the prefix width in bits, 32 or 128.
func (p Prefix) Bits() int {
	return p.family.Bits()
}

// MSBit returns the leading address bit, 0 or 1.
func (p Prefix) MSBit() byte {
	if p.family == V4 {
		return byte(p.v4 >> 31)
	}
	return byte(p.hi >> 63)
}

// ShiftLeft returns the prefix logically shifted left by n bits within
// the family width. Defined for 0 <= n < Bits().
func (p Prefix) ShiftLeft(n int) Prefix {
	switch {
	case p.family == V4:
		p.v4 <<= uint(n)
	case n >= 64:
		p.hi = p.lo << uint(n-64)
		p.lo = 0
	default:
		// n < 64: shift counts of 64 and above come out as zero,
		// so the n == 0 carry term vanishes on its own.
		p.hi = p.hi<<uint(n) | p.lo>>uint(64-n)
		p.lo <<= uint(n)
	}
	return p
}
