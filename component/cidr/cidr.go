package cidr

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrInvalidAddress = errors.New("invalid address")
	ErrInvalidLength  = errors.New("invalid prefix length")
)

// AddressError reports that the address portion of an input is not a
// valid address in either family. It wraps the underlying parse error.
type AddressError struct {
	Text string
	Err  error
}

func (e *AddressError) Error() string {
	return fmt.Sprintf("invalid address %q: %v", e.Text, e.Err)
}

func (e *AddressError) Unwrap() error { return e.Err }

func (e *AddressError) Is(target error) bool { return target == ErrInvalidAddress }

// LengthError reports a malformed or out-of-range prefix length.
type LengthError struct {
	Text string
	Err  error
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("invalid prefix length %q: %v", e.Text, e.Err)
}

func (e *LengthError) Unwrap() error { return e.Err }

func (e *LengthError) Is(target error) bool { return target == ErrInvalidLength }

// Cidr is an address block: a prefix plus the number of leading bits
// that are significant. Length 0 is the universal block.
type Cidr struct {
	Prefix Prefix
	Length uint8
}

// NewCidr pairs a prefix with a mask length, rejecting lengths beyond
// the family width.
func NewCidr(p Prefix, length uint8) (Cidr, error) {
	if int(length) > p.Bits() {
		return Cidr{}, &LengthError{
			Text: strconv.Itoa(int(length)),
			Err:  fmt.Errorf("exceeds %d-bit family", p.Bits()),
		}
	}
	return Cidr{Prefix: p, Length: length}, nil
}

// ParseCidr parses "<address>" or "<address>/<length>". A bare address
// gets the full width of its family.
func ParseCidr(s string) (Cidr, error) {
	text, lengthText, hasLength := strings.Cut(s, "/")
	prefix, err := ParsePrefix(text)
	if err != nil {
		return Cidr{}, err
	}
	length := uint8(prefix.Bits())
	if hasLength {
		n, err := strconv.ParseUint(lengthText, 10, 8)
		if err != nil {
			return Cidr{}, &LengthError{Text: lengthText, Err: err}
		}
		if int(n) > prefix.Bits() {
			return Cidr{}, &LengthError{
				Text: lengthText,
				Err:  fmt.Errorf("exceeds %d-bit family", prefix.Bits()),
			}
		}
		length = uint8(n)
	}
	return Cidr{Prefix: prefix, Length: length}, nil
}

// Next consumes the leading bit: the same block viewed one level
// deeper, prefix shifted left by one, length decremented.
// Precondition: Length > 0.
func (c Cidr) Next() Cidr {
	return Cidr{Prefix: c.Prefix.ShiftLeft(1), Length: c.Length - 1}
}

// LeadingBit returns the first significant bit of the block, or 0 for
// the zero-length block, which has no bit left to test.
func (c Cidr) LeadingBit() byte {
	if c.Length == 0 {
		return 0
	}
	return c.Prefix.MSBit()
}
