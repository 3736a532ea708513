package routetable

import (
	"encoding/binary"
	"net/netip"
)

// parseAddr4 parses s as a dotted-quad IPv4 address. IPv6 forms are rejected,
// including IPv4-mapped IPv6 ("::ffff:1.2.3.4"); the table stores IPv4 only
// and accepting mapped forms would let the same address enter under two
// spellings. field names the argument being parsed and is carried into the
// returned *AddressError.
func parseAddr4(field, s string) (netip.Addr, error) {
	addr, err := netip.ParseAddr(s)
	if err != nil || !addr.Is4() {
		return netip.Addr{}, &AddressError{
			Err:   ErrInvalidAddress,
			Field: field,
			Input: s,
		}
	}

	return addr, nil
}

// addrValue returns the big-endian uint32 value of a 4-byte address. The
// trie walks this value most-significant bit first.
func addrValue(addr netip.Addr) uint32 {
	bytes := addr.As4()
	return binary.BigEndian.Uint32(bytes[:])
}

// addrFromValue is the inverse of addrValue.
func addrFromValue(value uint32) netip.Addr {
	var bytes [4]byte
	binary.BigEndian.PutUint32(bytes[:], value)
	return netip.AddrFrom4(bytes)
}

// addrBit returns bit bitIndex of value, counting from the most significant
// bit (bitIndex 0) down.
func addrBit(value uint32, bitIndex int) int {
	return int((value >> (31 - bitIndex)) & 1)
}
