package routetable

import "math/bits"

// commonPrefixLen returns the number of leading bits shared by start and end.
// Equal values share all 32 bits (a host route); values differing in the top
// bit share none (the default route).
func commonPrefixLen(start, end uint32) int {
	return bits.LeadingZeros32(start ^ end)
}

// hostMask returns a mask of the (32 - prefixLen) low host bits for a prefix
// of the given length.
func hostMask(prefixLen int) uint32 {
	return ^uint32(0) >> prefixLen
}

// rangeIsAligned reports whether [start, end] is exactly the CIDR block of
// the inferred prefix length: start on a block boundary and end the block's
// last address.
func rangeIsAligned(start, end uint32, prefixLen int) bool {
	mask := hostMask(prefixLen)
	return start&mask == 0 && end == start|mask
}

// addrBits returns the full 32-bit decomposition of value, most significant
// bit first. The trie walks bits directly off the uint32; this form exists
// for callers that need the expanded sequence.
func addrBits(value uint32) []uint8 {
	sequence := make([]uint8, 32)
	for i := range sequence {
		sequence[i] = uint8(addrBit(value, i))
	}
	return sequence
}
