package routetable

import (
	"fmt"
	"net/netip"
)

// Table is a longest-prefix-match route table over IPv4 addresses. Routes
// are held in a binary trie whose nodes live in a single growable arena;
// inserting never removes or rewires existing nodes, so the structure only
// grows.
//
// A Table must not be mutated concurrently with other operations; see the
// package documentation.
type Table struct {
	config *config
	nodes  []trieNode
	routes int
}

// New creates an empty Table from zero or more Option builders.
func New(opts ...Option) (*Table, error) {
	cfg, err := configFromOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &Table{
		config: cfg,
		nodes:  make([]trieNode, 1), // slot 0 is the root
	}, nil
}

// InsertRange adds a route mapping the address range [start, end] to dest.
// All three arguments are dotted-quad IPv4 strings.
//
// The range is reduced to the prefix of leading bits its endpoints share: a
// single-address range becomes a /32 host route, and the full address space
// becomes the /0 default route. In the default lax mode no alignment is
// checked, so a range that is not an aligned CIDR block inserts under
// whatever common prefix its endpoints yield; in strict mode such ranges are
// rejected. Inserting the exact prefix of an existing route replaces that
// route's destination.
//
// All inputs are validated before the trie is touched: a failed insert
// leaves the table unchanged.
func (t *Table) InsertRange(start, end, dest string) error {
	startAddr, err := parseAddr4("start", start)
	if err != nil {
		t.config.metrics.RecordInsert(insertResultRejected)
		return err
	}

	endAddr, err := parseAddr4("end", end)
	if err != nil {
		t.config.metrics.RecordInsert(insertResultRejected)
		return err
	}

	destAddr, err := parseAddr4("dest", dest)
	if err != nil {
		t.config.metrics.RecordInsert(insertResultRejected)
		return err
	}

	startValue := addrValue(startAddr)
	endValue := addrValue(endAddr)
	prefixLen := commonPrefixLen(startValue, endValue)

	if err := t.checkRange(start, end, startValue, endValue, prefixLen); err != nil {
		t.config.metrics.RecordInsert(insertResultRejected)
		return err
	}

	t.insertRoute(startValue, prefixLen, destAddr)
	return nil
}

// InsertPrefix adds a route mapping prefix to dest. It is the CIDR-native
// counterpart of InsertRange for callers that already hold a netip.Prefix.
// The prefix address must be IPv4 and is masked to its prefix length before
// insertion.
func (t *Table) InsertPrefix(prefix netip.Prefix, dest netip.Addr) error {
	if !prefix.IsValid() || !prefix.Addr().Is4() {
		t.config.metrics.RecordInsert(insertResultRejected)
		return &AddressError{
			Err:   ErrInvalidAddress,
			Field: "prefix",
			Input: prefix.String(),
		}
	}

	if !dest.Is4() {
		t.config.metrics.RecordInsert(insertResultRejected)
		return &AddressError{
			Err:   ErrInvalidAddress,
			Field: "dest",
			Input: dest.String(),
		}
	}

	t.insertRoute(addrValue(prefix.Masked().Addr()), prefix.Bits(), dest)
	return nil
}

// Lookup returns the destination of the most specific route covering query,
// a dotted-quad IPv4 string. The second return value reports whether any
// route matched; a miss is a normal outcome, not an error.
func (t *Table) Lookup(query string) (netip.Addr, bool, error) {
	addr, err := parseAddr4("query", query)
	if err != nil {
		t.config.metrics.RecordLookup(lookupResultInvalid)
		return netip.Addr{}, false, err
	}

	dest, ok := t.lookup(addrValue(addr))
	t.recordLookup(ok)
	return dest, ok, nil
}

// LookupAddr returns the destination of the most specific route covering
// addr. It is the parse-free counterpart of Lookup; non-IPv4 addresses
// never match.
func (t *Table) LookupAddr(addr netip.Addr) (netip.Addr, bool) {
	if !addr.Is4() {
		t.config.metrics.RecordLookup(lookupResultInvalid)
		return netip.Addr{}, false
	}

	dest, ok := t.lookup(addrValue(addr))
	t.recordLookup(ok)
	return dest, ok
}

// Len returns the number of distinct routes in the table. Replacing a
// route's destination via a duplicate insert does not change the count.
func (t *Table) Len() int {
	return t.routes
}

// checkRange applies range-mode policy to an endpoint pair. In strict mode a
// bad range is an error; in lax mode it is observed and allowed through.
func (t *Table) checkRange(start, end string, startValue, endValue uint32, prefixLen int) error {
	if startValue > endValue {
		if t.config.rangeMode == RangeModeStrict {
			return &RangeError{Err: ErrInvertedRange, Start: start, End: end, PrefixLen: prefixLen}
		}

		t.config.metrics.RecordRangeEvent(rangeEventInverted)
		t.config.logger.Warn("inserting inverted range",
			"start", start, "end", end, "prefix_len", prefixLen)
		return nil
	}

	if !rangeIsAligned(startValue, endValue, prefixLen) {
		if t.config.rangeMode == RangeModeStrict {
			return &RangeError{Err: ErrMisalignedRange, Start: start, End: end, PrefixLen: prefixLen}
		}

		t.config.metrics.RecordRangeEvent(rangeEventMisaligned)
		t.config.logger.Warn("inserting misaligned range",
			"start", start, "end", end, "prefix_len", prefixLen)
	}

	return nil
}

func (t *Table) insertRoute(value uint32, prefixLen int, dest netip.Addr) {
	replaced := t.insert(value, prefixLen, dest)
	if replaced {
		t.config.metrics.RecordInsert(insertResultReplaced)
		t.config.logger.Warn("replaced existing route",
			"prefix", prefixString(value, prefixLen), "dest", dest.String())
		return
	}

	t.routes++
	t.config.metrics.RecordInsert(insertResultAdded)
}

func (t *Table) recordLookup(ok bool) {
	if ok {
		t.config.metrics.RecordLookup(lookupResultHit)
		return
	}
	t.config.metrics.RecordLookup(lookupResultMiss)
}

func prefixString(value uint32, prefixLen int) string {
	masked := value &^ hostMask(prefixLen)
	return netip.PrefixFrom(addrFromValue(masked), prefixLen).String()
}
