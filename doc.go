// Package routetable provides an in-memory longest-prefix-match (LPM) route
// table for IPv4 addresses, the data-structure core behind IP routing tables,
// NAT rule selection, and CIDR-based access control.
//
// # Features
//
//   - Binary trie keyed by address bits, stored in a flat node arena with
//     integer child slots instead of a pointer graph
//   - Range-based insertion: a (start, end) address pair is reduced to its
//     common leading-bit prefix, so callers never compute CIDR lengths
//   - CIDR-native insertion via netip.Prefix for callers that already have one
//   - Longest-match lookup with default-route fallback and a parse-free
//     netip.Addr fast path
//   - Optional strict range validation that rejects inverted or misaligned
//     ranges instead of silently reducing them
//   - Optional observability with pluggable logging and metrics
//   - Type-safe using modern Go netip.Addr
//
// # Basic Usage
//
//	table, err := routetable.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if err := table.InsertRange("10.0.1.0", "10.0.1.255", "192.168.0.1"); err != nil {
//	    log.Fatal(err)
//	}
//
//	dest, ok, err := table.Lookup("10.0.1.7")
//	if err != nil {
//	    log.Printf("lookup failed: %v", err)
//	    return
//	}
//	if ok {
//	    fmt.Printf("next hop: %s\n", dest)
//	}
//
// A route whose range spans the whole address space (0.0.0.0 through
// 255.255.255.255) occupies the zero-length prefix and acts as the default
// route: it matches every query that no longer prefix covers.
//
// # Range Reduction
//
// InsertRange infers the prefix from the XOR of its endpoints: the number of
// leading bits the two addresses share is the prefix length. Equal endpoints
// yield a /32 host route. By default the reduction is best-effort — a range
// that is not an aligned power-of-two block still inserts, under whatever
// common prefix the endpoints happen to share, which may cover more or less
// than the stated range. Enable strict validation to reject such input:
//
//	table, _ := routetable.New(
//	    routetable.WithRangeMode(routetable.RangeModeStrict),
//	)
//	err := table.InsertRange("10.0.0.0", "10.0.0.200", "1.1.1.1")
//	// err wraps routetable.ErrMisalignedRange
//
// # Observability
//
// Add logging and metrics for production monitoring:
// (Prometheus adapter package: github.com/abczzz13/routetable/prometheus)
//
//	import routetableprom "github.com/abczzz13/routetable/prometheus"
//
//	table, err := routetable.New(
//	    routetable.WithLogger(slog.Default()),
//	    routetableprom.WithMetrics(),
//	)
//
// # Concurrency
//
// A Table is not safe for concurrent use while it is being mutated. Callers
// that share a table between a writer and readers must synchronize externally,
// for example with a sync.RWMutex or by swapping fully built tables. A table
// that is no longer inserted into may be read from any number of goroutines.
package routetable
