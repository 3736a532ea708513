package routetable

// Metrics records insert and lookup outcomes emitted by Table.
//
// Implementations should be safe for concurrent use when the owning Table
// is shared under external synchronization.
type Metrics interface {
	// RecordInsert is called once per insert attempt with the result label:
	// "added", "replaced", or "rejected".
	RecordInsert(result string)
	// RecordLookup is called once per lookup attempt with the result label:
	// "hit", "miss", or "invalid".
	RecordLookup(result string)
	// RecordRangeEvent is called when the range reducer observes a
	// noteworthy condition, such as a misaligned or inverted range.
	RecordRangeEvent(event string)
}

// noopMetrics is the default Metrics implementation when metrics are not
// explicitly configured.
type noopMetrics struct{}

func (noopMetrics) RecordInsert(string) {}

func (noopMetrics) RecordLookup(string) {}

func (noopMetrics) RecordRangeEvent(string) {}
