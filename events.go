package routetable

const (
	insertResultAdded    = "added"
	insertResultReplaced = "replaced"
	insertResultRejected = "rejected"

	lookupResultHit     = "hit"
	lookupResultMiss    = "miss"
	lookupResultInvalid = "invalid"

	rangeEventMisaligned = "misaligned_range"
	rangeEventInverted   = "inverted_range"
)
