package routetable

import "net/netip"

// trieNode is one vertex of the binary prefix trie. Nodes live in the
// Table's arena slice and refer to their children by arena index; slot 0 is
// the root, which is never anyone's child, so a zero child index means the
// edge is absent.
//
// A node's prefix is implicit in its position: the sequence of bit choices
// that reaches it from the root. A node is terminal when a route's prefix
// ends exactly there; dest is valid iff terminal is set. A terminal node may
// still have children (a short route co-existing with more specific routes
// beneath it).
type trieNode struct {
	children [2]int32
	terminal bool
	dest     netip.Addr
}

// insert walks the top prefixLen bits of value from the root, creating
// missing nodes along the way, and marks the endpoint terminal with dest.
// It reports whether the endpoint replaced an existing route for the same
// exact prefix. Nodes are only ever added; existing edges are never rewired.
func (t *Table) insert(value uint32, prefixLen int, dest netip.Addr) (replaced bool) {
	index := int32(0)
	for bitIndex := 0; bitIndex < prefixLen; bitIndex++ {
		bit := addrBit(value, bitIndex)
		child := t.nodes[index].children[bit]
		if child == 0 {
			t.nodes = append(t.nodes, trieNode{})
			child = int32(len(t.nodes) - 1)
			t.nodes[index].children[bit] = child
		}
		index = child
	}

	endpoint := &t.nodes[index]
	replaced = endpoint.terminal
	endpoint.terminal = true
	endpoint.dest = dest
	return replaced
}

// lookup walks the 32 bits of value from the root, remembering the deepest
// terminal node visited, and stops at the first absent edge. Deeper
// terminals are visited later in the walk, so the last one seen is the
// longest matching prefix; a terminal root is the default-route fallback.
func (t *Table) lookup(value uint32) (dest netip.Addr, ok bool) {
	if t.nodes[0].terminal {
		dest, ok = t.nodes[0].dest, true
	}

	index := int32(0)
	for bitIndex := 0; bitIndex < 32; bitIndex++ {
		child := t.nodes[index].children[addrBit(value, bitIndex)]
		if child == 0 {
			break
		}
		index = child
		if t.nodes[index].terminal {
			dest, ok = t.nodes[index].dest, true
		}
	}

	return dest, ok
}
