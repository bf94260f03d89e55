package dropdown

import "hash/fnv"

// ID uniquely identifies a node within a Surface.
// IDs stay stable for the lifetime of the node.
type ID uint64

// nextID generates an ID from a name and the surface's node counter.
// The counter disambiguates equal names (e.g. list items built in a loop).
func (s *Surface) nextID(name string) ID {
	s.idCounter++

	h := fnv.New64a()
	h.Write([]byte(name))
	nameHash := h.Sum64()

	// counter (48 bits) + name hash (16 bits)
	return ID(uint64(s.idCounter)<<16 | nameHash&0xFFFF)
}
