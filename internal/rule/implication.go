package rule

// Implication is a bitset of the consequences the propagation engine can
// draw from a single cell's Descriptor.
type Implication uint8

const (
	Conflict Implication = 1 << iota
	SuccessorAlive
	SuccessorDead
	CurrentAlive
	CurrentDead
	NeighborhoodAlive
	NeighborhoodDead
)

// Empty reports whether no implication was deduced.
func (i Implication) Empty() bool { return i == 0 }

// Has reports whether i contains every flag in mask.
func (i Implication) Has(mask Implication) bool { return i&mask == mask }

// Intersects reports whether i shares any flag with mask.
func (i Implication) Intersects(mask Implication) bool { return i&mask != 0 }
