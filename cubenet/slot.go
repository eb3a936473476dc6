package cubenet

// Slot is one of the six canonical positions on a cube.
type Slot uint8

const (
	SlotFront Slot = iota
	SlotBack
	SlotLeft
	SlotRight
	SlotTop
	SlotBottom
)

// Slots lists every slot in index order.
var Slots = [6]Slot{SlotFront, SlotBack, SlotLeft, SlotRight, SlotTop, SlotBottom}

// slotAdjacency is the fixed cube topology: for every slot, the four slots
// around it in clockwise order as seen from outside the cube, starting
// from that slot's left edge. Back is mirrored relative to Front; Top has
// Back on its top edge and Bottom has Front on its top edge. Never mutated.
var slotAdjacency = [6][4]Slot{
	SlotFront:  {SlotLeft, SlotTop, SlotRight, SlotBottom},
	SlotBack:   {SlotRight, SlotTop, SlotLeft, SlotBottom},
	SlotLeft:   {SlotBack, SlotTop, SlotFront, SlotBottom},
	SlotRight:  {SlotFront, SlotTop, SlotBack, SlotBottom},
	SlotTop:    {SlotLeft, SlotBack, SlotRight, SlotFront},
	SlotBottom: {SlotLeft, SlotFront, SlotRight, SlotBack},
}

var slotOpposite = [6]Slot{
	SlotFront:  SlotBack,
	SlotBack:   SlotFront,
	SlotLeft:   SlotRight,
	SlotRight:  SlotLeft,
	SlotTop:    SlotBottom,
	SlotBottom: SlotTop,
}

// Adjacent returns the canonical neighbours of s in left, top, right,
// bottom order.
func (s Slot) Adjacent() [4]Slot { return slotAdjacency[s] }

// Opposite returns the slot across the cube from s.
func (s Slot) Opposite() Slot { return slotOpposite[s] }

func (s Slot) String() string {
	switch s {
	case SlotFront:
		return "Front"
	case SlotBack:
		return "Back"
	case SlotLeft:
		return "Left"
	case SlotRight:
		return "Right"
	case SlotTop:
		return "Top"
	case SlotBottom:
		return "Bottom"
	default:
		return "Unknown"
	}
}
