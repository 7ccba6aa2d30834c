package landmark

// Group identifies the part of the hand a landmark belongs to. The
// renderer assigns one display color per group.
type Group int

// Finger groups.
const (
	GroupPalm Group = iota
	GroupThumb
	GroupIndex
	GroupMiddle
	GroupRing
	GroupPinky
)

// Connection is a bone between two landmark indices. B is the endpoint
// whose finger group determines the bone's display color.
type Connection struct {
	A int
	B int
}

// Connections is the fixed hand skeleton topology: the four bones of
// each finger chain plus the three palm arcs between finger bases.
var Connections = []Connection{
	// Thumb
	{Wrist, ThumbCMC}, {ThumbCMC, ThumbMCP}, {ThumbMCP, ThumbIP}, {ThumbIP, ThumbTip},
	// Index finger
	{Wrist, IndexMCP}, {IndexMCP, IndexPIP}, {IndexPIP, IndexDIP}, {IndexDIP, IndexTip},
	// Middle finger
	{Wrist, MiddleMCP}, {MiddleMCP, MiddlePIP}, {MiddlePIP, MiddleDIP}, {MiddleDIP, MiddleTip},
	// Ring finger
	{Wrist, RingMCP}, {RingMCP, RingPIP}, {RingPIP, RingDIP}, {RingDIP, RingTip},
	// Pinky
	{Wrist, PinkyMCP}, {PinkyMCP, PinkyPIP}, {PinkyPIP, PinkyDIP}, {PinkyDIP, PinkyTip},
	// Palm arcs
	{IndexMCP, MiddleMCP}, {MiddleMCP, RingMCP}, {RingMCP, PinkyMCP},
}

var groups = map[int]Group{
	ThumbCMC: GroupThumb, ThumbMCP: GroupThumb, ThumbIP: GroupThumb, ThumbTip: GroupThumb,
	IndexMCP: GroupIndex, IndexPIP: GroupIndex, IndexDIP: GroupIndex, IndexTip: GroupIndex,
	MiddleMCP: GroupMiddle, MiddlePIP: GroupMiddle, MiddleDIP: GroupMiddle, MiddleTip: GroupMiddle,
	RingMCP: GroupRing, RingPIP: GroupRing, RingDIP: GroupRing, RingTip: GroupRing,
	PinkyMCP: GroupPinky, PinkyPIP: GroupPinky, PinkyDIP: GroupPinky, PinkyTip: GroupPinky,
}

// GroupOf returns the finger group for a landmark index. The wrist and
// any index outside the known table map to the palm.
func GroupOf(i int) Group {
	if g, ok := groups[i]; ok {
		return g
	}
	return GroupPalm
}
