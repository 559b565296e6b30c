package style

import "fmt"

// Attribute is a single SGR text attribute (bold, italic, underline, ...).
// Each carries its numeric SGR code so it can be rendered directly.
type Attribute int

// SGR attribute codes. "No"-prefixed variants disable the attribute they
// pair with (e.g. NoBold undoes Bold), following the ECMA-48 SGR table.
const (
	AttrReset Attribute = iota
	Bold
	Dim
	Italic
	Underlined
	DoubleUnderlined
	Undercurled
	Underdotted
	Underdashed
	SlowBlink
	RapidBlink
	Reverse
	Hidden
	CrossedOut
	Fraktur
	NoBold
	NoItalic
	NoUnderline
	NoBlink
	NoReverse
	NoHidden
	NoCrossedOut
	Framed
	Encircled
	OverLined
	NotFramedOrEncircled
	NotOverLined
)

// sgrCode is the numeric SGR parameter this attribute renders as.
func (a Attribute) sgrCode() int {
	switch a {
	case AttrReset:
		return 0
	case Bold:
		return 1
	case Dim:
		return 2
	case Italic:
		return 3
	case Underlined:
		return 4
	case SlowBlink:
		return 5
	case RapidBlink:
		return 6
	case Reverse:
		return 7
	case Hidden:
		return 8
	case CrossedOut:
		return 9
	case Fraktur:
		return 20
	case DoubleUnderlined:
		return 21
	case NoBold:
		return 22 // also cancels Dim, per ECMA-48
	case NoItalic:
		return 23 // also cancels Fraktur
	case NoUnderline:
		return 24 // cancels Underlined/DoubleUnderlined/Undercurled/...
	case NoBlink:
		return 25
	case NoReverse:
		return 27
	case NoHidden:
		return 28
	case NoCrossedOut:
		return 29
	case Framed:
		return 51
	case Encircled:
		return 52
	case OverLined:
		return 53
	case NotFramedOrEncircled:
		return 54
	case NotOverLined:
		return 55
	case Undercurled:
		return 4 // rendered via the extended "4:3" form, see String()
	case Underdotted:
		return 4 // "4:4"
	case Underdashed:
		return 4 // "4:5"
	default:
		return 0
	}
}

// String returns the SGR parameter string for this attribute, including the
// colon-extended underline-style forms curly/dotted/dashed terminals use.
func (a Attribute) String() string {
	switch a {
	case Undercurled:
		return "4:3"
	case Underdotted:
		return "4:4"
	case Underdashed:
		return "4:5"
	default:
		return fmt.Sprintf("%d", a.sgrCode())
	}
}

// Attributes is a bitset over the Attribute values that fit in a single SGR
// batch sequence (the common, non-underline-style ones). Underline styles
// are mutually exclusive and applied individually via SetAttribute, since
// only one style can be active at a time.
type Attributes uint32

const (
	AttrBold Attributes = 1 << iota
	AttrDim
	AttrItalic
	AttrUnderlined
	AttrSlowBlink
	AttrRapidBlink
	AttrReverse
	AttrHidden
	AttrCrossedOut
	AttrFraktur
	AttrFramed
	AttrEncircled
	AttrOverLined
)

var bitToAttribute = []struct {
	bit  Attributes
	attr Attribute
}{
	{AttrBold, Bold},
	{AttrDim, Dim},
	{AttrItalic, Italic},
	{AttrUnderlined, Underlined},
	{AttrSlowBlink, SlowBlink},
	{AttrRapidBlink, RapidBlink},
	{AttrReverse, Reverse},
	{AttrHidden, Hidden},
	{AttrCrossedOut, CrossedOut},
	{AttrFraktur, Fraktur},
	{AttrFramed, Framed},
	{AttrEncircled, Encircled},
	{AttrOverLined, OverLined},
}

// Has reports whether bit is set in a.
func (a Attributes) Has(bit Attributes) bool { return a&bit != 0 }

// SGRCodes returns the ordered list of SGR numeric codes for every
// attribute bit set in a.
func (a Attributes) SGRCodes() []int {
	var codes []int
	for _, e := range bitToAttribute {
		if a.Has(e.bit) {
			codes = append(codes, e.attr.sgrCode())
		}
	}
	return codes
}
