package muon

// Version is the library version string.
const Version = "2.02"

// Treat the integer values of every enum below as part of the ABI: command
// streams and saved themes reference them by value.

// CommandType tags a record in the command buffer.
type CommandType int32

const (
	CommandJump CommandType = 1 + iota // internal; hidden from iteration
	CommandClip
	CommandRect
	CommandText
	CommandIcon
)

// Clip test results returned by CheckClip. Zero means fully inside.
const (
	ClipPart = 1 + iota
	ClipAll
)

// ColorID indexes the style palette.
type ColorID int

const (
	ColorText ColorID = iota
	ColorBorder
	ColorWindowBG
	ColorTitleBG
	ColorTitleText
	ColorPanelBG
	ColorButton
	ColorButtonHover
	ColorButtonFocus
	ColorBase
	ColorBaseHover
	ColorBaseFocus
	ColorScrollBase
	ColorScrollThumb
	colorMax
)

// Icon identifies one of the built-in glyphs drawn by the client.
type Icon int32

const (
	IconClose Icon = 1 + iota
	IconCheck
	IconCollapsed
	IconExpanded
)

// Result is the bit-mask returned by widgets.
type Result int

const (
	ResActive Result = 1 << iota
	ResSubmit
	ResChange
)

// Option modifies widget and container behavior.
type Option int

const (
	OptAlignCenter Option = 1 << iota
	OptAlignRight
	OptNoInteract
	OptNoFrame
	OptNoResize
	OptNoScroll
	OptNoClose
	OptNoTitle
	OptHoldFocus
	OptAutoSize
	OptPopup
	OptClosed
	OptExpanded
)

// Mouse is a button bit-mask.
type Mouse int

const (
	MouseLeft Mouse = 1 << iota
	MouseRight
	MouseMiddle
)

// Key is a keyboard bit-mask. Only the keys the core reacts to are listed;
// everything else stays with the client.
type Key int

const (
	KeyShift Key = 1 << iota
	KeyCtrl
	KeyAlt
	KeyBackspace
	KeyReturn
)
