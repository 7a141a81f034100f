package muon

import "encoding/binary"

// The command buffer is an append-only byte arena of variable-sized tagged
// records. Every record starts with a {type, size} header; walking the
// buffer by size reaches exactly the write cursor. Root containers bracket
// their records with jump commands whose destinations are patched in End,
// which lets the renderer see containers in z-order while the bytes stay in
// declaration order.
//
// Record layouts (little-endian 32-bit fields):
//
//	base: type, size
//	jump: base + dst (byte offset into the same buffer)
//	clip: base + rect
//	rect: base + rect + color
//	text: base + font + pos + color + bytes... + NUL (size covers the tail)
//	icon: base + icon id + rect + color
const (
	commandHeadSize = 8
	jumpCommandSize = commandHeadSize + 4
	clipCommandSize = commandHeadSize + 16
	rectCommandSize = commandHeadSize + 16 + 4
	textCommandSize = commandHeadSize + 4 + 8 + 4
	iconCommandSize = commandHeadSize + 4 + 16 + 4
)

// ClipCommand instructs the renderer to set its clip window. A rectangle
// of 2^24 on each axis means "no clipping".
type ClipCommand struct {
	Rect Rect
}

// RectCommand fills a rectangle.
type RectCommand struct {
	Rect  Rect
	Color Color
}

// TextCommand draws a string at Pos. Str aliases the command buffer and is
// only valid until the next Begin.
type TextCommand struct {
	Font  Font
	Pos   Vec2
	Color Color
	Str   []byte
}

// IconCommand draws one of the built-in icons inside Rect.
type IconCommand struct {
	ID    Icon
	Rect  Rect
	Color Color
}

// Command is a decoded view of one record, reused across NextCommand calls.
// Only the variant named by Type is meaningful.
type Command struct {
	Type CommandType
	Clip ClipCommand
	Rect RectCommand
	Text TextCommand
	Icon IconCommand

	offset  int
	started bool
}

func putI32(b []byte, off int, v int32) {
	binary.LittleEndian.PutUint32(b[off:], uint32(v))
}

func getI32(b []byte, off int) int32 {
	return int32(binary.LittleEndian.Uint32(b[off:]))
}

func putRect(b []byte, off int, r Rect) {
	putI32(b, off, int32(r.X))
	putI32(b, off+4, int32(r.Y))
	putI32(b, off+8, int32(r.W))
	putI32(b, off+12, int32(r.H))
}

func getRect(b []byte, off int) Rect {
	return Rect{
		X: int(getI32(b, off)),
		Y: int(getI32(b, off+4)),
		W: int(getI32(b, off+8)),
		H: int(getI32(b, off+12)),
	}
}

func putColor(b []byte, off int, c Color) {
	b[off], b[off+1], b[off+2], b[off+3] = c.R, c.G, c.B, c.A
}

func getColor(b []byte, off int) Color {
	return Color{b[off], b[off+1], b[off+2], b[off+3]}
}

// pushCommand reserves size bytes at the write cursor, writes the header
// and returns the record's offset. Overflow is fatal.
func (ctx *Context) pushCommand(typ CommandType, size int) int {
	expect(ctx.cmdTail+size <= len(ctx.cmdBuf), "command buffer full")
	off := ctx.cmdTail
	b := ctx.cmdBuf[off:]
	putI32(b, 0, int32(typ))
	putI32(b, 4, int32(size))
	ctx.cmdTail += size
	return off
}

// pushJump emits a jump record; dst may be -1 for "patched later".
func (ctx *Context) pushJump(dst int) int {
	off := ctx.pushCommand(CommandJump, jumpCommandSize)
	ctx.patchJump(off, dst)
	return off
}

// patchJump rewrites the destination of the jump record at off.
func (ctx *Context) patchJump(off, dst int) {
	putI32(ctx.cmdBuf[off:], 8, int32(dst))
}

// NextCommand advances cmd to the next drawing record, transparently
// following jumps, and reports whether one was found. Start iteration with
// a zero Command; after it returns false the same value restarts from the
// beginning.
//
//	var cmd muon.Command
//	for ctx.NextCommand(&cmd) {
//		switch cmd.Type { ... }
//	}
func (ctx *Context) NextCommand(cmd *Command) bool {
	if cmd.started {
		cmd.offset += int(getI32(ctx.cmdBuf[cmd.offset:], 4))
	} else {
		cmd.offset = 0
		cmd.started = true
	}
	for cmd.offset != ctx.cmdTail {
		b := ctx.cmdBuf[cmd.offset:]
		typ := CommandType(getI32(b, 0))
		if typ != CommandJump {
			ctx.decodeCommand(cmd, typ, b)
			return true
		}
		cmd.offset = int(getI32(b, 8))
	}
	cmd.started = false
	return false
}

func (ctx *Context) decodeCommand(cmd *Command, typ CommandType, b []byte) {
	cmd.Type = typ
	switch typ {
	case CommandClip:
		cmd.Clip = ClipCommand{Rect: getRect(b, 8)}
	case CommandRect:
		cmd.Rect = RectCommand{Rect: getRect(b, 8), Color: getColor(b, 24)}
	case CommandText:
		size := int(getI32(b, 4))
		cmd.Text = TextCommand{
			Font:  Font(getI32(b, 8)),
			Pos:   Vec2{int(getI32(b, 12)), int(getI32(b, 16))},
			Color: getColor(b, 20),
			Str:   b[textCommandSize : size-1], // trailing NUL excluded
		}
	case CommandIcon:
		cmd.Icon = IconCommand{
			ID:    Icon(getI32(b, 8)),
			Rect:  getRect(b, 12),
			Color: getColor(b, 28),
		}
	}
}
