// Package glrender translates the UI command stream into OpenGL 3.3 draw
// calls: one texture (the font atlas with a solid-white block), one shader,
// batched textured quads, and scissor rects for clip commands.
package glrender

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/tetric/muon"
	"github.com/tetric/muon/text"
)

// Vertex: pos2 + uv2 + color4 => 8 floats
const vStride = 8
const vertsPerQuad = 4
const indsPerQuad = 6

// Renderer batches quads for one frame of UI commands.
type Renderer struct {
	font *text.Font

	program uint32
	vao     uint32
	vbo     uint32
	ebo     uint32
	tex     uint32

	verts    []float32
	inds     []uint32
	quads    int
	maxQuads int

	atlasSize int
	fbW, fbH  int
}

// New compiles the pipeline and uploads the font atlas. Requires a current
// GL context on the calling thread.
func New(font *text.Font, maxQuads int) (*Renderer, error) {
	if maxQuads <= 0 {
		maxQuads = 10000
	}
	r := &Renderer{
		font:      font,
		maxQuads:  maxQuads,
		atlasSize: font.Atlas.Bounds().Dx(),
		verts:     make([]float32, 0, maxQuads*vertsPerQuad*vStride),
		inds:      make([]uint32, 0, maxQuads*indsPerQuad),
	}

	var err error
	r.program, err = makeProgram(vertexSource, fragmentSource)
	if err != nil {
		return nil, err
	}

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, maxQuads*vertsPerQuad*vStride*4, nil, gl.DYNAMIC_DRAW)

	gl.GenBuffers(1, &r.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, maxQuads*indsPerQuad*4, nil, gl.DYNAMIC_DRAW)

	const stride = vStride * 4 // bytes
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, unsafe.Pointer(uintptr(0)))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, stride, unsafe.Pointer(uintptr(2*4)))
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, stride, unsafe.Pointer(uintptr(4*4)))

	gl.BindVertexArray(0)

	// upload the atlas
	gl.GenTextures(1, &r.tex)
	gl.BindTexture(gl.TEXTURE_2D, r.tex)
	bounds := font.Atlas.Bounds()
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA,
		int32(bounds.Dx()), int32(bounds.Dy()), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(font.Atlas.Pix))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.DEPTH_TEST)

	return r, nil
}

// Destroy releases the GL objects.
func (r *Renderer) Destroy() {
	gl.DeleteTextures(1, &r.tex)
	gl.DeleteBuffers(1, &r.vbo)
	gl.DeleteBuffers(1, &r.ebo)
	gl.DeleteVertexArrays(1, &r.vao)
	gl.DeleteProgram(r.program)
}

// Begin clears the framebuffer and prepares a frame sized fbW x fbH.
func (r *Renderer) Begin(fbW, fbH int, clear muon.Color) {
	r.fbW, r.fbH = fbW, fbH
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.ClearColor(
		float32(clear.R)/255, float32(clear.G)/255,
		float32(clear.B)/255, float32(clear.A)/255)
	gl.Clear(gl.COLOR_BUFFER_BIT)
	gl.Enable(gl.SCISSOR_TEST)
	gl.Scissor(0, 0, int32(fbW), int32(fbH))
	r.resetBatch()
}

// Draw replays the context's command stream.
func (r *Renderer) Draw(ctx *muon.Context) {
	var cmd muon.Command
	for ctx.NextCommand(&cmd) {
		switch cmd.Type {
		case muon.CommandClip:
			r.setClip(cmd.Clip.Rect)
		case muon.CommandRect:
			r.drawRect(cmd.Rect.Rect, cmd.Rect.Color)
		case muon.CommandText:
			r.drawText(string(cmd.Text.Str), cmd.Text.Pos, cmd.Text.Color)
		case muon.CommandIcon:
			r.drawIcon(cmd.Icon.ID, cmd.Icon.Rect, cmd.Icon.Color)
		}
	}
}

// End flushes the batch and resets scissor state.
func (r *Renderer) End() {
	r.flush()
	gl.Disable(gl.SCISSOR_TEST)
}

func (r *Renderer) setClip(rect muon.Rect) {
	// scissor changes invalidate the running batch
	r.flush()
	// GL scissor origin is bottom-left
	gl.Scissor(int32(rect.X), int32(r.fbH-(rect.Y+rect.H)), int32(rect.W), int32(rect.H))
}

func (r *Renderer) drawRect(rect muon.Rect, color muon.Color) {
	w := r.font.White
	r.pushQuad(rect.X, rect.Y, rect.W, rect.H, w.X, w.Y, 1, 1, color)
}

func (r *Renderer) drawText(s string, pos muon.Vec2, color muon.Color) {
	penX := pos.X
	baseY := pos.Y + r.font.Ascent
	var prev rune = -1
	for _, ch := range s {
		g, ok := r.font.Glyphs[ch]
		if !ok {
			if sp, ok2 := r.font.Glyphs[' ']; ok2 {
				penX += sp.Advance
			}
			prev = ch
			continue
		}
		if prev >= 0 {
			penX += r.font.Kern(prev, ch)
		}
		if g.W > 0 && g.H > 0 {
			r.pushQuad(penX+g.BearingX, baseY-g.BearingY, g.W, g.H, g.X, g.Y, g.W, g.H, color)
		}
		penX += g.Advance
		prev = ch
	}
}

// icon glyph stand-ins; their appearance is the renderer's choice
var iconRunes = map[muon.Icon]rune{
	muon.IconClose:     'x',
	muon.IconCheck:     '*',
	muon.IconCollapsed: '+',
	muon.IconExpanded:  '-',
}

func (r *Renderer) drawIcon(id muon.Icon, rect muon.Rect, color muon.Color) {
	ch, ok := iconRunes[id]
	if !ok {
		return
	}
	g, ok := r.font.Glyphs[ch]
	if !ok || g.W == 0 {
		return
	}
	x := rect.X + (rect.W-g.W)/2
	y := rect.Y + (rect.H-g.H)/2
	r.pushQuad(x, y, g.W, g.H, g.X, g.Y, g.W, g.H, color)
}

func (r *Renderer) resetBatch() {
	r.verts = r.verts[:0]
	r.inds = r.inds[:0]
	r.quads = 0
}

func (r *Renderer) flush() {
	if r.quads == 0 {
		return
	}
	gl.UseProgram(r.program)
	gl.Uniform2f(gl.GetUniformLocation(r.program, gl.Str("uViewport\x00")),
		float32(r.fbW), float32(r.fbH))
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.tex)

	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(r.verts)*4, gl.Ptr(r.verts))
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
	gl.BufferSubData(gl.ELEMENT_ARRAY_BUFFER, 0, len(r.inds)*4, gl.Ptr(r.inds))

	gl.DrawElements(gl.TRIANGLES, int32(len(r.inds)), gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)

	r.resetBatch()
}

func (r *Renderer) pushQuad(x, y, w, h, tx, ty, tw, th int, color muon.Color) {
	if r.quads == r.maxQuads {
		r.flush()
	}

	as := float32(r.atlasSize)
	u0 := float32(tx) / as
	v0 := float32(ty) / as
	u1 := float32(tx+tw) / as
	v1 := float32(ty+th) / as

	cr := float32(color.R) / 255
	cg := float32(color.G) / 255
	cb := float32(color.B) / 255
	ca := float32(color.A) / 255

	x0, y0 := float32(x), float32(y)
	x1, y1 := float32(x+w), float32(y+h)

	base := uint32(r.quads * vertsPerQuad)
	r.verts = append(r.verts,
		x0, y0, u0, v0, cr, cg, cb, ca,
		x1, y0, u1, v0, cr, cg, cb, ca,
		x1, y1, u1, v1, cr, cg, cb, ca,
		x0, y1, u0, v1, cr, cg, cb, ca,
	)
	r.inds = append(r.inds,
		base, base+1, base+2,
		base, base+2, base+3,
	)
	r.quads++
}

// --- Shader utilities ---

const vertexSource = `
#version 330 core
layout(location=0) in vec2 aPos;
layout(location=1) in vec2 aUV;
layout(location=2) in vec4 aColor;
uniform vec2 uViewport;
out vec2 vUV;
out vec4 vColor;
void main() {
    vUV = aUV;
    vColor = aColor;
    vec2 ndc = vec2(aPos.x * 2.0 / uViewport.x - 1.0,
                    1.0 - aPos.y * 2.0 / uViewport.y);
    gl_Position = vec4(ndc, 0.0, 1.0);
}
` + "\x00"

const fragmentSource = `
#version 330 core
in vec2 vUV;
in vec4 vColor;
uniform sampler2D uTex;
out vec4 FragColor;
void main() {
    FragColor = vColor * texture(uTex, vUV);
}
` + "\x00"

func makeShader(src string, shaderType uint32) (uint32, error) {
	sh := gl.CreateShader(shaderType)
	csrc, free := gl.Strs(src)
	defer free()
	gl.ShaderSource(sh, 1, csrc, nil)
	gl.CompileShader(sh)

	var status int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(sh, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen)+1)
		gl.GetShaderInfoLog(sh, logLen, nil, gl.Str(log))
		gl.DeleteShader(sh)
		return 0, fmt.Errorf("compile shader: %s", log)
	}
	return sh, nil
}

func makeProgram(vsSrc, fsSrc string) (uint32, error) {
	vs, err := makeShader(vsSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(vs)
	fs, err := makeShader(fsSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(fs)

	prog := gl.CreateProgram()
	gl.AttachShader(prog, vs)
	gl.AttachShader(prog, fs)
	gl.LinkProgram(prog)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen)+1)
		gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(log))
		gl.DeleteProgram(prog)
		return 0, fmt.Errorf("link program: %s", log)
	}
	return prog, nil
}
