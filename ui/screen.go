package ui

import (
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/jyane/nescore/nes"
)

// A full-screen quad as a triangle strip: x, y, u, v.
var quad = []float32{
	-1, -1, 0, 1,
	1, -1, 1, 1,
	-1, 1, 0, 0,
	1, 1, 1, 0,
}

// screen draws frames as a texture on a quad, letterboxed to keep the
// 256x240 aspect ratio.
type screen struct {
	program    uint32
	vao        uint32
	vbo        uint32
	texture    uint32
	projection int32
}

func newScreen() (*screen, error) {
	program, err := newProgram()
	if err != nil {
		return nil, err
	}
	s := &screen{program: program}
	gl.UseProgram(program)
	s.projection = gl.GetUniformLocation(program, gl.Str("projection\x00"))
	gl.Uniform1i(gl.GetUniformLocation(program, gl.Str("frame\x00")), 0)

	gl.GenVertexArrays(1, &s.vao)
	gl.BindVertexArray(s.vao)
	gl.GenBuffers(1, &s.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, s.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(quad)*4, gl.Ptr(quad), gl.STATIC_DRAW)
	position := uint32(gl.GetAttribLocation(program, gl.Str("position\x00")))
	gl.EnableVertexAttribArray(position)
	gl.VertexAttribPointer(position, 2, gl.FLOAT, false, 4*4, gl.PtrOffset(0))
	uv := uint32(gl.GetAttribLocation(program, gl.Str("uv\x00")))
	gl.EnableVertexAttribArray(uv)
	gl.VertexAttribPointer(uv, 2, gl.FLOAT, false, 4*4, gl.PtrOffset(2*4))

	gl.GenTextures(1, &s.texture)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, s.texture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGB, nes.Width, nes.Height, 0, gl.RGB, gl.UNSIGNED_BYTE, nil)
	return s, nil
}

// update uploads a frame to the texture.
func (s *screen) update(frame *nes.Frame) {
	gl.BindTexture(gl.TEXTURE_2D, s.texture)
	gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, nes.Width, nes.Height, gl.RGB, gl.UNSIGNED_BYTE, gl.Ptr(frame.Pix()))
}

// projection returns an orthographic projection that fits the frame in a
// framebuffer of w x h pixels without stretching it.
func projection(w, h int) mgl32.Mat4 {
	if w <= 0 || h <= 0 {
		return mgl32.Ident4()
	}
	window := float32(w) / float32(h)
	frame := float32(nes.Width) / float32(nes.Height)
	if window > frame {
		sx := window / frame
		return mgl32.Ortho2D(-sx, sx, -1, 1)
	}
	sy := frame / window
	return mgl32.Ortho2D(-1, 1, -sy, sy)
}

func (s *screen) draw(w, h int) {
	gl.Viewport(0, 0, int32(w), int32(h))
	gl.ClearColor(0, 0, 0, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)
	gl.UseProgram(s.program)
	m := projection(w, h)
	gl.UniformMatrix4fv(s.projection, 1, false, &m[0])
	gl.BindVertexArray(s.vao)
	gl.BindTexture(gl.TEXTURE_2D, s.texture)
	gl.DrawArrays(gl.TRIANGLE_STRIP, 0, 4)
}

func (s *screen) destroy() {
	gl.DeleteTextures(1, &s.texture)
	gl.DeleteBuffers(1, &s.vbo)
	gl.DeleteVertexArrays(1, &s.vao)
	gl.DeleteProgram(s.program)
}
