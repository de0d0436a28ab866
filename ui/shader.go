package ui

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
)

const vertexShader = `
#version 330 core
uniform mat4 projection;
in vec2 position;
in vec2 uv;
out vec2 fragUV;
void main() {
	fragUV = uv;
	gl_Position = projection * vec4(position, 0.0, 1.0);
}
` + "\x00"

const fragmentShader = `
#version 330 core
uniform sampler2D frame;
in vec2 fragUV;
out vec4 color;
void main() {
	color = texture(frame, fragUV);
}
` + "\x00"

func compileShader(source string, kind uint32) (uint32, error) {
	shader := gl.CreateShader(kind)
	csource, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)
	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var length int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &length)
		log := strings.Repeat("\x00", int(length+1))
		gl.GetShaderInfoLog(shader, length, nil, gl.Str(log))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compiling shader: %s", strings.TrimRight(log, "\x00"))
	}
	return shader, nil
}

// newProgram compiles and links the shader program that draws the frame texture.
func newProgram() (uint32, error) {
	vertex, err := compileShader(vertexShader, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(vertex)
	fragment, err := compileShader(fragmentShader, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(fragment)

	program := gl.CreateProgram()
	gl.AttachShader(program, vertex)
	gl.AttachShader(program, fragment)
	gl.LinkProgram(program)
	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var length int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &length)
		log := strings.Repeat("\x00", int(length+1))
		gl.GetProgramInfoLog(program, length, nil, gl.Str(log))
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("linking program: %s", strings.TrimRight(log, "\x00"))
	}
	return program, nil
}
