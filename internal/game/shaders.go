package game

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Mesh vertex shader: one draw per mesh, per-instance model matrix and colour.
const meshVertSrc = `#version 410 core

layout(location = 0) in vec3 aPos;
layout(location = 1) in vec3 aNormal;
layout(location = 2) in mat4 aModel; // locations 2..5
layout(location = 6) in vec4 aColor;

uniform mat4 uViewProj;

out vec3 vWorld;
out vec3 vNormal;
out vec4 vColor;

void main() {
    vec4 world = aModel * vec4(aPos, 1.0);
    vWorld = world.xyz;
    vNormal = mat3(transpose(inverse(aModel))) * aNormal;
    vColor = aColor;
    gl_Position = uViewProj * world;
}
` + "\x00"

// Mesh fragment shader: colour-material Blinn-Phong from one directional
// light, or flat colour when uLit is 0.
const meshFragSrc = `#version 410 core

uniform int uLit;
uniform vec3 uLightDir;
uniform vec3 uEye;
uniform float uAmbient;
uniform float uDiffuse;
uniform float uSpecular;
uniform float uShininess;

in vec3 vWorld;
in vec3 vNormal;
in vec4 vColor;
out vec4 FragColor;

void main() {
    if (uLit == 0) {
        FragColor = vColor;
        return;
    }
    vec3 n = normalize(vNormal);
    if (!gl_FrontFacing) n = -n;
    float ndl = max(dot(n, uLightDir), 0.0);
    vec3 h = normalize(uLightDir + normalize(uEye - vWorld));
    float spec = ndl > 0.0 ? pow(max(dot(n, h), 0.0), uShininess) : 0.0;
    vec3 col = vColor.rgb * (uAmbient + uDiffuse * ndl) + vec3(uSpecular * spec);
    FragColor = vec4(col, vColor.a);
}
` + "\x00"

// Sky vertex shader: a full-screen triangle from gl_VertexID.
const skyVertSrc = `#version 410 core

out float vHeight;

void main() {
    vec2 p = vec2(float((gl_VertexID << 1) & 2), float(gl_VertexID & 2));
    vHeight = p.y * 0.5;
    gl_Position = vec4(p * 2.0 - 1.0, 1.0, 1.0);
}
` + "\x00"

const skyFragSrc = `#version 410 core

uniform vec3 uTop;
uniform vec3 uBottom;

in float vHeight;
out vec4 FragColor;

void main() {
    FragColor = vec4(mix(uBottom, uTop, clamp(vHeight, 0.0, 1.0)), 1.0);
}
` + "\x00"

// Text vertex shader: screen-space textured quads for font rendering.
const textVertSrc = `#version 410 core

layout(location = 0) in vec2 aPos;
layout(location = 1) in vec2 aUV;
layout(location = 2) in vec4 aColor;

uniform vec2 uResolution;

out vec2 vUV;
out vec4 vColor;

void main() {
    vec2 ndc = (aPos / uResolution) * 2.0 - 1.0;
    ndc.y = -ndc.y;
    gl_Position = vec4(ndc, 0.0, 1.0);
    vUV = aUV;
    vColor = aColor;
}
` + "\x00"

// Text fragment shader: font atlas sampling with color tint.
const textFragSrc = `#version 410 core

uniform sampler2D uFontTex;

in vec2 vUV;
in vec4 vColor;
out vec4 FragColor;

void main() {
    vec4 t = texture(uFontTex, vUV);
    if (t.a < 0.01) discard;
    FragColor = vec4(t.rgb * vColor.rgb, t.a * vColor.a);
}
` + "\x00"

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		buf := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(shader, logLen, nil, gl.Str(buf))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile shader: %s", strings.TrimRight(buf, "\x00"))
	}
	return shader, nil
}

func linkProgram(vertSrc, fragSrc string) (uint32, error) {
	vs, err := compileShader(vertSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fs, err := compileShader(fragSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vs)
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vs)
	gl.AttachShader(program, fs)
	gl.LinkProgram(program)

	gl.DetachShader(program, vs)
	gl.DetachShader(program, fs)
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
		buf := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(program, logLen, nil, gl.Str(buf))
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link program: %s", strings.TrimRight(buf, "\x00"))
	}
	return program, nil
}

// uniform looks up a uniform location by name.
func uniform(prog uint32, name string) int32 {
	return gl.GetUniformLocation(prog, gl.Str(name+"\x00"))
}
