package renderer

const meshVertexShader = `
#version 410 core

layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aNormal;
layout (location = 2) in vec2 aUV;

uniform mat4 uViewProj;

flat out vec3 vNormal;
out vec2 vUV;

void main() {
	gl_Position = uViewProj * vec4(aPos, 1.0);
	vNormal = aNormal;
	vUV = aUV;
}
`

const meshFragmentShader = `
#version 410 core

flat in vec3 vNormal;
in vec2 vUV;

uniform vec3 uColor;
uniform vec3 uLightDir;

out vec4 FragColor;

void main() {
	// Two-sided: faces are wound either way.
	float diffuse = abs(dot(vNormal, uLightDir));
	float light = 0.35 + 0.65 * diffuse;

	// Darken near the triangle's base edge so the tessellation stays readable.
	float edge = smoothstep(0.0, 0.04, vUV.y);
	FragColor = vec4(uColor * light * mix(0.6, 1.0, edge), 1.0);
}
`

const lineVertexShader = `
#version 410 core

layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aColor;

uniform mat4 uViewProj;

out vec3 vColor;

void main() {
	gl_Position = uViewProj * vec4(aPos, 1.0);
	vColor = aColor;
}
`

const lineFragmentShader = `
#version 410 core

in vec3 vColor;
out vec4 FragColor;

void main() {
	FragColor = vec4(vColor, 1.0);
}
`
