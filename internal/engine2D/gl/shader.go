package gl

import (
	"hero-spotlight/internal/wallpaper"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// The fragment coordinate origin is the bottom-left corner, so callers flip Y
// before setting the centre.
const spotlightFragment = `
#version 330
in vec2 fragTexCoord;
in vec4 fragColor;
uniform sampler2D texture0;
uniform vec4 colDiffuse;
uniform vec2 center;
uniform float radius;
out vec4 finalColor;
void main() {
    float d = distance(gl_FragCoord.xy, center);
    float mask = 1.0 - smoothstep(radius - 1.0, radius + 1.0, d);
    if (mask <= 0.0) discard;
    vec4 texel = texture(texture0, fragTexCoord) * colDiffuse * fragColor;
    finalColor = vec4(texel.rgb, texel.a * mask);
}
`

// SpotlightShader clips whatever is drawn with it to a circle.
type SpotlightShader struct {
	Shader    rl.Shader
	centerLoc int32
	radiusLoc int32
}

func LoadSpotlightShader() SpotlightShader {
	sh := rl.LoadShaderFromMemory("", spotlightFragment)
	return SpotlightShader{
		Shader:    sh,
		centerLoc: rl.GetShaderLocation(sh, "center"),
		radiusLoc: rl.GetShaderLocation(sh, "radius"),
	}
}

func (s SpotlightShader) Valid() bool {
	return s.Shader.ID != 0 && s.centerLoc >= 0 && s.radiusLoc >= 0
}

func (s SpotlightShader) Set(center wallpaper.Vec2, radius, screenHeight float64) {
	rl.SetShaderValue(s.Shader, s.centerLoc, []float32{float32(center.X), float32(screenHeight - center.Y)}, rl.ShaderUniformVec2)
	rl.SetShaderValue(s.Shader, s.radiusLoc, []float32{float32(radius)}, rl.ShaderUniformFloat)
}

func (s SpotlightShader) Unload() {
	if s.Shader.ID != 0 {
		rl.UnloadShader(s.Shader)
	}
}
