package material

import (
	"fmt"
	"strings"

	"github.com/df07/go-sdf-raymarcher/pkg/core"
)

// ShadingModel selects the local illumination model evaluated at a hit point
type ShadingModel uint8

const (
	// Phong sums ambient, clamped diffuse and specular terms from the Material
	Phong ShadingModel = iota
	// Lambert is the simplified diffuse+ambient model bound to a base color
	Lambert
)

// String returns the lowercase model name used in scene files
func (m ShadingModel) String() string {
	switch m {
	case Phong:
		return "phong"
	case Lambert:
		return "lambert"
	default:
		return fmt.Sprintf("ShadingModel(%d)", uint8(m))
	}
}

// ParseShadingModel converts a scene-file name into a ShadingModel
func ParseShadingModel(name string) (ShadingModel, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "phong":
		return Phong, nil
	case "lambert", "diffuse":
		return Lambert, nil
	default:
		return Phong, fmt.Errorf("unknown shading model %q: %w", name, core.ErrInvalidParameter)
	}
}

// Shader is a closed set of shading variants. The integrator dispatches on Model;
// DiffuseFactor and AmbientFactor are only read by Lambert.
type Shader struct {
	Model         ShadingModel
	DiffuseFactor float32
	AmbientFactor float32
}

// Appearance is everything a surface carries besides its distance
type Appearance struct {
	Material Material
	Shader   Shader
}
