package server

import (
	"fmt"
	"net/http"

	"github.com/chewxy/math32"

	"github.com/df07/go-sdf-raymarcher/pkg/core"
	"github.com/df07/go-sdf-raymarcher/pkg/geometry"
	"github.com/df07/go-sdf-raymarcher/pkg/integrator"
	"github.com/df07/go-sdf-raymarcher/pkg/material"
	"github.com/df07/go-sdf-raymarcher/pkg/scene"
)

// InspectResponse represents the JSON response for pixel inspection
type InspectResponse struct {
	Hit        bool                   `json:"hit"`
	Steps      int                    `json:"steps"`
	Model      string                 `json:"model"`
	Geometry   string                 `json:"geometryType"`
	Shader     string                 `json:"shader"`
	Point      [3]float32             `json:"point"`
	Normal     [3]float32             `json:"normal"`
	Distance   float32                `json:"distance"`
	Properties map[string]interface{} `json:"properties"`
}

// InspectResult describes what the primary ray through a pixel reached
type InspectResult struct {
	March  integrator.MarchResult
	Point  core.Vec3
	Normal core.Vec3
	Model  *scene.Model // Closest model to the hit point; nil on a miss
}

// inspectPixel marches the primary ray through a pixel with the default settings
func inspectPixel(s *scene.Scene, width, height, pixelX, pixelY int) InspectResult {
	ray := s.Camera.GetRay(pixelX, pixelY, width, height)
	result := integrator.March(s, ray, integrator.DefaultMarchConfig())
	if !result.Hit {
		return InspectResult{March: result}
	}

	p := ray.At(result.Surface.Distance)
	return InspectResult{
		March:  result,
		Point:  p,
		Normal: integrator.Normal(s, p, integrator.DefaultNormalEpsilon),
		Model:  closestModel(s, p),
	}
}

// closestModel picks the model whose own surface is nearest to p. Blended
// surfaces have no single owner; the nearest one is what the user clicked.
func closestModel(s *scene.Scene, p core.Vec3) *scene.Model {
	var best *scene.Model
	bestDistance := math32.Inf(1)
	for _, m := range s.Models() {
		if d := math32.Abs(m.Distance(p)); d < bestDistance {
			best, bestDistance = m, d
		}
	}
	return best
}

func shapeName(shape geometry.Shape) string {
	switch shape.(type) {
	case *geometry.Sphere:
		return "sphere"
	case *geometry.Torus:
		return "torus"
	case *geometry.Plane:
		return "plane"
	case *geometry.Box:
		return "box"
	case *geometry.Displaced:
		return "displaced"
	default:
		return "unknown"
	}
}

// appearanceProperties reports the terms the shading model reads
func appearanceProperties(a material.Appearance) map[string]interface{} {
	properties := make(map[string]interface{})
	m := a.Material

	switch a.Shader.Model {
	case material.Lambert:
		properties["baseColor"] = hexColor(m.BaseColor())
		properties["diffuseFactor"] = a.Shader.DiffuseFactor
		properties["ambientFactor"] = a.Shader.AmbientFactor
	default:
		properties["ambient"] = [3]float32{m.Ambient.X(), m.Ambient.Y(), m.Ambient.Z()}
		properties["diffuse"] = [3]float32{m.Diffuse.X(), m.Diffuse.Y(), m.Diffuse.Z()}
		properties["specular"] = [3]float32{m.Specular.X(), m.Specular.Y(), m.Specular.Z()}
		properties["shininess"] = m.Shininess
		properties["color"] = hexColor(m.Diffuse)
	}
	return properties
}

func hexColor(c core.Vec3) string {
	c = core.ClampVec3(c, 0, 1)
	return fmt.Sprintf("#%02x%02x%02x", int(c.X()*255), int(c.Y()*255), int(c.Z()*255))
}

// handleInspect reports the surface under one pixel
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	req := &RenderRequest{}
	if err := s.parseCommonSceneParams(r, req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	query := r.URL.Query()
	pixelX, err := parseIntParam(query, "x", 0, 0, req.Width-1)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	pixelY, err := parseIntParam(query, "y", 0, 0, req.Height-1)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	sceneObj, err := s.createScene(req.Scene)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	result := inspectPixel(sceneObj, req.Width, req.Height, pixelX, pixelY)
	response := InspectResponse{
		Hit:        result.March.Hit,
		Steps:      result.March.Steps,
		Properties: map[string]interface{}{},
	}
	if result.March.Hit {
		appearance := result.March.Surface.Appearance
		response.Distance = result.March.Surface.Distance
		response.Point = [3]float32(result.Point)
		response.Normal = [3]float32(result.Normal)
		response.Shader = appearance.Shader.Model.String()
		response.Properties = appearanceProperties(appearance)
		if result.Model != nil {
			response.Model = result.Model.Name
			response.Geometry = shapeName(result.Model.Shape)
		}
	}

	writeJSON(w, http.StatusOK, response)
}
