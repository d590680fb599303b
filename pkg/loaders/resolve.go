package loaders

import (
	"path/filepath"
	"strings"

	"github.com/df07/go-sdf-raymarcher/pkg/scene"
)

// ResolveScene maps a scene reference to a fresh scene. References ending in
// .json are file paths; "file:<name>" loads <name>.json from scenesDir; anything
// else is a built-in scene name.
func ResolveScene(ref, scenesDir string) (*scene.Scene, error) {
	switch {
	case strings.HasSuffix(ref, ".json"):
		return LoadScene(ref)
	case strings.HasPrefix(ref, "file:"):
		name := filepath.Base(strings.TrimPrefix(ref, "file:"))
		if scenesDir == "" {
			scenesDir = "scenes"
		}
		return LoadScene(filepath.Join(scenesDir, name+".json"))
	default:
		return scene.NewBuiltin(ref)
	}
}
