package server

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/df07/go-sdf-raymarcher/pkg/loaders"
	"github.com/df07/go-sdf-raymarcher/pkg/scene"
)

const (
	DefaultScene    = "sphere"
	DefaultSize     = 400
	DefaultTileSize = 32
)

// Server handles web requests for the raymarcher
type Server struct {
	port      int
	scenesDir string // Directory holding .json scene files
	staticDir string
}

// NewServer creates a new web server. An empty scenesDir searches the default
// scene locations.
func NewServer(port int, scenesDir string) *Server {
	return &Server{port: port, scenesDir: scenesDir, staticDir: "static/"}
}

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene    string  `json:"scene"`    // Built-in name or "file:<name>"
	Width    int     `json:"width"`    // Image width
	Height   int     `json:"height"`   // Image height
	TileSize int     `json:"tileSize"` // Tile edge length
	Workers  int     `json:"workers"`  // Worker count (0 = CPU count)
	Gamma    float64 `json:"gamma"`    // Output gamma
}

// Stats represents render statistics
type Stats struct {
	TotalPixels  int     `json:"totalPixels"`
	Hits         int     `json:"hits"`
	Misses       int     `json:"misses"`
	AverageSteps float64 `json:"averageSteps"`
	MaxSteps     int     `json:"maxSteps"`
}

// Handler returns the request router. Start serves it; tests drive it directly.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	// Serve static files
	mux.Handle("/", http.FileServer(http.Dir(s.staticDir)))

	// API endpoints
	mux.HandleFunc("/api/render", s.handleRender)
	mux.HandleFunc("/api/inspect", s.handleInspect)
	mux.HandleFunc("/api/scenes", s.handleScenes)
	mux.HandleFunc("/api/health", s.handleHealth)
	return mux
}

// Start starts the web server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleScenes lists built-in and file scenes grouped for the scene picker
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	scenes, err := scene.ListAllScenes(s.scenesDir)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, scenes)
}

// parseCommonSceneParams parses the parameters shared by render and inspect requests
func (s *Server) parseCommonSceneParams(r *http.Request, req *RenderRequest) error {
	query := r.URL.Query()

	if sceneName := query.Get("scene"); sceneName != "" {
		req.Scene = sceneName
	} else {
		req.Scene = DefaultScene
	}

	var err error
	if req.Width, err = parseIntParam(query, "width", DefaultSize, 16, 2000); err != nil {
		return err
	}
	if req.Height, err = parseIntParam(query, "height", DefaultSize, 16, 2000); err != nil {
		return err
	}
	return nil
}

// createScene resolves a scene reference. Raw file paths are not accepted from
// clients; file scenes must be addressed as "file:<name>".
func (s *Server) createScene(ref string) (*scene.Scene, error) {
	if strings.HasSuffix(ref, ".json") {
		return nil, fmt.Errorf("unknown scene: %s", ref)
	}
	dir := s.scenesDir
	if dir == "" {
		dir = "scenes"
	}
	return loaders.ResolveScene(ref, dir)
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// parseFloatParam parses a float parameter from URL query with validation
func parseFloatParam(values url.Values, key string, defaultValue, min, max float64) (float64, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %f and %f, got: %f", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// imageToBase64PNG converts an image to base64-encoded PNG
func (s *Server) imageToBase64PNG(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := loaders.EncodePNG(&buf, img); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}
