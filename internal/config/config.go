// Package config handles viewer configuration loading and management.
package config

// Config holds all viewer settings.
type Config struct {
	Graphics   GraphicsConfig   `yaml:"graphics"`
	Scene      SceneConfig      `yaml:"scene"`
	Rotation   RotationConfig   `yaml:"rotation"`
	Projection ProjectionConfig `yaml:"projection"`
	Slice      SliceConfig      `yaml:"slice"`
	Display    DisplayConfig    `yaml:"display"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// GraphicsConfig holds window settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
	ShowFPS    bool `yaml:"show_fps"`
}

// SceneConfig selects the displayed shape.
type SceneConfig struct {
	Shape string  `yaml:"shape"`
	Size  float64 `yaml:"size"`
}

// RotationConfig holds the six per-plane auto-rotation velocities in
// radians per second.
type RotationConfig struct {
	Auto bool    `yaml:"auto"`
	XY   float64 `yaml:"xy"`
	XZ   float64 `yaml:"xz"`
	XW   float64 `yaml:"xw"`
	YZ   float64 `yaml:"yz"`
	YW   float64 `yaml:"yw"`
	ZW   float64 `yaml:"zw"`
}

// ProjectionConfig selects the 4D→3D projection.
type ProjectionConfig struct {
	Mode         string  `yaml:"mode"`
	ViewDistance float64 `yaml:"view_distance"`
}

// SliceConfig holds the hyperplane slice settings.
type SliceConfig struct {
	Enabled   bool    `yaml:"enabled"`
	Position  float64 `yaml:"position"`
	Thickness float64 `yaml:"thickness"`
	Scan      bool    `yaml:"scan"`
	ScanSpeed float64 `yaml:"scan_speed"`
}

// DisplayConfig holds the visibility toggles.
type DisplayConfig struct {
	ShowVertices bool `yaml:"show_vertices"`
	ShowEdges    bool `yaml:"show_edges"`
	ColorByW     bool `yaml:"color_by_w"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1024,
			Height:     768,
			Fullscreen: false,
			VSync:      true,
			ShowFPS:    false,
		},
		Scene: SceneConfig{
			Shape: "tesseract",
			Size:  2,
		},
		Rotation: RotationConfig{
			Auto: true,
			XW:   0.6,
			YW:   0.4,
		},
		Projection: ProjectionConfig{
			Mode:         "perspective",
			ViewDistance: 3,
		},
		Slice: SliceConfig{
			Enabled:   false,
			Position:  0,
			Thickness: 0.5,
			Scan:      false,
			ScanSpeed: 1,
		},
		Display: DisplayConfig{
			ShowVertices: true,
			ShowEdges:    true,
			ColorByW:     true,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
