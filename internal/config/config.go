// Package config handles converter configuration loading and management.
package config

// Config holds all converter settings.
type Config struct {
	Input   InputConfig   `yaml:"input"`
	Output  OutputConfig  `yaml:"output"`
	Convert ConvertConfig `yaml:"convert"`
	Logging LoggingConfig `yaml:"logging"`
}

// InputConfig holds the cube-map source settings.
type InputConfig struct {
	Dir   string      `yaml:"dir"`   // Folder containing the six face images
	Faces FacesConfig `yaml:"faces"` // Semantic direction -> file name
}

// FacesConfig names the file for each semantic face direction.
// The mapping is explicit so that no positional ordering can bind the
// wrong image to a direction.
type FacesConfig struct {
	Left   string `yaml:"left"`
	Front  string `yaml:"front"`
	Right  string `yaml:"right"`
	Back   string `yaml:"back"`
	Bottom string `yaml:"bottom"`
	Top    string `yaml:"top"`
}

// OutputConfig holds panorama destination settings.
type OutputConfig struct {
	Path        string `yaml:"path"`         // Destination file (.jpg or .png)
	JPEGQuality int    `yaml:"jpeg_quality"` // 1-100, JPEG only
}

// ConvertConfig holds rasterization settings.
type ConvertConfig struct {
	Workers int `yaml:"workers"` // 0 = one per CPU
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Input: InputConfig{
			Dir: ".",
			Faces: FacesConfig{
				Left:   "left.jpg",
				Front:  "front.jpg",
				Right:  "right.jpg",
				Back:   "back.jpg",
				Bottom: "bottom.jpg",
				Top:    "top.jpg",
			},
		},
		Output: OutputConfig{
			Path:        "panorama.jpg",
			JPEGQuality: 85,
		},
		Convert: ConvertConfig{
			Workers: 0,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
