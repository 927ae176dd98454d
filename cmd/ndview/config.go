package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// viewConfig describes the array to build and the view to take of it.
//
// Example view.yaml:
//
//	shape: [2, 3, 4]
//	index: [1]
//	dtype: int64
type viewConfig struct {
	Shape []int  `yaml:"shape"`
	Index []int  `yaml:"index"`
	DType string `yaml:"dtype"`
}

func defaultViewConfig() viewConfig {
	return viewConfig{DType: "float32"}
}

// loadViewConfig reads a YAML view description, filling unset fields from
// the defaults.
func loadViewConfig(path string) (viewConfig, error) {
	cfg := defaultViewConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}
