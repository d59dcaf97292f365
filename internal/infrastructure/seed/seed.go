// Package seed reads portfolio seed data from YAML.
package seed

import (
	_ "embed"
	"fmt"
	"os"

	"portfolio/internal/domain/entities"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultSeed []byte

type Data struct {
	Personal   *entities.PersonalInfo `yaml:"personal"`
	Social     *entities.SocialLinks  `yaml:"social"`
	Skills     []entities.Skill       `yaml:"skills"`
	Experience []entities.Experience  `yaml:"experience"`
	Projects   []entities.Project     `yaml:"projects"`
	Awards     []entities.Award       `yaml:"awards"`
}

func Parse(raw []byte) (*Data, error) {
	var d Data
	if err := yaml.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("seed verisi okunamadı: %w", err)
	}
	return &d, nil
}

// Load reads path, or the embedded defaults when path is empty.
func Load(path string) (*Data, error) {
	if path == "" {
		return Parse(defaultSeed)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("seed dosyası açılamadı: %w", err)
	}
	return Parse(raw)
}
