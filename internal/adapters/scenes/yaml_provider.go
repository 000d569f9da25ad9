package scenes

import (
	"airship-delivery/internal/domain"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed script.yaml
var embeddedScript []byte

type scriptFile struct {
	FraudCustomer string            `yaml:"fraud_customer"`
	Scenes        map[string]string `yaml:"scenes"`
}

// Read-only scene text loaded from a YAML script.
type YAMLProvider struct {
	fraudCustomer string
	scenes        map[domain.SceneID]string
}

// LoadEmbedded returns the script compiled into the binary.
func LoadEmbedded() (*YAMLProvider, error) {
	p, err := Parse(embeddedScript)
	if err != nil {
		return nil, fmt.Errorf("load embedded script: %w", err)
	}
	return p, nil
}

// LoadFile reads a replacement script from disk.
func LoadFile(path string) (*YAMLProvider, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load script: read %q: %w", path, err)
	}

	p, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("load script %q: %w", path, err)
	}
	return p, nil
}

// Parse decodes and validates a script document.
func Parse(b []byte) (*YAMLProvider, error) {
	var sf scriptFile
	if err := yaml.Unmarshal(b, &sf); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}

	fraud := strings.TrimSpace(sf.FraudCustomer)
	if fraud == "" {
		return nil, errors.New("parse script: fraud_customer must not be empty")
	}

	scenes := make(map[domain.SceneID]string, len(sf.Scenes))
	for id, text := range sf.Scenes {
		scenes[domain.SceneID(strings.TrimSpace(id))] = strings.TrimRight(text, "\n")
	}

	var missing []string
	for _, id := range domain.RequiredScenes() {
		if strings.TrimSpace(scenes[id]) == "" {
			missing = append(missing, string(id))
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("parse script: missing scenes: %s", strings.Join(missing, ", "))
	}

	return &YAMLProvider{fraudCustomer: fraud, scenes: scenes}, nil
}

func (p *YAMLProvider) Scene(id domain.SceneID) (string, error) {
	text, ok := p.scenes[id]
	if !ok {
		return "", fmt.Errorf("scene %q not found", id)
	}
	return text, nil
}

func (p *YAMLProvider) FraudCustomer() string { return p.fraudCustomer }

// IDs lists every scene in the script, required scenes first in play order.
func (p *YAMLProvider) IDs() []domain.SceneID {
	ids := domain.RequiredScenes()
	seen := make(map[domain.SceneID]struct{}, len(ids))
	for _, id := range ids {
		seen[id] = struct{}{}
	}

	var extra []domain.SceneID
	for id := range p.scenes {
		if _, ok := seen[id]; !ok {
			extra = append(extra, id)
		}
	}
	sort.Slice(extra, func(i, j int) bool { return extra[i] < extra[j] })

	return append(ids, extra...)
}
