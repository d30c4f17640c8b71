package server

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed endpoints.yaml
var endpointsYAML []byte

// EndpointDoc describes a single endpoint in the API descriptor served
// at the root path.
type EndpointDoc struct {
	Description string         `yaml:"description" json:"description"`
	Queries     []string       `yaml:"queries,omitempty" json:"queries,omitempty"`
	Example     map[string]any `yaml:"example,omitempty" json:"example,omitempty"`
}

// Endpoints maps "METHOD /path" onto its documentation entry.
type Endpoints map[string]EndpointDoc

// LoadEndpoints parses the embedded endpoints descriptor.
func LoadEndpoints() (Endpoints, error) {
	var endpoints Endpoints
	if err := yaml.Unmarshal(endpointsYAML, &endpoints); err != nil {
		return nil, fmt.Errorf("parsing endpoints descriptor: %w", err)
	}
	return endpoints, nil
}
