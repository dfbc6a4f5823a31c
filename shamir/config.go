// Copyright 2024 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package shamir

import (
	"fmt"

	"github.com/GoogleCloudPlatform/secretsharing/secrets"
	"sigs.k8s.io/yaml"
)

// Config holds splitting parameters as written in a YAML configuration:
//
//	shares: 5
//	threshold: 3
//	randomIndices: true
type Config struct {
	Shares        int  `json:"shares"`
	Threshold     int  `json:"threshold"`
	RandomIndices bool `json:"randomIndices,omitempty"`
}

// LoadConfig parses and validates a YAML configuration. Unknown fields are
// rejected.
func LoadConfig(yamlBytes []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.UnmarshalStrict(yamlBytes, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse secret sharing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the share count and threshold.
func (c *Config) Validate() error {
	return validateParameters(c.Shares, c.Threshold)
}

// Metadata returns the split metadata described by c.
func (c *Config) Metadata() secrets.Metadata {
	return secrets.Metadata{
		NumShares: c.Shares,
		Threshold: c.Threshold,
	}
}

// Options returns the split options described by c.
func (c *Config) Options() []Option {
	var opts []Option
	if c.RandomIndices {
		opts = append(opts, WithRandomIndices())
	}
	return opts
}
