/*
Copyright 2011-2026 Frederic Langlet
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
you may obtain a copy of the License at

                http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package main

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// config carries the BV-iterator knobs this reference driver accepts:
// window, minInterval and maxRef shape the
// synthetic test graph's structure (see generateTestGraph) the same way
// they would bound a real BV iterator's reference-chasing and interval
// splitting, a mirror kept intentionally shallow since that iterator is
// out of this module's scope.
type config struct {
	Window      int    `yaml:"window"`
	MinInterval int    `yaml:"min-interval"`
	MaxRef      int    `yaml:"max-ref"`
	Nodes       int    `yaml:"nodes"`
	Seed        int64  `yaml:"seed"`
	Bitio       bool   `yaml:"bitio"`
	Compress    bool   `yaml:"compress"`
	ConfigPath  string `yaml:"-"`
}

func defaultConfig() config {
	return config{
		Window:      7,
		MinInterval: 4,
		MaxRef:      256,
		Nodes:       4096,
		Seed:        1,
	}
}

// loadConfigFile overlays path's YAML contents onto cfg, mirroring sneller's
// pattern of decoding a YAML file directly into a typed config struct.
func loadConfigFile(cfg *config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "bvcomp: read config %s", path)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return errors.Wrapf(err, "bvcomp: parse config %s", path)
	}

	return nil
}
