// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package project

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/naoina/toml"
)

// ConfigFile is the name of the Foundry project configuration.
const ConfigFile = "foundry.toml"

// defaultProfile is the profile forge uses without FOUNDRY_PROFILE.
const defaultProfile = "default"

// Profile holds the layout settings of a Foundry profile.
type Profile struct {
	Src        string   `toml:"src"`
	Test       string   `toml:"test"`
	Libs       []string `toml:"libs"`
	Remappings []string `toml:"remappings"`
}

type foundryConfig struct {
	Profile map[string]Profile `toml:"profile"`
}

// keyNormalizer makes snake_case and kebab-case keys match Go field names.
var keyNormalizer = strings.NewReplacer("_", "", "-", "")

// tomlSettings decodes foundry.toml, ignoring the many compiler and tooling keys not needed here.
var tomlSettings = toml.Config{
	NormFieldName: func(_ reflect.Type, key string) string {
		return strings.ToLower(keyNormalizer.Replace(key))
	},
	FieldToKey: func(_ reflect.Type, field string) string {
		return field
	},
	MissingField: func(_ reflect.Type, _ string) error {
		return nil
	},
}

// defaults returns the layout forge assumes without explicit settings.
func defaults() Profile {
	return Profile{Src: "src", Test: "test", Libs: []string{"lib"}}
}

// loadProfile reads the named profile from a foundry.toml, layered over the default profile and forge's defaults.
func loadProfile(file, name string) (Profile, error) {
	f, err := os.Open(file)
	if err != nil {
		return Profile{}, err
	}
	defer f.Close()

	var cfg foundryConfig
	if err := tomlSettings.NewDecoder(bufio.NewReader(f)).Decode(&cfg); err != nil {
		// Add file name to errors that have a line number.
		var lerr *toml.LineError
		if errors.As(err, &lerr) {
			return Profile{}, fmt.Errorf("%s, %w", file, err)
		}

		return Profile{}, err
	}

	p := defaults()
	p.merge(cfg.Profile[defaultProfile])

	if name != defaultProfile {
		p.merge(cfg.Profile[name])
	}

	return p, nil
}

func (p *Profile) merge(o Profile) {
	if o.Src != "" {
		p.Src = o.Src
	}

	if o.Test != "" {
		p.Test = o.Test
	}

	if o.Libs != nil {
		p.Libs = o.Libs
	}

	if o.Remappings != nil {
		p.Remappings = o.Remappings
	}
}
