// Copyright 2024 Aerospike, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package models

// App contains global application parameters.
type App struct {
	Help    bool `yaml:"-"`
	Version bool `yaml:"-"`
	// Config is a path to a YAML configuration file, not read from the file itself.
	Config   string `yaml:"-"`
	Verbose  bool   `yaml:"verbose,omitempty"`
	LogLevel string `yaml:"log-level,omitempty"`
	LogJSON  bool   `yaml:"log-json,omitempty"`
}
