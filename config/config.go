// Licensed to the Apache Software Foundation (ASF) under one
// or more contributor license agreements.  See the NOTICE file
// distributed with this work for additional information
// regarding copyright ownership.  The ASF licenses this file
// to you under the Apache License, Version 2.0 (the
// "License"); you may not use this file except in compliance
// with the License.  You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing,
// software distributed under the License is distributed on an
// "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
// KIND, either express or implied.  See the License for the
// specific language governing permissions and limitations
// under the License.

package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	cfgFile           = ".parquet-filter-go.yaml"
	defaultMaxWorkers = 5
	defaultBackend    = "arrow"
	defaultOutput     = "text"
)

type Config struct {
	DefaultBackend string            `yaml:"default-backend"`
	DefaultOutput  string            `yaml:"default-output"`
	MaxWorkers     int               `yaml:"max-workers"`
	FS             map[string]string `yaml:"fs"`
}

func LoadConfig(configPath string) []byte {
	var path string
	if len(configPath) > 0 {
		path = configPath
	} else {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil
		}
		path = filepath.Join(homeDir, cfgFile)
	}
	file, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	return file
}

// ParseConfig decodes a yaml configuration, falling back to the
// defaults for anything the file leaves unset or when the file cannot
// be decoded at all.
func ParseConfig(file []byte) Config {
	var cfg Config
	if err := yaml.Unmarshal(file, &cfg); err != nil {
		cfg = Config{}
	}

	if cfg.DefaultBackend == "" {
		cfg.DefaultBackend = defaultBackend
	}
	if cfg.DefaultOutput == "" {
		cfg.DefaultOutput = defaultOutput
	}
	if cfg.MaxWorkers <= 0 {
		cfg.MaxWorkers = defaultMaxWorkers
	}

	return cfg
}

func fromConfigFiles() Config {
	dir := os.Getenv("PARQUET_FILTER_GO_HOME")
	if dir != "" {
		dir = filepath.Join(dir, cfgFile)
	}

	return ParseConfig(LoadConfig(dir))
}

// EnvConfig is the configuration from the yaml file in the directory
// named by PARQUET_FILTER_GO_HOME, or in the home directory when the
// variable is unset.
var EnvConfig = fromConfigFiles()
