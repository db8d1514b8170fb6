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

package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/apache/parquet-filter-go"
	"github.com/apache/parquet-filter-go/config"
	"github.com/apache/parquet-filter-go/rowgroup"
	"github.com/docopt/docopt-go"
)

const usage = `parquet-filter.

Usage:
  parquet-filter rowgroups [options] FILE
  parquet-filter stats [options] FILE [COLUMN]
  parquet-filter prune --filter PATH [options] FILE
  parquet-filter -h | --help | --version

Commands:
  rowgroups          Summarize the row groups of a parquet file.
  stats              Show the column chunk statistics of every row group.
  prune              Evaluate a filter document against the row group statistics.

Arguments:
  FILE               Path or URI of a parquet file. The URI scheme selects the
                     storage backend, a bare path reads from the local filesystem.
  COLUMN             Restrict the stats output to one dotted column path.

Options:
  -h --help          show this help message and exit
  --filter PATH      yaml filter document with the predicate to evaluate
  --backend TEXT     footer reader to use, arrow or parquet-go
  --output TYPE      output type, text or json
  --max-workers N    number of row groups to evaluate in parallel [default: 0]
  --config PATH      override the default configuration file path
  --properties TEXT  comma-separated key=value pairs passed to the storage backend`

// Config holds the parsed command line arguments, with the fields the
// command line leaves unset filled in from the configuration file.
type Config struct {
	RowGroups bool `docopt:"rowgroups"`
	Stats     bool `docopt:"stats"`
	Prune     bool `docopt:"prune"`

	File   string `docopt:"FILE"`
	Column string `docopt:"COLUMN"`
	Filter string `docopt:"--filter"`

	Backend    string `docopt:"--backend"`
	Output     string `docopt:"--output"`
	MaxWorkers int    `docopt:"--max-workers"`
	ConfigPath string `docopt:"--config"`
	Properties string `docopt:"--properties"`
}

func main() {
	args, err := docopt.ParseArgs(usage, os.Args[1:], filter.Version())
	if err != nil {
		log.Fatal(err)
	}

	cfg := Config{}
	if err := args.Bind(&cfg); err != nil {
		log.Fatal(err)
	}

	fileCfg := config.EnvConfig
	if cfg.ConfigPath != "" {
		fileCfg = config.ParseConfig(config.LoadConfig(cfg.ConfigPath))
	}
	mergeConf(fileCfg, &cfg)

	var output Output
	switch strings.ToLower(cfg.Output) {
	case "text":
		output = textOutput{}
	case "json":
		output = jsonOutput{}
	default:
		log.Fatal("unimplemented output type: ", cfg.Output)
	}

	props, err := parseProperties(cfg.Properties)
	if err != nil {
		output.Error(err)
		os.Exit(1)
	}

	// Storage properties from the configuration file apply only where
	// the command line did not set the same key.
	for key, value := range fileCfg.FS {
		if _, ok := props[key]; !ok {
			props[key] = value
		}
	}

	ctx := context.Background()

	src, closer, err := openSource(ctx, cfg.Backend, props, cfg.File)
	if err != nil {
		output.Error(err)
		os.Exit(1)
	}
	defer closer()

	switch {
	case cfg.RowGroups:
		infos, err := describeAll(src)
		if err != nil {
			output.Error(err)
			os.Exit(1)
		}

		output.RowGroups(infos)
	case cfg.Stats:
		infos, err := describeAll(src)
		if err != nil {
			output.Error(err)
			os.Exit(1)
		}

		if cfg.Column != "" {
			if err := keepColumn(infos, cfg.Column); err != nil {
				output.Error(err)
				os.Exit(1)
			}
		}

		output.Stats(infos)
	case cfg.Prune:
		doc, err := os.ReadFile(cfg.Filter)
		if err != nil {
			output.Error(err)
			os.Exit(1)
		}

		pred, err := filter.ParseFilterDocument(doc)
		if err != nil {
			output.Error(err)
			os.Exit(1)
		}

		kept, err := rowgroup.FilterParallel(ctx, pred, src, cfg.MaxWorkers)
		if err != nil {
			output.Error(err)
			os.Exit(1)
		}

		output.Pruned(newPruneResult(pred, src.NumRowGroups(), kept))
	}
}

func mergeConf(fileConf config.Config, resConfig *Config) {
	if resConfig.Backend == "" {
		resConfig.Backend = fileConf.DefaultBackend
	}

	if resConfig.Output == "" {
		resConfig.Output = fileConf.DefaultOutput
	}

	if resConfig.MaxWorkers <= 0 {
		resConfig.MaxWorkers = fileConf.MaxWorkers
	}
}

// keepColumn drops every chunk entry except the ones for column from
// infos, in place. It is an error for column to match nowhere.
func keepColumn(infos []*rowgroup.RowGroupInfo, column string) error {
	found := false
	for _, info := range infos {
		matched := info.Columns[:0]
		for _, cs := range info.Columns {
			if cs.Path == column {
				matched = append(matched, cs)
				found = true
			}
		}

		info.Columns = matched
	}

	if !found {
		return fmt.Errorf("no column %s in any row group", column)
	}

	return nil
}
