/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"dirpx.dev/resx/registry"
)

// configEnv supplies --config when the flag is not given.
const configEnv = "RESXOPTS_CONFIG"

var errNoConfig = errors.New("no analyzer config: pass --config or set " + configEnv)

// rootOptions are the flags shared by every subcommand.
type rootOptions struct {
	configPath string
	format     string
}

func newRootCmd() *cobra.Command {
	o := &rootOptions{}
	cmd := &cobra.Command{
		Use:          "resxopts",
		Short:        "Resolve resource accessor generation settings",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if o.configPath == "" {
				o.configPath = os.Getenv(configEnv)
			}
			if o.configPath == "" {
				return errNoConfig
			}
			switch o.format {
			case "json", "yaml":
				return nil
			default:
				return fmt.Errorf("unknown format %q (want json or yaml)", o.format)
			}
		},
	}
	cmd.PersistentFlags().StringVarP(&o.configPath, "config", "c", "", "Path to the analyzer config file (env "+configEnv+")")
	cmd.PersistentFlags().StringVarP(&o.format, "format", "f", "json", "Output format: json or yaml")

	cmd.AddCommand(newResolveCmd(o), newDefaultsCmd(o))

	return cmd
}

// logger writes to the command's stderr.
func logger(cmd *cobra.Command) *log.Logger {
	return log.New(cmd.ErrOrStderr(), "resxopts: ", 0)
}

// loadRegistry loads the analyzer config named by the root flags.
func (o *rootOptions) loadRegistry() (*registry.Registry, error) {
	reg, err := registry.Load(o.configPath)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", o.configPath, err)
	}
	return reg, nil
}

// render writes v to w in the selected format.
func (o *rootOptions) render(w io.Writer, v any) error {
	if o.format == "yaml" {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
