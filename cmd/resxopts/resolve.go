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
	"github.com/spf13/cobra"

	"dirpx.dev/resx"
	"dirpx.dev/resx/naming"
	"dirpx.dev/resx/resolver"
)

type resolveOptions struct {
	workers   int
	cacheSize int
}

func newResolveCmd(root *rootOptions) *cobra.Command {
	o := &resolveOptions{}
	cmd := &cobra.Command{
		Use:   "resolve [file...]",
		Short: "Print the resolved settings of resource files",
		Long: "Print the resolved settings of the given resource files, or of every\n" +
			"file section in the analyzer config when no file is given.",
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := root.loadRegistry()
			if err != nil {
				return err
			}

			g := resx.Global(reg)
			if !g.Valid {
				logger(cmd).Printf("warning: %s does not set both build_property.RootNamespace and build_property.MSBuildProjectFullPath; every file is marked invalid", root.configPath)
			}

			files := reg.Files()
			if len(args) > 0 {
				files = make([]string, len(args))
				for i, a := range args {
					files[i] = reg.Path(a)
				}
			}

			res := resolver.New()
			if o.cacheSize > 0 {
				c, err := naming.NewCache(o.cacheSize)
				if err != nil {
					return err
				}
				res = resolver.New(resolver.WithCache(c))
			}

			out, err := resx.ResolveAll(cmd.Context(), reg, g, files,
				resx.WithWorkers(o.workers),
				resx.WithResolver(res),
			)
			if err != nil {
				return err
			}
			return root.render(cmd.OutOrStdout(), out)
		},
	}
	cmd.Flags().IntVarP(&o.workers, "workers", "w", 0, "Files resolved at once (0 = GOMAXPROCS)")
	cmd.Flags().IntVar(&o.cacheSize, "cache", naming.DefaultCacheSize, "Derivation cache entries (0 disables the cache)")
	return cmd
}
