// Copyright 2025 Naren Yellavula
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

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cybrota/avlkit/equalpaths"
)

// decodePathsTree reads a plain binary tree written as nested YAML
// mappings. An empty document is the empty tree.
func decodePathsTree(r io.Reader) (*equalpaths.Node, error) {
	var root *equalpaths.Node
	if err := yaml.NewDecoder(r).Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to decode tree: %w", err)
	}
	return root, nil
}

func loadPathsTree(path string) (*equalpaths.Node, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return decodePathsTree(file)
}

// reportPaths prints whether all leaves share a depth, and the depths.
// It returns the verdict.
func reportPaths(w io.Writer, root *equalpaths.Node) bool {
	equal := equalpaths.EqualPaths(root)
	if equal {
		fmt.Fprintf(w, "%sequal paths%s: every leaf is at the same depth\n", Green, Reset)
	} else {
		fmt.Fprintf(w, "%sunequal paths%s: leaves sit at different depths\n", Warning, Reset)
	}
	fmt.Fprintf(w, "leaf depths: %v\n", equalpaths.Leaves(root))
	return equal
}
