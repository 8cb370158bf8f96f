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
	"fmt"
	"runtime"
	"strings"

	markdown "github.com/MichaelMure/go-term-markdown"

	"github.com/cybrota/avlkit/commands"
)

func getHelpMessage() string {
	var cmdList strings.Builder
	for _, h := range commands.NewManager().Handlers() {
		fmt.Fprintf(&cmdList, "* `%s`\n", h.Usage())
	}

	message := fmt.Sprintf(`

 **avlkit %s**

A self-balancing AVL tree you can drive from the terminal: insert and
remove keys, watch rotations keep the height within 1.44·log2(n+2), and
verify every balance factor.

Built with Go %s

# 1. Commands
* avlkit run: interactive session with live tree view and help pane
* avlkit exec <script>: run a script of commands against a fresh tree
* avlkit bench --n N --order asc|desc|random: measure height against the AVL bound
* avlkit paths <tree.yaml>: check whether all leaves of a plain tree share a depth
* avlkit dashboard <script>: tree, depth histogram and stats after a script
* avlkit settings: show or create ~/.avlkit.yaml

# 2. Command language
One command per line, shell-style quoting, lines starting with # are comments.

%s
# 3. Keys in the interactive session
* enter: run the typed command
* f1: help for the typed command
* tab: switch focus between input, tree and help
* ctrl+y: copy the rendered tree to the clipboard
* esc: quit

# Please be aware
* Copy to clipboard on Linux or Unix requires 'xclip' or 'xsel' to be installed

# License
Licensed under the Apache License, Version 2.0
Copyright © 2025 Naren Yellavula

`, version, runtime.Version(), cmdList.String())
	result := markdown.Render(message, 80, 3)
	return string(result)
}
