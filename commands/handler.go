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

package commands

// Handler defines the interface for the commands a session understands
type Handler interface {
	// Run executes cmd against s and returns the text to show.
	Run(s *Session, cmd *Command) (string, error)
	SupportsCommand(name string) bool
	Name() string
	Usage() string
	// Help is a markdown page describing the command.
	Help() string
}

// aliases implements SupportsCommand for handlers known under several names.
type aliases []string

func (a aliases) SupportsCommand(name string) bool {
	for _, n := range a {
		if n == name {
			return true
		}
	}
	return false
}

func (a aliases) Name() string {
	return a[0]
}
