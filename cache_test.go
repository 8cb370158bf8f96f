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
	"testing"
	"time"

	"github.com/patrickmn/go-cache"
)

func TestCacheHelpPageAndGetHelpPage(t *testing.T) {
	c := NewHelpCache()
	cmd := "insert"
	helpText := "# insert\n\nAdd a key with its value."

	if got := GetHelpPage(c, cmd); got != "" {
		t.Errorf("GetHelpPage(%q) = %q; want empty string", cmd, got)
	}

	CacheHelpPage(c, cmd, helpText)

	if got := GetHelpPage(c, cmd); got != helpText {
		t.Errorf("GetHelpPage(%q) = %q; want %q", cmd, got, helpText)
	}
}

func TestCacheExpiration(t *testing.T) {
	c := cache.New(100*time.Millisecond, 50*time.Millisecond)
	cmd := "remove"
	helpText := "This help text should expire soon."

	CacheHelpPage(c, cmd, helpText)

	if got := GetHelpPage(c, cmd); got != helpText {
		t.Errorf("GetHelpPage(%q) = %q; want %q", cmd, got, helpText)
	}

	time.Sleep(150 * time.Millisecond)

	if got := GetHelpPage(c, cmd); got != "" {
		t.Errorf("After expiration, GetHelpPage(%q) = %q; want empty string", cmd, got)
	}
}
