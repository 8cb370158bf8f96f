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

import (
	"io"

	"github.com/willf/bloom"

	"github.com/cybrota/avlkit/avl"
	"github.com/cybrota/avlkit/bst"
)

const (
	DefaultBloomBits   = 1 << 16
	DefaultBloomHashes = 5
	MaxOutputSize      = 1024 * 1024 // 1MB
)

// Options configure a Session.
type Options struct {
	BloomBits   uint
	BloomHashes uint
	ShowValues  bool
	ShowBalance bool
}

// DefaultOptions mirror the defaults of the configuration file.
func DefaultOptions() Options {
	return Options{
		BloomBits:   DefaultBloomBits,
		BloomHashes: DefaultBloomHashes,
		ShowValues:  true,
		ShowBalance: true,
	}
}

// Stats counts what a session has done so far.
type Stats struct {
	Size        int
	Height      int
	MaxHeight   float64
	Inserts     int
	Updates     int
	Removes     int
	Lookups     int
	FilterSkips int // lookups answered by the bloom filter alone
}

// Session holds a string keyed AVL tree and a bloom filter of every key
// inserted since the filter was last rebuilt. Not safe for concurrent use.
type Session struct {
	tree   *avl.Tree[string, string]
	filter *bloom.BloomFilter
	opts   Options
	stats  Stats
	stale  int // removed keys still set in the filter
}

// NewSession creates an empty session.
func NewSession(opts Options) *Session {
	if opts.BloomBits == 0 {
		opts.BloomBits = DefaultBloomBits
	}
	if opts.BloomHashes == 0 {
		opts.BloomHashes = DefaultBloomHashes
	}
	return &Session{
		tree:   avl.New[string, string](),
		filter: bloom.New(opts.BloomBits, opts.BloomHashes),
		opts:   opts,
	}
}

// Tree gives read access to the underlying tree.
func (s *Session) Tree() *avl.Tree[string, string] {
	return s.tree
}

// Options returns the options the session was created with.
func (s *Session) Options() Options {
	return s.opts
}

// Insert adds key or overwrites its value; true if the key is new.
func (s *Session) Insert(key, value string) bool {
	s.filter.AddString(key)
	added := s.tree.Insert(key, value)
	if added {
		s.stats.Inserts++
	} else {
		s.stats.Updates++
	}
	return added
}

// Find looks key up, skipping the tree when the filter rules the key out.
func (s *Session) Find(key string) (string, bool) {
	s.stats.Lookups++
	if !s.filter.TestString(key) {
		s.stats.FilterSkips++
		return "", false
	}
	return s.tree.Find(key)
}

// Remove deletes key. Bloom filters cannot forget, so once removed keys
// outnumber the live ones the filter is rebuilt from the tree.
func (s *Session) Remove(key string) (string, bool) {
	v, ok := s.tree.Remove(key)
	if !ok {
		return "", false
	}
	s.stats.Removes++
	s.stale++
	if s.stale > s.tree.Len() {
		s.rebuildFilter()
	}
	return v, true
}

func (s *Session) rebuildFilter() {
	s.filter.ClearAll()
	for k := range s.tree.All() {
		s.filter.AddString(k)
	}
	s.stale = 0
}

// Clear drops every key and resets the filter.
func (s *Session) Clear() {
	s.tree.Clear()
	s.filter.ClearAll()
	s.stale = 0
}

// Stats returns counters together with the current shape of the tree.
func (s *Session) Stats() Stats {
	st := s.stats
	st.Size = s.tree.Len()
	st.Height = s.tree.Height()
	st.MaxHeight = avl.MaxHeight(st.Size)
	return st
}

// Render draws the tree to w, capped at MaxOutputSize bytes.
func (s *Session) Render(w io.Writer) (truncated bool) {
	lw := &LimitedWriter{w: w, limit: MaxOutputSize}
	s.tree.Print(lw, bst.PrintOptions{Values: s.opts.ShowValues, Balance: s.opts.ShowBalance})
	return lw.truncated
}

// DepthHistogram counts the nodes found at each depth, the root at index 0.
func (s *Session) DepthHistogram() []int {
	var hist []int
	var walk func(n *bst.Node[string, string], depth int)
	walk = func(n *bst.Node[string, string], depth int) {
		if n == nil {
			return
		}
		if depth == len(hist) {
			hist = append(hist, 0)
		}
		hist[depth]++
		walk(n.Left(), depth+1)
		walk(n.Right(), depth+1)
	}
	walk(s.tree.Root(), 0)
	return hist
}

// LimitedWriter implements io.Writer with size limiting
type LimitedWriter struct {
	w         io.Writer
	limit     int64
	written   int64
	truncated bool
}

func (lw *LimitedWriter) Write(p []byte) (n int, err error) {
	if lw.written >= lw.limit {
		lw.truncated = true
		return len(p), nil
	}

	remaining := lw.limit - lw.written
	if int64(len(p)) > remaining {
		lw.truncated = true
		n, err = lw.w.Write(p[:remaining])
		lw.written += int64(n)
		return len(p), err
	}

	n, err = lw.w.Write(p)
	lw.written += int64(n)
	return n, err
}
