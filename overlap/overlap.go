// Copyright 2026 Grail Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package overlap tabulates caller-membership overlaps from a variant
// comparison TSV.  Each recognized caller column holds a 0/1 flag per row;
// every row with at least one flag set falls into exactly one membership
// pattern, and the per-pattern counts drive the Venn renderer.
package overlap

import (
	"strings"
)

// RecognizedCallers is the fixed, priority-ordered list of caller column
// names.  Matching is case-sensitive and both casing conventions are
// independent entries; upstream pipelines emit either form and some emit
// both, so do not unify them.  The first (at most) three names found in a
// table's header, in this order, become the caller set.
var RecognizedCallers = []string{"Bcftools", "FreeBayes", "GATK", "bcftools", "freebayes", "gatk"}

// MaxCallers is the largest caller set a diagram can represent.
const MaxCallers = 3

// Pattern is a caller-membership bitmask.  Bit i is set iff the row was
// called by caller i of the selected set.  A Pattern appearing as a Counts
// key is never zero; rows with no flags set are excluded from every bucket.
type Pattern uint8

// Has reports whether caller i is a member of the pattern.
func (p Pattern) Has(i int) bool { return p&(1<<uint(i)) != 0 }

// Key renders the pattern as a fixed-width bit string over n callers, first
// caller leftmost ("10", "011", ...).  This matches the historical key
// format of the pipeline's reports.
func (p Pattern) Key(n int) string {
	var sb strings.Builder
	for i := 0; i < n; i++ {
		if p.Has(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// Patterns returns the 2^n-1 non-empty membership patterns over n callers in
// report order: the n singletons, then the pairwise overlaps, then (for n=3)
// the triple overlap.
func Patterns(n int) []Pattern {
	switch n {
	case 2:
		return []Pattern{0b01, 0b10, 0b11}
	case 3:
		return []Pattern{0b001, 0b010, 0b100, 0b011, 0b101, 0b110, 0b111}
	}
	return nil
}

// Counts maps each non-empty membership pattern to the number of rows
// matching exactly that pattern.  All 2^n-1 patterns are present as keys,
// zero-count patterns included.
type Counts map[Pattern]int

// Result is the output of Count: the selected caller set (in
// RecognizedCallers priority order) and the per-pattern row counts.
type Result struct {
	// Callers holds the 2 or 3 selected caller column names.
	Callers []string
	// Counts holds one bucket per non-empty membership pattern.
	Counts Counts
	// TotalRows is the number of data rows in the table.
	TotalRows int
	// Unclassified is the number of rows with no caller flag set.  Such
	// rows belong to no bucket and do not appear in the diagram.
	Unclassified int
}

// NumCallers returns the size of the selected caller set.
func (r *Result) NumCallers() int { return len(r.Callers) }

// SelectCallers scans RecognizedCallers in priority order and returns every
// name present in header, capped at MaxCallers.  The returned order is
// authoritative for all downstream positional encoding; it is neither
// alphabetical nor header order.
func SelectCallers(header []string) []string {
	present := make(map[string]bool, len(header))
	for _, col := range header {
		present[col] = true
	}
	var callers []string
	for _, name := range RecognizedCallers {
		if present[name] {
			callers = append(callers, name)
			if len(callers) == MaxCallers {
				break
			}
		}
	}
	return callers
}
