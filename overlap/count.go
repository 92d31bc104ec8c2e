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

package overlap

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/grailbio/base/compress"
	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
)

// Count reads the variant comparison table at path and tabulates the
// per-pattern row counts.  The file must be tab-separated with a header row
// containing at least two RecognizedCallers columns.  A .gz path is
// decompressed transparently.  Any failure is returned without partial
// results.
func Count(ctx context.Context, path string) (res Result, err error) {
	in, err := file.Open(ctx, path)
	if err != nil {
		return Result{}, errors.E(err, "reading variant table:", path)
	}
	defer file.CloseAndReport(ctx, in, &err)
	var r io.Reader = in.Reader(ctx)
	if u := compress.NewReaderPath(r, in.Name()); u != nil {
		r = u
	}
	return CountReader(r, path)
}

// CountReader is the io.Reader form of Count.  name is used in diagnostics
// only.
func CountReader(r io.Reader, name string) (Result, error) {
	scanner := bufio.NewScanner(bufio.NewReaderSize(r, 64<<10))
	scanner.Buffer(make([]byte, 0, 1<<20), 1<<20)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return Result{}, errors.E(err, "reading variant table:", name)
		}
		return Result{}, errors.E("empty variant table:", name)
	}
	header := splitRow(scanner.Text())
	callers := SelectCallers(header)
	if len(callers) < 2 {
		return Result{}, errors.E(fmt.Sprintf(
			"%s: at least 2 caller columns required, found %d; columns present: [%s]; recognized caller columns: [%s]",
			name, len(callers), strings.Join(header, ", "), strings.Join(RecognizedCallers, ", ")))
	}

	// Column index of each selected caller, first occurrence wins.
	cols := make([]int, len(callers))
	for i, caller := range callers {
		cols[i] = -1
		for j, col := range header {
			if col == caller {
				cols[i] = j
				break
			}
		}
	}

	res := Result{Callers: callers, Counts: make(Counts)}
	for _, p := range Patterns(len(callers)) {
		res.Counts[p] = 0
	}
	for scanner.Scan() {
		row := splitRow(scanner.Text())
		res.TotalRows++
		var p Pattern
		for i, col := range cols {
			if col >= len(row) {
				return Result{}, errors.E(fmt.Sprintf(
					"%s: row %d has %d columns, %q column (index %d) missing",
					name, res.TotalRows, len(row), callers[i], col))
			}
			if row[col] == "1" {
				p |= 1 << uint(i)
			}
		}
		if p == 0 {
			res.Unclassified++
			continue
		}
		res.Counts[p]++
	}
	if err := scanner.Err(); err != nil {
		return Result{}, errors.E(err, "reading variant table:", name)
	}
	return res, nil
}

func splitRow(line string) []string {
	return strings.Split(strings.TrimRight(line, "\r"), "\t")
}
