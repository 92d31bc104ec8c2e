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
	"context"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/tsv"
)

// WriteCounts dumps the per-pattern counts as a TSV for downstream
// scripting.  One row per non-empty pattern, in report order, with one 0/1
// membership column per caller:
//
//	PATTERN	Bcftools	FreeBayes	COUNT
//	10	1	0	17
func WriteCounts(ctx context.Context, path string, res Result) (err error) {
	out, err := file.Create(ctx, path)
	if err != nil {
		return errors.E(err, "creating counts file:", path)
	}
	defer file.CloseAndReport(ctx, out, &err)
	w := tsv.NewWriter(out.Writer(ctx))
	w.WriteString("PATTERN")
	for _, caller := range res.Callers {
		w.WriteString(caller)
	}
	w.WriteString("COUNT")
	if err = w.EndLine(); err != nil {
		return errors.E(err, "writing counts file:", path)
	}
	n := res.NumCallers()
	for _, p := range Patterns(n) {
		w.WriteString(p.Key(n))
		for i := 0; i < n; i++ {
			if p.Has(i) {
				w.WriteString("1")
			} else {
				w.WriteString("0")
			}
		}
		w.WriteInt64(int64(res.Counts[p]))
		if err = w.EndLine(); err != nil {
			return errors.E(err, "writing counts file:", path)
		}
	}
	if err = w.Flush(); err != nil {
		return errors.E(err, "writing counts file:", path)
	}
	return nil
}
