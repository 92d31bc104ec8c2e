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
	"io/ioutil"
	"path/filepath"
	"strings"
	"testing"

	"github.com/grailbio/base/vcontext"
	"github.com/grailbio/testutil"
	"github.com/grailbio/testutil/expect"
	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTable(t *testing.T, dir, name string, lines ...string) string {
	path := filepath.Join(dir, name)
	data := strings.Join(lines, "\n") + "\n"
	if strings.HasSuffix(name, ".gz") {
		var sb strings.Builder
		gz := gzip.NewWriter(&sb)
		_, err := gz.Write([]byte(data))
		require.NoError(t, err)
		require.NoError(t, gz.Close())
		data = sb.String()
	}
	require.NoError(t, ioutil.WriteFile(path, []byte(data), 0644))
	return path
}

func TestSelectCallers(t *testing.T) {
	// Selection follows RecognizedCallers priority order, not header order.
	expect.EQ(t, SelectCallers([]string{"CHROM", "POS", "gatk", "Bcftools"}),
		[]string{"Bcftools", "gatk"})
	expect.EQ(t, SelectCallers([]string{"GATK", "FreeBayes", "Bcftools"}),
		[]string{"Bcftools", "FreeBayes", "GATK"})
	// Case-sensitive: both casing conventions are independent entries.
	expect.EQ(t, SelectCallers([]string{"bcftools", "freebayes"}),
		[]string{"bcftools", "freebayes"})
	expect.Nil(t, SelectCallers([]string{"BCFTOOLS", "Freebayes"}))
	// A fourth recognized name is discarded: first 3 in priority order win.
	expect.EQ(t, SelectCallers([]string{"gatk", "GATK", "FreeBayes", "Bcftools"}),
		[]string{"Bcftools", "FreeBayes", "GATK"})
}

func TestPatternKey(t *testing.T) {
	expect.EQ(t, Pattern(0b01).Key(2), "10")
	expect.EQ(t, Pattern(0b10).Key(2), "01")
	expect.EQ(t, Pattern(0b11).Key(2), "11")
	expect.EQ(t, Pattern(0b101).Key(3), "101")
	expect.EQ(t, Pattern(0b100).Key(3), "001")
	expect.EQ(t, Pattern(0b111).Key(3), "111")
}

func TestCountTwoCallers(t *testing.T) {
	ctx := vcontext.Background()
	tempDir, cleanup := testutil.TempDir(t, "", "")
	defer cleanup()
	path := writeTable(t, tempDir, "summary.tsv",
		"CHROM\tPOS\tBcftools\tFreeBayes",
		"chr1\t100\t1\t0",
		"chr1\t200\t0\t1",
		"chr1\t300\t1\t1",
		"chr1\t400\t0\t0",
		"chr2\t100\t1\t0",
	)
	res, err := Count(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Bcftools", "FreeBayes"}, res.Callers)
	assert.Equal(t, 2, res.NumCallers())
	assert.Equal(t, Counts{0b01: 2, 0b10: 1, 0b11: 1}, res.Counts)
	assert.Equal(t, 5, res.TotalRows)
	assert.Equal(t, 1, res.Unclassified)
}

func TestCountThreeCallers(t *testing.T) {
	ctx := vcontext.Background()
	tempDir, cleanup := testutil.TempDir(t, "", "")
	defer cleanup()
	path := writeTable(t, tempDir, "summary.tsv",
		"CHROM\tPOS\tbcftools\tfreebayes\tgatk",
		"chr1\t1\t1\t0\t0",
		"chr1\t2\t0\t1\t0",
		"chr1\t3\t0\t0\t1",
		"chr1\t4\t1\t1\t0",
		"chr1\t5\t1\t0\t1",
		"chr1\t6\t0\t1\t1",
		"chr1\t7\t1\t1\t1",
		"chr1\t8\t1\t1\t1",
		"chr1\t9\t0\t0\t0",
	)
	res, err := Count(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, []string{"bcftools", "freebayes", "gatk"}, res.Callers)
	want := Counts{
		0b001: 1, 0b010: 1, 0b100: 1,
		0b011: 1, 0b101: 1, 0b110: 1,
		0b111: 2,
	}
	assert.Equal(t, want, res.Counts)

	// Partition exactness: every row lands in exactly one bucket or is
	// excluded for having no flags set.
	classified := 0
	for _, c := range res.Counts {
		classified += c
	}
	assert.Equal(t, res.TotalRows, classified+res.Unclassified)
}

func TestCountInsufficientColumns(t *testing.T) {
	ctx := vcontext.Background()
	tempDir, cleanup := testutil.TempDir(t, "", "")
	defer cleanup()
	for _, lines := range [][]string{
		{"CHROM\tPOS\tREF\tALT", "chr1\t1\tA\tT"},
		{"CHROM\tPOS\tGATK", "chr1\t1\t1"},
	} {
		path := writeTable(t, tempDir, "bad.tsv", lines...)
		_, err := Count(ctx, path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "at least 2 caller columns required")
		// The message enumerates the columns actually present for diagnosis.
		assert.Contains(t, err.Error(), "CHROM, POS")
	}
}

func TestCountAllZeroRows(t *testing.T) {
	ctx := vcontext.Background()
	tempDir, cleanup := testutil.TempDir(t, "", "")
	defer cleanup()
	path := writeTable(t, tempDir, "zeros.tsv",
		"Bcftools\tFreeBayes\tGATK",
		"0\t0\t0",
		"0\t0\t0",
	)
	res, err := Count(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Unclassified)
	require.Len(t, res.Counts, 7)
	for p, c := range res.Counts {
		assert.Equalf(t, 0, c, "pattern %s", p.Key(3))
	}
}

func TestCountRaggedRow(t *testing.T) {
	ctx := vcontext.Background()
	tempDir, cleanup := testutil.TempDir(t, "", "")
	defer cleanup()
	path := writeTable(t, tempDir, "ragged.tsv",
		"CHROM\tBcftools\tFreeBayes",
		"chr1\t1\t0",
		"chr1\t1",
	)
	_, err := Count(ctx, path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 2")
}

func TestCountMissingFile(t *testing.T) {
	ctx := vcontext.Background()
	tempDir, cleanup := testutil.TempDir(t, "", "")
	defer cleanup()
	_, err := Count(ctx, filepath.Join(tempDir, "nonexistent.tsv"))
	require.Error(t, err)
}

func TestCountGzipInput(t *testing.T) {
	ctx := vcontext.Background()
	tempDir, cleanup := testutil.TempDir(t, "", "")
	defer cleanup()
	path := writeTable(t, tempDir, "summary.tsv.gz",
		"Bcftools\tgatk",
		"1\t1",
		"1\t0",
	)
	res, err := Count(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Bcftools", "gatk"}, res.Callers)
	assert.Equal(t, Counts{0b01: 1, 0b10: 0, 0b11: 1}, res.Counts)
}

func TestCountIdempotent(t *testing.T) {
	ctx := vcontext.Background()
	tempDir, cleanup := testutil.TempDir(t, "", "")
	defer cleanup()
	path := writeTable(t, tempDir, "summary.tsv",
		"FreeBayes\tGATK",
		"1\t0",
		"0\t1",
		"1\t1",
	)
	first, err := Count(ctx, path)
	require.NoError(t, err)
	second, err := Count(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestWriteCounts(t *testing.T) {
	ctx := vcontext.Background()
	tempDir, cleanup := testutil.TempDir(t, "", "")
	defer cleanup()
	res := Result{
		Callers: []string{"Bcftools", "FreeBayes"},
		Counts:  Counts{0b01: 2, 0b10: 1, 0b11: 1},
	}
	path := filepath.Join(tempDir, "counts.tsv")
	require.NoError(t, WriteCounts(ctx, path, res))
	data, err := ioutil.ReadFile(path)
	require.NoError(t, err)
	want := "PATTERN\tBcftools\tFreeBayes\tCOUNT\n" +
		"10\t1\t0\t2\n" +
		"01\t0\t1\t1\n" +
		"11\t1\t1\t1\n"
	assert.Equal(t, want, string(data))
}
