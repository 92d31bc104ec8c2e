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

/*
bio-vcf-venn renders a Venn diagram from a variant-caller comparison TSV.

The input is a tab-separated table with one row per variant and one 0/1
membership column per caller, as produced by the VCF comparison step of the
pipeline.  Recognized caller columns are Bcftools, FreeBayes, GATK and their
lowercase forms; the first two or three found (in that fixed order) become
the diagram's sets.  Rows called by no recognized tool are excluded from
every region.

The output format follows the file extension: png, pdf, svg, jpg, tiff, and
eps are supported.  A textual summary of the unique and overlap counts is
printed to standard output.

Sample usage:

	bio-vcf-venn -i summary.tsv -o venn.png
	bio-vcf-venn -i summary.tsv -o venn.pdf \
	    -color1 "#456f01" -color2 "#00688B" -color3 "#ffac12" \
	    -outline dashed -fontsize 14 -label-style bold
*/
package main
