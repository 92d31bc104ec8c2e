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
package main

import (
	"testing"

	"github.com/grailbio/testutil/expect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFigSize(t *testing.T) {
	w, h, err := parseFigSize("10,8")
	require.NoError(t, err)
	expect.EQ(t, w, 10.0)
	expect.EQ(t, h, 8.0)

	w, h, err = parseFigSize(" 6.5 , 4.25 ")
	require.NoError(t, err)
	expect.EQ(t, w, 6.5)
	expect.EQ(t, h, 4.25)

	for _, s := range []string{"", "10", "10,8,6", "ten,eight"} {
		_, _, err := parseFigSize(s)
		assert.Errorf(t, err, "figsize %q", s)
	}
}
