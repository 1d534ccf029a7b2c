// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errTest = New("test error")

func TestLog(t *testing.T) {
	assert.Nil(t, Log(nil))
	assert.Equal(t, errTest, Log(errTest))
	assert.Equal(t, 3, Log1(3, errTest))
	assert.Equal(t, 3, Ignore1(3, errTest))
}

func TestMust(t *testing.T) {
	assert.NotPanics(t, func() { Must(nil) })
	assert.Panics(t, func() { Must(errTest) })
	assert.Equal(t, "a", Must1("a", nil))
	assert.Panics(t, func() { Must1("a", errTest) })
}

func TestWrapped(t *testing.T) {
	err := fmt.Errorf("outer: %w", errTest)
	assert.True(t, Is(err, errTest))
	assert.Equal(t, errTest, Unwrap(err))
	assert.True(t, Is(Join(nil, err), errTest))
}

func TestCallerInfo(t *testing.T) {
	info := func() string { return CallerInfo() }()
	assert.True(t, strings.Contains(info, "errors_test.go"), info)
}
