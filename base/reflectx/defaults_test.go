// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reflectx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type inner struct {
	Ratio float32 `default:"0.5"`
	Count uint8   `default:"7"`
}

type outer struct {
	Name    string        `default:"eve"`
	On      bool          `default:"true"`
	Depth   int           `default:"-3"`
	Wait    time.Duration `default:"1.5s"`
	Plain   int
	Inner   inner
	private int `default:"1"`
}

func TestSetFromDefaultTags(t *testing.T) {
	o := &outer{Plain: 9}
	assert.NoError(t, SetFromDefaultTags(o))
	assert.Equal(t, "eve", o.Name)
	assert.True(t, o.On)
	assert.Equal(t, -3, o.Depth)
	assert.Equal(t, 1500*time.Millisecond, o.Wait)
	assert.Equal(t, 9, o.Plain)
	assert.Equal(t, float32(0.5), o.Inner.Ratio)
	assert.Equal(t, uint8(7), o.Inner.Count)
	assert.Equal(t, 0, o.private)
}

func TestSetFromDefaultTagsErrors(t *testing.T) {
	assert.Error(t, SetFromDefaultTags(outer{}))
	var np *outer
	assert.Error(t, SetFromDefaultTags(np))

	type bad struct {
		N int     `default:"many"`
		S []int   `default:"1"`
		F float64 `default:"2"`
	}
	b := &bad{}
	err := SetFromDefaultTags(b)
	assert.ErrorContains(t, err, "bad.N")
	assert.ErrorContains(t, err, "bad.S")
	assert.Equal(t, 2.0, b.F)
}
