package curation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFileName(t *testing.T) {
	tests := []struct {
		name string
		file string
		want IconKey
		ok   bool
	}{
		{"Simple", "ic_fluent_add_24_regular.svg", IconKey{Icon: "add", Style: "regular", Size: 24}, true},
		{"Underscored Name", "ic_fluent_arrow_circle_down_20_filled.svg", IconKey{Icon: "arrow_circle_down", Style: "filled", Size: 20}, true},
		{"Digits In Name", "ic_fluent_arrow_12_down_16_light.svg", IconKey{Icon: "arrow_12_down", Style: "light", Size: 16}, true},
		{"Leading Zero Size", "ic_fluent_add_024_regular.svg", IconKey{Icon: "add", Style: "regular", Size: 24}, true},
		{"Hyphenated", "weird-icon.svg", IconKey{}, false},
		{"Uppercase Style", "ic_fluent_add_24_Regular.svg", IconKey{}, false},
		{"Missing Size", "ic_fluent_add_regular.svg", IconKey{}, false},
		{"Wrong Extension", "ic_fluent_add_24_regular.png", IconKey{}, false},
		{"Trailing Junk", "ic_fluent_add_24_regular.svg.bak", IconKey{}, false},
		{"Oversized Number", "ic_fluent_add_99999999999999999999_regular.svg", IconKey{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseFileName(tt.file)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIconKey_RoundTrip(t *testing.T) {
	for _, file := range []string{
		"ic_fluent_add_24_regular.svg",
		"ic_fluent_arrow_circle_down_20_filled.svg",
		"ic_fluent_arrow_12_down_16_light.svg",
	} {
		key, ok := ParseFileName(file)
		assert.True(t, ok)
		assert.Equal(t, file, key.FileName())

		again, ok := ParseFileName(key.FileName())
		assert.True(t, ok)
		assert.Equal(t, key, again)
	}
}

func TestIconKey_OutputName(t *testing.T) {
	assert.Equal(t, "arrow-circle-down.svg", IconKey{Icon: "arrow_circle_down"}.OutputName())
	assert.Equal(t, "add.svg", OutputName("add"))
}

func TestIconKey_Less(t *testing.T) {
	a := IconKey{Icon: "add", Style: "filled", Size: 24}
	b := IconKey{Icon: "add", Style: "regular", Size: 20}
	c := IconKey{Icon: "add", Style: "regular", Size: 24}
	d := IconKey{Icon: "beta", Style: "filled", Size: 16}

	assert.True(t, a.Less(b))
	assert.True(t, b.Less(c))
	assert.True(t, c.Less(d))
	assert.False(t, c.Less(c))
}
