package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat_ZeroOptionsUnchanged(t *testing.T) {
	text := "a）Total Length：66.2cm～68.0cm"

	assert.Equal(t, text, Format(text, FormatOptions{}))
}

func TestFormat_ASCIIPunctuation(t *testing.T) {
	opts := FormatOptions{ASCIIPunctuation: true}

	tests := []struct {
		in   string
		want string
	}{
		{"a）Total Length：66.2cm", "a)Total Length:66.2cm"},
		{"66.2cm～68.0cm", "66.2cm to 68.0cm"},
		{"Cotton、Polyester。", "Cotton,Polyester."},
		{"（100％）", "(100%)"},
		{"already plain", "already plain"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Format(tt.in, opts))
	}
}

func TestFormat_SpaceAfterPunct(t *testing.T) {
	opts := FormatOptions{SpaceAfterPunct: true}

	assert.Equal(t, "a) Total Length: 66.2cm", Format("a)Total Length:66.2cm", opts))
	assert.Equal(t, "Cotton, Polyester", Format("Cotton,Polyester", opts))
	// already spaced stays single spaced
	assert.Equal(t, "a) done", Format("a) done", opts))
	// no space across a line break
	assert.Equal(t, "a)\nb", Format("a)\nb", opts))
}

func TestFormat_SpaceBeforeUnits(t *testing.T) {
	opts := FormatOptions{SpaceBeforeUnits: true}

	assert.Equal(t, "Cotton 100%", Format("Cotton100%", opts))
	assert.Equal(t, "Polyester 80% Cotton 20%", Format("Polyester80% Cotton20%", opts))
	assert.Equal(t, "66.2cm", Format("66.2cm", opts))
}

func TestFormat_Combined(t *testing.T) {
	opts := FormatOptions{ASCIIPunctuation: true, SpaceAfterPunct: true, SpaceBeforeUnits: true}

	got := Format("a）Total Length：66.2cm、Cotton100%", opts)
	assert.Equal(t, "a) Total Length: 66.2cm, Cotton 100%", got)
}
