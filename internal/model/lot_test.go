package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeLotNumber(t *testing.T) {
	cases := map[string]string{
		"  lot-7  ": "LOT-7",
		"lot-7":     "LOT-7",
		"LOT-7":     "LOT-7",
		"  ":        "",
		"":          "",
	}
	for in, want := range cases {
		assert.Equal(t, want, NormalizeLotNumber(in))
	}
}
