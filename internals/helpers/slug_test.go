package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSlug(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Sunny Days", "sunny-days"},
		{"  Sunny   Days  ", "sunny-days"},
		{"Ecole Montessori!", "ecole-montessori"},
		{"already-a-slug", "already-a-slug"},
		{"--trim--me--", "trim-me"},
		{"UPPER_case & symbols", "upper-case-symbols"},
		{"123 Numbers", "123-numbers"},
		{"", ""},
		{"!!!", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, NormalizeSlug(tc.in), "input %q", tc.in)
	}
}

func TestNormalizeSlugIsIdempotent(t *testing.T) {
	inputs := []string{"Sunny Days", "a--b__c", "  Mixed CASE 42 ", "ok"}
	for _, in := range inputs {
		once := NormalizeSlug(in)
		assert.Equal(t, once, NormalizeSlug(once), "input %q", in)
	}
}

func TestDefaultSubdomain(t *testing.T) {
	assert.Equal(t, "sunny-days.sites.edusitepro.co.za",
		DefaultSubdomain("sunny-days", "sites.edusitepro.co.za"))
}
