package slug_test

import (
	"testing"

	"homestore/internal/slug"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"vietnamese diacritics", "Đồ Dùng Nhà Bếp", "do-dung-nha-bep"},
		{"plain ascii", "Ceramic Vase", "ceramic-vase"},
		{"punctuation collapsed", "Pots & Pans (Set of 3)", "pots-pans-set-of-3"},
		{"leading and trailing separators", "  --Hello World--  ", "hello-world"},
		{"accented latin", "Café Décor", "cafe-decor"},
		{"already a slug", "noi-that-phong-khach", "noi-that-phong-khach"},
		{"only punctuation", "!!!", ""},
		{"empty", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, slug.Make(tc.in))
		})
	}
}

func TestMakeIdempotent(t *testing.T) {
	inputs := []string{"Đồ Dùng Nhà Bếp", "Café Décor", "Pots & Pans (Set of 3)"}
	for _, in := range inputs {
		once := slug.Make(in)
		assert.Equal(t, once, slug.Make(once), "Make should be idempotent for %q", in)
	}
}
