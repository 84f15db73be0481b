package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Üyelik Başvurusu Hakkında Önemli Duyuru": "uyelik-basvurusu-hakkinda-onemli-duyuru",
		"  --Çağrı: 2024 Genel Kurul!!  ":          "cagri-2024-genel-kurul",
		"İŞ GÜVENLİĞİ":                             "is-guvenligi",
		"already-a-slug":                           "already-a-slug",
		"":                                         "",
		"!!!":                                      "",
		"Café résumé":                              "caf-r-sum",
	}
	for in, want := range cases {
		assert.Equal(t, want, Slugify(in), "input %q", in)
	}
}

func TestSlugify_DeterministicAndIdempotent(t *testing.T) {
	shape := regexp.MustCompile(`^([a-z0-9]+(-[a-z0-9]+)*)?$`)
	titles := []string{
		"Oda Başkanımız Sayın Vali'yi Ziyaret Etti",
		"Ödeme  Kalemleri -- 2025",
		"ğĞüÜşŞıİöÖçÇ",
		"Tab\tand\nnewline",
		"Emoji 🎉 party",
	}
	for _, title := range titles {
		first := Slugify(title)
		assert.Equal(t, first, Slugify(title))
		assert.Equal(t, first, Slugify(first))
		assert.Regexp(t, shape, first)
	}
}

func TestSlugify_Collisions(t *testing.T) {
	assert.Equal(t, Slugify("Genel Kurul"), Slugify("genel-kurul!"))
}
