package site

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSite_Themes(t *testing.T) {
	s := Site{
		TemplateDir: "/var/www/wp-content/themes/twenty",
		TemplateURL: "https://example.com/wp-content/themes/twenty/",
	}

	assert.Equal(t, "/var/www/wp-content/themes", s.ThemesDir())
	assert.Equal(t, "https://example.com/wp-content/themes", s.ThemesURL())
	assert.Equal(t, "", Site{}.ThemesDir())
}

func TestSite_Validate(t *testing.T) {
	assert.ErrorIs(t, Site{}.Validate(), ErrMissingAbsPath)
	assert.NoError(t, Site{AbsPath: "/var/www/"}.Validate())
}
