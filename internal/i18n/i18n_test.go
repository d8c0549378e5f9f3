package i18n_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"

	"github.com/ruimartins/billow/internal/i18n"
)

func TestNewMatchesSupportedLanguages(t *testing.T) {
	tests := []struct {
		lang string
		want language.Tag
	}{
		{"", language.English},
		{"en", language.English},
		{"en-GB", language.English},
		{"pt", language.Portuguese},
		{"pt-PT", language.Portuguese},
		{"pt-BR,en;q=0.8", language.Portuguese},
		{"fr", language.English},
		{"not a language", language.English},
	}

	for _, tc := range tests {
		t.Run(tc.lang, func(t *testing.T) {
			assert.Equal(t, tc.want, i18n.New(tc.lang).Language())
		})
	}
}

func TestTranslatorResolvesKeys(t *testing.T) {
	en := i18n.New("en")
	pt := i18n.New("pt")

	assert.Equal(t, "Draft", en.T("status.draft"))
	assert.Equal(t, "Rascunho", pt.T("status.draft"))
}

func TestTranslatorAppliesArguments(t *testing.T) {
	en := i18n.New("en")

	assert.Equal(t, "Create a payment of 50.00 or more.", en.T("text.create_a_payment_of_x_or_more", "50.00"))
}

func TestTranslatorFallsBackToKey(t *testing.T) {
	en := i18n.New("en")

	assert.Equal(t, "text.no_such_key", en.T("text.no_such_key"))
}
