package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		name string
		lang string
		want language.Tag
	}{
		{"exact english", "en", language.English},
		{"exact chinese", "zh", language.Chinese},
		{"regional english", "en-US", language.English},
		{"regional chinese", "zh-CN", language.Chinese},
		{"traditional chinese", "zh-TW", language.Chinese},
		{"accept-language list", "fr, zh;q=0.8, en;q=0.5", language.Chinese},
		{"unsupported falls back", "fr", language.English},
		{"garbage falls back", ";;;", language.English},
		{"empty falls back", "", language.English},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Match(tt.lang))
		})
	}
}

func TestNoPrizeStrings(t *testing.T) {
	assert.Equal(t, "Sorry", NoPrizeName("en"))
	assert.Equal(t, "All prizes have been drawn! Please try again later.", NoPrizeMessage("en"))
	assert.Equal(t, "很遗憾", NoPrizeName("zh-CN"))
	assert.Equal(t, "奖品已全部抽完,请下次再来!", NoPrizeMessage("zh"))
	assert.Equal(t, NoPrizeMessage("en"), NoPrizeMessage("de"))
}
