// Package i18n localizes the small set of player-facing strings. Operator
// and admin surfaces stay English only.
package i18n

import (
	"golang.org/x/text/language"
)

var supported = []language.Tag{
	language.English, // default
	language.Chinese,
}

var matcher = language.NewMatcher(supported)

type messages struct {
	noPrizeName    string
	noPrizeMessage string
}

var catalog = map[language.Tag]messages{
	language.English: {
		noPrizeName:    "Sorry",
		noPrizeMessage: "All prizes have been drawn! Please try again later.",
	},
	language.Chinese: {
		noPrizeName:    "很遗憾",
		noPrizeMessage: "奖品已全部抽完,请下次再来!",
	},
}

// Match resolves a BCP 47 language string (including weighted Accept-Language
// lists) to the closest supported tag, falling back to English.
func Match(lang string) language.Tag {
	tags, _, err := language.ParseAcceptLanguage(lang)
	if err != nil || len(tags) == 0 {
		return language.English
	}
	_, idx, _ := matcher.Match(tags...)
	return supported[idx]
}

// NoPrizeName returns the localized display name of the exhaustion outcome
func NoPrizeName(lang string) string {
	return catalogFor(lang).noPrizeName
}

// NoPrizeMessage returns the localized message shown when every prize is gone
func NoPrizeMessage(lang string) string {
	return catalogFor(lang).noPrizeMessage
}

func catalogFor(lang string) messages {
	if m, ok := catalog[Match(lang)]; ok {
		return m
	}
	return catalog[language.English]
}
