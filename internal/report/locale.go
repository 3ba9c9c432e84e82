package report

import (
	"strings"
	"time"

	"github.com/goodsign/monday"
)

// resolveLocale maps a locale string such as "zh-CN" or "de" to a monday
// locale, falling back to US English.
func resolveLocale(locale string) monday.Locale {
	locale = strings.ToLower(strings.ReplaceAll(locale, "-", "_"))

	localeMap := map[string]monday.Locale{
		"en":    monday.LocaleEnUS,
		"en_us": monday.LocaleEnUS,
		"en_gb": monday.LocaleEnGB,
		"de":    monday.LocaleDeDE,
		"de_de": monday.LocaleDeDE,
		"fr":    monday.LocaleFrFR,
		"fr_fr": monday.LocaleFrFR,
		"es":    monday.LocaleEsES,
		"es_es": monday.LocaleEsES,
		"ja":    monday.LocaleJaJP,
		"ja_jp": monday.LocaleJaJP,
		"zh":    monday.LocaleZhCN,
		"zh_cn": monday.LocaleZhCN,
		"zh_tw": monday.LocaleZhTW,
		"ko":    monday.LocaleKoKR,
		"ko_kr": monday.LocaleKoKR,
	}

	if loc, ok := localeMap[locale]; ok {
		return loc
	}
	if lang, _, found := strings.Cut(locale, "_"); found {
		if loc, ok := localeMap[lang]; ok {
			return loc
		}
	}
	return monday.LocaleEnUS
}

// dateLayout returns the long date layout for a locale.
func dateLayout(locale monday.Locale) string {
	switch locale {
	case monday.LocaleZhCN, monday.LocaleZhTW, monday.LocaleJaJP:
		return "2006年1月2日 Monday"
	case monday.LocaleKoKR:
		return "2006년 1월 2일 Monday"
	case monday.LocaleEnUS:
		return "Monday, January 2, 2006"
	default:
		return "Monday 2 January 2006"
	}
}

func formatDate(t time.Time, locale monday.Locale) string {
	return monday.Format(t, dateLayout(locale), locale)
}
