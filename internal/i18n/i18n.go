package i18n

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"
)

// ContextKeyLocale is the key for the resolved locale in gin context
const ContextKeyLocale = "locale"

var supported = []language.Tag{
	language.English,
	language.German,
}

var matcher = language.NewMatcher(supported)

// Resolve picks the best supported locale for a request. The lang query
// parameter wins over the Accept-Language header; both fall back to the
// default locale when nothing matches.
func Resolve(queryLang, acceptLanguage, defaultLocale string) string {
	prefs := []string{}
	if queryLang != "" {
		prefs = append(prefs, queryLang)
	}
	if acceptLanguage != "" {
		prefs = append(prefs, acceptLanguage)
	}
	if len(prefs) == 0 {
		return normalize(defaultLocale)
	}

	tag, _ := language.MatchStrings(matcher, prefs...)
	base, conf := tag.Base()
	if conf == language.No {
		return normalize(defaultLocale)
	}
	return base.String()
}

func normalize(locale string) string {
	if _, ok := catalog[locale]; ok {
		return locale
	}
	return "en"
}

// T translates a message key into the given locale. Unknown keys are
// returned verbatim so a missing translation is visible, not a crash.
func T(locale, key string, args ...interface{}) string {
	table, ok := catalog[locale]
	if !ok {
		table = catalog["en"]
	}
	msg, ok := table[key]
	if !ok {
		if msg, ok = catalog["en"][key]; !ok {
			msg = key
		}
	}
	if len(args) > 0 {
		return fmt.Sprintf(msg, args...)
	}
	return msg
}

// Tr translates a message key using the locale resolved by the locale
// middleware for this request.
func Tr(c *gin.Context, key string, args ...interface{}) string {
	locale := c.GetString(ContextKeyLocale)
	if locale == "" {
		locale = "en"
	}
	return T(locale, key, args...)
}
