// internal/middleware/i18n.go
package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/javajoker/shop-admin/internal/i18n"
)

// Tags that name a loaded catalog under another spelling.
var langAliases = map[string]string{
	"zh_Hant": "zh_TW",
}

// I18nMiddleware stores the caller's preferred catalog under "lang".
func I18nMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("lang", preferredLang(c.GetHeader("Accept-Language")))
		c.Next()
	}
}

// preferredLang maps the first entry of an Accept-Language header, e.g.
// "zh-TW,zh;q=0.9,en;q=0.8", onto a loaded catalog. A regional tag falls
// back to its base language ("en-US" to "en").
func preferredLang(header string) string {
	first := strings.TrimSpace(strings.Split(strings.Split(header, ",")[0], ";")[0])
	tag := strings.ReplaceAll(first, "-", "_")
	if alias, ok := langAliases[tag]; ok {
		tag = alias
	}

	supported := i18n.GetSupportedLanguages()
	candidates := []string{tag}
	if base, _, found := strings.Cut(tag, "_"); found {
		candidates = append(candidates, base)
	}

	for _, candidate := range candidates {
		for _, lang := range supported {
			if strings.EqualFold(candidate, lang) {
				return lang
			}
		}
	}
	return i18n.DefaultLang
}
