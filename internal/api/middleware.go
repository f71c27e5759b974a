package api

import "github.com/gofiber/fiber/v2"

const (
	languageCookieName = "nestling_lang"
	contextLanguageKey = "current_language"
)

// LanguageMiddleware resolves the response language from the lang query
// parameter, the language cookie, or the Accept-Language header, in that
// order. The engine itself only emits semantic codes; localization is a
// presentation fallback.
func (handler *Handler) LanguageMiddleware(c *fiber.Ctx) error {
	language := ""
	if raw := c.Query("lang"); raw != "" {
		language = handler.i18n.NormalizeLanguage(raw)
		c.Cookie(&fiber.Cookie{
			Name:     languageCookieName,
			Value:    language,
			Path:     "/",
			SameSite: "Lax",
		})
	} else if raw := c.Cookies(languageCookieName); raw != "" {
		language = handler.i18n.NormalizeLanguage(raw)
	} else {
		language = handler.i18n.DetectFromAcceptLanguage(c.Get("Accept-Language"))
	}

	c.Locals(contextLanguageKey, language)
	return c.Next()
}

func currentLanguage(c *fiber.Ctx, fallback string) string {
	if language, ok := c.Locals(contextLanguageKey).(string); ok && language != "" {
		return language
	}
	return fallback
}
