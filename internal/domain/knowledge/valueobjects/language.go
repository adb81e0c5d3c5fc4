package valueobjects

import (
	"strings"

	"golang.org/x/text/language"
)

// textSearchConfigs maps ISO 639-1 base languages to the PostgreSQL text search
// configurations shipped with a stock server. The same table lives in the
// helpdesk_ts_config SQL function used by the kb_documents trigger.
var textSearchConfigs = map[string]string{
	"ar": "arabic",
	"ca": "catalan",
	"da": "danish",
	"de": "german",
	"el": "greek",
	"en": "english",
	"es": "spanish",
	"eu": "basque",
	"fi": "finnish",
	"fr": "french",
	"ga": "irish",
	"hi": "hindi",
	"hu": "hungarian",
	"hy": "armenian",
	"id": "indonesian",
	"it": "italian",
	"lt": "lithuanian",
	"ne": "nepali",
	"nb": "norwegian",
	"nl": "dutch",
	"nn": "norwegian",
	"no": "norwegian",
	"pt": "portuguese",
	"ro": "romanian",
	"ru": "russian",
	"sr": "serbian",
	"sv": "swedish",
	"ta": "tamil",
	"tr": "turkish",
	"yi": "yiddish",
}

var knownConfigs = func() map[string]bool {
	m := map[string]bool{"simple": true}
	for _, cfg := range textSearchConfigs {
		m[cfg] = true
	}
	return m
}()

// IsTextSearchConfig reports whether name is a configuration the service will
// pass to PostgreSQL.
func IsTextSearchConfig(name string) bool {
	return knownConfigs[name]
}

// TextSearchConfig resolves a language hint to a text search configuration.
// The hint may be a configuration name ("english") or a BCP 47 tag ("en",
// "ru-RU"). ok is false when nothing matches.
func TextSearchConfig(hint string) (cfg string, ok bool) {
	hint = strings.ToLower(strings.TrimSpace(hint))
	if hint == "" {
		return "", false
	}
	if knownConfigs[hint] {
		return hint, true
	}

	tag, err := language.Parse(hint)
	if err != nil {
		return "", false
	}
	base, conf := tag.Base()
	if conf == language.No {
		return "", false
	}
	cfg, ok = textSearchConfigs[base.String()]
	return cfg, ok
}

// ResolveTextSearchConfig returns the configuration for hint, then for
// fallback, then "simple".
func ResolveTextSearchConfig(hint, fallback string) string {
	if cfg, ok := TextSearchConfig(hint); ok {
		return cfg
	}
	if cfg, ok := TextSearchConfig(fallback); ok {
		return cfg
	}
	return "simple"
}
