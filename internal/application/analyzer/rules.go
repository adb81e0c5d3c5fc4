package analyzer

import (
	"regexp"
	"strings"
)

const (
	CategoryBilling = "billing"
	CategoryLogin   = "login"
	CategoryBug     = "bug"
	CategoryGeneral = "general"

	NextStepRequestInfo = "request_info"
	NextStepReply       = "reply"

	ModelVersionKey   = "mvp"
	ModelVersionValue = "heuristics-v1"

	maxErrorCodes   = 10
	maxVersions     = 5
	maxSummaryRunes = 220

	baseConfidence     = 55
	categoryConfidence = 70
)

type categoryRule struct {
	category string
	markers  []string
}

// categoryRules are checked in order; the first rule with a matching marker wins.
var categoryRules = []categoryRule{
	{CategoryBilling, []string{"оплат", "платеж", "billing"}},
	{CategoryLogin, []string{"не могу войти", "login", "парол"}},
	{CategoryBug, []string{"ошибк", "error", "exception"}},
}

var (
	urgencyMarkers = []string{"срочно", "urgent", "не работает", "down", "прод", "production"}
	lowMarkers     = []string{"вопрос", "как сделать", "how to"}
)

var (
	errorCodeRe = regexp.MustCompile(`\b(?:0x[0-9a-fA-F]+|E\d{3,6}|\d{3,5})\b`)
	versionRe   = regexp.MustCompile(`\bv?\d+\.\d+(?:\.\d+)?\b`)
)

const (
	promptErrorText = "Пожалуйста, пришлите текст ошибки/код ошибки (если есть)."
	promptOSVersion = "Укажите, пожалуйста, ОС и версию приложения."
	promptLogs      = "Если возможно, приложите скриншот или логи — поможет ускорить решение."
)

func containsAny(s string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}

func categorize(low string) string {
	for _, rule := range categoryRules {
		if containsAny(low, rule.markers) {
			return rule.category
		}
	}
	return CategoryGeneral
}

func detectOS(low string) string {
	switch {
	case strings.Contains(low, "windows"):
		return "Windows"
	case strings.Contains(low, "mac"), strings.Contains(low, "os x"):
		return "macOS"
	case strings.Contains(low, "linux"):
		return "Linux"
	default:
		return ""
	}
}

func findCapped(re *regexp.Regexp, s string, max int) []string {
	found := re.FindAllString(s, max)
	if found == nil {
		return []string{}
	}
	return found
}

func needsEnvironment(category string) bool {
	return category == CategoryBug || category == CategoryLogin
}

func isKnownCategory(category string) bool {
	return category == CategoryBilling || category == CategoryLogin || category == CategoryBug
}
