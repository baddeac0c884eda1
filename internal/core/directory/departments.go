package directory

// Codes lists the known department codes in their canonical display order
var Codes = []string{
	"android", "ios", "design", "management", "qa", "back_office",
	"frontend", "hr", "pr", "backend", "support", "analytics",
}

var labelByCode = map[string]string{
	"android":     "Android",
	"ios":         "iOS",
	"design":      "Дизайн",
	"management":  "Менеджмент",
	"qa":          "QA",
	"back_office": "Бэк-офис",
	"frontend":    "Frontend",
	"hr":          "HR",
	"pr":          "PR",
	"backend":     "Backend",
	"support":     "Техподдержка",
	"analytics":   "Аналитика",
}

var codeByLabel = func() map[string]string {
	m := make(map[string]string, len(labelByCode))
	for code, label := range labelByCode {
		m[label] = code
	}
	return m
}()

// Label maps a department code to its display label
// unknown codes map to the empty string rather than an error
func Label(code string) string { return labelByCode[code] }

// CodeForLabel is the reverse lookup; unknown labels map to the empty string
func CodeForLabel(label string) string { return codeByLabel[label] }

// KnownCode reports whether code is one of the fixed department codes
func KnownCode(code string) bool {
	_, ok := labelByCode[code]
	return ok
}
