package engine

import (
	"regexp"
	"strings"
)

// Language labels returned by DetectLanguage
const (
	LangJavaScript = "JavaScript/TypeScript"
	LangPython     = "Python"
	LangJava       = "Java"
	LangUnknown    = "Unknown"
)

// DetectLanguage guesses the language of a code snippet with ordered
// substring checks, first match wins. It is a deliberately naive
// heuristic: "function" as a Java identifier substring will misclassify,
// and that is accepted.
func DetectLanguage(code string) string {
	switch {
	case strings.Contains(code, "function") || strings.Contains(code, "const ") ||
		strings.Contains(code, "let "):
		return LangJavaScript
	case strings.Contains(code, "def ") || strings.Contains(code, "import "):
		return LangPython
	case strings.Contains(code, "public class") || strings.Contains(code, "private "):
		return LangJava
	default:
		return LangUnknown
	}
}

// functionPattern matches function-like declarations across the three
// language styles the detector knows about: named JS functions, const
// arrow-function assignments, and Python defs. Case sensitive.
var functionPattern = regexp.MustCompile(`function\s+\w+|const\s+\w+\s*=\s*\(|def\s+\w+`)

// CountFunctions returns the number of non-overlapping function-like
// declarations in the code, scanning the whole text once.
func CountFunctions(code string) int {
	return len(functionPattern.FindAllString(code, -1))
}
