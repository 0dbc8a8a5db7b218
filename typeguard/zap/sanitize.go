package zap

import "strings"

// controlCharReplacer escapes control characters that can be used for log injection (CWE-117).
// The JSON encoder already escapes these inside string values, so this mainly protects
// console encoders, where assertion diagnostics containing user data would otherwise
// forge extra log lines.
var controlCharReplacer = strings.NewReplacer(
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

// sanitizeString escapes control characters in a single string value.
func sanitizeString(s string) string {
	return controlCharReplacer.Replace(s)
}
