package tsgen

import "github.com/reoring/tsdecl/internal/naming"

// Identifier turns an arbitrary key into a PascalCase identifier:
// "user-profile" -> "UserProfile", "HTTPServer" -> "HTTPServer",
// "9" -> "_9".
func Identifier(s string) string { return naming.Identifier(s) }
