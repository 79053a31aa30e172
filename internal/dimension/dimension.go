// internal/dimension/dimension.go
package dimension

// Normalize canonicalizes a user-entered width or height token into a
// CSS length. A token made purely of decimal digits gets a "px" suffix;
// anything else ("100%", "50vh", keywords) passes through untouched.
// Empty input is also passed through: defaulting is the caller's
// decision, never this function's.
func Normalize(token string) string {
	if token == "" {
		return token
	}
	for _, r := range token {
		if r < '0' || r > '9' {
			return token
		}
	}
	return token + "px"
}
