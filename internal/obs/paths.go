package obs

import "strings"

// CanonicalPath collapses identifier segments so metric labels stay bounded.
func CanonicalPath(path string) string {
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	if path == "" {
		return "/"
	}
	for _, prefix := range []string{
		"/product/",
		"/customer/",
		"/seller/",
		"/seller/product/",
		"/seller/products/",
	} {
		if rest, ok := strings.CutPrefix(path, prefix); ok && rest != "" && !strings.Contains(rest, "/") && isNumeric(rest) {
			return prefix + ":id"
		}
	}
	return path
}

func isNumeric(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
