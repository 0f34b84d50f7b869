package http

import "strings"

// pathParts does crude path param extraction with net/http's ServeMux:
// /prefix/{id} or /prefix/{id}/{action}. ok is false for anything deeper or
// for an empty id.
func pathParts(path, prefix string) (id, action string, ok bool) {
	if !strings.HasPrefix(path, prefix) {
		return "", "", false
	}
	rest := strings.TrimPrefix(path, prefix)
	parts := strings.Split(rest, "/")
	switch len(parts) {
	case 1:
		if parts[0] == "" {
			return "", "", false
		}
		return parts[0], "", true
	case 2:
		if parts[0] == "" || parts[1] == "" {
			return "", "", false
		}
		return parts[0], parts[1], true
	}
	return "", "", false
}
