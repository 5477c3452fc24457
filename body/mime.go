package body

import "mime"

// ParseCharset extracts the charset parameter from a MIME type string such
// as "application/json; charset=utf-8". It returns fallback when the
// string carries no charset parameter or cannot be parsed at all.
func ParseCharset(mimeType, fallback string) string {
	_, params, err := mime.ParseMediaType(mimeType)
	if err != nil {
		return fallback
	}
	if cs := params["charset"]; cs != "" {
		return cs
	}
	return fallback
}
