package xmlfmt

import "strings"

var (
	escaper   = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	unescaper = strings.NewReplacer("&amp;", "&", "&lt;", "<", "&gt;", ">")
)

// Escape replaces '<', '>' and '&' with entities. Quotes are left alone.
func Escape(s string) string {
	return escaper.Replace(s)
}
