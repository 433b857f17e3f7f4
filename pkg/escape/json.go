// Package escape prepares text for splicing into the body of a JSON string value.
package escape

// JSONString escapes backslash, double quote and the tab, carriage return,
// form feed, backspace and newline control characters. Every other byte is
// copied unchanged, so multi-byte UTF-8 sequences survive intact.
func JSONString(s string) string {
	if !needsEscape(s) {
		return s
	}
	return string(AppendJSONString(make([]byte, 0, 2*len(s)), s))
}

// AppendJSONString appends the escaped form of s to dst.
func AppendJSONString(dst []byte, s string) []byte {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if esc, ok := escapes[c]; ok {
			dst = append(dst, '\\', esc)
			continue
		}
		dst = append(dst, c)
	}
	return dst
}

var escapes = map[byte]byte{
	'\\': '\\',
	'"':  '"',
	'\t': 't',
	'\r': 'r',
	'\f': 'f',
	'\b': 'b',
	'\n': 'n',
}

func needsEscape(s string) bool {
	for i := 0; i < len(s); i++ {
		if _, ok := escapes[s[i]]; ok {
			return true
		}
	}
	return false
}
