package replace

import (
	"math"
	"strings"

	"github.com/acorn-io/strsub/pkg/errors"
)

// Func computes the replacement for the text found between two delimiters.
type Func func(string) (string, error)

// Count returns the number of non-overlapping occurrences of pattern in s.
// An empty pattern never matches.
func Count(s, pattern string) int {
	if pattern == "" {
		return 0
	}
	count := 0
	for {
		i := strings.Index(s, pattern)
		if i < 0 {
			return count
		}
		count++
		s = s[i+len(pattern):]
	}
}

// ReplaceAll returns a copy of s with every non-overlapping occurrence of
// pattern replaced by with. Matching resumes after the end of each match.
func ReplaceAll(s, pattern, with string) (string, error) {
	if pattern == "" {
		return "", errors.ErrEmptyPattern
	}

	count := Count(s, pattern)
	size, err := resultSize(len(s), count, len(with)-len(pattern))
	if err != nil {
		return "", err
	}

	result := strings.Builder{}
	result.Grow(size)
	for ; count > 0; count-- {
		before, after, _ := strings.Cut(s, pattern)
		result.WriteString(before)
		result.WriteString(with)
		s = after
	}
	result.WriteString(s)

	return result.String(), nil
}

func resultSize(srcLen, count, delta int) (int, error) {
	if delta > 0 && count > (math.MaxInt-srcLen)/delta {
		return 0, errors.ErrTooLarge
	}
	return srcLen + count*delta, nil
}

// Delimited replaces each section of s enclosed by startToken and endToken
// with the result of replacer applied to the enclosed text. A start token
// preceded by its own first character is written through literally, as is a
// start token with no matching end token.
func Delimited(s, startToken, endToken string, replacer Func) (string, error) {
	if startToken == "" || endToken == "" {
		return "", errors.ErrEmptyPattern
	}

	result := &strings.Builder{}
	for {
		before, tail, ok := strings.Cut(s, startToken)
		if !ok {
			result.WriteString(s)
			break
		}

		result.WriteString(before)

		expr, after, ok := strings.Cut(tail, endToken)
		if !ok || strings.HasSuffix(before, startToken[:1]) {
			result.WriteString(startToken)
			s = tail
			continue
		}

		replaced, err := replacer(expr)
		if err != nil {
			return "", err
		}

		result.WriteString(replaced)
		s = after
	}

	return result.String(), nil
}
