package replace

import (
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/acorn-io/strsub/pkg/errors"
	"github.com/hexops/autogold/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplaceAll(t *testing.T) {
	tests := []struct {
		s, pattern, with string
		expect           autogold.Value
	}{
		{s: "hello world", pattern: "world", with: "there", expect: autogold.Expect("hello there")},
		{s: "aaa", pattern: "a", with: "bb", expect: autogold.Expect("bbbbbb")},
		{s: "aaaa", pattern: "aa", with: "b", expect: autogold.Expect("bb")},
		{s: "aaa", pattern: "aa", with: "X", expect: autogold.Expect("Xa")},
		{s: "a-b-c", pattern: "-", with: "", expect: autogold.Expect("abc")},
		{s: "no match", pattern: "zzz", with: "y", expect: autogold.Expect("no match")},
		{s: "", pattern: "x", with: "y", expect: autogold.Expect("")},
		{s: "{{v}}", pattern: "{{v}}", with: "value", expect: autogold.Expect("value")},
		{s: "ab", pattern: "ab", with: "abab", expect: autogold.Expect("abab")},
		{s: "日本語の本", pattern: "本", with: "book", expect: autogold.Expect("日book語のbook")},
	}

	for i, test := range tests {
		t.Run(fmt.Sprintf("%s%d", t.Name(), i), func(t *testing.T) {
			result, err := ReplaceAll(test.s, test.pattern, test.with)
			require.NoError(t, err)
			test.expect.Equal(t, result)
		})
	}
}

func TestReplaceAllEmptyPattern(t *testing.T) {
	for _, s := range []string{"", "x", "hello"} {
		result, err := ReplaceAll(s, "", "r")
		assert.ErrorIs(t, err, errors.ErrEmptyPattern)
		assert.ErrorIs(t, err, errors.ErrInvalidArgument)
		assert.Equal(t, "", result)
	}
}

func TestReplaceAllLength(t *testing.T) {
	tests := []struct {
		s, pattern, with string
	}{
		{"the cat sat on the mat", "at", "og"},
		{"the cat sat on the mat", "at", ""},
		{"the cat sat on the mat", "the", "a very long replacement"},
		{"xxxxxxx", "xx", "y"},
		{"abc", "abcd", "q"},
	}

	for _, test := range tests {
		k := Count(test.s, test.pattern)
		result, err := ReplaceAll(test.s, test.pattern, test.with)
		require.NoError(t, err)
		assert.Len(t, result, len(test.s)+k*(len(test.with)-len(test.pattern)))
	}
}

func TestReplaceAllIdempotent(t *testing.T) {
	once, err := ReplaceAll("a.b.c.d", ".", "/")
	require.NoError(t, err)
	twice, err := ReplaceAll(once, ".", "/")
	require.NoError(t, err)
	assert.Equal(t, once, twice)
}

func TestReplaceAllRemoves(t *testing.T) {
	result, err := ReplaceAll("--a--b--", "--", "")
	require.NoError(t, err)
	assert.Equal(t, "ab", result)
	assert.False(t, strings.Contains(result, "--"))
}

func TestCount(t *testing.T) {
	assert.Equal(t, 3, Count("aaa", "a"))
	assert.Equal(t, 1, Count("aaa", "aa"))
	assert.Equal(t, 2, Count("abab", "ab"))
	assert.Equal(t, 0, Count("abc", "d"))
	assert.Equal(t, 0, Count("abc", ""))
}

func TestResultSizeOverflow(t *testing.T) {
	_, err := resultSize(10, math.MaxInt/2, 4)
	assert.ErrorIs(t, err, errors.ErrTooLarge)

	size, err := resultSize(10, 3, -2)
	require.NoError(t, err)
	assert.Equal(t, 4, size)
}

func TestDelimited(t *testing.T) {
	values := map[string]string{
		"name": "world",
		"x":    "1",
	}
	lookup := func(key string) (string, error) {
		v, ok := values[key]
		if !ok {
			return "", fmt.Errorf("missing %s", key)
		}
		return v, nil
	}

	tests := []struct {
		input  string
		expect autogold.Value
	}{
		{input: "hello {{name}}", expect: autogold.Expect("hello world")},
		{input: "{{x}}{{x}}", expect: autogold.Expect("11")},
		{input: "no tokens", expect: autogold.Expect("no tokens")},
		{input: "open {{name", expect: autogold.Expect("open {{name")},
	}

	for i, test := range tests {
		t.Run(fmt.Sprintf("%s%d", t.Name(), i), func(t *testing.T) {
			result, err := Delimited(test.input, "{{", "}}", lookup)
			require.NoError(t, err)
			test.expect.Equal(t, result)
		})
	}

	_, err := Delimited("{{nope}}", "{{", "}}", lookup)
	autogold.Expect("missing nope").Equal(t, err.Error())

	result, err := Delimited("$${x} ${x}", "${", "}", lookup)
	require.NoError(t, err)
	assert.Equal(t, "$${x} 1", result)
}
