package cmds

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/acorn-io/cmd"
	"github.com/acorn-io/strsub"
	"github.com/acorn-io/strsub/pkg/replace"
	"github.com/agnivade/levenshtein"
	"github.com/spf13/cobra"
)

type Replace struct {
	strsub *Strsub

	Escape       bool `usage:"JSON-escape the replacement before substituting it"`
	ValidateJSON bool `name:"validate-json" usage:"Fail if the result is not valid JSON"`
	Suggest      bool `usage:"When nothing matches, report the closest word in the input"`
}

func NewReplace(s *Strsub) *cobra.Command {
	return cmd.Command(&Replace{strsub: s}, cobra.Command{
		Use:           "replace [flags] PATTERN REPLACEMENT [FILE]",
		Short:         "Replace every occurrence of PATTERN in FILE or stdin",
		Args:          cobra.RangeArgs(2, 3),
		SilenceErrors: true,
	})
}

func (r *Replace) Run(cmd *cobra.Command, args []string) error {
	r.strsub.setup()

	input, err := readInput(cmd, args, 2)
	if err != nil {
		return err
	}

	pattern, with := args[0], args[1]
	slot := replace.NewSlot(input)
	if r.Escape {
		_, err = slot.ReplaceAllEscaped(pattern, with)
	} else {
		_, err = slot.ReplaceAll(pattern, with)
	}
	if err != nil {
		return err
	}

	strsub.Debugf("replaced %d occurrences of %q", replace.Count(input, pattern), pattern)
	if r.Suggest && replace.Count(input, pattern) == 0 {
		if word := closestWord(input, pattern); word != "" {
			fmt.Fprintf(cmd.ErrOrStderr(), "no match for %q, did you mean %q?\n", pattern, word)
		}
	}

	return r.strsub.Output(cmd, slot.String(), r.ValidateJSON)
}

// closestWord returns the word in s with the smallest edit distance to
// pattern, or "" if s has no words.
func closestWord(s, pattern string) string {
	var (
		best     string
		bestDist = -1
	)
	for _, word := range strings.FieldsFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == '"' || r == ','
	}) {
		if d := levenshtein.ComputeDistance(word, pattern); bestDist < 0 || d < bestDist {
			best, bestDist = word, d
		}
	}
	return best
}
