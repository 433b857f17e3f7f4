package cmds

import (
	"github.com/acorn-io/cmd"
	"github.com/acorn-io/strsub"
	"github.com/acorn-io/strsub/pkg/replace"
	"github.com/spf13/cobra"
)

type Apply struct {
	strsub *Strsub

	ValidateJSON bool `name:"validate-json" usage:"Fail if the result is not valid JSON"`
}

func NewApply(s *Strsub) *cobra.Command {
	return cmd.Command(&Apply{strsub: s}, cobra.Command{
		Use:           "apply [flags] RULES [FILE]",
		Short:         "Apply a YAML or JSON rules file to FILE or stdin",
		Args:          cobra.RangeArgs(1, 2),
		SilenceErrors: true,
	})
}

func (a *Apply) Run(cmd *cobra.Command, args []string) error {
	a.strsub.setup()

	set, err := strsub.LoadRules(args[0])
	if err != nil {
		return err
	}

	input, err := readInput(cmd, args, 1)
	if err != nil {
		return err
	}

	slot := replace.NewSlot(input)
	if err := set.Apply(slot, strsub.Debugf); err != nil {
		return err
	}

	return a.strsub.Output(cmd, slot.String(), a.ValidateJSON)
}
