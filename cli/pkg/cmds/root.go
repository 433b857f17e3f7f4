package cmds

import (
	"fmt"
	"io"

	"github.com/acorn-io/cmd"
	"github.com/acorn-io/strsub"
	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"
)

func NewRootCommand() *cobra.Command {
	return cmd.Command(&Strsub{}, cobra.Command{
		Use: "strsub",
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		SilenceUsage: true,
	})
}

// Strsub is the root command. Its flags are shared by every subcommand.
type Strsub struct {
	Debug bool `usage:"Log debug output to stderr"`
}

func (s *Strsub) Customize(cmd *cobra.Command) {
	cmd.AddCommand(NewReplace(s))
	cmd.AddCommand(NewApply(s))
	cmd.AddCommand(NewRender(s))
}

func (s *Strsub) Run(cmd *cobra.Command, args []string) error {
	return cmd.Usage()
}

func (s *Strsub) setup() {
	strsub.DebugEnabled = s.Debug
}

// Output writes result to the command's output, optionally refusing text that
// is not a valid JSON document.
func (s *Strsub) Output(cmd *cobra.Command, result string, validateJSON bool) error {
	if validateJSON && !gjson.Valid(result) {
		return fmt.Errorf("result is not valid JSON")
	}
	_, err := io.WriteString(cmd.OutOrStdout(), result)
	return err
}

func readInput(cmd *cobra.Command, args []string, i int) (string, error) {
	var name string
	if len(args) > i {
		name = args[i]
	}
	data, err := strsub.ReadFile(name, cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", name, err)
	}
	return string(data), nil
}
