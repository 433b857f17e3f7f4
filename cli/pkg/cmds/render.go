package cmds

import (
	"fmt"
	"strings"

	"github.com/acorn-io/cmd"
	"github.com/acorn-io/strsub"
	"github.com/acorn-io/strsub/pkg/escape"
	"github.com/acorn-io/strsub/pkg/replace"
	"github.com/spf13/cobra"
)

type Render struct {
	strsub *Strsub

	Values       string `usage:"YAML or JSON file of template values" short:"v"`
	Raw          bool   `usage:"Substitute values without JSON escaping"`
	ValidateJSON bool   `name:"validate-json" usage:"Fail if the result is not valid JSON"`
}

func NewRender(s *Strsub) *cobra.Command {
	return cmd.Command(&Render{strsub: s}, cobra.Command{
		Use:           "render [flags] [TEMPLATE]",
		Short:         "Substitute {{name}} placeholders in TEMPLATE or stdin",
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
	})
}

func (r *Render) Run(cmd *cobra.Command, args []string) error {
	r.strsub.setup()

	values := map[string]string{}
	if r.Values != "" {
		var err error
		values, err = strsub.LoadValues(r.Values)
		if err != nil {
			return fmt.Errorf("reading values %s: %w", r.Values, err)
		}
	}

	tmpl, err := readInput(cmd, args, 0)
	if err != nil {
		return err
	}

	result, err := replace.Delimited(tmpl, "{{", "}}", func(name string) (string, error) {
		if strings.HasPrefix(name, "{") {
			return "", fmt.Errorf("triple-brace placeholder {{%s}}} is not supported", name)
		}
		name = strings.TrimSpace(name)
		v, ok := values[name]
		if !ok {
			return "", fmt.Errorf("no value for %q", name)
		}
		strsub.Debugf("rendering %q", name)
		if r.Raw {
			return v, nil
		}
		return escape.JSONString(v), nil
	})
	if err != nil {
		return err
	}

	return r.strsub.Output(cmd, result, r.ValidateJSON)
}
