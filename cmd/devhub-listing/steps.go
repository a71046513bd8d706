package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/v0xg/devhub-listing/internal/plan"
)

// initialSteps builds the plan from --steps or the field flags. --prompt
// plans later, once the current listing has been read.
func initialSteps(cmd *cobra.Command) ([]plan.Step, error) {
	edits, err := editsFromFlags(cmd)
	if err != nil {
		return nil, err
	}
	fromFlags := plan.FromEdits(edits)

	sources := 0
	for _, set := range []bool{stepsFile != "", prompt != "", len(fromFlags) > 0} {
		if set {
			sources++
		}
	}
	if sources > 1 {
		return nil, errors.New("use only one of --steps, --prompt or field flags")
	}

	if stepsFile != "" {
		steps, err := plan.Load(stepsFile)
		if err != nil {
			return nil, err
		}
		return steps, plan.Validate(steps)
	}
	return fromFlags, nil
}

func editsFromFlags(cmd *cobra.Command) (plan.Edits, error) {
	changed := func(flag string, v *string) *string {
		if cmd.Flags().Changed(flag) {
			return v
		}
		return nil
	}

	e := plan.Edits{
		Name:         changed("name", &name),
		Summary:      changed("summary", &summary),
		URLEnd:       changed("url-end", &urlEnd),
		ManifestURL:  changed("manifest-url", &manifestURL),
		SupportEmail: changed("support-email", &supportEmail),
		SupportURL:   changed("support-url", &supportURL),
	}

	var err error
	if e.DeviceTypes, err = parseStates("device-type", deviceTypes); err != nil {
		return plan.Edits{}, err
	}
	if e.Categories, err = parseStates("category", categories); err != nil {
		return plan.Edits{}, err
	}
	return e, nil
}

func parseStates(flag string, raw map[string]string) (map[string]bool, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	out := make(map[string]bool, len(raw))
	for k, v := range raw {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("--%s %s=%s: want true or false", flag, k, v)
		}
		out[k] = b
	}
	return out, nil
}
