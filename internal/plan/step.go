// Package plan runs a sequence of listing edits through the page objects.
package plan

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Step actions.
const (
	EditBasicInfo    = "edit_basic_info"
	EditSupportInfo  = "edit_support_info"
	TypeName         = "type_name"
	TypeSummary      = "type_summary"
	TypeURLEnd       = "type_url_end"
	TypeManifestURL  = "type_manifest_url"
	TypeSupportEmail = "type_support_email"
	TypeSupportURL   = "type_support_url"
	SelectDeviceType = "select_device_type"
	SelectCategory   = "select_category"
	Save             = "save"
)

// Actions lists every supported action in the order they usually appear.
var Actions = []string{
	EditBasicInfo, TypeName, TypeSummary, TypeURLEnd, TypeManifestURL,
	SelectDeviceType, SelectCategory,
	EditSupportInfo, TypeSupportEmail, TypeSupportURL,
	Save,
}

// Step is a single edit on the listing page.
type Step struct {
	Action string `json:"action" yaml:"action"`
	Text   string `json:"text,omitempty" yaml:"text,omitempty"`   // text to type
	Name   string `json:"name,omitempty" yaml:"name,omitempty"`   // checkbox label
	State  *bool  `json:"state,omitempty" yaml:"state,omitempty"` // checkbox state, default checked
}

// Checked is the checkbox state the step asks for.
func (s Step) Checked() bool {
	return s.State == nil || *s.State
}

func (s Step) String() string {
	switch s.Action {
	case TypeName, TypeSummary, TypeURLEnd, TypeManifestURL, TypeSupportEmail, TypeSupportURL:
		return fmt.Sprintf("%s (text: %q)", s.Action, s.Text)
	case SelectDeviceType, SelectCategory:
		return fmt.Sprintf("%s %q → %t", s.Action, s.Name, s.Checked())
	default:
		return s.Action
	}
}

// Describe renders steps as a numbered list.
func Describe(steps []Step) string {
	var b strings.Builder
	for i, s := range steps {
		fmt.Fprintf(&b, "%d. %s\n", i+1, s)
	}
	return b.String()
}

// Load reads steps from a JSON or YAML file, chosen by extension.
func Load(path string) ([]Step, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var steps []Step
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &steps)
	default:
		err = json.Unmarshal(data, &steps)
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return steps, nil
}

// Edits are the field changes requested on the command line. Nil pointers
// leave a field untouched.
type Edits struct {
	Name         *string
	Summary      *string
	URLEnd       *string
	ManifestURL  *string
	SupportEmail *string
	SupportURL   *string
	DeviceTypes  map[string]bool
	Categories   map[string]bool
}

// FromEdits builds the steps that apply e: one basic info form pass and one
// support form pass, each only when it has something to change.
func FromEdits(e Edits) []Step {
	var basic []Step
	typed := func(dst *[]Step, action string, v *string) {
		if v != nil {
			*dst = append(*dst, Step{Action: action, Text: *v})
		}
	}
	typed(&basic, TypeName, e.Name)
	typed(&basic, TypeSummary, e.Summary)
	typed(&basic, TypeURLEnd, e.URLEnd)
	typed(&basic, TypeManifestURL, e.ManifestURL)
	basic = append(basic, selections(SelectDeviceType, e.DeviceTypes)...)
	basic = append(basic, selections(SelectCategory, e.Categories)...)

	var support []Step
	typed(&support, TypeSupportEmail, e.SupportEmail)
	typed(&support, TypeSupportURL, e.SupportURL)

	var steps []Step
	if len(basic) > 0 {
		steps = append(steps, Step{Action: EditBasicInfo})
		steps = append(steps, basic...)
		steps = append(steps, Step{Action: Save})
	}
	if len(support) > 0 {
		steps = append(steps, Step{Action: EditSupportInfo})
		steps = append(steps, support...)
		steps = append(steps, Step{Action: Save})
	}
	return steps
}

func selections(action string, m map[string]bool) []Step {
	names := make([]string, 0, len(m))
	for n := range m {
		names = append(names, n)
	}
	sort.Strings(names)

	steps := make([]Step, 0, len(names))
	for _, n := range names {
		state := m[n]
		steps = append(steps, Step{Action: action, Name: n, State: &state})
	}
	return steps
}

// Validate checks that every step names a known action and carries the
// argument that action needs. It does not check view ordering; Run does.
func Validate(steps []Step) error {
	for i, s := range steps {
		switch s.Action {
		case EditBasicInfo, EditSupportInfo, Save,
			TypeName, TypeSummary, TypeURLEnd, TypeManifestURL, TypeSupportEmail, TypeSupportURL:
		case SelectDeviceType, SelectCategory:
			if s.Name == "" {
				return fmt.Errorf("step %d (%s): missing checkbox name", i+1, s.Action)
			}
		default:
			return fmt.Errorf("step %d: %w: %q", i+1, ErrUnknownAction, s.Action)
		}
	}
	return nil
}
