package pages

import (
	"fmt"
	"strings"

	"github.com/v0xg/devhub-listing/internal/driver"
)

// Checkbox is a labelled checkbox list item.
type Checkbox struct {
	item driver.Element
}

func NewCheckbox(item driver.Element) *Checkbox {
	return &Checkbox{item: item}
}

// Name is the label text.
func (c *Checkbox) Name() (string, error) {
	label, err := c.item.Find(CheckboxLabelLocator)
	if err != nil {
		return "", fmt.Errorf("checkbox label: %w", err)
	}
	text, err := label.Text()
	if err != nil {
		return "", fmt.Errorf("checkbox label: %w", err)
	}
	return strings.TrimSpace(text), nil
}

// State reports whether the box is checked.
func (c *Checkbox) State() (bool, error) {
	input, err := c.item.Find(CheckboxInputLocator)
	if err != nil {
		return false, fmt.Errorf("checkbox input: %w", err)
	}
	return input.Checked()
}

// ChangeState toggles the box.
func (c *Checkbox) ChangeState() error {
	input, err := c.item.Find(CheckboxInputLocator)
	if err != nil {
		return fmt.Errorf("checkbox input: %w", err)
	}
	return input.Click()
}
