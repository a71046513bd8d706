package pages

import "fmt"

// Trigger is a UI action that moves the edit page between views.
type Trigger int

const (
	TriggerEditBasicInfo Trigger = iota
	TriggerEditSupportInfo
	TriggerSave
)

func (t Trigger) String() string {
	switch t {
	case TriggerEditBasicInfo:
		return "edit basic info"
	case TriggerEditSupportInfo:
		return "edit support info"
	case TriggerSave:
		return "save"
	default:
		return fmt.Sprintf("Trigger(%d)", int(t))
	}
}

// Transition fires t from v and returns the view the page moves to:
//
//	Listing --edit basic info--> BasicInfoForm --save--> Listing
//	Listing --edit support info--> SupportInfoForm --save--> Listing
//
// Any other pair fails with ErrInvalidTransition before touching the page.
func Transition(v View, t Trigger) (View, error) {
	var (
		next View
		err  error
	)
	switch cur := v.(type) {
	case *Listing:
		switch t {
		case TriggerEditBasicInfo:
			next, err = settle(cur.ClickEditBasicInfo())
		case TriggerEditSupportInfo:
			next, err = settle(cur.ClickSupportInformation())
		default:
			return nil, invalid(v, t)
		}
	case *BasicInfoForm:
		if t != TriggerSave {
			return nil, invalid(v, t)
		}
		next, err = settle(cur.ClickSaveChanges())
	case *SupportInfoForm:
		if t != TriggerSave {
			return nil, invalid(v, t)
		}
		next, err = settle(cur.ClickSaveChanges())
	default:
		return nil, invalid(v, t)
	}
	return next, err
}

// settle keeps a failed transition from yielding a non-nil View holding a
// nil pointer.
func settle[V View](v V, err error) (View, error) {
	if err != nil {
		return nil, err
	}
	return v, nil
}

func invalid(v View, t Trigger) error {
	return fmt.Errorf("%w: %s from %s", ErrInvalidTransition, t, kindOf(v))
}

func kindOf(v View) string {
	if v == nil {
		return "no view"
	}
	return v.Kind().String()
}
