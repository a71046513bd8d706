package plan

import (
	"errors"
	"fmt"

	"github.com/v0xg/devhub-listing/internal/pages"
	"go.uber.org/zap"
)

var (
	ErrUnknownAction = errors.New("unknown action")
	ErrWrongView     = errors.New("action not available in current view")
	ErrUnsaved       = errors.New("form left open")
	ErrSaveRejected  = errors.New("save rejected")
)

// Options configures a run.
type Options struct {
	Logger *zap.Logger
	// OnStep runs after each step completes with the view it left the page in.
	OnStep func(i int, step Step, v pages.View)
}

// Run applies steps starting from l and returns the listing the page ends
// on. A plan must leave no form open.
func Run(l *pages.Listing, steps []Step, opts Options) (*pages.Listing, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	var cur pages.View = l
	for i, step := range steps {
		log.Debug("step", zap.Int("index", i+1), zap.Int("total", len(steps)), zap.Stringer("step", step))

		next, err := apply(cur, step)
		if err != nil {
			return nil, fmt.Errorf("step %d (%s): %w", i+1, step.Action, err)
		}
		cur = next

		if opts.OnStep != nil {
			opts.OnStep(i, step, cur)
		}
	}

	final, ok := cur.(*pages.Listing)
	if !ok {
		return nil, fmt.Errorf("plan ends in %s: %w", cur.Kind(), ErrUnsaved)
	}
	return final, nil
}

func apply(cur pages.View, step Step) (pages.View, error) {
	switch step.Action {
	case EditBasicInfo:
		return pages.Transition(cur, pages.TriggerEditBasicInfo)
	case EditSupportInfo:
		return pages.Transition(cur, pages.TriggerEditSupportInfo)
	case Save:
		return save(cur)
	case TypeName, TypeSummary, TypeURLEnd, TypeManifestURL, SelectDeviceType, SelectCategory:
		form, ok := cur.(*pages.BasicInfoForm)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrWrongView, cur.Kind())
		}
		return form, basicInfo(form, step)
	case TypeSupportEmail, TypeSupportURL:
		form, ok := cur.(*pages.SupportInfoForm)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrWrongView, cur.Kind())
		}
		return form, supportInfo(form, step)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAction, step.Action)
	}
}

func basicInfo(form *pages.BasicInfoForm, step Step) error {
	switch step.Action {
	case TypeName:
		return form.TypeName(step.Text)
	case TypeSummary:
		return form.TypeSummary(step.Text)
	case TypeURLEnd:
		return form.TypeURLEnd(step.Text)
	case TypeManifestURL:
		return form.TypeManifestURL(step.Text)
	case SelectDeviceType:
		return form.SelectDeviceType(step.Name, step.Checked())
	default:
		return form.SelectCategories(step.Name, step.Checked())
	}
}

func supportInfo(form *pages.SupportInfoForm, step Step) error {
	if step.Action == TypeSupportEmail {
		return form.TypeSupportEmail(step.Text)
	}
	return form.TypeSupportURL(step.Text)
}

// save submits the open form and waits for it to close. A form that stays
// open means the server rejected the input; the summary counter error is
// reported when there is one.
func save(cur pages.View) (pages.View, error) {
	basic, _ := cur.(*pages.BasicInfoForm)

	next, err := pages.Transition(cur, pages.TriggerSave)
	if err != nil {
		return nil, err
	}
	if next.NoFormsAreOpen() {
		return next, nil
	}

	if basic != nil {
		if ok, err := basic.IsSummaryCharCountOK(); err == nil && !ok {
			msg, _ := basic.SummaryCharCountErrorMessage()
			return nil, fmt.Errorf("%w: summary: %s", ErrSaveRejected, msg)
		}
	}
	return nil, fmt.Errorf("%w: form still open", ErrSaveRejected)
}
