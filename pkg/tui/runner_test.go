package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-brief/pkg/model"
	"github.com/goliatone/go-brief/pkg/stepper"
)

type stubDriver struct {
	inputs       []string
	selectIdx    []int
	multiIdx     [][]int
	textAreas    []string
	infoMessages []string
	inputPos     int
	selectPos    int
	multiPos     int
	textPos      int
	multiConfigs []SelectConfig
	err          error
}

func (s *stubDriver) Input(_ context.Context, _ InputConfig) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	if s.inputPos >= len(s.inputs) {
		return "", errors.New("no input scripted")
	}
	val := s.inputs[s.inputPos]
	s.inputPos++
	return val, nil
}

func (s *stubDriver) Select(_ context.Context, _ SelectConfig) (int, error) {
	if s.selectPos >= len(s.selectIdx) {
		return -1, errors.New("no select scripted")
	}
	val := s.selectIdx[s.selectPos]
	s.selectPos++
	return val, nil
}

func (s *stubDriver) MultiSelect(_ context.Context, cfg SelectConfig) ([]int, error) {
	s.multiConfigs = append(s.multiConfigs, cfg)
	if s.multiPos >= len(s.multiIdx) {
		return nil, errors.New("no multiselect scripted")
	}
	val := s.multiIdx[s.multiPos]
	s.multiPos++
	return val, nil
}

func (s *stubDriver) TextArea(_ context.Context, _ TextAreaConfig) (string, error) {
	if s.textPos >= len(s.textAreas) {
		return "", errors.New("no textarea scripted")
	}
	val := s.textAreas[s.textPos]
	s.textPos++
	return val, nil
}

func (s *stubDriver) Info(_ context.Context, msg string) error {
	s.infoMessages = append(s.infoMessages, msg)
	return nil
}

func (s *stubDriver) printed(substr string) bool {
	for _, msg := range s.infoMessages {
		if strings.Contains(msg, substr) {
			return true
		}
	}
	return false
}

type recordingSubmitter struct {
	errs  []error
	calls int
	last  model.FormValues
}

func (r *recordingSubmitter) Submit(_ context.Context, values model.FormValues) error {
	r.last = values
	idx := r.calls
	r.calls++
	if idx < len(r.errs) {
		return r.errs[idx]
	}
	return nil
}

func newRunner(t *testing.T, driver PromptDriver) *Runner {
	t.Helper()
	r, err := New(WithPromptDriver(driver))
	if err != nil {
		t.Fatalf("new runner: %v", err)
	}
	return r
}

func TestRun_BasicBriefSubmits(t *testing.T) {
	driver := &stubDriver{
		inputs:    []string{"Anna Svensson", "", "anna@example.com", "", "Inom 2 månader"},
		multiIdx:  [][]int{{0, 2}},
		textAreas: []string{"Ny hemsida för salongen", "Lekfull", ""},
		selectIdx: []int{0, 0, 0},
	}
	sub := &recordingSubmitter{}
	ctrl := stepper.New(context.Background(), model.Basic, stepper.WithSubmitter(sub))

	outcome, err := newRunner(t, driver).Run(context.Background(), ctrl)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if outcome != OutcomeSubmitted {
		t.Fatalf("expected submitted, got %q", outcome)
	}
	if sub.calls != 1 {
		t.Fatalf("expected one submission, got %d", sub.calls)
	}

	want := model.Defaults()
	want.Name = "Anna Svensson"
	want.Email = "anna@example.com"
	want.ProjectType = []string{"Ny hemsida", "Landningssida"}
	want.Description = "Ny hemsida för salongen"
	want.Deadline = "Inom 2 månader"
	want.DesignStyle = "Lekfull"
	if diff := cmp.Diff(want, sub.last); diff != "" {
		t.Fatalf("submitted values mismatch (-want +got):\n%s", diff)
	}

	if !driver.printed("Steg 1 av 3") || !driver.printed("Steg 3 av 3") {
		t.Fatalf("expected progress lines, got %#v", driver.infoMessages)
	}
	if !driver.printed("Tack för din brief!") {
		t.Fatalf("expected thank-you message, got %#v", driver.infoMessages)
	}
	if diff := cmp.Diff([]string{"Ny hemsida", "Redesign", "Landningssida"}, driver.multiConfigs[0].Options); diff != "" {
		t.Fatalf("basic project options mismatch (-want +got):\n%s", diff)
	}
}

func TestRun_ValidationErrorsRepromptStep(t *testing.T) {
	driver := &stubDriver{
		inputs:    []string{"", "", "not-an-email", "", "Anna", "", "anna@example.com", ""},
		selectIdx: []int{0, 0, 1, 1},
	}
	ctrl := stepper.New(context.Background(), model.Basic)

	// The second round advances to step 2, where the multiselect script is
	// empty and the run stops with an error.
	_, err := newRunner(t, driver).Run(context.Background(), ctrl)
	if err == nil {
		t.Fatalf("expected the unscripted prompt to stop the run")
	}
	if !driver.printed("Namn är obligatoriskt") {
		t.Fatalf("expected name error, got %#v", driver.infoMessages)
	}
	if !driver.printed("Ange en giltig e-postadress") {
		t.Fatalf("expected email error, got %#v", driver.infoMessages)
	}
	if driver.printed("E-post är obligatoriskt") {
		t.Fatalf("invalid email must not also report required")
	}
	if got := ctrl.State().Step; got != 2 {
		t.Fatalf("expected step 2 after fixing errors, got %d", got)
	}
}

func TestRun_CancelOnFirstStep(t *testing.T) {
	driver := &stubDriver{
		inputs:    []string{"Anna", "", "", ""},
		selectIdx: []int{1},
	}
	ctrl := stepper.New(context.Background(), model.Basic)

	outcome, err := newRunner(t, driver).Run(context.Background(), ctrl)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if outcome != OutcomeCancelled {
		t.Fatalf("expected cancelled, got %q", outcome)
	}
}

func TestRun_SubmitFailureKeepsFinalStep(t *testing.T) {
	driver := &stubDriver{
		inputs:    []string{"Anna", "", "anna@example.com", "", ""},
		multiIdx:  [][]int{{}},
		textAreas: []string{"Beskrivning", "", "", "", ""},
		selectIdx: []int{0, 0, 0, 0},
	}
	sub := &recordingSubmitter{errs: []error{errors.New("offline")}}
	ctrl := stepper.New(context.Background(), model.Basic, stepper.WithSubmitter(sub))

	outcome, err := newRunner(t, driver).Run(context.Background(), ctrl)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if outcome != OutcomeSubmitted || sub.calls != 2 {
		t.Fatalf("expected retry to submit, outcome %q calls %d", outcome, sub.calls)
	}
	if !driver.printed("Något gick fel") {
		t.Fatalf("expected fallback failure message, got %#v", driver.infoMessages)
	}
}

func TestRun_PropagatesAbort(t *testing.T) {
	driver := &stubDriver{err: ErrAborted}
	ctrl := stepper.New(context.Background(), model.Basic)

	if _, err := newRunner(t, driver).Run(context.Background(), ctrl); !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
}

func TestRun_RequiresController(t *testing.T) {
	if _, err := newRunner(t, &stubDriver{}).Run(context.Background(), nil); !errors.Is(err, ErrNoController) {
		t.Fatalf("expected ErrNoController, got %v", err)
	}
}

func TestApplySelection_LeavesUnknownMembers(t *testing.T) {
	ctrl := stepper.New(context.Background(), model.Extended)
	if err := ctrl.Toggle(model.FieldFeatures, "Legacy"); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if err := ctrl.Toggle(model.FieldFeatures, "Bildgalleri"); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	options := []string{"Kontaktformulär", "Bildgalleri"}
	current, _ := ctrl.State().Values.Set(model.FieldFeatures)

	if err := applySelection(ctrl, model.FieldFeatures, options, current, []int{0}); err != nil {
		t.Fatalf("apply: %v", err)
	}
	got, _ := ctrl.State().Values.Set(model.FieldFeatures)
	if diff := cmp.Diff([]string{"Legacy", "Kontaktformulär"}, got); diff != "" {
		t.Fatalf("selection mismatch (-want +got):\n%s", diff)
	}
}
