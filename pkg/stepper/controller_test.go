package stepper

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/goliatone/go-brief/pkg/formstore"
	"github.com/goliatone/go-brief/pkg/model"
)

type recordingSubmitter struct {
	calls []model.FormValues
	err   error
}

func (r *recordingSubmitter) Submit(_ context.Context, values model.FormValues) error {
	r.calls = append(r.calls, values)
	return r.err
}

type userErr struct{ msg string }

func (e userErr) Error() string       { return "submit failed: " + e.msg }
func (e userErr) UserMessage() string { return e.msg }

func newController(t *testing.T, variant model.Variant, sub Submitter) (*Controller, *formstore.MemoryStorage, *formstore.Store) {
	t.Helper()
	mem := formstore.NewMemoryStorage()
	store := formstore.New(mem)
	c := New(context.Background(), variant, WithStore(store), WithSubmitter(sub))
	return c, mem, store
}

func fillRequired(t *testing.T, c *Controller) {
	t.Helper()
	for field, value := range map[model.Field]string{
		model.FieldName:        "Anna Svensson",
		model.FieldEmail:       "anna@example.com",
		model.FieldDescription: "Ny hemsida",
	} {
		if err := c.Set(field, value); err != nil {
			t.Fatalf("Set(%s): %v", field, err)
		}
	}
}

func TestNextBlockedByInvalidEmail(t *testing.T) {
	sub := &recordingSubmitter{}
	c, _, _ := newController(t, model.Basic, sub)
	_ = c.Set(model.FieldName, "Anna")
	_ = c.Set(model.FieldEmail, "not-an-email")

	if c.Next() {
		t.Fatalf("expected Next to be blocked")
	}
	state := c.State()
	if state.Step != 1 {
		t.Fatalf("step = %d, want 1", state.Step)
	}
	if diff := cmp.Diff([]string{"Ange en giltig e-postadress"}, state.Errors); diff != "" {
		t.Fatalf("errors mismatch (-want +got):\n%s", diff)
	}
	if len(sub.calls) != 0 {
		t.Fatalf("no network call expected, got %d", len(sub.calls))
	}
}

func TestInputClearsErrors(t *testing.T) {
	c, _, _ := newController(t, model.Basic, &recordingSubmitter{})
	c.Next()
	if len(c.State().Errors) == 0 {
		t.Fatalf("expected errors after blocked Next")
	}
	_ = c.Set(model.FieldPhone, "070")
	if got := c.State().Errors; len(got) != 0 {
		t.Fatalf("errors not cleared on input: %v", got)
	}
	c.Next()
	_ = c.Toggle(model.FieldProjectType, "Redesign")
	if got := c.State().Errors; len(got) != 0 {
		t.Fatalf("errors not cleared on toggle: %v", got)
	}
}

func TestNavigationBounds(t *testing.T) {
	for _, variant := range model.Variants() {
		c, _, _ := newController(t, variant, &recordingSubmitter{})
		fillRequired(t, c)
		rng := rand.New(rand.NewSource(7))
		for i := 0; i < 500; i++ {
			if rng.Intn(2) == 0 {
				c.Next()
			} else {
				c.Prev()
			}
			step := c.State().Step
			if step < 1 || step > variant.Total() {
				t.Fatalf("%s: step %d out of bounds after %d moves", variant.Name, step, i)
			}
		}
	}
}

func TestNextStopsAtFinalStep(t *testing.T) {
	c, _, _ := newController(t, model.Extended, &recordingSubmitter{})
	fillRequired(t, c)
	for i := 0; i < 10; i++ {
		c.Next()
	}
	if got := c.State(); got.Step != 5 || !got.Final() {
		t.Fatalf("state = %+v, want final step 5", got)
	}
}

func TestPrevFromFirstStepExits(t *testing.T) {
	c, _, _ := newController(t, model.Basic, &recordingSubmitter{})
	if !c.Prev() {
		t.Fatalf("Prev on step 1 should report exit")
	}
	fillRequired(t, c)
	c.Next()
	c.Next()
	if c.Prev() {
		t.Fatalf("Prev on step 3 should not exit")
	}
	if got := c.State().Step; got != 2 {
		t.Fatalf("step = %d, want 2", got)
	}
}

func TestSubmitOnlyFromFinalStep(t *testing.T) {
	sub := &recordingSubmitter{}
	c, _, _ := newController(t, model.Basic, sub)
	fillRequired(t, c)
	if err := c.Submit(context.Background()); !errors.Is(err, ErrNotFinalStep) {
		t.Fatalf("expected ErrNotFinalStep, got %v", err)
	}
	if len(sub.calls) != 0 {
		t.Fatalf("unexpected submit call")
	}
}

func TestSubmitSuccessClearsStore(t *testing.T) {
	ctx := context.Background()
	sub := &recordingSubmitter{}
	c, mem, _ := newController(t, model.Basic, sub)
	fillRequired(t, c)
	_ = c.Toggle(model.FieldProjectType, "Ny hemsida")
	c.Next()
	c.Next()

	if err := c.Submit(ctx); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if len(sub.calls) != 1 {
		t.Fatalf("submit calls = %d, want 1", len(sub.calls))
	}
	if diff := cmp.Diff([]string{"Ny hemsida"}, sub.calls[0].ProjectType); diff != "" {
		t.Fatalf("submitted values mismatch (-want +got):\n%s", diff)
	}
	if got := c.State().Phase; got != PhaseSubmitted {
		t.Fatalf("phase = %s, want submitted", got)
	}
	if _, err := mem.Get(ctx, formstore.DefaultKey); !errors.Is(err, formstore.ErrNotFound) {
		t.Fatalf("draft not cleared: %v", err)
	}
	if err := c.Set(model.FieldName, "x"); !errors.Is(err, ErrSubmitted) {
		t.Fatalf("expected ErrSubmitted on edit, got %v", err)
	}
	if err := c.Submit(ctx); !errors.Is(err, ErrSubmitted) {
		t.Fatalf("expected ErrSubmitted on resubmit, got %v", err)
	}
}

func TestSubmitFailureKeepsDraft(t *testing.T) {
	ctx := context.Background()
	sub := &recordingSubmitter{err: userErr{msg: "För många förfrågningar. Vänta en stund och försök igen."}}
	c, _, store := newController(t, model.Basic, sub)
	fillRequired(t, c)
	c.Next()
	c.Next()

	if err := c.Submit(ctx); err == nil {
		t.Fatalf("expected submit error")
	}
	state := c.State()
	if state.Step != 3 || state.Phase != PhaseEditing {
		t.Fatalf("state = %+v, want editing on step 3", state)
	}
	if diff := cmp.Diff([]string{"För många förfrågningar. Vänta en stund och försök igen."}, state.Errors); diff != "" {
		t.Fatalf("errors mismatch (-want +got):\n%s", diff)
	}
	if got := store.Load(ctx); got.Name != "Anna Svensson" {
		t.Fatalf("draft lost after failure: %+v", got)
	}

	// retry is a manual action that re-runs the whole flow
	sub.err = nil
	if err := c.Submit(ctx); err != nil {
		t.Fatalf("retry: %v", err)
	}
	if len(sub.calls) != 2 {
		t.Fatalf("submit calls = %d, want 2", len(sub.calls))
	}
}

func TestSubmitFailureFallbackMessage(t *testing.T) {
	sub := &recordingSubmitter{err: errors.New("boom")}
	c, _, _ := newController(t, model.Basic, sub)
	fillRequired(t, c)
	c.Next()
	c.Next()
	_ = c.Submit(context.Background())
	want := []string{"Något gick fel. Försök igen eller kontakta mig direkt på hej@pixelpioneer.se"}
	if diff := cmp.Diff(want, c.State().Errors); diff != "" {
		t.Fatalf("fallback mismatch (-want +got):\n%s", diff)
	}
}

func TestSubmitRevalidatesRestoredDraft(t *testing.T) {
	ctx := context.Background()
	sub := &recordingSubmitter{}
	c, _, _ := newController(t, model.Basic, sub)
	fillRequired(t, c)
	c.Next()
	c.Next()
	// stale data: the email got cleared after passing step 1
	_ = c.Set(model.FieldEmail, "")

	if err := c.Submit(ctx); !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
	if diff := cmp.Diff([]string{"E-post är obligatoriskt"}, c.State().Errors); diff != "" {
		t.Fatalf("errors mismatch (-want +got):\n%s", diff)
	}
	if len(sub.calls) != 0 {
		t.Fatalf("no network call expected")
	}
}

func TestHydratesFromStore(t *testing.T) {
	ctx := context.Background()
	store := formstore.New(formstore.NewMemoryStorage())
	draft := model.Defaults()
	draft.Name = "Anna"
	draft.Features = []string{"Bildgalleri"}
	store.Save(draft)

	c := New(ctx, model.Extended, WithStore(store))
	if diff := cmp.Diff(draft, c.State().Values, cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("hydrated values mismatch (-want +got):\n%s", diff)
	}
	if c.State().Step != 1 {
		t.Fatalf("hydrated session should start on step 1")
	}
}

func TestSetUnknownField(t *testing.T) {
	c, _, _ := newController(t, model.Basic, &recordingSubmitter{})
	if err := c.Set(model.Field("nope"), "x"); !errors.Is(err, model.ErrUnknownField) {
		t.Fatalf("expected ErrUnknownField, got %v", err)
	}
}
