package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Jackcomputers-app/flyhightide/catalog"
	"github.com/Jackcomputers-app/flyhightide/model"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func oakIsland(t *testing.T) *model.Tour {
	tour, ok := catalog.TourById("southport-oak-island")
	assert.True(t, ok)
	return &tour
}

// wizardAtPassengerStep walks a fresh wizard to step 3 with a valid
// location and tour already picked.
func wizardAtPassengerStep(t *testing.T) *Wizard {
	w := NewWizard(nil)
	w.Update(DraftUpdate{Location: strPtr("southport")})
	assert.True(t, w.Advance())
	w.Update(DraftUpdate{Tour: oakIsland(t)})
	assert.True(t, w.Advance())
	assert.Equal(t, StepPassengers, w.Draft().Step)
	return w
}

func fillPassengerDetails(w *Wizard) {
	w.Update(DraftUpdate{
		Passengers:        intPtr(2),
		TotalWeight:       intPtr(300),
		LeadPassengerName: strPtr("Jamie Rivers"),
		ContactEmail:      strPtr("jamie@example.com"),
		ContactPhone:      strPtr("555-0142"),
		PreferredDate:     strPtr("2026-10-01"),
	})
}

func TestTotalPrice(t *testing.T) {
	w := NewWizard(nil)
	assert.Equal(t, 0, w.TotalPrice(), "no tour selected yet")

	w.Update(DraftUpdate{Tour: oakIsland(t), Passengers: intPtr(3)})
	assert.Equal(t, 375, w.TotalPrice())
}

func TestAdvanceRequiresLocation(t *testing.T) {
	w := NewWizard(nil)

	assert.False(t, w.Advance())
	assert.Equal(t, StepLocation, w.Draft().Step)

	w.Update(DraftUpdate{Location: strPtr("southport")})
	assert.True(t, w.Advance())
	assert.Equal(t, StepTour, w.Draft().Step)
}

func TestAdvanceRequiresTour(t *testing.T) {
	w := NewWizard(nil)
	w.Update(DraftUpdate{Location: strPtr("st-simons")})
	assert.True(t, w.Advance())

	assert.False(t, w.Advance())
	assert.Equal(t, StepTour, w.Draft().Step)
}

func TestAdvanceBlockedAtZeroPassengers(t *testing.T) {
	w := wizardAtPassengerStep(t)
	fillPassengerDetails(w)
	w.Update(DraftUpdate{Passengers: intPtr(0)})

	assert.False(t, w.Advance())
	assert.Equal(t, StepPassengers, w.Draft().Step)
}

func TestWeightBoundaryIsInclusive(t *testing.T) {
	w := wizardAtPassengerStep(t)
	fillPassengerDetails(w)

	// Oak Island's limit is 500 lbs: 501 blocks, exactly 500 passes.
	w.Update(DraftUpdate{TotalWeight: intPtr(501)})
	assert.False(t, w.Advance())
	assert.Equal(t, StepPassengers, w.Draft().Step)

	w.Update(DraftUpdate{TotalWeight: intPtr(500)})
	assert.True(t, w.Advance())
	assert.Equal(t, StepConfirm, w.Draft().Step)
}

func TestAdvanceRequiresContactDetails(t *testing.T) {
	tests := []struct {
		description string
		update      DraftUpdate
	}{
		{"missing name", DraftUpdate{LeadPassengerName: strPtr("")}},
		{"missing email", DraftUpdate{ContactEmail: strPtr("")}},
		{"missing phone", DraftUpdate{ContactPhone: strPtr("")}},
		{"missing preferred date", DraftUpdate{PreferredDate: strPtr("")}},
	}

	for _, test := range tests {
		w := wizardAtPassengerStep(t)
		fillPassengerDetails(w)
		w.Update(test.update)

		assert.Falsef(t, w.Advance(), test.description)
		assert.Equalf(t, StepPassengers, w.Draft().Step, test.description)
	}
}

func TestAdvanceStopsAtConfirmStep(t *testing.T) {
	w := wizardAtPassengerStep(t)
	fillPassengerDetails(w)
	assert.True(t, w.Advance())

	assert.False(t, w.Advance())
	assert.Equal(t, StepConfirm, w.Draft().Step)
}

func TestRetreatFloorsAtStepOne(t *testing.T) {
	w := NewWizard(nil)
	w.Retreat()
	assert.Equal(t, StepLocation, w.Draft().Step)

	w.Update(DraftUpdate{Location: strPtr("southport")})
	w.Advance()
	w.Retreat()
	assert.Equal(t, StepLocation, w.Draft().Step)
}

func TestResetRestoresDefaults(t *testing.T) {
	w := wizardAtPassengerStep(t)
	fillPassengerDetails(w)
	w.Advance()

	w.Reset()

	assert.Equal(t, NewWizard(nil).Draft(), w.Draft())
	assert.Equal(t, StepLocation, w.Draft().Step)
	assert.Equal(t, 2, w.Draft().Passengers)
	assert.Nil(t, w.Draft().Tour)
}

func TestLocationName(t *testing.T) {
	w := NewWizard(nil)
	assert.Equal(t, "", w.LocationName())

	w.Update(DraftUpdate{Location: strPtr("st-simons")})
	assert.Equal(t, "St Simons Island, GA", w.LocationName())
}

func TestBuildRequest(t *testing.T) {
	w := wizardAtPassengerStep(t)
	fillPassengerDetails(w)
	assert.True(t, w.Advance())

	request, err := w.BuildRequest()
	assert.NoError(t, err)

	assert.Equal(t, "southport", request.Location)
	assert.Equal(t, "southport-oak-island", request.TourId)
	assert.Equal(t, "Oak Island", request.TourName)
	assert.Equal(t, 2, request.Passengers)
	assert.Equal(t, "250", request.TotalPrice)
	assert.Equal(t, model.StatusConfirmed, request.Status)
	if assert.NotNil(t, request.PreferredDate) {
		assert.Equal(t, "2026-10-01", *request.PreferredDate)
	}
	assert.Nil(t, request.SpecialRequests, "no special requests entered")
}

func TestBuildRequestBeforeConfirmStep(t *testing.T) {
	w := wizardAtPassengerStep(t)

	_, err := w.BuildRequest()
	assert.ErrorIs(t, err, ErrNotAtConfirmStep)
}
