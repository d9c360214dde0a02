// Package wizard implements the four-step booking flow: pick a location, pick
// a tour, enter passenger and contact details, confirm and submit.
package wizard

import (
	"context"
	"errors"
	"strconv"
	"sync"

	"go.uber.org/zap"

	"github.com/Jackcomputers-app/flyhightide/catalog"
	"github.com/Jackcomputers-app/flyhightide/model"
	"github.com/Jackcomputers-app/flyhightide/utils"
)

const (
	StepLocation   = 1
	StepTour       = 2
	StepPassengers = 3
	StepConfirm    = 4
)

var (
	// ErrNotAtConfirmStep is returned by Submit before the flow reaches step 4.
	ErrNotAtConfirmStep = errors.New("booking is not at the confirmation step")
	// ErrSubmissionInFlight is returned when Submit is called while an earlier
	// Submit on the same wizard has not finished yet.
	ErrSubmissionInFlight = errors.New("a submission is already in flight")
)

// Draft holds the in-progress selections for one booking session. It is never
// persisted; it either becomes a BookingRequest or gets reset.
type Draft struct {
	Step              int
	Location          string
	Tour              *model.Tour
	Passengers        int
	TotalWeight       int
	LeadPassengerName string
	ContactEmail      string
	ContactPhone      string
	PreferredDate     string
	SpecialRequests   string
}

func initialDraft() Draft {
	return Draft{Step: StepLocation, Passengers: 2}
}

// DraftUpdate carries a partial set of draft fields; nil fields are left
// untouched by Update.
type DraftUpdate struct {
	Location          *string
	Tour              *model.Tour
	Passengers        *int
	TotalWeight       *int
	LeadPassengerName *string
	ContactEmail      *string
	ContactPhone      *string
	PreferredDate     *string
	SpecialRequests   *string
}

// requirement is one per-step precondition. A step may be entered only when
// every requirement for it holds.
type requirement func(d Draft) bool

var stepRequirements = map[int][]requirement{
	StepTour: {
		func(d Draft) bool { return d.Location != "" },
	},
	StepPassengers: {
		func(d Draft) bool { return d.Tour != nil },
	},
	StepConfirm: {
		func(d Draft) bool { return d.Tour != nil && PassengersValidation(*d.Tour, d.Passengers) == nil },
		func(d Draft) bool { return d.Tour != nil && TotalWeightValidation(*d.Tour, d.TotalWeight) == nil },
		func(d Draft) bool {
			return ContactInfoValidation(d.LeadPassengerName, d.ContactEmail, d.ContactPhone) == nil
		},
		func(d Draft) bool { return d.PreferredDate != "" },
	},
}

// Wizard is the booking flow state machine for a single user session. Apart
// from Submit, which performs one network call, every operation is a local
// state mutation.
type Wizard struct {
	mu         sync.Mutex
	draft      Draft
	client     *Client
	submitting bool
	logger     *zap.Logger
}

func NewWizard(client *Client) *Wizard {
	return &Wizard{
		draft:  initialDraft(),
		client: client,
		logger: utils.GetLogger(),
	}
}

// Draft returns a copy of the current draft state.
func (w *Wizard) Draft() Draft {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.draft
}

// Update merges the non-nil fields of the update into the draft. No validation
// happens here; guards are checked on Advance and Submit only.
func (w *Wizard) Update(update DraftUpdate) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if update.Location != nil {
		w.draft.Location = *update.Location
	}
	if update.Tour != nil {
		w.draft.Tour = update.Tour
	}
	if update.Passengers != nil {
		w.draft.Passengers = *update.Passengers
	}
	if update.TotalWeight != nil {
		w.draft.TotalWeight = *update.TotalWeight
	}
	if update.LeadPassengerName != nil {
		w.draft.LeadPassengerName = *update.LeadPassengerName
	}
	if update.ContactEmail != nil {
		w.draft.ContactEmail = *update.ContactEmail
	}
	if update.ContactPhone != nil {
		w.draft.ContactPhone = *update.ContactPhone
	}
	if update.PreferredDate != nil {
		w.draft.PreferredDate = *update.PreferredDate
	}
	if update.SpecialRequests != nil {
		w.draft.SpecialRequests = *update.SpecialRequests
	}
}

// CanProceedToStep reports whether the draft satisfies every requirement for
// entering the given step.
func (w *Wizard) CanProceedToStep(step int) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return canProceed(w.draft, step)
}

func canProceed(d Draft, step int) bool {
	for _, met := range stepRequirements[step] {
		if !met(d) {
			return false
		}
	}
	return true
}

// Advance moves to the next step when the guard for it passes and reports
// whether the step changed. A false return is the disabled-button case, not an
// error.
func (w *Wizard) Advance() bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.draft.Step >= StepConfirm {
		return false
	}
	if !canProceed(w.draft, w.draft.Step+1) {
		w.logger.Debug("booking step blocked by guard", zap.Int("step", w.draft.Step))
		return false
	}
	w.draft.Step++
	return true
}

// Retreat moves one step back, never below step 1.
func (w *Wizard) Retreat() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.draft.Step > StepLocation {
		w.draft.Step--
	}
}

// Reset restores the draft to its defaults. Called after a successful
// submission or when the user abandons the flow.
func (w *Wizard) Reset() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.draft = initialDraft()
}

// TotalPrice returns the current price of the draft, 0 when no tour is
// selected yet.
func (w *Wizard) TotalPrice() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return TotalPrice(w.draft.Tour, w.draft.Passengers)
}

// LocationName resolves the selected location id to its display name.
func (w *Wizard) LocationName() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	location, ok := catalog.LocationById(w.draft.Location)
	if !ok {
		return ""
	}
	return location.Name
}

// BuildRequest turns the draft into the submission payload, resolving the tour
// to its id and name. It requires the flow to have reached the confirm step.
func (w *Wizard) BuildRequest() (model.BookingRequest, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return buildRequest(w.draft)
}

func buildRequest(d Draft) (model.BookingRequest, error) {
	if d.Step != StepConfirm {
		return model.BookingRequest{}, ErrNotAtConfirmStep
	}
	if d.Tour == nil {
		return model.BookingRequest{}, errors.New("no tour selected")
	}

	request := model.BookingRequest{
		Location:          d.Location,
		TourId:            d.Tour.Id,
		TourName:          d.Tour.Name,
		Passengers:        d.Passengers,
		TotalWeight:       d.TotalWeight,
		LeadPassengerName: d.LeadPassengerName,
		ContactEmail:      d.ContactEmail,
		ContactPhone:      d.ContactPhone,
		TotalPrice:        strconv.Itoa(TotalPrice(d.Tour, d.Passengers)),
		Status:            model.StatusConfirmed,
	}
	if d.PreferredDate != "" {
		date := d.PreferredDate
		request.PreferredDate = &date
	}
	if d.SpecialRequests != "" {
		requests := d.SpecialRequests
		request.SpecialRequests = &requests
	}
	return request, nil
}

// Submit sends the draft to the booking service. Exactly one submission may be
// in flight at a time; a second call in that window gets
// ErrSubmissionInFlight. On success the draft is reset, on failure it is left
// untouched so the user can retry without re-entering anything.
func (w *Wizard) Submit(ctx context.Context) (model.Booking, error) {
	w.mu.Lock()
	if w.submitting {
		w.mu.Unlock()
		return model.Booking{}, ErrSubmissionInFlight
	}
	request, err := buildRequest(w.draft)
	if err != nil {
		w.mu.Unlock()
		return model.Booking{}, err
	}
	w.submitting = true
	w.mu.Unlock()

	defer func() {
		w.mu.Lock()
		w.submitting = false
		w.mu.Unlock()
	}()

	booking, err := w.client.CreateBooking(ctx, request)
	if err != nil {
		w.logger.Warn("booking submission failed", zap.Error(err))
		return model.Booking{}, err
	}

	w.logger.Info("booking confirmed",
		zap.Int64("id", booking.Id),
		zap.String("tour", booking.TourId))
	w.Reset()
	return booking, nil
}
