// Package wizard drives the four-step booking flow: guest details, booking
// details, payment and confirmation.
package wizard

import (
	"context"
	"strings"
	"sync"
	"time"

	"experience-booking/internal/domain/booking"
	reqdto "experience-booking/internal/handler/dto/request"
	resdto "experience-booking/internal/handler/dto/response"
	"experience-booking/internal/pkg/errs"
	"experience-booking/internal/pkg/money"
	"experience-booking/internal/pkg/ptr"

	"github.com/google/uuid"
)

const (
	DefaultGuests = 1
	MaxGuests     = booking.MaxGuests
	initialStatus = "pending"
)

var (
	ErrSubmissionInFlight = errs.New("a booking submission is already in flight")
	ErrNotReady           = errs.New("booking is not ready to submit")
	ErrGuestsOutOfRange   = errs.New("guests out of range")
	ErrUnknownPayment     = errs.New("unknown payment method")
)

type PaymentMethod string

const (
	PaymentUPI        PaymentMethod = "UPI"
	PaymentCreditCard PaymentMethod = "Credit Card"
	PaymentDebitCard  PaymentMethod = "Debit Card"
)

func (p PaymentMethod) IsValid() bool {
	switch p {
	case PaymentUPI, PaymentCreditCard, PaymentDebitCard:
		return true
	default:
		return false
	}
}

// Experience is what the wizard needs to know about the item being booked.
type Experience struct {
	ID             uuid.UUID
	Title          string
	PricePerPerson money.Money
}

// Submitter sends the finished booking. apiclient.Client implements it.
type Submitter interface {
	CreateBooking(ctx context.Context, req reqdto.CreateBookingRequest) (*resdto.BookingResponse, error)
}

type Form struct {
	FirstName       string
	LastName        string
	Email           string
	Phone           string
	Guests          int
	Date            time.Time
	SpecialRequests string
	PaymentMethod   PaymentMethod
	AcceptTerms     bool
}

type Option func(*Wizard)

func WithMaxGuests(n int) Option {
	return func(w *Wizard) {
		if n >= DefaultGuests && n <= MaxGuests {
			w.maxGuests = n
		}
	}
}

// Wizard is safe for concurrent use. Every instance starts empty; a finished
// wizard stays in StepConfirmation and a new booking needs a new instance.
type Wizard struct {
	mu         sync.Mutex
	experience Experience
	submitter  Submitter
	maxGuests  int

	step       Step
	form       Form
	submitting bool
	booking    *resdto.BookingResponse
	lastErr    error
}

func New(exp Experience, submitter Submitter, opts ...Option) *Wizard {
	w := &Wizard{
		experience: exp,
		submitter:  submitter,
		maxGuests:  MaxGuests,
		step:       StepGuestDetails,
		form:       Form{Guests: DefaultGuests},
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

func (w *Wizard) Step() Step {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.step
}

// Form returns a copy of the current field values.
func (w *Wizard) Form() Form {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.form
}

func (w *Wizard) SetFirstName(v string) { w.update(func(f *Form) { f.FirstName = v }) }
func (w *Wizard) SetLastName(v string)  { w.update(func(f *Form) { f.LastName = v }) }
func (w *Wizard) SetEmail(v string)     { w.update(func(f *Form) { f.Email = v }) }
func (w *Wizard) SetPhone(v string)     { w.update(func(f *Form) { f.Phone = v }) }
func (w *Wizard) SetDate(v time.Time)   { w.update(func(f *Form) { f.Date = v }) }

func (w *Wizard) SetSpecialRequests(v string) {
	w.update(func(f *Form) { f.SpecialRequests = v })
}

func (w *Wizard) SetAcceptTerms(v bool) { w.update(func(f *Form) { f.AcceptTerms = v }) }

func (w *Wizard) SetGuests(n int) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if n < DefaultGuests || n > w.maxGuests {
		return ErrGuestsOutOfRange
	}
	w.form.Guests = n
	return nil
}

func (w *Wizard) SetPaymentMethod(m PaymentMethod) error {
	if !m.IsValid() {
		return ErrUnknownPayment
	}
	w.update(func(f *Form) { f.PaymentMethod = m })
	return nil
}

func (w *Wizard) update(mutate func(*Form)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	mutate(&w.form)
}

// DisplayTotal is advisory; the server recomputes the charge.
func (w *Wizard) DisplayTotal() (money.Money, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.experience.PricePerPerson.Times(w.form.Guests)
}

func (w *Wizard) CanNext() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.allowed(eventNext)
}

func (w *Wizard) Next() bool {
	return w.fire(eventNext)
}

func (w *Wizard) CanPrevious() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.allowed(eventPrevious)
}

func (w *Wizard) Previous() bool {
	return w.fire(eventPrevious)
}

func (w *Wizard) fire(ev event) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	t, ok := findTransition(w.step, ev)
	if !ok || (t.guard != nil && !t.guard(w)) {
		return false
	}
	w.step = t.to
	return true
}

func (w *Wizard) allowed(ev event) bool {
	t, ok := findTransition(w.step, ev)
	return ok && (t.guard == nil || t.guard(w))
}

func (w *Wizard) CanSubmit() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.paymentReady() && !w.submitting
}

func (w *Wizard) paymentReady() bool {
	return w.step == StepPayment && w.form.PaymentMethod.IsValid() && w.form.AcceptTerms
}

func (w *Wizard) Submitting() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.submitting
}

// Submit sends the booking once. A call made while another is in flight
// returns ErrSubmissionInFlight without reaching the submitter. A failure
// leaves the wizard on the payment step so the user can retry.
func (w *Wizard) Submit(ctx context.Context) (*resdto.BookingResponse, error) {
	w.mu.Lock()
	if w.submitting {
		w.mu.Unlock()
		return nil, ErrSubmissionInFlight
	}
	if !w.paymentReady() {
		w.mu.Unlock()
		return nil, ErrNotReady
	}
	w.submitting = true
	req := w.buildRequest()
	w.mu.Unlock()

	res, err := w.submitter.CreateBooking(ctx, req)

	w.mu.Lock()
	defer w.mu.Unlock()
	w.submitting = false
	if err != nil {
		w.lastErr = err
		return nil, err
	}
	w.lastErr = nil
	w.booking = res
	if t, ok := findTransition(w.step, eventSubmitted); ok {
		w.step = t.to
	}
	return res, nil
}

// Booking is the confirmed booking, nil until Submit succeeds.
func (w *Wizard) Booking() *resdto.BookingResponse {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.booking
}

// LastError is the error from the most recent failed Submit.
func (w *Wizard) LastError() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.lastErr
}

func (w *Wizard) buildRequest() reqdto.CreateBookingRequest {
	f := w.form
	name := strings.TrimSpace(strings.TrimSpace(f.FirstName) + " " + strings.TrimSpace(f.LastName))
	return reqdto.CreateBookingRequest{
		ExperienceID:    w.experience.ID.String(),
		CustomerName:    name,
		CustomerEmail:   strings.TrimSpace(f.Email),
		CustomerPhone:   strings.TrimSpace(f.Phone),
		BookingDate:     f.Date.UTC().Format(time.RFC3339),
		Guests:          f.Guests,
		SpecialRequests: ptr.NonEmpty(strings.TrimSpace(f.SpecialRequests)),
		Status:          initialStatus,
	}
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// ExperienceFromResponse adapts a catalog response for a new wizard.
func ExperienceFromResponse(r *resdto.ExperienceResponse) (Experience, error) {
	price, err := money.Parse(r.Price)
	if err != nil {
		return Experience{}, errs.Wrapf(err, "experience %s price", r.ID)
	}
	return Experience{ID: r.ID, Title: r.Title, PricePerPerson: price}, nil
}
