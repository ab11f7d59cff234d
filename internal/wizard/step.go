package wizard

type Step int

const (
	StepGuestDetails Step = iota + 1
	StepBookingDetails
	StepPayment
	StepConfirmation
)

func (s Step) String() string {
	switch s {
	case StepGuestDetails:
		return "GuestDetails"
	case StepBookingDetails:
		return "BookingDetails"
	case StepPayment:
		return "Payment"
	case StepConfirmation:
		return "Confirmation"
	default:
		return "Unknown"
	}
}

type event int

const (
	eventNext event = iota
	eventPrevious
	eventSubmitted
)

// guard is evaluated with the wizard lock held.
type guard func(w *Wizard) bool

type transition struct {
	from  Step
	event event
	to    Step
	guard guard
}

// The flow is strictly linear. Payment -> Confirmation only happens through
// a successful Submit.
var transitions = []transition{
	{from: StepGuestDetails, event: eventNext, to: StepBookingDetails, guard: guestDetailsComplete},
	{from: StepBookingDetails, event: eventNext, to: StepPayment, guard: dateSelected},
	{from: StepBookingDetails, event: eventPrevious, to: StepGuestDetails},
	{from: StepPayment, event: eventPrevious, to: StepBookingDetails, guard: notSubmitting},
	{from: StepPayment, event: eventSubmitted, to: StepConfirmation},
}

func findTransition(from Step, ev event) (transition, bool) {
	for _, t := range transitions {
		if t.from == from && t.event == ev {
			return t, true
		}
	}
	return transition{}, false
}

func guestDetailsComplete(w *Wizard) bool {
	return !isBlank(w.form.FirstName) && !isBlank(w.form.LastName) && !isBlank(w.form.Email)
}

func dateSelected(w *Wizard) bool {
	return !w.form.Date.IsZero()
}

func notSubmitting(w *Wizard) bool {
	return !w.submitting
}
