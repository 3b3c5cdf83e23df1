// Package forms holds the editable draft state behind the add and edit
// screens: slot management and field validation happen here, submission is
// delegated to the number service. A busy flag on each form is the only
// admission control: while a submission is in flight the form refuses a
// second one.
package forms

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"bingotrack/internal/models"
)

// MaxSlots caps how many numbers one add submission may carry.
const MaxSlots = 20

var (
	ErrSlotLimit    = fmt.Errorf("no more than %d numbers per submission", MaxSlots)
	ErrLastSlot     = errors.New("at least one slot must remain")
	ErrSlotRange    = fmt.Errorf("number must be between %d and %d", models.MinNumber, models.MaxNumber)
	ErrSlotIndex    = errors.New("no such slot")
	ErrBusy         = errors.New("a submission is already in progress")
	ErrNothingToAdd = errors.New("enter at least one number")
)

// Submitter is the slice of the number service the add form needs.
type Submitter interface {
	AddNumbers(ctx context.Context, vendorID int64, rawList string) (string, error)
}

// AddForm is an ordered list of draft number strings. It starts with a single
// empty slot; slots hold only values that passed range validation (or are
// empty).
type AddForm struct {
	slots []string
	busy  bool
}

// NewAddForm returns a form with one empty slot.
func NewAddForm() *AddForm {
	return &AddForm{slots: []string{""}}
}

// Slots returns a copy of the current draft slots.
func (f *AddForm) Slots() []string {
	return append([]string(nil), f.slots...)
}

// Busy reports whether a submission is in flight.
func (f *AddForm) Busy() bool {
	return f.busy
}

// Append adds an empty slot, refusing past the cap.
func (f *AddForm) Append() error {
	if len(f.slots) >= MaxSlots {
		return ErrSlotLimit
	}
	f.slots = append(f.slots, "")
	return nil
}

// Remove deletes the slot at index i. The last remaining slot cannot be
// removed.
func (f *AddForm) Remove(i int) error {
	if i < 0 || i >= len(f.slots) {
		return ErrSlotIndex
	}
	if len(f.slots) == 1 {
		return ErrLastSlot
	}
	f.slots = append(f.slots[:i], f.slots[i+1:]...)
	return nil
}

// SetSlot stores value in slot i. Empty clears the slot; anything else must
// be an integer inside the sellable range, otherwise the edit is rejected and
// the slot keeps its previous value.
func (f *AddForm) SetSlot(i int, value string) error {
	if i < 0 || i >= len(f.slots) {
		return ErrSlotIndex
	}
	value = strings.TrimSpace(value)
	if value == "" {
		f.slots[i] = ""
		return nil
	}
	n, err := strconv.Atoi(value)
	if err != nil || !models.ValidNumber(n) {
		return ErrSlotRange
	}
	f.slots[i] = value
	return nil
}

// Submit sends every non-empty, in-range slot in padded form through the
// number service. On success the form resets to a single empty slot. A
// submission already in flight is refused with ErrBusy.
func (f *AddForm) Submit(ctx context.Context, svc Submitter, vendorID int64) (string, error) {
	if f.busy {
		return "", ErrBusy
	}
	f.busy = true
	defer func() { f.busy = false }()

	tokens := make([]string, 0, len(f.slots))
	for _, slot := range f.slots {
		slot = strings.TrimSpace(slot)
		if slot == "" {
			continue
		}
		n, err := strconv.Atoi(slot)
		if err != nil || !models.ValidNumber(n) {
			continue
		}
		tokens = append(tokens, models.PadToken(slot))
	}
	if len(tokens) == 0 {
		return "", ErrNothingToAdd
	}

	msg, err := svc.AddNumbers(ctx, vendorID, strings.Join(tokens, ","))
	if err != nil {
		return "", err
	}

	f.slots = []string{""}
	return msg, nil
}
