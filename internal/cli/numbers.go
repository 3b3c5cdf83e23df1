package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"bingotrack/internal/forms"
	"bingotrack/internal/models"
)

// Refresh re-fetches the vendor's collection from the backend. Every mutation
// ends here; the local slice is never patched in place.
func (a *App) Refresh(ctx context.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	records, err := a.numbers.FetchAll(ctx, a.vendorID())
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	a.records = records
	return nil
}

// List prints the current view, split into sold and available sections. The
// view is recomputed from the stored collection on every call.
func (a *App) List(ctx context.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	view := a.viewer.View(a.records, a.filter, a.sortBy)
	sold, available := models.Partition(view)

	printlnFn(fmt.Sprintf("Sold (%d):", len(sold)))
	for _, r := range sold {
		printlnFn(formatRecord(r))
	}
	printlnFn(fmt.Sprintf("Available (%d):", len(available)))
	for _, r := range available {
		printlnFn(formatRecord(r))
	}
	return nil
}

// Search sets the free-text filter. An empty entry clears it.
func (a *App) Search(ctx context.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	text, err := getSimpleText(a.reader, "Search by client or number (empty clears)", os.Stdout)
	if err != nil {
		return err
	}
	a.filter.SearchText = text
	return a.List(ctx)
}

// Months sets the installments range filter. Empty entries restore the
// unbounded defaults.
func (a *App) Months(ctx context.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	start, err := a.promptMonth("From month (0-12, empty for no lower bound)", 0)
	if err != nil {
		return err
	}
	end, err := a.promptMonth("To month (0-12, empty for no upper bound)", models.MaxInstallments)
	if err != nil {
		return err
	}
	if start > end {
		printlnFn("Error: the range start cannot exceed its end.")
		return nil
	}

	a.filter.StartMonth = start
	a.filter.EndMonth = end
	return a.List(ctx)
}

// Sort switches the sort key, or flips the direction when the key is already
// active, mirroring a tap on an already-selected column header.
func (a *App) Sort(ctx context.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	choice, err := getSimpleText(a.reader, "Sort by (number, client, months)", os.Stdout)
	if err != nil {
		return err
	}

	var key models.SortKey
	switch strings.ToLower(choice) {
	case "number":
		key = models.SortByNumber
	case "client":
		key = models.SortByClient
	case "months":
		key = models.SortByInstallments
	default:
		printlnFn("Unknown sort key:", choice)
		return nil
	}

	if a.sortBy.Key == key {
		a.sortBy.Ascending = !a.sortBy.Ascending
	} else {
		a.sortBy = models.SortCriteria{Key: key, Ascending: true}
	}
	return a.List(ctx)
}

// Counts prints the sold/available tallies of the current view, so the
// numbers always agree with what List shows under the active filter.
func (a *App) Counts(ctx context.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	view := a.viewer.View(a.records, a.filter, a.sortBy)
	sold, available := models.Partition(view)
	printlnFn(fmt.Sprintf("Sold: %d  Available: %d  Total: %d", len(sold), len(available), len(view)))
	return nil
}

// Add collects numbers one per line into an add form and submits them as a
// batch. Out-of-range entries are rejected at entry time and re-prompted.
func (a *App) Add(ctx context.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	form := forms.NewAddForm()
	idx := 0
	for {
		prompt := fmt.Sprintf("Number %d (%d-%d, empty to submit)", idx+1, models.MinNumber, models.MaxNumber)
		value, err := getSimpleText(a.reader, prompt, os.Stdout)
		if err != nil {
			return err
		}
		if value == "" {
			break
		}
		if err := form.SetSlot(idx, value); err != nil {
			printlnFn("Error:", err.Error())
			continue
		}
		if err := form.Append(); err != nil {
			printlnFn(err.Error())
			break
		}
		idx++
	}

	msg, err := form.Submit(ctx, a.numbers, a.vendorID())
	if err != nil {
		if errors.Is(err, forms.ErrNothingToAdd) {
			printlnFn("Nothing to add.")
			return nil
		}
		printlnFn("Error:", err.Error())
		return err
	}

	printlnFn(msg)
	return a.Refresh(ctx)
}

// Edit selects a record by number and walks through client, status and the
// installments stepper. Empty entries keep the current value.
func (a *App) Edit(ctx context.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	rec, ok, err := a.pickRecord("Number to edit")
	if err != nil || !ok {
		return err
	}

	form := forms.NewEditForm(rec)

	clientName, err := getSimpleText(a.reader, fmt.Sprintf("Client [%s] (empty keeps current)", rec.ClientDisplay()), os.Stdout)
	if err != nil {
		return err
	}
	if clientName != "" {
		form.SetClient(clientName)
	}

	status, err := getSimpleText(a.reader, fmt.Sprintf("Status [%s] (empty keeps current)", form.Status()), os.Stdout)
	if err != nil {
		return err
	}
	if status != "" {
		form.SetStatus(status)
	}

stepper:
	for {
		prompt := fmt.Sprintf("Installments paid: %s. '+' raises, '-' lowers, empty accepts",
			models.MonthName(form.Installments()))
		step, err := getSimpleText(a.reader, prompt, os.Stdout)
		if err != nil {
			return err
		}
		switch step {
		case "+":
			form.Increment()
		case "-":
			form.Decrement()
		case "":
			break stepper
		default:
			printlnFn("Use '+', '-' or an empty line.")
		}
	}

	msg, err := form.Submit(ctx, a.numbers, a.vendorID())
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	printlnFn(msg)
	return a.Refresh(ctx)
}

// Delete removes a record after confirmation. The backend message is shown
// either way and the collection is re-fetched regardless of the outcome.
func (a *App) Delete(ctx context.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	rec, ok, err := a.pickRecord("Number to delete")
	if err != nil || !ok {
		return err
	}

	confirmed, err := GetConfirm(a.reader, fmt.Sprintf("Delete number %s?", rec.PaddedNumber()), os.Stdout)
	if err != nil {
		return err
	}
	if !confirmed {
		printlnFn("Cancelled.")
		return nil
	}

	msg, err := a.numbers.DeleteNumber(ctx, a.vendorID(), rec.Number)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	printlnFn(msg)
	return a.Refresh(ctx)
}

// pickRecord prompts for a number and looks it up in the stored collection.
// ok is false when the input was invalid or the number is not in the
// collection; both cases are reported to the user, not returned as errors.
func (a *App) pickRecord(prompt string) (models.NumberRecord, bool, error) {
	raw, err := getSimpleText(a.reader, prompt, os.Stdout)
	if err != nil {
		return models.NumberRecord{}, false, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || !models.ValidNumber(n) {
		printlnFn("Error:", fmt.Sprintf("enter a number between %d and %d", models.MinNumber, models.MaxNumber))
		return models.NumberRecord{}, false, nil
	}
	for _, r := range a.records {
		if r.Number == n {
			return r, true, nil
		}
	}
	printlnFn("No such number in your collection.")
	return models.NumberRecord{}, false, nil
}

func (a *App) promptMonth(prompt string, def int) (int, error) {
	raw, err := getSimpleText(a.reader, prompt, os.Stdout)
	if err != nil {
		return 0, err
	}
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 || n > models.MaxInstallments {
		printlnFn("Error:", fmt.Sprintf("months run from 0 to %d", models.MaxInstallments))
		return def, nil
	}
	return n, nil
}

func formatRecord(r models.NumberRecord) string {
	return fmt.Sprintf("  %s  %-25s %-11s %s",
		r.PaddedNumber(), r.ClientDisplay(), r.Status, r.InstallmentsDisplay())
}
