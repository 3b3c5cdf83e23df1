package models

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortKey selects the field a view is ordered by.
type SortKey string

const (
	SortByNumber       SortKey = "number"
	SortByClient       SortKey = "client"
	SortByInstallments SortKey = "installmentsPaid"
)

// FilterCriteria narrows a collection to records whose client name or padded
// number contains SearchText (case-insensitive) and whose installments fall
// inside [StartMonth, EndMonth]. StartMonth 0 means no lower bound and
// EndMonth 12 no upper bound; use EmptyFilter for the all-inclusive value.
type FilterCriteria struct {
	SearchText string
	StartMonth int
	EndMonth   int
}

// EmptyFilter returns criteria that match every record.
func EmptyFilter() FilterCriteria {
	return FilterCriteria{StartMonth: 0, EndMonth: MaxInstallments}
}

// Matches reports whether r satisfies the criteria.
func (f FilterCriteria) Matches(r NumberRecord) bool {
	if f.SearchText != "" {
		q := strings.ToLower(f.SearchText)
		client := strings.ToLower(r.Client)
		if !strings.Contains(client, q) && !strings.Contains(r.PaddedNumber(), q) {
			return false
		}
	}
	return r.InstallmentsPaid >= f.StartMonth && r.InstallmentsPaid <= f.EndMonth
}

// SortCriteria orders a view by Key; Ascending false reverses the primary
// comparison. Ties on the primary key always fall back to number ascending,
// so a view's order is deterministic regardless of input order.
type SortCriteria struct {
	Key       SortKey
	Ascending bool
}

// DefaultSort orders by number ascending, the order the list opens with.
func DefaultSort() SortCriteria {
	return SortCriteria{Key: SortByNumber, Ascending: true}
}

// Viewer derives display views from a record collection. Client names are
// compared with a locale-aware collator; empty names sort as the empty
// string, not as the "Sin asignar" placeholder.
type Viewer struct {
	collator *collate.Collator
}

// NewViewer builds a Viewer collating client names for the given locale tag.
// An unparseable tag falls back to Spanish.
func NewViewer(locale string) *Viewer {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.Spanish
	}
	return &Viewer{collator: collate.New(tag, collate.IgnoreCase)}
}

// View returns the records matching filter, ordered per sortBy. The input
// slice is never modified; recomputing on every change is fine at this scale
// (a few hundred records), so nothing is memoized.
func (v *Viewer) View(records []NumberRecord, filter FilterCriteria, sortBy SortCriteria) []NumberRecord {
	out := make([]NumberRecord, 0, len(records))
	for _, r := range records {
		if filter.Matches(r) {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return v.less(out[i], out[j], sortBy)
	})
	return out
}

func (v *Viewer) less(a, b NumberRecord, s SortCriteria) bool {
	var c int
	switch s.Key {
	case SortByClient:
		c = v.collator.CompareString(a.Client, b.Client)
	case SortByInstallments:
		c = compareInt(a.InstallmentsPaid, b.InstallmentsPaid)
	default:
		c = compareInt(a.Number, b.Number)
	}
	if c == 0 {
		return a.Number < b.Number
	}
	if s.Ascending {
		return c < 0
	}
	return c > 0
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Partition splits records into the sold and available views, in input
// order. Status matching ignores case; every record lands in exactly one
// partition or, if its status is unrecognized, in neither.
func Partition(records []NumberRecord) (sold, available []NumberRecord) {
	for _, r := range records {
		switch {
		case r.Status.Is(StatusSold):
			sold = append(sold, r)
		case r.Status.Is(StatusAvailable):
			available = append(available, r)
		}
	}
	return sold, available
}
