package pricing

import (
	"fmt"
	"math"

	"padaria-backoffice/models"
)

// PriceEpsilon is the tolerance used when comparing prices. Currency values
// round-trip through JSON as floats, so straight equality would flag
// unchanged prices as changed.
const PriceEpsilon = 0.001

// Disposition is the admin's chosen resolution for one customer's override
// when the underlying product price changes.
type Disposition string

const (
	// DispositionUpdate adopts the product's new price: the override's
	// custom price is cleared and the effective price tracks the product.
	DispositionUpdate Disposition = "UPDATE"
	// DispositionKeep freezes the override at its previous effective price
	// by writing it as an explicit custom price.
	DispositionKeep Disposition = "KEEP"
	// DispositionCustom sets an admin-supplied price on the override.
	DispositionCustom Disposition = "CUSTOM"
)

// Wire actions accepted by the affected-customers batch endpoint.
// CUSTOM travels as KEEP with keepOldPrice=false and an explicit newPrice.
const (
	ActionUpdate = "UPDATE"
	ActionKeep   = "KEEP"
)

// PriceChanged reports whether the candidate price differs from the original
// beyond the epsilon. A difference of exactly PriceEpsilon is not a change.
func PriceChanged(original, candidate float64) bool {
	return math.Abs(candidate-original) > PriceEpsilon
}

// EffectivePrice returns the price actually charged to a customer: the
// override's custom price if set, otherwise the product's wholesale price.
func EffectivePrice(customPrice *float64, productPrice float64) float64 {
	if customPrice != nil {
		return *customPrice
	}
	return productPrice
}

// HasCustomPrice reports whether an override carries an explicit price.
func HasCustomPrice(customPrice *float64) bool {
	return customPrice != nil
}

// Choice pairs a disposition with the admin-supplied price for CUSTOM rows.
type Choice struct {
	Disposition Disposition
	CustomPrice *float64
}

// DispositionSet holds the per-row disposition choices for one reconciliation
// pass, keyed by override id. Every row starts as UPDATE so a plain save
// adopts the new price for everyone.
type DispositionSet map[string]Choice

// NewDispositionSet builds a set covering every affected row, default-filled
// with UPDATE.
func NewDispositionSet(rows []models.AffectedCustomer) DispositionSet {
	set := make(DispositionSet, len(rows))
	for _, row := range rows {
		set[row.CustomerProductID] = Choice{Disposition: DispositionUpdate}
	}
	return set
}

// Set records the choice for a single row.
func (s DispositionSet) Set(customerProductID string, choice Choice) {
	s[customerProductID] = choice
}

// SetAll applies one disposition to every row, overriding prior per-row
// choices (last write wins over the whole set).
func (s DispositionSet) SetAll(d Disposition) {
	for id := range s {
		s[id] = Choice{Disposition: d}
	}
}

// Resolve maps one affected row plus its chosen disposition to the wire
// update the batch endpoint expects.
//   - UPDATE clears the custom price.
//   - KEEP writes the pre-change effective price as an explicit custom price,
//     even if the row previously had none.
//   - CUSTOM writes the supplied value, falling back to the pre-change
//     effective price when the admin left the field blank.
func Resolve(row models.AffectedCustomer, choice Choice) models.CustomerUpdate {
	oldEffective := row.EffectivePrice
	update := models.CustomerUpdate{
		CustomerProductID: row.CustomerProductID,
		OldPrice:          oldEffective,
	}

	switch choice.Disposition {
	case DispositionKeep:
		update.Action = ActionKeep
		update.KeepOldPrice = true
		price := oldEffective
		update.NewPrice = &price
	case DispositionCustom:
		update.Action = ActionKeep
		if choice.CustomPrice != nil {
			update.NewPrice = choice.CustomPrice
		} else {
			price := oldEffective
			update.NewPrice = &price
		}
	default:
		update.Action = ActionUpdate
	}

	return update
}

// ResolveAll resolves every affected row against the disposition set. Rows
// missing from the set get the default UPDATE disposition.
func ResolveAll(rows []models.AffectedCustomer, set DispositionSet) []models.CustomerUpdate {
	updates := make([]models.CustomerUpdate, 0, len(rows))
	for _, row := range rows {
		choice, ok := set[row.CustomerProductID]
		if !ok {
			choice = Choice{Disposition: DispositionUpdate}
		}
		updates = append(updates, Resolve(row, choice))
	}
	return updates
}

// TargetCustomPrice returns the custom price the override must end up with
// after applying one wire update: nil for UPDATE rows, the resolved explicit
// price for KEEP/CUSTOM rows.
func TargetCustomPrice(u models.CustomerUpdate) *float64 {
	if u.Action == ActionUpdate {
		return nil
	}
	if u.NewPrice != nil {
		return u.NewPrice
	}
	// Blank custom price falls back to the pre-change effective price.
	price := u.OldPrice
	return &price
}

// Summary counts the batch outcome per disposition kind.
type Summary struct {
	Updated int
	Kept    int
	Custom  int
}

// Summarize classifies wire updates: UPDATE rows adopt the new price, KEEP
// rows froze the old effective price, the rest carry a custom price.
func Summarize(updates []models.CustomerUpdate) Summary {
	var s Summary
	for _, u := range updates {
		if u.Action == ActionUpdate {
			s.Updated++
			continue
		}
		target := TargetCustomPrice(u)
		if u.KeepOldPrice || (target != nil && !PriceChanged(u.OldPrice, *target)) {
			s.Kept++
		} else {
			s.Custom++
		}
	}
	return s
}

// Message renders the batch summary for the admin toast.
func (s Summary) Message() string {
	return fmt.Sprintf("%d customers updated to the new price, %d kept their previous price, %d set to a custom price",
		s.Updated, s.Kept, s.Custom)
}
