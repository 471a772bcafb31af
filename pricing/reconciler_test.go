package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"padaria-backoffice/models"
)

func fptr(v float64) *float64 { return &v }

func affectedRow(id string, productPrice float64, customPrice *float64) models.AffectedCustomer {
	return models.AffectedCustomer{
		CustomerProductID: id,
		ProductPrice:      productPrice,
		CustomPrice:       customPrice,
		EffectivePrice:    EffectivePrice(customPrice, productPrice),
		HasCustomPrice:    HasCustomPrice(customPrice),
	}
}

func TestEffectivePrice(t *testing.T) {
	t.Run("no override tracks product price", func(t *testing.T) {
		assert.Equal(t, 10.0, EffectivePrice(nil, 10.0))
		assert.False(t, HasCustomPrice(nil))
	})

	t.Run("override wins over product price", func(t *testing.T) {
		assert.Equal(t, 9.5, EffectivePrice(fptr(9.5), 10.0))
		assert.True(t, HasCustomPrice(fptr(9.5)))
	})
}

func TestPriceChanged(t *testing.T) {
	assert.False(t, PriceChanged(10.0, 10.0))
	assert.True(t, PriceChanged(10.0, 12.0))
	assert.True(t, PriceChanged(12.0, 10.0))

	// Exactly the epsilon is not a change; just past it is.
	assert.False(t, PriceChanged(10.0, 10.001))
	assert.True(t, PriceChanged(10.0, 10.0011))
	assert.False(t, PriceChanged(10.0, 9.999))
}

func TestResolveUpdateAlwaysClears(t *testing.T) {
	rows := []models.AffectedCustomer{
		affectedRow("a", 10.0, nil),
		affectedRow("b", 10.0, fptr(9.5)),
		affectedRow("c", 10.0, fptr(15.0)),
	}
	for _, row := range rows {
		update := Resolve(row, Choice{Disposition: DispositionUpdate})
		assert.Equal(t, ActionUpdate, update.Action)
		assert.Nil(t, TargetCustomPrice(update), "UPDATE must clear the override regardless of prior state")
	}
}

func TestResolveKeepFreezesOldEffectivePrice(t *testing.T) {
	t.Run("old effective price came from the override", func(t *testing.T) {
		update := Resolve(affectedRow("b", 10.0, fptr(9.5)), Choice{Disposition: DispositionKeep})
		require.NotNil(t, update.NewPrice)
		assert.Equal(t, 9.5, *update.NewPrice)
		assert.True(t, update.KeepOldPrice)
	})

	t.Run("old effective price came from the product", func(t *testing.T) {
		// The row had no custom price; KEEP still writes an explicit one.
		update := Resolve(affectedRow("a", 10.0, nil), Choice{Disposition: DispositionKeep})
		target := TargetCustomPrice(update)
		require.NotNil(t, target)
		assert.Equal(t, 10.0, *target)
	})
}

func TestResolveCustom(t *testing.T) {
	row := affectedRow("c", 10.0, fptr(15.0))

	t.Run("supplied value is written", func(t *testing.T) {
		update := Resolve(row, Choice{Disposition: DispositionCustom, CustomPrice: fptr(11.0)})
		target := TargetCustomPrice(update)
		require.NotNil(t, target)
		assert.Equal(t, 11.0, *target)
	})

	t.Run("blank value falls back to the old effective price", func(t *testing.T) {
		update := Resolve(row, Choice{Disposition: DispositionCustom})
		target := TargetCustomPrice(update)
		require.NotNil(t, target)
		assert.Equal(t, 15.0, *target)
	})
}

func TestDispositionSetDefaultsToUpdate(t *testing.T) {
	rows := []models.AffectedCustomer{
		affectedRow("a", 10.0, nil),
		affectedRow("b", 10.0, fptr(9.5)),
	}
	set := NewDispositionSet(rows)
	require.Len(t, set, 2)
	for id, choice := range set {
		assert.Equal(t, DispositionUpdate, choice.Disposition, "row %s must default to UPDATE", id)
	}
}

func TestBulkThenSingleOverride(t *testing.T) {
	rows := []models.AffectedCustomer{
		affectedRow("a", 10.0, nil),
		affectedRow("b", 10.0, fptr(9.5)),
		affectedRow("c", 10.0, fptr(15.0)),
	}

	// "Atualizar Todos" then one row switched to CUSTOM: exactly one CUSTOM
	// row, the rest UPDATE.
	set := NewDispositionSet(rows)
	set.SetAll(DispositionUpdate)
	set.Set("c", Choice{Disposition: DispositionCustom, CustomPrice: fptr(11.0)})

	summary := Summarize(ResolveAll(rows, set))
	assert.Equal(t, Summary{Updated: 2, Kept: 0, Custom: 1}, summary)

	// "Manter Todos" overrides every prior per-row choice.
	set.SetAll(DispositionKeep)
	summary = Summarize(ResolveAll(rows, set))
	assert.Equal(t, Summary{Updated: 0, Kept: 3, Custom: 0}, summary)
}

func TestReconciliationScenario(t *testing.T) {
	// Product wholesale moves 10.00 -> 12.00. Customer A has no custom price,
	// B has 9.50, C has 15.00. Admin chooses UPDATE for A, KEEP for B,
	// CUSTOM(11.00) for C.
	rows := []models.AffectedCustomer{
		affectedRow("a", 10.0, nil),
		affectedRow("b", 10.0, fptr(9.5)),
		affectedRow("c", 10.0, fptr(15.0)),
	}
	require.True(t, PriceChanged(10.0, 12.0))

	set := NewDispositionSet(rows)
	set.Set("b", Choice{Disposition: DispositionKeep})
	set.Set("c", Choice{Disposition: DispositionCustom, CustomPrice: fptr(11.0)})

	updates := ResolveAll(rows, set)
	require.Len(t, updates, 3)

	byID := make(map[string]models.CustomerUpdate, len(updates))
	for _, u := range updates {
		byID[u.CustomerProductID] = u
	}

	// A: cleared, tracks the new product price automatically.
	assert.Nil(t, TargetCustomPrice(byID["a"]))

	// B: frozen explicitly at 9.50.
	targetB := TargetCustomPrice(byID["b"])
	require.NotNil(t, targetB)
	assert.Equal(t, 9.5, *targetB)

	// C: custom 11.00.
	targetC := TargetCustomPrice(byID["c"])
	require.NotNil(t, targetC)
	assert.Equal(t, 11.0, *targetC)

	summary := Summarize(updates)
	assert.Equal(t, Summary{Updated: 1, Kept: 1, Custom: 1}, summary)
	assert.Equal(t, "1 customers updated to the new price, 1 kept their previous price, 1 set to a custom price", summary.Message())
}

func TestUnchangedPriceNeedsNoReconciliation(t *testing.T) {
	// Saving the dialog with an unchanged price must not trigger the batch
	// endpoint; the gate is PriceChanged.
	assert.False(t, PriceChanged(10.0, 10.0))
}

func TestResolveAllWithEmptyRows(t *testing.T) {
	// Zero customer_products rows: nothing to reconcile, not an error.
	updates := ResolveAll(nil, NewDispositionSet(nil))
	assert.Empty(t, updates)
	assert.Equal(t, Summary{}, Summarize(updates))
}
