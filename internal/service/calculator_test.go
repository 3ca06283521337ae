package service_test

import (
	"testing"

	"github.com/HullPerse/jekafood/internal/model"
	"github.com/HullPerse/jekafood/internal/service"
)

func TestQuantityToCalories(t *testing.T) {
	t.Parallel()
	apple := model.Preset{ID: "apple", Label: "Apple", Calories: 52, ValueType: model.Per100g}
	egg := model.Preset{ID: "egg", Label: "Egg", Calories: 80, ValueType: model.PerItem}

	if got := service.QuantityToCalories(apple, 150); got != 78 {
		t.Fatalf("expected 78 for 150g apple, got %d", got)
	}
	if got := service.QuantityToCalories(egg, 3); got != 240 {
		t.Fatalf("expected 240 for 3 eggs, got %d", got)
	}
	if got := service.QuantityToCalories(egg, 0.5); got != 40 {
		t.Fatalf("expected 40 for half an egg, got %d", got)
	}
	if got := service.QuantityToCalories(egg, -2); got != 0 {
		t.Fatalf("expected negative quantity to give 0, got %d", got)
	}
}

func TestQuantityToCaloriesReferenceQuantities(t *testing.T) {
	t.Parallel()
	for _, kcal := range []float64{0.4, 1, 52, 52.5, 99.49, 250.5, 897} {
		per100 := model.Preset{Calories: kcal, ValueType: model.Per100g}
		perItem := model.Preset{Calories: kcal, ValueType: model.PerItem}
		want := service.QuantityToCalories(perItem, 1)
		if got := service.QuantityToCalories(per100, 100); got != want {
			t.Fatalf("100g of %v: expected %d, got %d", kcal, want, got)
		}
		if got := service.QuantityToCalories(per100, 0); got != 0 {
			t.Fatalf("0g of %v: expected 0, got %d", kcal, got)
		}
		if got := service.QuantityToCalories(perItem, 0); got != 0 {
			t.Fatalf("0 items of %v: expected 0, got %d", kcal, got)
		}
	}
	if got := service.QuantityToCalories(model.Preset{Calories: 52.5, ValueType: model.PerItem}, 1); got != 53 {
		t.Fatalf("expected half to round up, got %d", got)
	}
}
