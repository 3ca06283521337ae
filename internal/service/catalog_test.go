package service_test

import (
	"testing"

	"github.com/HullPerse/jekafood/internal/service"
)

func TestPresetIconPalette(t *testing.T) {
	t.Parallel()
	if len(service.PresetIcons) != 356 {
		t.Fatalf("expected 356 palette icons, got %d", len(service.PresetIcons))
	}
	seen := make(map[string]struct{}, len(service.PresetIcons))
	for _, icon := range service.PresetIcons {
		if _, dup := seen[icon]; dup {
			t.Fatalf("duplicate palette icon %q", icon)
		}
		seen[icon] = struct{}{}
	}
	if service.PresetIcons[0] != service.DefaultPresetIcon {
		t.Fatalf("expected palette to open with the default icon, got %q", service.PresetIcons[0])
	}
	for _, icon := range []string{"brunch-dining", "kitchen", "food-bank", "restaurant-menu", "breakfast-dining"} {
		if _, err := service.NewPreset(service.CreatePresetInput{Label: "X", Icon: icon, Calories: 1}); err != nil {
			t.Fatalf("palette icon %q rejected: %v", icon, err)
		}
	}
	for _, icon := range []string{"egg", "rice-bowl", "rocket"} {
		if service.ValidPresetIcon(icon) {
			t.Fatalf("icon %q is not in the palette", icon)
		}
	}
}

func TestDisplayIcon(t *testing.T) {
	t.Parallel()
	if got := service.DisplayIcon("emoji-nature"); got != "emoji-nature" {
		t.Fatalf("expected stored icon untouched, got %q", got)
	}
	if got := service.DisplayIcon("  "); got != service.DefaultPresetIcon {
		t.Fatalf("expected default for missing icon, got %q", got)
	}
}

func TestIconForType(t *testing.T) {
	t.Parallel()
	if got := service.IconForType("Мясо"); got != "lunch-dining" {
		t.Fatalf("expected lunch-dining, got %q", got)
	}
	if got := service.IconForType("Apple"); got != service.DefaultFoodIcon {
		t.Fatalf("expected fallback icon, got %q", got)
	}
}
