package service

import "strings"

const (
	DefaultFoodIcon   = "restaurant"
	DefaultPresetIcon = "free-breakfast"
)

type FoodType struct {
	Label string `json:"label"`
	Icon  string `json:"icon"`
}

// FoodTypes are the built-in meal and product groups offered when logging
// food by hand.
var FoodTypes = []FoodType{
	{Label: "Завтрак", Icon: "free-breakfast"},
	{Label: "Обед", Icon: "restaurant"},
	{Label: "Ужин", Icon: "dinner-dining"},
	{Label: "Перекус", Icon: "cookie"},
	{Label: "Сладкое", Icon: "cake"},
	{Label: "Овощи", Icon: "eco"},
	{Label: "Фрукты", Icon: "nutrition"},
	{Label: "Мясо", Icon: "lunch-dining"},
	{Label: "Рыба и морепродукты", Icon: "set-meal"},
	{Label: "Молочные продукты", Icon: "local-drink"},
	{Label: "Напитки", Icon: "local-cafe"},
	{Label: "Хлебобулочные изделия", Icon: "bakery-dining"},
}

// PresetIcons is the Material icon palette offered when creating a preset.
// Stored presets may carry any icon; the palette only constrains new ones.
var PresetIcons = []string{
	"free-breakfast",
	"restaurant",
	"dinner-dining",
	"cookie",
	"cake",
	"eco",
	"nutrition",
	"set-meal",
	"local-drink",
	"local-cafe",
	"bakery-dining",
	"icecream",
	"fastfood",
	"local-pizza",
	"ramen-dining",
	"brunch-dining",
	"food-bank",
	"kitchen",
	"restaurant-menu",
	"breakfast-dining",
	"lunch-dining",
	"icecream-dining",
	"local-bar",
	"sports-bar",
	"smoking-rooms",
	"no-smoking",
	"smoke-free",
	"pool",
	"fitness-center",
	"sports-football",
	"sports-basketball",
	"sports-soccer",
	"sports-tennis",
	"sports-martial-arts",
	"sports-mma",
	"sports-handball",
	"sports-volleyball",
	"sports-baseball",
	"sports-cricket",
	"sports-rugby",
	"sports-hockey",
	"sports-golf",
	"sports-esports",
	"casino",
	"karaoke",
	"nightlife",
	"museum",
	"theater-comedy",
	"theater-movies",
	"concerts",
	"parks",
	"beach-access",
	"self-improvement",
	"spa",
	"salon",
	"beauty-shop",
	"pharmacy",
	"local-hospital",
	"medical-services",
	"health-and-safety",
	"home",
	"house",
	"apartment",
	"cottage",
	"yard",
	"garden",
	"pets",
	"pest",
	"cleaning-services",
	"local-laundry",
	"local-car-wash",
	"local-gas-station",
	"ev-station",
	"charging-station",
	"local-parking",
	"directions-car",
	"directions-bus",
	"directions-train",
	"directions-bike",
	"flight",
	"hotel",
	"hostel",
	"bed",
	"airline-seat-flat",
	"airline-seat-recline-extra",
	"room-service",
	"airport-shuttle",
	"car-rental",
	"tour",
	"map",
	"flag",
	"place",
	"location-on",
	"my-location",
	"near-me",
	"gps-fixed",
	"compass-calibration",
	"explore",
	"travel",
	"luggage",
	"backpack",
	"briefcase",
	"work",
	"work-outline",
	"business-center",
	"school",
	"library",
	"science",
	"biotech",
	"computer",
	"devices",
	"laptop",
	"phone-android",
	"phone-iphone",
	"tablet",
	"tv",
	"headphones",
	"speaker",
	"music-note",
	"audiotrack",
	"album",
	"queue-music",
	"radio",
	"video-library",
	"movie",
	"live-tv",
	"games",
	"toys",
	"child-care",
	"child-friend",
	"family-restroom",
	"accessible",
	"accessible-forward",
	"group",
	"groups",
	"person",
	"person-outline",
	"face",
	"face-2",
	"face-3",
	"face-4",
	"face-5",
	"face-6",
	"sentiment-satisfied",
	"sentiment-neutral",
	"sentiment-dissatisfied",
	"sentiment-very-satisfied",
	"mood",
	"emoji-emotions",
	"emoji-events",
	"stars",
	"star",
	"star-half",
	"star-outline",
	"grade",
	"workspace-premium",
	"verified",
	"check-circle",
	"check-circle-outline",
	"error",
	"error-outline",
	"warning",
	"info",
	"help",
	"help-outline",
	"policy",
	"security",
	"shield",
	"verified-user",
	"lock",
	"lock-open",
	"vpn-key",
	"key",
	"key-visual",
	"password",
	"visibility",
	"visibility-off",
	"brightness-high",
	"brightness-medium",
	"brightness-low",
	"dark-mode",
	"light-mode",
	"contrast",
	"invert-colors",
	"palette",
	"brush",
	"format-paint",
	"image",
	"photo",
	"photo-library",
	"collections",
	"camera-alt",
	"videocam",
	"movie-creation",
	"music-video",
	"art-track",
	"graphic-eq",
	"equalizer",
	"tune",
	"texture",
	"style",
	"format-shapes",
	"pentagon",
	"hexagon",
	"square",
	"circle",
	"diamond",
	"crop",
	"crop-rotate",
	"transform",
	"zoom-in",
	"zoom-out",
	"focus",
	"center-focus-strong",
	"center-focus-weak",
	"filter-vintage",
	"filter-hdr",
	"filter",
	"blur-on",
	"blur-circular",
	"layers",
	"terrain",
	"landscape",
	"straighten",
	"rotate-right",
	"rotate-left",
	"flip",
	"auto-fix",
	"auto-awesome",
	"auto-graph",
	"analytics",
	"insights",
	"trending-up",
	"trending-down",
	"trending-flat",
	"timeline",
	"leaderboard",
	"notification",
	"notifications",
	"notifications-none",
	"notifications-active",
	"notifications-off",
	"volume-up",
	"volume-off",
	"vibration",
	"wifi",
	"wifi-off",
	"signal-cellular-alt",
	"signal-wifi-off",
	"bluetooth",
	"bluetooth-connected",
	"bluetooth-disabled",
	"cast",
	"cast-connected",
	"dock",
	"device-hub",
	"device-unknown",
	"devices-other",
	"memory",
	"storage",
	"sd-card",
	"usb",
	"battery-full",
	"battery-charging-full",
	"power",
	"power-input",
	"outlet",
	"flash-on",
	"flash-off",
	"flash-auto",
	"bolt",
	"water-drop",
	"opacity",
	"thermostat",
	"favorite",
	"favorite-border",
	"bookmark",
	"bookmark-border",
	"bookmarks",
	"label",
	"label-outline",
	"local-offer",
	"sell",
	"shopping-cart",
	"shopping-cart-outlined",
	"add-shopping-cart",
	"remove-shopping-cart",
	"payment",
	"credit-card",
	"account-balance",
	"account-balance-wallet",
	"money",
	"monetization-on",
	"attach-money",
	"price-change",
	"account-box",
	"person-pin",
	"contact-mail",
	"contact-phone",
	"contacts",
	"contact-emergency",
	"group-add",
	"person-add",
	"person-remove",
	"sms",
	"sms-failed",
	"chat",
	"chat-bubble",
	"chat-bubble-outline",
	"forum",
	"question-answer",
	"guest",
	"share",
	"share-social",
	"mail",
	"mail-outline",
	"inbox",
	"drafts",
	"send",
	"markunread",
	"markunread-mailbox",
	"unarchive",
	"archive",
	"delete",
	"delete-outline",
	"delete-sweep",
	"note-add",
	"create",
	"edit",
	"edit-outline",
	"draw",
	"format-quote",
	"format-list-bulleted",
	"format-list-numbered",
	"format-indent-increase",
	"format-indent-decrease",
	"format-align-left",
	"format-align-center",
	"format-align-right",
	"format-align-justify",
	"format-bold",
	"format-italic",
	"format-underlined",
	"format-strikethrough",
	"format-clear",
	"insert-comment",
	"insert-drive-file",
	"folder",
	"folder-open",
	"folder-special",
	"cloud",
	"cloud-upload",
	"cloud-download",
	"cloud-sync",
	"public",
	"public-off",
}

var presetIconSet = func() map[string]struct{} {
	m := make(map[string]struct{}, len(PresetIcons))
	for _, icon := range PresetIcons {
		m[icon] = struct{}{}
	}
	return m
}()

var foodIcons = func() map[string]string {
	m := make(map[string]string, len(FoodTypes))
	for _, ft := range FoodTypes {
		m[ft.Label] = ft.Icon
	}
	return m
}()

// IconForType maps a food type label to its icon, falling back to
// DefaultFoodIcon for free text and preset labels.
func IconForType(label string) string {
	if icon, ok := foodIcons[strings.TrimSpace(label)]; ok {
		return icon
	}
	return DefaultFoodIcon
}

func ValidPresetIcon(icon string) bool {
	_, ok := presetIconSet[icon]
	return ok
}

// DisplayIcon returns the icon to render for a stored preset. Icons are
// opaque, so only a missing one falls back to the default.
func DisplayIcon(icon string) string {
	if strings.TrimSpace(icon) == "" {
		return DefaultPresetIcon
	}
	return icon
}
