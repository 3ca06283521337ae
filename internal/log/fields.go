package log

// Common field names for structured logging
const (
	FieldComponent   = "component"
	FieldError       = "error"
	FieldOperation   = "operation"
	FieldVersion     = "version"
	FieldPresetID    = "preset_id"
	FieldFoodCount   = "food_count"
	FieldPresetCount = "preset_count"
	FieldGoal        = "goal"
	FieldBackend     = "backend"
	FieldPath        = "path"
	FieldExchange    = "exchange"
	FieldRoutingKey  = "routing_key"
)

const (
	ComponentApp    = "app"
	ComponentStore  = "store"
	ComponentEvents = "events"
	ComponentCLI    = "cli"
)

const (
	OpSetGoal      = "set_goal"
	OpSetFood      = "set_food"
	OpAddPreset    = "add_preset"
	OpRemovePreset = "remove_preset"
	OpSetPresets   = "set_presets"
	OpReplace      = "replace"
	OpSave         = "save"
	OpLoad         = "load"
	OpPublish      = "publish"
)
