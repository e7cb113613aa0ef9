package input

// actionRegistry maps action names used in the [keys] config table to intents
// "none" unbinds a key
var actionRegistry = map[string]IntentType{
	"none":         IntentNone,
	"quit":         IntentQuit,
	"restart":      IntentRestart,
	"toggle_mute":  IntentToggleMute,
	"toggle_debug": IntentToggleDebug,
}

// ActionIntent resolves an action name
func ActionIntent(name string) (IntentType, bool) {
	it, ok := actionRegistry[name]
	return it, ok
}
