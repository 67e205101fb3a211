package gamedata

// ActionDef binds one agent action to its keys.
type ActionDef struct {
	ID   string   `json:"id"`   // Action identifier (e.g., "forward")
	Name string   `json:"name"` // Display name for the help line
	Keys []string `json:"keys"` // tcell key names ("Up") or single characters ("g")
}

// ActionsFile represents the structure of actions.json.
type ActionsFile struct {
	Actions []ActionDef `json:"actions"`
}

// LoadActions loads action definitions from the embedded actions.json file.
func LoadActions() ([]ActionDef, error) {
	file, err := Load[ActionsFile]("actions.json")
	if err != nil {
		return nil, err
	}
	return file.Actions, nil
}
