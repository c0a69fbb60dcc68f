package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Lists and items
	Add    string `yaml:"add"`    // new list on the overview, new item in a list
	Delete string `yaml:"delete"` // delete list / remove item
	Clear  string `yaml:"clear"`  // remove every item of the open list

	// Navigation
	Open    string `yaml:"open"`
	Back    string `yaml:"back"`
	Next    string `yaml:"next"`
	Prev    string `yaml:"prev"`
	Scratch string `yaml:"scratch"` // jump to the scratch list

	// Dialogs
	Confirm string `yaml:"confirm"`
	Cancel  string `yaml:"cancel"`

	// Other
	ClearAllData string `yaml:"clear_all_data"`
	ShowHelp     string `yaml:"show_help"`
	Quit         string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		Add:    "a",
		Delete: "d",
		Clear:  "C",

		Open:    "enter",
		Back:    "esc",
		Next:    "j",
		Prev:    "k",
		Scratch: "g",

		Confirm: "y",
		Cancel:  "n",

		ClearAllData: "X",
		ShowHelp:     "?",
		Quit:         "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	if k.Add == "" {
		k.Add = defaults.Add
	}
	if k.Delete == "" {
		k.Delete = defaults.Delete
	}
	if k.Clear == "" {
		k.Clear = defaults.Clear
	}
	if k.Open == "" {
		k.Open = defaults.Open
	}
	if k.Back == "" {
		k.Back = defaults.Back
	}
	if k.Next == "" {
		k.Next = defaults.Next
	}
	if k.Prev == "" {
		k.Prev = defaults.Prev
	}
	if k.Scratch == "" {
		k.Scratch = defaults.Scratch
	}
	if k.Confirm == "" {
		k.Confirm = defaults.Confirm
	}
	if k.Cancel == "" {
		k.Cancel = defaults.Cancel
	}
	if k.ClearAllData == "" {
		k.ClearAllData = defaults.ClearAllData
	}
	if k.ShowHelp == "" {
		k.ShowHelp = defaults.ShowHelp
	}
	if k.Quit == "" {
		k.Quit = defaults.Quit
	}
}
