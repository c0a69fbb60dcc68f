package colors

// Kanagawa palette, shared by the wave, dragon and lotus presets
const (
	fujiWhite    = "#DCD7BA"
	sumiInk4     = "#2A2A37"
	sumiInk6     = "#54546D"
	fujiGray     = "#727169"
	oniViolet    = "#957FB8"
	springGreen  = "#98BB6C"
	crystalBlue  = "#7E9CD8"
	waveRed      = "#E46876"
	waveBlue1    = "#223249"
	winterBlue   = "#252535"
	winterYellow = "#49443C"
	winterRed    = "#43242B"
	roninYellow  = "#FF9E3B"
	samuraiRed   = "#E82424"
	springBlue   = "#7FB4CA"
	dragonWhite  = "#C5C9C5"
	dragonBlack4 = "#282727"
	dragonBlack6 = "#625E5A"
	dragonAsh    = "#737C73"
	dragonViolet = "#8992A7"
	dragonGreen2 = "#8A9A7B"
	dragonRed    = "#C4746E"
	dragonBlue2  = "#8BA4B0"
	dragonAqua   = "#8EA4A2"
	dragonBlue   = "#658594"
	lotusInk1    = "#545464"
	lotusWhite4  = "#E7DBA0"
	lotusGray3   = "#8A8980"
	lotusViolet4 = "#624C83"
	lotusGreen   = "#6F894E"
	lotusRed     = "#C84053"
	lotusBlue4   = "#4D699B"
	lotusAqua    = "#597B75"
)

// Wave returns the Kanagawa Wave color scheme
func Wave() *ColorScheme {
	return &ColorScheme{
		Preset: "wave",

		Accent: oniViolet,
		Create: springGreen,
		Delete: waveRed,

		Border:         sumiInk6,
		SelectedBorder: springBlue,
		SelectedBg:     waveBlue1,

		Title:  crystalBlue,
		Subtle: fujiGray,
		Normal: fujiWhite,

		InfoFg:    crystalBlue,
		InfoBg:    winterBlue,
		WarningFg: roninYellow,
		WarningBg: winterYellow,
		ErrorFg:   samuraiRed,
		ErrorBg:   winterRed,

		StatusBarBg:   oniViolet,
		StatusBarText: sumiInk4,
	}
}

// Dragon returns the Kanagawa Dragon color scheme (dark theme with warm earth tones)
func Dragon() *ColorScheme {
	return &ColorScheme{
		Preset: "dragon",

		Accent: dragonViolet,
		Create: dragonGreen2,
		Delete: dragonRed,

		Border:         dragonBlack6,
		SelectedBorder: dragonAqua,
		SelectedBg:     waveBlue1,

		Title:  dragonBlue2,
		Subtle: dragonAsh,
		Normal: dragonWhite,

		InfoFg:    dragonBlue,
		InfoBg:    winterBlue,
		WarningFg: roninYellow,
		WarningBg: winterYellow,
		ErrorFg:   samuraiRed,
		ErrorBg:   winterRed,

		StatusBarBg:   dragonViolet,
		StatusBarText: dragonBlack4,
	}
}

// Lotus returns the Kanagawa Lotus color scheme (light theme)
func Lotus() *ColorScheme {
	return &ColorScheme{
		Preset: "lotus",

		Accent: lotusViolet4,
		Create: lotusGreen,
		Delete: lotusRed,

		Border:         lotusGray3,
		SelectedBorder: lotusAqua,
		SelectedBg:     lotusWhite4,

		Title:  lotusBlue4,
		Subtle: lotusGray3,
		Normal: lotusInk1,

		InfoFg:    lotusBlue4,
		InfoBg:    lotusWhite4,
		WarningFg: roninYellow,
		WarningBg: lotusWhite4,
		ErrorFg:   lotusRed,
		ErrorBg:   lotusWhite4,

		StatusBarBg:   lotusViolet4,
		StatusBarText: lotusWhite4,
	}
}
