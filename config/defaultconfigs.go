package config

var DefaultConfig Config
var DefaultTheme Theme

func init() {
	DefaultTheme = Theme{
		DrawDiscBackground:       false,
		DrawCursorBackground:     true,
		DrawLastPlayedBackground: true,
		FullWidthLetters:         false,
		Colors: ConfigColors{
			BoardColor:        28,
			BoardColorAlt:     22,
			BlackColor:        232,
			WhiteColor:        255,
			LineColor:         22,
			CursorColorFG:     226,
			CursorColorBG:     4,
			LastPlayedColorBG: 94,
			HintColor:         154,
		},
		Symbols: ConfigSymbols{
			BlackDisc:   '●',
			WhiteDisc:   '●',
			BoardSquare: '·',
			Cursor:      '◆',
			LastPlayed:  '●',
			Hint:        '∘',
		},
		Console: ConsoleSymbols{
			Black:    '●',
			White:    '○',
			Playable: ' ',
			Border:   '×',
		},
	}

	DefaultConfig = Config{
		Theme: DefaultTheme,
		Game: GameConfig{
			Width:       8,
			Height:      8,
			FirstPlayer: "black",
			ShowHints:   false,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
