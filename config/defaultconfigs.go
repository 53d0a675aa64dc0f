package config

var DefaultConfig Config
var DefaultTheme Theme

// Themes are the built-in presets selectable on the setup screen.
var Themes []Theme

func init() {
	DefaultTheme = Theme{
		Name:                 "Classic Green",
		DrawCursorBackground: true,
		CheckerboardCells:    false,
		Colors: ConfigColors{
			BoardColor:        22,
			BoardColorAlt:     22,
			BlackColor:        232,
			WhiteColor:        255,
			HintColor:         118,
			CursorColorFG:     2,
			CursorColorBG:     130,
			LastPlayedColorBG: 94,
		},
		Symbols: ConfigSymbols{
			BlackDisc:   '●',
			WhiteDisc:   '●',
			EmptySquare: ' ',
			LegalMove:   '·',
		},
	}

	Themes = []Theme{
		DefaultTheme,
		{
			Name:                 "Walnut",
			DrawCursorBackground: true,
			CheckerboardCells:    true,
			Colors: ConfigColors{
				BoardColor:        136,
				BoardColorAlt:     94,
				BlackColor:        232,
				WhiteColor:        255,
				HintColor:         229,
				CursorColorFG:     2,
				CursorColorBG:     24,
				LastPlayedColorBG: 172,
			},
			Symbols: ConfigSymbols{
				BlackDisc:   '●',
				WhiteDisc:   '●',
				EmptySquare: ' ',
				LegalMove:   '·',
			},
		},
		{
			Name:                 "Monochrome",
			DrawCursorBackground: true,
			CheckerboardCells:    true,
			Colors: ConfigColors{
				BoardColor:        250,
				BoardColorAlt:     248,
				BlackColor:        16,
				WhiteColor:        231,
				HintColor:         28,
				CursorColorBG:     4,
				CursorColorFG:     2,
				LastPlayedColorBG: 244,
			},
			Symbols: ConfigSymbols{
				BlackDisc:   'X',
				WhiteDisc:   'O',
				EmptySquare: ' ',
				LegalMove:   '*',
			},
		},
	}

	DefaultConfig = Config{
		Theme: DefaultTheme,
		Game: GameConfig{
			ShowLegalMoves: true,
			PlainMode:      false,
		},
	}
}
