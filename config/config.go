package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"

	"github.com/adrg/xdg"
	"github.com/ilyakaznacheev/cleanenv"

	"reversi-local/board"
	"reversi-local/diagram"
	"reversi-local/engine"
	"reversi-local/logging"
)

var (
	cfgFile = "reversi-local/config.json"
)

// MaxSize is the largest board side; columns are lettered a..z.
const MaxSize = 26

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("Config error: %s", e.err)
}

type ConfigColors struct {
	BoardColor        int `json:"board"`
	BoardColorAlt     int `json:"board_alt"`
	BlackColor        int `json:"black"`
	WhiteColor        int `json:"white"`
	LineColor         int `json:"line"`
	CursorColorFG     int `json:"cursor_fg"`
	CursorColorBG     int `json:"cursor_bg"`
	LastPlayedColorBG int `json:"last_played_bg"`
	HintColor         int `json:"hint"`
}

type ConfigSymbols struct {
	BlackDisc   rune `json:"black"`
	WhiteDisc   rune `json:"white"`
	BoardSquare rune `json:"board"`
	Cursor      rune `json:"cursor"`
	LastPlayed  rune `json:"last_played"`
	Hint        rune `json:"hint"`
}

// ConsoleSymbols are the glyphs of the plain text board. Unlike the
// full-screen board they carry no colour, so every glyph must differ.
type ConsoleSymbols struct {
	Black    rune `json:"black"`
	White    rune `json:"white"`
	Playable rune `json:"playable"`
	Border   rune `json:"border"`
}

type Theme struct {
	DrawDiscBackground       bool           `json:"draw_disc_bg"`
	DrawCursorBackground     bool           `json:"draw_cursor_bg"`
	DrawLastPlayedBackground bool           `json:"draw_last_played_bg"`
	FullWidthLetters         bool           `json:"fullwidth_letters"`
	Colors                   ConfigColors   `json:"colors"`
	Symbols                  ConfigSymbols  `json:"symbols"`
	Console                  ConsoleSymbols `json:"console"`
}

// GameConfig holds the defaults for a new game.
type GameConfig struct {
	Width       int    `json:"width" env:"REVERSI_WIDTH"`
	Height      int    `json:"height" env:"REVERSI_HEIGHT"`
	FirstPlayer string `json:"first_player" env:"REVERSI_FIRST"`
	ShowHints   bool   `json:"show_hints" env:"REVERSI_HINTS"`
}

// LogConfig controls the debug log. An empty File means the default
// location under the XDG state directory.
type LogConfig struct {
	Level string `json:"level" env:"REVERSI_LOG_LEVEL"`
	File  string `json:"file" env:"REVERSI_LOG_FILE"`
}

type Config struct {
	Theme Theme      `json:"theme"`
	Game  GameConfig `json:"game"`
	Log   LogConfig  `json:"log"`
}

// InitConfig loads the configuration. path overrides the XDG search; with
// no file at all the defaults are used. Environment variables are applied
// on top in both cases.
func InitConfig(path string) (*Config, error) {
	config := DefaultConfig
	if path == "" {
		if absPath, err := xdg.SearchConfigFile(cfgFile); err == nil {
			path = absPath
		}
	}

	if path != "" {
		if err := cleanenv.ReadConfig(path, &config); err != nil {
			return nil, fmt.Errorf("could not read config %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&config); err != nil {
		return nil, fmt.Errorf("could not read environment: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) Validate() error {
	for _, r := range []rune{
		c.Theme.Symbols.BlackDisc, c.Theme.Symbols.WhiteDisc, c.Theme.Symbols.BoardSquare, c.Theme.Symbols.Hint,
		c.Theme.Console.Black, c.Theme.Console.White, c.Theme.Console.Playable, c.Theme.Console.Border,
	} {
		if r < 32 || (r >= 127 && r <= 159) {
			return &InvalidConfig{"Unicode characters 1-31 and 127-159 are not allowed"}
		}
	}

	con := c.Theme.Console
	seen := map[rune]bool{}
	for _, r := range []rune{con.Black, con.White, con.Playable, con.Border} {
		if seen[r] || r == '|' {
			return &InvalidConfig{fmt.Sprintf("console symbol %q is used twice or clashes with the cell separator", r)}
		}
		seen[r] = true
	}

	for _, n := range []int{c.Game.Width, c.Game.Height} {
		if n < board.MinSize || n > MaxSize {
			return &InvalidConfig{fmt.Sprintf("board size %dx%d must be between %d and %d", c.Game.Width, c.Game.Height, board.MinSize, MaxSize)}
		}
	}

	if _, err := board.ParsePiece(c.Game.FirstPlayer); err != nil {
		return &InvalidConfig{fmt.Sprintf("first player %q must be black or white", c.Game.FirstPlayer)}
	}

	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return &InvalidConfig{err.Error()}
	}
	return nil
}

// FirstPiece returns the configured first player. Call Validate first.
func (c *Config) FirstPiece() board.Piece {
	p, err := board.ParsePiece(c.Game.FirstPlayer)
	if err != nil {
		return board.Black
	}
	return p
}

// EngineConfig returns the game settings for a new engine.
func (c *Config) EngineConfig() engine.GameConfig {
	return engine.GameConfig{
		Width:       c.Game.Width,
		Height:      c.Game.Height,
		FirstPlayer: c.FirstPiece(),
	}
}

// ConsoleGlyphs returns the glyph set of the plain text board.
func (c *Config) ConsoleGlyphs() diagram.Glyphs {
	return diagram.Glyphs{
		Black:    c.Theme.Console.Black,
		White:    c.Theme.Console.White,
		Playable: c.Theme.Console.Playable,
		Border:   c.Theme.Console.Border,
	}
}

// Save writes the config to the user's XDG config directory.
func (c *Config) Save() error {
	absPath, err := xdg.ConfigFile(cfgFile)
	if err != nil {
		return fmt.Errorf("could not locate config file: %w", err)
	}
	return saveCfgFile(absPath, c, 0664)
}

func saveCfgFile(filePath string, a interface{}, perm fs.FileMode) error {
	jsonData, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(filePath, jsonData, perm); err != nil {
		return fmt.Errorf("could not write config %s: %w", filePath, err)
	}
	return nil
}
