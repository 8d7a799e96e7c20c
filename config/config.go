package config

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
	"github.com/ratel-online/cardgame/consts"
	"github.com/ratel-online/cardgame/preset"
	corerand "github.com/ratel-online/core/util/rand"
)

// Config is the demo host configuration, read from the environment.
type Config struct {
	Preset   string `env:"CARDGAME_PRESET,default=uno"`
	Players  int    `env:"CARDGAME_PLAYERS,default=4,strict"`
	HandSize int    `env:"CARDGAME_HAND_SIZE,default=7,strict"`
	// Start is the first seat, negative for a random one.
	Start    int    `env:"CARDGAME_START,default=-1,strict"`
	Trump    string `env:"CARDGAME_TRUMP"`
	Seed     int64  `env:"CARDGAME_SEED,default=0,strict"`
	Human    string `env:"CARDGAME_HUMAN"`
	MaxTurns int    `env:"CARDGAME_MAX_TURNS,default=500,strict"`
}

// Load reads the given .env files, or ./.env when none are given, and then
// decodes the environment. Missing .env files are ignored; variables already
// set in the environment win.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, file := range files {
		if err := godotenv.Load(file); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("%wreading %s: %v", consts.ErrorsInvalidValue, file, err)
		}
	}
	c := &Config{}
	if err := envdecode.Decode(c); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return nil, fmt.Errorf("%w%v", consts.ErrorsInvalidValue, err)
	}
	return c, c.Validate()
}

func (c *Config) Validate() error {
	if _, err := preset.Factory(c.Preset); err != nil {
		return err
	}
	if c.Players < consts.MinPlayers || c.Players > consts.MaxPlayers {
		return fmt.Errorf("%wCARDGAME_PLAYERS must be between %d and %d, got %d", consts.ErrorsInvalidValue, consts.MinPlayers, consts.MaxPlayers, c.Players)
	}
	if c.HandSize < 1 {
		return fmt.Errorf("%wCARDGAME_HAND_SIZE must be positive, got %d", consts.ErrorsInvalidValue, c.HandSize)
	}
	if c.Start >= c.Players {
		return fmt.Errorf("%wCARDGAME_START must be below CARDGAME_PLAYERS, got %d", consts.ErrorsInvalidValue, c.Start)
	}
	if c.MaxTurns < 1 {
		return fmt.Errorf("%wCARDGAME_MAX_TURNS must be positive, got %d", consts.ErrorsInvalidValue, c.MaxTurns)
	}
	if c.Trump != "" {
		table, _ := preset.Table(c.Preset)
		if _, err := table.SuitIndex(c.Trump); err != nil {
			return fmt.Errorf("CARDGAME_TRUMP: %w", err)
		}
	}
	return nil
}

// StartSeat resolves a negative Start to a random seat.
func (c *Config) StartSeat() int {
	if c.Start < 0 {
		return corerand.Intn(c.Players)
	}
	return c.Start
}

// Rand returns the source every shuffle of a game uses. A zero seed is
// replaced by the current time.
func (c *Config) Rand() *rand.Rand {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
