package table

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/awesome-cap/hashmap"
	"github.com/google/uuid"
	"github.com/ratel-online/cardgame/consts"
	"github.com/ratel-online/cardgame/game"
	"github.com/ratel-online/cardgame/preset"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
)

// Session is one game at the table. Every access to its game goes through Do.
type Session struct {
	sync.Mutex
	ID      string
	Preset  string
	Players []string
	Created time.Time

	game *game.Game
}

var sessions = hashmap.New()

// Create starts a game of the named preset and seats it at the table.
func Create(presetName string, players []string, opts game.Options) (*Session, error) {
	factory, err := preset.Factory(presetName)
	if err != nil {
		return nil, err
	}
	g, err := game.NewGame(factory, players, opts)
	if err != nil {
		return nil, err
	}
	session := &Session{
		ID:      uuid.NewString(),
		Preset:  presetName,
		Players: append([]string(nil), players...),
		Created: time.Now(),
		game:    g,
	}
	sessions.Set(session.ID, session)
	log.Infof("session %s created, %s with %d players\n", session.ID, presetName, len(players))
	return session, nil
}

func Get(id string) (*Session, error) {
	if v, ok := sessions.Get(id); ok {
		return v.(*Session), nil
	}
	return nil, fmt.Errorf("%wno session %s", consts.ErrorsSessionInvalid, id)
}

// Do runs fn on the session's game. Calls for the same session never overlap.
func Do(id string, fn func(*game.Game) error) error {
	session, err := Get(id)
	if err != nil {
		return err
	}
	session.Lock()
	defer session.Unlock()
	return fn(session.game)
}

// Remove ends the session's game and takes it off the table.
func Remove(id string) bool {
	session, err := Get(id)
	if err != nil {
		return false
	}
	session.Lock()
	defer session.Unlock()
	session.game.EndGame()
	sessions.Del(id)
	log.Infof("session %s removed\n", id)
	return true
}

// List returns the sessions in creation order.
func List() []*Session {
	list := make([]*Session, 0)
	sessions.Foreach(func(e *hashmap.Entry) {
		list = append(list, e.Value().(*Session))
	})
	sort.Slice(list, func(i, j int) bool {
		if list[i].Created.Equal(list[j].Created) {
			return list[i].ID < list[j].ID
		}
		return list[i].Created.Before(list[j].Created)
	})
	return list
}

// Sweep removes finished sessions and sessions older than maxAge. A zero
// maxAge only removes finished ones.
func Sweep(maxAge time.Duration) int {
	expired := make([]string, 0)
	for _, session := range List() {
		session.Lock()
		over := session.game.Over()
		session.Unlock()
		if over || (maxAge > 0 && time.Since(session.Created) > maxAge) {
			expired = append(expired, session.ID)
		}
	}
	removed := 0
	for _, id := range expired {
		if Remove(id) {
			removed++
		}
	}
	return removed
}

// StartSweeper sweeps the table every interval until stop is closed.
func StartSweeper(interval, maxAge time.Duration, stop <-chan struct{}) {
	async.Async(func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				if n := Sweep(maxAge); n > 0 {
					log.Infof("swept %d sessions\n", n)
				}
			}
		}
	})
}
