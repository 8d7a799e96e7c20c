package player

import (
	"github.com/ratel-online/core/util/rand"
)

var botNames = []string{
	"Annie", "Braum", "Caitlyn", "Draven",
	"Ezreal", "Fiora", "Graves", "Heimerdinger",
	"Ivern", "Jinx", "Kled", "Lulu",
	"Malphite", "Nunu", "Orianna", "Poppy",
	"Qiyana", "Rakan", "Shaco", "Twisted Fate",
	"Udyr", "Veigar", "Wukong", "Xayah",
	"Yuumi", "Zoe",
}

// CreatePlayers seats the human first, when named, and fills the table with
// bots. Bots alternate between good and naive play.
func CreatePlayers(numberOfPlayers int, humanPlayerName string) []Player {
	players := make([]Player, 0, numberOfPlayers)
	if humanPlayerName != "" {
		players = append(players, NewHumanPlayer(humanPlayerName))
	}
	return append(players, generateBots(numberOfPlayers-len(players), humanPlayerName)...)
}

func generateBots(amount int, taken string) []Player {
	bots := make([]Player, 0, amount)
	offset := rand.Intn(len(botNames))
	for i := 0; len(bots) < amount && i < len(botNames); i++ {
		botName := botNames[(offset+i)%len(botNames)]
		if botName == taken {
			continue
		}
		if len(bots)%2 == 0 {
			bots = append(bots, NewGoodPlayer(botName))
		} else {
			bots = append(bots, NewNaivePlayer(botName))
		}
	}
	return bots
}

func Names(players []Player) []string {
	names := make([]string, 0, len(players))
	for _, p := range players {
		names = append(names, p.Name())
	}
	return names
}
