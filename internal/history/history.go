package history

import (
	"time"

	"github.com/ziadkadry99/gameshelf/internal/catalog"
)

// Play is a single launch of the player page.
type Play struct {
	ID          string             `json:"id"`
	PlayedAt    time.Time          `json:"played_at"`
	GameID      string             `json:"game_id"`
	RequestedID string             `json:"requested_id,omitempty"`
	Resolution  catalog.Resolution `json:"resolution"`
	Referrer    string             `json:"referrer,omitempty"`
	UserAgent   string             `json:"user_agent,omitempty"`
}

// GameCount is the number of plays recorded for one game.
type GameCount struct {
	GameID string    `json:"game_id"`
	Plays  int       `json:"plays"`
	Last   time.Time `json:"last_played"`
}
