// Package models declares the records persisted by vntracker
package models

// Game is a registered executable and its accumulated play time.
//
// Field order is the on-disk key order of games.json.
type Game struct {
	ID    uint32 `json:"id"`
	Name  string `json:"name"`
	Path  string `json:"path"`
	Hours string `json:"hours"`
}

// Session is one completed play session of a game.
type Session struct {
	GameID   uint32 `json:"game_id"`
	Date     string `json:"date"`
	Duration string `json:"duration"`
}

// GameSnapshot is the part of a game a tracker needs to launch it.
type GameSnapshot struct {
	Name string
	Path string
	ID   uint32
}

// Snapshot captures the launch details of g by value.
func (g Game) Snapshot() GameSnapshot {
	return GameSnapshot{
		ID:   g.ID,
		Name: g.Name,
		Path: g.Path,
	}
}
