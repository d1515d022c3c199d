package domain

import "time"

type TeamMode int

const (
	TwoTeams   TeamMode = 2
	ThreeTeams TeamMode = 3
)

func (m TeamMode) Valid() bool {
	return m == TwoTeams || m == ThreeTeams
}

// Capacity - размер команды в заданном режиме
func (m TeamMode) Capacity() int {
	if m == ThreeTeams {
		return 7
	}
	return 10
}

const (
	MinRating = 1
	MaxRating = 5
)

type RatedPlayer struct {
	Handle      string `json:"handle"`
	DisplayName string `json:"display_name"`
	Verified    bool   `json:"verified"`
	Rating      int    `json:"rating"`
}

type Team struct {
	Name     string        `json:"name"`
	Players  []RatedPlayer `json:"players"`
	Capacity int           `json:"capacity"`
}

// TeamBuildSession - состояние конструктора команд одного администратора
type TeamBuildSession struct {
	OwnerID   int64          `json:"owner_id"`
	Mode      TeamMode       `json:"mode"`
	Teams     []Team         `json:"teams"`
	Remaining []RatedPlayer  `json:"remaining"`
	Ratings   map[string]int `json:"ratings"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// NewTeamBuildSession создает пустую сессию с командами под режим
func NewTeamBuildSession(ownerID int64, mode TeamMode) *TeamBuildSession {
	return &TeamBuildSession{
		OwnerID:   ownerID,
		Mode:      mode,
		Teams:     EmptyTeams(mode),
		Remaining: []RatedPlayer{},
		Ratings:   map[string]int{},
	}
}

var teamNames = []string{"Team A", "Team B", "Team C"}

func EmptyTeams(mode TeamMode) []Team {
	if !mode.Valid() {
		return nil
	}
	teams := make([]Team, 0, int(mode))
	for i := 0; i < int(mode); i++ {
		teams = append(teams, Team{
			Name:     teamNames[i],
			Players:  []RatedPlayer{},
			Capacity: mode.Capacity(),
		})
	}
	return teams
}
