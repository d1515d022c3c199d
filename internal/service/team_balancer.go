package service

import (
	"math/rand/v2"
	"sort"

	"github.com/bagdasarian/football-registration/internal/domain"
)

// ErrInvalidTeamMode - поддерживаются только две или три команды
var ErrInvalidTeamMode = domain.NewBadRequestError("mode must be 2 or 3")

type BalanceResult struct {
	Teams     []domain.Team
	Remaining []domain.RatedPlayer
}

// roundsPerMode - 10 раундов для двух команд (20 игроков), 7 для трех (21 игрок)
func roundsPerMode(mode domain.TeamMode) int {
	return mode.Capacity()
}

// NormalizeRating приводит рейтинг к диапазону [1,5], отсутствующий рейтинг считается 1
func NormalizeRating(rating int) int {
	if rating < domain.MinRating {
		return domain.MinRating
	}
	if rating > domain.MaxRating {
		return domain.MaxRating
	}
	return rating
}

// normalizeFirstPick приводит любое целое к номеру команды в [0, teams)
func normalizeFirstPick(firstPick, teams int) int {
	return ((firstPick % teams) + teams) % teams
}

// SnakeDraftOrder строит порядок выбора: четные раунды идут от firstPick по возрастанию,
// нечетные - в обратном порядке. Для неподдерживаемого режима возвращает nil.
func SnakeDraftOrder(mode domain.TeamMode, firstPick int) []int {
	if !mode.Valid() {
		return nil
	}
	teams := int(mode)
	rounds := roundsPerMode(mode)
	firstPick = normalizeFirstPick(firstPick, teams)

	ascending := make([]int, 0, teams)
	for i := 0; i < teams; i++ {
		ascending = append(ascending, (firstPick+i)%teams)
	}

	order := make([]int, 0, teams*rounds)
	for round := 0; round < rounds; round++ {
		if round%2 == 0 {
			order = append(order, ascending...)
			continue
		}
		for i := teams - 1; i >= 0; i-- {
			order = append(order, ascending[i])
		}
	}
	return order
}

// AutoBalance распределяет игроков змейкой по убыванию рейтинга.
// Игроки сверх 20 (2 команды) или 21 (3 команды) попадают в Remaining.
func AutoBalance(pool []domain.RatedPlayer, mode domain.TeamMode, firstPick int) (BalanceResult, error) {
	if !mode.Valid() {
		return BalanceResult{}, ErrInvalidTeamMode
	}

	sorted := make([]domain.RatedPlayer, len(pool))
	copy(sorted, pool)
	for i := range sorted {
		sorted[i].Rating = NormalizeRating(sorted[i].Rating)
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Rating > sorted[j].Rating
	})

	teams := domain.EmptyTeams(mode)
	order := SnakeDraftOrder(mode, firstPick)

	drafted := len(order)
	if len(sorted) < drafted {
		drafted = len(sorted)
	}
	for i := 0; i < drafted; i++ {
		idx := order[i]
		teams[idx].Players = append(teams[idx].Players, sorted[i])
	}

	remaining := make([]domain.RatedPlayer, 0, len(sorted)-drafted)
	remaining = append(remaining, sorted[drafted:]...)

	return BalanceResult{
		Teams:     teams,
		Remaining: remaining,
	}, nil
}

// RandomFirstPick выбирает команду, которая берет первого игрока
func RandomFirstPick(mode domain.TeamMode) int {
	return rand.IntN(int(mode))
}
