package bot

import (
	"jassbot/internal/domain"
)

// BaselineStrategy always plays its weakest legal card and declares its
// longest suit as trump. It keeps no memory, so its moves depend only on the
// hand and the trick.
type BaselineStrategy struct {
	Rules domain.Rules
}

func (b *BaselineStrategy) Name() string { return LevelBaseline.String() }

// ChooseTrumpf never shifts.
func (b *BaselineStrategy) ChooseTrumpf(hand []domain.Card, shifted bool) domain.Mode {
	if s, ok := longestSuit(domain.CountBySuit(hand), 0, anySuit); ok {
		return domain.TrumpMode(s)
	}
	return domain.TrumpMode(domain.Suits[0])
}

func (b *BaselineStrategy) ChooseCard(hand []domain.Card, trick *domain.Trick, seat int) (domain.Card, error) {
	return LowestLegalCard(b.Rules, trick, hand)
}

func (b *BaselineStrategy) OnSessionStarted()           {}
func (b *BaselineStrategy) OnGameStarted()              {}
func (b *BaselineStrategy) OnMoveMade(play domain.Play) {}
func (b *BaselineStrategy) OnGameFinished()             {}
func (b *BaselineStrategy) OnSessionFinished()          {}
