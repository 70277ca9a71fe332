package bot

import (
	"jassbot/internal/bot/brain"
	"jassbot/internal/domain"
)

// HeuristicStrategy plays boldly with cards that cannot lose and cheaply
// otherwise. It owns the memory of one seat for one game at a time.
type HeuristicStrategy struct {
	Memory  *brain.Memory
	chooser *CardChooser
}

// NewHeuristicStrategy creates the strategy with an empty memory.
func NewHeuristicStrategy(rules domain.Rules) *HeuristicStrategy {
	m := brain.NewMemory()
	return &HeuristicStrategy{
		Memory:  m,
		chooser: NewCardChooser(rules, m),
	}
}

func (s *HeuristicStrategy) Name() string { return LevelHeuristic.String() }

func (s *HeuristicStrategy) ChooseTrumpf(hand []domain.Card, shifted bool) domain.Mode {
	return ChooseTrumpf(hand, shifted)
}

func (s *HeuristicStrategy) ChooseCard(hand []domain.Card, trick *domain.Trick, seat int) (domain.Card, error) {
	return s.chooser.Choose(hand, trick, seat)
}

func (s *HeuristicStrategy) OnSessionStarted() {}

// OnGameStarted forgets every card of the previous game.
func (s *HeuristicStrategy) OnGameStarted() {
	s.Memory.Reset()
}

// OnMoveMade records the card, whoever played it.
func (s *HeuristicStrategy) OnMoveMade(play domain.Play) {
	s.Memory.MarkPlayed(play.Card)
}

func (s *HeuristicStrategy) OnGameFinished()    {}
func (s *HeuristicStrategy) OnSessionFinished() {}
