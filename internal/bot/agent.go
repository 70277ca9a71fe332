package bot

import (
	"jassbot/internal/domain"

	"github.com/heroiclabs/nakama-common/runtime"
)

// Agent represents an autonomous bot player at one seat. It owns the hand
// and checks every strategy decision against the rules before playing it.
type Agent struct {
	Seat     int
	Name     string
	Strategy Strategy
	Rules    domain.Rules

	logger runtime.Logger
	hand   []domain.Card
}

// NewAgent creates an agent with an empty hand.
func NewAgent(seat int, name string, strategy Strategy, rules domain.Rules, logger runtime.Logger) *Agent {
	return &Agent{
		Seat:     seat,
		Name:     name,
		Strategy: strategy,
		Rules:    rules,
		logger:   logger.WithFields(map[string]interface{}{"bot": name, "seat": seat}),
	}
}

// SetHand replaces the hand, e.g. after dealing.
func (a *Agent) SetHand(cards []domain.Card) {
	a.hand = append(a.hand[:0:0], cards...)
	domain.SortCards(a.hand)
}

// Hand returns a copy of the cards still held.
func (a *Agent) Hand() []domain.Card {
	return append([]domain.Card(nil), a.hand...)
}

// ChooseTrumpf asks the strategy which mode to declare.
func (a *Agent) ChooseTrumpf(shifted bool) domain.Mode {
	mode := a.Strategy.ChooseTrumpf(a.Hand(), shifted)
	a.logger.Debug("ChooseTrumpf: shifted=%v chose %v", shifted, mode)
	return mode
}

// MakeMove picks a card for trick, removes it from the hand and returns it.
// An illegal or failed strategy decision is replaced by the lowest legal
// card; only an empty hand or a hand without any legal card is an error.
func (a *Agent) MakeMove(trick *domain.Trick) (domain.Card, error) {
	if len(a.hand) == 0 {
		return domain.Card{}, ErrHandExhausted
	}

	card, err := a.chooseCardWithFallback(trick)
	if err != nil {
		a.logger.Error("MakeMove: %v (hand %v, trick %v)", err, a.hand, trick.Cards())
		return domain.Card{}, err
	}

	a.hand = domain.RemoveCard(a.hand, card)
	return card, nil
}

func (a *Agent) chooseCardWithFallback(trick *domain.Trick) (domain.Card, error) {
	card, err := a.Strategy.ChooseCard(a.Hand(), trick, a.Seat)
	if err == nil && a.Rules.CanPlayCard(trick.Mode, card, trick, a.hand) {
		return card, nil
	}

	if err != nil {
		a.logger.Warn("MakeMove: strategy %s failed: %v. Playing lowest legal card instead", a.Strategy.Name(), err)
	} else {
		a.logger.Warn("MakeMove: strategy %s chose invalid card %v. Playing lowest legal card instead", a.Strategy.Name(), card)
	}
	return LowestLegalCard(a.Rules, trick, a.hand)
}

func (a *Agent) OnSessionStarted() {
	a.Strategy.OnSessionStarted()
}

// OnGameStarted resets the strategy's memory for the new game.
func (a *Agent) OnGameStarted() {
	a.Strategy.OnGameStarted()
}

// OnMoveMade must be called for every card played, including this agent's own.
func (a *Agent) OnMoveMade(play domain.Play) {
	a.Strategy.OnMoveMade(play)
}

func (a *Agent) OnGameFinished() {
	a.Strategy.OnGameFinished()
}

func (a *Agent) OnSessionFinished() {
	a.Strategy.OnSessionFinished()
}
