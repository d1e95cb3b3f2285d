package game

import (
	"log"
	"math/rand"
	"sort"

	game_constants "Qishui/constants/game"
	game_models "Qishui/models/game"
)

// RoundEngine: phase state machine and rule resolution. Every function in
// this file expects the caller to hold the room mutex, so one inbound message
// is always handled to completion before the next one touches the room.

// StartGame moves a waiting room into its first round. Only the host may
// start, and only with at least 3 players.
func StartGame(room *game_models.Room, playerID string) error {
	if !PhaseAllows(room.Phase, MsgStartGame) {
		return ErrWrongPhaseForAction
	}
	host := room.Host()
	if host == nil || host.ID != playerID {
		return ErrNotHost
	}
	if len(room.Players) < game_constants.MinPlayers {
		return ErrInsufficientPlayers
	}

	room.Phase = game_models.PhaseSetup
	room.Round = 1
	if len(room.Players) <= 4 {
		room.MaxRounds = len(room.Players) * 2
	} else {
		room.MaxRounds = len(room.Players)
	}
	room.SuitcaseDeck = BuildSuitcaseDeck()
	room.DiscardPile = nil
	room.LegalLimit = game_constants.DefaultLegalLimit

	for _, p := range room.Players {
		p.BottleCaps = game_constants.InitialBottleCaps
	}

	room.CurrentBorderGuardID = host.ID
	host.IsBorderGuard = true

	log.Printf("[GAME-START] Room %s started with %d players, %d rounds",
		room.Code, len(room.Players), room.MaxRounds)

	StartNewRound(room)
	return nil
}

// StartNewRound rebuilds the per-round state: traveler states, action tokens,
// the event card and its modifiers, and the travelers' hands. The event phase
// is a momentary marker; the room leaves this function in selecting.
func StartNewRound(room *game_models.Room) {
	room.Phase = game_models.PhaseEvent

	// Sweep anything a previous round left behind into the discard pile so
	// the 36 cards stay partitioned across deck, discard, hands and states.
	for _, state := range room.TravelerStates {
		room.DiscardPile = append(room.DiscardPile, state.Luggage...)
		if state.Bribe != nil {
			room.DiscardPile = append(room.DiscardPile, *state.Bribe)
		}
	}
	for _, p := range room.Players {
		room.DiscardPile = append(room.DiscardPile, p.Hand...)
		p.Hand = nil
		p.IsBorderGuard = p.ID == room.CurrentBorderGuardID
		p.IsReady = false
	}
	room.TravelerStates = make(map[string]*game_models.TravelerState)
	room.ActionTokens = nil
	room.LegalLimit = game_constants.DefaultLegalLimit

	drawEventCard(room)
	ApplyEventCardEffect(room)

	for _, traveler := range room.Travelers() {
		hand := make([]game_models.SuitcaseCard, 0, game_constants.SuitcasesPerTraveler)
		for i := 0; i < game_constants.SuitcasesPerTraveler; i++ {
			card, ok := DrawSuitcase(room)
			if !ok {
				// Both piles empty: deal short.
				break
			}
			hand = append(hand, card)
		}
		traveler.Hand = hand

		room.TravelerStates[traveler.ID] = &game_models.TravelerState{
			PlayerID: traveler.ID,
		}
	}

	room.Phase = game_models.PhaseSelecting
	log.Printf("[ROUND-START] Room %s round %d/%d, guard %s, event %v",
		room.Code, room.Round, room.MaxRounds, room.CurrentBorderGuardID, room.EventCard)
}

// drawEventCard picks this round's event: always from round 2 onwards, with
// probability 0.7 on round 1. The pick is uniform with replacement.
func drawEventCard(room *game_models.Room) {
	if room.Round > 1 || rand.Float64() < game_constants.FirstRoundEventChance {
		card := game_models.EventCards[rand.Intn(len(game_models.EventCards))]
		room.EventCard = &card
	} else {
		room.EventCard = nil
	}
}

// ApplyEventCardEffect rebuilds the action token set from the player-count
// table and applies the active event's token/limit/stock modifiers.
func ApplyEventCardEffect(room *game_models.Room) {
	budget, ok := game_constants.ActionTokensByPlayerCount[len(room.Players)]
	if !ok {
		budget = game_constants.TokenBudget{AcceptBribe: 1, Inspect: 1, Arrest: 1}
	}
	acceptBribe := budget.AcceptBribe
	inspect := budget.Inspect
	arrest := budget.Arrest

	if room.EventCard != nil {
		switch room.EventCard.Effect {
		case game_models.EffectNightShift:
			acceptBribe++
		case game_models.EffectSuperiorOfficer:
			inspect++
		case game_models.EffectTipOff:
			arrest++
		case game_models.EffectBreakage:
			if arrest > 0 {
				arrest--
			}
			room.LegalLimit = 0
		case game_models.EffectBirthday:
			room.LegalLimit = 2
			if guard := room.FindPlayer(room.CurrentBorderGuardID); guard != nil {
				guard.BottleCaps += game_constants.BirthdayGuardPayout
				room.GeneralStock -= game_constants.BirthdayGuardPayout
			}
		}
	}

	room.ActionTokens = nil
	addTokens := func(tokenType game_models.TokenType, count int) {
		for i := 0; i < count; i++ {
			room.ActionTokens = append(room.ActionTokens, &game_models.ActionToken{Type: tokenType})
		}
	}
	addTokens(game_models.TokenAcceptBribe, acceptBribe)
	addTokens(game_models.TokenInspectSuitcase, inspect)
	addTokens(game_models.TokenArrest, arrest)
}

// SelectCards records a traveler's choice of exactly 2 luggage cards and 1
// bribe card, all distinct and all taken from their current hand. The two
// unchosen cards go to the discard pile and the hand is emptied. Once every
// traveler has chosen, the room advances to bribe_reveal.
func SelectCards(room *game_models.Room, playerID string, luggageIDs []string, bribeID string) error {
	if !PhaseAllows(room.Phase, MsgSelectCards) {
		return ErrWrongPhaseForAction
	}
	player := room.FindPlayer(playerID)
	if player == nil || player.IsBorderGuard {
		return ErrInvalidCardSelection
	}
	state := room.TravelerStates[playerID]
	if state == nil {
		return ErrInvalidCardSelection
	}

	if len(luggageIDs) != game_constants.LuggageCardsPerTraveler ||
		luggageIDs[0] == luggageIDs[1] ||
		bribeID == luggageIDs[0] || bribeID == luggageIDs[1] {
		return ErrInvalidCardSelection
	}

	byID := make(map[string]game_models.SuitcaseCard, len(player.Hand))
	for _, card := range player.Hand {
		byID[card.ID] = card
	}

	luggage := make([]game_models.SuitcaseCard, 0, game_constants.LuggageCardsPerTraveler)
	for _, id := range luggageIDs {
		card, ok := byID[id]
		if !ok {
			return ErrInvalidCardSelection
		}
		luggage = append(luggage, card)
	}
	bribe, ok := byID[bribeID]
	if !ok {
		return ErrInvalidCardSelection
	}

	chosen := map[string]bool{luggageIDs[0]: true, luggageIDs[1]: true, bribeID: true}
	for _, card := range player.Hand {
		if !chosen[card.ID] {
			room.DiscardPile = append(room.DiscardPile, card)
		}
	}
	player.Hand = nil

	state.Luggage = luggage
	state.Bribe = &bribe
	player.IsReady = true

	allReady := true
	for _, traveler := range room.Travelers() {
		if !traveler.IsReady {
			allReady = false
			break
		}
	}
	if allReady {
		room.Phase = game_models.PhaseBribeReveal
		log.Printf("[ROUND-SELECT] All travelers ready in room %s, revealing bribes", room.Code)
	}

	return nil
}

// UseActionToken consumes one unused token and resolves the guard action
// against the target traveler. A first use during bribe_reveal implicitly
// advances the room to guard_action. Resolution preconditions that do not
// hold (no bribe to accept, target already arrested, ...) spend the token
// with no further effect.
func UseActionToken(room *game_models.Room, playerID string, tokenIndex int, targetPlayerID string) error {
	if !PhaseAllows(room.Phase, MsgUseActionToken) {
		return ErrWrongPhaseForAction
	}
	guard := room.FindPlayer(playerID)
	if guard == nil || !guard.IsBorderGuard {
		return ErrNotBorderGuard
	}

	if room.Phase == game_models.PhaseBribeReveal {
		room.Phase = game_models.PhaseGuardAction
	}

	if tokenIndex < 0 || tokenIndex >= len(room.ActionTokens) {
		return ErrInvalidOrUsedToken
	}
	token := room.ActionTokens[tokenIndex]
	if token.Used {
		return ErrInvalidOrUsedToken
	}

	token.Used = true
	token.TargetPlayerID = targetPlayerID

	state := room.TravelerStates[targetPlayerID]
	traveler := room.FindPlayer(targetPlayerID)

	switch token.Type {
	case game_models.TokenAcceptBribe:
		resolveAcceptBribe(room, guard, traveler, state)
	case game_models.TokenInspectSuitcase:
		resolveInspect(state)
	case game_models.TokenArrest:
		resolveArrest(room, guard, traveler, state)
	}

	return nil
}

func resolveAcceptBribe(room *game_models.Room, guard *game_models.Player,
	traveler *game_models.Player, state *game_models.TravelerState) {
	if state == nil || traveler == nil || state.Bribe == nil || state.IsBribeAccepted {
		return
	}

	// The bribe is a direct transfer between the two players.
	traveler.BottleCaps -= state.Bribe.Bottles
	guard.BottleCaps += state.Bribe.Bottles

	state.IsBribeAccepted = true
	state.IsWavedThrough = true

	// The waved-through traveler cashes in their luggage from the stock.
	luggageBottles := luggageTotal(state)
	traveler.BottleCaps += luggageBottles
	room.GeneralStock -= luggageBottles

	discardResolvedCards(room, state)

	log.Printf("[GUARD-BRIBE] Guard %s accepted bribe from %s (%d bottles of luggage cashed)",
		guard.ID, traveler.ID, luggageBottles)
}

func resolveInspect(state *game_models.TravelerState) {
	if state == nil || state.IsArrested {
		return
	}

	revealed := make(map[string]bool, len(state.RevealedLuggage))
	for _, card := range state.RevealedLuggage {
		revealed[card.ID] = true
	}
	// Reveal the first still-hidden card, in luggage order. No-op once
	// everything is already on the table.
	for _, card := range state.Luggage {
		if !revealed[card.ID] {
			state.RevealedLuggage = append(state.RevealedLuggage, card)
			return
		}
	}
}

func resolveArrest(room *game_models.Room, guard *game_models.Player,
	traveler *game_models.Player, state *game_models.TravelerState) {
	if state == nil || traveler == nil || state.IsArrested || state.IsWavedThrough {
		return
	}

	state.IsArrested = true
	state.RevealedLuggage = append([]game_models.SuitcaseCard(nil), state.Luggage...)

	totalBottles := luggageTotal(state)
	if totalBottles > room.LegalLimit {
		// Contraband: the guard seizes the full value from the stock.
		guard.BottleCaps += totalBottles
		room.GeneralStock -= totalBottles
		log.Printf("[GUARD-ARREST] %s caught with %d bottles (limit %d), guard %s seizes them",
			traveler.ID, totalBottles, room.LegalLimit, guard.ID)
	} else {
		penalty := game_constants.WrongfulArrestPenalty
		if room.EventCard != nil && room.EventCard.Effect == game_models.EffectTipOff {
			penalty = 0
		}
		guard.BottleCaps -= penalty
		traveler.BottleCaps += penalty

		// Honest single-bottle declaration earns an extra cap from the stock.
		if totalBottles == 1 {
			traveler.BottleCaps += game_constants.SingleBottleBonus
			room.GeneralStock -= game_constants.SingleBottleBonus
		}
		log.Printf("[GUARD-ARREST] Wrongful arrest of %s (%d bottles, limit %d), penalty %d",
			traveler.ID, totalBottles, room.LegalLimit, penalty)
	}

	discardResolvedCards(room, state)
}

// FinishGuardActions waves through every traveler not yet resolved, crediting
// their full luggage value from the general stock, and moves the room into
// scoring. The caller schedules the round rotation afterwards.
func FinishGuardActions(room *game_models.Room, playerID string) error {
	if !PhaseAllows(room.Phase, MsgFinishGuardActions) {
		return ErrWrongPhaseForAction
	}
	guard := room.FindPlayer(playerID)
	if guard == nil || !guard.IsBorderGuard {
		return ErrNotBorderGuard
	}

	for _, traveler := range room.Travelers() {
		state := room.TravelerStates[traveler.ID]
		if state == nil || state.IsBribeAccepted || state.IsArrested {
			continue
		}
		state.IsWavedThrough = true

		bottles := luggageTotal(state)
		traveler.BottleCaps += bottles
		room.GeneralStock -= bottles

		discardResolvedCards(room, state)
	}

	room.Phase = game_models.PhaseScoring
	log.Printf("[GUARD-FINISH] Room %s guard actions finished, scoring round %d", room.Code, room.Round)
	return nil
}

// AdvanceRound rotates the border guard role to the next player in join
// order, bumps the round counter and either starts the next round or ends
// the game. Fired by the room's scoring timer.
func AdvanceRound(room *game_models.Room) {
	guardIndex := 0
	for i, p := range room.Players {
		if p.ID == room.CurrentBorderGuardID {
			guardIndex = i
			break
		}
	}
	next := room.Players[(guardIndex+1)%len(room.Players)]
	room.CurrentBorderGuardID = next.ID

	room.Round++
	if room.Round > room.MaxRounds {
		room.Phase = game_models.PhaseGameEnd
		log.Printf("[GAME-END] Room %s finished after %d rounds", room.Code, room.MaxRounds)
		return
	}

	StartNewRound(room)
}

// FinalRanking returns the players sorted descending by bottle caps. The
// sort is stable, so ties keep their join order.
func FinalRanking(room *game_models.Room) []*game_models.Player {
	ranking := append([]*game_models.Player(nil), room.Players...)
	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].BottleCaps > ranking[j].BottleCaps
	})
	return ranking
}

func luggageTotal(state *game_models.TravelerState) int {
	total := 0
	for _, card := range state.Luggage {
		total += card.Bottles
	}
	return total
}

// discardResolvedCards moves a resolved traveler's bribe and luggage to the
// discard pile and clears them from the state. RevealedLuggage is kept as the
// public record of what was shown this round.
func discardResolvedCards(room *game_models.Room, state *game_models.TravelerState) {
	if state.Bribe != nil {
		room.DiscardPile = append(room.DiscardPile, *state.Bribe)
		state.Bribe = nil
	}
	room.DiscardPile = append(room.DiscardPile, state.Luggage...)
	state.Luggage = nil
}
