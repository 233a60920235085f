package service

import (
	"encoding/json"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mwaldren/chessmate-backend/internal/model"

	"github.com/gofiber/websocket/v2"
)

// MatchFoundEvent tells a queued player which game it was placed in.
type MatchFoundEvent struct {
	GameID string            `json:"gameId"`
	Color  model.PlayerColor `json:"color"`
}

// GameManager owns every live session, the matchmaking queue, and the
// per-player channels waiting on a match.
type GameManager struct {
	games            map[string]*GameSession
	queue            *Queue
	matchingChannels map[string]chan string
	clockTime        time.Duration
	mu               sync.RWMutex
}

func NewGameManager(clockTime time.Duration) *GameManager {
	gm := &GameManager{
		games:            make(map[string]*GameSession),
		queue:            NewQueue(),
		matchingChannels: make(map[string]chan string),
		clockTime:        clockTime,
	}

	go gm.processMatchmaking()

	return gm
}

func (gm *GameManager) RegisterMatchmakingChannel(playerID string, ch chan string) error {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	// Drop any stale channel first so no new writes can reach it.
	if existing, exists := gm.matchingChannels[playerID]; exists {
		delete(gm.matchingChannels, playerID)
		close(existing)
	}

	gm.matchingChannels[playerID] = ch
	return nil
}

func (gm *GameManager) UnregisterMatchmakingChannel(playerID string) {
	gm.mu.Lock()
	defer gm.mu.Unlock()
	delete(gm.matchingChannels, playerID)
}

// processMatchmaking pairs the two longest-waiting players once a
// second, creates their session, and notifies both over their
// matchmaking channels.
func (gm *GameManager) processMatchmaking() {
	ticker := time.NewTicker(1 * time.Second)
	defer ticker.Stop()

	for range ticker.C {
		gm.mu.Lock()
		for gm.queue.Size() >= 2 {
			player1, player2 := gm.queue.GetNextPair()

			gameID := uuid.New().String()
			session := NewGameSession(gameID, gm.clockTime)

			p1Color, err := session.AddPlayer(player1)
			if err != nil {
				log.Printf("matchmaking: seat player %s: %v", player1, err)
				continue
			}
			p2Color, err := session.AddPlayer(player2)
			if err != nil {
				log.Printf("matchmaking: seat player %s: %v", player2, err)
				continue
			}
			gm.games[gameID] = session

			gm.notifyMatch(player1, MatchFoundEvent{GameID: gameID, Color: p1Color})
			gm.notifyMatch(player2, MatchFoundEvent{GameID: gameID, Color: p2Color})
		}
		gm.mu.Unlock()
	}
}

// notifyMatch sends the event to the player's matchmaking channel, if
// one is registered, and retires the channel. Callers hold gm.mu.
func (gm *GameManager) notifyMatch(playerID string, event MatchFoundEvent) {
	ch, ok := gm.matchingChannels[playerID]
	if !ok {
		return
	}

	payload, err := json.Marshal(event)
	if err != nil {
		log.Printf("matchmaking: marshal event: %v", err)
		return
	}

	select {
	case ch <- string(payload):
		delete(gm.matchingChannels, playerID)
		close(ch)
	default:
		log.Printf("matchmaking: player %s not receiving", playerID)
	}
}

func (gm *GameManager) CreateGame(gameID string) error {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if _, exists := gm.games[gameID]; exists {
		return errors.New("game already exists")
	}

	gm.games[gameID] = NewGameSession(gameID, gm.clockTime)
	return nil
}

func (gm *GameManager) GetGame(gameID string) (*GameSession, error) {
	gm.mu.RLock()
	defer gm.mu.RUnlock()

	session, exists := gm.games[gameID]
	if !exists {
		return nil, errors.New("game not found")
	}
	return session, nil
}

func (gm *GameManager) AddPlayerToGame(gameID, playerID string) (model.PlayerColor, error) {
	session, err := gm.GetGame(gameID)
	if err != nil {
		return "", err
	}
	return session.AddPlayer(playerID)
}

func (gm *GameManager) JoinMatchmaking(playerID string) error {
	return gm.queue.AddPlayer(playerID)
}

func (gm *GameManager) GetGameState(gameID string) (GameState, error) {
	session, err := gm.GetGame(gameID)
	if err != nil {
		return GameState{}, err
	}
	return session.State(), nil
}

func (gm *GameManager) MakeMove(gameID, playerID string, req MoveRequest) error {
	session, err := gm.GetGame(gameID)
	if err != nil {
		return err
	}
	return session.MakeMove(playerID, req)
}

func (gm *GameManager) Resign(gameID, playerID string) error {
	session, err := gm.GetGame(gameID)
	if err != nil {
		return err
	}
	return session.Resign(playerID)
}

func (gm *GameManager) RegisterConnection(gameID, playerID string, conn *websocket.Conn) error {
	session, err := gm.GetGame(gameID)
	if err != nil {
		return err
	}
	return session.RegisterConnection(playerID, conn)
}

func (gm *GameManager) UnregisterConnection(gameID, playerID string) {
	session, err := gm.GetGame(gameID)
	if err != nil {
		return
	}
	session.UnregisterConnection(playerID)
}
