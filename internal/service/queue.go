package service

import (
	"fmt"
	"sync"
	"time"
)

type queuedPlayer struct {
	playerID string
	joinedAt time.Time
}

// Queue holds players waiting for a match, longest-waiting first.
type Queue struct {
	players []queuedPlayer
	mu      sync.Mutex
}

func NewQueue() *Queue {
	return &Queue{players: []queuedPlayer{}}
}

func (q *Queue) AddPlayer(playerID string) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	for _, p := range q.players {
		if p.playerID == playerID {
			return fmt.Errorf("player already in queue")
		}
	}

	q.players = append(q.players, queuedPlayer{
		playerID: playerID,
		joinedAt: time.Now(),
	})
	return nil
}

// GetNextPair pops the two players who have been waiting longest.
// Callers must check Size() >= 2 first.
func (q *Queue) GetNextPair() (string, string) {
	q.mu.Lock()
	defer q.mu.Unlock()

	player1 := q.players[0].playerID
	player2 := q.players[1].playerID
	q.players = q.players[2:]

	return player1, player2
}

func (q *Queue) Size() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.players)
}
