// Package journal turns game step events into log lines and saved scores.
// Every host feeds it the events returned by Game.Step.
package journal

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/zombie-run/internal/core"
)

// ScoreSaver persists finished runs. *storage.Store implements it.
type ScoreSaver interface {
	SaveScore(gameID, player string, score, stars int) (int64, error)
}

// Journal records one player's session of one game.
type Journal struct {
	gameID string
	player string
	store  ScoreSaver
	logger *log.Logger
}

// New creates a journal. A nil store plays without persistence and a nil
// logger discards output.
func New(gameID, player string, store ScoreSaver, logger *log.Logger) *Journal {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Journal{
		gameID: gameID,
		player: player,
		store:  store,
		logger: logger,
	}
}

// Logger returns the journal's logger.
func (j *Journal) Logger() *log.Logger {
	return j.logger
}

// Record handles every event from one tick.
func (j *Journal) Record(events []core.Event) {
	for _, e := range events {
		j.handle(e)
	}
}

func (j *Journal) handle(e core.Event) {
	switch e.Kind {
	case core.EventGameOver:
		j.logger.Info("game over", "game", j.gameID, "player", j.player, "score", e.State.Score, "stars", e.State.Bonus)
		j.save(e.State)
	case core.EventRestarted:
		j.logger.Info("round restarted", "game", j.gameID, "player", j.player)
	default:
		j.logger.Debug(e.Kind.String(), "game", j.gameID, "player", j.player, "score", e.State.Score, "stars", e.State.Bonus, "t_ms", e.TimeMs)
	}
}

// save records a finished run. Empty runs are not worth a row.
func (j *Journal) save(st core.GameState) {
	if j.store == nil || st.Score <= 0 {
		return
	}
	id, err := j.store.SaveScore(j.gameID, j.player, st.Score, st.Bonus)
	if err != nil {
		j.logger.Warn("could not save score", "error", err)
		return
	}
	j.logger.Info("score saved", "id", id, "player", j.player, "score", st.Score, "stars", st.Bonus)
}
