// simulation/simulation.go
package simulation

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/lernquiz/backend/internal/domain/progress"
	"github.com/lernquiz/backend/internal/loader"
	"github.com/lernquiz/backend/internal/service"
	"github.com/lernquiz/backend/internal/store"
	"github.com/lernquiz/backend/internal/worker"
)

const demoDataset = `[
	{"id":1,"type":"mc","question":"What is a goroutine?","options":["A lightweight thread managed by the Go runtime","An OS thread","A process"],"correct":[0],"explanation":"Goroutines are multiplexed onto OS threads by the runtime."},
	{"id":2,"type":"mc","question":"Which of these are channel operations?","options":["send","receive","compile"],"correct":[0,1],"answerType":"multi"},
	{"id":3,"type":"open","question":"Explain what defer does.","solution":"Defer schedules a call to run when the surrounding function returns."}
]`

// SimulateWork plays one session against an in-process stack: answer every
// question, review the misses in focus mode and master them. Useful as a
// smoke run during development.
func SimulateWork(logger *slog.Logger) error {
	tmp, err := os.MkdirTemp("", "lernquiz-sim-*")
	if err != nil {
		return err
	}
	defer os.RemoveAll(tmp)

	if err := os.WriteFile(filepath.Join(tmp, "go_basics.json"), []byte(demoDataset), 0o644); err != nil {
		return err
	}

	players, err := store.NewJSONFileStore(filepath.Join(tmp, "progress"), logger)
	if err != nil {
		return err
	}

	pool := worker.NewPool(2, 8)
	defer pool.Close()

	scores := service.NewScoreService(nil, pool, logger)
	sessions := service.NewSessionService(loader.NewCatalog(tmp), players, scores, 2, logger)

	const player = "demo"

	// First pass: get the first one right, miss the rest.
	answered := 0
	for {
		v, err := sessions.Current("go_basics", player)
		if err != nil {
			return err
		}
		if v.Finished {
			break
		}

		var out progress.Outcome
		if answered == 0 {
			out = correctOutcome(v.Question.ID)
		} else {
			out = progress.Outcome{Skipped: true}
		}
		res, err := sessions.Submit("go_basics", player, v.Question.ID, out)
		if err != nil {
			return err
		}
		answered++
		fmt.Printf("answered question %d, today: %+v\n", v.Question.ID, res.View.Today)
	}

	// Review the misses until everything is mastered.
	if _, err := sessions.EnterFocus("go_basics", player); err != nil {
		return err
	}
	fmt.Println("entered focus review")

	for {
		v, err := sessions.Current("go_basics", player)
		if err != nil {
			return err
		}
		if v.Finished {
			break
		}
		if _, err := sessions.Submit("go_basics", player, v.Question.ID, correctOutcome(v.Question.ID)); err != nil {
			return err
		}
		fmt.Printf("mastered question %d\n", v.Question.ID)
	}

	if _, err := sessions.ExitFocus("go_basics", player); err != nil {
		return err
	}

	rows, err := sessions.MissedRows("go_basics", player)
	if err != nil {
		return err
	}
	fmt.Printf("missed after review: %d\n", len(rows))
	return nil
}

func correctOutcome(questionID int) progress.Outcome {
	switch questionID {
	case 1:
		return progress.Outcome{Selected: []int{0}}
	case 2:
		return progress.Outcome{Selected: []int{0, 1}}
	default:
		yes := true
		return progress.Outcome{Correct: &yes}
	}
}
