package dataset

// Dataset describes one selectable question set. The id doubles as the file
// stem on disk and as part of every player's persistence key.
type Dataset struct {
	ID            string
	Name          string
	QuestionCount int
}
