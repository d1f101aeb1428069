package seeder

import (
	"context"
	"fmt"

	"career-orient/internal/database"
)

type QuizSeeder struct{}

func (QuizSeeder) Name() string { return "quiz" }

type seedQuestion struct {
	Text    string
	Options []string
	Tags    []string
}

const orientationQuizTitle = "Career Orientation Quiz"

var orientationQuestions = []seedQuestion{
	{
		Text:    "Where do you prefer to work?",
		Options: []string{"In an office with a team", "From home", "Outdoors in the field", "In a lab or workshop"},
		Tags:    []string{"Office", "Remote", "Outdoor", "Workshop"},
	},
	{
		Text:    "Which activity motivates you most?",
		Options: []string{"Solving complex problems", "Creating and innovating", "Helping and advising others", "Organizing and planning"},
		Tags:    []string{"Problem Solving", "Creative", "Support", "Organization"},
	},
	{
		Text:    "How do you prefer to communicate?",
		Options: []string{"Presenting to an audience", "Small group discussions", "Written exchanges and email", "Visual and creative communication"},
		Tags:    []string{"Presentation", "Small Groups", "Written", "Visual"},
	},
	{
		Text:    "Which responsibilities attract you?",
		Options: []string{"Managing a team", "Being an expert in my field", "Running projects", "Autonomy in my tasks"},
		Tags:    []string{"Management", "Expert", "Projects", "Autonomy"},
	},
	{
		Text:    "What do you excel at?",
		Options: []string{"Analysis and logic", "Creativity and innovation", "Human relationships", "Organization and management"},
		Tags:    []string{"Analysis", "Creative", "People", "Organization"},
	},
}

func (QuizSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "questions", "id", "quiz_id", "position", "text", "options", "option_tags", "correct"); err != nil {
		return err
	}

	return database.WithTx(ctx, db, func(tx database.Tx) error {
		var exists bool
		if err := tx.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM quizzes WHERE title = $1)`, orientationQuizTitle).Scan(&exists); err != nil {
			return err
		}
		if exists {
			return nil
		}

		var quizID int64
		err := tx.QueryRow(
			ctx,
			`INSERT INTO quizzes (title, description) VALUES ($1, $2) RETURNING id`,
			orientationQuizTitle,
			"Find the professional profile that suits you best",
		).Scan(&quizID)
		if err != nil {
			return fmt.Errorf("insert quiz: %w", err)
		}

		for i, q := range orientationQuestions {
			if len(q.Options) != len(q.Tags) {
				return fmt.Errorf("question %d: %d options but %d tags", i, len(q.Options), len(q.Tags))
			}
			_, err := tx.Exec(
				ctx,
				`INSERT INTO questions (quiz_id, position, text, options, option_tags) VALUES ($1, $2, $3, $4, $5)`,
				quizID, i, q.Text, q.Options, q.Tags,
			)
			if err != nil {
				return fmt.Errorf("insert question %d: %w", i, err)
			}
		}
		return nil
	})
}
