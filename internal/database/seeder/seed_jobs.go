package seeder

import (
	"context"
	"fmt"

	"career-orient/internal/database"
)

type JobsSeeder struct{}

func (JobsSeeder) Name() string { return "jobs" }

type seedJob struct {
	Title       string
	Company     string
	Location    string
	Description string
	SalaryRange string
	Tags        []string
}

var defaultJobs = []seedJob{
	{
		Title: "Frontend React Developer", Company: "TechCorp", Location: "Paris",
		Description: "Build modern web applications with React and TypeScript.",
		SalaryRange: "45K - 55K EUR",
		Tags:        []string{"React", "TypeScript", "JavaScript", "Office", "Problem Solving", "Expert"},
	},
	{
		Title: "UX Designer", Company: "DesignStudio", Location: "Lyon",
		Description: "Design delightful user experiences from research to prototype.",
		SalaryRange: "50K - 60K EUR",
		Tags:        []string{"Figma", "Design", "Prototyping", "Creative", "Visual", "Remote"},
	},
	{
		Title: "Data Analyst", Company: "Insight Labs", Location: "Remote",
		Description: "Turn raw data into decisions with SQL and dashboards.",
		SalaryRange: "42K - 52K EUR",
		Tags:        []string{"SQL", "Analysis", "Remote", "Written", "Expert"},
	},
	{
		Title: "Project Manager", Company: "BuildCo", Location: "Marseille",
		Description: "Plan and deliver cross-functional projects on time.",
		SalaryRange: "55K - 65K EUR",
		Tags:        []string{"Organization", "Management", "Presentation", "Office", "Projects"},
	},
	{
		Title: "Career Counselor", Company: "Avenir", Location: "Bordeaux",
		Description: "Guide students and professionals through career choices.",
		SalaryRange: "35K - 42K EUR",
		Tags:        []string{"Support", "Small Groups", "People", "Office", "Autonomy"},
	},
	{
		Title: "Field Environmental Technician", Company: "GreenWorks", Location: "Nantes",
		Description: "Collect and analyse environmental samples on site.",
		SalaryRange: "32K - 38K EUR",
		Tags:        []string{"Outdoor", "Analysis", "Autonomy", "Small Groups"},
	},
	{
		Title: "Prototype Maker", Company: "FabLab Industries", Location: "Lille",
		Description: "Prototype physical products in a fully equipped workshop.",
		SalaryRange: "38K - 45K EUR",
		Tags:        []string{"Workshop", "Creative", "Projects", "Visual"},
	},
}

func (JobsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "jobs", "id", "title", "company", "location", "description", "salary_range", "tags", "posted_at"); err != nil {
		return err
	}

	return database.WithTx(ctx, db, func(tx database.Tx) error {
		for _, it := range defaultJobs {
			_, err := tx.Exec(
				ctx,
				`INSERT INTO jobs (title, company, location, description, salary_range, tags)
				 SELECT $1::text, $2::text, $3::text, $4::text, $5::text, $6::text[]
				 WHERE NOT EXISTS (SELECT 1 FROM jobs WHERE title = $1::text AND company = $2::text)`,
				it.Title, it.Company, it.Location, it.Description, it.SalaryRange, it.Tags,
			)
			if err != nil {
				return fmt.Errorf("insert job %q: %w", it.Title, err)
			}
		}
		return nil
	})
}
