package seeder

func Defaults() []Seeder {
	return []Seeder{
		JobsSeeder{},
		QuizSeeder{},
		DemoUserSeeder{},
	}
}
