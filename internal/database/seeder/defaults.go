package seeder

func Defaults() []Seeder {
	return []Seeder{
		EducationLevelsSeeder{},
		CareerGoalsSeeder{},
		SampleJobSeeder{},
	}
}
