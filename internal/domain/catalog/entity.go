package catalog

type Skill struct {
	Name string
}

type Location struct {
	Name   string
	Code   string
	Region string
}

var EducationLevels = []string{
	"High School",
	"Associate's Degree",
	"Bachelor's Degree",
	"Master's Degree",
	"PhD",
	"Other",
}

var CareerGoals = []string{
	"Software Engineer",
	"Data Scientist",
	"Product Manager",
	"DevOps Engineer",
	"Full Stack Developer",
	"AI/ML Engineer",
	"Cloud Architect",
	"Security Engineer",
}
