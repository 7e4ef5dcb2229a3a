package seed

import (
	"time"

	"github.com/17SergioFurtado/mongodb-eduhub-project/internal/models"
)

// Courses returns the 16 sample courses across eight categories.
func Courses() []models.Course {
	return []models.Course{
		course(1, "Introduction to Python", "Learn the basics of Python programming.",
			17, "Programming", models.LevelBeginner, 20, 49.99,
			[]string{"python", "programming", "basics"}, 4.5,
			at(2023, time.January, 10, 9, 0), at(2023, time.May, 1, 12, 0)),
		course(2, "Advanced Python", "Master advanced Python concepts and best practices.",
			18, "Programming", models.LevelAdvanced, 35, 99.99,
			[]string{"python", "advanced", "OOP"}, 4.8,
			at(2023, time.February, 15, 10, 0), at(2023, time.June, 20, 14, 0)),
		course(3, "Data Science Basics", "Introduction to data science, statistics, and visualization.",
			19, "Data Science", models.LevelBeginner, 25, 59.99,
			[]string{"data science", "statistics", "visualization"}, 4.6,
			at(2023, time.March, 1, 11, 0), at(2023, time.June, 15, 12, 0)),
		course(4, "Machine Learning A-Z", "Learn machine learning algorithms from scratch.",
			20, "Data Science", models.LevelIntermediate, 40, 129.99,
			[]string{"machine learning", "python", "AI"}, 4.7,
			at(2023, time.March, 10, 9, 0), at(2023, time.July, 1, 15, 0)),
		course(5, "Web Development with HTML, CSS, JS", "Build interactive websites using HTML, CSS, and JavaScript.",
			17, "Web Development", models.LevelBeginner, 30, 79.99,
			[]string{"web", "html", "css", "javascript"}, 4.3,
			at(2023, time.January, 20, 8, 0), at(2023, time.May, 25, 13, 0)),
		course(6, "React for Beginners", "Learn how to build dynamic front-end applications using React.",
			18, "Web Development", models.LevelBeginner, 28, 89.99,
			[]string{"react", "javascript", "frontend"}, 4.4,
			at(2023, time.February, 5, 10, 30), at(2023, time.June, 5, 12, 30)),
		course(7, "Node.js and Express", "Server-side development with Node.js and Express.",
			19, "Backend Development", models.LevelIntermediate, 32, 99.99,
			[]string{"nodejs", "express", "backend"}, 4.5,
			at(2023, time.March, 1, 9, 30), at(2023, time.July, 10, 14, 0)),
		course(8, "Docker Essentials", "Learn containerization concepts and Docker fundamentals.",
			20, "DevOps", models.LevelBeginner, 18, 59.99,
			[]string{"docker", "containers", "devops"}, 4.2,
			at(2023, time.January, 25, 11, 0), at(2023, time.May, 30, 13, 30)),
		course(9, "Kubernetes for Beginners", "Introduction to Kubernetes and container orchestration.",
			17, "DevOps", models.LevelIntermediate, 25, 79.99,
			[]string{"kubernetes", "containers", "orchestration"}, 4.3,
			at(2023, time.February, 15, 9, 45), at(2023, time.June, 20, 12, 30)),
		course(10, "SQL for Beginners", "Learn to query databases using SQL.",
			18, "Database", models.LevelBeginner, 20, 49.99,
			[]string{"sql", "database", "query"}, 4.4,
			at(2023, time.January, 12, 8, 30), at(2023, time.May, 15, 11, 0)),
		course(11, "PostgreSQL Advanced", "Advanced PostgreSQL features and optimization techniques.",
			19, "Database", models.LevelAdvanced, 30, 99.99,
			[]string{"postgresql", "database", "advanced"}, 4.6,
			at(2023, time.March, 1, 10, 0), at(2023, time.June, 25, 14, 0)),
		course(12, "Introduction to AI", "Basic concepts and applications of Artificial Intelligence.",
			20, "AI", models.LevelBeginner, 22, 69.99,
			[]string{"AI", "artificial intelligence", "machine learning"}, 4.3,
			at(2023, time.February, 1, 11, 0), at(2023, time.June, 5, 12, 0)),
		course(13, "Advanced AI Techniques", "Deep dive into AI algorithms and neural networks.",
			17, "AI", models.LevelAdvanced, 40, 149.99,
			[]string{"AI", "neural networks", "deep learning"}, 4.7,
			at(2023, time.March, 15, 9, 0), at(2023, time.July, 5, 14, 0)),
		course(14, "Cloud Computing Basics", "Learn the fundamentals of cloud services and architecture.",
			18, "Cloud", models.LevelBeginner, 18, 59.99,
			[]string{"cloud", "AWS", "azure", "basics"}, 4.2,
			at(2023, time.January, 28, 10, 0), at(2023, time.June, 1, 12, 0)),
		course(15, "AWS Certified Solutions Architect", "Prepare for AWS certification with hands-on labs and examples.",
			19, "Cloud", models.LevelIntermediate, 35, 129.99,
			[]string{"AWS", "cloud", "certification"}, 4.6,
			at(2023, time.February, 10, 9, 30), at(2023, time.June, 20, 14, 0)),
		course(16, "Cybersecurity Fundamentals", "Introduction to cybersecurity concepts and practices.",
			20, "Security", models.LevelBeginner, 25, 79.99,
			[]string{"cybersecurity", "security", "basics"}, 4.4,
			at(2023, time.March, 1, 10, 30), at(2023, time.July, 1, 15, 30)),
	}
}

func course(id int, title, description string, instructorID int, category string,
	level models.DifficultyLevel, duration int, price float64, tags []string,
	rate float64, created, updated time.Time) models.Course {
	return models.Course{
		CourseID:        id,
		Title:           title,
		Description:     description,
		InstructorID:    instructorID,
		Category:        category,
		DifficultyLevel: level,
		Duration:        duration,
		Price:           price,
		Tags:            tags,
		IsPublished:     true,
		IsActive:        true,
		ReviewRate:      rate,
		CreatedAt:       created,
		UpdatedAt:       updated,
	}
}
