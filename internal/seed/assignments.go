package seed

import (
	"time"

	"github.com/17SergioFurtado/mongodb-eduhub-project/internal/models"
)

// Assignments returns the 15 sample assignments, one per lesson of the
// first eight courses.
func Assignments() []models.Assignment {
	return []models.Assignment{
		assignment(1, 1, "Python Setup Assignment", "Install Python and run your first script."),
		assignment(2, 1, "Variables and Data Types", "Create variables of different types."),
		assignment(3, 2, "HTML Structure Assignment", "Build a basic HTML page with headings and paragraphs."),
		assignment(4, 2, "CSS Styling Assignment", "Style your HTML page using CSS."),
		assignment(5, 3, "JavaScript Functions", "Write JS functions to handle basic operations."),
		assignment(6, 3, "DOM Manipulation Task", "Change HTML content using JS DOM methods."),
		assignment(7, 4, "Basic SQL Queries", "Write SELECT queries to fetch data from tables."),
		assignment(8, 4, "SQL Joins Assignment", "Use INNER, LEFT, and RIGHT joins on sample tables."),
		assignment(9, 5, "Git Init and Commit", "Initialize a repo and make your first commits."),
		assignment(10, 5, "Git Branching Exercise", "Create and merge branches in Git."),
		assignment(11, 6, "Dockerfile Creation", "Create a Dockerfile and build an image."),
		assignment(12, 6, "Docker Compose File", "Set up a multi-container application using Docker Compose."),
		assignment(13, 7, "OOP Class Design", "Design classes using inheritance and encapsulation."),
		assignment(14, 7, "Polymorphism Exercise", "Implement polymorphism in a small program."),
		assignment(15, 8, "API REST Assignment", "Build a simple REST API with GET and POST endpoints."),
	}
}

// Each assignment belongs to the lesson with the same ID, was created with
// that lesson, and is due four days later at 23:59.
func assignment(id, courseID int, title, description string) models.Assignment {
	created := at(2023, time.January, id, 10, 0)
	return models.Assignment{
		AssignmentID: id,
		LessonID:     id,
		CourseID:     courseID,
		Title:        title,
		Description:  description,
		DueDate:      at(2023, time.January, id+4, 23, 59),
		IsActive:     true,
		CreatedAt:    created,
		UpdatedAt:    created,
	}
}
