package seed

import (
	"time"

	"github.com/17SergioFurtado/mongodb-eduhub-project/internal/models"
)

// Lessons returns the 40 sample lessons. Each lesson pairs with the
// assignment of the same ID.
func Lessons() []models.Lesson {
	return []models.Lesson{
		lesson(1, 1, "Intro to Python", "Python basics, syntax and setup."),
		lesson(2, 1, "Data Types and Variables", "Understanding Python data types."),
		lesson(3, 2, "HTML Basics", "Intro to HTML and structure of web pages."),
		lesson(4, 2, "CSS Basics", "Styling web pages with CSS."),
		lesson(5, 3, "JavaScript Fundamentals", "Variables, functions and events in JS."),
		lesson(6, 3, "DOM Manipulation", "Selecting and modifying HTML elements."),
		lesson(7, 4, "SQL Basics", "Introduction to SQL queries."),
		lesson(8, 4, "Joins and Aggregation", "Advanced SQL queries."),
		lesson(9, 5, "Git Basics", "Version control introduction."),
		lesson(10, 5, "Git Branching", "Working with branches in Git."),
		lesson(11, 6, "Docker Introduction", "Containers and Docker basics."),
		lesson(12, 6, "Docker Compose", "Managing multi-container apps."),
		lesson(13, 7, "Python OOP", "Object-oriented programming concepts."),
		lesson(14, 7, "Advanced OOP", "Inheritance, polymorphism, and encapsulation."),
		lesson(15, 8, "REST APIs Intro", "Building RESTful services."),
		lesson(16, 8, "API Security", "Authentication and authorization."),
		lesson(17, 9, "Cloud Basics", "Intro to cloud computing."),
		lesson(18, 9, "AWS Services", "Core AWS services overview."),
		lesson(19, 10, "Kubernetes Intro", "Containers orchestration basics."),
		lesson(20, 10, "K8s Deployments", "Managing deployments in Kubernetes."),
		lesson(21, 11, "Data Analysis Intro", "Analyzing data with Pandas."),
		lesson(22, 11, "Data Visualization", "Creating charts with matplotlib."),
		lesson(23, 12, "Machine Learning Intro", "Supervised and unsupervised learning."),
		lesson(24, 12, "ML Algorithms", "Regression, classification, clustering."),
		lesson(25, 13, "Big Data Overview", "Introduction to Big Data concepts."),
		lesson(26, 13, "Hadoop Basics", "Hadoop ecosystem and architecture."),
		lesson(27, 14, "NoSQL Intro", "Key concepts of NoSQL databases."),
		lesson(28, 14, "MongoDB Basics", "CRUD operations and aggregation."),
		lesson(29, 15, "Python Data Science", "Using Python for data analysis."),
		lesson(30, 15, "Data Science Project", "Hands-on project for data science."),
		lesson(31, 1, "Python Functions", "Defining and using functions in Python."),
		lesson(32, 2, "Forms in HTML", "Creating interactive forms."),
		lesson(33, 3, "Events in JavaScript", "Handling user interactions."),
		lesson(34, 4, "Indexes in SQL", "Creating and using indexes for performance."),
		lesson(35, 5, "Git Merge Conflicts", "Resolving conflicts in Git."),
		lesson(36, 6, "Docker Networking", "Managing networks in Docker."),
		lesson(37, 7, "OOP Design Patterns", "Common patterns in software design."),
		lesson(38, 8, "API Testing", "Testing REST APIs with Postman."),
		lesson(39, 9, "Cloud Security", "Best practices for securing cloud services."),
		lesson(40, 10, "Kubernetes Services", "Exposing applications with services."),
	}
}

func lesson(id, courseID int, title, description string) models.Lesson {
	created := lessonDate(id)
	return models.Lesson{
		LessonID:     id,
		CourseID:     courseID,
		Title:        title,
		Description:  description,
		AssignmentID: id,
		IsActive:     true,
		CreatedAt:    created,
		UpdatedAt:    created,
	}
}

// Lessons 1-30 were authored daily through January, 31-40 through February.
func lessonDate(id int) time.Time {
	if id <= 30 {
		return at(2023, time.January, id, 10, 0)
	}
	return at(2023, time.February, id-30, 10, 0)
}
