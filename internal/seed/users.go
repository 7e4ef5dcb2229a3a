package seed

import (
	"strings"
	"time"

	"github.com/17SergioFurtado/mongodb-eduhub-project/internal/models"
)

// Users returns the 32 sample users: 28 students and 4 instructors.
func Users() []models.User {
	return []models.User{
		student(1, "Alice", "Johnson", at(2023, time.January, 15, 10, 0), "Loves learning Python", []string{"Python", "Data Analysis"}, at(2023, time.September, 20, 12, 0)),
		student(2, "Bob", "Smith", at(2023, time.February, 10, 9, 30), "Front-end enthusiast", []string{"HTML", "CSS", "JavaScript"}, at(2023, time.September, 18, 11, 0)),
		student(3, "Carol", "Davis", at(2023, time.March, 1, 8, 45), "Data Science beginner", []string{"Python", "Statistics"}, at(2023, time.September, 15, 10, 0)),
		student(4, "David", "Wilson", at(2023, time.January, 20, 10, 15), "AI hobbyist", []string{"Python", "Machine Learning"}, at(2023, time.September, 19, 9, 30)),
		student(5, "Emma", "Taylor", at(2023, time.February, 25, 11, 0), "Web developer in training", []string{"HTML", "CSS"}, at(2023, time.September, 21, 12, 15)),
		student(6, "Frank", "Anderson", at(2023, time.March, 10, 9, 30), "Interested in DevOps", []string{"Docker", "Kubernetes"}, at(2023, time.September, 20, 11, 45)),
		student(7, "Grace", "Thomas", at(2023, time.January, 28, 10, 0), "Learning backend development", []string{"Node.js", "Express"}, at(2023, time.September, 19, 10, 30)),
		student(8, "Henry", "Moore", at(2023, time.February, 5, 9, 0), "Database enthusiast", []string{"SQL", "PostgreSQL"}, at(2023, time.September, 18, 11, 15)),
		student(9, "Isabel", "Martin", at(2023, time.March, 12, 8, 30), "Learning AI", []string{"Python", "TensorFlow"}, at(2023, time.September, 21, 9, 50)),
		student(10, "Jack", "Lee", at(2023, time.January, 18, 10, 20), "Cloud computing beginner", []string{"AWS", "Azure"}, at(2023, time.September, 20, 10, 40)),
		student(11, "Kate", "Perez", at(2023, time.February, 22, 11, 10), "Cybersecurity enthusiast", []string{"Network Security", "Linux"}, at(2023, time.September, 19, 12, 0)),
		student(12, "Leo", "Harris", at(2023, time.March, 5, 9, 50), "Loves Python scripting", []string{"Python", "Automation"}, at(2023, time.September, 18, 10, 20)),
		student(13, "Mia", "Clark", at(2023, time.January, 30, 10, 5), "Full-stack web developer", []string{"React", "Node.js"}, at(2023, time.September, 21, 11, 10)),
		student(14, "Nick", "Lewis", at(2023, time.February, 12, 9, 40), "Interested in DevOps", []string{"Docker", "CI/CD"}, at(2023, time.September, 20, 12, 30)),
		student(15, "Olivia", "Walker", at(2023, time.March, 7, 8, 50), "Learning Data Science", []string{"Python", "Pandas"}, at(2023, time.September, 19, 10, 50)),
		student(16, "Paul", "Hall", at(2023, time.January, 25, 10, 30), "Interested in AI", []string{"Python", "Keras"}, at(2023, time.September, 21, 12, 10)),
		instructor(17, "Queen", "Allen", at(2022, time.December, 10, 9, 0), "Expert in Python", []string{"Python", "Data Science"}, at(2023, time.September, 15, 12, 0)),
		instructor(18, "Roger", "Young", at(2022, time.November, 5, 8, 30), "Web development instructor", []string{"HTML", "CSS", "JavaScript"}, at(2023, time.September, 18, 11, 40)),
		instructor(19, "Sophia", "King", at(2022, time.December, 15, 9, 15), "AI and ML instructor", []string{"Python", "Machine Learning"}, at(2023, time.September, 20, 10, 30)),
		instructor(20, "Tom", "Scott", at(2022, time.December, 20, 8, 45), "Cloud computing instructor", []string{"AWS", "Azure"}, at(2023, time.September, 21, 11, 50)),
		student(21, "Uma", "Adams", at(2023, time.February, 1, 10, 10), "Learning front-end", []string{"React", "CSS"}, at(2023, time.September, 20, 10, 20)),
		student(22, "Victor", "Baker", at(2023, time.February, 18, 9, 35), "Backend beginner", []string{"Node.js", "Express"}, at(2023, time.September, 19, 11, 15)),
		student(23, "Wendy", "Carter", at(2023, time.March, 3, 8, 55), "Learning DevOps", []string{"Docker", "Kubernetes"}, at(2023, time.September, 21, 12, 40)),
		student(24, "Xander", "Evans", at(2023, time.January, 27, 10, 20), "Database learner", []string{"SQL", "PostgreSQL"}, at(2023, time.September, 18, 10, 50)),
		student(25, "Yara", "Foster", at(2023, time.February, 8, 9, 50), "Learning AI", []string{"Python", "TensorFlow"}, at(2023, time.September, 20, 11, 25)),
		student(26, "Zane", "Green", at(2023, time.March, 11, 8, 40), "Python and ML beginner", []string{"Python", "ML"}, at(2023, time.September, 21, 12, 5)),
		student(27, "Amy", "Hughes", at(2023, time.January, 19, 10, 5), "Interested in cybersecurity", []string{"Network Security", "Linux"}, at(2023, time.September, 20, 10, 35)),
		student(28, "Brian", "Irwin", at(2023, time.February, 28, 9, 20), "Learning cloud computing", []string{"AWS", "Azure"}, at(2023, time.September, 19, 11, 55)),
		student(29, "Chloe", "Jones", at(2023, time.March, 6, 8, 50), "Data science enthusiast", []string{"Python", "Pandas"}, at(2023, time.September, 21, 12, 30)),
		student(30, "Daniel", "Kelly", at(2023, time.January, 23, 10, 25), "Interested in AI and ML", []string{"Python", "Keras"}, at(2023, time.September, 20, 10, 55)),
		student(31, "Ella", "Lopez", at(2023, time.February, 14, 9, 40), "Front-end learner", []string{"HTML", "CSS", "React"}, at(2023, time.September, 19, 11, 10)),
		student(32, "Fred", "Morris", at(2023, time.March, 9, 8, 35), "Learning backend development", []string{"Node.js", "Express"}, at(2023, time.September, 21, 12, 20)),
	}
}

func student(id int, first, last string, joined time.Time, bio string, skills []string, updated time.Time) models.User {
	return user(id, first, last, models.RoleStudent, joined, bio, skills, updated)
}

func instructor(id int, first, last string, joined time.Time, bio string, skills []string, updated time.Time) models.User {
	return user(id, first, last, models.RoleInstructor, joined, bio, skills, updated)
}

func user(id int, first, last string, role models.UserRole, joined time.Time, bio string, skills []string, updated time.Time) models.User {
	return models.User{
		UserID:    id,
		Email:     strings.ToLower(first) + "." + string(role) + "@example.com",
		FirstName: first,
		LastName:  last,
		Role:      role,
		JoinedAt:  joined,
		Profile:   &models.Profile{Bio: bio, Avatar: "", Skills: skills},
		IsActive:  true,
		UpdatedAt: updated,
	}
}
