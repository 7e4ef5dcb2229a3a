package seed

import (
	"time"

	"github.com/17SergioFurtado/mongodb-eduhub-project/internal/models"
)

// Submissions returns the 20 sample graded submissions.
func Submissions() []models.Submission {
	return []models.Submission{
		submission(1, 1, 1, at(2023, time.January, 5, 22, 0), "Good work", 95, at(2023, time.January, 5, 22, 10)),
		submission(2, 2, 1, at(2023, time.January, 5, 21, 30), "Well done", 90, at(2023, time.January, 5, 21, 35)),
		submission(3, 1, 2, at(2023, time.January, 6, 23, 0), "Excellent", 98, at(2023, time.January, 6, 23, 5)),
		submission(4, 3, 3, at(2023, time.January, 7, 20, 30), "Good start", 88, at(2023, time.January, 7, 20, 35)),
		submission(5, 2, 2, at(2023, time.January, 6, 22, 45), "Nice work", 92, at(2023, time.January, 6, 22, 50)),
		submission(6, 4, 4, at(2023, time.January, 8, 19, 0), "Check styling", 85, at(2023, time.January, 8, 19, 5)),
		submission(7, 1, 3, at(2023, time.January, 7, 21, 0), "Good", 90, at(2023, time.January, 7, 21, 5)),
		submission(8, 5, 5, at(2023, time.January, 9, 22, 15), "Well implemented", 93, at(2023, time.January, 9, 22, 20)),
		submission(9, 3, 4, at(2023, time.January, 8, 21, 30), "Good CSS", 89, at(2023, time.January, 8, 21, 35)),
		submission(10, 6, 6, at(2023, time.January, 10, 20, 45), "Excellent", 97, at(2023, time.January, 10, 20, 50)),
		submission(11, 4, 5, at(2023, time.January, 9, 21, 0), "Nice logic", 91, at(2023, time.January, 9, 21, 5)),
		submission(12, 2, 6, at(2023, time.January, 10, 22, 0), "Well done", 94, at(2023, time.January, 10, 22, 5)),
		submission(13, 1, 7, at(2023, time.January, 11, 20, 0), "SQL queries fine", 96, at(2023, time.January, 11, 20, 5)),
		submission(14, 5, 7, at(2023, time.January, 11, 21, 15), "Great work", 95, at(2023, time.January, 11, 21, 20)),
		submission(15, 6, 8, at(2023, time.January, 12, 20, 30), "Correct joins", 92, at(2023, time.January, 12, 20, 35)),
		submission(16, 3, 8, at(2023, time.January, 12, 19, 50), "Well done", 90, at(2023, time.January, 12, 19, 55)),
		submission(17, 4, 9, at(2023, time.January, 13, 22, 0), "Good repo setup", 94, at(2023, time.January, 13, 22, 5)),
		submission(18, 5, 10, at(2023, time.January, 14, 20, 30), "Branches correct", 93, at(2023, time.January, 14, 20, 35)),
		submission(19, 1, 11, at(2023, time.January, 15, 21, 0), "Dockerfile ok", 95, at(2023, time.January, 15, 21, 5)),
		submission(20, 6, 12, at(2023, time.January, 16, 22, 0), "Compose setup fine", 96, at(2023, time.January, 16, 22, 5)),
	}
}

func submission(id, enrollmentID, assignmentID int, submitted time.Time, feedback string, grade int, created time.Time) models.Submission {
	return models.Submission{
		SubmissionID: id,
		EnrollmentID: enrollmentID,
		AssignmentID: assignmentID,
		SubmittedAt:  submitted,
		Feedback:     feedback,
		Grade:        grade,
		CreatedAt:    created,
		UpdatedAt:    created,
	}
}
