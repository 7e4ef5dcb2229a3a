package seed

import (
	"time"

	"github.com/17SergioFurtado/mongodb-eduhub-project/internal/models"
)

// Enrollments returns the 32 sample enrollments, each with two attendance
// entries covering the course's lessons.
func Enrollments() []models.Enrollment {
	return []models.Enrollment{
		inProgress(1, 1, 1, 20,
			attended(1, at(2023, time.September, 1, 10, 0)), pending(2),
			at(2023, time.August, 20, 12, 0), at(2023, time.September, 1, 10, 5)),
		inProgress(2, 2, 2, 50,
			attended(3, at(2023, time.September, 2, 11, 0)), attended(4, at(2023, time.September, 5, 11, 0)),
			at(2023, time.August, 22, 9, 0), at(2023, time.September, 5, 12, 0)),
		notStarted(3, 3, 3, 5, 6, at(2023, time.August, 25, 10, 30)),
		completed(4, 1, 4,
			attended(1, at(2023, time.August, 28, 9, 0)), attended(2, at(2023, time.August, 30, 9, 30)),
			at(2023, time.August, 31, 12, 0), at(2023, time.August, 20, 12, 10), at(2023, time.August, 31, 12, 5)),
		inProgress(5, 4, 5, 30,
			attended(7, at(2023, time.September, 3, 10, 0)), pending(8),
			at(2023, time.August, 23, 11, 0), at(2023, time.September, 3, 10, 5)),
		inProgress(6, 2, 6, 40,
			attended(3, at(2023, time.September, 4, 9, 30)), pending(4),
			at(2023, time.August, 22, 9, 15), at(2023, time.September, 4, 9, 35)),
		notStarted(7, 5, 7, 9, 10, at(2023, time.August, 24, 10, 45)),
		completed(8, 3, 8,
			attended(5, at(2023, time.August, 29, 10, 0)), attended(6, at(2023, time.September, 1, 10, 30)),
			at(2023, time.September, 2, 12, 0), at(2023, time.August, 25, 10, 35), at(2023, time.September, 2, 12, 5)),
		inProgress(9, 6, 9, 15,
			attended(11, at(2023, time.September, 5, 10, 0)), pending(12),
			at(2023, time.August, 26, 9, 50), at(2023, time.September, 5, 10, 5)),
		notStarted(10, 4, 10, 7, 8, at(2023, time.August, 23, 11, 15)),
		inProgress(11, 5, 11, 60,
			attended(9, at(2023, time.September, 6, 9, 45)), attended(10, at(2023, time.September, 8, 10, 0)),
			at(2023, time.August, 24, 10, 50), at(2023, time.September, 8, 10, 5)),
		inProgress(12, 6, 12, 25,
			attended(11, at(2023, time.September, 7, 10, 0)), pending(12),
			at(2023, time.August, 26, 9, 55), at(2023, time.September, 7, 10, 5)),
		notStarted(13, 7, 13, 13, 14, at(2023, time.August, 27, 11, 0)),
		inProgress(14, 7, 14, 45,
			attended(13, at(2023, time.September, 8, 10, 0)), pending(14),
			at(2023, time.August, 27, 11, 10), at(2023, time.September, 8, 10, 5)),
		completed(15, 8, 15,
			attended(15, at(2023, time.August, 30, 10, 0)), attended(16, at(2023, time.September, 1, 10, 30)),
			at(2023, time.September, 2, 12, 0), at(2023, time.August, 28, 12, 0), at(2023, time.September, 2, 12, 5)),
		inProgress(16, 8, 16, 30,
			attended(15, at(2023, time.September, 9, 10, 0)), pending(16),
			at(2023, time.August, 28, 12, 10), at(2023, time.September, 9, 10, 5)),
		notStarted(17, 9, 6, 17, 18, at(2023, time.August, 29, 11, 0)),
		inProgress(18, 9, 8, 50,
			attended(17, at(2023, time.September, 10, 10, 0)), pending(18),
			at(2023, time.August, 29, 11, 10), at(2023, time.September, 10, 10, 5)),
		notStarted(19, 10, 13, 19, 20, at(2023, time.August, 30, 10, 0)),
		inProgress(20, 10, 21, 35,
			attended(19, at(2023, time.September, 11, 10, 0)), pending(20),
			at(2023, time.August, 30, 10, 10), at(2023, time.September, 11, 10, 5)),
		completed(21, 11, 21,
			attended(21, at(2023, time.August, 31, 10, 0)), attended(22, at(2023, time.September, 2, 10, 30)),
			at(2023, time.September, 3, 12, 0), at(2023, time.August, 31, 12, 0), at(2023, time.September, 3, 12, 5)),
		inProgress(22, 11, 22, 40,
			attended(21, at(2023, time.September, 12, 10, 0)), pending(22),
			at(2023, time.August, 31, 12, 10), at(2023, time.September, 12, 10, 5)),
		notStarted(23, 12, 23, 23, 24, at(2023, time.September, 1, 11, 0)),
		inProgress(24, 12, 24, 50,
			attended(23, at(2023, time.September, 13, 10, 0)), pending(24),
			at(2023, time.September, 1, 11, 10), at(2023, time.September, 13, 10, 5)),
		completed(25, 13, 25,
			attended(25, at(2023, time.September, 1, 10, 0)), attended(26, at(2023, time.September, 3, 10, 30)),
			at(2023, time.September, 4, 12, 0), at(2023, time.September, 1, 12, 0), at(2023, time.September, 4, 12, 5)),
		inProgress(26, 13, 26, 30,
			attended(25, at(2023, time.September, 14, 10, 0)), pending(26),
			at(2023, time.September, 1, 12, 10), at(2023, time.September, 14, 10, 5)),
		notStarted(27, 14, 27, 27, 28, at(2023, time.September, 2, 11, 0)),
		inProgress(28, 14, 28, 55,
			attended(27, at(2023, time.September, 15, 10, 0)), pending(28),
			at(2023, time.September, 2, 11, 10), at(2023, time.September, 15, 10, 5)),
		completed(29, 15, 29,
			attended(29, at(2023, time.September, 2, 10, 0)), attended(30, at(2023, time.September, 4, 10, 30)),
			at(2023, time.September, 5, 12, 0), at(2023, time.September, 2, 12, 0), at(2023, time.September, 5, 12, 5)),
		inProgress(30, 15, 30, 40,
			attended(29, at(2023, time.September, 16, 10, 0)), pending(30),
			at(2023, time.September, 2, 12, 10), at(2023, time.September, 16, 10, 5)),
		notStarted(31, 16, 31, 31, 32, at(2023, time.September, 3, 11, 0)),
		inProgress(32, 16, 32, 45,
			attended(31, at(2023, time.September, 17, 10, 0)), pending(32),
			at(2023, time.September, 3, 11, 10), at(2023, time.September, 17, 10, 5)),
	}
}

func inProgress(id, courseID, studentID, progress int, first, second models.Attendance, created, updated time.Time) models.Enrollment {
	return models.Enrollment{
		EnrollmentID:     id,
		CourseID:         courseID,
		StudentID:        studentID,
		IsActive:         true,
		CompletionStatus: models.StatusInProgress,
		TrackProgress:    progress,
		Attendance:       []models.Attendance{first, second},
		CreatedAt:        created,
		UpdatedAt:        updated,
	}
}

func notStarted(id, courseID, studentID, firstLessonID, secondLessonID int, created time.Time) models.Enrollment {
	return models.Enrollment{
		EnrollmentID:     id,
		CourseID:         courseID,
		StudentID:        studentID,
		IsActive:         true,
		CompletionStatus: models.StatusNotStarted,
		TrackProgress:    0,
		Attendance:       []models.Attendance{pending(firstLessonID), pending(secondLessonID)},
		CreatedAt:        created,
		UpdatedAt:        created,
	}
}

func completed(id, courseID, studentID int, first, second models.Attendance, completedAt, created, updated time.Time) models.Enrollment {
	return models.Enrollment{
		EnrollmentID:     id,
		CourseID:         courseID,
		StudentID:        studentID,
		IsActive:         true,
		CompletionStatus: models.StatusCompleted,
		TrackProgress:    100,
		Attendance:       []models.Attendance{first, second},
		CompletionDate:   &completedAt,
		CreatedAt:        created,
		UpdatedAt:        updated,
	}
}

func attended(lessonID int, attendedAt time.Time) models.Attendance {
	return models.Attendance{LessonID: lessonID, HasFinished: true, AttendedAt: attendedAt}
}

// pending marks a lesson not yet finished; the attendance timestamp is the
// seeding time, as in the source dataset.
func pending(lessonID int) models.Attendance {
	return models.Attendance{LessonID: lessonID, HasFinished: false, AttendedAt: time.Now()}
}
