package main

import (
	"context"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/17SergioFurtado/mongodb-eduhub-project/internal/config"
	"github.com/17SergioFurtado/mongodb-eduhub-project/internal/database"
	"github.com/17SergioFurtado/mongodb-eduhub-project/internal/demo"
	"github.com/17SergioFurtado/mongodb-eduhub-project/internal/models"
	"github.com/17SergioFurtado/mongodb-eduhub-project/internal/queries"
	"github.com/17SergioFurtado/mongodb-eduhub-project/internal/reports"
	"github.com/17SergioFurtado/mongodb-eduhub-project/internal/schemas"
	"github.com/17SergioFurtado/mongodb-eduhub-project/internal/seed"
	"github.com/17SergioFurtado/mongodb-eduhub-project/internal/store"
)

func main() {
	// Load configuration
	cfg := config.LoadConfig()
	setupLogger(cfg.LogLevel)

	// Connect to MongoDB
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	client, err := database.ConnectMongoDB(ctx, cfg.MongoURI)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to MongoDB")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("Failed to disconnect from MongoDB")
		}
	}()

	db := client.Database(cfg.DatabaseName)
	st := store.New(db)
	q := queries.New(db)
	r := reports.New(db)
	d := demo.New(st)

	runStage := func(name string, fn func(context.Context) error) {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
		defer cancel()
		if err := fn(ctx); err != nil {
			log.Error().Err(err).Str("stage", name).Msg("Stage failed")
			return
		}
		log.Info().Str("stage", name).Msg("Stage completed")
	}

	runStage("create collections", func(ctx context.Context) error {
		for _, collection := range store.Collections {
			schema, err := schemas.Load(collection)
			if err != nil {
				return err
			}
			if err := st.CreateCollectionWithSchema(ctx, collection, schema); err != nil {
				return err
			}
			log.Info().Str("collection", collection).Msg("Collection ready with schema validation")
		}
		return nil
	})

	runStage("identity indexes", st.EnsureIdentityIndexes)

	runStage("seed data", func(ctx context.Context) error {
		counts, err := seed.Populate(ctx, st)
		for collection, count := range counts {
			log.Info().Str("collection", collection).Int("inserted", count).Msg("Seeded collection")
		}
		return err
	})

	runStage("create operations", func(ctx context.Context) error {
		student, err := d.CreateStudent(ctx, "antonio", "furtado", "antonio.student@example.com", seed.DefaultPassword)
		if err != nil {
			return err
		}
		log.Info().Int("userId", student.UserID).Str("email", student.Email).Msg("Created student")

		course, err := d.CreateCourse(ctx, models.Course{
			Title:           "Advanced Python Programming",
			Description:     "Deep dive into Python for real-world applications.",
			InstructorID:    17,
			Category:        "Programming",
			DifficultyLevel: models.LevelAdvanced,
			Duration:        40,
			Price:           199.99,
			Tags:            []string{"python", "advanced", "programming", "oop", "data"},
			IsPublished:     true,
			IsActive:        true,
			ReviewRate:      0.0,
		})
		if err != nil {
			return err
		}
		log.Info().Int("courseId", course.CourseID).Str("title", course.Title).Msg("Created course")

		lesson, err := d.AddLesson(ctx, models.Lesson{
			CourseID:     course.CourseID,
			Title:        "Advanced Python Functions",
			Description:  "Deep dive into functions, closures, and decorators in Python.",
			AssignmentID: 12,
		})
		if err != nil {
			return err
		}
		log.Info().Int("lessonId", lesson.LessonID).Int("courseId", lesson.CourseID).Msg("Added lesson")

		enrollment, err := d.EnrollStudent(ctx, course.CourseID, 31, lesson.LessonID)
		if err != nil {
			return err
		}
		log.Info().Int("enrollmentId", enrollment.EnrollmentID).
			Int("courseId", enrollment.CourseID).
			Int("studentId", enrollment.StudentID).
			Msg("Enrolled student")
		return nil
	})

	runStage("read operations", func(ctx context.Context) error {
		students, err := q.ActiveStudents(ctx)
		if err != nil {
			return err
		}
		log.Info().Int("count", len(students)).Msg("Active students")

		byInstructor, err := q.CoursesByInstructor(ctx, 17)
		if err != nil {
			return err
		}
		log.Info().Int("instructorId", 17).Int("count", len(byInstructor)).Msg("Courses by instructor")

		byCategory, err := q.CoursesByCategory(ctx, "Programming")
		if err != nil {
			return err
		}
		log.Info().Str("category", "Programming").Int("count", len(byCategory)).Msg("Courses in category")

		enrollments, err := q.EnrollmentsByCourse(ctx, 5)
		if err != nil {
			return err
		}
		log.Info().Int("courseId", 5).Int("count", len(enrollments)).Msg("Enrollments in course")

		matches, err := q.SearchCoursesByTitle(ctx, "aWs")
		if err != nil {
			return err
		}
		for _, course := range matches {
			log.Info().Str("term", "aWs").Str("title", course.Title).Msg("Title search match")
		}
		return nil
	})

	runStage("update operations", func(ctx context.Context) error {
		modified, err := d.UpdateUserProfile(ctx, 1, models.Profile{
			Bio:    "Learning Data Engineering",
			Avatar: "https://avatarlink.com/avatar.png",
			Skills: []string{"SQL", "Python"},
		})
		if err != nil {
			return err
		}
		log.Info().Int64("modified", modified).Msg("Updated user profile")

		modified, err = d.PublishCourse(ctx, 1)
		if err != nil {
			return err
		}
		log.Info().Int64("modified", modified).Msg("Marked course as published")

		modified, err = d.GradeSubmission(ctx, 1, 98)
		if err != nil {
			return err
		}
		log.Info().Int64("modified", modified).Msg("Updated submission grade")

		modified, err = d.AddCourseTags(ctx, 1, []string{"backend"})
		if err != nil {
			return err
		}
		log.Info().Int64("modified", modified).Msg("Added course tags")
		return nil
	})

	runStage("soft deletes", func(ctx context.Context) error {
		deleted, err := d.DeactivateUser(ctx, 1)
		if err != nil {
			return err
		}
		log.Info().Int64("deleted", deleted).Msg("Soft-deleted user")

		deleted, err = d.RemoveEnrollment(ctx, 1)
		if err != nil {
			return err
		}
		log.Info().Int64("deleted", deleted).Msg("Soft-deleted enrollment")

		deleted, err = d.RemoveLesson(ctx, 1)
		if err != nil {
			return err
		}
		log.Info().Int64("deleted", deleted).Msg("Soft-deleted lesson")
		return nil
	})

	runStage("complex queries", func(ctx context.Context) error {
		priced, err := q.CoursesInPriceRange(ctx, 50, 200)
		if err != nil {
			return err
		}
		log.Info().Int("count", len(priced)).Msg("Courses priced between 50 and 200")

		recent, err := q.UsersJoinedSince(ctx, time.Now().AddDate(0, 0, -180))
		if err != nil {
			return err
		}
		log.Info().Int("count", len(recent)).Msg("Users joined in the last 6 months")

		tagged, err := q.CoursesWithAnyTag(ctx, []string{"python", "programming"})
		if err != nil {
			return err
		}
		log.Info().Int("count", len(tagged)).Msg("Courses tagged python or programming")

		due, err := q.AssignmentsDueBetween(ctx, time.Now(), time.Now().AddDate(0, 0, 7))
		if err != nil {
			return err
		}
		log.Info().Int("count", len(due)).Msg("Assignments due in the next week")
		return nil
	})

	runStage("aggregation reports", func(ctx context.Context) error {
		enrollmentStats, err := r.EnrollmentsPerCourse(ctx)
		if err != nil {
			return err
		}
		for _, stat := range enrollmentStats {
			log.Info().Int("courseId", stat.CourseID).
				Int("totalEnrollments", stat.TotalEnrollments).
				Msg("Course enrollment count")
		}

		ratings, err := r.AverageRatingByCategory(ctx)
		if err != nil {
			return err
		}
		for _, rating := range ratings {
			log.Info().Str("category", rating.Category).
				Float64("averageRating", rating.AverageRating).
				Msg("Average rating by category")
		}

		averages, err := r.AverageGradePerStudent(ctx)
		if err != nil {
			return err
		}
		for _, average := range averages {
			log.Info().Int("studentId", average.StudentID).
				Float64("averageGrade", average.AverageGrade).
				Msg("Average grade per student")
		}
		return nil
	})

	runStage("query indexes", st.EnsureQueryIndexes)

	log.Info().Str("database", cfg.DatabaseName).Msg("Seeding run finished")
}

func setupLogger(level string) {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		parsed = zerolog.InfoLevel
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(parsed).
		With().Timestamp().Logger()
}
