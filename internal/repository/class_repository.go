package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/tutor-classes-api/internal/models"
	"github.com/noah-isme/tutor-classes-api/pkg/database"
	"github.com/noah-isme/tutor-classes-api/pkg/timeutil"
)

const (
	searchClassesQuery = `
SELECT c.id, c.subject, c.cost, c.user_id, u.name, u.avatar, u.whatsapp, u.bio
FROM classes c
JOIN users u ON u.id = c.user_id
WHERE c.subject = $1
  AND EXISTS (
    SELECT 1 FROM class_schedule cs
    WHERE cs.class_id = c.id
      AND cs.week_day = $2
      AND cs."from" <= $3
      AND cs."to" > $3
  )`

	insertUserQuery     = `INSERT INTO users (id, name, avatar, whatsapp, bio) VALUES (:id, :name, :avatar, :whatsapp, :bio)`
	insertClassQuery    = `INSERT INTO classes (id, subject, cost, user_id) VALUES (:id, :subject, :cost, :user_id)`
	insertScheduleQuery = `INSERT INTO class_schedule (id, class_id, week_day, "from", "to") VALUES (:id, :class_id, :week_day, :from, :to)`
)

// ClassRepository manages persistence for tutors, their classes and weekly schedules.
type ClassRepository struct {
	db *sqlx.DB
}

// NewClassRepository constructs a new class repository.
func NewClassRepository(db *sqlx.DB) *ClassRepository {
	return &ClassRepository{db: db}
}

// Search returns classes of the subject having a slot on weekDay that covers the given minute.
// Slots are half-open: a slot starting at the minute matches, one ending at it does not.
func (r *ClassRepository) Search(ctx context.Context, filter models.ClassSearchFilter) ([]models.ClassListing, error) {
	listings := make([]models.ClassListing, 0)
	if err := r.db.SelectContext(ctx, &listings, searchClassesQuery, filter.Subject, filter.WeekDay, filter.Minutes); err != nil {
		return nil, fmt.Errorf("search classes: %w", err)
	}
	return listings, nil
}

// Register persists the tutor, the class and every schedule slot in a single transaction.
// Nothing is visible to other readers unless all inserts succeed.
func (r *ClassRepository) Register(ctx context.Context, reg models.ClassRegistration) error {
	return database.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		tutor := reg.Tutor
		tutor.ID = uuid.NewString()
		if _, err := tx.NamedExecContext(ctx, insertUserQuery, &tutor); err != nil {
			return fmt.Errorf("insert tutor: %w", err)
		}

		class := models.Class{
			ID:      uuid.NewString(),
			Subject: reg.Subject,
			Cost:    reg.Cost,
			UserID:  tutor.ID,
		}
		if _, err := tx.NamedExecContext(ctx, insertClassQuery, &class); err != nil {
			return fmt.Errorf("insert class: %w", err)
		}

		slots, err := buildClassSchedule(class.ID, reg.Schedule)
		if err != nil {
			return err
		}
		if len(slots) == 0 {
			return nil
		}
		if _, err := tx.NamedExecContext(ctx, insertScheduleQuery, slots); err != nil {
			return fmt.Errorf("insert class schedule: %w", err)
		}
		return nil
	})
}

func buildClassSchedule(classID string, items []models.ScheduleItem) ([]models.ClassSchedule, error) {
	slots := make([]models.ClassSchedule, 0, len(items))
	for i, item := range items {
		from, err := timeutil.EncodeHHMM(item.From)
		if err != nil {
			return nil, fmt.Errorf("schedule item %d from: %w", i, err)
		}
		to, err := timeutil.EncodeHHMM(item.To)
		if err != nil {
			return nil, fmt.Errorf("schedule item %d to: %w", i, err)
		}
		slots = append(slots, models.ClassSchedule{
			ID:      uuid.NewString(),
			ClassID: classID,
			WeekDay: item.WeekDay,
			From:    from,
			To:      to,
		})
	}
	return slots, nil
}
