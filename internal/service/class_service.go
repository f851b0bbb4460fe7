package service

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/tutor-classes-api/internal/models"
	appErrors "github.com/noah-isme/tutor-classes-api/pkg/errors"
	"github.com/noah-isme/tutor-classes-api/pkg/middleware/requestid"
	"github.com/noah-isme/tutor-classes-api/pkg/timeutil"
)

type classRepository interface {
	Search(ctx context.Context, filter models.ClassSearchFilter) ([]models.ClassListing, error)
	Register(ctx context.Context, reg models.ClassRegistration) error
}

// SearchClassesRequest carries the raw availability filters from the query string.
type SearchClassesRequest struct {
	Subject string
	WeekDay string
	Time    string
}

// ScheduleItemRequest is one weekly window of a registration payload.
type ScheduleItemRequest struct {
	WeekDay *int   `json:"week_day" validate:"required"`
	From    string `json:"from" validate:"required"`
	To      string `json:"to" validate:"required"`
}

// CreateClassRequest captures the tutor registration payload.
type CreateClassRequest struct {
	Name     string                `json:"name" validate:"required"`
	Avatar   string                `json:"avatar" validate:"required"`
	Whatsapp string                `json:"whatsapp" validate:"required"`
	Bio      string                `json:"bio" validate:"required"`
	Subject  string                `json:"subject" validate:"required"`
	Cost     *float64              `json:"cost" validate:"required"`
	Schedule []ScheduleItemRequest `json:"schedule" validate:"required,dive"`
}

// ClassService coordinates availability searches and tutor registrations.
type ClassService struct {
	repo      classRepository
	validator *validator.Validate
	metrics   *MetricsService
	logger    *zap.Logger
}

// NewClassService constructs ClassService.
func NewClassService(repo classRepository, validate *validator.Validate, metrics *MetricsService, logger *zap.Logger) *ClassService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ClassService{repo: repo, validator: validate, metrics: metrics, logger: logger}
}

// Search returns every class of the subject with a slot covering the weekday and time.
func (s *ClassService) Search(ctx context.Context, req SearchClassesRequest) ([]models.ClassListing, error) {
	subject := strings.TrimSpace(req.Subject)
	rawWeekDay := strings.TrimSpace(req.WeekDay)
	rawTime := strings.TrimSpace(req.Time)
	if subject == "" || rawWeekDay == "" || rawTime == "" {
		return nil, appErrors.Clone(appErrors.ErrMissingFilters, "")
	}

	weekDay, err := strconv.Atoi(rawWeekDay)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInvalidFilter.Code, appErrors.ErrInvalidFilter.Status, "week_day must be an integer")
	}
	minutes, err := timeutil.EncodeHHMM(rawTime)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInvalidFilter.Code, appErrors.ErrInvalidFilter.Status, "time must be formatted as HH:MM")
	}

	start := time.Now()
	listings, err := s.repo.Search(ctx, models.ClassSearchFilter{Subject: subject, WeekDay: weekDay, Minutes: minutes})
	s.metrics.ObserveDBQuery("classes_search", time.Since(start))
	if err != nil {
		s.logger.Error("class search failed", zap.String("request_id", requestid.FromContext(ctx)), zap.String("subject", subject), zap.Int("week_day", weekDay), zap.Int("minutes", minutes), zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to search classes")
	}
	if listings == nil {
		listings = []models.ClassListing{}
	}
	s.metrics.ObserveSearchResults(len(listings))
	return listings, nil
}

// Register atomically creates the tutor, the class and its weekly schedule.
// Every failure is reported as the same opaque registration error.
func (s *ClassService) Register(ctx context.Context, req CreateClassRequest) error {
	// Stored subjects are trimmed the same way search filters are.
	req.Subject = strings.TrimSpace(req.Subject)
	if err := s.validator.Struct(req); err != nil {
		return s.registrationFailed(ctx, err)
	}

	schedule := make([]models.ScheduleItem, 0, len(req.Schedule))
	for _, item := range req.Schedule {
		schedule = append(schedule, models.ScheduleItem{WeekDay: *item.WeekDay, From: item.From, To: item.To})
	}
	reg := models.ClassRegistration{
		Tutor: models.Tutor{
			Name:     req.Name,
			Avatar:   req.Avatar,
			Whatsapp: req.Whatsapp,
			Bio:      req.Bio,
		},
		Subject:  req.Subject,
		Cost:     *req.Cost,
		Schedule: schedule,
	}

	start := time.Now()
	err := s.repo.Register(ctx, reg)
	s.metrics.ObserveDBQuery("classes_register", time.Since(start))
	if err != nil {
		return s.registrationFailed(ctx, err)
	}

	s.metrics.RecordRegistration(true)
	s.logger.Info("class registered", zap.String("request_id", requestid.FromContext(ctx)), zap.String("subject", reg.Subject), zap.Int("slots", len(schedule)))
	return nil
}

func (s *ClassService) registrationFailed(ctx context.Context, cause error) error {
	s.metrics.RecordRegistration(false)
	s.logger.Warn("class registration failed", zap.String("request_id", requestid.FromContext(ctx)), zap.Error(cause))
	return appErrors.Wrap(cause, appErrors.ErrRegistrationFailed.Code, appErrors.ErrRegistrationFailed.Status, appErrors.ErrRegistrationFailed.Message)
}
