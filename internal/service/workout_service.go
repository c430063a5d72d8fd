package service

import (
	"askadam/fitness-assistant/internal/domain"
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	ErrWorkoutDayNotFound = errors.New("workout day not found")
	ErrWorkoutValidation  = errors.New("workout day validation failed")
)

// WorkoutService backs the workout-plan CRUD screens. The same store
// routing as the dispatcher applies: signed-in users hit their remote
// document, guests the local file.
type WorkoutService interface {
	GetSplit(ctx context.Context, userID string) ([]domain.WorkoutDay, error)
	CreateDay(ctx context.Context, userID, name string, exercises []domain.Exercise) (*domain.WorkoutDay, error)
	UpdateDay(ctx context.Context, userID string, day domain.WorkoutDay) (*domain.WorkoutDay, error)
	DeleteDay(ctx context.Context, userID, dayID string) error
}

type workoutService struct {
	stores StoreProvider
}

// NewWorkoutService creates a new instance of workoutService.
func NewWorkoutService(stores StoreProvider) WorkoutService {
	return &workoutService{stores: stores}
}

func (s *workoutService) GetSplit(ctx context.Context, userID string) ([]domain.WorkoutDay, error) {
	return s.stores.WorkoutStore(userID).Load(ctx)
}

func (s *workoutService) CreateDay(ctx context.Context, userID, name string, exercises []domain.Exercise) (*domain.WorkoutDay, error) {
	if name == "" {
		return nil, ErrWorkoutValidation
	}

	day := domain.WorkoutDay{
		ID:        uuid.NewString(),
		Name:      name,
		Exercises: fillIDs(exercises),
	}

	workouts := s.stores.WorkoutStore(userID)
	days, err := workouts.Load(ctx)
	if err != nil {
		return nil, err
	}
	days = append(days, day)
	if err := workouts.Save(ctx, days); err != nil {
		return nil, err
	}
	return &day, nil
}

func (s *workoutService) UpdateDay(ctx context.Context, userID string, day domain.WorkoutDay) (*domain.WorkoutDay, error) {
	if day.ID == "" || day.Name == "" {
		return nil, ErrWorkoutValidation
	}

	workouts := s.stores.WorkoutStore(userID)
	days, err := workouts.Load(ctx)
	if err != nil {
		return nil, err
	}

	for i := range days {
		if days[i].ID == day.ID {
			days[i].Name = day.Name
			days[i].Exercises = fillIDs(day.Exercises)
			if err := workouts.Save(ctx, days); err != nil {
				return nil, err
			}
			return &days[i], nil
		}
	}
	return nil, ErrWorkoutDayNotFound
}

func (s *workoutService) DeleteDay(ctx context.Context, userID, dayID string) error {
	if dayID == "" {
		return ErrWorkoutValidation
	}

	workouts := s.stores.WorkoutStore(userID)
	days, err := workouts.Load(ctx)
	if err != nil {
		return err
	}

	kept := days[:0]
	for _, d := range days {
		if d.ID != dayID {
			kept = append(kept, d)
		}
	}
	if len(kept) == len(days) {
		return ErrWorkoutDayNotFound
	}
	return workouts.Save(ctx, kept)
}

func fillIDs(exercises []domain.Exercise) []domain.Exercise {
	if exercises == nil {
		exercises = []domain.Exercise{}
	}
	for i := range exercises {
		if exercises[i].ID == "" {
			exercises[i].ID = uuid.NewString()
		}
	}
	return exercises
}
