package walkway

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/FACorreiaa/passadia/internal/app/models"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetAllWalkways(ctx context.Context) ([]models.Walkway, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Walkway), args.Error(1)
}

func (m *MockRepository) GetWalkway(ctx context.Context, key string) (*models.Walkway, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Walkway), args.Error(1)
}

func (m *MockRepository) UpdateWalkway(ctx context.Context, w *models.Walkway) error {
	args := m.Called(ctx, w)
	return args.Error(0)
}

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetUserProfile(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserService) AwardPoints(ctx context.Context, email string, points int) (*models.User, error) {
	args := m.Called(ctx, email, points)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func fixedClock() time.Time {
	return time.Date(2024, 5, 1, 10, 30, 0, 0, time.FixedZone("WEST", 3600))
}

func TestAddComment(t *testing.T) {
	ctx := context.Background()

	t.Run("appends comment and awards points", func(t *testing.T) {
		repo := new(MockRepository)
		users := new(MockUserService)
		users.On("GetUserProfile", mock.Anything, "ana@example.com").Return(&models.User{Email: "ana@example.com"}, nil)
		repo.On("GetWalkway", mock.Anything, "w1").Return(&models.Walkway{ID: 1, StorageKey: "w1"}, nil)
		repo.On("UpdateWalkway", mock.Anything, mock.MatchedBy(func(w *models.Walkway) bool {
			return len(w.PublicComments) == 1
		})).Return(nil)
		users.On("AwardPoints", mock.Anything, "ana@example.com", CommentPoints).Return(&models.User{Points: 10}, nil)

		svc := NewService(repo, users, zap.NewNop())
		svc.now = fixedClock

		w, err := svc.AddComment(ctx, "ana@example.com", "w1", "  lovely views  ")

		require.NoError(t, err)
		require.Len(t, w.PublicComments, 1)
		assert.Equal(t, models.Comment{
			User:       "ana@example.com",
			Experience: "lovely views",
			Timestamp:  "2024-05-01T09:30:00Z",
		}, w.PublicComments[0])
		repo.AssertExpectations(t)
		users.AssertExpectations(t)
	})

	t.Run("empty experience", func(t *testing.T) {
		repo := new(MockRepository)
		users := new(MockUserService)

		_, err := NewService(repo, users, zap.NewNop()).AddComment(ctx, "ana@example.com", "w1", "   ")

		assert.ErrorIs(t, err, models.ErrBadRequest)
		repo.AssertNotCalled(t, "GetWalkway", mock.Anything, mock.Anything)
	})

	t.Run("unknown walkway", func(t *testing.T) {
		repo := new(MockRepository)
		users := new(MockUserService)
		users.On("GetUserProfile", mock.Anything, "ana@example.com").Return(&models.User{Email: "ana@example.com"}, nil)
		repo.On("GetWalkway", mock.Anything, "nope").Return(nil, models.ErrNotFound)

		_, err := NewService(repo, users, zap.NewNop()).AddComment(ctx, "ana@example.com", "nope", "hi")

		assert.ErrorIs(t, err, models.ErrNotFound)
		users.AssertNotCalled(t, "AwardPoints", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown commenter leaves walkway untouched", func(t *testing.T) {
		repo := new(MockRepository)
		users := new(MockUserService)
		users.On("GetUserProfile", mock.Anything, "ghost@example.com").Return(nil, models.ErrNotFound)

		_, err := NewService(repo, users, zap.NewNop()).AddComment(ctx, "ghost@example.com", "w1", "hi")

		assert.ErrorIs(t, err, models.ErrNotFound)
		repo.AssertNotCalled(t, "GetWalkway", mock.Anything, mock.Anything)
		repo.AssertNotCalled(t, "UpdateWalkway", mock.Anything, mock.Anything)
		users.AssertNotCalled(t, "AwardPoints", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("points failure after comment write", func(t *testing.T) {
		repo := new(MockRepository)
		users := new(MockUserService)
		pointsErr := errors.New("points write failed")
		users.On("GetUserProfile", mock.Anything, "ana@example.com").Return(&models.User{Email: "ana@example.com"}, nil)
		repo.On("GetWalkway", mock.Anything, "w1").Return(&models.Walkway{ID: 1, StorageKey: "w1"}, nil)
		repo.On("UpdateWalkway", mock.Anything, mock.Anything).Return(nil)
		users.On("AwardPoints", mock.Anything, "ana@example.com", CommentPoints).Return(nil, pointsErr)

		_, err := NewService(repo, users, zap.NewNop()).AddComment(ctx, "ana@example.com", "w1", "hi")

		assert.ErrorIs(t, err, pointsErr)
		repo.AssertExpectations(t)
	})
}

func TestList(t *testing.T) {
	repo := new(MockRepository)
	repo.On("GetAllWalkways", mock.Anything).Return([]models.Walkway{{ID: 1}, {ID: 2}}, nil)

	got, err := NewService(repo, new(MockUserService), zap.NewNop()).List(context.Background())

	require.NoError(t, err)
	assert.Len(t, got, 2)
	repo.AssertExpectations(t)
}
