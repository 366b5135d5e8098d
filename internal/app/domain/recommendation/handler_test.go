package recommendation

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/FACorreiaa/passadia/internal/app/domain"
	"github.com/FACorreiaa/passadia/internal/app/middleware"
	"github.com/FACorreiaa/passadia/internal/app/models"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) RecommendCollaborative(ctx context.Context, email string, minSimilarity *float64) ([]models.RecommendedWalkway, error) {
	args := m.Called(ctx, email, minSimilarity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.RecommendedWalkway), args.Error(1)
}

func (m *MockService) RecommendContentBased(ctx context.Context, email string) ([]models.RecommendedWalkway, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.RecommendedWalkway), args.Error(1)
}

func (m *MockService) RecommendHybrid(ctx context.Context, email string) ([]models.RecommendedWalkway, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.RecommendedWalkway), args.Error(1)
}

func (m *MockService) FindSimilarUsers(ctx context.Context, email string, minSimilarity *float64) ([]models.SimilarUser, error) {
	args := m.Called(ctx, email, minSimilarity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.SimilarUser), args.Error(1)
}

func newRouter(svc Service, email string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(domain.NewBaseHandler(zap.NewNop()), svc)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if email != "" {
			middleware.SetIdentity(c, "", email)
		}
		c.Next()
	})
	r.GET("/collaborative", h.Collaborative)
	r.GET("/content-based", h.ContentBased)
	r.GET("/hybrid", h.Hybrid)
	r.GET("/similar-users", h.SimilarUsers)
	return r
}

func TestHandler_Hybrid(t *testing.T) {
	tests := []struct {
		name       string
		email      string
		result     []models.RecommendedWalkway
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "anonymous",
			wantStatus: http.StatusUnauthorized,
			wantBody:   `"error"`,
		},
		{
			name:       "unknown user",
			email:      "ghost@example.com",
			err:        models.ErrNotFound,
			wantStatus: http.StatusNotFound,
			wantBody:   `"error"`,
		},
		{
			name:       "empty result is not an error",
			email:      "u@example.com",
			result:     []models.RecommendedWalkway{},
			wantStatus: http.StatusOK,
			wantBody:   `[]`,
		},
		{
			name:       "ranked walkways",
			email:      "u@example.com",
			result:     []models.RecommendedWalkway{{Walkway: models.Walkway{ID: 2, Name: "Levada"}}},
			wantStatus: http.StatusOK,
			wantBody:   `"name":"Levada"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockService)
			if tt.email != "" {
				if tt.err != nil {
					svc.On("RecommendHybrid", mock.Anything, tt.email).Return(nil, tt.err)
				} else {
					svc.On("RecommendHybrid", mock.Anything, tt.email).Return(tt.result, nil)
				}
			}

			w := httptest.NewRecorder()
			newRouter(svc, tt.email).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/hybrid", nil))

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
			svc.AssertExpectations(t)
		})
	}
}

func TestHandler_MinSimilarity(t *testing.T) {
	t.Run("invalid value", func(t *testing.T) {
		svc := new(MockService)
		w := httptest.NewRecorder()
		newRouter(svc, "u@example.com").ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/similar-users?minSimilarity=2", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		svc.AssertNotCalled(t, "FindSimilarUsers", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("explicit value forwarded", func(t *testing.T) {
		svc := new(MockService)
		svc.On("RecommendCollaborative", mock.Anything, "u@example.com", mock.MatchedBy(func(v *float64) bool {
			return v != nil && *v == 0.25
		})).Return([]models.RecommendedWalkway{}, nil)

		w := httptest.NewRecorder()
		newRouter(svc, "u@example.com").ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/collaborative?minSimilarity=0.25", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		svc.AssertExpectations(t)
	})

	t.Run("absent means adaptive", func(t *testing.T) {
		svc := new(MockService)
		svc.On("FindSimilarUsers", mock.Anything, "u@example.com", (*float64)(nil)).Return([]models.SimilarUser{}, nil)

		w := httptest.NewRecorder()
		newRouter(svc, "u@example.com").ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/similar-users", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		svc.AssertExpectations(t)
	})
}

func TestHandler_ContentBased_InternalError(t *testing.T) {
	svc := new(MockService)
	svc.On("RecommendContentBased", mock.Anything, "u@example.com").Return(nil, assert.AnError)

	w := httptest.NewRecorder()
	newRouter(svc, "u@example.com").ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/content-based", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, w.Body.String())
}
