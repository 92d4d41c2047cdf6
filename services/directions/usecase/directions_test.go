package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/brickroad/brickroad/internal/pkg/models"
	"github.com/brickroad/brickroad/services/directions"
	"github.com/brickroad/brickroad/services/directions/mocks"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	paris  = &models.Coordinate{Latitude: 48.8588897, Longitude: 2.320041}
	berlin = &models.Coordinate{Latitude: 52.5170365, Longitude: 13.3888599}
)

func strPtr(s string) *string { return &s }

func sampleSteps() []models.RouteStep {
	return []models.RouteStep{
		{Type: "depart", Name: "Rue de Rivoli"},
		{Type: "turn", Modifier: strPtr("left"), Name: "A1"},
		{Type: "arrive", Name: ""},
	}
}

func TestGetDirections_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGW := mocks.NewMockDirectionsGW(ctrl)
	uc := NewDirectionsUC(mockGW, nil)

	gomock.InOrder(
		mockGW.EXPECT().Geocode(gomock.Any(), "Paris").Return(paris, nil),
		mockGW.EXPECT().Geocode(gomock.Any(), "Berlin").Return(berlin, nil),
		mockGW.EXPECT().Route(gomock.Any(), *paris, *berlin).Return(sampleSteps(), nil),
	)

	// Act
	result, err := uc.GetDirections(context.Background(), "Paris", "Berlin")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "Paris", result.From)
	assert.Equal(t, "Berlin", result.To)
	assert.Equal(t, *paris, result.FromCoord)
	assert.Equal(t, *berlin, result.ToCoord)
	assert.Equal(t,
		"Directions from Paris to Berlin:\n\n- Go depart onto Rue de Rivoli\n- Go left onto A1\n- Go arrive onto \n",
		result.Render())
}

func TestGetDirections_MissingLocation(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
	}{
		{name: "empty from", from: "", to: "Berlin"},
		{name: "empty to", from: "Paris", to: ""},
		{name: "both empty", from: "", to: ""},
		{name: "whitespace from", from: "   ", to: "Berlin"},
		{name: "whitespace to", from: "Paris", to: "\t\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			// no gateway or cache calls are expected
			uc := NewDirectionsUC(mocks.NewMockDirectionsGW(ctrl), mocks.NewMockDirectionsRepo(ctrl))

			result, err := uc.GetDirections(context.Background(), tt.from, tt.to)

			assert.Nil(t, result)
			assert.ErrorIs(t, err, directions.ErrMissingLocation)
		})
	}
}

func TestGetDirections_LocationNotFound(t *testing.T) {
	tests := []struct {
		name     string
		fromResp *models.Coordinate
		toResp   *models.Coordinate
	}{
		{name: "from not found", fromResp: nil, toResp: berlin},
		{name: "to not found", fromResp: paris, toResp: nil},
		{name: "neither found", fromResp: nil, toResp: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockGW := mocks.NewMockDirectionsGW(ctrl)
			uc := NewDirectionsUC(mockGW, nil)

			// both sides are always geocoded, and routing is never attempted
			mockGW.EXPECT().Geocode(gomock.Any(), "Paris").Return(tt.fromResp, nil).Times(1)
			mockGW.EXPECT().Geocode(gomock.Any(), "Berlin").Return(tt.toResp, nil).Times(1)

			result, err := uc.GetDirections(context.Background(), "Paris", "Berlin")

			assert.Nil(t, result)
			assert.ErrorIs(t, err, directions.ErrLocationNotFound)
		})
	}
}

func TestGetDirections_GeocodeError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGW := mocks.NewMockDirectionsGW(ctrl)
	uc := NewDirectionsUC(mockGW, nil)

	upstreamErr := errors.New("HTTP error: 503 Service Unavailable")
	mockGW.EXPECT().Geocode(gomock.Any(), "Paris").Return(nil, upstreamErr)

	result, err := uc.GetDirections(context.Background(), "Paris", "Berlin")

	assert.Nil(t, result)
	assert.ErrorIs(t, err, upstreamErr)
	assert.NotErrorIs(t, err, directions.ErrLocationNotFound)
}

func TestGetDirections_RouteError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGW := mocks.NewMockDirectionsGW(ctrl)
	uc := NewDirectionsUC(mockGW, nil)

	mockGW.EXPECT().Geocode(gomock.Any(), "Paris").Return(paris, nil)
	mockGW.EXPECT().Geocode(gomock.Any(), "Berlin").Return(berlin, nil)
	mockGW.EXPECT().Route(gomock.Any(), *paris, *berlin).Return(nil, errors.New("routing response contains no routes"))

	result, err := uc.GetDirections(context.Background(), "Paris", "Berlin")

	assert.Nil(t, result)
	assert.EqualError(t, err, "routing response contains no routes")
}

func TestGetDirections_CacheHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGW := mocks.NewMockDirectionsGW(ctrl)
	mockRepo := mocks.NewMockDirectionsRepo(ctrl)
	uc := NewDirectionsUC(mockGW, mockRepo)

	mockRepo.EXPECT().GetCoordinate(gomock.Any(), "Paris").Return(paris, nil)
	mockRepo.EXPECT().GetCoordinate(gomock.Any(), "Berlin").Return(berlin, nil)
	mockRepo.EXPECT().GetSteps(gomock.Any(), *paris, *berlin).Return(sampleSteps(), nil)

	result, err := uc.GetDirections(context.Background(), "Paris", "Berlin")

	require.NoError(t, err)
	assert.Len(t, result.Steps, 3)
}

func TestGetDirections_CacheMissPopulates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGW := mocks.NewMockDirectionsGW(ctrl)
	mockRepo := mocks.NewMockDirectionsRepo(ctrl)
	uc := NewDirectionsUC(mockGW, mockRepo)
	steps := sampleSteps()

	mockRepo.EXPECT().GetCoordinate(gomock.Any(), "Paris").Return(nil, nil)
	mockGW.EXPECT().Geocode(gomock.Any(), "Paris").Return(paris, nil)
	mockRepo.EXPECT().SetCoordinate(gomock.Any(), "Paris", *paris).Return(nil)

	mockRepo.EXPECT().GetCoordinate(gomock.Any(), "Berlin").Return(nil, nil)
	mockGW.EXPECT().Geocode(gomock.Any(), "Berlin").Return(berlin, nil)
	mockRepo.EXPECT().SetCoordinate(gomock.Any(), "Berlin", *berlin).Return(nil)

	mockRepo.EXPECT().GetSteps(gomock.Any(), *paris, *berlin).Return(nil, nil)
	mockGW.EXPECT().Route(gomock.Any(), *paris, *berlin).Return(steps, nil)
	mockRepo.EXPECT().SetSteps(gomock.Any(), *paris, *berlin, steps).Return(nil)

	result, err := uc.GetDirections(context.Background(), "Paris", "Berlin")

	require.NoError(t, err)
	assert.Equal(t, steps, result.Steps)
}

func TestGetDirections_CacheFailuresFallThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGW := mocks.NewMockDirectionsGW(ctrl)
	mockRepo := mocks.NewMockDirectionsRepo(ctrl)
	uc := NewDirectionsUC(mockGW, mockRepo)
	cacheErr := errors.New("connection refused")

	mockRepo.EXPECT().GetCoordinate(gomock.Any(), gomock.Any()).Return(nil, cacheErr).Times(2)
	mockRepo.EXPECT().SetCoordinate(gomock.Any(), gomock.Any(), gomock.Any()).Return(cacheErr).Times(2)
	mockRepo.EXPECT().GetSteps(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, cacheErr)
	mockRepo.EXPECT().SetSteps(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(cacheErr)

	mockGW.EXPECT().Geocode(gomock.Any(), "Paris").Return(paris, nil)
	mockGW.EXPECT().Geocode(gomock.Any(), "Berlin").Return(berlin, nil)
	mockGW.EXPECT().Route(gomock.Any(), *paris, *berlin).Return(sampleSteps(), nil)

	result, err := uc.GetDirections(context.Background(), "Paris", "Berlin")

	require.NoError(t, err)
	assert.Len(t, result.Steps, 3)
}

func TestGetDirections_MissIsNotCached(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGW := mocks.NewMockDirectionsGW(ctrl)
	mockRepo := mocks.NewMockDirectionsRepo(ctrl)
	uc := NewDirectionsUC(mockGW, mockRepo)

	mockRepo.EXPECT().GetCoordinate(gomock.Any(), "Atlantis").Return(nil, nil)
	mockGW.EXPECT().Geocode(gomock.Any(), "Atlantis").Return(nil, nil)
	mockRepo.EXPECT().GetCoordinate(gomock.Any(), "Berlin").Return(berlin, nil)

	_, err := uc.GetDirections(context.Background(), "Atlantis", "Berlin")

	assert.ErrorIs(t, err, directions.ErrLocationNotFound)
}
