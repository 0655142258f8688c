package services_test

import (
	"testing"
	"time"

	"portfolio/internal/apperr"
	"portfolio/internal/models"
	"portfolio/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockExperienceRepository is a mock implementation of repositories.ExperienceRepository
type MockExperienceRepository struct {
	mock.Mock
}

func (m *MockExperienceRepository) GetAll() ([]models.Experience, error) {
	args := m.Called()
	return args.Get(0).([]models.Experience), args.Error(1)
}

func (m *MockExperienceRepository) GetByID(id string) (*models.Experience, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Experience), args.Error(1)
}

func (m *MockExperienceRepository) Create(experience *models.Experience) error {
	args := m.Called(experience)
	return args.Error(0)
}

func (m *MockExperienceRepository) Update(experience *models.Experience) error {
	args := m.Called(experience)
	return args.Error(0)
}

func (m *MockExperienceRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockExperienceRepository) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func TestExperienceService_Create_ParsesDates(t *testing.T) {
	mockRepo := new(MockExperienceRepository)
	service := services.NewExperienceService(mockRepo)

	mockRepo.On("Create", mock.AnythingOfType("*models.Experience")).Return(nil).Once()

	experience, err := service.Create(services.ExperienceInput{
		Title:     "Backend Engineer",
		Company:   "Acme",
		StartDate: "2020-03-01",
		EndDate:   "2022-06-30",
	})

	assert.NoError(t, err)
	assert.Equal(t, time.Date(2020, 3, 1, 0, 0, 0, 0, time.UTC), experience.StartDate)
	assert.NotNil(t, experience.EndDate)
	assert.Equal(t, time.Date(2022, 6, 30, 0, 0, 0, 0, time.UTC), *experience.EndDate)
	assert.False(t, experience.Current)
	mockRepo.AssertExpectations(t)
}

func TestExperienceService_Create_CurrentClearsEndDate(t *testing.T) {
	mockRepo := new(MockExperienceRepository)
	service := services.NewExperienceService(mockRepo)

	mockRepo.On("Create", mock.AnythingOfType("*models.Experience")).Return(nil).Once()

	experience, err := service.Create(services.ExperienceInput{
		Title:     "Backend Engineer",
		StartDate: "2023-01-15",
		EndDate:   "2024-01-15", // ignored once Current is set
		Current:   true,
	})

	assert.NoError(t, err)
	assert.True(t, experience.Current)
	assert.Nil(t, experience.EndDate)
}

func TestExperienceService_Create_OpenEnded(t *testing.T) {
	mockRepo := new(MockExperienceRepository)
	service := services.NewExperienceService(mockRepo)

	mockRepo.On("Create", mock.AnythingOfType("*models.Experience")).Return(nil).Once()

	experience, err := service.Create(services.ExperienceInput{
		Title:     "Freelancer",
		StartDate: "2021-09-01",
	})

	assert.NoError(t, err)
	assert.Nil(t, experience.EndDate)
	assert.False(t, experience.Current)
}

func TestExperienceService_Create_Invalid(t *testing.T) {
	mockRepo := new(MockExperienceRepository)
	service := services.NewExperienceService(mockRepo)

	_, err := service.Create(services.ExperienceInput{StartDate: "2020-01-01"})
	assert.True(t, apperr.IsCode(err, apperr.CodeInvalidArgument))

	_, err = service.Create(services.ExperienceInput{Title: "Engineer", StartDate: "01/03/2020"})
	assert.True(t, apperr.IsCode(err, apperr.CodeInvalidArgument))

	_, err = service.Create(services.ExperienceInput{Title: "Engineer", StartDate: "2020-03-01", EndDate: "not a date"})
	assert.True(t, apperr.IsCode(err, apperr.CodeInvalidArgument))

	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestExperienceService_Update(t *testing.T) {
	mockRepo := new(MockExperienceRepository)
	service := services.NewExperienceService(mockRepo)

	end := time.Date(2022, 6, 30, 0, 0, 0, 0, time.UTC)
	existing := &models.Experience{
		ID:        "exp-1",
		Title:     "Backend Engineer",
		StartDate: time.Date(2020, 3, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   &end,
	}
	mockRepo.On("GetByID", "exp-1").Return(existing, nil).Once()
	mockRepo.On("Update", existing).Return(nil).Once()

	experience, err := service.Update("exp-1", services.ExperienceInput{
		Title:     "Staff Engineer",
		StartDate: "2020-03-01",
		Current:   true,
	})

	assert.NoError(t, err)
	assert.Equal(t, "Staff Engineer", experience.Title)
	assert.True(t, experience.Current)
	assert.Nil(t, experience.EndDate)
	mockRepo.AssertExpectations(t)
}
