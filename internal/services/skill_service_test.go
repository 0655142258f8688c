package services_test

import (
	"testing"

	"portfolio/internal/apperr"
	"portfolio/internal/models"
	"portfolio/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockSkillRepository is a mock implementation of repositories.SkillRepository
type MockSkillRepository struct {
	mock.Mock
}

func (m *MockSkillRepository) GetAll() ([]models.Skill, error) {
	args := m.Called()
	return args.Get(0).([]models.Skill), args.Error(1)
}

func (m *MockSkillRepository) GetByID(id string) (*models.Skill, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Skill), args.Error(1)
}

func (m *MockSkillRepository) Create(skill *models.Skill) error {
	args := m.Called(skill)
	return args.Error(0)
}

func (m *MockSkillRepository) Update(skill *models.Skill) error {
	args := m.Called(skill)
	return args.Error(0)
}

func (m *MockSkillRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockSkillRepository) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func TestSkillService_Create(t *testing.T) {
	mockRepo := new(MockSkillRepository)
	service := services.NewSkillService(mockRepo)

	mockRepo.On("Create", mock.AnythingOfType("*models.Skill")).Return(nil).Once()

	skill, err := service.Create(services.SkillInput{Name: "Go", Percentage: "85", Category: "Backend"})

	assert.NoError(t, err)
	assert.Equal(t, "Go", skill.Name)
	assert.Equal(t, 85, skill.Percentage)
	assert.Equal(t, "Backend", skill.Category)
	mockRepo.AssertExpectations(t)
}

func TestSkillService_Create_EmptyPercentageDefaultsToZero(t *testing.T) {
	mockRepo := new(MockSkillRepository)
	service := services.NewSkillService(mockRepo)

	mockRepo.On("Create", mock.AnythingOfType("*models.Skill")).Return(nil).Once()

	skill, err := service.Create(services.SkillInput{Name: "Docker"})

	assert.NoError(t, err)
	assert.Equal(t, 0, skill.Percentage)
}

func TestSkillService_Create_Invalid(t *testing.T) {
	mockRepo := new(MockSkillRepository)
	service := services.NewSkillService(mockRepo)

	_, err := service.Create(services.SkillInput{Name: ""})
	assert.True(t, apperr.IsCode(err, apperr.CodeInvalidArgument))

	_, err = service.Create(services.SkillInput{Name: "Go", Percentage: "eighty"})
	assert.True(t, apperr.IsCode(err, apperr.CodeInvalidArgument))

	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestSkillService_Update(t *testing.T) {
	mockRepo := new(MockSkillRepository)
	service := services.NewSkillService(mockRepo)

	existing := &models.Skill{ID: "skill-1", Name: "Go", Percentage: 70}
	mockRepo.On("GetByID", "skill-1").Return(existing, nil).Once()
	mockRepo.On("Update", existing).Return(nil).Once()

	skill, err := service.Update("skill-1", services.SkillInput{Name: "Golang", Percentage: "90", Category: "Backend"})

	assert.NoError(t, err)
	assert.Equal(t, "skill-1", skill.ID)
	assert.Equal(t, "Golang", skill.Name)
	assert.Equal(t, 90, skill.Percentage)
	mockRepo.AssertExpectations(t)
}

func TestSkillService_Update_NotFound(t *testing.T) {
	mockRepo := new(MockSkillRepository)
	service := services.NewSkillService(mockRepo)

	mockRepo.On("GetByID", "missing").Return(nil, notFound("test")).Once()

	_, err := service.Update("missing", services.SkillInput{Name: "Go"})
	assert.True(t, apperr.IsCode(err, apperr.CodeNotFound))
	mockRepo.AssertNotCalled(t, "Update", mock.Anything)
}

func TestSkillService_Delete(t *testing.T) {
	mockRepo := new(MockSkillRepository)
	service := services.NewSkillService(mockRepo)

	mockRepo.On("Delete", "skill-1").Return(nil).Once()

	assert.NoError(t, service.Delete("skill-1"))
	mockRepo.AssertExpectations(t)
}
