package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/leave_tracker_app/internal/apperrors"
	"github.com/SscSPs/leave_tracker_app/internal/core/domain"
	portssvc "github.com/SscSPs/leave_tracker_app/internal/core/ports/services"
	"github.com/SscSPs/leave_tracker_app/internal/core/services"
	"github.com/SscSPs/leave_tracker_app/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

var fixedNow = time.Date(2025, 3, 7, 9, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

type EmployeeServiceTestSuite struct {
	suite.Suite
	mockRepo *MockEmployeeRepository
	service  portssvc.EmployeeSvcFacade
}

func (suite *EmployeeServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockEmployeeRepository)
	suite.service = services.NewEmployeeService(suite.mockRepo, domain.DefaultRoster, services.WithClock(fixedClock))
}

func (suite *EmployeeServiceTestSuite) TestListEmployees_EmptyIsNotNil() {
	ctx := context.Background()
	suite.mockRepo.On("ListEmployees", ctx).Return(nil, nil).Once()

	employees, err := suite.service.ListEmployees(ctx)

	suite.Require().NoError(err)
	suite.NotNil(employees)
	suite.Empty(employees)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *EmployeeServiceTestSuite) TestCreateEmployee_DefaultsAndPaletteColour() {
	ctx := context.Background()
	req := dto.CreateEmployeeRequest{Name: "MERVE YILDIZ", ShortName: "MERVE Y."}

	suite.mockRepo.On("CountEmployees", ctx).Return(12, nil).Once()
	suite.mockRepo.On("SaveEmployee", ctx, mock.MatchedBy(func(e domain.Employee) bool {
		return e.Name == req.Name && e.ID != "" && e.Color == domain.ColorPalette[12]
	})).Return(nil).Once()

	employee, err := suite.service.CreateEmployee(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(domain.PositionAgent, employee.Position)
	suite.Equal(domain.WorkTypeOffice, employee.WorkType)
	suite.Equal(domain.ColorPalette[12], employee.Color)
	suite.Equal(fixedNow, employee.CreatedAt)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *EmployeeServiceTestSuite) TestCreateEmployee_SuppliedFieldsKept() {
	ctx := context.Background()
	req := dto.CreateEmployeeRequest{Name: "A", ShortName: "A.", Position: "TL", WorkType: "HomeOffice", Color: "#123456"}

	suite.mockRepo.On("SaveEmployee", ctx, mock.AnythingOfType("domain.Employee")).Return(nil).Once()

	employee, err := suite.service.CreateEmployee(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(domain.PositionTL, employee.Position)
	suite.Equal(domain.WorkTypeHomeOffice, employee.WorkType)
	suite.Equal("#123456", employee.Color)
	suite.mockRepo.AssertNotCalled(suite.T(), "CountEmployees", mock.Anything)
}

func (suite *EmployeeServiceTestSuite) TestCreateEmployee_SaveError() {
	ctx := context.Background()
	suite.mockRepo.On("CountEmployees", ctx).Return(0, nil).Once()
	suite.mockRepo.On("SaveEmployee", ctx, mock.AnythingOfType("domain.Employee")).Return(assert.AnError).Once()

	employee, err := suite.service.CreateEmployee(ctx, dto.CreateEmployeeRequest{Name: "A", ShortName: "A."})

	suite.Nil(employee)
	suite.ErrorIs(err, assert.AnError)
}

func (suite *EmployeeServiceTestSuite) TestUpdateEmployee_EmptyUpdate() {
	employee, err := suite.service.UpdateEmployee(context.Background(), "elif", dto.UpdateEmployeeRequest{})

	suite.Nil(employee)
	suite.Equal(apperrors.KindEmptyUpdate, apperrors.KindOf(err))
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateEmployee", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *EmployeeServiceTestSuite) TestUpdateEmployee_Success() {
	ctx := context.Background()
	color := "#000000"
	req := dto.UpdateEmployeeRequest{Color: &color}
	updated := &domain.Employee{ID: "elif", Color: color}

	suite.mockRepo.On("UpdateEmployee", ctx, "elif", req.ToChanges()).Return(updated, nil).Once()

	employee, err := suite.service.UpdateEmployee(ctx, "elif", req)

	suite.Require().NoError(err)
	suite.Equal(updated, employee)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *EmployeeServiceTestSuite) TestUpdateEmployee_NotFound() {
	ctx := context.Background()
	name := "X"
	suite.mockRepo.On("UpdateEmployee", ctx, "ghost", mock.Anything).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.UpdateEmployee(ctx, "ghost", dto.UpdateEmployeeRequest{Name: &name})

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Equal(apperrors.KindNotFound, apperrors.KindOf(err))
}

func (suite *EmployeeServiceTestSuite) TestDeleteEmployee_HasDependents() {
	ctx := context.Background()
	deps := map[string]int{"leaves": 2, "overtime": 1}
	suite.mockRepo.On("CountDependents", ctx, "elif").Return(deps, nil).Once()

	err := suite.service.DeleteEmployee(ctx, "elif")

	var appErr *apperrors.AppError
	suite.Require().ErrorAs(err, &appErr)
	suite.Equal(apperrors.KindHasDependentRecords, appErr.Kind)
	suite.Equal(deps, appErr.Dependents)
	suite.mockRepo.AssertNotCalled(suite.T(), "DeleteEmployee", mock.Anything, mock.Anything)
}

func (suite *EmployeeServiceTestSuite) TestDeleteEmployee_AfterDependentsRemoved() {
	ctx := context.Background()
	suite.mockRepo.On("CountDependents", ctx, "elif").Return(map[string]int{"leaves": 1}, nil).Once()
	suite.Error(suite.service.DeleteEmployee(ctx, "elif"))

	suite.mockRepo.On("CountDependents", ctx, "elif").Return(map[string]int{}, nil).Once()
	suite.mockRepo.On("DeleteEmployee", ctx, "elif").Return(nil).Once()
	suite.NoError(suite.service.DeleteEmployee(ctx, "elif"))

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *EmployeeServiceTestSuite) TestDeleteEmployee_NotFound() {
	ctx := context.Background()
	suite.mockRepo.On("CountDependents", ctx, "ghost").Return(map[string]int{}, nil).Once()
	suite.mockRepo.On("DeleteEmployee", ctx, "ghost").Return(apperrors.ErrNotFound).Once()

	err := suite.service.DeleteEmployee(ctx, "ghost")

	suite.Equal(apperrors.KindNotFound, apperrors.KindOf(err))
}

func (suite *EmployeeServiceTestSuite) TestSeedDefaultRoster_PreservesOrder() {
	ctx := context.Background()
	suite.mockRepo.On("SeedEmployees", ctx, mock.MatchedBy(func(es []domain.Employee) bool {
		if len(es) != len(domain.DefaultRoster) {
			return false
		}
		for i := 1; i < len(es); i++ {
			if !es[i].CreatedAt.After(es[i-1].CreatedAt) || es[i].ID != domain.DefaultRoster[i].ID {
				return false
			}
		}
		return true
	})).Return(12, nil).Once()

	inserted, err := suite.service.SeedDefaultRoster(ctx)

	suite.Require().NoError(err)
	suite.Equal(12, inserted)
	suite.True(domain.DefaultRoster[0].CreatedAt.IsZero(), "roster template must not be mutated")
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *EmployeeServiceTestSuite) TestSeedDefaultRoster_AlreadySeeded() {
	ctx := context.Background()
	suite.mockRepo.On("SeedEmployees", ctx, mock.Anything).Return(0, nil).Once()

	inserted, err := suite.service.SeedDefaultRoster(ctx)

	suite.NoError(err)
	suite.Zero(inserted)
}

func TestEmployeeServiceTestSuite(t *testing.T) {
	suite.Run(t, new(EmployeeServiceTestSuite))
}
