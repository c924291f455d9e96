package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/leave_tracker_app/internal/apperrors"
	"github.com/SscSPs/leave_tracker_app/internal/core/domain"
	portssvc "github.com/SscSPs/leave_tracker_app/internal/core/ports/services"
	"github.com/SscSPs/leave_tracker_app/internal/core/services"
	"github.com/SscSPs/leave_tracker_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type OvertimeServiceTestSuite struct {
	suite.Suite
	mockRepo         *MockOvertimeRepository
	mockEmployeeRepo *MockEmployeeRepository
	service          portssvc.OvertimeSvcFacade
}

func (suite *OvertimeServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockOvertimeRepository)
	suite.mockEmployeeRepo = new(MockEmployeeRepository)
	suite.service = services.NewOvertimeService(suite.mockRepo, suite.mockEmployeeRepo, services.WithClock(fixedClock))
}

func (suite *OvertimeServiceTestSuite) TestCreateOvertime_Success() {
	ctx := context.Background()
	hours := decimal.RequireFromString("2.5")
	req := dto.CreateOvertimeRequest{EmployeeID: "elif", Date: "2025-03-10", Hours: &hours}

	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, "elif").Return(&domain.Employee{ID: "elif"}, nil).Once()
	suite.mockRepo.On("SaveOvertime", ctx, mock.MatchedBy(func(o domain.OvertimeEntry) bool {
		return o.EmployeeID == "elif" && o.Hours.Equal(hours) && o.ID != ""
	})).Return(nil).Once()

	entry, err := suite.service.CreateOvertime(ctx, req)

	suite.Require().NoError(err)
	suite.True(entry.Hours.Equal(hours))
	suite.Equal(fixedNow, entry.CreatedAt)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *OvertimeServiceTestSuite) TestCreateOvertime_InvalidEmployee() {
	ctx := context.Background()
	hours := decimal.NewFromInt(1)
	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, "ghost").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CreateOvertime(ctx, dto.CreateOvertimeRequest{EmployeeID: "ghost", Date: "2025-03-10", Hours: &hours})

	suite.Equal(apperrors.KindInvalidEmployee, apperrors.KindOf(err))
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveOvertime", mock.Anything, mock.Anything)
}

func (suite *OvertimeServiceTestSuite) TestListOvertime() {
	ctx := context.Background()
	suite.mockRepo.On("ListOvertime", ctx).Return([]domain.OvertimeEntry{{ID: "o1"}}, nil).Once()

	entries, err := suite.service.ListOvertime(ctx)

	suite.Require().NoError(err)
	suite.Len(entries, 1)
}

func (suite *OvertimeServiceTestSuite) TestDeleteOvertime() {
	ctx := context.Background()
	suite.mockRepo.On("DeleteOvertime", ctx, "o1").Return(nil).Once()
	suite.mockRepo.On("DeleteOvertime", ctx, "o2").Return(apperrors.ErrNotFound).Once()
	suite.mockRepo.On("DeleteOvertime", ctx, "o3").Return(assert.AnError).Once()

	suite.NoError(suite.service.DeleteOvertime(ctx, "o1"))
	suite.Equal(apperrors.KindNotFound, apperrors.KindOf(suite.service.DeleteOvertime(ctx, "o2")))
	suite.ErrorIs(suite.service.DeleteOvertime(ctx, "o3"), assert.AnError)
}

func TestOvertimeServiceTestSuite(t *testing.T) {
	suite.Run(t, new(OvertimeServiceTestSuite))
}
