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
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type LeaveTypeServiceTestSuite struct {
	suite.Suite
	mockRepo         *MockLeaveTypeRepository
	mockEmployeeRepo *MockEmployeeRepository
	service          portssvc.LeaveTypeSvcFacade
}

func (suite *LeaveTypeServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockLeaveTypeRepository)
	suite.mockEmployeeRepo = new(MockEmployeeRepository)
	suite.service = services.NewLeaveTypeService(suite.mockRepo, suite.mockEmployeeRepo, services.WithClock(fixedClock))
	suite.mockEmployeeRepo.On("FindEmployeeByID", mock.Anything, "elif").Return(&domain.Employee{ID: "elif"}, nil).Maybe()
	suite.mockEmployeeRepo.On("FindEmployeeByID", mock.Anything, "ghost").Return(nil, apperrors.ErrNotFound).Maybe()
}

func (suite *LeaveTypeServiceTestSuite) TestCreateLeaveType_Compensatory() {
	ctx := context.Background()
	zero := decimal.Zero
	twoAndHalf := decimal.RequireFromString("2.5")

	tests := []struct {
		name     string
		hours    *decimal.Decimal
		wantKind apperrors.Kind
	}{
		{name: "missing hours", hours: nil, wantKind: apperrors.KindMissingHours},
		{name: "zero hours", hours: &zero, wantKind: apperrors.KindMissingHours},
		{name: "fractional hours", hours: &twoAndHalf},
	}
	suite.mockRepo.On("SaveLeaveType", ctx, mock.AnythingOfType("domain.LeaveTypeEntry")).Return(nil)

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			req := dto.CreateLeaveTypeRequest{EmployeeID: "elif", Date: "2025-03-10", LeaveType: "compensatory", Hours: tt.hours}
			entry, err := suite.service.CreateLeaveType(ctx, req)
			if tt.wantKind == "" {
				suite.Require().NoError(err)
				suite.Equal(domain.LeaveKindCompensatory, entry.LeaveType)
				return
			}
			suite.Nil(entry)
			suite.Equal(tt.wantKind, apperrors.KindOf(err))
		})
	}
	suite.mockRepo.AssertNumberOfCalls(suite.T(), "SaveLeaveType", 1)
}

func (suite *LeaveTypeServiceTestSuite) TestCreateLeaveType_AnnualWithoutHours() {
	ctx := context.Background()
	suite.mockRepo.On("SaveLeaveType", ctx, mock.MatchedBy(func(e domain.LeaveTypeEntry) bool {
		return e.LeaveType == domain.LeaveKindAnnual && e.Hours == nil
	})).Return(nil).Once()

	entry, err := suite.service.CreateLeaveType(ctx, dto.CreateLeaveTypeRequest{EmployeeID: "elif", Date: "2025-03-10", LeaveType: "annual"})

	suite.Require().NoError(err)
	suite.Nil(entry.Hours)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LeaveTypeServiceTestSuite) TestCreateLeaveType_InvalidEmployeeBeforeHours() {
	_, err := suite.service.CreateLeaveType(context.Background(), dto.CreateLeaveTypeRequest{EmployeeID: "ghost", Date: "2025-03-10", LeaveType: "compensatory"})

	suite.Equal(apperrors.KindInvalidEmployee, apperrors.KindOf(err))
}

func (suite *LeaveTypeServiceTestSuite) TestDeleteLeaveType_NotFound() {
	ctx := context.Background()
	suite.mockRepo.On("DeleteLeaveType", ctx, "x").Return(apperrors.ErrNotFound).Once()

	err := suite.service.DeleteLeaveType(ctx, "x")

	suite.Equal(apperrors.KindNotFound, apperrors.KindOf(err))
}

func (suite *LeaveTypeServiceTestSuite) TestListLeaveTypes_EmptyIsNotNil() {
	ctx := context.Background()
	suite.mockRepo.On("ListLeaveTypes", ctx).Return(nil, nil).Once()

	entries, err := suite.service.ListLeaveTypes(ctx)

	suite.Require().NoError(err)
	suite.NotNil(entries)
}

func TestLeaveTypeServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LeaveTypeServiceTestSuite))
}
