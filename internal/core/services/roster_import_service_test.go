package services_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/SscSPs/hr_payroll_admin/internal/apperrors"
	"github.com/SscSPs/hr_payroll_admin/internal/core/domain"
	portssvc "github.com/SscSPs/hr_payroll_admin/internal/core/ports/services"
	"github.com/SscSPs/hr_payroll_admin/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type RosterImportServiceTestSuite struct {
	suite.Suite
	decoder *MockRosterDecoder
	quota   *MockQuotaGate
	creator *MockEmployeeCreator
	tracker *MockEventTracker
	service portssvc.RosterImportSvc
	ctx     context.Context
	data    []byte
}

func (suite *RosterImportServiceTestSuite) SetupTest() {
	suite.decoder = new(MockRosterDecoder)
	suite.quota = new(MockQuotaGate)
	suite.creator = new(MockEmployeeCreator)
	suite.tracker = new(MockEventTracker)
	suite.tracker.On("Enqueue", "admin-1", mock.AnythingOfType("string"), mock.Anything).Return()
	suite.service = services.NewRosterImportService(
		suite.decoder,
		services.NewRosterValidator(),
		suite.quota,
		suite.creator,
		services.WithEventTracker(suite.tracker),
	)
	suite.ctx = context.Background()
	suite.data = []byte("roster")
}

func TestRosterImportServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RosterImportServiceTestSuite))
}

func employeeEmail(i int) string {
	return fmt.Sprintf("employee%d@example.com", i)
}

// rosterRows numbers rows from sheet row 2, directly under the header.
func rosterRows(n int) []domain.SheetRow {
	rows := make([]domain.SheetRow, n)
	for i := range rows {
		rows[i] = domain.SheetRow{
			Number: i + 2,
			Cells:  withRow(map[string]string{services.ColEmail: employeeEmail(i + 1)}),
		}
	}
	return rows
}

func withEmail(email string) any {
	return mock.MatchedBy(func(e domain.Employee) bool { return e.Email == email })
}

func (suite *RosterImportServiceTestSuite) givenRows(rows []domain.SheetRow) {
	suite.decoder.On("Decode", "roster.xlsx", suite.data).Return(rows, nil).Once()
}

func (suite *RosterImportServiceTestSuite) givenRemaining(remaining int) {
	suite.quota.On("GetQuotaStatus", suite.ctx).Return(domain.QuotaStatus{
		Limit: 50, CurrentCount: 50 - remaining, Remaining: remaining, CanAddMore: remaining > 0,
	}, nil).Once()
}

func (suite *RosterImportServiceTestSuite) expectCreated(i int) {
	suite.creator.On("CreateEmployee", suite.ctx, withEmail(employeeEmail(i)), "admin-1").
		Return(&domain.Employee{EmployeeID: fmt.Sprintf("emp-%d", i)}, nil).Once()
}

func (suite *RosterImportServiceTestSuite) assertPartition(o domain.ImportOutcome) {
	suite.Equal(o.Attempted, o.ValidationFailed+o.CapacitySkipped+o.Created+o.CreationFailed,
		"every row lands in exactly one outcome")
}

func (suite *RosterImportServiceTestSuite) submit() (domain.ImportOutcome, error) {
	return suite.service.SubmitRoster(suite.ctx, "roster.xlsx", suite.data, "admin-1")
}

func (suite *RosterImportServiceTestSuite) TestSubmitRoster_EmptyFileAborts() {
	suite.givenRows([]domain.SheetRow{})

	outcome, err := suite.submit()

	suite.ErrorIs(err, apperrors.ErrParse)
	suite.Contains(err.Error(), "file is empty")
	suite.Equal(domain.ImportAborted, outcome.State)
	suite.Zero(outcome.Attempted)
	suite.quota.AssertNotCalled(suite.T(), "GetQuotaStatus", mock.Anything)
	suite.creator.AssertNotCalled(suite.T(), "CreateEmployee", mock.Anything, mock.Anything, mock.Anything)
	suite.tracker.AssertCalled(suite.T(), "Enqueue", "admin-1", "roster_import_aborted", mock.Anything)
}

func (suite *RosterImportServiceTestSuite) TestSubmitRoster_DecoderFailureIsParseError() {
	suite.decoder.On("Decode", "roster.xlsx", suite.data).Return(nil, assert.AnError).Once()

	outcome, err := suite.submit()

	suite.ErrorIs(err, apperrors.ErrParse)
	suite.ErrorIs(err, assert.AnError)
	suite.Equal(domain.ImportAborted, outcome.State)
}

func (suite *RosterImportServiceTestSuite) TestSubmitRoster_ValidationIsExhaustive() {
	rows := rosterRows(3)
	rows[0].Cells[services.ColGender] = "unknown"
	delete(rows[2].Cells, services.ColPhone)
	suite.givenRows(rows)
	suite.givenRemaining(10)
	suite.expectCreated(2)

	outcome, err := suite.submit()

	suite.Require().NoError(err)
	suite.Equal(domain.ImportCompleted, outcome.State)
	suite.Equal(3, outcome.Attempted)
	suite.Equal(1, outcome.Validated)
	suite.Equal(2, outcome.ValidationFailed)
	suite.Require().Len(outcome.ValidationErrors, 2)
	suite.Equal(2, outcome.ValidationErrors[0].Row)
	suite.Equal(4, outcome.ValidationErrors[1].Row)
	suite.Contains(outcome.ValidationErrors[1].Message, "Phone")
	suite.Equal(1, outcome.Created)
	suite.assertPartition(outcome)
	suite.creator.AssertExpectations(suite.T())
}

func (suite *RosterImportServiceTestSuite) TestSubmitRoster_ErrorsCarrySheetRowNumbers() {
	rows := rosterRows(3)
	rows[0].Number = 4
	rows[1].Number = 7
	rows[1].Cells[services.ColGender] = "unknown"
	rows[2].Number = 9
	suite.givenRows(rows)
	suite.givenRemaining(10)
	suite.expectCreated(1)
	suite.creator.On("CreateEmployee", suite.ctx, withEmail(employeeEmail(3)), "admin-1").
		Return(nil, assert.AnError).Once()

	outcome, err := suite.submit()

	suite.Require().NoError(err)
	suite.Require().Len(outcome.ValidationErrors, 1)
	suite.Equal(7, outcome.ValidationErrors[0].Row)
	suite.Require().Len(outcome.CreationErrors, 1)
	suite.Equal(9, outcome.CreationErrors[0].Row)
	suite.assertPartition(outcome)
}

func (suite *RosterImportServiceTestSuite) TestSubmitRoster_TruncatesToRemainingCapacity() {
	suite.givenRows(rosterRows(5))
	suite.givenRemaining(3)
	for i := 1; i <= 3; i++ {
		suite.expectCreated(i)
	}

	outcome, err := suite.submit()

	suite.Require().NoError(err)
	suite.Equal(5, outcome.Validated)
	suite.Equal(3, outcome.Created)
	suite.Equal(2, outcome.CapacitySkipped)
	suite.Contains(outcome.TruncationNotice, "2 valid row(s) skipped")
	suite.False(outcome.StoppedOnQuota)
	suite.assertPartition(outcome)
	suite.creator.AssertExpectations(suite.T())
	suite.creator.AssertNumberOfCalls(suite.T(), "CreateEmployee", 3)
}

func (suite *RosterImportServiceTestSuite) TestSubmitRoster_UnlimitedPlanSkipsTruncation() {
	suite.givenRows(rosterRows(4))
	suite.quota.On("GetQuotaStatus", suite.ctx).Return(domain.QuotaStatus{
		Limit: domain.UnlimitedQuota, Remaining: domain.UnlimitedQuota, CanAddMore: true,
	}, nil).Once()
	for i := 1; i <= 4; i++ {
		suite.expectCreated(i)
	}

	outcome, err := suite.submit()

	suite.Require().NoError(err)
	suite.Equal(4, outcome.Created)
	suite.Zero(outcome.CapacitySkipped)
	suite.Empty(outcome.TruncationNotice)
}

func (suite *RosterImportServiceTestSuite) TestSubmitRoster_QuotaQueryFailureContinues() {
	suite.givenRows(rosterRows(2))
	suite.quota.On("GetQuotaStatus", suite.ctx).Return(domain.QuotaStatus{}, assert.AnError).Once()
	suite.expectCreated(1)
	suite.expectCreated(2)

	outcome, err := suite.submit()

	suite.Require().NoError(err)
	suite.Equal(2, outcome.Created)
}

func (suite *RosterImportServiceTestSuite) TestSubmitRoster_OrdinaryCreationErrorContinues() {
	suite.givenRows(rosterRows(5))
	suite.givenRemaining(10)
	suite.expectCreated(1)
	suite.creator.On("CreateEmployee", suite.ctx, withEmail(employeeEmail(2)), "admin-1").
		Return(nil, fmt.Errorf("failed to create employee: %w", apperrors.ErrDuplicate)).Once()
	for i := 3; i <= 5; i++ {
		suite.expectCreated(i)
	}

	outcome, err := suite.submit()

	suite.Require().NoError(err)
	suite.Equal(4, outcome.Created)
	suite.Equal(1, outcome.CreationFailed)
	suite.Require().Len(outcome.CreationErrors, 1)
	suite.Equal(3, outcome.CreationErrors[0].Row, "record #2 is on sheet row 3")
	suite.Contains(outcome.CreationErrors[0].Message, "already exists")
	suite.False(outcome.StoppedOnQuota)
	suite.assertPartition(outcome)
	suite.creator.AssertNumberOfCalls(suite.T(), "CreateEmployee", 5)
}

func (suite *RosterImportServiceTestSuite) TestSubmitRoster_QuotaRejectionStopsBatch() {
	suite.givenRows(rosterRows(5))
	suite.givenRemaining(10)
	suite.expectCreated(1)
	suite.creator.On("CreateEmployee", suite.ctx, withEmail(employeeEmail(2)), "admin-1").
		Return(nil, fmt.Errorf("%w: limit reached", apperrors.ErrQuotaExceeded)).Once()

	outcome, err := suite.submit()

	suite.Require().NoError(err)
	suite.Equal(domain.ImportCompleted, outcome.State)
	suite.True(outcome.StoppedOnQuota)
	suite.Equal(1, outcome.Created)
	suite.Equal(1, outcome.CreationFailed)
	suite.Equal(3, outcome.CapacitySkipped)
	suite.Contains(outcome.CreationErrors[0].Message, "import stopped")
	suite.assertPartition(outcome)
	suite.creator.AssertNumberOfCalls(suite.T(), "CreateEmployee", 2)
	suite.tracker.AssertCalled(suite.T(), "Enqueue", "admin-1", "roster_import_completed", mock.MatchedBy(func(p map[string]any) bool {
		return p["created"] == 1 && p["stopped_on_quota"] == true
	}))
}

func (suite *RosterImportServiceTestSuite) TestSubmitRoster_AllRowsInvalidSkipsQuota() {
	rows := rosterRows(2)
	rows[0].Cells[services.ColEmail] = "bad"
	rows[1].Cells[services.ColEmail] = "worse"
	suite.givenRows(rows)

	outcome, err := suite.submit()

	suite.Require().NoError(err)
	suite.Equal(2, outcome.ValidationFailed)
	suite.Zero(outcome.Created)
	suite.quota.AssertNotCalled(suite.T(), "GetQuotaStatus", mock.Anything)
	suite.assertPartition(outcome)
}
