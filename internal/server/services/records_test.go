package services

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/vmis/internal/common"
	"github.com/dmitrijs2005/vmis/internal/resources"
	"github.com/dmitrijs2005/vmis/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordCreate_ValidatesAndStores(t *testing.T) {
	rm := newFakeRepoManager()
	s := NewRecordService(nil, rm)
	ctx := context.Background()

	rec, err := s.Create(ctx, "u-1", resources.KindReminder, resources.Record{
		"ReminderDate":   "2024-05-01",
		"ReminderStatus": "open",
		"Remarks":        "oil",
		"Unknown":        "dropped",
		"id":             "client-chosen",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, rec.ID)
	assert.NotEqual(t, "client-chosen", rec.ID)
	assert.Equal(t, "u-1", rec.OwnerID)
	assert.Equal(t, resources.Record{"ReminderDate": "2024-05-01", "ReminderStatus": "Open", "Remarks": "oil"}, rec.Data)

	list, err := s.List(ctx, "u-1", resources.KindReminder)
	require.NoError(t, err)
	require.Len(t, list, 1)

	other, err := s.List(ctx, "u-2", resources.KindReminder)
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestRecordCreate_Invalid(t *testing.T) {
	rm := newFakeRepoManager()
	s := NewRecordService(nil, rm)

	_, err := s.Create(context.Background(), "u-1", resources.KindReminder, resources.Record{
		"ReminderDate": "2024-05-10", "DueDate": "2024-05-01", "ReminderStatus": "Open",
	})
	var ve *resources.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "DueDate", ve.Field)
	assert.Empty(t, rm.records.created)
}

func TestRecordCreate_RepoError(t *testing.T) {
	rm := newFakeRepoManager()
	rm.records.createErr = errors.New("boom")
	s := NewRecordService(nil, rm)

	_, err := s.Create(context.Background(), "u-1", resources.KindDispatch, resources.Record{
		"RequestorName": "Ann", "RequestStatus": "Pending", "DispatchDate": "2024-01-01",
	})
	require.ErrorContains(t, err, "error creating record: boom")
}

func TestRecord_UnknownKind(t *testing.T) {
	s := NewRecordService(nil, newFakeRepoManager())
	ctx := context.Background()

	_, err := s.List(ctx, "u", "bogus")
	require.ErrorIs(t, err, common.ErrUnknownKind)
	_, err = s.Create(ctx, "u", "bogus", resources.Record{})
	require.ErrorIs(t, err, common.ErrUnknownKind)
	_, err = s.Search(ctx, "u", "bogus", "", "")
	require.ErrorIs(t, err, common.ErrUnknownKind)
}

func TestRecordSearch_UsesDefinition(t *testing.T) {
	rm := newFakeRepoManager()
	s := NewRecordService(nil, rm)

	_, err := s.Search(context.Background(), "u", resources.KindRepair, "truck", "High")
	require.NoError(t, err)
	assert.Equal(t, []string{"VehicleName", "ReportedIssue", "PriorityLevel"}, rm.records.lastFilter.Fields)
	assert.Equal(t, "truck", rm.records.lastFilter.Query)
	assert.Equal(t, "PriorityLevel", rm.records.lastFilter.CategoryField)
	assert.Equal(t, "High", rm.records.lastFilter.Category)
}

func TestDashboard(t *testing.T) {
	rm := newFakeRepoManager()
	rm.records.counts = map[resources.Kind]int{
		resources.KindRepair: 2, resources.KindMaintenance: 3, resources.KindReminder: 4, resources.KindDispatch: 5,
	}
	s := NewRecordService(nil, rm)

	d, err := s.Dashboard(context.Background(), &models.User{ID: "u", Name: "Ann"})
	require.NoError(t, err)
	assert.Equal(t, &Dashboard{RepairRequestCount: 2, MainCount: 3, ReminderCount: 4, DispatchCount: 5, Name: "Ann"}, d)
}
