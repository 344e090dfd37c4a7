package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/alexanderramin/wildercal/internal/domain"
	"github.com/alexanderramin/wildercal/internal/repository"
	"github.com/alexanderramin/wildercal/internal/testutil"
)

func TestEditionService_GetReturnsEverythingStored(t *testing.T) {
	ctx := context.Background()
	database := testutil.NewTestDB(t)
	catalog := testCatalog(t)
	id := seedEditionWithPlaces(t, database, testutil.NewTestLibrary(40))

	_, err := NewPlanService(catalog, database, testutil.NewTestUoW(database), nil, nil).
		Plan(ctx, PlanRequest{EditionID: id})
	require.NoError(t, err)

	svc := NewEditionService(catalog, database)
	d, err := svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, domain.EditionPlanned, d.Edition.Status)
	assert.Len(t, d.Places, 40)
	assert.Len(t, d.Assignments, domain.WeeksPerYear)
	assert.Len(t, d.Attempts, 1)
	assert.Len(t, d.Themes, domain.WeeksPerYear)
}

func TestEditionService_GetWithoutPlan(t *testing.T) {
	database := testutil.NewTestDB(t)
	id := seedEditionWithPlaces(t, database, testutil.NewTestLibrary(3))

	d, err := NewEditionService(testCatalog(t), database).Get(context.Background(), id)
	require.NoError(t, err)
	assert.Len(t, d.Places, 3)
	assert.Empty(t, d.Assignments)
	assert.Empty(t, d.Attempts)
}

func TestEditionService_GetMissingPresetOmitsThemes(t *testing.T) {
	database := testutil.NewTestDB(t)
	id := seedEditionWithPlaces(t, database, testutil.NewTestLibrary(3), testutil.WithTemplate("retired"))

	d, err := NewEditionService(testCatalog(t), database).Get(context.Background(), id)
	require.NoError(t, err)
	assert.Nil(t, d.Themes)
}

func TestEditionService_ListAndDelete(t *testing.T) {
	ctx := context.Background()
	database := testutil.NewTestDB(t)
	first := seedEditionWithPlaces(t, database, testutil.NewTestLibrary(2))
	second := seedEditionWithPlaces(t, database, testutil.NewTestLibrary(2))
	svc := NewEditionService(testCatalog(t), database)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	require.NoError(t, svc.Delete(ctx, first))
	_, err = svc.Get(ctx, first)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	places, err := repository.NewSQLitePlaceRepo(database).ListByEdition(ctx, first)
	require.NoError(t, err)
	assert.Empty(t, places)

	list, err = svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, second, list[0].ID)

	assert.ErrorIs(t, svc.Delete(ctx, first), repository.ErrNotFound)
}

func TestZapUseCaseObserver(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	database := testutil.NewTestDB(t)
	id := seedEditionWithPlaces(t, database, testutil.NewTestLibrary(20))
	svc := NewPlanService(testCatalog(t), database, testutil.NewTestUoW(database), nil, nil,
		NewZapUseCaseObserver(zap.New(core)))

	_, err := svc.Plan(context.Background(), PlanRequest{EditionID: id})
	require.NoError(t, err)
	_, err = svc.Plan(context.Background(), PlanRequest{EditionID: "missing"})
	require.Error(t, err)

	entries := logs.FilterMessage("service_use_case").All()
	require.Len(t, entries, 2)

	ok := entries[0].ContextMap()
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, "plan", ok["use_case"])
	assert.Equal(t, true, ok["success"])
	assert.Equal(t, "keyword", ok["source"])

	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
	assert.Equal(t, false, entries[1].ContextMap()["success"])
}

func TestNewZapUseCaseObserver_NilLogger(t *testing.T) {
	assert.Equal(t, NoopUseCaseObserver{}, NewZapUseCaseObserver(nil))
}
