package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Ivkin-Alexey/mylaboratory-sub000/internal/entities"
)

func newLifecycleForTest(repo *fakeEquipmentRepo) LifecycleServiceInterface {
	return NewLifecycleService(repo, &fakeTxManager{}, zap.NewNop())
}

func immediateEquipment(id string) *entities.Equipment {
	return &entities.Equipment{
		ID:        id,
		Name:      "Мультиметр",
		Status:    entities.EquipmentStatusAvailable,
		UsageType: entities.UsageTypeImmediate,
	}
}

func TestUse(t *testing.T) {
	repo := newFakeEquipmentRepo(immediateEquipment("205-SN113"))
	svc := newLifecycleForTest(repo)

	eq, err := svc.Use(context.Background(), "205-SN113")
	require.NoError(t, err)
	assert.Equal(t, entities.EquipmentStatusInUse, eq.Status)

	stored, err := repo.FindEquipment(context.Background(), "205-SN113")
	require.NoError(t, err)
	assert.Equal(t, entities.EquipmentStatusInUse, stored.Status)
}

func TestUse_WrongUsageType(t *testing.T) {
	eq := immediateEquipment("101-SN441")
	eq.UsageType = entities.UsageTypeBooking
	svc := newLifecycleForTest(newFakeEquipmentRepo(eq))

	_, err := svc.Use(context.Background(), "101-SN441")
	requireHTTPError(t, err, 400, "Equipment does not support immediate use")
}

func TestUse_AlreadyInUse(t *testing.T) {
	repo := newFakeEquipmentRepo(immediateEquipment("205-SN113"))
	svc := newLifecycleForTest(repo)

	_, err := svc.Use(context.Background(), "205-SN113")
	require.NoError(t, err)

	_, err = svc.Use(context.Background(), "205-SN113")
	requireHTTPError(t, err, 400, "Equipment is not available")
}

func TestUse_NotFound(t *testing.T) {
	svc := newLifecycleForTest(newFakeEquipmentRepo())

	_, err := svc.Use(context.Background(), "missing")
	requireHTTPError(t, err, 404, "Equipment not found")
}

func TestFinish(t *testing.T) {
	repo := newFakeEquipmentRepo(immediateEquipment("205-SN113"))
	svc := newLifecycleForTest(repo)

	_, err := svc.Use(context.Background(), "205-SN113")
	require.NoError(t, err)

	eq, err := svc.Finish(context.Background(), "205-SN113")
	require.NoError(t, err)
	assert.Equal(t, entities.EquipmentStatusAvailable, eq.Status)
}

func TestFinish_NotInUse(t *testing.T) {
	svc := newLifecycleForTest(newFakeEquipmentRepo(immediateEquipment("205-SN113")))

	_, err := svc.Finish(context.Background(), "205-SN113")
	requireHTTPError(t, err, 400, "Equipment is not in use (current status: available)")
}
