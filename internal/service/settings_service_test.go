package service

import (
	"testing"

	"go-restaurant-pos/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsService_UpdateSetting(t *testing.T) {
	repo := &fakeSettingRepo{}
	svc := NewSettingsService(repo, &fakeAuditRepo{})

	setting := &model.SystemSetting{SettingKey: "store_name", SettingValue: "Restaurant POS"}
	require.NoError(t, repo.Create(setting))

	require.NoError(t, svc.UpdateSetting(setting.ID, "Krua Thai", uuid.New().String()))

	updated, err := repo.FindByKey("store_name")
	require.NoError(t, err)
	assert.Equal(t, "Krua Thai", updated.SettingValue)
}

func TestSettingsService_UpdateSetting_NotFound(t *testing.T) {
	svc := NewSettingsService(&fakeSettingRepo{}, &fakeAuditRepo{})

	err := svc.UpdateSetting(uuid.New(), "anything", uuid.New().String())
	assert.ErrorIs(t, err, ErrSettingNotFound)
}

func TestSettingsService_MenuItemLifecycle(t *testing.T) {
	repo := &fakeSettingRepo{}
	svc := NewSettingsService(repo, &fakeAuditRepo{})
	userID := uuid.New().String()

	item := &model.MenuItem{
		ProductID:    uuid.New(),
		DisplayOrder: 3,
		IsFeatured:   true,
	}
	require.NoError(t, svc.CreateMenuItem(item, userID))

	items, err := svc.GetMenuItems()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, item.ProductID, items[0].ProductID)
	assert.Equal(t, 3, items[0].DisplayOrder)

	require.NoError(t, svc.DeleteMenuItem(item.ID, userID))

	items, err = svc.GetMenuItems()
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestSettingsService_CreateMenuItem_RequiresProduct(t *testing.T) {
	svc := NewSettingsService(&fakeSettingRepo{}, &fakeAuditRepo{})

	err := svc.CreateMenuItem(&model.MenuItem{}, uuid.New().String())
	assert.Error(t, err)
}
