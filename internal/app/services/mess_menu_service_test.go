package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okan/hostelhub/internal/app/models"
	"github.com/okan/hostelhub/internal/app/models/dto"
	"github.com/okan/hostelhub/internal/pkg/apperrors"
)

type mockMessMenuRepo struct {
	menus  map[int64]*models.MessMenu
	nextID int64
}

func newMockMessMenuRepo() *mockMessMenuRepo {
	return &mockMessMenuRepo{menus: map[int64]*models.MessMenu{}, nextID: 1}
}

func (m *mockMessMenuRepo) Create(_ context.Context, menu *models.MessMenu) error {
	for _, existing := range m.menus {
		if existing.Date.Equal(menu.Date) {
			return apperrors.ErrMenuAlreadyExists
		}
	}
	menu.ID = m.nextID
	m.nextID++
	cp := *menu
	m.menus[menu.ID] = &cp
	return nil
}

func (m *mockMessMenuRepo) GetByID(_ context.Context, id int64) (*models.MessMenu, error) {
	menu, ok := m.menus[id]
	if !ok {
		return nil, apperrors.ErrMenuNotFound
	}
	cp := *menu
	return &cp, nil
}

func (m *mockMessMenuRepo) GetByDate(_ context.Context, date time.Time) (*models.MessMenu, error) {
	for _, menu := range m.menus {
		if menu.Date.Equal(date) {
			cp := *menu
			return &cp, nil
		}
	}
	return nil, apperrors.ErrMenuNotFound
}

func (m *mockMessMenuRepo) GetRange(_ context.Context, from, to time.Time) ([]*models.MessMenu, error) {
	var out []*models.MessMenu
	for id := int64(1); id < m.nextID; id++ {
		menu, ok := m.menus[id]
		if !ok {
			continue
		}
		if menu.Date.Before(from) || menu.Date.After(to) {
			continue
		}
		cp := *menu
		out = append(out, &cp)
	}
	return out, nil
}

func (m *mockMessMenuRepo) Update(_ context.Context, menu *models.MessMenu) error {
	if _, ok := m.menus[menu.ID]; !ok {
		return apperrors.ErrMenuNotFound
	}
	cp := *menu
	m.menus[menu.ID] = &cp
	return nil
}

func (m *mockMessMenuRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.menus[id]; !ok {
		return apperrors.ErrMenuNotFound
	}
	delete(m.menus, id)
	return nil
}

func testMessMenuService(repo *mockMessMenuRepo) *MessMenuService {
	svc := NewMessMenuService(repo)
	svc.now = func() time.Time { return time.Date(2024, 3, 4, 9, 30, 0, 0, time.UTC) }
	return svc
}

func TestCreateMenu(t *testing.T) {
	repo := newMockMessMenuRepo()
	svc := testMessMenuService(repo)

	resp, err := svc.CreateMenu(context.Background(), adminActor, &dto.CreateMessMenuRequest{
		Date:      "2024-03-04",
		Breakfast: "poha, tea",
		Lunch:     "dal, rice, roti",
		Dinner:    "paneer, rice",
	})
	require.NoError(t, err)
	assert.Equal(t, "2024-03-04", resp.Date)
	assert.Nil(t, resp.Snacks)
}

func TestCreateMenu_DuplicateDate(t *testing.T) {
	repo := newMockMessMenuRepo()
	svc := testMessMenuService(repo)

	req := &dto.CreateMessMenuRequest{Date: "2024-03-04", Breakfast: "poha", Lunch: "dal", Dinner: "rice"}
	_, err := svc.CreateMenu(context.Background(), adminActor, req)
	require.NoError(t, err)

	_, err = svc.CreateMenu(context.Background(), adminActor, req)
	assert.True(t, errors.Is(err, apperrors.ErrMenuAlreadyExists))
}

func TestCreateMenu_Denied(t *testing.T) {
	svc := testMessMenuService(newMockMessMenuRepo())

	req := &dto.CreateMessMenuRequest{Date: "2024-03-04", Breakfast: "poha", Lunch: "dal", Dinner: "rice"}
	_, err := svc.CreateMenu(context.Background(), wardenActor, req)
	assert.True(t, errors.Is(err, apperrors.ErrPermissionDenied))

	_, err = svc.CreateMenu(context.Background(), studentActor, req)
	assert.True(t, errors.Is(err, apperrors.ErrPermissionDenied))
}

func TestCreateMenu_InvalidDate(t *testing.T) {
	svc := testMessMenuService(newMockMessMenuRepo())

	_, err := svc.CreateMenu(context.Background(), adminActor, &dto.CreateMessMenuRequest{
		Date: "04-03-2024", Breakfast: "poha", Lunch: "dal", Dinner: "rice",
	})
	assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))
}

func TestGetTodayMenu(t *testing.T) {
	repo := newMockMessMenuRepo()
	svc := testMessMenuService(repo)

	_, err := svc.CreateMenu(context.Background(), adminActor, &dto.CreateMessMenuRequest{
		Date: "2024-03-04", Breakfast: "idli", Lunch: "sambar rice", Dinner: "chapati",
	})
	require.NoError(t, err)

	// Students can read today's menu
	resp, err := svc.GetTodayMenu(context.Background(), studentActor)
	require.NoError(t, err)
	assert.Equal(t, "idli", resp.Breakfast)
}

func TestGetTodayMenu_Missing(t *testing.T) {
	svc := testMessMenuService(newMockMessMenuRepo())

	_, err := svc.GetTodayMenu(context.Background(), studentActor)
	assert.True(t, errors.Is(err, apperrors.ErrResourceNotFound))
}

func TestListMenus_DefaultWeek(t *testing.T) {
	repo := newMockMessMenuRepo()
	svc := testMessMenuService(repo)

	for _, d := range []string{"2024-03-03", "2024-03-04", "2024-03-10", "2024-03-11"} {
		_, err := svc.CreateMenu(context.Background(), adminActor, &dto.CreateMessMenuRequest{
			Date: d, Breakfast: "b", Lunch: "l", Dinner: "d",
		})
		require.NoError(t, err)
	}

	// Pinned today is 2024-03-04, so the default window is 03-04 .. 03-10.
	menus, err := svc.ListMenus(context.Background(), studentActor, nil, nil)
	require.NoError(t, err)
	require.Len(t, menus, 2)
	assert.Equal(t, "2024-03-04", menus[0].Date)
	assert.Equal(t, "2024-03-10", menus[1].Date)
}

func TestListMenus_InvertedRange(t *testing.T) {
	svc := testMessMenuService(newMockMessMenuRepo())

	from := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	_, err := svc.ListMenus(context.Background(), adminActor, &from, &to)
	assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))
}

func TestUpdateMenu(t *testing.T) {
	repo := newMockMessMenuRepo()
	svc := testMessMenuService(repo)

	created, err := svc.CreateMenu(context.Background(), adminActor, &dto.CreateMessMenuRequest{
		Date: "2024-03-04", Breakfast: "poha", Lunch: "dal", Dinner: "rice",
	})
	require.NoError(t, err)

	lunch := "rajma chawal"
	snacks := "samosa"
	resp, err := svc.UpdateMenu(context.Background(), adminActor, created.ID, &dto.UpdateMessMenuRequest{
		Lunch:  &lunch,
		Snacks: &snacks,
	})
	require.NoError(t, err)
	assert.Equal(t, "rajma chawal", resp.Lunch)
	require.NotNil(t, resp.Snacks)
	assert.Equal(t, "samosa", *resp.Snacks)
	assert.Equal(t, "poha", resp.Breakfast)
}

func TestDeleteMenu(t *testing.T) {
	repo := newMockMessMenuRepo()
	svc := testMessMenuService(repo)

	created, err := svc.CreateMenu(context.Background(), adminActor, &dto.CreateMessMenuRequest{
		Date: "2024-03-04", Breakfast: "poha", Lunch: "dal", Dinner: "rice",
	})
	require.NoError(t, err)

	err = svc.DeleteMenu(context.Background(), wardenActor, created.ID)
	assert.True(t, errors.Is(err, apperrors.ErrPermissionDenied))

	require.NoError(t, svc.DeleteMenu(context.Background(), adminActor, created.ID))

	_, err = svc.GetMenu(context.Background(), adminActor, created.ID)
	assert.True(t, errors.Is(err, apperrors.ErrResourceNotFound))
}
