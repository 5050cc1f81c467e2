package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/construction-site/internal/infra/repository"
	"github.com/BruksfildServices01/construction-site/internal/models"
	"github.com/BruksfildServices01/construction-site/internal/partial"
	"github.com/BruksfildServices01/construction-site/internal/testutil"
)

func seedServices(t *testing.T, db *gorm.DB, names ...string) []models.Service {
	t.Helper()
	out := make([]models.Service, 0, len(names))
	for i, n := range names {
		s := models.Service{Name: n, OrderPosition: i + 1, IsActive: true}
		require.NoError(t, db.Create(&s).Error)
		out = append(out, s)
	}
	return out
}

func names(items []models.Service) []string {
	out := make([]string, 0, len(items))
	for _, s := range items {
		out = append(out, s.Name)
	}
	return out
}

func TestOrderedListActiveOnly(t *testing.T) {
	db := testutil.NewDB(t)
	repo := repository.NewOrderedGormRepository[models.Service](db)
	ctx := context.Background()

	svcs := seedServices(t, db, "Roofing", "Framing", "Drywall")
	require.NoError(t, db.Model(&svcs[1]).Update("is_active", false).Error)

	active, err := repo.List(ctx, repository.ListFilter{ActiveOnly: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"Roofing", "Drywall"}, names(active))

	all, err := repo.List(ctx, repository.ListFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	_, err = repo.Get(ctx, svcs[1].ID, true)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestOrderedNextPosition(t *testing.T) {
	db := testutil.NewDB(t)
	repo := repository.NewOrderedGormRepository[models.TeamMember](db)
	ctx := context.Background()

	pos, err := repo.NextPosition(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, pos)

	require.NoError(t, db.Create(&models.TeamMember{Name: "Ana", Position: "PM", OrderPosition: 7}).Error)

	pos, err = repo.NextPosition(ctx)
	require.NoError(t, err)
	assert.Equal(t, 8, pos)
}

func TestOrderedUpdateAndDelete(t *testing.T) {
	db := testutil.NewDB(t)
	repo := repository.NewOrderedGormRepository[models.Project](db)
	ctx := context.Background()

	p := models.Project{Name: "Library", Status: models.ProjectPlanning, IsActive: true}
	require.NoError(t, repo.Create(ctx, &p))

	patch := partial.New().Set("status", models.ProjectCompleted)
	got, err := repo.Update(ctx, p.ID, patch)
	require.NoError(t, err)
	assert.Equal(t, models.ProjectCompleted, got.Status)
	assert.Equal(t, "Library", got.Name)

	_, err = repo.Update(ctx, 999, partial.New().Set("name", "x"))
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = repo.Update(ctx, p.ID, partial.New())
	assert.ErrorIs(t, err, repository.ErrEmptyUpdate)

	require.NoError(t, repo.Delete(ctx, p.ID))
	assert.ErrorIs(t, repo.Delete(ctx, p.ID), repository.ErrNotFound)
}

func TestOrderedMove(t *testing.T) {
	db := testutil.NewDB(t)
	repo := repository.NewOrderedGormRepository[models.Service](db)
	ctx := context.Background()

	svcs := seedServices(t, db, "A", "B", "C")
	// Duplicate positions must not block a move.
	require.NoError(t, db.Model(&svcs[2]).Update("order_position", 2).Error)

	moved, err := repo.Move(ctx, svcs[2].ID, repository.Up)
	require.NoError(t, err)
	assert.Equal(t, 2, moved.OrderPosition)

	list, _ := repo.List(ctx, repository.ListFilter{})
	assert.Equal(t, []string{"A", "C", "B"}, names(list))

	_, err = repo.Move(ctx, svcs[0].ID, repository.Up)
	require.NoError(t, err)
	list, _ = repo.List(ctx, repository.ListFilter{})
	assert.Equal(t, []string{"A", "C", "B"}, names(list))

	_, err = repo.Move(ctx, svcs[0].ID, repository.Down)
	require.NoError(t, err)
	list, _ = repo.List(ctx, repository.ListFilter{})
	assert.Equal(t, []string{"C", "A", "B"}, names(list))
	for i, s := range list {
		assert.Equal(t, i+1, s.OrderPosition)
	}

	_, err = repo.Move(ctx, 999, repository.Down)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
