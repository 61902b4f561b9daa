package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/golf-twitchers/internal/domain/player"
	playermock "github.com/riskibarqy/golf-twitchers/internal/mocks/domain/player"
	"github.com/stretchr/testify/mock"
)

func TestPlayerService_CreateTrimsAndValidates(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := playermock.NewRepository(t)
	service := NewPlayerService(repo)

	repo.
		On("Create", ctx, player.Player{Name: "Alex", FullName: "Alex Morgan"}).
		Return(player.Player{ID: 9, Name: "Alex", FullName: "Alex Morgan"}, nil).
		Once()

	got, err := service.Create(ctx, player.Player{ID: 99, Name: "  Alex ", FullName: " Alex Morgan"})
	if err != nil {
		t.Fatalf("create player: %v", err)
	}
	if got.ID != 9 {
		t.Fatalf("unexpected player id: %d", got.ID)
	}

	if _, err := service.Create(ctx, player.Player{Name: "   "}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank name, got %v", err)
	}
}

func TestPlayerService_UpdateMissingPlayer(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := playermock.NewRepository(t)
	service := NewPlayerService(repo)

	repo.
		On("Update", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), player.Player{ID: 4, Name: "Kim"}).
		Return(false, nil).
		Once()

	_, err := service.Update(ctx, player.Player{ID: 4, Name: "Kim"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if _, err := service.Update(ctx, player.Player{Name: "Kim"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput without id, got %v", err)
	}
}

func TestPlayerService_Delete(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := playermock.NewRepository(t)
	service := NewPlayerService(repo)

	repo.On("Delete", ctx, int64(3)).Return(true, nil).Once()
	repo.On("Delete", ctx, int64(5)).Return(false, nil).Once()
	repo.On("Delete", ctx, int64(6)).Return(false, errors.New("db down")).Once()

	if err := service.Delete(ctx, 3); err != nil {
		t.Fatalf("delete player: %v", err)
	}
	if err := service.Delete(ctx, 5); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := service.Delete(ctx, 6); err == nil || errors.Is(err, ErrNotFound) {
		t.Fatalf("expected repository error, got %v", err)
	}
}

func TestPlayerService_GetByID(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := playermock.NewRepository(t)
	service := NewPlayerService(repo)

	repo.On("GetByID", ctx, int64(2)).Return(player.Player{ID: 2, Name: "Jo"}, true, nil).Once()
	repo.On("GetByID", ctx, int64(8)).Return(player.Player{}, false, nil).Once()

	got, err := service.Get(ctx, 2)
	if err != nil {
		t.Fatalf("get player: %v", err)
	}
	if got.Name != "Jo" {
		t.Fatalf("unexpected player: %+v", got)
	}
	if _, err := service.Get(ctx, 8); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
