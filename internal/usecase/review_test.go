package usecase

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/strandart/shop/internal/domain/errors"
	"github.com/strandart/shop/internal/domain/model"
	testhelpers "github.com/strandart/shop/internal/test"
)

func TestReviewCreate(t *testing.T) {
	products := &testhelpers.ProductRepositoryStub{
		Products: []model.Product{{ID: 2, Name: "Nebula"}},
	}
	reviews := &testhelpers.ReviewRepositoryStub{}
	uc := NewReviewUseCase(reviews, products)

	review, err := uc.Create(context.Background(), 1, 2, 5, "stunning thread work")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if review.ID == 0 || review.Rating != 5 || review.ProductID != 2 {
		t.Fatalf("unexpected review %+v", review)
	}
}

func TestReviewCreateInvalidRating(t *testing.T) {
	uc := NewReviewUseCase(&testhelpers.ReviewRepositoryStub{}, &testhelpers.ProductRepositoryStub{})

	for _, rating := range []int{0, -1, 6} {
		if _, err := uc.Create(context.Background(), 1, 2, rating, ""); !errors.Is(err, domainErrors.ErrInvalidRating) {
			t.Fatalf("rating %d: expected ErrInvalidRating, got %v", rating, err)
		}
	}
}

func TestReviewCreateUnknownProduct(t *testing.T) {
	uc := NewReviewUseCase(&testhelpers.ReviewRepositoryStub{}, &testhelpers.ProductRepositoryStub{})

	if _, err := uc.Create(context.Background(), 1, 404, 4, ""); !errors.Is(err, domainErrors.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestReviewCreateDuplicate(t *testing.T) {
	products := &testhelpers.ProductRepositoryStub{
		Products: []model.Product{{ID: 2, Name: "Nebula"}},
	}
	reviews := &testhelpers.ReviewRepositoryStub{
		CreateFn: func(ctx context.Context, review *model.Review) (*model.Review, error) {
			return nil, domainErrors.ErrAlreadyExists
		},
	}
	uc := NewReviewUseCase(reviews, products)

	if _, err := uc.Create(context.Background(), 1, 2, 4, "again"); !errors.Is(err, domainErrors.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestReviewListByProduct(t *testing.T) {
	reviews := &testhelpers.ReviewRepositoryStub{
		Items: []model.Review{{ID: 1, ProductID: 2, Rating: 4}},
	}
	uc := NewReviewUseCase(reviews, &testhelpers.ProductRepositoryStub{})

	list, err := uc.ListByProduct(context.Background(), 2)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected one review, got %d", len(list))
	}
}
