package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	domainErrors "github.com/strandart/shop/internal/domain/errors"
	"github.com/strandart/shop/internal/domain/model"
	"github.com/strandart/shop/internal/domain/repository"
	testhelpers "github.com/strandart/shop/internal/test"
)

func TestCatalogCreateDefaultsToDraft(t *testing.T) {
	repo := &testhelpers.ProductRepositoryStub{}
	uc := NewCatalogUseCase(repo)

	created, err := uc.Create(context.Background(), &model.Product{
		Name:  "Nebula",
		Price: decimal.NewFromInt(120),
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.Status != model.ProductStatusDraft {
		t.Fatalf("expected draft status, got %q", created.Status)
	}
	if created.ID == 0 {
		t.Fatalf("expected assigned ID")
	}
}

func TestCatalogCreateValidation(t *testing.T) {
	uc := NewCatalogUseCase(&testhelpers.ProductRepositoryStub{})

	cases := []struct {
		name    string
		product model.Product
		want    error
	}{
		{"empty name", model.Product{Price: decimal.NewFromInt(1)}, domainErrors.ErrInvalidProduct},
		{"blank name", model.Product{Name: "   ", Price: decimal.NewFromInt(1)}, domainErrors.ErrInvalidProduct},
		{"negative price", model.Product{Name: "x", Price: decimal.NewFromInt(-1)}, domainErrors.ErrInvalidProduct},
		{"negative quantity", model.Product{Name: "x", Quantity: -1}, domainErrors.ErrInvalidQuantity},
		{"bad status", model.Product{Name: "x", Status: "sold-out"}, domainErrors.ErrInvalidStatus},
	}
	for _, tc := range cases {
		product := tc.product
		if _, err := uc.Create(context.Background(), &product); !errors.Is(err, tc.want) {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
	}
}

func TestCatalogSetStatus(t *testing.T) {
	var gotID int64
	var gotStatus model.ProductStatus
	repo := &testhelpers.ProductRepositoryStub{
		SetStatusFn: func(ctx context.Context, id int64, status model.ProductStatus) error {
			gotID, gotStatus = id, status
			return nil
		},
	}
	uc := NewCatalogUseCase(repo)

	if err := uc.SetStatus(context.Background(), 4, model.ProductStatusArchived); err != nil {
		t.Fatalf("set status failed: %v", err)
	}
	if gotID != 4 || gotStatus != model.ProductStatusArchived {
		t.Fatalf("unexpected call id=%d status=%q", gotID, gotStatus)
	}
	if err := uc.SetStatus(context.Background(), 4, "gone"); !errors.Is(err, domainErrors.ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestCatalogListFilterValidation(t *testing.T) {
	repo := &testhelpers.ProductRepositoryStub{
		Products: []model.Product{{ID: 1, Name: "Aurora"}},
	}
	uc := NewCatalogUseCase(repo)

	products, err := uc.List(context.Background(), repository.ProductFilter{Status: model.ProductStatusActive})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(products) != 1 {
		t.Fatalf("expected one product, got %d", len(products))
	}
	if _, err := uc.List(context.Background(), repository.ProductFilter{Status: "bogus"}); !errors.Is(err, domainErrors.ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestCatalogAttachImage(t *testing.T) {
	repo := &testhelpers.ProductRepositoryStub{}
	uc := NewCatalogUseCase(repo)

	imageID, err := uc.AttachImage(context.Background(), 2)
	if err != nil {
		t.Fatalf("attach image failed: %v", err)
	}
	if imageID == "" {
		t.Fatalf("expected generated image id")
	}
	if len(repo.Images) != 1 || repo.Images[0] != imageID {
		t.Fatalf("image id not stored: %v", repo.Images)
	}
}

func TestCatalogStockOnHand(t *testing.T) {
	repo := &testhelpers.ProductRepositoryStub{
		Products: []model.Product{{ID: 9, Name: "Orbit", Quantity: 5}},
	}
	uc := NewCatalogUseCase(repo)

	qty, err := uc.StockOnHand(context.Background(), 9)
	if err != nil {
		t.Fatalf("stock read failed: %v", err)
	}
	if qty != 5 {
		t.Fatalf("expected 5, got %d", qty)
	}
	if _, err := uc.StockOnHand(context.Background(), 404); !errors.Is(err, domainErrors.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}
