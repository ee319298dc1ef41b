package product

import (
	"context"
	"strings"

	"hostel-store/internal/logger"
	"hostel-store/internal/remote"

	"go.uber.org/zap"
)

// CategoryAll matches every category when filtering.
const CategoryAll = "all"

// Repository is the slice of the remote data service the catalog needs.
type Repository interface {
	Select(ctx context.Context, table string, q remote.Query, token string, dest any) error
}

// Service defines the catalog read model.
type Service interface {
	List(ctx context.Context) ([]Product, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// List fetches the whole catalog ordered by name.
func (s *service) List(ctx context.Context) ([]Product, error) {
	log := logger.FromCtx(ctx)

	var products []Product
	q := remote.NewQuery().Order("name", false)
	if err := s.repo.Select(ctx, "products", q, "", &products); err != nil {
		log.Error("failed to fetch products", zap.Error(err))
		return nil, err
	}

	log.Debug("products fetched", zap.Int("count", len(products)))
	return products, nil
}

// Categories returns "all" plus each category in first-seen order.
func Categories(products []Product) []string {
	categories := []string{CategoryAll}
	seen := map[string]bool{}
	for _, p := range products {
		if p.Category == "" || seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		categories = append(categories, p.Category)
	}
	return categories
}

// Filter narrows a fetched catalog by category and a case-insensitive
// search over name and description, the way the products page does.
func Filter(products []Product, category, search string) []Product {
	search = strings.ToLower(strings.TrimSpace(search))

	filtered := make([]Product, 0, len(products))
	for _, p := range products {
		if category != "" && category != CategoryAll && p.Category != category {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.Description), search) {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered
}
