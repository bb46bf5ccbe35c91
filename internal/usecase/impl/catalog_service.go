package impl

import (
	"context"
	"log/slog"

	deliverycontext "prepcat/internal/delivery/context"
	"prepcat/internal/domain/catalog"
	domainerrors "prepcat/internal/domain/errors"
	"prepcat/internal/domain/repository"
	"prepcat/internal/usecase"

	"github.com/pkg/errors"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	repo     repository.CatalogRepository
	store    repository.CatalogStore
	sessions usecase.SessionUsecase
	logger   *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(
	repo repository.CatalogRepository,
	store repository.CatalogStore,
	sessions usecase.SessionUsecase,
	logger *slog.Logger,
) usecase.CatalogUsecase {
	return &catalogService{
		repo:     repo,
		store:    store,
		sessions: sessions,
		logger:   logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// index builds the id lookup over the current snapshot.
func (srv *catalogService) index() (*catalog.Index, error) {
	snapshot, err := srv.store.Snapshot()
	if err != nil {
		return nil, domainerrors.ErrSnapshotUnavailable.WrapMessage("reading current snapshot")
	}

	return catalog.NewIndex(snapshot), nil
}

// Tree runs the derivation pipeline for one session: filter, sort, group,
// then annotate every row against the session's selection and expansion state.
func (srv *catalogService) Tree(ctx context.Context, sessionID string) (*usecase.TreeView, error) {
	srv.log(ctx).Debug("Deriving catalog tree", slog.String("session_id", sessionID))

	state, err := srv.sessions.GetState(ctx, sessionID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve session state")
	}

	ix, err := srv.index()
	if err != nil {
		return nil, err
	}

	filtered := catalog.Filter(ix.Snapshot().Products, state.Criteria, ix)
	sorted := catalog.Sort(filtered, state.SortField, state.SortDirection, ix)
	groups := catalog.Group(sorted, ix)

	tree := &usecase.TreeView{
		Categories:    make([]*usecase.CategoryNode, 0, len(groups)),
		TotalProducts: len(sorted),
	}
	for _, group := range groups {
		icon := ""
		if group.Category.Icon != nil {
			icon = *group.Category.Icon
		}
		node := &usecase.CategoryNode{
			ID:            group.Category.ID,
			Name:          group.Category.Name,
			Icon:          icon,
			Expanded:      state.ExpandedCategories[group.Category.ID],
			MasterItems:   make([]*usecase.MasterItemNode, 0, len(group.MasterItems)),
			Subcategories: make([]*usecase.SubcategoryNode, 0, len(group.Subcategories)),
		}
		for _, bucket := range group.MasterItems {
			node.MasterItems = append(node.MasterItems, buildMasterItemNode(bucket, ix, state.Selection))
		}
		for _, sub := range group.Subcategories {
			subNode := &usecase.SubcategoryNode{
				ID:          sub.Category.ID,
				Name:        sub.Category.Name,
				Expanded:    state.ExpandedSubcategories[sub.Category.ID],
				MasterItems: make([]*usecase.MasterItemNode, 0, len(sub.MasterItems)),
			}
			for _, bucket := range sub.MasterItems {
				subNode.MasterItems = append(subNode.MasterItems, buildMasterItemNode(bucket, ix, state.Selection))
			}
			node.Subcategories = append(node.Subcategories, subNode)
		}
		tree.Categories = append(tree.Categories, node)
	}

	srv.log(ctx).Debug("Derived catalog tree",
		slog.String("session_id", sessionID),
		slog.Int("categories", len(tree.Categories)),
		slog.Int("products", tree.TotalProducts))

	return tree, nil
}

// ListProducts returns the filtered, sorted flat list without grouping.
func (srv *catalogService) ListProducts(ctx context.Context, criteria catalog.Criteria, field catalog.SortField, direction catalog.SortDirection) ([]*usecase.ProductRow, error) {
	ix, err := srv.index()
	if err != nil {
		return nil, err
	}

	filtered := catalog.Filter(ix.Snapshot().Products, criteria, ix)
	sorted := catalog.Sort(filtered, field, direction, ix)

	rows := make([]*usecase.ProductRow, 0, len(sorted))
	for _, product := range sorted {
		rows = append(rows, buildProductRow(product, ix, false))
	}

	return rows, nil
}

// ReloadSnapshot forces a wholesale refresh from the backing repository.
func (srv *catalogService) ReloadSnapshot(ctx context.Context) error {
	srv.log(ctx).Info("Reloading catalog snapshot")

	snapshot, err := srv.repo.LoadSnapshot(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to reload catalog snapshot", slog.Any("error", err))

		return errors.Wrap(err, "failed to reload catalog snapshot")
	}

	srv.store.Replace(snapshot)
	srv.log(ctx).Info("Catalog snapshot replaced",
		slog.Int("categories", len(snapshot.Categories)),
		slog.Int("master_items", len(snapshot.MasterItems)),
		slog.Int("products", len(snapshot.Products)),
		slog.Int("suppliers", len(snapshot.Suppliers)))

	return nil
}
