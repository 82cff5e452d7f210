package aggregator

import (
	"context"
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/sphera-world/market-engine/internal/domain"
	"github.com/sphera-world/market-engine/internal/logger"
	"github.com/sphera-world/market-engine/internal/metrics"
	"github.com/sphera-world/market-engine/internal/providers/hedera"
	"github.com/sphera-world/market-engine/internal/store"
	"github.com/sphera-world/market-engine/internal/store/schema"
)

const (
	defaultNftOrder        = "updated_at"
	defaultCollectionOrder = "created_timestamp"
)

// tokenSearchPattern matches "<token>" or "<token>/<serial>" search queries
var tokenSearchPattern = regexp.MustCompile(`^([\d.]+)(?:/(\d+))?$`)

// GetNFTs returns a page of NFTs
func (a *aggregator) GetNFTs(ctx context.Context, caller *domain.Caller, q NftQuery) (domain.Page[domain.NftView], error) {
	q.Pagination = q.Pagination.Normalize(defaultNftOrder)
	if q.SearchQuery != "" || q.IsMarketListed {
		return a.getCachedNfts(ctx, caller, q)
	}
	return a.getIndexedNfts(ctx, caller, q)
}

// getCachedNfts reads NFTs from the cache
func (a *aggregator) getCachedNfts(ctx context.Context, caller *domain.Caller, q NftQuery) (domain.Page[domain.NftView], error) {
	p := q.Pagination
	if !store.ValidNftOrder(p.OrderBy) {
		return domain.Page[domain.NftView]{}, domain.Validation("invalid order column %q", p.OrderBy)
	}
	filter := store.NftQueryFilter{
		OrderBy:    p.OrderBy,
		OnlyListed: q.IsMarketListed,
		Ascending:  p.Direction == domain.SortAsc,
		Limit:      p.Limit(),
		Offset:     p.Offset(),
	}
	if q.AccountID != "" {
		filter.AccountID = &q.AccountID
	}
	if q.Creator != "" {
		filter.Creator = &q.Creator
	}
	if q.TokenID != "" {
		filter.TokenID = &q.TokenID
		if q.SerialNumber != "" {
			filter.SerialNumber = &q.SerialNumber
		}
	}
	if q.SearchQuery != "" {
		filter.Search = parseSearch(q.SearchQuery)
	}

	rows, err := a.store.ListNfts(ctx, filter)
	if err != nil {
		return domain.Page[domain.NftView]{}, fmt.Errorf("failed to list cached nfts: %w", err)
	}

	views, err := a.cachedNftViews(ctx, caller, rows)
	if err != nil {
		return domain.Page[domain.NftView]{}, err
	}
	return domain.TrimPage(views, p.PageSize), nil
}

func parseSearch(query string) *store.NftSearch {
	search := &store.NftSearch{Name: query}
	if m := tokenSearchPattern.FindStringSubmatch(query); m != nil {
		tokenID := m[1]
		search.TokenID = &tokenID
		if m[2] != "" {
			serial := m[2]
			search.SerialNumber = &serial
		}
	}
	return search
}

// getIndexedNfts reads NFTs of validated collections from the indexer and writes them back to the cache
func (a *aggregator) getIndexedNfts(ctx context.Context, caller *domain.Caller, q NftQuery) (domain.Page[domain.NftView], error) {
	p := q.Pagination

	tokenIDs := a.validatedTokenIDs(q.Creator)
	if q.TokenID != "" {
		if !slices.Contains(tokenIDs, q.TokenID) {
			return domain.Page[domain.NftView]{}, domain.ErrCollectionNotValidated
		}
		tokenIDs = []string{q.TokenID}
	}
	if len(tokenIDs) == 0 {
		return domain.TrimPage([]domain.NftView{}, p.PageSize), nil
	}

	query := hedera.NftQuery{
		AccountID:        q.AccountID,
		ExcludeAccountID: a.config.TrashCollectorID,
		TokenIDs:         tokenIDs,
		Limit:            p.Limit(),
		Offset:           p.Offset(),
	}
	if q.TokenID != "" {
		query.SerialNumber = q.SerialNumber
	}

	rows, err := a.indexer.QueryNfts(ctx, query)
	if err != nil {
		return domain.Page[domain.NftView]{}, fmt.Errorf("failed to query indexer nfts: %w", err)
	}
	metrics.IndexerPages.WithLabelValues("nfts").Inc()

	owners, err := usersByAccountID(ctx, a.store, rows, func(n hedera.IndexerNft) string {
		return formatNum(n.AccountID)
	})
	if err != nil {
		return domain.Page[domain.NftView]{}, err
	}

	views := make([]domain.NftView, len(rows))
	err = a.fanOut(ctx, len(rows), func(i int) error {
		views[i] = a.indexedNftView(ctx, caller, rows[i], owners)
		return nil
	})
	if err != nil {
		return domain.Page[domain.NftView]{}, err
	}

	logger.DebugCtx(ctx, "Fetched indexer nfts",
		zap.Int("count", len(rows)),
		zap.Int("page", p.Page),
		zap.Int("pageSize", p.PageSize))

	return domain.TrimPage(views, p.PageSize), nil
}

// indexedNftView formats one indexer row and merges it into the cache.
// A failed write-back is logged; the cached listing price is then unknown.
func (a *aggregator) indexedNftView(ctx context.Context, caller *domain.Caller, row hedera.IndexerNft, owners map[string]*schema.User) domain.NftView {
	accountID := formatNum(row.AccountID)
	collection := tokenView(row.Token)
	metadata := a.resolver.Resolve(ctx, row.Metadata, true)

	view := domain.NftView{
		TokenID:          formatNum(row.TokenID),
		SerialNumber:     row.SerialNumber.String(),
		CreatedTimestamp: domain.NanosToMillis(row.CreatedTimestamp.String()),
		Token:            &collection,
		Metadata:         metadata,
		YouAreOwner:      caller != nil && accountID != "" && caller.AccountID == accountID,
		Owner:            ownerView(accountID, owners[accountID]),
	}

	input := store.UpsertNftInput{
		TokenID:          view.TokenID,
		SerialNumber:     view.SerialNumber,
		AccountID:        optional(accountID),
		CreatedTimestamp: nanosToTime(row.CreatedTimestamp.String()),
		Metadata:         metadata.Resolved,
		Collection:       collectionInput(row.Token),
	}
	cached, err := a.store.UpsertNft(ctx, input)
	if err != nil {
		logger.WarnCtx(ctx, "Failed to cache indexer nft",
			zap.String("tokenId", view.TokenID),
			zap.String("serialNumber", view.SerialNumber),
			zap.Error(err))
		return view
	}
	view.Price = listedPrice(cached.Listing)
	return view
}

// cachedNftViews formats cached rows
func (a *aggregator) cachedNftViews(ctx context.Context, caller *domain.Caller, rows []*schema.Nft) ([]domain.NftView, error) {
	owners, err := usersByAccountID(ctx, a.store, rows, func(n *schema.Nft) string {
		return deref(n.AccountID)
	})
	if err != nil {
		return nil, err
	}

	views := make([]domain.NftView, 0, len(rows))
	for _, row := range rows {
		views = append(views, cachedNftView(caller, row, owners[deref(row.AccountID)]))
	}
	return views, nil
}

func cachedNftView(caller *domain.Caller, row *schema.Nft, owner *schema.User) domain.NftView {
	accountID := deref(row.AccountID)
	view := domain.NftView{
		TokenID:      row.TokenID,
		SerialNumber: row.SerialNumber,
		YouAreOwner:  caller != nil && accountID != "" && caller.AccountID == accountID,
		Owner:        ownerView(accountID, owner),
		Price:        listedPrice(row.Listing),
	}
	if row.CreatedTimestamp != nil {
		view.CreatedTimestamp = row.CreatedTimestamp.UnixMilli()
	}
	if row.Metadata != nil {
		view.Metadata = domain.MetadataValue{Resolved: metadataDocument(row.Metadata)}
	}
	if row.Collection != nil {
		collection := cachedCollectionView(row.Collection)
		view.Token = &collection
	}
	if row.Listing != nil && row.Listing.IsListed {
		view.ListingTimerJobID = row.Listing.JobID
	}
	return view
}

// GetCollections returns a page of validated collections
func (a *aggregator) GetCollections(ctx context.Context, q CollectionQuery) (domain.Page[domain.CollectionView], error) {
	p := q.Pagination.Normalize(defaultCollectionOrder)

	tokenIDs := a.validatedTokenIDs(q.Creator)
	if q.TokenID != "" {
		if !slices.Contains(tokenIDs, q.TokenID) {
			return domain.Page[domain.CollectionView]{}, domain.ErrCollectionNotValidated
		}
		tokenIDs = []string{q.TokenID}
	}
	if len(tokenIDs) == 0 {
		return domain.TrimPage([]domain.CollectionView{}, p.PageSize), nil
	}

	rows, err := a.indexer.QueryCollections(ctx, hedera.CollectionQuery{
		AccountID: q.AccountID,
		TokenIDs:  tokenIDs,
		OrderBy:   p.OrderBy,
		Direction: p.Direction,
		Limit:     p.Limit(),
		Offset:    p.Offset(),
	})
	if err != nil {
		return domain.Page[domain.CollectionView]{}, fmt.Errorf("failed to query indexer collections: %w", err)
	}
	metrics.IndexerPages.WithLabelValues("collections").Inc()

	views := make([]domain.CollectionView, len(rows))
	err = a.fanOut(ctx, len(rows), func(i int) error {
		view := tokenView(rows[i])
		view.Metadata = a.resolver.Resolve(ctx, rows[i].Memo(), false)
		views[i] = view
		return nil
	})
	if err != nil {
		return domain.Page[domain.CollectionView]{}, err
	}

	a.cacheCollections(ctx, rows)
	return domain.TrimPage(views, p.PageSize), nil
}

// cacheCollections merges indexer rows into the collections the cache already knows
func (a *aggregator) cacheCollections(ctx context.Context, rows []hedera.IndexerToken) {
	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, formatNum(row.TokenID))
	}

	known, err := a.store.GetCollectionsByTokenIDs(ctx, ids)
	if err != nil {
		logger.WarnCtx(ctx, "Failed to load cached collections", zap.Error(err))
		return
	}

	for _, row := range rows {
		input := collectionInput(row)
		if _, ok := known[input.TokenID]; !ok {
			continue
		}
		if _, err := a.store.UpsertCollection(ctx, *input); err != nil {
			logger.WarnCtx(ctx, "Failed to cache collection",
				zap.String("tokenId", input.TokenID),
				zap.Error(err))
		}
	}
}

// usersByAccountID loads the registered users owning rows
func usersByAccountID[T any](ctx context.Context, st store.Store, rows []T, accountOf func(T) string) (map[string]*schema.User, error) {
	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		if id := accountOf(row); id != "" && !slices.Contains(ids, id) {
			ids = append(ids, id)
		}
	}
	users, err := st.GetUsersByAccountIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to get owners: %w", err)
	}
	return users, nil
}

// tokenView formats an indexer token row
func tokenView(t hedera.IndexerToken) domain.CollectionView {
	view := domain.CollectionView{
		TokenID:          formatNum(t.TokenID),
		Name:             t.Name,
		Symbol:           t.Symbol,
		CreatedTimestamp: domain.NanosToMillis(t.CreatedTimestamp.String()),
		Metadata:         domain.MetadataValue{Raw: t.Memo()},
	}
	view.MaxSupply, _ = t.MaxSupply.Int64()
	view.TotalSupply, _ = t.TotalSupply.Int64()
	if fee := t.LastRoyaltyFee(); fee != nil {
		view.RoyaltyFee = royaltyRatio(fee.Numerator.String(), fee.Denominator.String())
		view.RoyaltyFeeCollector = formatNum(fee.CollectorAccountID)
	}
	return view
}

// collectionInput converts an indexer token row into a cache merge
func collectionInput(t hedera.IndexerToken) *store.UpsertCollectionInput {
	input := &store.UpsertCollectionInput{
		TokenID:          formatNum(t.TokenID),
		Name:             optional(t.Name),
		Symbol:           optional(t.Symbol),
		MaxSupply:        optional(t.MaxSupply.String()),
		TotalSupply:      optional(t.TotalSupply.String()),
		CreatedTimestamp: nanosToTime(t.CreatedTimestamp.String()),
	}
	if fee := t.LastRoyaltyFee(); fee != nil {
		input.RoyaltyFee = royaltyRatio(fee.Numerator.String(), fee.Denominator.String())
		input.RoyaltyFeeCollector = optional(formatNum(fee.CollectorAccountID))
	}
	return input
}

func cachedCollectionView(c *schema.NftCollection) domain.CollectionView {
	view := domain.CollectionView{
		TokenID:             c.TokenID,
		Name:                deref(c.Name),
		Symbol:              deref(c.Symbol),
		RoyaltyFee:          c.RoyaltyFee,
		RoyaltyFeeCollector: deref(c.RoyaltyFeeCollector),
	}
	view.MaxSupply, _ = strconv.ParseInt(deref(c.MaxSupply), 10, 64)
	view.TotalSupply, _ = strconv.ParseInt(deref(c.TotalSupply), 10, 64)
	if c.CreatedTimestamp != nil {
		view.CreatedTimestamp = c.CreatedTimestamp.UnixMilli()
	}
	return view
}

func metadataDocument(m *schema.NftMetadata) *domain.NftMetadata {
	doc := &domain.NftMetadata{
		Name:        deref(m.Name),
		Image:       deref(m.Image),
		Type:        deref(m.Type),
		Description: deref(m.Description),
		Attributes:  []domain.NftAttribute{},
	}
	for _, attr := range m.Attributes {
		doc.Attributes = append(doc.Attributes, domain.NftAttribute{TraitType: attr.TraitType, Value: attr.Value})
	}
	return doc
}

func ownerView(accountID string, user *schema.User) *domain.NftOwner {
	if accountID == "" {
		return nil
	}
	owner := &domain.NftOwner{AccountID: accountID}
	if user != nil {
		owner.ID = &user.ID
		owner.FirstName = user.FirstName
		owner.LastName = user.LastName
		owner.Username = user.Username
		owner.EvmAddress = user.EvmAddress
	}
	return owner
}

// listedPrice returns the desired price of an active listing
func listedPrice(listing *schema.NftMarketListing) *string {
	if listing == nil || !listing.IsListed {
		return nil
	}
	return listing.DesiredPrice
}

// royaltyRatio returns numerator/denominator as a decimal string, or nil when undefined
func royaltyRatio(numerator, denominator string) *string {
	num, err := decimal.NewFromString(numerator)
	if err != nil {
		return nil
	}
	den, err := decimal.NewFromString(denominator)
	if err != nil || den.IsZero() {
		return nil
	}
	ratio := num.Div(den).String()
	return &ratio
}

type numberLike interface {
	String() string
	Int64() (int64, error)
}

// formatNum formats a numeric indexer id as 0.0.N
func formatNum(n numberLike) string {
	v, err := n.Int64()
	if err != nil {
		return ""
	}
	return domain.FormatIndexerID(v)
}

func nanosToTime(ns string) *time.Time {
	ms := domain.NanosToMillis(ns)
	if ms == 0 {
		return nil
	}
	t := time.UnixMilli(ms).UTC()
	return &t
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
