package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/sphera-world/market-engine/internal/domain"
	"github.com/sphera-world/market-engine/internal/logger"
	"github.com/sphera-world/market-engine/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// ConfigureConnectionPool configures the connection pool settings for a GORM database connection.
// It accesses the underlying *sql.DB and sets the pool configuration.
// If any of the pool settings are 0 or empty, reasonable defaults are used:
//   - MaxOpenConns: 20 (if 0)
//   - MaxIdleConns: 5 (if 0)
//   - ConnMaxLifetime: 5 minutes (if 0)
//   - ConnMaxIdleTime: 10 minutes (if 0)
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime =
		NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// NormalizeConnectionPoolSettings applies defaults and clamps pool settings into safe values.
//
// Notes:
//   - database/sql treats MaxOpenConns=0 as "unlimited"
//   - database/sql treats MaxIdleConns=0 as "no idle connections"
func NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) (int, int, time.Duration, time.Duration) {
	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	// Ensure MaxIdleConns doesn't exceed MaxOpenConns
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	return maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime
}

// calculateSafeBatchSize computes the batch size for bulk inserts that stays under
// PostgreSQL's 65535 parameters per statement limit.
func calculateSafeBatchSize(totalRecords int, fieldsPerRecord int) int {
	const maxParams = 65535
	const totalHeadroom = 1000

	availableParams := maxParams - totalHeadroom
	safeBatchSize := max(availableParams/fieldsPerRecord, 1)

	if safeBatchSize > totalRecords {
		return totalRecords
	}

	return safeBatchSize
}

// mergeText keeps the existing value when the incoming one is null or empty
func mergeText(table, column string) clause.Assignment {
	return clause.Assignment{
		Column: clause.Column{Name: column},
		Value:  gorm.Expr(fmt.Sprintf("COALESCE(NULLIF(EXCLUDED.%s, ''), %s.%s)", column, table, column)),
	}
}

// mergeValue keeps the existing value when the incoming one is null
func mergeValue(table, column string) clause.Assignment {
	return clause.Assignment{
		Column: clause.Column{Name: column},
		Value:  gorm.Expr(fmt.Sprintf("COALESCE(EXCLUDED.%s, %s.%s)", column, table, column)),
	}
}

func nonEmpty(s *string) bool {
	return s != nil && *s != ""
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// GetNft retrieves an NFT with its listing, metadata and collection
func (s *pgStore) GetNft(ctx context.Context, tokenID, serialNumber string) (*schema.Nft, error) {
	var nft schema.Nft
	err := s.db.WithContext(ctx).
		Preload("Listing").
		Preload("Metadata").
		Preload("Collection").
		Where("token_id = ? AND serial_number = ?", tokenID, serialNumber).
		First(&nft).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get nft: %w", err)
	}
	return &nft, nil
}

// ListNfts retrieves NFTs matching the filter
func (s *pgStore) ListNfts(ctx context.Context, filter NftQueryFilter) ([]*schema.Nft, error) {
	query := s.db.WithContext(ctx).
		Model(&schema.Nft{}).
		Preload("Listing").
		Preload("Metadata").
		Preload("Collection")

	if filter.OnlyListed {
		query = query.
			Joins("JOIN nft_market_listings ON nft_market_listings.id = nfts.listing_id").
			Where("nft_market_listings.is_listed = ?", true)
	}
	if filter.Creator != nil || filter.Search != nil {
		query = query.Joins("LEFT JOIN nft_collections ON nft_collections.id = nfts.collection_id")
		if filter.Creator != nil {
			query = query.Where("nft_collections.creator = ?", *filter.Creator)
		}
		if filter.Search != nil {
			query = query.Where(searchCondition(s.db, *filter.Search))
		}
	}
	if filter.AccountID != nil {
		query = query.Where("nfts.account_id = ?", *filter.AccountID)
	}
	if filter.ExcludeAccountID != nil {
		query = query.Where("nfts.account_id IS DISTINCT FROM ?", *filter.ExcludeAccountID)
	}
	if filter.TokenID != nil {
		query = query.Where("nfts.token_id = ?", *filter.TokenID)
		if filter.SerialNumber != nil {
			query = query.Where("nfts.serial_number = ?", *filter.SerialNumber)
		}
	}

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	direction := "DESC"
	if filter.Ascending {
		direction = "ASC"
	}
	column, ok := nftOrderColumns[filter.OrderBy]
	if !ok {
		column = nftOrderColumns["updated_at"]
	}

	var nfts []*schema.Nft
	err := query.
		Order(column + " " + direction).
		Order("nfts.id " + direction).
		Find(&nfts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list nfts: %w", err)
	}
	return nfts, nil
}

// searchCondition builds "name ILIKE ? OR token match" as one grouped condition
func searchCondition(db *gorm.DB, search NftSearch) *gorm.DB {
	cond := db.Where("nft_collections.name ILIKE ?", "%"+search.Name+"%")
	if search.TokenID == nil {
		return cond
	}
	if search.SerialNumber != nil {
		return cond.Or("nfts.token_id = ? AND nfts.serial_number = ?", *search.TokenID, *search.SerialNumber)
	}
	return cond.Or("nfts.token_id = ?", *search.TokenID)
}

// UpsertNft merges an NFT into the cache
func (s *pgStore) UpsertNft(ctx context.Context, input UpsertNftInput) (*schema.Nft, error) {
	var nftID int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. Resolve the collection
		var collectionID *int64
		if input.Collection != nil {
			collection, err := upsertCollection(tx, *input.Collection)
			if err != nil {
				return err
			}
			collectionID = &collection.ID
		} else {
			var collection schema.NftCollection
			err := tx.Where("token_id = ?", input.TokenID).First(&collection).Error
			if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("failed to get collection: %w", err)
			}
			if err == nil {
				collectionID = &collection.ID
			}
		}

		// 2. Lock the existing row if any
		var nft schema.Nft
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("token_id = ? AND serial_number = ?", input.TokenID, input.SerialNumber).
			First(&nft).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to lock nft: %w", err)
		}

		// 3. Insert a new row
		if errors.Is(err, gorm.ErrRecordNotFound) {
			nft = schema.Nft{
				TokenID:          input.TokenID,
				SerialNumber:     input.SerialNumber,
				CreatedTimestamp: input.CreatedTimestamp,
				CollectionID:     collectionID,
			}
			if nonEmpty(input.AccountID) {
				nft.AccountID = input.AccountID
			}
			if input.Metadata != nil {
				metadata := metadataRow(*input.Metadata)
				if err := tx.Create(&metadata).Error; err != nil {
					return fmt.Errorf("failed to create nft metadata: %w", err)
				}
				nft.MetadataID = &metadata.ID
			}
			// Concurrent writers may race on the unique (token_id, serial_number)
			result := tx.Clauses(clause.OnConflict{DoNothing: true}).Omit(clause.Associations).Create(&nft)
			if result.Error != nil {
				return fmt.Errorf("failed to create nft: %w", result.Error)
			}
			if result.RowsAffected == 0 {
				return fmt.Errorf("concurrent insert of nft %s/%s", input.TokenID, input.SerialNumber)
			}
			nftID = nft.ID
			return nil
		}

		// 4. Merge into the existing row
		updates := map[string]interface{}{}
		if nonEmpty(input.AccountID) {
			updates["account_id"] = *input.AccountID
		}
		if input.CreatedTimestamp != nil {
			updates["created_timestamp"] = *input.CreatedTimestamp
		}
		if collectionID != nil {
			updates["collection_id"] = *collectionID
		}

		if input.Metadata != nil {
			if nft.MetadataID == nil {
				metadata := metadataRow(*input.Metadata)
				if err := tx.Create(&metadata).Error; err != nil {
					return fmt.Errorf("failed to create nft metadata: %w", err)
				}
				updates["metadata_id"] = metadata.ID
			} else if err := mergeMetadata(tx, *nft.MetadataID, *input.Metadata); err != nil {
				return err
			}
		}

		if len(updates) > 0 {
			if err := tx.Model(&schema.Nft{}).Where("id = ?", nft.ID).Updates(updates).Error; err != nil {
				return fmt.Errorf("failed to update nft: %w", err)
			}
		}
		nftID = nft.ID
		return nil
	})
	if err != nil {
		return nil, err
	}

	var nft schema.Nft
	if err := s.db.WithContext(ctx).
		Preload("Listing").
		Preload("Metadata").
		Preload("Collection").
		First(&nft, nftID).Error; err != nil {
		return nil, fmt.Errorf("failed to reload nft: %w", err)
	}
	return &nft, nil
}

func metadataRow(m domain.NftMetadata) schema.NftMetadata {
	row := schema.NftMetadata{
		Name:        optionalString(m.Name),
		Image:       optionalString(m.Image),
		Type:        optionalString(m.Type),
		Description: optionalString(m.Description),
	}
	for _, attr := range m.Attributes {
		row.Attributes = append(row.Attributes, schema.NftAttribute{TraitType: attr.TraitType, Value: attr.Value})
	}
	return row
}

func mergeMetadata(tx *gorm.DB, metadataID int64, m domain.NftMetadata) error {
	updates := map[string]interface{}{}
	for column, value := range map[string]string{
		"name":        m.Name,
		"image":       m.Image,
		"type":        m.Type,
		"description": m.Description,
	} {
		if value != "" {
			updates[column] = value
		}
	}
	if len(m.Attributes) > 0 {
		row := metadataRow(m)
		updates["attributes"] = row.Attributes
	}
	if len(updates) == 0 {
		return nil
	}
	if err := tx.Model(&schema.NftMetadata{}).Where("id = ?", metadataID).Updates(updates).Error; err != nil {
		return fmt.Errorf("failed to update nft metadata: %w", err)
	}
	return nil
}

// UpdateListing applies a partial listing update
func (s *pgStore) UpdateListing(ctx context.Context, nftID int64, update ListingUpdate) (*schema.NftMarketListing, error) {
	var listing schema.NftMarketListing
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var nft schema.Nft
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Where("id = ?", nftID).First(&nft).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNftNotFound
			}
			return fmt.Errorf("failed to lock nft: %w", err)
		}

		if nft.ListingID == nil {
			listing = schema.NftMarketListing{}
			if err := tx.Create(&listing).Error; err != nil {
				return fmt.Errorf("failed to create listing: %w", err)
			}
			if err := tx.Model(&schema.Nft{}).Where("id = ?", nft.ID).Update("listing_id", listing.ID).Error; err != nil {
				return fmt.Errorf("failed to link listing: %w", err)
			}
		} else if err := tx.Where("id = ?", *nft.ListingID).First(&listing).Error; err != nil {
			return fmt.Errorf("failed to get listing: %w", err)
		}

		updates := map[string]interface{}{}
		if update.DesiredPrice != nil {
			updates["desired_price"] = *update.DesiredPrice
		}
		if update.ListingEndTimestamp != nil {
			updates["listing_end_timestamp"] = *update.ListingEndTimestamp
		}
		if update.JobID != nil {
			updates["job_id"] = *update.JobID
		}
		if update.ClearJobID {
			updates["job_id"] = nil
		}
		if update.IsListed != nil {
			updates["is_listed"] = *update.IsListed
			if !*update.IsListed {
				updates["job_id"] = nil
			}
		}
		if len(updates) == 0 {
			return nil
		}

		if err := tx.Model(&listing).Updates(updates).Error; err != nil {
			return fmt.Errorf("failed to update listing: %w", err)
		}
		return tx.Where("id = ?", listing.ID).First(&listing).Error
	})
	if err != nil {
		return nil, err
	}
	return &listing, nil
}

// GetExpiredListings retrieves listed NFTs whose end timestamp has passed
func (s *pgStore) GetExpiredListings(ctx context.Context, now time.Time, limit int) ([]ExpiredListing, error) {
	var rows []ExpiredListing
	err := s.db.WithContext(ctx).
		Table("nft_market_listings").
		Select("nfts.id AS nft_id, nft_market_listings.id AS listing_id, nfts.token_id, nfts.serial_number, " +
			"nft_market_listings.job_id, nft_market_listings.listing_end_timestamp").
		Joins("JOIN nfts ON nfts.listing_id = nft_market_listings.id").
		Where("nft_market_listings.is_listed = ? AND nft_market_listings.listing_end_timestamp < ?", true, now).
		Order("nft_market_listings.listing_end_timestamp ASC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get expired listings: %w", err)
	}
	return rows, nil
}

// GetDealByTransactionID retrieves a deal by its transaction id
func (s *pgStore) GetDealByTransactionID(ctx context.Context, transactionID string) (*schema.NftMarketDeal, error) {
	var deal schema.NftMarketDeal
	err := s.db.WithContext(ctx).Where("transaction_id = ?", transactionID).First(&deal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get deal: %w", err)
	}
	return &deal, nil
}

// RecordDeal inserts a deal and moves the NFT to the buyer
func (s *pgStore) RecordDeal(ctx context.Context, input RecordDealInput) (*schema.NftMarketDeal, error) {
	var deal schema.NftMarketDeal
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. Lock the NFT
		var nft schema.Nft
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Where("id = ?", input.NftID).First(&nft).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNftNotFound
			}
			return fmt.Errorf("failed to lock nft: %w", err)
		}

		// 2. Link registered users
		var users []schema.User
		if err := tx.Where("account_id IN ?", []string{input.OwnerAccountID, input.BuyerAccountID}).Find(&users).Error; err != nil {
			return fmt.Errorf("failed to get deal users: %w", err)
		}

		deal = schema.NftMarketDeal{
			NftID:              nft.ID,
			OwnerAccountID:     input.OwnerAccountID,
			BuyerAccountID:     input.BuyerAccountID,
			Price:              input.Price,
			TransactionID:      input.TransactionID,
			ConsensusTimestamp: input.ConsensusTimestamp,
		}
		for i := range users {
			if users[i].AccountID == nil {
				continue
			}
			switch *users[i].AccountID {
			case input.OwnerAccountID:
				deal.OwnerID = &users[i].ID
			case input.BuyerAccountID:
				deal.BuyerID = &users[i].ID
			}
		}

		// 3. Insert; the unique transaction id turns a replay into a no-op
		result := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "transaction_id"}},
			DoNothing: true,
		}).Create(&deal)
		if result.Error != nil {
			return fmt.Errorf("failed to create deal: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return domain.ErrAlreadyProcessed
		}

		// 4. Move ownership to the buyer
		if err := tx.Model(&schema.Nft{}).Where("id = ?", nft.ID).Update("account_id", input.BuyerAccountID).Error; err != nil {
			return fmt.Errorf("failed to update nft owner: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &deal, nil
}

// GetDealsForNft retrieves deals of an NFT created in [from, to)
func (s *pgStore) GetDealsForNft(ctx context.Context, nftID int64, from, to time.Time) ([]schema.NftMarketDeal, error) {
	var deals []schema.NftMarketDeal
	err := s.db.WithContext(ctx).
		Where("nft_id = ? AND created_at >= ? AND created_at < ?", nftID, from, to).
		Order("created_at ASC").
		Order("id ASC").
		Find(&deals).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get deals: %w", err)
	}
	return deals, nil
}

// GetRecentDeals retrieves the latest deals of an NFT
func (s *pgStore) GetRecentDeals(ctx context.Context, nftID int64, limit int) ([]schema.NftMarketDeal, error) {
	var deals []schema.NftMarketDeal
	err := s.db.WithContext(ctx).
		Where("nft_id = ?", nftID).
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Find(&deals).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get recent deals: %w", err)
	}
	return deals, nil
}

// GetCollection retrieves a collection by token id
func (s *pgStore) GetCollection(ctx context.Context, tokenID string) (*schema.NftCollection, error) {
	var collection schema.NftCollection
	err := s.db.WithContext(ctx).Where("token_id = ?", tokenID).First(&collection).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get collection: %w", err)
	}
	return &collection, nil
}

// GetCollectionsByTokenIDs retrieves the known collections among tokenIDs
func (s *pgStore) GetCollectionsByTokenIDs(ctx context.Context, tokenIDs []string) (map[string]*schema.NftCollection, error) {
	result := make(map[string]*schema.NftCollection, len(tokenIDs))
	if len(tokenIDs) == 0 {
		return result, nil
	}

	var collections []*schema.NftCollection
	if err := s.db.WithContext(ctx).Where("token_id IN ?", tokenIDs).Find(&collections).Error; err != nil {
		return nil, fmt.Errorf("failed to get collections: %w", err)
	}
	for _, c := range collections {
		result[c.TokenID] = c
	}
	return result, nil
}

// UpsertCollection merges a collection into the cache
func (s *pgStore) UpsertCollection(ctx context.Context, input UpsertCollectionInput) (*schema.NftCollection, error) {
	var collection *schema.NftCollection
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		collection, err = upsertCollection(tx, input)
		return err
	})
	if err != nil {
		return nil, err
	}
	return collection, nil
}

func upsertCollection(tx *gorm.DB, input UpsertCollectionInput) (*schema.NftCollection, error) {
	const table = "nft_collections"
	row := schema.NftCollection{
		TokenID:             input.TokenID,
		Name:                input.Name,
		Symbol:              input.Symbol,
		MaxSupply:           input.MaxSupply,
		TotalSupply:         input.TotalSupply,
		RoyaltyFee:          input.RoyaltyFee,
		RoyaltyFeeCollector: input.RoyaltyFeeCollector,
		Creator:             input.Creator,
		CreatedTimestamp:    input.CreatedTimestamp,
	}

	err := tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "token_id"}},
		DoUpdates: clause.Set{
			mergeText(table, "name"),
			mergeText(table, "symbol"),
			mergeText(table, "max_supply"),
			mergeText(table, "total_supply"),
			mergeText(table, "royalty_fee"),
			mergeText(table, "royalty_fee_collector"),
			mergeText(table, "creator"),
			mergeValue(table, "created_timestamp"),
			{Column: clause.Column{Name: "updated_at"}, Value: gorm.Expr("now()")},
		},
	}).Create(&row).Error
	if err != nil {
		return nil, fmt.Errorf("failed to upsert collection: %w", err)
	}

	var collection schema.NftCollection
	if err := tx.Where("token_id = ?", input.TokenID).First(&collection).Error; err != nil {
		return nil, fmt.Errorf("failed to reload collection: %w", err)
	}
	return &collection, nil
}

// EnsureCollections inserts the validated collections that are not cached yet.
// An existing row only gains a creator if it had none.
func (s *pgStore) EnsureCollections(ctx context.Context, collections []domain.ValidatedCollection) error {
	if len(collections) == 0 {
		return nil
	}

	rows := make([]schema.NftCollection, 0, len(collections))
	for _, c := range collections {
		rows = append(rows, schema.NftCollection{
			TokenID: c.TokenID,
			Creator: optionalString(c.Creator),
		})
	}

	const fieldsPerRecord = 12
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "token_id"}},
		DoUpdates: clause.Set{
			{
				Column: clause.Column{Name: "creator"},
				Value:  gorm.Expr("COALESCE(NULLIF(nft_collections.creator, ''), EXCLUDED.creator)"),
			},
		},
	}).CreateInBatches(&rows, calculateSafeBatchSize(len(rows), fieldsPerRecord)).Error
	if err != nil {
		return fmt.Errorf("failed to ensure collections: %w", err)
	}

	logger.InfoCtx(ctx, "Validated collections ensured", zap.Int("count", len(rows)))
	return nil
}

// GetUserByAccountID retrieves a user by ledger account id
func (s *pgStore) GetUserByAccountID(ctx context.Context, accountID string) (*schema.User, error) {
	var user schema.User
	err := s.db.WithContext(ctx).Where("account_id = ?", accountID).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

// GetUserByEVMAddress retrieves a user by EVM address
func (s *pgStore) GetUserByEVMAddress(ctx context.Context, evmAddress string) (*schema.User, error) {
	var user schema.User
	err := s.db.WithContext(ctx).Where("LOWER(evm_address) = ?", strings.ToLower(evmAddress)).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

// GetUsersByAccountIDs retrieves the known users among accountIDs
func (s *pgStore) GetUsersByAccountIDs(ctx context.Context, accountIDs []string) (map[string]*schema.User, error) {
	result := make(map[string]*schema.User, len(accountIDs))
	if len(accountIDs) == 0 {
		return result, nil
	}

	var users []*schema.User
	if err := s.db.WithContext(ctx).Where("account_id IN ?", accountIDs).Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}
	for _, u := range users {
		if u.AccountID != nil {
			result[*u.AccountID] = u
		}
	}
	return result, nil
}

// GetUsersByEVMAddresses retrieves the known users among evmAddresses
func (s *pgStore) GetUsersByEVMAddresses(ctx context.Context, evmAddresses []string) (map[string]*schema.User, error) {
	result := make(map[string]*schema.User, len(evmAddresses))
	if len(evmAddresses) == 0 {
		return result, nil
	}

	lowered := make([]string, 0, len(evmAddresses))
	for _, a := range evmAddresses {
		lowered = append(lowered, strings.ToLower(a))
	}

	var users []*schema.User
	if err := s.db.WithContext(ctx).Where("LOWER(evm_address) IN ?", lowered).Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}
	for _, u := range users {
		if u.EvmAddress != nil {
			result[strings.ToLower(*u.EvmAddress)] = u
		}
	}
	return result, nil
}

// SetUserEVMAddress back-fills a user's EVM address if it is still empty
func (s *pgStore) SetUserEVMAddress(ctx context.Context, accountID, evmAddress string) error {
	err := s.db.WithContext(ctx).
		Model(&schema.User{}).
		Where("account_id = ? AND (evm_address IS NULL OR evm_address = '')", accountID).
		Update("evm_address", strings.ToLower(evmAddress)).Error
	if err != nil {
		return fmt.Errorf("failed to set user evm address: %w", err)
	}
	return nil
}
