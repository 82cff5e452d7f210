package aggregator

import (
	"context"
	"fmt"
	"math/big"
	"sort"
	"time"

	"github.com/sphera-world/market-engine/internal/domain"
	"github.com/sphera-world/market-engine/internal/store/schema"
)

// GetActivities returns the latest sales of an NFT, newest first
func (a *aggregator) GetActivities(ctx context.Context, tokenID, serialNumber string) ([]domain.Activity, error) {
	nft, err := a.getNft(ctx, tokenID, serialNumber)
	if err != nil {
		return nil, err
	}

	deals, err := a.store.GetRecentDeals(ctx, nft.ID, domain.MaxActivities)
	if err != nil {
		return nil, fmt.Errorf("failed to get deals: %w", err)
	}

	accountIDs := make([]string, 0, 2*len(deals))
	for _, deal := range deals {
		accountIDs = append(accountIDs, deal.OwnerAccountID, deal.BuyerAccountID)
	}
	users, err := a.store.GetUsersByAccountIDs(ctx, accountIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to get deal parties: %w", err)
	}

	activities := make([]domain.Activity, 0, len(deals))
	for _, deal := range deals {
		price := deal.Price
		activities = append(activities, domain.Activity{
			EventType: domain.ActivitySale,
			Price:     &price,
			From:      activityParty(deal.OwnerAccountID, users),
			To:        activityParty(deal.BuyerAccountID, users),
			Timestamp: deal.CreatedAt.UnixMilli(),
		})
	}

	sort.SliceStable(activities, func(i, j int) bool {
		return activities[i].Timestamp > activities[j].Timestamp
	})
	if len(activities) > domain.MaxActivities {
		activities = activities[:domain.MaxActivities]
	}
	return activities, nil
}

// GetPriceHistory returns the daily average sale price of an NFT over the UTC month containing timestamp
func (a *aggregator) GetPriceHistory(ctx context.Context, tokenID, serialNumber string, timestamp int64) ([]domain.PriceHistoryChunk, error) {
	nft, err := a.getNft(ctx, tokenID, serialNumber)
	if err != nil {
		return nil, err
	}

	at := time.UnixMilli(timestamp).UTC()
	from := time.Date(at.Year(), at.Month(), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	deals, err := a.store.GetDealsForNft(ctx, nft.ID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to get deals: %w", err)
	}
	return dailyAverages(deals)
}

// dailyAverages groups deals by UTC day and averages their prices, truncating
func dailyAverages(deals []schema.NftMarketDeal) ([]domain.PriceHistoryChunk, error) {
	type day struct {
		start time.Time
		sum   *big.Int
		count int64
	}

	days := map[time.Time]*day{}
	for _, deal := range deals {
		price, err := domain.ParseAmount(deal.Price)
		if err != nil {
			return nil, fmt.Errorf("invalid price of deal %s: %w", deal.TransactionID, err)
		}
		created := deal.CreatedAt.UTC()
		start := time.Date(created.Year(), created.Month(), created.Day(), 0, 0, 0, 0, time.UTC)

		d, ok := days[start]
		if !ok {
			d = &day{start: start, sum: new(big.Int)}
			days[start] = d
		}
		d.sum.Add(d.sum, price)
		d.count++
	}

	chunks := make([]domain.PriceHistoryChunk, 0, len(days))
	for _, d := range days {
		avg := new(big.Int).Quo(d.sum, big.NewInt(d.count))
		chunks = append(chunks, domain.PriceHistoryChunk{
			Timestamp: d.start.UnixMilli(),
			Price:     avg.String(),
		})
	}
	sort.Slice(chunks, func(i, j int) bool {
		return chunks[i].Timestamp < chunks[j].Timestamp
	})
	return chunks, nil
}

func (a *aggregator) getNft(ctx context.Context, tokenID, serialNumber string) (*schema.Nft, error) {
	token, serial, err := parseNft(tokenID, serialNumber)
	if err != nil {
		return nil, err
	}
	nft, err := a.store.GetNft(ctx, token.String(), serial.String())
	if err != nil {
		return nil, fmt.Errorf("failed to get nft: %w", err)
	}
	if nft == nil {
		return nil, domain.ErrNftNotFound
	}
	return nft, nil
}

func activityParty(accountID string, users map[string]*schema.User) domain.ActivityParty {
	party := domain.ActivityParty{AccountID: &accountID}
	if user, ok := users[accountID]; ok {
		party.Username = user.Username
	}
	return party
}
