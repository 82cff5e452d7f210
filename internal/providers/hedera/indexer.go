package hedera

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/sphera-world/market-engine/internal/adapter"
	"github.com/sphera-world/market-engine/internal/domain"
)

// orderColumnPattern guards column names interpolated into queries
var orderColumnPattern = regexp.MustCompile(`^[a-z_]+$`)

// RoyaltyFee is one royalty fee of a token's custom fee schedule
type RoyaltyFee struct {
	Numerator          json.Number `json:"numerator"`
	Denominator        json.Number `json:"denominator"`
	CollectorAccountID json.Number `json:"collector_account_id"`
}

// CustomFee is one custom fee schedule of a token
type CustomFee struct {
	RoyaltyFees []RoyaltyFee `json:"royalty_fees"`
}

// IndexerToken is a token class (collection) row
type IndexerToken struct {
	TokenID           json.Number `json:"token_id"`
	TreasuryAccountID json.Number `json:"treasury_account_id"`
	Name              string      `json:"name"`
	Symbol            string      `json:"symbol"`
	CreatedTimestamp  json.Number `json:"created_timestamp"`
	TotalSupply       json.Number `json:"total_supply"`
	MaxSupply         json.Number `json:"max_supply"`
	CustomFee         []CustomFee `json:"custom_fee"`
	Entity            *struct {
		Memo string `json:"memo"`
	} `json:"entity"`
}

// LastRoyaltyFee returns the last royalty fee of the last custom fee schedule, if any
func (t IndexerToken) LastRoyaltyFee() *RoyaltyFee {
	if len(t.CustomFee) == 0 {
		return nil
	}
	fees := t.CustomFee[len(t.CustomFee)-1].RoyaltyFees
	if len(fees) == 0 {
		return nil
	}
	return &fees[len(fees)-1]
}

// Memo returns the token entity memo
func (t IndexerToken) Memo() string {
	if t.Entity == nil {
		return ""
	}
	return t.Entity.Memo
}

// IndexerNft is an NFT row; Metadata is the hex-encoded bytea pointer
type IndexerNft struct {
	TokenID          json.Number  `json:"token_id"`
	AccountID        json.Number  `json:"account_id"`
	SerialNumber     json.Number  `json:"serial_number"`
	Metadata         string       `json:"metadata"`
	CreatedTimestamp json.Number  `json:"created_timestamp"`
	Token            IndexerToken `json:"token"`
}

// IndexerTransaction is one account transfer with its parent transaction
type IndexerTransaction struct {
	Amount      int64 `json:"amount"`
	Transaction struct {
		PayerAccountID     int64             `json:"payer_account_id"`
		Result             int64             `json:"result"`
		Type               int64             `json:"type"`
		ID                 string            `json:"id"`
		ChargedTxFee       int64             `json:"charged_tx_fee"`
		ConsensusTimestamp json.Number       `json:"consensus_timestamp"`
		Transfers          []domain.Transfer `json:"transfers"`
	} `json:"transaction"`
}

// NftQuery filters the nft query. Ids are shard.realm.num strings.
type NftQuery struct {
	AccountID        string
	ExcludeAccountID string
	TokenIDs         []string
	SerialNumber     string
	Limit            int
	Offset           int
}

// CollectionQuery filters the token query
type CollectionQuery struct {
	AccountID string
	TokenIDs  []string
	OrderBy   string
	Direction domain.SortDirection
	Limit     int
	Offset    int
}

// TransactionQuery selects a page of an account's transfers
type TransactionQuery struct {
	AccountID string
	OrderBy   string
	Direction domain.SortDirection
	Limit     int
	Offset    int
}

// Indexer queries the hosted GraphQL ledger indexer
//
//go:generate mockgen -source=indexer.go -destination=../../mocks/hedera_indexer.go -package=mocks -mock_names=Indexer=MockIndexer
type Indexer interface {
	// QueryNfts returns NFT rows with their token
	QueryNfts(ctx context.Context, q NftQuery) ([]IndexerNft, error)

	// QueryCollections returns token rows
	QueryCollections(ctx context.Context, q CollectionQuery) ([]IndexerToken, error)

	// QueryAccountEVM returns the account's EVM address, or "" when the indexer has none
	QueryAccountEVM(ctx context.Context, accountID string) (string, error)

	// QueryTransactions returns a page of the account's transfers
	QueryTransactions(ctx context.Context, q TransactionQuery) ([]IndexerTransaction, error)

	// QueryAccountBalance returns the account balance in tinybar
	QueryAccountBalance(ctx context.Context, accountID string) (string, error)
}

type indexerClient struct {
	endpoint   string
	apiKey     string
	httpClient adapter.HTTPClient
}

// NewIndexer creates a GraphQL indexer client
func NewIndexer(endpoint, apiKey string, httpClient adapter.HTTPClient) Indexer {
	return &indexerClient{
		endpoint:   endpoint,
		apiKey:     apiKey,
		httpClient: httpClient,
	}
}

type graphQLError struct {
	Message string `json:"message"`
}

type graphQLResponse[T any] struct {
	Data   *T             `json:"data"`
	Errors []graphQLError `json:"errors"`
}

// sendQuery posts a GraphQL query and decodes its data.
// Transport failures, GraphQL errors and undecodable bodies are transient.
func sendQuery[T any](ctx context.Context, c *indexerClient, query string) (*T, error) {
	body, err := json.Marshal(map[string]string{"query": query})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal query: %w", err)
	}

	headers := map[string]string{
		"content-type": "application/json",
		"x-api-key":    c.apiKey,
	}
	respBody, err := c.httpClient.Post(ctx, c.endpoint, headers, bytes.NewReader(body))
	if err != nil {
		return nil, domain.Transient(fmt.Errorf("failed to query indexer: %w", err))
	}

	var resp graphQLResponse[T]
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, domain.Transient(fmt.Errorf("failed to decode indexer response: %w", err))
	}
	if len(resp.Errors) > 0 {
		return nil, domain.Transient(fmt.Errorf("indexer error: %s", resp.Errors[0].Message))
	}
	if resp.Data == nil {
		return nil, domain.Transient(fmt.Errorf("indexer response has no data"))
	}
	return resp.Data, nil
}

// buildFilter renders a where clause from filter fragments, or "" when there are none
func buildFilter(filters ...string) string {
	if len(filters) == 0 {
		return ""
	}
	return fmt.Sprintf("where: {%s},", strings.Join(filters, ", "))
}

func orderClause(column string, direction domain.SortDirection) (string, string, error) {
	if !orderColumnPattern.MatchString(column) {
		return "", "", domain.Validation("invalid order column %q", column)
	}
	if direction != domain.SortAsc {
		direction = domain.SortDesc
	}
	return column, string(direction), nil
}

func (c *indexerClient) buildNftsQuery(q NftQuery) string {
	var filters []string

	if q.AccountID != "" {
		filters = append(filters, fmt.Sprintf("_and: [{account_id: {_eq: %s}}, {account_id: {_neq: %s}}]",
			domain.QueryNum(q.AccountID), domain.QueryNum(q.ExcludeAccountID)))
	} else if q.ExcludeAccountID != "" {
		filters = append(filters, fmt.Sprintf("account_id: {_neq: %s}", domain.QueryNum(q.ExcludeAccountID)))
	}

	switch len(q.TokenIDs) {
	case 0:
	case 1:
		filters = append(filters, fmt.Sprintf("token_id: {_eq: %s}", domain.QueryNum(q.TokenIDs[0])))
	default:
		parts := make([]string, 0, len(q.TokenIDs))
		for _, id := range q.TokenIDs {
			parts = append(parts, fmt.Sprintf("{token_id: {_eq: %s}}", domain.QueryNum(id)))
		}
		filters = append(filters, fmt.Sprintf("_or: [%s]", strings.Join(parts, ", ")))
	}

	if q.SerialNumber != "" {
		filters = append(filters, fmt.Sprintf("serial_number: {_eq: %s}", q.SerialNumber))
	}

	return fmt.Sprintf(`{
  nft(
    %s
    limit: %d,
    offset: %d,
  ) {
    token_id
    account_id
    serial_number
    metadata
    created_timestamp
    token {
      name
      token_id
      created_timestamp
      total_supply
      symbol
      max_supply
      custom_fee {
        royalty_fees
        fixed_fees
        fractional_fees
      }
    }
  }
}`, buildFilter(filters...), q.Limit, q.Offset)
}

// QueryNfts returns NFT rows with their token
func (c *indexerClient) QueryNfts(ctx context.Context, q NftQuery) ([]IndexerNft, error) {
	if q.AccountID != "" && q.ExcludeAccountID == "" {
		q.ExcludeAccountID = "0"
	}
	if q.SerialNumber != "" && !isDecimal(q.SerialNumber) {
		return nil, domain.Validation("invalid serial number %q", q.SerialNumber)
	}

	data, err := sendQuery[struct {
		Nft []IndexerNft `json:"nft"`
	}](ctx, c, c.buildNftsQuery(q))
	if err != nil {
		return nil, err
	}
	return data.Nft, nil
}

// QueryCollections returns token rows
func (c *indexerClient) QueryCollections(ctx context.Context, q CollectionQuery) ([]IndexerToken, error) {
	column, direction, err := orderClause(q.OrderBy, q.Direction)
	if err != nil {
		return nil, err
	}

	var filters []string
	if q.AccountID != "" {
		filters = append(filters, fmt.Sprintf("nft: {account_id: {_eq: %s}}", domain.QueryNum(q.AccountID)))
	}
	if len(q.TokenIDs) > 0 {
		parts := make([]string, 0, len(q.TokenIDs))
		for _, id := range q.TokenIDs {
			parts = append(parts, fmt.Sprintf("{nft: {token_id: {_eq: %s}}}", domain.QueryNum(id)))
		}
		filters = append(filters, fmt.Sprintf("_or: [%s]", strings.Join(parts, ", ")))
	}

	query := fmt.Sprintf(`{
  token(
    %s
    order_by: {%s: %s},
    limit: %d,
    offset: %d,
    distinct_on: %s
  ) {
    token_id
    treasury_account_id
    name
    symbol
    created_timestamp
    custom_fee {
      royalty_fees
      fixed_fees
    }
    entity {
      memo
    }
    max_supply
    total_supply
  }
}`, buildFilter(filters...), column, direction, q.Limit, q.Offset, column)

	data, err := sendQuery[struct {
		Token []IndexerToken `json:"token"`
	}](ctx, c, query)
	if err != nil {
		return nil, err
	}
	return data.Token, nil
}

// QueryAccountEVM returns the account's EVM address, or "" when the indexer has none
func (c *indexerClient) QueryAccountEVM(ctx context.Context, accountID string) (string, error) {
	num := domain.QueryNum(accountID)
	if !isDecimal(num) {
		return "", domain.Validation("invalid account id %q", accountID)
	}

	query := fmt.Sprintf(`{
  account: entity_by_pk(id: %s) {
    evm_address
  }
}`, num)

	data, err := sendQuery[struct {
		Account *struct {
			EvmAddress *string `json:"evm_address"`
		} `json:"account"`
	}](ctx, c, query)
	if err != nil {
		return "", err
	}
	if data.Account == nil || data.Account.EvmAddress == nil {
		return "", nil
	}
	return domain.NormalizeEVMAddress(*data.Account.EvmAddress), nil
}

// QueryTransactions returns a page of the account's transfers
func (c *indexerClient) QueryTransactions(ctx context.Context, q TransactionQuery) ([]IndexerTransaction, error) {
	num := domain.QueryNum(q.AccountID)
	if !isDecimal(num) {
		return nil, domain.Validation("invalid account id %q", q.AccountID)
	}
	column, direction, err := orderClause(q.OrderBy, q.Direction)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`{
  account: entity_by_pk(id: %s) {
    transactions: transfer(
      offset: %d,
      limit: %d,
      order_by: {%s: %s, transaction: {%s: %s}}
      distinct_on: %s
    ) {
      amount
      transaction {
        payer_account_id
        result
        type
        id
        charged_tx_fee
        consensus_timestamp
        transfers: transfer {
          type
          sender_account_id
          receiver_account_id
          amount
          token {
            symbol
            decimals
            name
            token_id
          }
          nft {
            serial_number
          }
        }
      }
    }
  }
}`, num, q.Offset, q.Limit, column, direction, column, direction, column)

	data, err := sendQuery[struct {
		Account *struct {
			Transactions []IndexerTransaction `json:"transactions"`
		} `json:"account"`
	}](ctx, c, query)
	if err != nil {
		return nil, err
	}
	if data.Account == nil {
		return nil, fmt.Errorf("%w: account %s", domain.ErrNotFound, q.AccountID)
	}
	return data.Account.Transactions, nil
}

// QueryAccountBalance returns the account balance in tinybar
func (c *indexerClient) QueryAccountBalance(ctx context.Context, accountID string) (string, error) {
	num := domain.QueryNum(accountID)
	if !isDecimal(num) {
		return "", domain.Validation("invalid account id %q", accountID)
	}

	query := fmt.Sprintf(`{
  entity(where: {id: {_eq: %s}}) {
    balance
  }
}`, num)

	data, err := sendQuery[struct {
		Entity []struct {
			Balance *json.Number `json:"balance"`
		} `json:"entity"`
	}](ctx, c, query)
	if err != nil {
		return "", err
	}
	if len(data.Entity) == 0 || data.Entity[0].Balance == nil {
		return "", fmt.Errorf("%w: account %s", domain.ErrNotFound, accountID)
	}
	return data.Entity[0].Balance.String(), nil
}

func isDecimal(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
