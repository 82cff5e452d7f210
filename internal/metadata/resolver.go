package metadata

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/sphera-world/market-engine/internal/adapter"
	"github.com/sphera-world/market-engine/internal/domain"
	"github.com/sphera-world/market-engine/internal/logger"
)

const ipfsScheme = "ipfs://"

// byteaPrefix matches the escaped "\x" prefix the indexer puts on bytea columns
var byteaPrefix = regexp.MustCompile(`^\\*x`)

// Resolver dereferences NFT and collection metadata pointers
//
//go:generate mockgen -source=resolver.go -destination=../mocks/metadata_resolver.go -package=mocks -mock_names=Resolver=MockMetadataResolver
type Resolver interface {
	// Resolve returns the document the pointer references, or the raw pointer when it cannot be fetched.
	// hexEncoded marks pointers read from the indexer's bytea columns.
	Resolve(ctx context.Context, pointer string, hexEncoded bool) domain.MetadataValue
}

type resolver struct {
	gateway    string
	httpClient adapter.HTTPClient
}

// NewResolver creates a metadata resolver fetching content through the given IPFS gateway
func NewResolver(gateway string, httpClient adapter.HTTPClient) Resolver {
	return &resolver{
		gateway:    strings.TrimRight(gateway, "/"),
		httpClient: httpClient,
	}
}

// Resolve returns the document the pointer references, or the raw pointer when it cannot be fetched
func (r *resolver) Resolve(ctx context.Context, pointer string, hexEncoded bool) domain.MetadataValue {
	if hexEncoded {
		pointer = DecodeHexPointer(pointer)
	}
	if !strings.Contains(pointer, ipfsScheme) {
		return domain.MetadataValue{Raw: pointer}
	}

	doc, err := r.fetch(ctx, pointer)
	if err != nil {
		logger.WarnCtx(ctx, "Failed to resolve metadata, using raw pointer",
			zap.String("pointer", pointer),
			zap.Error(err))
		return domain.MetadataValue{Raw: pointer}
	}

	if strings.HasPrefix(doc.Image, ipfsScheme) {
		doc.Image = r.gatewayURL(doc.Image)
	}
	return domain.MetadataValue{Resolved: doc}
}

func (r *resolver) gatewayURL(pointer string) string {
	return fmt.Sprintf("%s/%s", r.gateway, strings.Replace(pointer, ipfsScheme, "", 1))
}

// rawAttribute accepts trait values of any JSON type
type rawAttribute struct {
	TraitType string      `json:"trait_type"`
	Value     interface{} `json:"value"`
}

type rawMetadata struct {
	Name        string         `json:"name"`
	Image       string         `json:"image"`
	Type        string         `json:"type"`
	Description string         `json:"description"`
	Attributes  []rawAttribute `json:"attributes"`
}

func (r *resolver) fetch(ctx context.Context, pointer string) (*domain.NftMetadata, error) {
	url := r.gatewayURL(pointer)
	body, err := r.httpClient.GetRaw(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", url, err)
	}

	mimeType, ok := detectTextPayload(body)
	if !ok {
		return nil, fmt.Errorf("unexpected content type %s", mimeType)
	}

	var raw rawMetadata
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode metadata: %w", err)
	}

	doc := &domain.NftMetadata{
		Name:        raw.Name,
		Image:       raw.Image,
		Type:        raw.Type,
		Description: raw.Description,
		Attributes:  make([]domain.NftAttribute, 0, len(raw.Attributes)),
	}
	for _, a := range raw.Attributes {
		value := ""
		if a.Value != nil {
			value = fmt.Sprint(a.Value)
		}
		doc.Attributes = append(doc.Attributes, domain.NftAttribute{TraitType: a.TraitType, Value: value})
	}
	return doc, nil
}

// DecodeHexPointer decodes an indexer bytea value ("\x6970...") into UTF-8 text.
// The input is returned unchanged when it is not valid hex-encoded UTF-8.
func DecodeHexPointer(value string) string {
	stripped := byteaPrefix.ReplaceAllString(value, "")
	decoded, err := hex.DecodeString(stripped)
	if err != nil || !utf8.Valid(decoded) {
		return value
	}
	return string(decoded)
}
