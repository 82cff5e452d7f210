package metadata_test

import (
	"context"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sphera-world/market-engine/internal/metadata"
	"github.com/sphera-world/market-engine/internal/mocks"
)

const testGateway = "https://gateway.test/ipfs"

func TestDecodeHexPointer(t *testing.T) {
	pointer := "ipfs://QmTest"
	encoded := hex.EncodeToString([]byte(pointer))

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "escaped bytea prefix", input: `\x` + encoded, expected: pointer},
		{name: "double escaped prefix", input: `\\x` + encoded, expected: pointer},
		{name: "bare hex", input: encoded, expected: pointer},
		{name: "not hex", input: `\xnothex`, expected: `\xnothex`},
		{name: "invalid utf8", input: `\xfffe`, expected: `\xfffe`},
		{name: "empty", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, metadata.DecodeHexPointer(tt.input))
		})
	}
}

func TestResolver_Resolve(t *testing.T) {
	tests := []struct {
		name       string
		pointer    string
		hexEncoded bool
		setup      func(httpClient *mocks.MockHTTPClient)
		expectRaw  string
	}{
		{
			name:      "plain url is returned as is",
			pointer:   "https://example.com/1.json",
			expectRaw: "https://example.com/1.json",
		},
		{
			name:       "hex encoded ipfs pointer",
			pointer:    `\x` + hex.EncodeToString([]byte("ipfs://QmMeta")),
			hexEncoded: true,
			setup: func(httpClient *mocks.MockHTTPClient) {
				httpClient.EXPECT().
					GetRaw(gomock.Any(), testGateway+"/QmMeta").
					Return([]byte(`{"name":"Orb #1","image":"ipfs://QmImage","type":"image/png","description":"first","attributes":[{"trait_type":"color","value":"blue"},{"trait_type":"level","value":3}]}`), nil)
			},
		},
		{
			name:    "gateway failure falls back to raw pointer",
			pointer: "ipfs://QmMeta",
			setup: func(httpClient *mocks.MockHTTPClient) {
				httpClient.EXPECT().GetRaw(gomock.Any(), testGateway+"/QmMeta").Return(nil, errors.New("timeout"))
			},
			expectRaw: "ipfs://QmMeta",
		},
		{
			name:    "binary payload falls back to raw pointer",
			pointer: "ipfs://QmImage",
			setup: func(httpClient *mocks.MockHTTPClient) {
				png := []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a, 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}
				httpClient.EXPECT().GetRaw(gomock.Any(), testGateway+"/QmImage").Return(png, nil)
			},
			expectRaw: "ipfs://QmImage",
		},
		{
			name:    "text that is not json falls back to raw pointer",
			pointer: "ipfs://QmText",
			setup: func(httpClient *mocks.MockHTTPClient) {
				httpClient.EXPECT().GetRaw(gomock.Any(), testGateway+"/QmText").Return([]byte("hello world"), nil)
			},
			expectRaw: "ipfs://QmText",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			httpClient := mocks.NewMockHTTPClient(ctrl)
			if tt.setup != nil {
				tt.setup(httpClient)
			}
			resolver := metadata.NewResolver(testGateway+"/", httpClient)

			value := resolver.Resolve(context.Background(), tt.pointer, tt.hexEncoded)
			if tt.expectRaw != "" {
				assert.Nil(t, value.Resolved)
				assert.Equal(t, tt.expectRaw, value.Raw)
				return
			}

			require.NotNil(t, value.Resolved)
			doc := value.Resolved
			assert.Equal(t, "Orb #1", doc.Name)
			assert.Equal(t, testGateway+"/QmImage", doc.Image)
			assert.Equal(t, "image/png", doc.Type)
			require.Len(t, doc.Attributes, 2)
			assert.Equal(t, "blue", doc.Attributes[0].Value)
			assert.Equal(t, "3", doc.Attributes[1].Value)
		})
	}
}

func TestResolver_KeepsHTTPImage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	httpClient := mocks.NewMockHTTPClient(ctrl)
	httpClient.EXPECT().
		GetRaw(gomock.Any(), testGateway+"/QmMeta").
		Return([]byte(`{"name":"Orb","image":"https://cdn.test/orb.png"}`), nil)

	value := metadata.NewResolver(testGateway, httpClient).Resolve(context.Background(), "ipfs://QmMeta", false)
	require.NotNil(t, value.Resolved)
	assert.Equal(t, "https://cdn.test/orb.png", value.Resolved.Image)
	assert.Empty(t, value.Resolved.Attributes)
}
