package domain

import (
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// JobKind identifies the payload carried by a queued job
type JobKind string

const (
	JobKindExpireListing JobKind = "expire-listing"
	JobKindDeleteBid     JobKind = "delete-bid"
	JobKindVerifyDeal    JobKind = "verify-and-record-deal"
)

// ExpireListingJob unlists an NFT on the contract when its listing window ends
type ExpireListingJob struct {
	TokenAddress string `json:"tokenAddress"`
	SerialNumber string `json:"serialNumber"`
}

// DeleteBidJob removes a buyer's bid from the contract
type DeleteBidJob struct {
	TokenAddress string `json:"tokenAddress"`
	SerialNumber string `json:"serialNumber"`
	BuyerAddress string `json:"buyerAddress"`
}

// VerifyDealJob is a client claim that a transaction accepted a bid
type VerifyDealJob struct {
	OwnerAccountID string `json:"ownerAccountId"`
	BuyerAccountID string `json:"buyerAccountId"`
	TransactionID  string `json:"transactionId"`
	Price          string `json:"price"`
	TokenID        string `json:"tokenId"`
	SerialNumber   string `json:"serialNumber"`
}

// Job is a tagged union; exactly the payload matching Kind is set
type Job struct {
	Kind          JobKind           `json:"kind"`
	ExpireListing *ExpireListingJob `json:"expireListing,omitempty"`
	DeleteBid     *DeleteBidJob     `json:"deleteBid,omitempty"`
	VerifyDeal    *VerifyDealJob    `json:"verifyDeal,omitempty"`
}

// NewExpireListingJob builds an expire-listing job for the given token and serial
func NewExpireListingJob(tokenID EntityID, serial string) Job {
	return Job{
		Kind: JobKindExpireListing,
		ExpireListing: &ExpireListingJob{
			TokenAddress: tokenID.LongZeroEVMAddress(),
			SerialNumber: serial,
		},
	}
}

// NewVerifyDealJob wraps a deal claim as a job
func NewVerifyDealJob(claim VerifyDealJob) Job {
	return Job{Kind: JobKindVerifyDeal, VerifyDeal: &claim}
}

// NewDeleteBidJob builds a delete-bid job
func NewDeleteBidJob(tokenID EntityID, serial, buyerAddress string) Job {
	return Job{
		Kind: JobKindDeleteBid,
		DeleteBid: &DeleteBidJob{
			TokenAddress: tokenID.LongZeroEVMAddress(),
			SerialNumber: serial,
			BuyerAddress: strings.ToLower(buyerAddress),
		},
	}
}

// Validate checks that the payload matches the kind and is well formed
func (j Job) Validate() error {
	set := 0
	for _, present := range []bool{j.ExpireListing != nil, j.DeleteBid != nil, j.VerifyDeal != nil} {
		if present {
			set++
		}
	}
	if set != 1 {
		return Validation("job %q must carry exactly one payload", j.Kind)
	}

	switch j.Kind {
	case JobKindExpireListing:
		if j.ExpireListing == nil {
			return Validation("expire-listing job without payload")
		}
		return validateTokenSerial(j.ExpireListing.TokenAddress, j.ExpireListing.SerialNumber)
	case JobKindDeleteBid:
		if j.DeleteBid == nil {
			return Validation("delete-bid job without payload")
		}
		if !common.IsHexAddress(j.DeleteBid.BuyerAddress) {
			return Validation("invalid buyer address %q", j.DeleteBid.BuyerAddress)
		}
		return validateTokenSerial(j.DeleteBid.TokenAddress, j.DeleteBid.SerialNumber)
	case JobKindVerifyDeal:
		if j.VerifyDeal == nil {
			return Validation("verify-and-record-deal job without payload")
		}
		return j.VerifyDeal.Validate()
	default:
		return Validation("unknown job kind %q", j.Kind)
	}
}

// Validate checks the claim's shape without touching external state
func (v VerifyDealJob) Validate() error {
	if _, err := ParseEntityID(v.OwnerAccountID); err != nil {
		return err
	}
	if _, err := ParseEntityID(v.BuyerAccountID); err != nil {
		return err
	}
	if _, err := ParseEntityID(v.TokenID); err != nil {
		return err
	}
	if _, err := ParseTransactionID(v.TransactionID); err != nil {
		return err
	}
	price, err := ParseAmount(v.Price)
	if err != nil {
		return err
	}
	if price.Sign() == 0 {
		return Validation("price must be positive")
	}
	if _, err := ParseAmount(v.SerialNumber); err != nil {
		return Validation("invalid serial number %q", v.SerialNumber)
	}
	return nil
}

// Serial returns the serial number as a big integer; call after Validate
func (j ExpireListingJob) Serial() *big.Int {
	v, _ := new(big.Int).SetString(j.SerialNumber, 10)
	return v
}

// Serial returns the serial number as a big integer; call after Validate
func (j DeleteBidJob) Serial() *big.Int {
	v, _ := new(big.Int).SetString(j.SerialNumber, 10)
	return v
}

func validateTokenSerial(tokenAddress, serial string) error {
	if !common.IsHexAddress(tokenAddress) {
		return Validation("invalid token address %q", tokenAddress)
	}
	if _, err := ParseAmount(serial); err != nil {
		return Validation("invalid serial number %q", serial)
	}
	return nil
}
