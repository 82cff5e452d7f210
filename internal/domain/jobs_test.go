package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validDealClaim() VerifyDealJob {
	return VerifyDealJob{
		OwnerAccountID: "0.0.1001",
		BuyerAccountID: "0.0.1002",
		TransactionID:  "0.0.50@1700000000.123456789",
		Price:          "500",
		TokenID:        "0.0.100",
		SerialNumber:   "1",
	}
}

func TestJob_Validate(t *testing.T) {
	token := EntityID{Num: 100}
	buyer := "0x00000000000000000000000000000000000003ea"

	tests := []struct {
		name    string
		job     Job
		wantErr bool
	}{
		{
			name: "expire listing",
			job:  NewExpireListingJob(token, "1"),
		},
		{
			name: "delete bid",
			job:  NewDeleteBidJob(token, "1", buyer),
		},
		{
			name: "verify deal",
			job:  NewVerifyDealJob(validDealClaim()),
		},
		{
			name:    "unknown kind",
			job:     Job{Kind: "mint", ExpireListing: &ExpireListingJob{}},
			wantErr: true,
		},
		{
			name:    "kind without payload",
			job:     Job{Kind: JobKindExpireListing},
			wantErr: true,
		},
		{
			name: "two payloads",
			job: Job{
				Kind:          JobKindExpireListing,
				ExpireListing: &ExpireListingJob{TokenAddress: token.LongZeroEVMAddress(), SerialNumber: "1"},
				DeleteBid:     &DeleteBidJob{},
			},
			wantErr: true,
		},
		{
			name:    "payload does not match kind",
			job:     Job{Kind: JobKindDeleteBid, ExpireListing: &ExpireListingJob{}},
			wantErr: true,
		},
		{
			name:    "bad serial",
			job:     NewExpireListingJob(token, "x"),
			wantErr: true,
		},
		{
			name:    "bad buyer address",
			job:     NewDeleteBidJob(token, "1", "0.0.1002"),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.job.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrValidationFailure)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestVerifyDealJob_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*VerifyDealJob)
	}{
		{name: "bad transaction id", mutate: func(j *VerifyDealJob) { j.TransactionID = "0.0.50" }},
		{name: "zero price", mutate: func(j *VerifyDealJob) { j.Price = "0" }},
		{name: "negative price", mutate: func(j *VerifyDealJob) { j.Price = "-5" }},
		{name: "bad owner", mutate: func(j *VerifyDealJob) { j.OwnerAccountID = "owner" }},
		{name: "bad serial", mutate: func(j *VerifyDealJob) { j.SerialNumber = "one" }},
	}

	assert.NoError(t, validDealClaim().Validate())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claim := validDealClaim()
			tt.mutate(&claim)
			assert.ErrorIs(t, claim.Validate(), ErrValidationFailure)
		})
	}
}

func TestJobSerial(t *testing.T) {
	job := NewExpireListingJob(EntityID{Num: 100}, "42")
	assert.Equal(t, "42", job.ExpireListing.Serial().String())
	assert.Equal(t, "0x0000000000000000000000000000000000000064", job.ExpireListing.TokenAddress)
}
