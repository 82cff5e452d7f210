package hedera
