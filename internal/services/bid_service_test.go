package services

import (
	"context"
	"errors"
	"testing"

	"gigwork_backend/internal/models"
	"gigwork_backend/internal/services/dto"
	"gigwork_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceBid_Success(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	owner := env.createUser(t, "owner")
	freelancer := env.createUser(t, "freelancer")
	gig := env.createGig(t, owner.ID, models.GigStatusOpen)

	bid, err := env.bidService.PlaceBid(ctx, freelancer.ID, &dto.PlaceBidRequest{
		GigID:   gig.ID,
		Message: "Ready to start today",
		Amount:  300,
	})
	require.NoError(t, err)
	assert.Equal(t, models.BidStatusPending, bid.Status)
	assert.Equal(t, freelancer.ID, bid.FreelancerID)
	assert.Equal(t, gig.ID, bid.GigID)
}

func TestPlaceBid_OwnGigRejected(t *testing.T) {
	env := newTestEnv(t)
	owner := env.createUser(t, "owner")
	gig := env.createGig(t, owner.ID, models.GigStatusOpen)

	_, err := env.bidService.PlaceBid(context.Background(), owner.ID, &dto.PlaceBidRequest{
		GigID:  gig.ID,
		Amount: 100,
	})
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperrors.CodeInvalidOperation, appErr.Code)
}

func TestPlaceBid_DuplicateRejected(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	owner := env.createUser(t, "owner")
	freelancer := env.createUser(t, "freelancer")
	gig := env.createGig(t, owner.ID, models.GigStatusOpen)

	_, err := env.bidService.PlaceBid(ctx, freelancer.ID, &dto.PlaceBidRequest{GigID: gig.ID, Amount: 100})
	require.NoError(t, err)

	_, err = env.bidService.PlaceBid(ctx, freelancer.ID, &dto.PlaceBidRequest{GigID: gig.ID, Amount: 120})
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperrors.CodeAlreadyExists, appErr.Code)
}

func TestPlaceBid_GigNotOpen(t *testing.T) {
	env := newTestEnv(t)
	owner := env.createUser(t, "owner")
	freelancer := env.createUser(t, "freelancer")
	gig := env.createGig(t, owner.ID, models.GigStatusAssigned)

	_, err := env.bidService.PlaceBid(context.Background(), freelancer.ID, &dto.PlaceBidRequest{
		GigID:  gig.ID,
		Amount: 100,
	})
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperrors.CodeInvalidStatus, appErr.Code)
}

func TestPlaceBid_GigNotFound(t *testing.T) {
	env := newTestEnv(t)
	freelancer := env.createUser(t, "freelancer")

	_, err := env.bidService.PlaceBid(context.Background(), freelancer.ID, &dto.PlaceBidRequest{
		GigID:  "00000000-0000-0000-0000-000000000000",
		Amount: 100,
	})
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
}

func TestGetGigBids_OwnerOnly(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	owner := env.createUser(t, "owner")
	f1 := env.createUser(t, "freelancer1")
	f2 := env.createUser(t, "freelancer2")
	gig := env.createGig(t, owner.ID, models.GigStatusOpen)
	env.createBid(t, gig.ID, f1.ID, models.BidStatusPending)
	env.createBid(t, gig.ID, f2.ID, models.BidStatusPending)

	bids, err := env.bidService.GetGigBids(ctx, owner.ID, gig.ID)
	require.NoError(t, err)
	assert.Len(t, bids, 2)

	// Не-владелец список заявок не видит
	_, err = env.bidService.GetGigBids(ctx, f1.ID, gig.ID)
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperrors.CodeForbidden, appErr.Code)
}

func TestGetMyBids(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	owner := env.createUser(t, "owner")
	freelancer := env.createUser(t, "freelancer")
	other := env.createUser(t, "other")

	gig1 := env.createGig(t, owner.ID, models.GigStatusOpen)
	gig2 := env.createGig(t, owner.ID, models.GigStatusOpen)
	env.createBid(t, gig1.ID, freelancer.ID, models.BidStatusPending)
	env.createBid(t, gig2.ID, freelancer.ID, models.BidStatusPending)
	env.createBid(t, gig1.ID, other.ID, models.BidStatusPending)

	bids, err := env.bidService.GetMyBids(ctx, freelancer.ID)
	require.NoError(t, err)
	assert.Len(t, bids, 2)
	for _, bid := range bids {
		assert.Equal(t, freelancer.ID, bid.FreelancerID)
	}
}
