package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/katatrina/procurement-BE/internal/auction"
	mockdb "github.com/katatrina/procurement-BE/internal/db/mock"
	db "github.com/katatrina/procurement-BE/internal/db/sqlc"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuctionLifecycleHandler_StartAuction(t *testing.T) {
	auctionID := uuid.New()
	rfq := db.Rfq{ID: uuid.New(), BuyerID: "buyer-1", Title: "Cement, 500 tons"}
	activated := db.Auction{
		ID:        auctionID,
		RfqID:     rfq.ID,
		Status:    db.AuctionStatusActive,
		StartTime: time.Now(),
		EndTime:   time.Now().Add(time.Hour),
	}
	suppliers := []db.User{
		{ID: "supplier-1", Email: "one@acme.test", Role: db.UserRoleSupplier},
		{ID: "supplier-2", Email: "two@beta.test", Role: db.UserRoleSupplier},
	}

	tests := []struct {
		name      string
		lifecycle *fakeLifecycle
		mockSetup func(store *mockdb.MockStore)
		wantErr   bool
		wantSent  int
	}{
		{
			name:      "activates and mails every supplier",
			lifecycle: &fakeLifecycle{activated: activated},
			mockSetup: func(store *mockdb.MockStore) {
				store.EXPECT().GetRfqByID(gomock.Any(), rfq.ID).Return(rfq, nil)
				store.EXPECT().ListSuppliers(gomock.Any()).Return(suppliers, nil)
			},
			wantSent: 2,
		},
		{
			name:      "already active",
			lifecycle: &fakeLifecycle{activateErr: auction.ErrAuctionNotPending},
			mockSetup: func(store *mockdb.MockStore) {},
		},
		{
			name:      "auction deleted",
			lifecycle: &fakeLifecycle{activateErr: auction.ErrAuctionNotFound},
			mockSetup: func(store *mockdb.MockStore) {},
		},
		{
			name:      "database error is retried",
			lifecycle: &fakeLifecycle{activateErr: errors.New("conn refused")},
			mockSetup: func(store *mockdb.MockStore) {},
			wantErr:   true,
		},
		{
			name:      "supplier lookup failure does not undo activation",
			lifecycle: &fakeLifecycle{activated: activated},
			mockSetup: func(store *mockdb.MockStore) {
				store.EXPECT().GetRfqByID(gomock.Any(), rfq.ID).Return(rfq, nil)
				store.EXPECT().ListSuppliers(gomock.Any()).Return(nil, errors.New("timeout"))
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := mockdb.NewMockStore(ctrl)
			tc.mockSetup(store)
			distributor := &fakeDistributor{}

			handler := NewAuctionLifecycleHandler(store, tc.lifecycle, distributor)
			err := handler.StartAuction(context.Background(), auctionID)
			if tc.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}

			require.Len(t, distributor.notifications, tc.wantSent)
			for _, n := range distributor.notifications {
				assert.Equal(t, "auction_started", n.Type)
				assert.Equal(t, auctionID.String(), n.ReferenceID)
				assert.Contains(t, n.Subject, "Cement, 500 tons")
			}
		})
	}
}

func TestAuctionLifecycleHandler_EndAuction(t *testing.T) {
	auctionID := uuid.New()
	rfq := db.Rfq{ID: uuid.New(), BuyerID: "buyer-1", Title: "Steel beams"}
	buyer := db.User{ID: "buyer-1", Email: "buyer@corp.test", Role: db.UserRoleBuyer}
	completed := db.CompleteAuctionTxResult{
		Auction: db.Auction{
			ID:           auctionID,
			RfqID:        rfq.ID,
			Status:       db.AuctionStatusCompleted,
			CurrentPrice: decimal.NewNullDecimal(decimal.NewFromInt(900)),
		},
		Winner: &db.GetLowestBidRow{
			ID:          uuid.New(),
			AuctionID:   auctionID,
			BidderID:    "supplier-2",
			Amount:      decimal.NewFromInt(900),
			BidderLabel: "Beta Metals",
		},
		Participants: []db.User{
			{ID: "supplier-1", Email: "one@acme.test"},
			{ID: "supplier-2", Email: "two@beta.test"},
		},
	}

	t.Run("completes and mails participants and buyer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := mockdb.NewMockStore(ctrl)
		store.EXPECT().GetRfqByID(gomock.Any(), rfq.ID).Return(rfq, nil)
		store.EXPECT().GetUserByID(gomock.Any(), "buyer-1").Return(buyer, nil)
		distributor := &fakeDistributor{}

		handler := NewAuctionLifecycleHandler(store, &fakeLifecycle{completed: completed}, distributor)
		require.NoError(t, handler.EndAuction(context.Background(), auctionID))

		require.Len(t, distributor.notifications, 3)
		byRecipient := make(map[string]*PayloadSendNotification)
		for _, n := range distributor.notifications {
			byRecipient[n.RecipientID] = n
		}
		assert.Contains(t, byRecipient["supplier-2"].Body, "You won this auction")
		assert.Contains(t, byRecipient["supplier-1"].Body, "won by Beta Metals")
		assert.Contains(t, byRecipient["buyer-1"].Body, "won by Beta Metals")
		assert.Equal(t, "buyer@corp.test", byRecipient["buyer-1"].Email)
	})

	skipped := []error{auction.ErrAuctionNotFound, db.ErrAuctionNotActive}
	for _, skipErr := range skipped {
		t.Run(skipErr.Error(), func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			distributor := &fakeDistributor{}
			handler := NewAuctionLifecycleHandler(mockdb.NewMockStore(ctrl), &fakeLifecycle{completeErr: skipErr}, distributor)

			require.NoError(t, handler.EndAuction(context.Background(), auctionID))
			assert.Empty(t, distributor.notifications)
		})
	}

	t.Run("too early is retried", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		handler := NewAuctionLifecycleHandler(mockdb.NewMockStore(ctrl), &fakeLifecycle{completeErr: db.ErrAuctionNotExpired}, &fakeDistributor{})

		err := handler.EndAuction(context.Background(), auctionID)
		require.ErrorIs(t, err, db.ErrAuctionNotExpired)
	})

	t.Run("enqueue failures are not fatal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := mockdb.NewMockStore(ctrl)
		store.EXPECT().GetRfqByID(gomock.Any(), rfq.ID).Return(rfq, nil)
		store.EXPECT().GetUserByID(gomock.Any(), "buyer-1").Return(buyer, nil)

		handler := NewAuctionLifecycleHandler(store, &fakeLifecycle{completed: completed}, &fakeDistributor{err: errors.New("redis down")})
		require.NoError(t, handler.EndAuction(context.Background(), auctionID))
	})
}
