package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
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

func randomLiveAuction(price int64) db.Auction {
	now := time.Now()
	return db.Auction{
		ID:           uuid.New(),
		RfqID:        uuid.New(),
		Status:       db.AuctionStatusActive,
		StartTime:    now.Add(-time.Hour),
		EndTime:      now.Add(time.Hour),
		CurrentPrice: decimal.NewNullDecimal(decimal.NewFromInt(price)),
	}
}

// placeBidTx emulates PlaceBidTx: it runs the check against a, commits the bid and
// calls AfterCommit with the result.
func placeBidTx(a db.Auction) func(context.Context, db.PlaceBidTxParams) (db.PlaceBidTxResult, error) {
	return func(_ context.Context, arg db.PlaceBidTxParams) (db.PlaceBidTxResult, error) {
		if err := arg.CheckFunc(a); err != nil {
			return db.PlaceBidTxResult{}, err
		}

		updated := a
		updated.CurrentPrice = decimal.NewNullDecimal(arg.Amount)
		result := db.PlaceBidTxResult{
			Bid: db.Bid{
				ID:        uuid.New(),
				AuctionID: a.ID,
				BidderID:  arg.BidderID,
				Amount:    arg.Amount,
				CreatedAt: time.Now(),
			},
			Auction:  updated,
			Sequence: 1,
		}
		if arg.AfterCommit != nil {
			arg.AfterCommit(result)
		}

		return result, nil
	}
}

func TestSubmitBidAPI(t *testing.T) {
	live := randomLiveAuction(1000)
	supplier := db.User{ID: "supplier-1", Role: db.UserRoleSupplier, CompanyName: "Acme Supply"}

	testCases := []struct {
		name          string
		auctionID     string
		body          any
		role          db.UserRole
		noAuth        bool
		buildStubs    func(store *mockdb.MockStore)
		checkResponse func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name:      "OK",
			auctionID: live.ID.String(),
			body:      map[string]any{"amount": "950.50"},
			role:      db.UserRoleSupplier,
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().GetUserByID(gomock.Any(), supplier.ID).Times(1).Return(supplier, nil)
				store.EXPECT().GetAuctionByID(gomock.Any(), live.ID).Times(1).Return(live, nil)
				store.EXPECT().PlaceBidTx(gomock.Any(), gomock.Any()).Times(1).DoAndReturn(placeBidTx(live))
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusCreated, recorder.Code)
				body := decodeBody(t, recorder)
				assert.Equal(t, "950.5", body["new_current_price"])
				bid := body["bid"].(map[string]any)
				assert.Equal(t, "Acme Supply", bid["bidder_label"])
			},
		},
		{
			name:      "NumericAmount",
			auctionID: live.ID.String(),
			body:      map[string]any{"amount": 900},
			role:      db.UserRoleSupplier,
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().GetUserByID(gomock.Any(), supplier.ID).Times(1).Return(supplier, nil)
				store.EXPECT().GetAuctionByID(gomock.Any(), live.ID).Times(1).Return(live, nil)
				store.EXPECT().PlaceBidTx(gomock.Any(), gomock.Any()).Times(1).DoAndReturn(placeBidTx(live))
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusCreated, recorder.Code)
				assert.Equal(t, "900", decodeBody(t, recorder)["new_current_price"])
			},
		},
		{
			name:      "NotLowerThanCurrent",
			auctionID: live.ID.String(),
			body:      map[string]any{"amount": "1000"},
			role:      db.UserRoleSupplier,
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().GetUserByID(gomock.Any(), supplier.ID).Times(1).Return(supplier, nil)
				store.EXPECT().GetAuctionByID(gomock.Any(), live.ID).Times(1).Return(live, nil)
				store.EXPECT().PlaceBidTx(gomock.Any(), gomock.Any()).Times(1).DoAndReturn(placeBidTx(live))
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
				body := decodeBody(t, recorder)
				assert.Equal(t, string(auction.ReasonAmountNotLowerThanCurrent), body["reason"])
				assert.Equal(t, "1000", body["current_price"])
			},
		},
		{
			name:      "AuctionNotLive",
			auctionID: live.ID.String(),
			body:      map[string]any{"amount": "10"},
			role:      db.UserRoleSupplier,
			buildStubs: func(store *mockdb.MockStore) {
				ended := live
				ended.EndTime = time.Now().Add(-time.Minute)
				store.EXPECT().GetUserByID(gomock.Any(), supplier.ID).Times(1).Return(supplier, nil)
				store.EXPECT().GetAuctionByID(gomock.Any(), live.ID).Times(1).Return(ended, nil)
				store.EXPECT().PlaceBidTx(gomock.Any(), gomock.Any()).Times(1).DoAndReturn(placeBidTx(ended))
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
				body := decodeBody(t, recorder)
				assert.Equal(t, string(auction.ReasonAuctionNotLive), body["reason"])
				assert.NotContains(t, body, "current_price")
			},
		},
		{
			name:      "InvalidAmount",
			auctionID: live.ID.String(),
			body:      map[string]any{"amount": "-5"},
			role:      db.UserRoleSupplier,
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().GetUserByID(gomock.Any(), gomock.Any()).Times(0)
				store.EXPECT().GetAuctionByID(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
				assert.Equal(t, string(auction.ReasonInvalidAmount), decodeBody(t, recorder)["reason"])
			},
		},
		{
			name:       "MissingAmount",
			auctionID:  live.ID.String(),
			body:       map[string]any{},
			role:       db.UserRoleSupplier,
			buildStubs: func(store *mockdb.MockStore) {},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
		{
			name:       "InvalidAuctionID",
			auctionID:  "not-a-uuid",
			body:       map[string]any{"amount": "10"},
			role:       db.UserRoleSupplier,
			buildStubs: func(store *mockdb.MockStore) {},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
		{
			name:       "BuyerRole",
			auctionID:  live.ID.String(),
			body:       map[string]any{"amount": "10"},
			role:       db.UserRoleBuyer,
			buildStubs: func(store *mockdb.MockStore) {},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusForbidden, recorder.Code)
			},
		},
		{
			name:      "RoleRevoked",
			auctionID: live.ID.String(),
			body:      map[string]any{"amount": "10"},
			role:      db.UserRoleSupplier,
			buildStubs: func(store *mockdb.MockStore) {
				buyer := supplier
				buyer.Role = db.UserRoleBuyer
				store.EXPECT().GetUserByID(gomock.Any(), supplier.ID).Times(1).Return(buyer, nil)
				store.EXPECT().PlaceBidTx(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusForbidden, recorder.Code)
			},
		},
		{
			name:       "NoAuthorization",
			auctionID:  live.ID.String(),
			body:       map[string]any{"amount": "10"},
			noAuth:     true,
			buildStubs: func(store *mockdb.MockStore) {},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusUnauthorized, recorder.Code)
			},
		},
		{
			name:      "AuctionNotFound",
			auctionID: live.ID.String(),
			body:      map[string]any{"amount": "10"},
			role:      db.UserRoleSupplier,
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().GetUserByID(gomock.Any(), supplier.ID).Times(1).Return(supplier, nil)
				store.EXPECT().GetAuctionByID(gomock.Any(), live.ID).Times(1).Return(db.Auction{}, db.ErrRecordNotFound)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusNotFound, recorder.Code)
			},
		},
		{
			name:      "PersistenceFailure",
			auctionID: live.ID.String(),
			body:      map[string]any{"amount": "10"},
			role:      db.UserRoleSupplier,
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().GetUserByID(gomock.Any(), supplier.ID).Times(1).Return(supplier, nil)
				store.EXPECT().GetAuctionByID(gomock.Any(), live.ID).Times(1).Return(live, nil)
				store.EXPECT().PlaceBidTx(gomock.Any(), gomock.Any()).Times(1).
					Return(db.PlaceBidTxResult{}, errors.New("connection reset by peer"))
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusInternalServerError, recorder.Code)
				assert.Equal(t, auction.ErrPersistenceFailure.Error(), decodeBody(t, recorder)["error"])
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := mockdb.NewMockStore(ctrl)
			tc.buildStubs(store)

			server := newTestServer(t, store)
			var authorization string
			if !tc.noAuth {
				authorization = server.authHeader(t, supplier.ID, tc.role)
			}

			url := fmt.Sprintf("/v1/auctions/%s/bids", tc.auctionID)
			recorder := server.do(t, http.MethodPost, url, tc.body, authorization)
			tc.checkResponse(t, recorder)
		})
	}
}

func TestSubmitBidAPI_BroadcastsToSubscribers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	live := randomLiveAuction(1000)
	supplier := db.User{ID: "supplier-1", Role: db.UserRoleSupplier, CompanyName: "Acme Supply"}

	store := mockdb.NewMockStore(ctrl)
	store.EXPECT().GetUserByID(gomock.Any(), supplier.ID).Return(supplier, nil)
	store.EXPECT().GetAuctionByID(gomock.Any(), live.ID).Return(live, nil)
	store.EXPECT().PlaceBidTx(gomock.Any(), gomock.Any()).DoAndReturn(placeBidTx(live))

	server := newTestServer(t, store)
	sub := server.events.Register(auction.AuctionTopic(live.ID))
	defer server.events.Unregister(sub)

	recorder := server.do(t, http.MethodPost, fmt.Sprintf("/v1/auctions/%s/bids", live.ID),
		map[string]any{"amount": "900"}, server.authHeader(t, supplier.ID, db.UserRoleSupplier))
	require.Equal(t, http.StatusCreated, recorder.Code)

	select {
	case evt := <-sub.Events():
		data, ok := evt.Data.(auction.BidAcceptedEvent)
		require.True(t, ok)
		assert.True(t, data.Price.Equal(decimal.NewFromInt(900)))
		assert.Equal(t, "Acme Supply", data.Bid.BidderLabel)
	case <-time.After(2 * time.Second):
		t.Fatal("no event received")
	}
}

func TestListAuctionBidsAPI(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	live := randomLiveAuction(900)
	rows := []db.ListBidsByAuctionIDRow{
		{ID: uuid.New(), AuctionID: live.ID, BidderID: "s2", Amount: decimal.NewFromInt(900), BidderLabel: "Beta", CreatedAt: time.Now()},
		{ID: uuid.New(), AuctionID: live.ID, BidderID: "s1", Amount: decimal.NewFromInt(950), BidderLabel: "Acme", CreatedAt: time.Now().Add(-time.Second)},
	}

	store := mockdb.NewMockStore(ctrl)
	store.EXPECT().GetAuctionByID(gomock.Any(), live.ID).Return(live, nil)
	store.EXPECT().ListBidsByAuctionID(gomock.Any(), live.ID).Return(rows, nil)

	server := newTestServer(t, store)
	recorder := server.do(t, http.MethodGet, fmt.Sprintf("/v1/auctions/%s/bids", live.ID), nil, "")
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"bidder_label":"Beta"`)
	assert.NotContains(t, recorder.Body.String(), `"bidder_id"`)
}
