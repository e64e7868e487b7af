package worker

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	db "github.com/katatrina/procurement-BE/internal/db/sqlc"
	"github.com/katatrina/procurement-BE/internal/mailer"
)

type fakeDistributor struct {
	mu            sync.Mutex
	notifications []*PayloadSendNotification
	starts        []uuid.UUID
	ends          []uuid.UUID
	err           error
}

func (d *fakeDistributor) DistributeTaskSendNotification(_ context.Context, payload *PayloadSendNotification, _ ...asynq.Option) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.err != nil {
		return d.err
	}
	d.notifications = append(d.notifications, payload)
	return nil
}

func (d *fakeDistributor) DistributeTaskStartAuction(_ context.Context, payload *PayloadStartAuction, _ ...asynq.Option) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.starts = append(d.starts, payload.AuctionID)
	return d.err
}

func (d *fakeDistributor) DistributeTaskEndAuction(_ context.Context, payload *PayloadEndAuction, _ ...asynq.Option) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.ends = append(d.ends, payload.AuctionID)
	return d.err
}

type fakeLifecycle struct {
	activated   db.Auction
	activateErr error
	completed   db.CompleteAuctionTxResult
	completeErr error
}

func (l *fakeLifecycle) ActivateAuction(context.Context, uuid.UUID) (db.Auction, error) {
	return l.activated, l.activateErr
}

func (l *fakeLifecycle) CompleteAuction(context.Context, uuid.UUID) (db.CompleteAuctionTxResult, error) {
	return l.completed, l.completeErr
}

type fakeMailer struct {
	sent []mailer.EmailHeader
	err  error
}

func (m *fakeMailer) SendEmail(_ context.Context, header mailer.EmailHeader, _ string) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, header)
	return nil
}
