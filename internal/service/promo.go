package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"spinwheel-cart-demo/internal/dto"
	"spinwheel-cart-demo/internal/model"
	"spinwheel-cart-demo/internal/repository"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSpinInFlight    = errors.New("spin already in flight")
	ErrNoSavedCoupon   = errors.New("no unapplied coupon")
)

type PromoService interface {
	CreateSession(ctx context.Context) (*dto.SessionSnapshot, error)
	Snapshot(sessionID string) (*dto.SessionSnapshot, error)
	StartSpin(sessionID string) (*dto.SpinResponse, error)
	SettleSpin(sessionID string) (*dto.SettleResponse, error)
	Decide(sessionID string, apply bool) (*dto.SessionSnapshot, error)
	ApplySavedCoupon(sessionID string) (*dto.SessionSnapshot, error)
	WithdrawCoupon(sessionID string) (*dto.SessionSnapshot, error)
	UpdateQuantity(sessionID, itemID string, quantity int) (*dto.SessionSnapshot, error)
	RemoveItem(sessionID, itemID string) (*dto.SessionSnapshot, error)
	Wheel() []dto.WheelSegment
}

type promoServiceImpl struct {
	logger         *zap.Logger
	table          model.PrizeTable
	productRepo    repository.ProductRepository
	spinDurationMS int

	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewPromoService validates the prize table once, at construction: a bad
// table is a configuration error and the service refuses to start.
func NewPromoService(
	logger *zap.Logger,
	table model.PrizeTable,
	productRepo repository.ProductRepository,
	spinDurationMS int,
) (PromoService, error) {
	if err := table.Validate(); err != nil {
		return nil, fmt.Errorf("validate prize table: %w", err)
	}

	return &promoServiceImpl{
		logger:         logger,
		table:          table,
		productRepo:    productRepo,
		spinDurationMS: spinDurationMS,
		sessions:       make(map[string]*Session),
	}, nil
}

// CreateSession seeds a fresh cart from the product catalog and registers a
// new session. Session teardown is process exit; nothing survives a reload.
func (s *promoServiceImpl) CreateSession(ctx context.Context) (*dto.SessionSnapshot, error) {
	products, err := s.productRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	items := make([]model.CartItem, len(products))
	for i, p := range products {
		items[i] = model.CartItem{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			UnitPrice:   decimal.NewFromInt(p.PriceCents).Div(decimal.NewFromInt(100)),
			Quantity:    1,
		}
	}

	sess := NewSession(s.table, items, rand.NewSource(time.Now().UnixNano()))

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	s.logger.Info("session created",
		zap.String("session_id", sess.ID),
		zap.Int("items", len(items)),
	)
	return s.snapshot(sess), nil
}

func (s *promoServiceImpl) Snapshot(sessionID string) (*dto.SessionSnapshot, error) {
	sess, err := s.get(sessionID)
	if err != nil {
		return nil, err
	}
	return s.snapshot(sess), nil
}

func (s *promoServiceImpl) StartSpin(sessionID string) (*dto.SpinResponse, error) {
	sess, err := s.get(sessionID)
	if err != nil {
		return nil, err
	}

	rotation, ok := sess.StartSpin()
	if !ok {
		return nil, ErrSpinInFlight
	}

	s.logger.Info("spin started",
		zap.String("session_id", sessionID),
		zap.Float64("rotation", rotation),
	)
	return &dto.SpinResponse{
		Rotation:   rotation,
		DurationMS: s.spinDurationMS,
	}, nil
}

// SettleSpin handles the presentation layer's animation-end signal. A
// duplicate signal yields already_settled instead of a second win.
func (s *promoServiceImpl) SettleSpin(sessionID string) (*dto.SettleResponse, error) {
	sess, err := s.get(sessionID)
	if err != nil {
		return nil, err
	}

	outcome, won, ok := sess.CompleteSpin()
	if !ok {
		return &dto.SettleResponse{AlreadySettled: true}, nil
	}

	celebrate := false
	select {
	case ev := <-sess.WinEvents():
		celebrate = ev.Celebrate
	default:
	}

	s.logger.Info("spin settled",
		zap.String("session_id", sessionID),
		zap.String("outcome", outcome.ID),
		zap.Int("discount_percent", outcome.DiscountPercent),
	)
	return &dto.SettleResponse{
		Outcome:        outcome,
		Coupon:         won,
		Celebrate:      celebrate,
		DecisionNeeded: won != nil,
	}, nil
}

func (s *promoServiceImpl) Decide(sessionID string, apply bool) (*dto.SessionSnapshot, error) {
	sess, err := s.get(sessionID)
	if err != nil {
		return nil, err
	}

	sess.Decide(apply)
	s.logger.Info("coupon decision",
		zap.String("session_id", sessionID),
		zap.Bool("applied", apply),
	)
	return s.snapshot(sess), nil
}

func (s *promoServiceImpl) ApplySavedCoupon(sessionID string) (*dto.SessionSnapshot, error) {
	sess, err := s.get(sessionID)
	if err != nil {
		return nil, err
	}

	if !sess.ApplySavedCoupon() {
		return nil, ErrNoSavedCoupon
	}
	return s.snapshot(sess), nil
}

func (s *promoServiceImpl) WithdrawCoupon(sessionID string) (*dto.SessionSnapshot, error) {
	sess, err := s.get(sessionID)
	if err != nil {
		return nil, err
	}

	sess.WithdrawCoupon()
	return s.snapshot(sess), nil
}

func (s *promoServiceImpl) UpdateQuantity(sessionID, itemID string, quantity int) (*dto.SessionSnapshot, error) {
	sess, err := s.get(sessionID)
	if err != nil {
		return nil, err
	}

	sess.UpdateQuantity(itemID, quantity)
	return s.snapshot(sess), nil
}

func (s *promoServiceImpl) RemoveItem(sessionID, itemID string) (*dto.SessionSnapshot, error) {
	sess, err := s.get(sessionID)
	if err != nil {
		return nil, err
	}

	sess.RemoveItem(itemID)
	return s.snapshot(sess), nil
}

// Wheel exposes the segment layout for rendering; probabilities stay
// server-side.
func (s *promoServiceImpl) Wheel() []dto.WheelSegment {
	segments := make([]dto.WheelSegment, len(s.table))
	for i, o := range s.table {
		segments[i] = dto.WheelSegment{
			Label:           o.Label,
			DiscountPercent: o.DiscountPercent,
		}
	}
	return segments
}

func (s *promoServiceImpl) get(sessionID string) (*Session, error) {
	s.mu.RLock()
	sess, found := s.sessions[sessionID]
	s.mu.RUnlock()

	if !found {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

func (s *promoServiceImpl) snapshot(sess *Session) *dto.SessionSnapshot {
	state := sess.State()
	return &dto.SessionSnapshot{
		SessionID:          sess.ID,
		Rotation:           state.Rotation,
		SpinDisabled:       state.SpinDisabled,
		HasSpun:            state.HasSpun,
		HasUnappliedCoupon: state.HasUnappliedCoupon,
		DecisionPending:    state.DecisionPending,
		Coupon:             state.Coupon,
		Items:              state.Items,
		Totals:             state.Totals,
	}
}
