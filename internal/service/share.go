package service

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"filevault/internal/events"
	"filevault/internal/model"
	"filevault/internal/repository"
)

const (
	tokenLength = 12
	// mintAttempts bounds retries when two shares of one record land in the same second.
	mintAttempts = 3
)

// ShareService issues and validates time-bounded share tokens.
// Every expiry decision reads the injected Clock.
type ShareService interface {
	// Create stores an active link expiring ShareLinkTTL from now. The record is not verified.
	Create(ctx context.Context, token, platformFileID string, ownerID, recordID int64) error
	// Share checks ownership of the record, mints a token and stores the link.
	Share(ctx context.Context, recordID, ownerID int64) (*model.ShareLink, error)
	// Resolve returns the shared file, or ErrNotFound / ErrExpired. An expired
	// link still flagged active is switched off as a side effect.
	Resolve(ctx context.Context, token string) (*model.SharedFile, error)
	Deactivate(ctx context.Context, token string) (bool, error)
	// DeactivateOwned is Deactivate for callers that must prove ownership of the link.
	DeactivateOwned(ctx context.Context, token string, ownerID int64) (bool, error)
	SweepExpired(ctx context.Context) (int64, error)
	// Inspect returns the raw link and its lifecycle state for audit.
	Inspect(ctx context.Context, token string) (*model.ShareLink, model.LinkState, error)
	ListByRecord(ctx context.Context, recordID, ownerID int64) ([]model.ShareLink, error)
	// URL is the bot deep link that opens the shared file; empty without a bot username.
	URL(token string) string
}

type shareService struct {
	links       repository.ShareLinkRepository
	catalog     CatalogService
	pub         events.Publisher
	clock       Clock
	botUsername string
	log         *slog.Logger
}

// NewShareService constructs a ShareService. A nil clock means SystemClock.
func NewShareService(
	links repository.ShareLinkRepository,
	catalog CatalogService,
	pub events.Publisher,
	clock Clock,
	botUsername string,
	log *slog.Logger,
) ShareService {
	if clock == nil {
		clock = SystemClock{}
	}
	return &shareService{
		links:       links,
		catalog:     catalog,
		pub:         pub,
		clock:       clock,
		botUsername: strings.TrimPrefix(botUsername, "@"),
		log:         log.With(slog.String("component", "share")),
	}
}

// mintToken derives a short token from the link's identity and creation second.
// attempt > 0 salts the input after a collision.
func mintToken(platformFileID string, ownerID, recordID, unix int64, attempt int) string {
	src := fmt.Sprintf("%s_%d_%d_%d", platformFileID, ownerID, recordID, unix)
	if attempt > 0 {
		src = fmt.Sprintf("%s_%d", src, attempt)
	}
	sum := md5.Sum([]byte(src))
	return hex.EncodeToString(sum[:])[:tokenLength]
}

func (s *shareService) Create(ctx context.Context, token, platformFileID string, ownerID, recordID int64) error {
	if strings.TrimSpace(token) == "" {
		return invalid("share token is required")
	}
	if _, err := s.create(ctx, token, platformFileID, ownerID, recordID); err != nil {
		return storeFault(s.log, "create_link", err)
	}
	return nil
}

func (s *shareService) create(ctx context.Context, token, platformFileID string, ownerID, recordID int64) (*model.ShareLink, error) {
	now := s.clock.Now()
	link := &model.ShareLink{
		Token:          token,
		PlatformFileID: platformFileID,
		OwnerID:        ownerID,
		RecordID:       recordID,
		CreatedAt:      now,
		ExpiresAt:      now.Add(model.ShareLinkTTL),
	}
	if err := s.links.Create(ctx, link); err != nil {
		return nil, err
	}
	shareLinksCreatedTotal.Inc()

	e := events.New(events.LinkCreated, now)
	e.OwnerID, e.RecordID, e.Token = ownerID, recordID, token
	publish(ctx, s.pub, s.log, e)
	return link, nil
}

func (s *shareService) Share(ctx context.Context, recordID, ownerID int64) (*model.ShareLink, error) {
	rec, err := s.catalog.GetOwned(ctx, recordID, ownerID)
	if err != nil {
		return nil, err
	}

	unix := s.clock.Now().Unix()
	var lastErr error
	for attempt := 0; attempt < mintAttempts; attempt++ {
		token := mintToken(rec.PlatformFileID, ownerID, rec.ID, unix, attempt)
		link, err := s.create(ctx, token, rec.PlatformFileID, ownerID, rec.ID)
		if err == nil {
			return link, nil
		}
		lastErr = err
		if !errors.Is(err, repository.ErrDuplicateToken) {
			break
		}
	}
	return nil, storeFault(s.log, "share", lastErr)
}

func (s *shareService) Resolve(ctx context.Context, token string) (*model.SharedFile, error) {
	if token == "" {
		shareResolutionsTotal.WithLabelValues("not_found").Inc()
		return nil, ErrNotFound
	}
	shared, err := s.links.FindActive(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			shareResolutionsTotal.WithLabelValues("not_found").Inc()
			return nil, ErrNotFound
		}
		return nil, storeFault(s.log, "resolve", err)
	}

	now := s.clock.Now()
	if shared.ExpiredAt(now) {
		s.expire(ctx, shared.ShareLink, now)
		shareResolutionsTotal.WithLabelValues("expired").Inc()
		return nil, ErrExpired
	}
	shareResolutionsTotal.WithLabelValues("ok").Inc()
	return shared, nil
}

// expire flips an expired link off. A failure is only logged: the caller is
// refused either way and the sweeper will converge the flag.
func (s *shareService) expire(ctx context.Context, link model.ShareLink, now time.Time) {
	flipped, err := s.links.Expire(ctx, link.Token, now)
	if err != nil {
		s.log.Warn("lazy_expiry_failed", slog.String("token", link.Token), slog.String("error", err.Error()))
		return
	}
	if flipped {
		e := events.New(events.LinkExpired, now)
		e.OwnerID, e.RecordID, e.Token = link.OwnerID, link.RecordID, link.Token
		publish(ctx, s.pub, s.log, e)
	}
}

func (s *shareService) Deactivate(ctx context.Context, token string) (bool, error) {
	now := s.clock.Now()
	changed, err := s.links.Deactivate(ctx, token, now)
	if err != nil {
		return false, storeFault(s.log, "deactivate_link", err)
	}
	if changed {
		e := events.New(events.LinkDeactivated, now)
		e.Token = token
		publish(ctx, s.pub, s.log, e)
	}
	return changed, nil
}

func (s *shareService) DeactivateOwned(ctx context.Context, token string, ownerID int64) (bool, error) {
	link, err := s.links.Find(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return false, ErrNotFound
		}
		return false, storeFault(s.log, "deactivate_link", err)
	}
	if link.OwnerID != ownerID {
		return false, ErrUnauthorized
	}
	return s.Deactivate(ctx, token)
}

func (s *shareService) SweepExpired(ctx context.Context) (int64, error) {
	now := s.clock.Now()
	n, err := s.links.SweepExpired(ctx, now)
	if err != nil {
		return 0, storeFault(s.log, "sweep", err)
	}
	if n > 0 {
		e := events.New(events.LinksSwept, now)
		e.Count = n
		publish(ctx, s.pub, s.log, e)
	}
	return n, nil
}

func (s *shareService) Inspect(ctx context.Context, token string) (*model.ShareLink, model.LinkState, error) {
	link, err := s.links.Find(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, "", ErrNotFound
		}
		return nil, "", storeFault(s.log, "inspect", err)
	}
	return link, link.State(s.clock.Now()), nil
}

func (s *shareService) ListByRecord(ctx context.Context, recordID, ownerID int64) ([]model.ShareLink, error) {
	links, err := s.links.ListByRecord(ctx, recordID, ownerID)
	if err != nil {
		return []model.ShareLink{}, storeFault(s.log, "list_links", err)
	}
	if links == nil {
		links = []model.ShareLink{}
	}
	return links, nil
}

func (s *shareService) URL(token string) string {
	if s.botUsername == "" {
		return ""
	}
	return fmt.Sprintf("https://t.me/%s?start=file_%s", s.botUsername, token)
}
