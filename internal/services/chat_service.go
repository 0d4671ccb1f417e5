package services

import (
	"context"
	"net/http"
	"sort"
	"time"

	"askmind_backend/internal/apperrors"
	"askmind_backend/internal/logger"
	"askmind_backend/internal/models"
	"askmind_backend/internal/repositories"
)

// UsageSummary describes a user's current quota consumption.
type UsageSummary struct {
	FreeMessagesUsed  int       `json:"free_messages_used"`
	FreeMessageLimit  int       `json:"free_message_limit"`
	MessagesThisMonth int64     `json:"messages_this_month"`
	LastFreeReset     time.Time `json:"last_free_quota_reset"`
}

// ChatService admits chat requests against the user's quota sources
// and records the answered question.
type ChatService interface {
	ProcessChat(ctx context.Context, userID, question string) (*models.ChatMessage, error)
	History(userID string, page, limit int) (*repositories.PaginatedMessages, error)
	MonthlyUsage(userID string) (*UsageSummary, error)
}

type ChatServiceImpl struct {
	chatRepo  repositories.ChatMessageRepository
	userRepo  repositories.UserRepository
	subRepo   repositories.SubscriptionRepository
	generator AnswerGenerator

	genTimeout time.Duration
	clock      func() time.Time
	userLocks  keyedMutex
}

// NewChatService wires the allocator. clock may be nil for wall time;
// tests pass a fixed clock to cross month boundaries.
func NewChatService(
	chatRepo repositories.ChatMessageRepository,
	userRepo repositories.UserRepository,
	subRepo repositories.SubscriptionRepository,
	generator AnswerGenerator,
	genTimeout time.Duration,
	clock func() time.Time,
) ChatService {
	if clock == nil {
		clock = time.Now
	}
	return &ChatServiceImpl{
		chatRepo:   chatRepo,
		userRepo:   userRepo,
		subRepo:    subRepo,
		generator:  generator,
		genTimeout: genTimeout,
		clock:      clock,
	}
}

// ProcessChat admits the request, debits exactly one quota source,
// generates the answer, and records the exchange. The debit is
// committed before the generator runs; a generation failure after the
// debit is not refunded.
func (s *ChatServiceImpl) ProcessChat(ctx context.Context, userID, question string) (*models.ChatMessage, error) {
	now := s.clock()

	if err := s.admit(ctx, userID, now); err != nil {
		return nil, err
	}

	genCtx, cancel := context.WithTimeout(ctx, s.genTimeout)
	defer cancel()

	answer, tokensUsed, err := s.generator.Generate(genCtx, question)
	if err != nil {
		logger.CtxWithError(ctx, "answer generation failed", err, "user_id", userID)
		return nil, apperrors.Wrap(err, apperrors.CodeInternalError, "Answer generation failed", http.StatusInternalServerError)
	}

	message := &models.ChatMessage{
		UserID:     userID,
		Question:   question,
		Answer:     answer,
		TokensUsed: tokensUsed,
	}
	if err := s.chatRepo.Create(message); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return message, nil
}

// admit runs the check-and-debit sequence under the user's lock so
// two concurrent requests can not both take the last unit of quota.
func (s *ChatServiceImpl) admit(ctx context.Context, userID string, now time.Time) error {
	s.userLocks.Lock(userID)
	defer s.userLocks.Unlock(userID)

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.InternalError(err)
	}

	// Lazy monthly reset, written through before the quota check.
	if user.MaybeResetFreeQuota(now) {
		if err := s.userRepo.Save(user); err != nil {
			return apperrors.InternalError(err)
		}
		logger.CtxDebug(ctx, "free quota reset", "user_id", userID)
	}

	// Free allotment first.
	if user.CanUseFreeMessage() {
		if err := user.UseFreeMessage(); err != nil {
			return apperrors.InternalError(err)
		}
		if err := s.userRepo.Save(user); err != nil {
			return apperrors.InternalError(err)
		}
		return nil
	}

	// Then the subscription with the largest remaining quota.
	subs, err := s.subRepo.FindActiveByUserID(userID)
	if err != nil {
		return apperrors.InternalError(err)
	}

	candidates := make([]models.Subscription, 0, len(subs))
	for _, sub := range subs {
		if sub.IsActive(now) && sub.HasQuota() {
			candidates = append(candidates, sub)
		}
	}
	if len(candidates) == 0 {
		return apperrors.ErrQuotaExhausted
	}

	// Largest remaining quota wins; ties break on ascending ID to keep
	// the selection reproducible.
	sort.Slice(candidates, func(i, j int) bool {
		ri, rj := candidates[i].RemainingQuota(), candidates[j].RemainingQuota()
		if ri.GreaterThan(rj) {
			return true
		}
		if rj.GreaterThan(ri) {
			return false
		}
		return candidates[i].ID < candidates[j].ID
	})

	for _, sub := range candidates {
		debited, err := s.subRepo.DebitUsage(sub.ID)
		if err != nil {
			return apperrors.InternalError(err)
		}
		if debited {
			return nil
		}
		// Quota raced away since the read; try the next candidate.
	}

	return apperrors.ErrQuotaExhausted
}

func (s *ChatServiceImpl) History(userID string, page, limit int) (*repositories.PaginatedMessages, error) {
	if _, err := s.userRepo.FindByID(userID); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	messages, err := s.chatRepo.FindByUserID(userID, page, limit)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return messages, nil
}

func (s *ChatServiceImpl) MonthlyUsage(userID string) (*UsageSummary, error) {
	now := s.clock()

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	count, err := s.chatRepo.MonthlyUsageCount(userID, now)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	// Read-only view: a pending lazy reset shows as zero used without
	// mutating the row.
	freeUsed := user.FreeMessagesUsed
	if user.NeedsQuotaReset(now) {
		freeUsed = 0
	}

	return &UsageSummary{
		FreeMessagesUsed:  freeUsed,
		FreeMessageLimit:  models.FreeMessageLimit,
		MessagesThisMonth: count,
		LastFreeReset:     user.LastFreeQuotaReset,
	}, nil
}
