package services

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"askmind_backend/internal/apperrors"
	"askmind_backend/internal/models"
)

var testNow = time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

func testUser(id string, freeUsed int) models.User {
	return models.User{
		BaseModel:          models.BaseModel{ID: id},
		Email:              id + "@example.com",
		Name:               id,
		FreeMessagesUsed:   freeUsed,
		LastFreeQuotaReset: models.MonthStart(testNow),
	}
}

func testSub(id, userID string, maxMessages *int, used int) models.Subscription {
	return models.Subscription{
		BaseModel:    models.BaseModel{ID: id},
		UserID:       userID,
		Tier:         models.TierBasic,
		BillingCycle: models.CycleMonthly,
		MaxMessages:  maxMessages,
		MessagesUsed: used,
		StartDate:    testNow.AddDate(0, 0, -10),
		EndDate:      testNow.AddDate(0, 0, 20),
		RenewalDate:  testNow.AddDate(0, 0, 20),
		AutoRenew:    true,
		Status:       models.SubscriptionStatusActive,
	}
}

func newTestChatService(users *fakeUserRepo, subs *fakeSubRepo, chats *fakeChatRepo, gen AnswerGenerator) ChatService {
	return NewChatService(chats, users, subs, gen, time.Second, fixedClock(testNow))
}

func TestProcessChat_UnknownUser(t *testing.T) {
	svc := newTestChatService(newFakeUserRepo(), newFakeSubRepo(), &fakeChatRepo{}, &stubGenerator{answer: "ok", tokens: 80})

	_, err := svc.ProcessChat(context.Background(), "nobody", "hello?")

	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode)
	assert.Equal(t, apperrors.CodeResourceNotFound, appErr.Code)
}

func TestProcessChat_FreeQuota(t *testing.T) {
	users := newFakeUserRepo(testUser("u1", 2))
	chats := &fakeChatRepo{}
	gen := &stubGenerator{answer: "sure thing", tokens: 75}
	svc := newTestChatService(users, newFakeSubRepo(), chats, gen)

	// Third and last free message of the month.
	msg, err := svc.ProcessChat(context.Background(), "u1", "what is Go?")
	require.NoError(t, err)
	assert.Equal(t, "sure thing", msg.Answer)
	assert.Equal(t, 75, msg.TokensUsed)
	assert.Equal(t, 3, users.get("u1").FreeMessagesUsed)

	// Fourth request has no free quota and no subscription.
	_, err = svc.ProcessChat(context.Background(), "u1", "and again?")
	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, http.StatusPaymentRequired, appErr.HTTPCode)
	assert.Equal(t, apperrors.CodeSubscriptionRequired, appErr.Code)

	// The rejected request never reached the generator or the history.
	assert.Equal(t, 1, gen.callCount())
	assert.Len(t, chats.messages, 1)
}

func TestProcessChat_LazyMonthlyReset(t *testing.T) {
	user := testUser("u1", 3)
	user.LastFreeQuotaReset = testNow.AddDate(0, -1, 0)
	users := newFakeUserRepo(user)
	svc := newTestChatService(users, newFakeSubRepo(), &fakeChatRepo{}, &stubGenerator{answer: "hi", tokens: 60})

	_, err := svc.ProcessChat(context.Background(), "u1", "new month?")
	require.NoError(t, err)

	// The stale counter was reset and one fresh unit consumed.
	stored := users.get("u1")
	assert.Equal(t, 1, stored.FreeMessagesUsed)
	assert.Equal(t, testNow, stored.LastFreeQuotaReset)
}

func TestProcessChat_PicksLargestRemainingQuota(t *testing.T) {
	users := newFakeUserRepo(testUser("u1", 3))
	subs := newFakeSubRepo(
		testSub("sub-basic", "u1", intPtr(10), 10),
		testSub("sub-pro", "u1", intPtr(100), 50),
	)
	svc := newTestChatService(users, subs, &fakeChatRepo{}, &stubGenerator{answer: "ok", tokens: 90})

	_, err := svc.ProcessChat(context.Background(), "u1", "which plan pays?")
	require.NoError(t, err)

	assert.Equal(t, 51, subs.get("sub-pro").MessagesUsed)
	assert.Equal(t, 10, subs.get("sub-basic").MessagesUsed)
}

func TestProcessChat_RemainingBeatsCeiling(t *testing.T) {
	users := newFakeUserRepo(testUser("u1", 3))
	// The bigger plan has less left; selection goes by remaining, not
	// by plan size.
	subs := newFakeSubRepo(
		testSub("sub-a", "u1", intPtr(10), 5),
		testSub("sub-b", "u1", intPtr(100), 98),
	)
	svc := newTestChatService(users, subs, &fakeChatRepo{}, &stubGenerator{answer: "ok", tokens: 90})

	_, err := svc.ProcessChat(context.Background(), "u1", "hello")
	require.NoError(t, err)

	assert.Equal(t, 6, subs.get("sub-a").MessagesUsed)
	assert.Equal(t, 98, subs.get("sub-b").MessagesUsed)
}

func TestProcessChat_UnlimitedNeverRejectsOrCounts(t *testing.T) {
	users := newFakeUserRepo(testUser("u1", 3))
	subs := newFakeSubRepo(testSub("sub-ent", "u1", nil, 0))
	svc := newTestChatService(users, subs, &fakeChatRepo{}, &stubGenerator{answer: "ok", tokens: 90})

	for i := 0; i < 20; i++ {
		_, err := svc.ProcessChat(context.Background(), "u1", "again")
		require.NoError(t, err)
	}
	assert.Equal(t, 0, subs.get("sub-ent").MessagesUsed)
}

func TestProcessChat_UnlimitedWinsOverFinite(t *testing.T) {
	users := newFakeUserRepo(testUser("u1", 3))
	subs := newFakeSubRepo(
		testSub("sub-basic", "u1", intPtr(10), 0),
		testSub("sub-ent", "u1", nil, 0),
	)
	svc := newTestChatService(users, subs, &fakeChatRepo{}, &stubGenerator{answer: "ok", tokens: 90})

	_, err := svc.ProcessChat(context.Background(), "u1", "hello")
	require.NoError(t, err)

	assert.Equal(t, 0, subs.get("sub-basic").MessagesUsed)
}

func TestProcessChat_SkipsInactiveAndExpired(t *testing.T) {
	users := newFakeUserRepo(testUser("u1", 3))

	cancelled := testSub("sub-cancelled", "u1", intPtr(100), 0)
	cancelled.Cancel()
	lapsed := testSub("sub-lapsed", "u1", intPtr(100), 0)
	lapsed.StartDate = testNow.AddDate(0, -2, 0)
	lapsed.EndDate = testNow.AddDate(0, -1, 0)
	usable := testSub("sub-usable", "u1", intPtr(10), 9)

	subs := newFakeSubRepo(cancelled, lapsed, usable)
	svc := newTestChatService(users, subs, &fakeChatRepo{}, &stubGenerator{answer: "ok", tokens: 90})

	_, err := svc.ProcessChat(context.Background(), "u1", "hello")
	require.NoError(t, err)
	assert.Equal(t, 10, subs.get("sub-usable").MessagesUsed)

	// The last unit is gone; nothing usable remains.
	_, err = svc.ProcessChat(context.Background(), "u1", "one more")
	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, http.StatusPaymentRequired, appErr.HTTPCode)
}

func TestProcessChat_DebitSurvivesGeneratorFailure(t *testing.T) {
	users := newFakeUserRepo(testUser("u1", 3))
	subs := newFakeSubRepo(testSub("sub-1", "u1", intPtr(10), 4))
	gen := &stubGenerator{err: errors.New("model unavailable")}
	svc := newTestChatService(users, subs, &fakeChatRepo{}, gen)

	_, err := svc.ProcessChat(context.Background(), "u1", "hello")

	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, http.StatusInternalServerError, appErr.HTTPCode)
	// The debit committed before the generator ran and is not refunded.
	assert.Equal(t, 5, subs.get("sub-1").MessagesUsed)
}

func TestProcessChat_RecordsMessage(t *testing.T) {
	users := newFakeUserRepo(testUser("u1", 0))
	chats := &fakeChatRepo{}
	svc := newTestChatService(users, newFakeSubRepo(), chats, &stubGenerator{answer: "answer", tokens: 120})

	msg, err := svc.ProcessChat(context.Background(), "u1", "record me")
	require.NoError(t, err)

	require.Len(t, chats.messages, 1)
	assert.Equal(t, "u1", chats.messages[0].UserID)
	assert.Equal(t, "record me", chats.messages[0].Question)
	assert.Equal(t, msg.Answer, chats.messages[0].Answer)
}

func TestProcessChat_ConcurrentRequestsNeverOverdraw(t *testing.T) {
	users := newFakeUserRepo(testUser("u1", 0))
	subs := newFakeSubRepo(testSub("sub-1", "u1", intPtr(2), 0))
	svc := newTestChatService(users, subs, &fakeChatRepo{}, &stubGenerator{answer: "ok", tokens: 60})

	// 3 free units plus 2 subscription units; exactly 5 of 10 concurrent
	// requests may go through.
	const requests = 10
	results := make(chan error, requests)
	for i := 0; i < requests; i++ {
		go func() {
			_, err := svc.ProcessChat(context.Background(), "u1", "race me")
			results <- err
		}()
	}

	var admitted, rejected int
	for i := 0; i < requests; i++ {
		if err := <-results; err == nil {
			admitted++
		} else {
			var appErr *apperrors.AppError
			require.True(t, apperrors.As(err, &appErr))
			require.Equal(t, http.StatusPaymentRequired, appErr.HTTPCode)
			rejected++
		}
	}

	assert.Equal(t, 5, admitted)
	assert.Equal(t, 5, rejected)
	assert.Equal(t, 3, users.get("u1").FreeMessagesUsed)
	assert.Equal(t, 2, subs.get("sub-1").MessagesUsed)
}

func TestHistory(t *testing.T) {
	users := newFakeUserRepo(testUser("u1", 0))
	chats := &fakeChatRepo{}
	for i := 0; i < 15; i++ {
		require.NoError(t, chats.Create(&models.ChatMessage{
			UserID:    "u1",
			Question:  "q",
			Answer:    "a",
			CreatedAt: testNow.Add(time.Duration(i) * time.Minute),
		}))
	}
	svc := newTestChatService(users, newFakeSubRepo(), chats, &stubGenerator{})

	page, err := svc.History("u1", 2, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(15), page.Total)
	assert.Equal(t, 2, page.TotalPages)
	assert.Len(t, page.Data, 5)

	_, err = svc.History("ghost", 1, 10)
	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode)
}

func TestMonthlyUsage(t *testing.T) {
	user := testUser("u1", 3)
	user.LastFreeQuotaReset = testNow.AddDate(0, -1, 0)
	users := newFakeUserRepo(user)
	chats := &fakeChatRepo{}
	require.NoError(t, chats.Create(&models.ChatMessage{UserID: "u1", Question: "q", Answer: "a", CreatedAt: testNow}))
	require.NoError(t, chats.Create(&models.ChatMessage{UserID: "u1", Question: "q", Answer: "a", CreatedAt: testNow.AddDate(0, -1, 0)}))

	svc := newTestChatService(users, newFakeSubRepo(), chats, &stubGenerator{})

	usage, err := svc.MonthlyUsage("u1")
	require.NoError(t, err)

	// Pending lazy reset shows as zero used without touching the row.
	assert.Equal(t, 0, usage.FreeMessagesUsed)
	assert.Equal(t, models.FreeMessageLimit, usage.FreeMessageLimit)
	assert.Equal(t, int64(1), usage.MessagesThisMonth)
	assert.Equal(t, 3, users.get("u1").FreeMessagesUsed)
}

func TestSimulatedGenerator(t *testing.T) {
	t.Run("answers after the configured delay", func(t *testing.T) {
		gen := NewSimulatedGenerator(time.Millisecond, nil)
		answer, tokens, err := gen.Generate(context.Background(), "what time is it?")
		require.NoError(t, err)
		assert.Contains(t, answer, `"what time is it?"`)
		assert.GreaterOrEqual(t, tokens, 50)
		assert.Less(t, tokens, 150)
	})

	t.Run("honors context cancellation", func(t *testing.T) {
		gen := NewSimulatedGenerator(time.Minute, nil)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()
		_, _, err := gen.Generate(ctx, "too slow")
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})
}
