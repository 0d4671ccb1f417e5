package services

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"askmind_backend/internal/models"
	"askmind_backend/internal/repositories"
)

// In-memory repository stand-ins. They mirror the persistence
// semantics the services depend on, including the conditional debit.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]models.User
}

func newFakeUserRepo(users ...models.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[string]models.User)}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) FindByID(id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	copied := u
	return &copied, nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			copied := u
			return &copied, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) Create(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user.ID == "" {
		user.ID = fmt.Sprintf("user-%d", len(r.users)+1)
	}
	r.users[user.ID] = *user
	return nil
}

func (r *fakeUserRepo) Save(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.ID] = *user
	return nil
}

func (r *fakeUserRepo) get(id string) models.User {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.users[id]
}

type fakeSubRepo struct {
	mu   sync.Mutex
	subs map[string]models.Subscription
}

func newFakeSubRepo(subs ...models.Subscription) *fakeSubRepo {
	r := &fakeSubRepo{subs: make(map[string]models.Subscription)}
	for _, s := range subs {
		r.subs[s.ID] = s
	}
	return r
}

func (r *fakeSubRepo) FindByID(id string) (*models.Subscription, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.subs[id]
	if !ok {
		return nil, repositories.ErrSubscriptionNotFound
	}
	copied := s
	return &copied, nil
}

func (r *fakeSubRepo) FindByUserID(userID string) ([]models.Subscription, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Subscription
	for _, s := range r.subs {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeSubRepo) FindActiveByUserID(userID string) ([]models.Subscription, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Subscription
	for _, s := range r.subs {
		if s.UserID == userID && s.Status == models.SubscriptionStatusActive {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeSubRepo) Create(subscription *models.Subscription) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if subscription.ID == "" {
		subscription.ID = fmt.Sprintf("sub-%d", len(r.subs)+1)
	}
	r.subs[subscription.ID] = *subscription
	return nil
}

func (r *fakeSubRepo) Save(subscription *models.Subscription) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.subs[subscription.ID] = *subscription
	return nil
}

func (r *fakeSubRepo) FindRenewable(now time.Time) ([]models.Subscription, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Subscription
	for _, s := range r.subs {
		if !s.RenewalDate.After(now) && s.AutoRenew && s.Status == models.SubscriptionStatusActive {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeSubRepo) FindExpired(now time.Time) ([]models.Subscription, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Subscription
	for _, s := range r.subs {
		if s.EndDate.Before(now) && s.Status == models.SubscriptionStatusActive {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeSubRepo) DebitUsage(id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.subs[id]
	if !ok {
		return false, nil
	}
	if s.MaxMessages == nil {
		return true, nil
	}
	if s.MessagesUsed >= *s.MaxMessages {
		return false, nil
	}
	s.MessagesUsed++
	r.subs[id] = s
	return true, nil
}

func (r *fakeSubRepo) get(id string) models.Subscription {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.subs[id]
}

type fakeChatRepo struct {
	mu       sync.Mutex
	messages []models.ChatMessage
	failNext error
}

func (r *fakeChatRepo) Create(message *models.ChatMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failNext != nil {
		err := r.failNext
		r.failNext = nil
		return err
	}
	if message.ID == "" {
		message.ID = fmt.Sprintf("msg-%d", len(r.messages)+1)
	}
	if message.CreatedAt.IsZero() {
		message.CreatedAt = time.Now()
	}
	r.messages = append(r.messages, *message)
	return nil
}

func (r *fakeChatRepo) FindByUserID(userID string, page, limit int) (*repositories.PaginatedMessages, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	var all []models.ChatMessage
	for _, m := range r.messages {
		if m.UserID == userID {
			all = append(all, m)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })

	total := int64(len(all))
	start := (page - 1) * limit
	if start > len(all) {
		start = len(all)
	}
	end := start + limit
	if end > len(all) {
		end = len(all)
	}
	return &repositories.PaginatedMessages{
		Data:       all[start:end],
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: int((total + int64(limit) - 1) / int64(limit)),
	}, nil
}

func (r *fakeChatRepo) MonthlyUsageCount(userID string, month time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	start := models.MonthStart(month)
	end := start.AddDate(0, 1, 0)
	var count int64
	for _, m := range r.messages {
		if m.UserID == userID && !m.CreatedAt.Before(start) && m.CreatedAt.Before(end) {
			count++
		}
	}
	return count, nil
}

// stubGenerator answers instantly with a fixed payload, or fails.
type stubGenerator struct {
	answer string
	tokens int
	err    error

	mu    sync.Mutex
	calls int
}

func (g *stubGenerator) Generate(ctx context.Context, question string) (string, int, error) {
	g.mu.Lock()
	g.calls++
	g.mu.Unlock()
	if g.err != nil {
		return "", 0, g.err
	}
	return g.answer, g.tokens, nil
}

func (g *stubGenerator) callCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.calls
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func intPtr(n int) *int { return &n }
