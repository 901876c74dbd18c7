package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"radiusmgr/config"
	"radiusmgr/internal/domain/entity"
	domainerrors "radiusmgr/internal/domain/errors"
	"radiusmgr/internal/domain/repository"
	"radiusmgr/internal/errors"
)

var errPasswordTooShort = errors.Wrap(domainerrors.ErrPasswordStrength, "password must be at least 8 characters long")

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			SecretKey:           "0123456789abcdef0123456789abcdef",
			Issuer:              "radiusmgr-test",
			AccessTokenTTL:      time.Hour,
			RefreshTokenTTL:     24 * time.Hour,
			VerificationCodeTTL: 15 * time.Minute,
			BcryptCost:          4,
		},
	}
}

type fixedClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFixedClock() *fixedClock {
	return &fixedClock{now: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *fixedClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *fixedClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// fakeHasher stores "hashed:<password>" so tests can seed accounts without bcrypt.
type fakeHasher struct {
	mu          sync.Mutex
	checks      int
	dummyChecks int
	minLength   int
}

func newFakeHasher() *fakeHasher {
	return &fakeHasher{minLength: 8}
}

func fakeHash(password string) string {
	return "hashed:" + password
}

func (h *fakeHasher) Hash(password string) (string, error) {
	return fakeHash(password), nil
}

func (h *fakeHasher) Check(password, hash string) bool {
	h.mu.Lock()
	h.checks++
	h.mu.Unlock()

	return hash != "" && hash == fakeHash(password)
}

func (h *fakeHasher) DummyCheck() {
	h.mu.Lock()
	h.dummyChecks++
	h.mu.Unlock()
}

func (h *fakeHasher) ValidatePasswordStrength(password string) error {
	if len(password) < h.minLength {
		return errPasswordTooShort
	}

	return nil
}

// fixedCodeGenerator hands out codes from a list and fingerprints them reversibly.
type fixedCodeGenerator struct {
	codes []string
	next  int
}

func (g *fixedCodeGenerator) Generate() (string, error) {
	code := g.codes[g.next%len(g.codes)]
	g.next++

	return code, nil
}

func (g *fixedCodeGenerator) Fingerprint(email, code string) string {
	return "fp:" + strings.ToLower(email) + ":" + code
}

// memoryStore is an in-memory credential store that implements every repository the
// usecases touch, plus a pass-through transaction manager.
type memoryStore struct {
	mu        sync.Mutex
	users     map[int64]*entity.User
	operators map[int64]*entity.Operator
	codes     []*entity.VerificationCode
	nextID    int64
	calls     int
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		users:     make(map[int64]*entity.User),
		operators: make(map[int64]*entity.Operator),
		nextID:    100,
	}
}

func (s *memoryStore) addUser(u *entity.User) *entity.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u.ID == 0 {
		s.nextID++
		u.ID = s.nextID
	}
	s.users[u.ID] = u

	return u
}

func (s *memoryStore) addOperator(o *entity.Operator) *entity.Operator {
	s.mu.Lock()
	defer s.mu.Unlock()
	if o.ID == 0 {
		s.nextID++
		o.ID = s.nextID
	}
	s.operators[o.ID] = o

	return o
}

func (s *memoryStore) touch() {
	s.calls++
}

func (s *memoryStore) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(s)
}

func (s *memoryStore) UserRepo() repository.UserRepository         { return memoryUsers{s} }
func (s *memoryStore) OperatorRepo() repository.OperatorRepository { return memoryOperators{s} }
func (s *memoryStore) VerificationCodeRepo() repository.VerificationCodeRepository {
	return memoryCodes{s}
}

type memoryUsers struct{ s *memoryStore }

func (r memoryUsers) find(match func(*entity.User) bool) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.touch()
	for _, u := range r.s.users {
		if match(u) {
			clone := *u
			return &clone, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r memoryUsers) FindByID(_ context.Context, id int64) (*entity.User, error) {
	return r.find(func(u *entity.User) bool { return u.ID == id })
}

func (r memoryUsers) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	return r.find(func(u *entity.User) bool { return u.Username == username })
}

func (r memoryUsers) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	return r.find(func(u *entity.User) bool { return u.Email != "" && strings.EqualFold(u.Email, email) })
}

func (r memoryUsers) UpdateLastLogin(_ context.Context, id int64, at time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.touch()
	u, ok := r.s.users[id]
	if !ok {
		return repository.ErrUserNotFound
	}
	u.LastLogin = &at

	return nil
}

func (r memoryUsers) UpdatePassword(_ context.Context, id int64, hash string, changedAt time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.touch()
	u, ok := r.s.users[id]
	if !ok {
		return repository.ErrUserNotFound
	}
	u.PasswordHash = hash
	u.PasswordChangedAt = &changedAt

	return nil
}

type memoryOperators struct{ s *memoryStore }

func (r memoryOperators) find(match func(*entity.Operator) bool) (*entity.Operator, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.touch()
	for _, o := range r.s.operators {
		if match(o) {
			clone := *o
			return &clone, nil
		}
	}

	return nil, repository.ErrOperatorNotFound
}

func (r memoryOperators) FindByID(_ context.Context, id int64) (*entity.Operator, error) {
	return r.find(func(o *entity.Operator) bool { return o.ID == id })
}

func (r memoryOperators) FindByUsername(_ context.Context, username string) (*entity.Operator, error) {
	return r.find(func(o *entity.Operator) bool { return o.Username == username })
}

func (r memoryOperators) UpdateLastLogin(_ context.Context, id int64, at time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.touch()
	o, ok := r.s.operators[id]
	if !ok {
		return repository.ErrOperatorNotFound
	}
	o.LastLogin = &at

	return nil
}

func (r memoryOperators) UpdatePassword(_ context.Context, id int64, hash string, changedAt time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.touch()
	o, ok := r.s.operators[id]
	if !ok {
		return repository.ErrOperatorNotFound
	}
	o.PasswordHash = hash
	o.PasswordChangedAt = &changedAt

	return nil
}

func (r memoryOperators) Create(_ context.Context, operator *entity.Operator) error {
	r.s.addOperator(operator)

	return nil
}

type memoryCodes struct{ s *memoryStore }

func (r memoryCodes) Create(_ context.Context, code *entity.VerificationCode) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.touch()
	r.s.nextID++
	code.ID = r.s.nextID
	clone := *code
	r.s.codes = append(r.s.codes, &clone)

	return nil
}

func (r memoryCodes) InvalidateByEmail(_ context.Context, email string, at time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.touch()
	for _, c := range r.s.codes {
		if c.UsedAt == nil && strings.EqualFold(c.Email, email) {
			used := at
			c.UsedAt = &used
		}
	}

	return nil
}

func (r memoryCodes) Consume(_ context.Context, email, codeHash string, now time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.touch()
	for _, c := range r.s.codes {
		if strings.EqualFold(c.Email, email) && c.CodeHash == codeHash && c.IsUsable(now) {
			used := now
			c.UsedAt = &used
			return nil
		}
	}

	return repository.ErrCodeNotFound
}

func (r memoryCodes) RecordFailedAttempt(_ context.Context, email string, maxAttempts int, now time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.touch()
	for _, c := range r.s.codes {
		if strings.EqualFold(c.Email, email) && c.IsUsable(now) {
			c.FailedAttempts++
			if c.FailedAttempts >= maxAttempts {
				used := now
				c.UsedAt = &used
			}
		}
	}

	return nil
}

func (s *memoryStore) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.calls
}
